package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	details := []core.ProcessInfo{
		{WaitingTime: 4, ResponseTime: 0, TurnaroundTime: 12, CompletionTime: 12},
		{WaitingTime: 1, ResponseTime: 1, TurnaroundTime: 5, CompletionTime: 6},
	}
	waiting, response, turnaround := CalculateAverage(details)

	assert.InDelta(t, 2.5, waiting, 1e-9)
	assert.InDelta(t, 0.5, response, 1e-9)
	assert.InDelta(t, 8.5, turnaround, 1e-9)
	assert.Equal(t, 12, Makespan(details))
}

func TestCalculateAverage_Empty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
	assert.Zero(t, Makespan(nil))
}
