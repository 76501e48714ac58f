package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		processes []Process
		want      error
	}{
		{"empty list", nil, nil},
		{"valid", []Process{{ID: "P1", BurstTime: 1}, {ID: "P2", ArrivalTime: 4, BurstTime: 2}}, nil},
		{"empty id", []Process{{BurstTime: 1}}, ErrEmptyProcessID},
		{"negative arrival", []Process{{ID: "P1", ArrivalTime: -2, BurstTime: 1}}, ErrNegativeArrival},
		{"zero burst", []Process{{ID: "P1"}}, ErrInvalidBurst},
		{"negative burst", []Process{{ID: "P1", BurstTime: -3}}, ErrInvalidBurst},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.processes)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_ReportsOffendingIndex(t *testing.T) {
	err := Validate([]Process{{ID: "ok", BurstTime: 1}, {ID: "bad", BurstTime: 0}})
	assert.EqualError(t, err, `process[1] "bad": burst time must be >= 1, got 0`)
}

func TestCloneProcesses(t *testing.T) {
	assert.Nil(t, CloneProcesses(nil))

	original := []Process{{ID: "P1", BurstTime: 1}}
	clone := CloneProcesses(original)
	clone[0].BurstTime = 9
	assert.Equal(t, 1, original[0].BurstTime)
}
