package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
)

func TestScheduleMultilevelFeedbackQueue_DemotesAfterFullSlice(t *testing.T) {
	result := ScheduleMultilevelFeedbackQueue([]core.Process{proc("A", 0, 8), proc("B", 1, 3)}, []int{2, 4})

	assert.Equal(t, []span{{"A", 0, 2}, {"B", 2, 4}, {"A", 4, 8}, {"B", 8, 9}, {"A", 9, 11}}, spans(result))
	assert.Equal(t, []string{"B", "A"}, completionOrder(result))
	assert.Equal(t, 1, infoByID(t, result, "B").ResponseTime)
	assert.Equal(t, 5, infoByID(t, result, "B").WaitingTime)
	assert.Equal(t, 3, infoByID(t, result, "A").WaitingTime)
}

func TestScheduleMultilevelFeedbackQueue_NewArrivalsOutrankDemoted(t *testing.T) {
	result := ScheduleMultilevelFeedbackQueue([]core.Process{proc("A", 0, 6), proc("B", 1, 1)}, []int{2})

	assert.Equal(t, []span{{"A", 0, 2}, {"B", 2, 3}, {"A", 3, 7}}, spans(result))
}

func TestScheduleMultilevelFeedbackQueue_LastLevelRunsToCompletion(t *testing.T) {
	result := ScheduleMultilevelFeedbackQueue([]core.Process{proc("A", 0, 6), proc("B", 3, 1)}, []int{1})

	// A drops to the FCFS level after one tick; B's arrival does not cut it short
	assert.Equal(t, []span{{"A", 0, 1}, {"A", 1, 6}, {"B", 6, 7}}, spans(result))
}

func TestScheduleMultilevelFeedbackQueue_ShortJobsFinishInFirstLevel(t *testing.T) {
	result := ScheduleMultilevelFeedbackQueue([]core.Process{proc("A", 0, 1), proc("B", 0, 2)}, []int{2, 4})

	assert.Equal(t, []span{{"A", 0, 1}, {"B", 1, 3}}, spans(result))
}

func TestDefaultFeedbackLevels(t *testing.T) {
	assert.Equal(t, []int{3, 6}, DefaultFeedbackLevels(3))
}
