package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
)

func TestBacklog_AdmitsInArrivalOrder(t *testing.T) {
	b := newBacklog([]core.Process{proc("C", 4, 1), proc("A", 0, 1), proc("B", 0, 1)})

	arrived := b.admit(0)
	assert.Len(t, arrived, 2)
	assert.Equal(t, "A", arrived[0].info.ID)
	assert.Equal(t, "B", arrived[1].info.ID)
	assert.Equal(t, 4, b.nextArrival())
	assert.Empty(t, b.admit(3))
	assert.Len(t, b.admit(4), 1)
	assert.True(t, b.empty())
}

func TestReadyQueue_InsertBySeqRestoresAdmissionOrder(t *testing.T) {
	b := newBacklog([]core.Process{proc("A", 0, 1), proc("B", 0, 1), proc("C", 0, 1)})
	q := &readyQueue{}
	q.push(b.admit(0)...)

	middle := q.remove(1)
	q.insertBySeq(middle)

	ids := []string{q.tasks[0].info.ID, q.tasks[1].info.ID, q.tasks[2].info.ID}
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}

func TestReadyQueue_BestKeepsFirstOnTie(t *testing.T) {
	b := newBacklog([]core.Process{proc("A", 0, 3), proc("B", 0, 1), proc("C", 0, 1)})
	q := &readyQueue{}
	q.push(b.admit(0)...)

	idx := q.best(func(a, b *task) bool { return a.remaining() < b.remaining() })
	assert.Equal(t, 1, idx)
	assert.Equal(t, -1, (&readyQueue{}).best(func(a, b *task) bool { return false }))
}

func TestMergeTimeline(t *testing.T) {
	blocks := []core.TimelineBlock{
		{ProcessID: "A", StartTime: 0, EndTime: 1},
		{ProcessID: "A", StartTime: 1, EndTime: 3},
		{ProcessID: "B", StartTime: 3, EndTime: 4},
		{ProcessID: "B", StartTime: 6, EndTime: 7}, // gap: not merged
		{ProcessID: "B", StartTime: 7, EndTime: 8}, // different owner, same id
	}
	merged := mergeTimeline(blocks, []int{0, 0, 1, 1, 2})

	assert.Equal(t, []core.TimelineBlock{
		{ProcessID: "A", StartTime: 0, EndTime: 3},
		{ProcessID: "B", StartTime: 3, EndTime: 4},
		{ProcessID: "B", StartTime: 6, EndTime: 7},
		{ProcessID: "B", StartTime: 7, EndTime: 8},
	}, merged)
}
