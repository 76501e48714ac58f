package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// SchedulePriority runs the arrived process with the highest priority value
// to completion. Later arrivals never preempt, and there is no aging, so low
// priorities can starve. Equal priorities go to the earlier arrival.
func SchedulePriority(processes []core.Process) core.SchedulingResult {
	logrus.Debugf("running priority algorithm on %d processes", len(processes))
	return runToCompletion(processes, pickHighestPriority)
}

func pickHighestPriority(q *readyQueue, _ int) int {
	return q.best(func(a, b *task) bool {
		return a.info.Priority > b.info.Priority
	})
}
