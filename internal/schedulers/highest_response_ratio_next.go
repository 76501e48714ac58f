package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleHighestResponseRatioNext runs the ready process with the largest
// (waiting + burst) / burst, recomputed at each dispatch, to completion.
func ScheduleHighestResponseRatioNext(processes []core.Process) core.SchedulingResult {
	logrus.Debugf("running hrrn algorithm on %d processes", len(processes))
	return runToCompletion(processes, pickHighestResponseRatio)
}

// ResponseRatio is (now - arrival + burst) / burst.
func ResponseRatio(p core.Process, now int) float64 {
	return float64(now-p.ArrivalTime+p.BurstTime) / float64(p.BurstTime)
}

func pickHighestResponseRatio(q *readyQueue, now int) int {
	// Compare a/b > c/d as a*d > c*b to keep ties exact.
	return q.best(func(a, b *task) bool {
		na, da := now-a.info.ArrivalTime+a.info.BurstTime, a.info.BurstTime
		nb, db := now-b.info.ArrivalTime+b.info.BurstTime, b.info.BurstTime
		return na*db > nb*da
	})
}
