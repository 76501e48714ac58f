package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst picks the arrived process with the smallest burst
// whenever the CPU is free and runs it to completion. A shorter job
// arriving mid-execution waits. Equal bursts go to the earlier arrival.
func ScheduleShortestJobFirst(processes []core.Process) core.SchedulingResult {
	logrus.Debugf("running sjf algorithm on %d processes", len(processes))
	return runToCompletion(processes, pickShortestJob)
}

func pickShortestJob(q *readyQueue, _ int) int {
	return q.best(func(a, b *task) bool {
		return a.info.BurstTime < b.info.BurstTime
	})
}
