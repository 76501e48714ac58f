package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes strictly in arrival order, each
// to completion. Equal arrivals keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) core.SchedulingResult {
	logrus.Debugf("running fcfs algorithm on %d processes", len(processes))

	// sort jobs by arrival time
	jobs := newBacklog(processes).tasks
	cpu := core.NewCPU()
	completed := make([]core.ProcessInfo, 0, len(jobs))

	for _, job := range jobs {
		cpu.IdleUntil(job.info.ArrivalTime)
		run(cpu, job, job.remaining())
		completed = append(completed, complete(job, cpu.Clock()))
	}
	return newResult(cpu, completed)
}
