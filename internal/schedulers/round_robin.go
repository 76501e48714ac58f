package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin dispatches the ready queue head for at most
// timeQuantum ticks. Processes that arrived during the slice are queued
// before the preempted process returns to the tail. Every dispatch emits
// its own timeline block; consecutive slices of one process are not merged.
// timeQuantum must be >= 1.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) core.SchedulingResult {
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", timeQuantum)

	pending := newBacklog(processes)
	cpu := core.NewCPU()
	ready := &readyQueue{}
	completed := make([]core.ProcessInfo, 0, len(processes))

	for !pending.empty() || ready.len() > 0 {
		ready.push(pending.admit(cpu.Clock())...)
		if ready.len() == 0 {
			cpu.IdleUntil(pending.nextArrival())
			continue
		}

		process := ready.popFront()
		run(cpu, process, min(timeQuantum, process.remaining()))

		// arrivals during the slice go ahead of the returning process
		ready.push(pending.admit(cpu.Clock())...)
		if process.remaining() == 0 {
			completed = append(completed, complete(process, cpu.Clock()))
			continue
		}
		logrus.Debugf("pid: %s context switch detected. send process to roundRobin queue", process.info.ID)
		ready.push(process)
	}
	return newResult(cpu, completed)
}
