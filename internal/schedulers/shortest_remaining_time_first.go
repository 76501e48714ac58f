package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestRemainingTimeFirst is the preemptive form of SJF. The
// candidate with the least remaining time is chosen at time zero, at every
// arrival and at every completion. Between those instants nothing can
// change the choice, so the clock jumps straight to the next event; the
// result equals unit-step evaluation.
//
// Waiting processes are considered in admission order and the running
// process last, so a waiting process that ties the incumbent takes the CPU.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) core.SchedulingResult {
	logrus.Debugf("running srtf algorithm on %d processes", len(processes))

	pending := newBacklog(processes)
	cpu := core.NewCPU()
	ready := &readyQueue{}
	completed := make([]core.ProcessInfo, 0, len(processes))
	owners := make([]int, 0, len(processes))

	var current *task
	for !pending.empty() || ready.len() > 0 || current != nil {
		for _, t := range pending.admit(cpu.Clock()) {
			ready.insertBySeq(t)
		}
		if current == nil && ready.len() == 0 {
			cpu.IdleUntil(pending.nextArrival())
			continue
		}

		idx := ready.best(func(a, b *task) bool {
			return a.remaining() < b.remaining()
		})
		if idx >= 0 && (current == nil || ready.tasks[idx].remaining() <= current.remaining()) {
			next := ready.remove(idx)
			if current != nil {
				logrus.Debugf("pid: %s preempted by %s at t=%d", current.info.ID, next.info.ID, cpu.Clock())
				ready.insertBySeq(current)
			}
			current = next
		}

		slice := current.remaining()
		if !pending.empty() {
			if untilArrival := pending.nextArrival() - cpu.Clock(); untilArrival < slice {
				slice = untilArrival
			}
		}
		run(cpu, current, slice)
		owners = append(owners, current.seq)

		if current.remaining() == 0 {
			completed = append(completed, complete(current, cpu.Clock()))
			current = nil
		}
	}

	result := newResult(cpu, completed)
	result.Timeline = mergeTimeline(result.Timeline, owners)
	return result
}
