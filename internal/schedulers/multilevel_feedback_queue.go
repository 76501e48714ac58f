package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleMultilevelFeedbackQueue keeps one round robin queue per entry of
// timeQuantumList plus a final first-come-first-serve level. Arrivals enter
// the first level; a process that uses its whole slice without finishing
// drops one level. The head of the highest non-empty level is dispatched and
// slices are never cut short.
func ScheduleMultilevelFeedbackQueue(processes []core.Process, timeQuantumList []int) core.SchedulingResult {
	logrus.Debugf("running mlfq algorithm with timeQuantum = %v", timeQuantumList)

	pending := newBacklog(processes)
	cpu := core.NewCPU()
	levels := make([]*readyQueue, len(timeQuantumList)+1)
	for i := range levels {
		levels[i] = &readyQueue{}
	}
	fcfsLevel := len(levels) - 1
	completed := make([]core.ProcessInfo, 0, len(processes))

	for {
		levels[0].push(pending.admit(cpu.Clock())...)
		level := highestNonEmpty(levels)
		if level < 0 {
			if pending.empty() {
				break
			}
			cpu.IdleUntil(pending.nextArrival())
			continue
		}

		process := levels[level].popFront()
		slice := process.remaining()
		if level < fcfsLevel {
			slice = min(timeQuantumList[level], slice)
		}
		run(cpu, process, slice)

		levels[0].push(pending.admit(cpu.Clock())...)
		if process.remaining() == 0 {
			completed = append(completed, complete(process, cpu.Clock()))
			continue
		}
		next := min(level+1, fcfsLevel)
		logrus.Debugf("pid: %s context switch detected. send process to level %d", process.info.ID, next)
		levels[next].push(process)
	}
	return newResult(cpu, completed)
}

func highestNonEmpty(levels []*readyQueue) int {
	for i, q := range levels {
		if q.len() > 0 {
			return i
		}
	}
	return -1
}

// DefaultFeedbackLevels derives two round robin levels from a base quantum.
func DefaultFeedbackLevels(timeQuantum int) []int {
	return []int{timeQuantum, 2 * timeQuantum}
}
