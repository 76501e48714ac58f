package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// task is the engine's private working record for one process.
type task struct {
	info    core.ProcessInfo
	seq     int // admission order, used for deterministic tie-breaks
	started bool
}

func (t *task) remaining() int {
	return t.info.RemainingTime
}

// backlog holds processes that have not arrived yet, ordered by arrival
// time with input order preserved on ties.
type backlog struct {
	tasks []*task
}

func newBacklog(processes []core.Process) *backlog {
	tasks := make([]*task, len(processes))
	for i, p := range processes {
		tasks[i] = &task{info: core.ProcessInfo{Process: p, RemainingTime: p.BurstTime}}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].info.ArrivalTime < tasks[j].info.ArrivalTime
	})
	for i := range tasks {
		tasks[i].seq = i
	}
	return &backlog{tasks: tasks}
}

func (b *backlog) empty() bool {
	return len(b.tasks) == 0
}

func (b *backlog) nextArrival() int {
	return b.tasks[0].info.ArrivalTime
}

// admit removes and returns every task that has arrived by now.
func (b *backlog) admit(now int) []*task {
	n := 0
	for n < len(b.tasks) && b.tasks[n].info.ArrivalTime <= now {
		n++
	}
	arrived := b.tasks[:n:n]
	b.tasks = b.tasks[n:]
	return arrived
}

// readyQueue holds arrived, unfinished tasks in admission order.
type readyQueue struct {
	tasks []*task
}

func (q *readyQueue) len() int {
	return len(q.tasks)
}

func (q *readyQueue) push(tasks ...*task) {
	q.tasks = append(q.tasks, tasks...)
}

func (q *readyQueue) popFront() *task {
	return q.remove(0)
}

func (q *readyQueue) remove(i int) *task {
	t := q.tasks[i]
	q.tasks = append(q.tasks[:i:i], q.tasks[i+1:]...)
	return t
}

// insertBySeq puts t back at its admission position.
func (q *readyQueue) insertBySeq(t *task) {
	i := sort.Search(len(q.tasks), func(i int) bool { return q.tasks[i].seq > t.seq })
	q.tasks = append(q.tasks, nil)
	copy(q.tasks[i+1:], q.tasks[i:])
	q.tasks[i] = t
}

// best returns the index of the first task for which no later task is
// strictly better, or -1 when the queue is empty.
func (q *readyQueue) best(better func(a, b *task) bool) int {
	if len(q.tasks) == 0 {
		return -1
	}
	idx := 0
	for i := 1; i < len(q.tasks); i++ {
		if better(q.tasks[i], q.tasks[idx]) {
			idx = i
		}
	}
	return idx
}

// run gives t the CPU for duration ticks, recording the first allocation.
func run(cpu *core.CPU, t *task, duration int) {
	if !t.started {
		t.started = true
		t.info.ResponseTime = cpu.Clock() - t.info.ArrivalTime
	}
	cpu.Execute(t.info.Process, duration)
	t.info.RemainingTime -= duration
}

// complete derives the final metrics of t at time at.
func complete(t *task, at int) core.ProcessInfo {
	t.info.CompletionTime = at
	t.info.TurnaroundTime = at - t.info.ArrivalTime
	t.info.WaitingTime = t.info.TurnaroundTime - t.info.BurstTime
	return t.info
}

func newResult(cpu *core.CPU, completed []core.ProcessInfo) core.SchedulingResult {
	return core.SchedulingResult{
		Timeline:    cpu.Timeline(),
		ProcessInfo: completed,
		Metric:      cpu.Metric(),
	}
}

// runToCompletion is the shared loop of every non-preemptive policy: admit,
// idle if nothing is ready, otherwise pick one task and run it to the end.
func runToCompletion(processes []core.Process, pick func(q *readyQueue, now int) int) core.SchedulingResult {
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
		t := ready.remove(pick(ready, cpu.Clock()))
		run(cpu, t, t.remaining())
		completed = append(completed, complete(t, cpu.Clock()))
	}
	return newResult(cpu, completed)
}
