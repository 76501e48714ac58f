package core

// PaletteSize is the number of distinct color tags handed out to processes
// that do not carry one.
const PaletteSize = 10

// Process is the caller-owned description of a unit of CPU work.
// The engine copies it and never writes back.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int // higher value is more urgent
	ColorIndex  int // presentation tag, passed through untouched
}

// ProcessInfo is a completed process with its metrics populated.
type ProcessInfo struct {
	Process
	RemainingTime  int
	ResponseTime   int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
}

// TimelineBlock is one contiguous interval [StartTime, EndTime) during which
// a single process held the CPU.
type TimelineBlock struct {
	ProcessID  string
	StartTime  int
	EndTime    int
	ColorIndex int
}

func (b TimelineBlock) Duration() int {
	return b.EndTime - b.StartTime
}

// SchedulingResult is the output of one simulation run.
type SchedulingResult struct {
	Timeline    []TimelineBlock
	ProcessInfo []ProcessInfo
	Metric      CpuMetric
}

// CloneProcesses returns an independent copy of processes.
func CloneProcesses(processes []Process) []Process {
	if processes == nil {
		return nil
	}
	clone := make([]Process, len(processes))
	copy(clone, processes)
	return clone
}
