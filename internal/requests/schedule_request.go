package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
	ColorIndex  *int   `json:"color_index,omitempty" yaml:"color_index,omitempty"`
}

type ScheduleRequests struct {
	Algorithm      string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	TimeQuantum    int    `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	FeedbackLevels []int  `json:"feedback_levels,omitempty" yaml:"feedback_levels,omitempty"`
	Jobs           []Job  `json:"processes" yaml:"processes"`
}

// Processes converts jobs to engine input. Jobs without a color tag get one
// from their position.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		colorIndex := i % core.PaletteSize
		if job.ColorIndex != nil {
			colorIndex = *job.ColorIndex
		}
		processes[i] = core.Process{
			ID:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
			ColorIndex:  colorIndex,
		}
	}
	return processes
}

// FromProcesses builds jobs carrying explicit color tags.
func FromProcesses(processes []core.Process) []Job {
	jobs := make([]Job, len(processes))
	for i, p := range processes {
		colorIndex := p.ColorIndex
		jobs[i] = Job{
			ProcessId:   p.ID,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
			ColorIndex:  &colorIndex,
		}
	}
	return jobs
}
