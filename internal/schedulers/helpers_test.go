package schedulers

import (
	"cpu-scheduler/internal/core"
)

type span struct {
	id         string
	start, end int
}

func spans(result core.SchedulingResult) []span {
	out := make([]span, len(result.Timeline))
	for i, b := range result.Timeline {
		out[i] = span{b.ProcessID, b.StartTime, b.EndTime}
	}
	return out
}

func proc(id string, arrival, burst int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, BurstTime: burst}
}

func procWithPriority(id string, arrival, burst, priority int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, BurstTime: burst, Priority: priority}
}

func infoByID(t interface{ Fatalf(string, ...any) }, result core.SchedulingResult, id string) core.ProcessInfo {
	for _, p := range result.ProcessInfo {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("process %q missing from result", id)
	return core.ProcessInfo{}
}

func completionOrder(result core.SchedulingResult) []string {
	ids := make([]string, len(result.ProcessInfo))
	for i, p := range result.ProcessInfo {
		ids[i] = p.ID
	}
	return ids
}
