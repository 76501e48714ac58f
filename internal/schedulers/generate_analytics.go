package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse derives summary analytics from a result. Utilization and
// throughput are measured over the makespan [0, last completion).
func GenerateResponse(algorithm Algorithm, result core.SchedulingResult) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(result.ProcessInfo)

	totalTime := float64(util.Makespan(result.ProcessInfo))
	busyTime := 0
	for _, block := range result.Timeline {
		busyTime += block.Duration()
	}

	var utilization, throughput float64
	if totalTime > 0 {
		utilization = float64(busyTime) / totalTime
		throughput = float64(len(result.ProcessInfo)) / totalTime
	}

	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		AlgorithmName:         algorithm.Name(),
		TotalTime:             totalTime,
		IdleTime:              totalTime - float64(busyTime),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Timeline:              generateTimeline(result.Timeline),
		Details:               generateProcessDetails(result.ProcessInfo),
	}
}

func generateTimeline(blocks []core.TimelineBlock) []responses.TimelineBlockResponse {
	timeline := make([]responses.TimelineBlockResponse, len(blocks))
	for i, block := range blocks {
		timeline[i] = responses.TimelineBlockResponse{
			ProcessId:  block.ProcessID,
			StartTime:  block.StartTime,
			EndTime:    block.EndTime,
			ColorIndex: block.ColorIndex,
		}
	}
	return timeline
}

func generateProcessDetails(infos []core.ProcessInfo) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, len(infos))
	for i, process := range infos {
		details[i] = responses.ProcessResponse{
			ProcessId:      process.ID,
			ArrivalTime:    process.ArrivalTime,
			BurstTime:      process.BurstTime,
			Priority:       process.Priority,
			ColorIndex:     process.ColorIndex,
			CompletionTime: process.CompletionTime,
			ResponseTime:   process.ResponseTime,
			TurnAroundTime: process.TurnaroundTime,
			WaitingTime:    process.WaitingTime,
		}
	}
	return details
}
