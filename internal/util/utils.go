package util

import "cpu-scheduler/internal/core"

// CalculateAverage returns the mean waiting, response and turnaround time of
// completed processes. An empty slice yields zeros.
func CalculateAverage(processDetails []core.ProcessInfo) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return
	}
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}

// Makespan is the latest completion time among processes.
func Makespan(processDetails []core.ProcessInfo) int {
	var last int
	for _, process := range processDetails {
		if process.CompletionTime > last {
			last = process.CompletionTime
		}
	}
	return last
}
