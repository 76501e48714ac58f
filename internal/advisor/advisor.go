// Package advisor suggests a scheduling discipline from the shape of a
// workload.
package advisor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

const (
	// burstVarianceThreshold separates uniform from mixed burst lengths.
	burstVarianceThreshold = 5.0
	// spreadArrivalThreshold marks arrivals as spread out over time.
	spreadArrivalThreshold = 10.0
	// crowdedThreshold is the process count above which round robin is fair enough.
	crowdedThreshold = 5
)

// Recommendation is the advisor's pick and the rule that produced it.
type Recommendation struct {
	Algorithm schedulers.Algorithm
	Reason    string
}

// Recommend applies a fixed rule ladder over burst variance, arrival spread
// and process count. It never runs the engine.
func Recommend(processes []core.Process) Recommendation {
	if len(processes) == 0 {
		return Recommendation{schedulers.FirstComeFirstServe, "no processes to schedule"}
	}

	bursts := make([]float64, len(processes))
	arrivals := make([]float64, len(processes))
	sameArrival := true
	for i, p := range processes {
		bursts[i] = float64(p.BurstTime)
		arrivals[i] = float64(p.ArrivalTime)
		if p.ArrivalTime != processes[0].ArrivalTime {
			sameArrival = false
		}
	}
	variance := stat.PopVariance(bursts, nil)
	maxArrival := floats.Max(arrivals)

	switch {
	case sameArrival && variance > burstVarianceThreshold:
		return Recommendation{schedulers.ShortestJobFirst,
			fmt.Sprintf("all processes arrive together and burst variance %.2f is high", variance)}
	case sameArrival:
		return Recommendation{schedulers.FirstComeFirstServe,
			fmt.Sprintf("all processes arrive together and burst variance %.2f is low", variance)}
	case variance > burstVarianceThreshold:
		return Recommendation{schedulers.ShortestRemainingTimeFirst,
			fmt.Sprintf("staggered arrivals with high burst variance %.2f", variance)}
	case maxArrival > spreadArrivalThreshold:
		return Recommendation{schedulers.HighestResponseRatioNext,
			fmt.Sprintf("arrivals spread out up to t=%.0f", maxArrival)}
	case len(processes) > crowdedThreshold:
		return Recommendation{schedulers.RoundRobin,
			fmt.Sprintf("%d processes with similar characteristics", len(processes))}
	default:
		return Recommendation{schedulers.PriorityScheduling, "few similar processes, honor priorities"}
	}
}
