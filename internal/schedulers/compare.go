package schedulers

import (
	"fmt"
	"sync"

	"cpu-scheduler/internal/core"
)

// Comparison is one algorithm's outcome over a shared process set.
type Comparison struct {
	Algorithm Algorithm
	Result    core.SchedulingResult
}

// CompareAll runs every algorithm in Algorithms against its own copy of
// processes. Runs proceed concurrently; results keep the order of
// Algorithms.
func CompareAll(processes []core.Process, opts Options) ([]Comparison, error) {
	if err := core.Validate(processes); err != nil {
		return nil, fmt.Errorf("invalid processes: %w", err)
	}
	for _, algorithm := range Algorithms {
		if err := opts.validate(algorithm); err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
	}

	comparisons := make([]Comparison, len(Algorithms))
	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, algorithm := range Algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			comparisons[i] = Comparison{
				Algorithm: algorithm,
				Result:    dispatch(algorithm, core.CloneProcesses(processes), opts),
			}
		}(i, algorithm)
	}
	wg.Wait()
	return comparisons, nil
}
