// Package generator produces synthetic process sets for demos and
// benchmarking the scheduling disciplines.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"cpu-scheduler/internal/core"
)

// Config bounds the generated values. All bounds are inclusive.
type Config struct {
	MinProcesses int
	MaxProcesses int
	MaxArrival   int
	MaxBurst     int
	MaxPriority  int
}

// DefaultConfig yields 3-8 processes arriving in 0-9 with bursts and
// priorities in 1-10.
func DefaultConfig() Config {
	return Config{
		MinProcesses: 3,
		MaxProcesses: 8,
		MaxArrival:   9,
		MaxBurst:     10,
		MaxPriority:  10,
	}
}

func (c Config) Validate() error {
	switch {
	case c.MinProcesses < 1 || c.MaxProcesses < c.MinProcesses:
		return fmt.Errorf("process count range [%d, %d] is invalid", c.MinProcesses, c.MaxProcesses)
	case c.MaxArrival < 0:
		return errors.New("max arrival must be >= 0")
	case c.MaxBurst < 1:
		return errors.New("max burst must be >= 1")
	case c.MaxPriority < 1:
		return errors.New("max priority must be >= 1")
	}
	return nil
}

// Generate draws a process set from rng. Ids are P1..Pn and colors cycle
// through the palette in order.
func Generate(rng *rand.Rand, cfg Config) ([]core.Process, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	n := cfg.MinProcesses + rng.Intn(cfg.MaxProcesses-cfg.MinProcesses+1)
	processes := make([]core.Process, n)
	for i := range processes {
		processes[i] = core.Process{
			ID:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: rng.Intn(cfg.MaxArrival + 1),
			BurstTime:   rng.Intn(cfg.MaxBurst) + 1,
			Priority:    rng.Intn(cfg.MaxPriority) + 1,
			ColorIndex:  i % core.PaletteSize,
		}
	}
	return processes, nil
}

// NewRand returns a deterministic source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
