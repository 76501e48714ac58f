package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyProcessID  = errors.New("process id must not be empty")
	ErrNegativeArrival = errors.New("arrival time must be >= 0")
	ErrInvalidBurst    = errors.New("burst time must be >= 1")
)

// Validate reports the first process that cannot be simulated.
// An empty list is valid.
func Validate(processes []Process) error {
	for i, p := range processes {
		switch {
		case p.ID == "":
			return fmt.Errorf("process[%d]: %w", i, ErrEmptyProcessID)
		case p.ArrivalTime < 0:
			return fmt.Errorf("process[%d] %q: %w, got %d", i, p.ID, ErrNegativeArrival, p.ArrivalTime)
		case p.BurstTime < 1:
			return fmt.Errorf("process[%d] %q: %w, got %d", i, p.ID, ErrInvalidBurst, p.BurstTime)
		}
	}
	return nil
}
