package schedulers

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// Algorithm identifies a scheduling discipline.
type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	RoundRobin                 Algorithm = "rr"
	PriorityScheduling         Algorithm = "priority"
	HighestResponseRatioNext   Algorithm = "hrrn"
	MultilevelFeedbackQueue    Algorithm = "mlfq"
)

// Algorithms lists every supported discipline in presentation order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	RoundRobin,
	PriorityScheduling,
	HighestResponseRatioNext,
	MultilevelFeedbackQueue,
}

var algorithmNames = map[Algorithm]string{
	FirstComeFirstServe:        "First Come First Serve",
	ShortestJobFirst:           "Shortest Job First",
	ShortestRemainingTimeFirst: "Shortest Remaining Time First",
	RoundRobin:                 "Round Robin",
	PriorityScheduling:         "Priority Scheduling",
	HighestResponseRatioNext:   "Highest Response Ratio Next",
	MultilevelFeedbackQueue:    "Multilevel Feedback Queue",
}

var (
	ErrInvalidTimeQuantum    = errors.New("time quantum must be >= 1")
	ErrInvalidFeedbackLevels = errors.New("feedback levels must be a non-empty list of quanta >= 1")
)

// Name returns the human readable name, or the raw id if unknown.
func (a Algorithm) Name() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return string(a)
}

// IsValid reports whether a names a supported discipline.
func (a Algorithm) IsValid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// Resolve maps an unrecognized id to FirstComeFirstServe.
func (a Algorithm) Resolve() Algorithm {
	if a.IsValid() {
		return a
	}
	logrus.Warnf("unknown algorithm %q, falling back to %s", string(a), FirstComeFirstServe)
	return FirstComeFirstServe
}

// Options carries the tunables of the preemptive disciplines.
type Options struct {
	TimeQuantum    int   // round robin
	FeedbackLevels []int // mlfq; nil derives levels from TimeQuantum
}

func (o Options) feedbackLevels() []int {
	if o.FeedbackLevels == nil {
		return DefaultFeedbackLevels(o.TimeQuantum)
	}
	return o.FeedbackLevels
}

func (o Options) validate(algorithm Algorithm) error {
	switch algorithm {
	case RoundRobin:
		if o.TimeQuantum < 1 {
			return fmt.Errorf("%w, got %d", ErrInvalidTimeQuantum, o.TimeQuantum)
		}
	case MultilevelFeedbackQueue:
		levels := o.feedbackLevels()
		if len(levels) == 0 {
			return ErrInvalidFeedbackLevels
		}
		for _, q := range levels {
			if q < 1 {
				return fmt.Errorf("%w, got %v", ErrInvalidFeedbackLevels, levels)
			}
		}
	}
	return nil
}

// Schedule validates processes and runs the requested algorithm on a
// private copy of them. Unknown ids fall back to first-come-first-serve; an
// empty process list yields an empty result.
func Schedule(algorithm Algorithm, processes []core.Process, opts Options) (core.SchedulingResult, error) {
	algorithm = algorithm.Resolve()
	if err := core.Validate(processes); err != nil {
		return core.SchedulingResult{}, fmt.Errorf("invalid processes: %w", err)
	}
	if err := opts.validate(algorithm); err != nil {
		return core.SchedulingResult{}, fmt.Errorf("%s: %w", algorithm, err)
	}
	return dispatch(algorithm, core.CloneProcesses(processes), opts), nil
}

func dispatch(algorithm Algorithm, processes []core.Process, opts Options) core.SchedulingResult {
	switch algorithm {
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, opts.TimeQuantum)
	case PriorityScheduling:
		return SchedulePriority(processes)
	case HighestResponseRatioNext:
		return ScheduleHighestResponseRatioNext(processes)
	case MultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(processes, opts.feedbackLevels())
	default:
		return ScheduleFirstComeFirstServe(processes)
	}
}
