package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/generator"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

// inputFlags selects the process set and scheduler tunables of a command.
type inputFlags struct {
	file   string
	random bool
	seed   int64

	quantum int
	levels  []int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Process file (.yaml, .yml, .json or .csv)")
	cmd.Flags().BoolVar(&f.random, "random", false, "Generate a random process set instead of reading a file")
	cmd.Flags().Int64Var(&f.seed, "seed", 42, "Seed for random process generation")
	cmd.Flags().IntVarP(&f.quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().IntSliceVar(&f.levels, "levels", nil, "Comma-separated mlfq level quanta (default from config)")
}

// load returns the request to schedule. Flags override values carried by
// the file, which override the config.
func (f *inputFlags) load() (*requests.ScheduleRequests, error) {
	var request *requests.ScheduleRequests
	switch {
	case f.file != "" && f.random:
		return nil, fmt.Errorf("--file and --random are mutually exclusive")
	case f.file != "":
		loaded, err := requests.LoadScheduleRequests(f.file)
		if err != nil {
			return nil, err
		}
		request = loaded
	case f.random:
		processes, err := generator.Generate(generator.NewRand(f.seed), cfg.Generator)
		if err != nil {
			return nil, err
		}
		request = &requests.ScheduleRequests{Jobs: requests.FromProcesses(processes)}
	default:
		return nil, fmt.Errorf("one of --file or --random is required")
	}

	if f.quantum != 0 {
		request.TimeQuantum = f.quantum
	}
	if f.levels != nil {
		request.FeedbackLevels = f.levels
	}
	return request, nil
}

func (f *inputFlags) options(request *requests.ScheduleRequests) schedulers.Options {
	opts := schedulers.Options{
		TimeQuantum:    request.TimeQuantum,
		FeedbackLevels: request.FeedbackLevels,
	}
	if opts.TimeQuantum == 0 {
		opts.TimeQuantum = cfg.RoundRobinTimeQuantum
	}
	if opts.FeedbackLevels == nil {
		opts.FeedbackLevels = cfg.MultilevelFeedbackQueueLevelsTimeQuantum
	}
	return opts
}
