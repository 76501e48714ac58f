package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var (
	runInput     inputFlags
	runAlgorithm string // Algorithm id, overrides the file and config
	runFormat    string // Output format: table, csv or json
)

// runCmd schedules one process set with one algorithm
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling algorithm over a process set",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := runInput.load()
		if err != nil {
			return err
		}

		algorithm := schedulers.Algorithm(cfg.DefaultAlgorithm)
		if request.Algorithm != "" {
			algorithm = schedulers.Algorithm(request.Algorithm)
		}
		if cmd.Flags().Changed("algorithm") {
			algorithm = schedulers.Algorithm(runAlgorithm)
		}
		algorithm = algorithm.Resolve()

		logrus.Infof("Starting %s over %d processes", algorithm.Name(), len(request.Jobs))
		result, err := schedulers.Schedule(algorithm, request.Processes(), runInput.options(request))
		if err != nil {
			return err
		}
		return writeResponse(cmd.OutOrStdout(), runFormat, schedulers.GenerateResponse(algorithm, result))
	},
}

func writeResponse(w io.Writer, format string, response responses.ScheduleResponse) error {
	switch format {
	case "table":
		report.Render(w, response)
		return nil
	case "csv":
		return report.WriteCSV(w, response)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	default:
		return fmt.Errorf("unknown format %q; valid: table, csv, json", format)
	}
}

func init() {
	runInput.register(runCmd)
	runCmd.Flags().StringVarP(&runAlgorithm, "algorithm", "a", "fcfs", "Algorithm (fcfs, sjf, srtf, rr, priority, hrrn, mlfq)")
	runCmd.Flags().StringVar(&runFormat, "format", "table", "Output format (table, csv, json)")

	rootCmd.AddCommand(runCmd)
}
