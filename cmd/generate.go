package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/generator"
	"cpu-scheduler/internal/requests"
)

var (
	generateSeed int64  // Seed for random generation
	generateOut  string // Output file; stdout when empty
)

// generateCmd writes a random process set
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random process set",
	RunE: func(cmd *cobra.Command, args []string) error {
		processes, err := generator.Generate(generator.NewRand(generateSeed), cfg.Generator)
		if err != nil {
			return err
		}
		request := requests.ScheduleRequests{Jobs: requests.FromProcesses(processes)}

		if generateOut == "" {
			return writeYAML(cmd.OutOrStdout(), request)
		}
		f, err := os.Create(generateOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", generateOut, err)
		}
		defer f.Close()

		switch ext := strings.ToLower(filepath.Ext(generateOut)); ext {
		case ".yaml", ".yml":
			err = writeYAML(f, request)
		case ".json":
			err = json.NewEncoder(f).Encode(request)
		case ".csv":
			err = writeCSV(f, request)
		default:
			err = fmt.Errorf("%w: %q", requests.ErrUnsupportedFormat, ext)
		}
		if err != nil {
			return err
		}
		return f.Close()
	},
}

func writeYAML(w io.Writer, request requests.ScheduleRequests) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(request); err != nil {
		return fmt.Errorf("encoding processes: %w", err)
	}
	return encoder.Close()
}

func writeCSV(w io.Writer, request requests.ScheduleRequests) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "arrival", "burst", "priority"}); err != nil {
		return err
	}
	for _, job := range request.Jobs {
		row := []string{job.ProcessId, strconv.Itoa(job.ArrivalTime), strconv.Itoa(job.BurstTime), strconv.Itoa(job.Priority)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func init() {
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "Seed for random process generation")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output file (.yaml, .yml, .json or .csv)")

	rootCmd.AddCommand(generateCmd)
}
