package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var (
	compareInput  inputFlags
	compareFormat string
)

// compareCmd runs every algorithm over the same process set
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare every scheduling algorithm over one process set",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := compareInput.load()
		if err != nil {
			return err
		}
		comparisons, err := schedulers.CompareAll(request.Processes(), compareInput.options(request))
		if err != nil {
			return err
		}

		results := make([]responses.ScheduleResponse, len(comparisons))
		for i, c := range comparisons {
			results[i] = schedulers.GenerateResponse(c.Algorithm, c.Result)
		}

		switch compareFormat {
		case "table":
			report.RenderComparison(cmd.OutOrStdout(), results)
			return nil
		case "json":
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(responses.CompareResponse{Results: results})
		default:
			return fmt.Errorf("unknown format %q; valid: table, json", compareFormat)
		}
	},
}

func init() {
	compareInput.register(compareCmd)
	compareCmd.Flags().StringVar(&compareFormat, "format", "table", "Output format (table, json)")

	rootCmd.AddCommand(compareCmd)
}
