package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/advisor"
	"cpu-scheduler/internal/core"
)

var recommendInput inputFlags

// recommendCmd suggests an algorithm for a process set
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest a scheduling algorithm for a process set",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := recommendInput.load()
		if err != nil {
			return err
		}
		processes := request.Processes()
		if err := core.Validate(processes); err != nil {
			return err
		}
		recommendation := advisor.Recommend(processes)
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n",
			recommendation.Algorithm.Name(), recommendation.Algorithm, recommendation.Reason)
		return err
	},
}

func init() {
	recommendInput.register(recommendCmd)
	rootCmd.AddCommand(recommendCmd)
}
