package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
)

var (
	configPath string // Path to the yaml config file
	logLevel   string // Log verbosity level, overrides the config file

	cfg *config.SchedulerConfig
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "cpu-scheduler",
	Short:         "Uniprocessor CPU scheduling simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadSchedulerConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("log") {
			cfg.LogLevel = logLevel
		}
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
