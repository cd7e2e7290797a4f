package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/config"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/repository"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/storage"
)

var (
	dataFile string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "workbill",
	Short: "Work Billing Tracker – file-based work time billing",
	Long: `workbill records chunks of worked minutes against calendar dates in a
single CSV file and reports progress against daily, weekly and monthly
minute quotas.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Path of the CSV data file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
}

// openRepository resolves the data file from flags and config and returns
// the repository bound to it.
func openRepository() (*repository.Repository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	path, err := config.DataFilePath(cfg, dataFile)
	if err != nil {
		return nil, err
	}
	return repository.New(storage.New(path), cfg.DailyGoalMinutes)
}
