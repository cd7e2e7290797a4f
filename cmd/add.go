package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/calendar"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
)

var addDesc string

var addCmd = &cobra.Command{
	Use:   "add [date] <minutes>...",
	Short: "Record one or more chunks of billed minutes",
	Long: `add records chunks of worked minutes against a date. The first argument
may be a date (YYYY-MM-DD); when omitted the chunks are billed to today.
Every remaining argument is one chunk's minute count, so

  workbill add 2025-09-30 60 30 --desc "Sprint review"

records two chunks on that date sharing the description.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Description shared by the added chunks")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := time.Now()
	if d, err := time.Parse(model.DateFormat, args[0]); err == nil {
		date = d
		args = args[1:]
		if len(args) == 0 {
			return fmt.Errorf("no minute values given")
		}
	}

	minutes, err := parseMinutes(args)
	if err != nil {
		return err
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}
	if err := repo.AddEntries(date, minutes, addDesc); err != nil {
		return err
	}

	day := calendar.DateOf(date)
	fmt.Printf("Recorded %d chunk(s) on %s. Total for the day: %s.\n",
		len(minutes), day.Format(model.DateFormat), formatMinutes(repo.TotalForDay(day)))
	return nil
}

// parseMinutes converts CLI arguments to minute counts, rejecting anything
// that is not a positive integer.
func parseMinutes(args []string) ([]int, error) {
	minutes := make([]int, 0, len(args))
	for _, a := range args {
		m, err := strconv.Atoi(a)
		if err != nil || m <= 0 {
			return nil, fmt.Errorf("invalid minute value %q: want a positive integer", a)
		}
		minutes = append(minutes, m)
	}
	return minutes, nil
}

// formatMinutes renders a minute count as a human-readable string like
// "1h 30m" or "45m".
func formatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
