package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/calendar"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/repository"
)

var (
	listWeek  bool
	listMonth bool
	listDate  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded chunks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show the whole week")
	listCmd.Flags().BoolVar(&listMonth, "month", false, "Show the whole month")
	listCmd.Flags().StringVar(&listDate, "date", "", "Date inside the period (YYYY-MM-DD, default today)")
}

func runList(cmd *cobra.Command, args []string) error {
	date, err := flagDate(listDate)
	if err != nil {
		return err
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}

	var from, to time.Time
	switch {
	case listMonth:
		from, to = calendar.MonthRange(date)
	case listWeek:
		from, to = calendar.WeekRange(date)
	default:
		from, to = calendar.DateOf(date), calendar.DateOf(date)
	}

	printChunks(repo, from, to)
	return nil
}

// flagDate parses a --date flag value, defaulting to today when empty.
func flagDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// printChunks prints chunks grouped by date, one block per day with a total.
func printChunks(repo *repository.Repository, from, to time.Time) {
	printed := 0
	for d := calendar.DateOf(from); !d.After(calendar.DateOf(to)); d = d.AddDate(0, 0, 1) {
		entries := repo.EntriesForDate(d)
		if len(entries) == 0 {
			continue
		}
		fmt.Println(d.Format(model.DateFormat))
		for _, c := range entries {
			desc := ""
			if c.Description != "" {
				desc = "  " + c.Description
			}
			fmt.Printf("  #%-4d %s%s\n", c.ID, formatMinutes(c.Minutes), desc)
		}
		fmt.Printf("  total %s\n", formatMinutes(repo.TotalForDay(d)))
		printed += len(entries)
	}
	if printed == 0 {
		fmt.Println("No chunks found.")
	}
}
