package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's billed minutes against the daily goal",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	now := time.Now()
	day := repo.DayProgress(now)

	fmt.Printf("Today (%s): %s billed, target %s.\n",
		now.Format(model.DateFormat), formatMinutes(day.Billed), formatMinutes(day.Required))
	if day.Remaining > 0 {
		fmt.Printf("  %s still to bill today.\n", formatMinutes(day.Remaining))
	} else if day.Remaining < 0 {
		fmt.Printf("  Daily goal reached, surplus of %s.\n", formatMinutes(-day.Remaining))
	} else if day.Required > 0 {
		fmt.Println("  Daily goal reached.")
	}

	week := repo.WeekProgress(now)
	fmt.Printf("Week: %s of %s billed.\n", formatMinutes(week.Billed), formatMinutes(week.Required))
	return nil
}
