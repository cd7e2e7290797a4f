package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/calendar"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/repository"
)

var (
	reportWeek  bool
	reportMonth bool
	reportDate  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show quota progress for a week or month",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportWeek, "week", false, "Report the ISO week (default)")
	reportCmd.Flags().BoolVar(&reportMonth, "month", false, "Report the calendar month instead of the week")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Date inside the period (YYYY-MM-DD, default today)")
}

func runReport(cmd *cobra.Command, args []string) error {
	date, err := flagDate(reportDate)
	if err != nil {
		return err
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}

	var label string
	var p repository.Progress
	if reportMonth {
		from, to := calendar.MonthRange(date)
		label = fmt.Sprintf("Month %s (%s – %s)",
			date.Format("2006-01"), from.Format(model.DateFormat), to.Format(model.DateFormat))
		p = repo.MonthProgress(date)
	} else {
		from, to := calendar.WeekRange(date)
		year, week := date.ISOWeek()
		label = fmt.Sprintf("Week %d-W%02d (%s – %s)",
			year, week, from.Format(model.DateFormat), to.Format(model.DateFormat))
		p = repo.WeekProgress(date)
	}

	printProgress(label, p)
	return nil
}

// printProgress renders a Progress block. Remaining is clamped to zero for
// display only; a surplus is reported separately.
func printProgress(label string, p repository.Progress) {
	fmt.Println(label)
	fmt.Printf("  Required:  %d min (%.2f hrs)\n", p.Required, float64(p.Required)/60)
	fmt.Printf("  Billed:    %d min (%.2f hrs)\n", p.Billed, float64(p.Billed)/60)
	if p.Remaining < 0 {
		fmt.Printf("  Remaining: 0 min (surplus of %s)\n", formatMinutes(-p.Remaining))
	} else {
		fmt.Printf("  Remaining: %d min (%.2f hrs)\n", p.Remaining, float64(p.Remaining)/60)
	}
	if p.Required > 0 {
		fmt.Printf("  Completed: %.1f%%\n", float64(p.Billed)/float64(p.Required)*100)
	}
}
