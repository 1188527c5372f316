package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workhours/internal/accounting"
	"workhours/internal/domain"
)

// ReportCommand prints weekly and monthly summaries
type ReportCommand struct {
	app *App
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{app: app}
}

// Week prints the Monday to Friday days containing date with progress
// toward the weekly goal.
func (c *ReportCommand) Week(ctx context.Context, username, date string) error {
	report, err := c.app.api.WeekReport(ctx, username, date)
	if err != nil {
		return c.app.errors.Handle("build week report", err)
	}
	if len(report.Days) == 0 {
		return nil
	}

	c.app.heading.Fprintf(c.app.out, "Week of %s\n", report.Days[0].Date)
	tw := tabwriter.NewWriter(c.app.out, 0, 0, 2, ' ', 0)
	for _, day := range report.Days {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%d entries\n",
			shortWeekday(day.Date), day.Date, accounting.FormatDuration(day.Hours), len(day.Entries))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	c.app.printf("Progress: ")
	c.app.progressLine(report.Progress)
	return nil
}

// Month prints month split into calendar weeks with per-week and
// monthly totals.
func (c *ReportCommand) Month(ctx context.Context, username, month string) error {
	summary, err := c.app.api.MonthReport(ctx, username, month)
	if err != nil {
		return c.app.errors.Handle("build month report", err)
	}

	c.app.heading.Fprintf(c.app.out, "%s %d\n", summary.Month, summary.Year)
	tw := tabwriter.NewWriter(c.app.out, 0, 0, 2, ' ', 0)
	for _, week := range summary.Weeks {
		fmt.Fprintf(tw, "  Week %d\t%s - %s\t%s\n",
			week.WeekNumber, week.StartDate, week.EndDate, accounting.FormatDuration(week.TotalHours))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	c.app.heading.Fprintf(c.app.out, "Month total: %s\n", accounting.FormatDuration(summary.MonthlyTotal))
	return nil
}

func shortWeekday(d domain.Date) string {
	return d.Weekday().String()[:3]
}

func (r *RootCommand) newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a user's hours",
	}

	var weekUser, date string
	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Show the work week containing a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, app *App) error {
				return NewReportCommand(app).Week(ctx, weekUser, date)
			})
		},
	}
	weekCmd.Flags().StringVar(&weekUser, "user", "", "Username")
	weekCmd.Flags().StringVar(&date, "date", "", "Any date in the week as YYYY-MM-DD (default: today)")
	_ = weekCmd.MarkFlagRequired("user")

	var monthUser, month string
	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Show a month split into calendar weeks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, app *App) error {
				return NewReportCommand(app).Month(ctx, monthUser, month)
			})
		},
	}
	monthCmd.Flags().StringVar(&monthUser, "user", "", "Username")
	monthCmd.Flags().StringVar(&month, "month", "", "Month as YYYY-MM (default: this month)")
	_ = monthCmd.MarkFlagRequired("user")

	reportCmd.AddCommand(weekCmd, monthCmd)
	return reportCmd
}
