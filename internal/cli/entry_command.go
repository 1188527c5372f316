package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workhours/internal/accounting"
	"workhours/internal/validation"
)

// EntryCommand adds and lists time entries for a user
type EntryCommand struct {
	app *App
}

// NewEntryCommand creates a new entry command handler
func NewEntryCommand(app *App) *EntryCommand {
	return &EntryCommand{app: app}
}

// Add records one entry for username.
func (c *EntryCommand) Add(ctx context.Context, username string, in validation.EntryInput) error {
	entry, err := c.app.api.AddEntry(ctx, username, in)
	if err != nil {
		return c.app.errors.Handle("add entry", err)
	}
	c.app.success.Fprintf(c.app.out, "Recorded %s", accounting.FormatDuration(accounting.EntryHours(*entry)))
	c.app.printf(" on %s, %s-%s: %s\n", entry.Date, entry.StartTime, entry.EndTime, entry.Description)
	return nil
}

// List prints username's entries, newest first, with a grand total.
func (c *EntryCommand) List(ctx context.Context, username string) error {
	entries, err := c.app.api.ListEntries(ctx, username)
	if err != nil {
		return c.app.errors.Handle("list entries", err)
	}
	if len(entries) == 0 {
		c.app.printf("No entries found\n")
		return nil
	}

	tw := tabwriter.NewWriter(c.app.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSTART\tEND\tDURATION\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Date, e.StartTime, e.EndTime, accounting.FormatDuration(accounting.EntryHours(e)), e.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	c.app.heading.Fprintf(c.app.out, "Total: %s", accounting.FormatDuration(accounting.TotalHours(entries)))
	c.app.printf(" in %d entries\n", len(entries))
	return nil
}

func (r *RootCommand) newEntryCommand() *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Add or list time entries",
	}

	var username string
	var in validation.EntryInput
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a time entry",
		Long: `Record a time entry for one day. Entries cannot cross midnight:
the end time must be after the start time on the same date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, app *App) error {
				return NewEntryCommand(app).Add(ctx, username, in)
			})
		},
	}
	addCmd.Flags().StringVar(&username, "user", "", "Username")
	addCmd.Flags().StringVar(&in.Date, "date", "", "Date as YYYY-MM-DD")
	addCmd.Flags().StringVar(&in.StartTime, "start", "", "Start time as HH:MM")
	addCmd.Flags().StringVar(&in.EndTime, "end", "", "End time as HH:MM")
	addCmd.Flags().StringVar(&in.Description, "description", "", "What the time was spent on")
	for _, name := range []string{"user", "date", "start", "end"} {
		_ = addCmd.MarkFlagRequired(name)
	}

	var listUser string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, app *App) error {
				return NewEntryCommand(app).List(ctx, listUser)
			})
		},
	}
	listCmd.Flags().StringVar(&listUser, "user", "", "Username")
	_ = listCmd.MarkFlagRequired("user")

	entryCmd.AddCommand(addCmd, listCmd)
	return entryCmd
}
