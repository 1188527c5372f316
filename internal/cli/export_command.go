package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ExportCommand writes a user's entries as CSV
type ExportCommand struct {
	app *App
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute writes to path, or to the command output when path is empty.
func (c *ExportCommand) Execute(ctx context.Context, username, path string) error {
	if path == "" {
		if err := c.app.api.ExportCSV(ctx, username, c.app.out); err != nil {
			return c.app.errors.Handle("export entries", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := c.app.api.ExportCSV(ctx, username, f); err != nil {
		f.Close()
		os.Remove(path)
		return c.app.errors.Handle("export entries", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	c.app.success.Fprintf(c.app.out, "Exported entries for %s to %s\n", username, path)
	return nil
}

func (r *RootCommand) newExportCommand() *cobra.Command {
	var username, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's entries as CSV",
		Long: `Export a user's entries as CSV, newest first, with the columns
date, start_time, end_time, hours, description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, app *App) error {
				return NewExportCommand(app).Execute(ctx, username, output)
			})
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "Username")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
