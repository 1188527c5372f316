package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"workhours/internal/accounting"
	"workhours/internal/api"
)

// App carries what every subcommand needs once the store is open
type App struct {
	api    api.BusinessAPI
	out    io.Writer
	errors *ErrorHandler

	heading *color.Color
	success *color.Color
	warn    *color.Color
	muted   *color.Color
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(businessAPI api.BusinessAPI, out io.Writer) *App {
	return &App{
		api:     businessAPI,
		out:     out,
		errors:  NewErrorHandler(),
		heading: color.New(color.Bold),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		muted:   color.New(color.Faint),
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// progressLine renders weekly progress, green once the goal is met.
func (a *App) progressLine(p accounting.Progress) {
	c := a.warn
	if p.GoalReached() {
		c = a.success
	}
	c.Fprintf(a.out, "%s of %s (%.0f%%)", accounting.FormatDuration(p.HoursWorked), accounting.FormatDuration(p.GoalHours), p.Percent)
	if p.Remaining > 0 {
		a.muted.Fprintf(a.out, ", %s to go", accounting.FormatDuration(p.Remaining))
	}
	fmt.Fprintln(a.out)
}
