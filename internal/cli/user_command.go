package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workhours/internal/accounting"
	"workhours/internal/api"
)

// UserCommand manages accounts from the terminal
type UserCommand struct {
	app *App
}

// NewUserCommand creates a new user command handler
func NewUserCommand(app *App) *UserCommand {
	return &UserCommand{app: app}
}

// Create registers an account and reports it.
func (c *UserCommand) Create(ctx context.Context, user api.NewUser) error {
	profile, err := c.app.api.CreateUser(ctx, user)
	if err != nil {
		return c.app.errors.Handle("create user", err)
	}
	c.app.success.Fprintf(c.app.out, "Created %s %q", profile.Role, profile.Username)
	c.app.printf(" (%s)\n", profile.ID)
	return nil
}

// List prints every account with its entry totals.
func (c *UserCommand) List(ctx context.Context) error {
	users, err := c.app.api.ListUsers(ctx)
	if err != nil {
		return c.app.errors.Handle("list users", err)
	}
	if len(users) == 0 {
		c.app.printf("No users found\n")
		return nil
	}

	tw := tabwriter.NewWriter(c.app.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tNAME\tROLE\tENTRIES\tHOURS")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			u.Profile.Username, u.Profile.DisplayName(), u.Profile.Role, u.EntryCount, accounting.FormatDuration(u.TotalHours))
	}
	return tw.Flush()
}

func (r *RootCommand) newUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var user api.NewUser
	createCmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user.Username = args[0]
			return r.withApp(cmd, func(ctx context.Context, app *App) error {
				return NewUserCommand(app).Create(ctx, user)
			})
		},
	}
	createCmd.Flags().StringVar(&user.Password, "password", "", "Initial password")
	createCmd.Flags().StringVar(&user.FirstName, "first-name", "", "First name")
	createCmd.Flags().StringVar(&user.LastName, "last-name", "", "Last name")
	createCmd.Flags().BoolVar(&user.Admin, "admin", false, "Grant the admin role")
	_ = createCmd.MarkFlagRequired("password")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List user accounts with their totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(ctx context.Context, app *App) error {
				return NewUserCommand(app).List(ctx)
			})
		},
	}

	userCmd.AddCommand(createCmd, listCmd)
	return userCmd
}
