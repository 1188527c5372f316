package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"workhours/internal/api"
	"workhours/internal/config"
	"workhours/internal/logging"
)

// Opener opens the store and builds the business API for one command.
// The returned func releases the store.
type Opener func(ctx context.Context, cfg *config.Config) (api.BusinessAPI, func() error, error)

// RootOptions configures NewRootCommand. Zero values use the real store
// and the process's stdout.
type RootOptions struct {
	Out    io.Writer
	Opener Opener
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	out    io.Writer
	opener Opener
	config *config.Config
	flags  globalFlags
}

type globalFlags struct {
	configFile  string
	dbDriver    string
	dbPath      string
	postgresDSN string
	logLevel    string
	logFormat   string
	timeout     time.Duration
	verbose     bool
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(opts RootOptions) *RootCommand {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Opener == nil {
		opts.Opener = OpenBusinessAPI
	}
	root := &RootCommand{out: opts.Out, opener: opts.Opener}

	root.cmd = &cobra.Command{
		Use:   "workhours",
		Short: "Track working hours against a weekly goal",
		Long: `workhours records working time per day and reports it against a weekly goal.

It runs as an HTTP service with accounts, a live timer and an admin view
(workhours serve), and offers operator commands that work directly on
the database.

EXAMPLES:
  workhours serve
  workhours user create ada --password secret123 --first-name Ada
  workhours entry add --user ada --date 2026-10-19 --start 09:00 --end 17:30 --description "Release prep"
  workhours report week --user ada
  workhours report month --user ada --month 2026-10
  workhours export --user ada --output hours.csv

CONFIGURATION:
  Priority: command-line flags > environment variables > config file > defaults.
  The config file is workhours.yaml (or .toml/.json) in the working directory
  or ~/.workhours. Every key can be set from the environment with the WH_
  prefix, e.g. WH_DATABASE_DRIVER=postgres, WH_AUTH_JWT_SECRET=...,
  WH_SESSION_BACKEND=redis, WH_TRACKING_WEEKLY_GOAL_HOURS=38.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
	}
	root.cmd.SetOut(opts.Out)

	root.addGlobalFlags()
	root.cmd.AddCommand(
		root.newServeCommand(),
		root.newUserCommand(),
		root.newEntryCommand(),
		root.newReportCommand(),
		root.newExportCommand(),
	)
	return root
}

// Command exposes the cobra command, mainly for tests.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.StringVar(&r.flags.configFile, "config", "", "Config file (default: ./workhours.yaml or ~/.workhours/workhours.yaml)")
	flags.StringVar(&r.flags.dbDriver, "db-driver", "", "Database driver: sqlite or postgres (overrides WH_DATABASE_DRIVER)")
	flags.StringVar(&r.flags.dbPath, "db-path", "", "SQLite database file (overrides WH_DATABASE_DIR and WH_DATABASE_FILENAME)")
	flags.StringVar(&r.flags.postgresDSN, "postgres-dsn", "", "PostgreSQL connection string (overrides WH_DATABASE_POSTGRES_DSN)")
	flags.StringVar(&r.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides WH_LOGGING_LEVEL)")
	flags.StringVar(&r.flags.logFormat, "log-format", "", "Log format: console or json (overrides WH_LOGGING_FORMAT)")
	flags.DurationVar(&r.flags.timeout, "timeout", 0, "Timeout for one command (overrides WH_APPLICATION_TIMEOUT)")
	flags.BoolVarP(&r.flags.verbose, "verbose", "v", false, "Enable debug logging (overrides WH_APPLICATION_VERBOSE)")
}

// overrides collects the flags the user actually set.
func (r *RootCommand) overrides(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	o := &config.ConfigOverrides{}
	if flags.Changed("db-driver") {
		o.DBDriver = &r.flags.dbDriver
	}
	if flags.Changed("db-path") {
		dir, file := filepath.Dir(r.flags.dbPath), filepath.Base(r.flags.dbPath)
		o.DBDir, o.DBFilename = &dir, &file
	}
	if flags.Changed("postgres-dsn") {
		o.PostgresDSN = &r.flags.postgresDSN
	}
	if flags.Changed("log-level") {
		o.LogLevel = &r.flags.logLevel
	}
	if flags.Changed("log-format") {
		o.LogFormat = &r.flags.logFormat
	}
	if flags.Changed("timeout") {
		o.Timeout = &r.flags.timeout
	}
	if flags.Changed("verbose") {
		o.Verbose = &r.flags.verbose
	}
	return o
}

// loadConfig resolves configuration and sets up logging before any
// subcommand runs.
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if r.flags.configFile != "" {
		loader.WithConfigFile(r.flags.configFile)
	}

	cfg, err := loader.LoadWithOverrides(r.overrides(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.Logging.Level
	if cfg.Application.Verbose && !cmd.Flags().Changed("log-level") {
		level = "debug"
	}
	logging.Setup(level, cfg.Logging.Format)
	if used := loader.ConfigFileUsed(); used != "" {
		logging.Debugf("loaded config file %s", used)
	}

	r.config = cfg
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// withApp opens the store for the duration of fn.
func (r *RootCommand) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
	defer cancel()

	businessAPI, closeStore, err := r.opener(ctx, r.config)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}()

	return fn(ctx, NewApp(businessAPI, r.out))
}
