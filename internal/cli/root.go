// Package cli wires configuration, logging and the TUI behind a cobra
// command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/simonbystrom/teampulse/internal/config"
	"github.com/simonbystrom/teampulse/internal/logging"
	"github.com/simonbystrom/teampulse/internal/roster"
	"github.com/simonbystrom/teampulse/internal/session"
	"github.com/simonbystrom/teampulse/internal/team"
	"github.com/simonbystrom/teampulse/internal/ui"
)

// options holds the global flags. Empty values leave config untouched.
type options struct {
	configPath string
	source     string
	role       string
	user       string
	logLevel   string
	dotenv     string
}

// Execute runs the root command with an interrupt-aware context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "teampulse",
		Short: "Terminal dashboard for team availability and task progress",
		Long: `teampulse shows who on the team is working, on a break, in a meeting
or offline, along with their task load.

Leads filter the roster, watch availability widgets and assign tasks.
Members update their own status and nudge task progress.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/teampulse/teampulse.conf)")
	f.StringVar(&opts.source, "source", "", "roster source: randomuser, seed or dir")
	f.StringVar(&opts.role, "role", "", "initial role: lead or member")
	f.StringVar(&opts.user, "user", "", "member name to act as")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&opts.dotenv, "env-file", ".env", "dotenv file with TEAMPULSE_* overrides")

	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

// resolveConfig layers defaults, the config file, the environment and
// finally flags, then validates the result.
func resolveConfig(opts *options) (config.Config, error) {
	if err := config.LoadDotEnv(opts.dotenv); err != nil {
		return config.Config{}, err
	}

	path := opts.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if opts.source != "" {
		cfg.Roster.Source = opts.source
	}
	if opts.role != "" {
		cfg.Session.Role = opts.role
	}
	if opts.user != "" {
		cfg.Session.User = opts.user
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setupLogging(cfg config.Config) (io.Closer, error) {
	path := cfg.Log.File
	if path == "" {
		path = config.DefaultLogPath()
	}
	return logging.Setup(path, cfg.Log.Level)
}

func runDashboard(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	role, err := session.ParseRole(cfg.Session.Role)
	if err != nil {
		return err
	}

	store := team.NewStore()
	loader := roster.FromConfig(cfg.Roster)
	model := ui.NewApp(cmd.Context(), cfg, store, loader, session.New(role, cfg.Session.User))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
