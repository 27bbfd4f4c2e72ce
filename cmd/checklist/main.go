package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fmizzell/checklist"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
	maxHistory int
}

// load reads the config file and applies flags the user set explicitly
func (o *rootOptions) load(cmd *cobra.Command) (*Config, error) {
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("max-history") {
		cfg.History.MaxEntries = o.maxHistory
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "checklist",
		Short: "In-memory to-do list with undo/redo",
		Long: `checklist runs an interactive to-do list session.

Tasks can be added, completed, reopened, deleted and listed; every change
can be undone and redone. Nothing is saved when the session ends.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&opts.maxHistory, "max-history", 1000, "Maximum undoable changes (0 = unlimited)")

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "checklist %s\n", version)
		},
	})

	rootCmd.Version = version
	return rootCmd
}

func runSession(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	manager := checklist.NewManager(
		checklist.WithMaxHistory(cfg.History.MaxEntries),
		checklist.WithListener(checklist.LogListener(logger)),
	)

	session := NewSession(manager, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Session)
	session.logger = logger

	logger.Info("session_started", "max_history", cfg.History.MaxEntries)
	err = session.Run(cmd.Context())
	logger.Info("session_ended", "tasks", manager.Len(), "undo", manager.UndoCount(), "redo", manager.RedoCount())
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
