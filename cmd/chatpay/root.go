package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanielPopoola/chatpay/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	plain      bool
}

// session is what every subcommand needs once flags are parsed.
type session struct {
	cfg         *config.Config
	logger      *slog.Logger
	interactive bool
	closeLog    func() error
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "chatpay",
		Short: "Chat with the assistant backend and pay for the session",
		Long: `chatpay talks to the assistant backend and runs a card checkout against
the payment processor. It renders a terminal UI when attached to a TTY and
falls back to plain line-oriented prompts otherwise (or with --plain).`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default $CHATPAY_CONFIG_FILE)")
	root.PersistentFlags().BoolVar(&opts.plain, "plain", false, "use line-oriented prompts instead of the terminal UI")

	root.AddCommand(newChatCmd(opts), newPayCmd(opts))
	return root
}

func (o *rootOptions) setup() (*session, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	interactive := !o.plain &&
		isatty.IsTerminal(os.Stdout.Fd()) &&
		isatty.IsTerminal(os.Stdin.Fd())

	// the TUI owns the terminal, so without a log file logs are dropped
	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = io.Discard
	}

	logger, closeLog, err := cfg.Logger.NewLogger(fallback)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return &session{
		cfg:         cfg,
		logger:      logger,
		interactive: interactive,
		closeLog:    closeLog,
	}, nil
}

func (s *session) close() {
	if err := s.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
