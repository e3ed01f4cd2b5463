package main

import (
	"os"

	"github.com/DanielPopoola/chatpay/internal/infrastructure/backend"
	"github.com/DanielPopoola/chatpay/internal/interfaces/console"
	"github.com/DanielPopoola/chatpay/internal/interfaces/tui"
	"github.com/DanielPopoola/chatpay/internal/worker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start a conversation with the assistant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.setup()
			if err != nil {
				return err
			}
			defer s.close()

			ctx, stop := signalContext(cmd)
			defer stop()

			client := backend.NewClient(s.cfg.Backend, s.logger)
			s.logger.Info("starting chat",
				"backend", s.cfg.Backend.BaseURL,
				"interactive", s.interactive,
			)

			if s.interactive {
				model := tui.NewChatModel(ctx, client, s.cfg.Chat.Greeting, s.logger)
				_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
				return err
			}

			loop := worker.NewEventLoop(0, s.logger)
			go loop.Start(ctx)

			return console.NewDriver(os.Stdin, os.Stdout, loop, s.logger).
				RunChat(ctx, client, s.cfg.Chat.Greeting)
		},
	}
}
