package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/DanielPopoola/chatpay/internal/config"
	"github.com/DanielPopoola/chatpay/internal/domain"
	"github.com/DanielPopoola/chatpay/internal/infrastructure/backend"
	"github.com/DanielPopoola/chatpay/internal/infrastructure/paramstore"
	"github.com/DanielPopoola/chatpay/internal/infrastructure/stripe"
	"github.com/DanielPopoola/chatpay/internal/interfaces/console"
	"github.com/DanielPopoola/chatpay/internal/interfaces/tui"
	"github.com/DanielPopoola/chatpay/internal/worker"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pay",
		Short: "Pay the session fee by card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.setup()
			if err != nil {
				return err
			}
			defer s.close()

			ctx, stop := signalContext(cmd)
			defer stop()

			amount, err := domain.NewMoney(s.cfg.Payment.AmountCents, s.cfg.Payment.Currency)
			if err != nil {
				return fmt.Errorf("invalid payment amount: %w", err)
			}

			key, err := publishableKey(ctx, s.cfg.Payment)
			if err != nil {
				s.logger.Error("failed to resolve publishable key", "error", err)
				return err
			}

			intents := backend.NewClient(s.cfg.Backend, s.logger)
			processor := stripe.NewClient(s.cfg.Payment, key, s.logger)

			s.logger.Info("starting checkout",
				"backend", s.cfg.Backend.BaseURL,
				"amount", amount.String(),
				"interactive", s.interactive,
			)

			if s.interactive {
				model := tui.NewCheckoutModel(ctx, intents, processor, amount, s.logger)
				_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
				return err
			}

			loop := worker.NewEventLoop(0, s.logger)
			go loop.Start(ctx)

			return console.NewDriver(os.Stdin, os.Stdout, loop, s.logger).
				RunCheckout(ctx, intents, processor, amount)
		},
	}
}

// publishableKey prefers the literal key and otherwise reads it from SSM.
func publishableKey(ctx context.Context, cfg config.PaymentConfig) (string, error) {
	if cfg.PublishableKey == "" && cfg.PublishableKeyParam == "" {
		return "", errors.New("payment.publishable_key or payment.publishable_key_param is required")
	}

	var getter paramstore.Getter
	if cfg.PublishableKey == "" && cfg.PublishableKeyParam != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return "", fmt.Errorf("loading aws config: %w", err)
		}
		client, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			return "", err
		}
		getter = client
	}

	return paramstore.ResolveSecret(ctx, getter, cfg.PublishableKey, cfg.PublishableKeyParam)
}
