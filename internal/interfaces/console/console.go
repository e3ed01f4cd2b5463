// Package console drives the controllers from line-oriented input when
// stdout is not a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/application/services"
	"github.com/DanielPopoola/chatpay/internal/domain"
	"github.com/DanielPopoola/chatpay/internal/interfaces/card"
	"github.com/DanielPopoola/chatpay/internal/worker"
)

const quitCommand = "/quit"

type Driver struct {
	in     *bufio.Scanner
	out    io.Writer
	loop   *worker.EventLoop
	logger *slog.Logger
	now    func() time.Time
}

func NewDriver(in io.Reader, out io.Writer, loop *worker.EventLoop, logger *slog.Logger) *Driver {
	return &Driver{
		in:     bufio.NewScanner(in),
		out:    out,
		loop:   loop,
		logger: logger,
		now:    time.Now,
	}
}

// RunChat reads one message per line until EOF or /quit. Each message is
// answered before the next line is read.
func (d *Driver) RunChat(ctx context.Context, chat application.ChatService, greeting string) error {
	settled := make(chan struct{}, 1)
	conv := services.NewConversationService(chat, d.logger,
		services.WithGreeting(greeting),
		services.WithSettledHook(func(last domain.Turn) {
			d.printTurn(last)
			settled <- struct{}{}
		}),
	)

	d.loop.Do(func() {
		for _, turn := range conv.Transcript() {
			d.printTurn(turn)
		}
	})

	for {
		fmt.Fprint(d.out, "> ")
		line, ok := d.readLine()
		if !ok {
			return d.in.Err()
		}
		if strings.TrimSpace(line) == quitCommand {
			return nil
		}

		dispatched := false
		if !d.loop.Do(func() {
			req, ok := conv.Submit(line)
			if !ok {
				return
			}
			dispatched = true
			application.Dispatch(ctx, d.loop, req, conv.ResolveReply)
		}) {
			return ctx.Err()
		}
		if !dispatched {
			continue
		}

		select {
		case <-settled:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunCheckout creates the payment intent, then prompts for card details until
// the payment succeeds, the token cannot be obtained, or input ends.
func (d *Driver) RunCheckout(ctx context.Context, intents application.IntentService, processor application.PaymentProcessor, amount domain.Money) error {
	widget := &lineCard{}
	notifier := &lineNotifier{out: d.out}
	checkout := services.NewCheckoutService(intents, processor, widget, notifier, amount, d.logger)

	fmt.Fprintf(d.out, "Checkout: %s\n", amount)

	tokenDone := make(chan struct{})
	d.loop.Do(func() {
		req, ok := checkout.Start()
		if !ok {
			close(tokenDone)
			return
		}
		application.Dispatch(ctx, d.loop, req, func(secret string, err error) {
			checkout.ResolveToken(secret, err)
			close(tokenDone)
		})
	})
	if err := d.wait(ctx, tokenDone); err != nil {
		return err
	}

	var state domain.CheckoutState
	var status string
	d.loop.Do(func() { state, status = checkout.State(), checkout.StatusMessage() })
	if state == domain.StateFailed {
		fmt.Fprintln(d.out, status)
		return fmt.Errorf("checkout: %s", status)
	}

	for {
		if !d.promptCard(widget) {
			return d.in.Err()
		}

		confirmDone := make(chan struct{})
		dispatched := false
		d.loop.Do(func() {
			checkout.CardUpdated()
			req, ok := checkout.Confirm()
			if !ok {
				return
			}
			dispatched = true
			fmt.Fprintln(d.out, checkout.StatusMessage())
			application.Dispatch(ctx, d.loop, req, func(intent *application.PaymentIntent, err error) {
				checkout.ResolveConfirmation(intent, err)
				close(confirmDone)
			})
		})
		if !dispatched {
			fmt.Fprintln(d.out, "Card details are incomplete or invalid.")
			continue
		}
		if err := d.wait(ctx, confirmDone); err != nil {
			return err
		}

		d.loop.Do(func() { state, status = checkout.State(), checkout.StatusMessage() })
		fmt.Fprintln(d.out, status)
		if state == domain.StateSucceeded {
			return nil
		}
	}
}

func (d *Driver) promptCard(widget *lineCard) bool {
	fmt.Fprint(d.out, "Card number (or pm_ id): ")
	number, ok := d.readLine()
	if !ok {
		return false
	}

	var expiry, cvc string
	if !strings.HasPrefix(strings.TrimSpace(number), "pm_") {
		fmt.Fprint(d.out, "Expiry (MM/YY): ")
		if expiry, ok = d.readLine(); !ok {
			return false
		}
		fmt.Fprint(d.out, "CVC: ")
		if cvc, ok = d.readLine(); !ok {
			return false
		}
	}

	pm, err := card.Parse(number, expiry, cvc, d.now())
	d.loop.Do(func() { widget.set(pm, err == nil) })
	return true
}

func (d *Driver) wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Driver) readLine() (string, bool) {
	if !d.in.Scan() {
		return "", false
	}
	return d.in.Text(), true
}

func (d *Driver) printTurn(turn domain.Turn) {
	if turn.IsUser() {
		return
	}
	fmt.Fprintf(d.out, "assistant: %s\n", turn.Content)
}

// lineCard holds the last parsed card. It is only touched on the loop.
type lineCard struct {
	pm    application.CardPaymentMethod
	valid bool
}

func (c *lineCard) set(pm application.CardPaymentMethod, valid bool) {
	c.pm, c.valid = pm, valid
}

func (c *lineCard) PaymentMethod() (application.CardPaymentMethod, bool) {
	return c.pm, c.valid
}

type lineNotifier struct {
	out io.Writer
}

func (n *lineNotifier) Notify(title, body string) {
	fmt.Fprintf(n.out, "[%s] %s\n", title, body)
}
