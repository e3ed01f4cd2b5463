package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/application/services"
	"github.com/DanielPopoola/chatpay/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tokenMsg struct {
	clientSecret string
	err          error
}

type confirmationMsg struct {
	intent *application.PaymentIntent
	err    error
}

type CheckoutModel struct {
	ctx      context.Context
	checkout *services.CheckoutService
	form     *CardForm
	banner   *Banner
	spinner  spinner.Model
	logger   *slog.Logger
}

func NewCheckoutModel(
	ctx context.Context,
	intents application.IntentService,
	processor application.PaymentProcessor,
	amount domain.Money,
	logger *slog.Logger,
) *CheckoutModel {
	form := NewCardForm()
	banner := &Banner{}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return &CheckoutModel{
		ctx:      ctx,
		checkout: services.NewCheckoutService(intents, processor, form, banner, amount, logger),
		form:     form,
		banner:   banner,
		spinner:  sp,
		logger:   logger,
	}
}

func (m *CheckoutModel) Checkout() *services.CheckoutService {
	return m.checkout
}

func (m *CheckoutModel) Form() *CardForm {
	return m.form
}

func (m *CheckoutModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}

	if req, ok := m.checkout.Start(); ok {
		cmds = append(cmds,
			request(m.ctx, req, func(secret string, err error) tea.Msg {
				return tokenMsg{clientSecret: secret, err: err}
			}),
			m.spinner.Tick,
		)
	}
	return tea.Batch(cmds...)
}

func (m *CheckoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tokenMsg:
		m.checkout.ResolveToken(msg.clientSecret, msg.err)
		return m, nil

	case confirmationMsg:
		m.checkout.ResolveConfirmation(msg.intent, msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.checkout.Status().Phase != domain.PhaseSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			return m, m.form.Next()
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.form.Prev()
		case tea.KeyEnter:
			if m.checkout.IsTerminal() {
				return m, tea.Quit
			}
			return m, m.pay()
		}
		if m.checkout.Submitting() || m.checkout.IsTerminal() {
			return m, nil
		}
		cmd := m.form.Update(msg)
		m.checkout.CardUpdated()
		return m, cmd
	}

	return m, m.form.Update(msg)
}

func (m *CheckoutModel) pay() tea.Cmd {
	m.checkout.CardUpdated()
	req, ok := m.checkout.Confirm()
	if !ok {
		return nil
	}

	return tea.Batch(
		request(m.ctx, req, func(intent *application.PaymentIntent, err error) tea.Msg {
			return confirmationMsg{intent: intent, err: err}
		}),
		m.spinner.Tick,
	)
}

func (m *CheckoutModel) payEnabled() bool {
	if m.checkout.State() != domain.StateReady && m.checkout.State() != domain.StateFailed {
		return false
	}
	if m.checkout.ClientSecret() == "" {
		return false
	}
	_, ok := m.form.PaymentMethod()
	return ok
}

func (m *CheckoutModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Checkout"))
	b.WriteString("\n\n")

	if m.banner.Visible() {
		b.WriteString(m.banner.View())
		b.WriteString("\n\n")
	}

	b.WriteString("Amount: " + m.checkout.Amount().String())
	b.WriteString("\n\n")
	b.WriteString(m.form.View())
	b.WriteString("\n\n")

	label := "Pay " + m.checkout.Amount().String()
	if m.payEnabled() {
		b.WriteString(payButtonStyle.Render(label))
	} else {
		b.WriteString(payButtonDisabledStyle.Render(label))
	}
	b.WriteString("\n\n")

	b.WriteString(m.statusView())
	b.WriteString("\n")
	if m.checkout.IsTerminal() {
		b.WriteString(helpStyle.Render("enter/esc close"))
	} else {
		b.WriteString(helpStyle.Render("tab next field • enter pay • esc quit"))
	}
	return docStyle.Render(b.String())
}

func (m *CheckoutModel) statusView() string {
	status := m.checkout.Status()
	switch status.Phase {
	case domain.PhaseSubmitting:
		detail := status.Detail
		if m.checkout.State() == domain.StateAwaitingToken {
			detail = "Preparing payment..."
		}
		return m.spinner.View() + " " + detail
	case domain.PhaseSucceeded:
		return successStyle.Render(status.Detail)
	case domain.PhaseFailed:
		return errorStyle.Render(status.Detail)
	}
	if status.Detail != "" {
		return mutedStyle.Render(status.Detail)
	}
	if !m.form.Empty() {
		if err := m.form.Err(); err != nil {
			return mutedStyle.Render(err.Error())
		}
	}
	return ""
}
