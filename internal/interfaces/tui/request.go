package tui

import (
	"context"

	"github.com/DanielPopoola/chatpay/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

// request runs req as a tea.Cmd. bubbletea delivers the resulting message to
// Update, which is where the controller resolution is applied.
func request[T any](ctx context.Context, req application.Request[T], wrap func(T, error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, err := req(ctx)
		return wrap(v, err)
	}
}
