package tui

import "github.com/DanielPopoola/chatpay/internal/application"

var _ application.Notifier = (*Banner)(nil)

// Banner shows the last notification above the checkout form.
type Banner struct {
	title string
	body  string
}

func (b *Banner) Notify(title, body string) {
	b.title = title
	b.body = body
}

func (b *Banner) Visible() bool {
	return b.title != "" || b.body != ""
}

func (b *Banner) View() string {
	if !b.Visible() {
		return ""
	}
	return bannerStyle.Render(successStyle.Render(b.title) + "\n" + b.body)
}
