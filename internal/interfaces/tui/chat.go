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
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// title, status, input and help lines around the transcript
	chatChromeHeight = 6
)

type chatReplyMsg struct {
	reply string
	err   error
}

type ChatOption func(*ChatModel)

// WithMarkdownStyle selects the glamour style used for assistant turns.
func WithMarkdownStyle(style string) ChatOption {
	return func(m *ChatModel) {
		m.markdownStyle = style
	}
}

type ChatModel struct {
	ctx    context.Context
	conv   *services.ConversationService
	logger *slog.Logger

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	markdownStyle string
	width         int
}

func NewChatModel(ctx context.Context, chat application.ChatService, greeting string, logger *slog.Logger, opts ...ChatOption) *ChatModel {
	m := &ChatModel{
		ctx:           ctx,
		logger:        logger,
		markdownStyle: "dark",
		width:         defaultWidth,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.input = textinput.New()
	m.input.Placeholder = "Type your message..."
	m.input.CharLimit = 2000
	m.input.Width = defaultWidth - 4
	m.input.Focus()

	m.viewport = viewport.New(defaultWidth, defaultHeight-chatChromeHeight)

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = spinnerStyle

	m.conv = services.NewConversationService(chat, logger,
		services.WithGreeting(greeting),
		services.WithSettledHook(func(domain.Turn) { m.refresh() }),
	)

	m.setRenderer(defaultWidth)
	m.refresh()
	return m
}

func (m *ChatModel) Conversation() *services.ConversationService {
	return m.conv
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case chatReplyMsg:
		m.conv.ResolveReply(msg.reply, msg.err)
		m.input.SetValue(m.conv.Input())
		return m, nil

	case spinner.TickMsg:
		if !m.conv.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if m.conv.InFlight() {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.conv.SetInput(m.input.Value())
	return m, cmd
}

func (m *ChatModel) submit() tea.Cmd {
	m.conv.SetInput(m.input.Value())
	req, ok := m.conv.SubmitInput()
	if !ok {
		return nil
	}
	m.refresh()

	return tea.Batch(
		request(m.ctx, req, func(reply string, err error) tea.Msg {
			return chatReplyMsg{reply: reply, err: err}
		}),
		m.spinner.Tick,
	)
}

func (m *ChatModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chat"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.conv.InFlight() {
		b.WriteString(m.spinner.View() + mutedStyle.Render(" Thinking..."))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send • pgup/pgdn scroll • esc quit"))
	return b.String()
}

func (m *ChatModel) resize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-chatChromeHeight, 3)
	m.input.Width = max(width-4, 10)
	m.setRenderer(width)
	m.refresh()
}

func (m *ChatModel) setRenderer(width int) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.markdownStyle),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", "error", err)
		m.renderer = nil
		return
	}
	m.renderer = r
}

// refresh re-renders the transcript and scrolls to the newest turn.
func (m *ChatModel) refresh() {
	var b strings.Builder
	for _, turn := range m.conv.Transcript() {
		b.WriteString(m.renderTurn(turn))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *ChatModel) renderTurn(turn domain.Turn) string {
	if turn.IsUser() {
		return userLabelStyle.Render("You") + "\n" + userTextStyle.Render(turn.Content)
	}

	body := turn.Content
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(turn.Content); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	}
	return assistantLabelStyle.Render("Assistant") + "\n" + body
}
