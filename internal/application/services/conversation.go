package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/domain"
)

const (
	DefaultGreeting = "Hello! I'm your AI assistant. Ask me anything!"
	FallbackReply   = "Sorry, I couldn't process your request. Please try again."
)

type ConversationOption func(*ConversationService)

// WithGreeting replaces the seeded assistant greeting.
func WithGreeting(greeting string) ConversationOption {
	return func(s *ConversationService) {
		if strings.TrimSpace(greeting) != "" {
			s.greeting = greeting
		}
	}
}

// WithSettledHook registers fn to run after every resolution, with the turn
// that was just appended. Shells use it to scroll the transcript to the end.
func WithSettledHook(fn func(last domain.Turn)) ConversationOption {
	return func(s *ConversationService) {
		s.onSettled = fn
	}
}

// ConversationService owns one chat transcript. It is not safe for
// concurrent use: every method must be called from the same event loop.
type ConversationService struct {
	chat   application.ChatService
	logger *slog.Logger

	greeting   string
	transcript *domain.Transcript
	input      string
	inFlight   bool
	last       domain.Projection
	onSettled  func(domain.Turn)
}

func NewConversationService(chat application.ChatService, logger *slog.Logger, opts ...ConversationOption) *ConversationService {
	s := &ConversationService{
		chat:     chat,
		logger:   logger,
		greeting: DefaultGreeting,
		last:     domain.Projection{Phase: domain.PhaseIdle},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.transcript = domain.NewTranscript(domain.AssistantTurn(s.greeting))
	return s
}

func (s *ConversationService) SetInput(text string) {
	s.input = text
}

func (s *ConversationService) Input() string {
	return s.input
}

// SubmitInput submits the pending input buffer.
func (s *ConversationService) SubmitInput() (application.Request[string], bool) {
	return s.Submit(s.input)
}

// Submit appends a user turn and returns the chat request to dispatch. It
// returns false, changing nothing, for blank text or while a request is in
// flight.
func (s *ConversationService) Submit(text string) (application.Request[string], bool) {
	if strings.TrimSpace(text) == "" {
		s.logger.Debug("submit rejected", "reason", domain.ErrCodeEmptyInput)
		return nil, false
	}
	if s.inFlight {
		s.logger.Debug("submit rejected", "reason", domain.ErrCodeRequestInFlight)
		return nil, false
	}

	s.transcript.Append(domain.UserTurn(text))
	s.inFlight = true

	s.logger.Info("chat request dispatched", "turns", s.transcript.Len(), "length", len(text))

	chat := s.chat
	return func(ctx context.Context) (string, error) {
		return chat.Chat(ctx, text)
	}, true
}

// ResolveReply applies the outcome of the in-flight chat request. Failures
// become the fallback assistant turn and are never returned.
func (s *ConversationService) ResolveReply(reply string, err error) {
	if !s.inFlight {
		s.logger.Warn("chat reply ignored, nothing in flight")
		return
	}

	if err == nil && strings.TrimSpace(reply) == "" {
		err = &application.MalformedResponseError{Service: "chat", Reason: "empty reply"}
	}

	var turn domain.Turn
	if err != nil {
		s.logger.Warn("chat request failed", application.LogAttrs(err)...)
		turn = domain.AssistantTurn(FallbackReply)
		s.last = domain.Projection{Phase: domain.PhaseFailed, Detail: err.Error()}
	} else {
		turn = domain.AssistantTurn(reply)
		s.last = domain.Projection{Phase: domain.PhaseSucceeded}
	}

	s.transcript.Append(turn)
	s.inFlight = false
	s.input = ""

	s.logger.Info("chat request settled", "turns", s.transcript.Len(), "phase", s.last.Phase)

	if s.onSettled != nil {
		s.onSettled(turn)
	}
}

func (s *ConversationService) Transcript() []domain.Turn {
	return s.transcript.Turns()
}

func (s *ConversationService) InFlight() bool {
	return s.inFlight
}

func (s *ConversationService) Status() domain.Projection {
	if s.inFlight {
		return domain.Projection{Phase: domain.PhaseSubmitting}
	}
	return s.last
}
