package domain_test

import (
	"testing"

	"github.com/DanielPopoola/chatpay/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTranscript(t *testing.T) {
	t.Run("keeps seed turns in order", func(t *testing.T) {
		transcript := domain.NewTranscript(domain.AssistantTurn("hello"))

		transcript.Append(domain.UserTurn("hi"))

		turns := transcript.Turns()
		assert.Equal(t, 2, transcript.Len())
		assert.Equal(t, domain.OriginAssistant, turns[0].Origin)
		assert.Equal(t, "hi", turns[1].Content)
		assert.True(t, turns[1].IsUser())
	})

	t.Run("Turns returns a copy", func(t *testing.T) {
		transcript := domain.NewTranscript(domain.AssistantTurn("hello"))

		turns := transcript.Turns()
		turns[0] = domain.UserTurn("rewritten")

		last, ok := transcript.Last()
		assert.True(t, ok)
		assert.Equal(t, "hello", last.Content)
	})

	t.Run("Last on empty transcript", func(t *testing.T) {
		_, ok := domain.NewTranscript().Last()

		assert.False(t, ok)
	})
}
