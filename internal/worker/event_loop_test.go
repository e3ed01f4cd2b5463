package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/application/services"
	"github.com/DanielPopoola/chatpay/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChat struct {
	release chan struct{}
	reply   string
	err     error

	mu    sync.Mutex
	calls int
}

func (s *stubChat) Chat(ctx context.Context, _ string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	<-s.release
	return s.reply, s.err
}

func (s *stubChat) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func startLoop(t *testing.T) *worker.EventLoop {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loop := worker.NewEventLoop(0, logger)
	ctx, cancel := context.WithCancel(context.Background())
	go loop.Start(ctx)
	t.Cleanup(func() {
		cancel()
		<-loop.Done()
	})
	return loop
}

func TestEventLoop_RunsEventsInOrder(t *testing.T) {
	loop := startLoop(t)

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		loop.Post(func() { got = append(got, i) })
	}
	require.True(t, loop.Do(func() {}))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestEventLoop_SurvivesPanics(t *testing.T) {
	loop := startLoop(t)

	loop.Post(func() { panic("boom") })

	ran := false
	require.True(t, loop.Do(func() { ran = true }))
	assert.True(t, ran)
}

func TestEventLoop_DoAfterStop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loop := worker.NewEventLoop(1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	go loop.Start(ctx)
	cancel()
	<-loop.Done()

	loop.Post(func() {})
	loop.Post(func() {})

	assert.False(t, loop.Do(func() {}))
}

func TestDispatch_ResolvesOnTheLoop(t *testing.T) {
	loop := startLoop(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	chat := &stubChat{release: make(chan struct{}), err: errors.New("connection refused")}
	conv := services.NewConversationService(chat, logger)

	var accepted, second bool
	loop.Do(func() {
		req, ok := conv.Submit("hello")
		accepted = ok
		if ok {
			application.Dispatch(context.Background(), loop, req, conv.ResolveReply)
		}
		_, second = conv.Submit("hello again")
	})
	require.True(t, accepted)
	assert.False(t, second)

	close(chat.release)

	assert.Eventually(t, func() bool {
		settled := false
		loop.Do(func() { settled = !conv.InFlight() })
		return settled
	}, time.Second, 10*time.Millisecond)

	var turns int
	loop.Do(func() { turns = len(conv.Transcript()) })
	assert.Equal(t, 3, turns)
	assert.Equal(t, 1, chat.Calls())
}
