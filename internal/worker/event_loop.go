package worker

import (
	"context"
	"log/slog"
	"runtime/debug"
)

const defaultQueueSize = 64

// EventLoop applies events one at a time on a single goroutine. Controllers
// are only ever touched from inside an event, so they need no locking.
type EventLoop struct {
	events chan func()
	done   chan struct{}
	logger *slog.Logger
}

func NewEventLoop(queueSize int, logger *slog.Logger) *EventLoop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &EventLoop{
		events: make(chan func(), queueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Start drains the queue until ctx is cancelled. It blocks.
func (l *EventLoop) Start(ctx context.Context) {
	l.logger.Debug("event loop started")
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("event loop stopping")
			return
		case fn := <-l.events:
			l.run(fn)
		}
	}
}

// Post enqueues fn. Events posted after the loop stopped are dropped.
func (l *EventLoop) Post(fn func()) {
	select {
	case l.events <- fn:
	case <-l.done:
		l.logger.Debug("event dropped, loop stopped")
	}
}

// Do posts fn and waits for it to run. It reports false if the loop stopped first.
func (l *EventLoop) Do(fn func()) bool {
	ran := make(chan struct{})
	l.Post(func() {
		defer close(ran)
		fn()
	})

	select {
	case <-ran:
		return true
	case <-l.done:
		return false
	}
}

func (l *EventLoop) Done() <-chan struct{} {
	return l.done
}

func (l *EventLoop) run(fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			l.logger.Error(
				"panic recovered in event",
				"panic", rec,
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}
