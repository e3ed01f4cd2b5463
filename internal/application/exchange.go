package application

import "context"

// Request is a remote call produced by a controller transition. The caller
// runs it off the event loop and feeds the result back to the controller.
type Request[T any] func(ctx context.Context) (T, error)

// Loop is the single-threaded queue controller resolutions are applied on.
type Loop interface {
	Post(fn func())
}

// Dispatch runs req on its own goroutine and posts resolve to the loop once
// the call returns. There is no way to abort a dispatched request.
func Dispatch[T any](ctx context.Context, loop Loop, req Request[T], resolve func(T, error)) {
	go func() {
		v, err := req(ctx)
		loop.Post(func() { resolve(v, err) })
	}()
}
