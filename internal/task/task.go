// Package task runs one blocking call off the caller's goroutine and hands
// back exactly one completion.
package task

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Completion is the single event a Future produces.
type Completion[T any] struct {
	Result T
	Err    error
}

// Future is the handle for a call started with Go.
type Future[T any] struct {
	done       chan struct{}
	completion Completion[T]
}

// Go runs fn on a new goroutine. A panic in fn is reported as the completion's error.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("Background task panicked: %v", r)
				var zero T
				f.completion = Completion[T]{Result: zero, Err: fmt.Errorf("task panicked: %v", r)}
			}
		}()
		res, err := fn(ctx)
		f.completion = Completion[T]{Result: res, Err: err}
	}()
	return f
}

// Done is closed once the completion is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Completion returns the outcome. It must only be called after Done is closed.
func (f *Future[T]) Completion() Completion[T] {
	<-f.done
	return f.completion
}

// Wait blocks until the task finishes or ctx is done.
// Only ctx's error is returned; the task's own error is in the Completion.
func (f *Future[T]) Wait(ctx context.Context) (Completion[T], error) {
	select {
	case <-f.done:
		return f.completion, nil
	case <-ctx.Done():
		return Completion[T]{}, ctx.Err()
	}
}
