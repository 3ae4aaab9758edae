package gateway

import (
	"context"
	"fmt"
)

// Pending is the eventual result of one operation started with Go.
type Pending[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn in its own goroutine. A panic inside fn is reported as the error.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.err = fmt.Errorf("operation panicked: %v", r)
			}
		}()
		p.value, p.err = fn(ctx)
	}()
	return p
}

// Done is closed once the result is available.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the operation finishes and returns its result. It may be
// called any number of times.
func (p *Pending[T]) Wait() (T, error) {
	<-p.done
	return p.value, p.err
}

// Await is Wait bounded by ctx. The operation keeps running if ctx ends first.
func (p *Pending[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
