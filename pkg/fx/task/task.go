package task

import (
	"context"
	"sync"

	"github.com/ib-77/fx/pkg/fx"
)

// Task is a value of T obtainable only by awaiting it.
type Task[T any] struct {
	once     sync.Once
	resolve  func() (T, error)
	value    T
	err      error
	panicked any
}

// New returns a task resolved by calling resolve on the first Await.
func New[T any](resolve func() (T, error)) *Task[T] {
	return &Task[T]{resolve: resolve}
}

func FromValue[T any](value T) *Task[T] {
	t := &Task[T]{value: value}
	t.once.Do(func() {})
	return t
}

func Failed[T any](err error) *Task[T] {
	t := &Task[T]{err: err}
	t.once.Do(func() {})
	return t
}

// Canceled returns a task failed with the cancellation of ctx.
func Canceled[T any](ctx context.Context) *Task[T] {
	return Failed[T](fx.Cancelled(ctx))
}

// Go runs fn on its own goroutine. A panic in fn is raised again by Await.
func Go[T any](fn func() (T, error)) *Task[T] {
	done := make(chan struct{})

	var (
		value    T
		err      error
		panicked any
	)

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				panicked = r
			}
		}()

		value, err = fn()
	}()

	return New(func() (T, error) {
		<-done
		if panicked != nil {
			panic(panicked)
		}
		return value, err
	})
}

func GoContext[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	return Go(func() (T, error) {
		return fn(ctx)
	})
}

// FromChan resolves to the first value received from ch. A channel closed
// without a value resolves to fx.ErrCancelled.
func FromChan[T any](ch <-chan T) *Task[T] {
	return New(func() (T, error) {
		v, ok := <-ch
		if !ok {
			var zero T
			return zero, fx.ErrCancelled
		}
		return v, nil
	})
}

// Await resolves the task and returns its value or the error that kept it
// from producing one. Later calls return the same outcome.
func (t *Task[T]) Await() (T, error) {
	t.once.Do(t.settle)

	if t.panicked != nil {
		panic(t.panicked)
	}
	return t.value, t.err
}

func (t *Task[T]) settle() {
	defer func() {
		if r := recover(); r != nil {
			t.panicked = r
		}
		t.resolve = nil
	}()

	t.value, t.err = t.resolve()
}
