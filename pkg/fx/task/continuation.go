package task

import "context"

// Then awaits carrier and then the task next builds from its value. The
// cancellation of ctx is checked once, before the carrier is awaited; a
// carrier error is returned as is and next is not called.
func Then[T, U any](ctx context.Context, carrier *Task[T], next func(T) *Task[U]) *Task[U] {
	return New(func() (U, error) {
		if ctx.Err() != nil {
			return Canceled[U](ctx).Await()
		}

		v, err := carrier.Await()
		if err != nil {
			var zero U
			return zero, err
		}

		return next(v).Await()
	})
}

// Lift makes a synchronous function usable where an async continuation is
// expected. The returned continuation resolves immediately.
func Lift[T, U any](f func(T) U) func(T) *Task[U] {
	return func(v T) *Task[U] {
		return FromValue(f(v))
	}
}

func LiftThunk[U any](f func() U) func() *Task[U] {
	return func() *Task[U] {
		return FromValue(f())
	}
}

func LiftAction[T any](f func(T)) func(T) *Task[struct{}] {
	return func(v T) *Task[struct{}] {
		f(v)
		return FromValue(struct{}{})
	}
}

// Map resolves t and applies f to its value. Errors pass through unchanged.
func Map[T, U any](t *Task[T], f func(T) U) *Task[U] {
	return New(func() (U, error) {
		v, err := t.Await()
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	})
}
