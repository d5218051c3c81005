package try

import (
	"context"
	"fmt"

	"github.com/ib-77/fx/pkg/fx"
	"github.com/ib-77/fx/pkg/fx/result"
	"github.com/ib-77/fx/pkg/fx/task"
	"github.com/pkg/errors"
)

// Run calls fn and returns its value as Ok, or the panic it raised as Error.
func Run[T any](fn func() T) result.Result[T, error] {
	return RunErr(func() (T, error) {
		return fn(), nil
	})
}

// RunErr is Run for functions following the (value, error) convention. A
// returned error and a panic both become Error.
func RunErr[T any](fn func() (T, error)) (r result.Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			r = result.Fail[T](panicked(p))
		}
	}()

	return result.FromPair(fn())
}

// RunAsync starts fn and awaits its task. A panic while starting or
// awaiting, an error of the task and a cancelled ctx all become Error; the
// returned task itself never fails.
func RunAsync[T any](ctx context.Context, fn func(context.Context) *task.Task[T]) *task.Task[result.Result[T, error]] {
	return task.New(func() (result.Result[T, error], error) {
		return RunErr(func() (T, error) {
			if ctx.Err() != nil {
				var zero T
				return zero, fx.Cancelled(ctx)
			}
			return fn(ctx).Await()
		}), nil
	})
}

func panicked(p any) error {
	if err, ok := p.(error); ok {
		return errors.WithStack(err)
	}
	return errors.WithStack(fmt.Errorf("%w: %v", fx.ErrPanicked, p))
}
