package option

import (
	"context"

	"github.com/ib-77/fx/pkg/fx/result"
	"github.com/ib-77/fx/pkg/fx/task"
)

// MatchAsync awaits carrier and dispatches to the handler for its variant.
// Use task.FromValue for a resolved carrier and task.Lift/task.LiftThunk for
// synchronous handlers.
func MatchAsync[T, U any](ctx context.Context, carrier *task.Task[Option[T]],
	onSome func(T) *task.Task[U], onNone func() *task.Task[U]) *task.Task[U] {

	return task.Then(ctx, carrier, func(o Option[T]) *task.Task[U] {
		return Match(o, onSome, onNone)
	})
}

func MapAsync[T, U any](ctx context.Context, carrier *task.Task[Option[T]],
	f func(T) *task.Task[U]) *task.Task[Option[U]] {

	return MatchAsync(ctx, carrier,
		func(v T) *task.Task[Option[U]] {
			return task.Map(f(v), Some[U])
		},
		resolvedNone[U])
}

func BindAsync[T, U any](ctx context.Context, carrier *task.Task[Option[T]],
	f func(T) *task.Task[Option[U]]) *task.Task[Option[U]] {

	return MatchAsync(ctx, carrier, f, resolvedNone[U])
}

func FilterAsync[T any](ctx context.Context, carrier *task.Task[Option[T]],
	predicate func(T) *task.Task[bool]) *task.Task[Option[T]] {

	return MatchAsync(ctx, carrier,
		func(v T) *task.Task[Option[T]] {
			return task.Map(predicate(v), func(keep bool) Option[T] {
				if keep {
					return Some(v)
				}
				return None[T]()
			})
		},
		resolvedNone[T])
}

// TapAsync awaits action for Some and resolves to the carrier's Option.
func TapAsync[T any](ctx context.Context, carrier *task.Task[Option[T]],
	action func(T) *task.Task[struct{}]) *task.Task[Option[T]] {

	return task.Then(ctx, carrier, func(o Option[T]) *task.Task[Option[T]] {
		return Match(o,
			func(v T) *task.Task[Option[T]] {
				return task.Map(action(v), func(struct{}) Option[T] { return o })
			},
			func() *task.Task[Option[T]] { return task.FromValue(o) })
	})
}

// OrElseAsync resolves to the value of a Some, or awaits fallback for None.
func OrElseAsync[T any](ctx context.Context, carrier *task.Task[Option[T]],
	fallback func() *task.Task[T]) *task.Task[T] {

	return MatchAsync(ctx, carrier, task.FromValue[T], fallback)
}

func ToResultAsync[T, E any](ctx context.Context, carrier *task.Task[Option[T]],
	errorFactory func() *task.Task[E]) *task.Task[result.Result[T, E]] {

	return MatchAsync(ctx, carrier,
		func(v T) *task.Task[result.Result[T, E]] {
			return task.FromValue(result.Ok[T, E](v))
		},
		func() *task.Task[result.Result[T, E]] {
			return task.Map(errorFactory(), result.Fail[T, E])
		})
}

func resolvedNone[T any]() *task.Task[Option[T]] {
	return task.FromValue(None[T]())
}
