package result

import (
	"context"

	"github.com/ib-77/fx/pkg/fx/task"
)

// MatchAsync awaits carrier and dispatches to the handler for its variant.
// Use task.FromValue for a resolved carrier and task.Lift for a synchronous
// handler.
func MatchAsync[T, E, U any](ctx context.Context, carrier *task.Task[Result[T, E]],
	onSuccess func(T) *task.Task[U], onFailure func(E) *task.Task[U]) *task.Task[U] {

	return task.Then(ctx, carrier, func(r Result[T, E]) *task.Task[U] {
		return Match(r, onSuccess, onFailure)
	})
}

func MapAsync[T, E, U any](ctx context.Context, carrier *task.Task[Result[T, E]],
	f func(T) *task.Task[U]) *task.Task[Result[U, E]] {

	return MatchAsync(ctx, carrier,
		func(v T) *task.Task[Result[U, E]] {
			return task.Map(f(v), Ok[U, E])
		},
		failure[U, E])
}

func MapFailureAsync[T, E, F any](ctx context.Context, carrier *task.Task[Result[T, E]],
	f func(E) *task.Task[F]) *task.Task[Result[T, F]] {

	return MatchAsync(ctx, carrier,
		func(v T) *task.Task[Result[T, F]] {
			return task.FromValue(Ok[T, F](v))
		},
		func(e E) *task.Task[Result[T, F]] {
			return task.Map(f(e), Fail[T, F])
		})
}

func BindAsync[T, E, U any](ctx context.Context, carrier *task.Task[Result[T, E]],
	f func(T) *task.Task[Result[U, E]]) *task.Task[Result[U, E]] {

	return MatchAsync(ctx, carrier, f, failure[U, E])
}

// TapAsync awaits action on the Ok path and resolves to the original result.
func TapAsync[T, E any](ctx context.Context, carrier *task.Task[Result[T, E]],
	action func(T) *task.Task[struct{}]) *task.Task[Result[T, E]] {

	return task.Then(ctx, carrier, func(r Result[T, E]) *task.Task[Result[T, E]] {
		return Match(r,
			func(v T) *task.Task[Result[T, E]] {
				return task.Map(action(v), func(struct{}) Result[T, E] { return r })
			},
			func(E) *task.Task[Result[T, E]] { return task.FromValue(r) })
	})
}

func TapErrorAsync[T, E any](ctx context.Context, carrier *task.Task[Result[T, E]],
	action func(E) *task.Task[struct{}]) *task.Task[Result[T, E]] {

	return task.Then(ctx, carrier, func(r Result[T, E]) *task.Task[Result[T, E]] {
		return Match(r,
			func(T) *task.Task[Result[T, E]] { return task.FromValue(r) },
			func(e E) *task.Task[Result[T, E]] {
				return task.Map(action(e), func(struct{}) Result[T, E] { return r })
			})
	})
}

func SelectManyAsync[T, E, C, R any](ctx context.Context, carrier *task.Task[Result[T, E]],
	bind func(T) *task.Task[Result[C, E]], project func(T, C) R) *task.Task[Result[R, E]] {

	return MatchAsync(ctx, carrier,
		func(v T) *task.Task[Result[R, E]] {
			return task.Map(bind(v), func(inner Result[C, E]) Result[R, E] {
				return Map(inner, func(c C) R { return project(v, c) })
			})
		},
		failure[R, E])
}

func failure[U, E any](e E) *task.Task[Result[U, E]] {
	return task.FromValue(Fail[U](e))
}
