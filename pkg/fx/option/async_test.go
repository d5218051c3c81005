package option

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/fx/pkg/fx"
	"github.com/ib-77/fx/pkg/fx/result"
	"github.com/ib-77/fx/pkg/fx/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pending[T any](v T) *task.Task[T] {
	return task.Go(func() (T, error) { return v, nil })
}

func TestMapAsync(t *testing.T) {
	t.Parallel()

	o, err := MapAsync(context.Background(), pending(Some(42)), task.Lift(strconv.Itoa)).Await()
	require.NoError(t, err)
	assert.Equal(t, Some("42"), o)
}

func TestMapAsync_AllShapes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	carriers := []func() *task.Task[Option[int]]{
		func() *task.Task[Option[int]] { return task.FromValue(Some(42)) },
		func() *task.Task[Option[int]] { return pending(Some(42)) },
	}
	mappers := []func(int) *task.Task[string]{
		task.Lift(strconv.Itoa),
		func(x int) *task.Task[string] { return pending(strconv.Itoa(x)) },
	}

	for _, carrier := range carriers {
		for _, f := range mappers {
			o, err := MapAsync(ctx, carrier(), f).Await()
			require.NoError(t, err)
			assert.Equal(t, Some("42"), o)
		}
	}
}

func TestMapAsync_None(t *testing.T) {
	t.Parallel()

	called := false
	o, err := MapAsync(context.Background(), pending(None[int]()), func(x int) *task.Task[string] {
		called = true
		return task.FromValue(strconv.Itoa(x))
	}).Await()

	require.NoError(t, err)
	assert.Equal(t, None[string](), o)
	assert.False(t, called)
}

func TestMapAsync_CancelledBeforehand(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resolved := false
	carrier := task.New(func() (Option[int], error) {
		resolved = true
		return Some(42), nil
	})

	_, err := MapAsync(ctx, carrier, task.Lift(strconv.Itoa)).Await()
	assert.ErrorIs(t, err, fx.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, resolved)
}

func TestMapAsync_NilResultPanicsOnAwait(t *testing.T) {
	t.Parallel()

	mapped := MapAsync(context.Background(), pending(Some(1)), task.Lift(func(int) *int { return nil }))

	assert.Panics(t, func() { _, _ = mapped.Await() })
}

func TestBindAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	validate := func(name string) *task.Task[Option[string]] {
		return pending(When(name, func(n string) bool { return n == "Jason" }))
	}

	o, err := BindAsync(ctx, MapAsync(ctx, pending(Some(" Jason ")), task.Lift(strings.TrimSpace)), validate).Await()
	require.NoError(t, err)
	assert.Equal(t, Some("Jason"), o)

	o, err = BindAsync(ctx, task.FromValue(Some("Bob")), validate).Await()
	require.NoError(t, err)
	assert.Equal(t, None[string](), o)

	calls := 0
	o, err = BindAsync(ctx, task.FromValue(None[string]()), func(s string) *task.Task[Option[string]] {
		calls++
		return validate(s)
	}).Await()
	require.NoError(t, err)
	assert.Equal(t, None[string](), o)
	assert.Zero(t, calls)
}

func TestMatchAsync_AllShapes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	syncSome := task.Lift(func(v string) string { return "Welcome, " + v + "!" })
	asyncSome := func(v string) *task.Task[string] { return pending("Welcome, " + v + "!") }
	syncNone := task.LiftThunk(func() string { return "No valid user found." })
	asyncNone := func() *task.Task[string] { return pending("No valid user found.") }

	for _, onSome := range []func(string) *task.Task[string]{syncSome, asyncSome} {
		for _, onNone := range []func() *task.Task[string]{syncNone, asyncNone} {
			s, err := MatchAsync(ctx, pending(Some("Jason")), onSome, onNone).Await()
			require.NoError(t, err)
			assert.Equal(t, "Welcome, Jason!", s)

			s, err = MatchAsync(ctx, task.FromValue(None[string]()), onSome, onNone).Await()
			require.NoError(t, err)
			assert.Equal(t, "No valid user found.", s)
		}
	}
}

func TestFilterAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	positive := func(x int) *task.Task[bool] { return pending(x > 0) }

	o, err := FilterAsync(ctx, task.FromValue(Some(3)), positive).Await()
	require.NoError(t, err)
	assert.Equal(t, Some(3), o)

	o, err = FilterAsync(ctx, task.FromValue(Some(-3)), positive).Await()
	require.NoError(t, err)
	assert.Equal(t, None[int](), o)
}

func TestTapAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seen := 0
	o, err := TapAsync(ctx, pending(Some(8)), task.LiftAction(func(v int) { seen = v })).Await()
	require.NoError(t, err)
	assert.Equal(t, Some(8), o)
	assert.Equal(t, 8, seen)

	called := false
	o, err = TapAsync(ctx, pending(None[int]()), func(int) *task.Task[struct{}] {
		called = true
		return task.FromValue(struct{}{})
	}).Await()
	require.NoError(t, err)
	assert.Equal(t, None[int](), o)
	assert.False(t, called)
}

func TestOrElseAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	calls := 0
	fallback := func() *task.Task[int] {
		calls++
		return pending(-1)
	}

	v, err := OrElseAsync(ctx, pending(Some(5)), fallback).Await()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Zero(t, calls)

	v, err = OrElseAsync(ctx, task.FromValue(None[int]()), fallback).Await()
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	v, err = OrElseAsync(ctx, task.FromValue(None[int]()), task.LiftThunk(func() int { return -2 })).Await()
	require.NoError(t, err)
	assert.Equal(t, -2, v)
}

func TestToResultAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errorFactory := task.LiftThunk(func() string { return "missing" })

	r, err := ToResultAsync(ctx, pending(Some(1)), errorFactory).Await()
	require.NoError(t, err)
	assert.Equal(t, result.Ok[int, string](1), r)

	r, err = ToResultAsync(ctx, pending(None[int]()), func() *task.Task[string] { return pending("missing") }).Await()
	require.NoError(t, err)
	assert.Equal(t, result.Fail[int]("missing"), r)
}

func TestAsync_CarrierFailureIsNotCancellation(t *testing.T) {
	t.Parallel()

	boom := errors.New("lookup failed")
	_, err := MapAsync(context.Background(), task.Failed[Option[int]](boom), task.Lift(strconv.Itoa)).Await()

	assert.ErrorIs(t, err, boom)
	assert.False(t, fx.IsCancellationError(err))
}

func TestAsync_ChannelCarrier(t *testing.T) {
	t.Parallel()

	ch := make(chan Option[int], 1)
	ch <- Some(2)

	o, err := MapAsync(context.Background(), task.FromChan(ch), task.Lift(func(x int) int { return x * 3 })).Await()
	require.NoError(t, err)
	assert.Equal(t, Some(6), o)
}
