package option

import (
	"fmt"

	"github.com/ib-77/fx/pkg/fx"
)

// Map applies f to the value of a Some. Like Some, it panics when f returns
// nil.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	return Match(o,
		func(v T) Option[U] { return Some(f(v)) },
		None[U])
}

// Bind chains a step that may produce no value. f is never called on None.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	return Match(o, f, None[U])
}

func MapOrDefault[T, U any](o Option[T], f func(T) U, fallback U) U {
	return Match(o, f, func() U { return fallback })
}

// MapOrElse is MapOrDefault with a lazily produced fallback.
func MapOrElse[T, U any](o Option[T], f func(T) U, fallback func() U) U {
	return Match(o, f, fallback)
}

func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.kind == some && !predicate(o.value) {
		return None[T]()
	}
	return o
}

// Tap calls action with the value of a Some and returns o unchanged.
func (o Option[T]) Tap(action func(T)) Option[T] {
	o.Switch(action, func() {})
	return o
}

func (o Option[T]) Reduce(substitute T) T {
	if o.kind == some {
		return o.value
	}
	return substitute
}

// ReduceFunc calls factory only for None.
func (o Option[T]) ReduceFunc(factory func() T) T {
	return Match(o, func(v T) T { return v }, factory)
}

func (o Option[T]) OrElse(fallback T) T {
	return o.Reduce(fallback)
}

func (o Option[T]) OrElseGet(factory func() T) T {
	return o.ReduceFunc(factory)
}

// OrThrow returns the value of a Some. For None it returns the first non-nil
// err given, or an error wrapping fx.ErrNoValue.
func (o Option[T]) OrThrow(err ...error) (T, error) {
	if o.kind == some {
		return o.value, nil
	}

	var zero T
	for _, e := range err {
		if e != nil {
			return zero, e
		}
	}
	return zero, fmt.Errorf("%w: %T", fx.ErrNoValue, o)
}

// MustGet is OrThrow for call sites that treat None as a bug.
func (o Option[T]) MustGet() T {
	v, err := o.OrThrow()
	if err != nil {
		panic(err)
	}
	return v
}
