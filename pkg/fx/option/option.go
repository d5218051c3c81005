package option

import (
	"fmt"
	"hash/maphash"

	"github.com/ib-77/fx/pkg/fx"
)

type kind uint8

const (
	none kind = iota
	some
)

type Option[T any] struct {
	value T
	kind  kind
}

// Some wraps value. It panics with an error wrapping fx.ErrNilValue when
// value is nil.
func Some[T any](value T) Option[T] {
	if fx.IsNil(value) {
		panic(fmt.Errorf("%w: Some[%T]", fx.ErrNilValue, value))
	}
	return Option[T]{value: value, kind: some}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.kind == some
}

func (o Option[T]) IsNone() bool {
	return o.kind == none
}

// Get returns the value and true for Some, the zero value and false for None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.kind == some
}

func (o Option[T]) Switch(onSome func(T), onNone func()) {
	switch o.kind {
	case some:
		onSome(o.value)
	case none:
		onNone()
	default:
		panic(o.unreachable())
	}
}

func (o Option[T]) String() string {
	if o.kind == some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func (o Option[T]) unreachable() error {
	return fx.Unreachable(fmt.Sprintf("%T", o), uint8(o.kind))
}

// Match returns onSome(value) for Some and onNone() for None.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	switch o.kind {
	case some:
		return onSome(o.value)
	case none:
		return onNone()
	default:
		panic(o.unreachable())
	}
}

func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}

func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.kind != b.kind {
		return false
	}
	return a.kind == none || eq(a.value, b.value)
}

// Hash is consistent with ==: every None of one T hashes alike.
func Hash[T comparable](seed maphash.Seed, o Option[T]) uint64 {
	return maphash.Comparable(seed, o)
}
