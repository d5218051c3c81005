package result

import (
	"fmt"
	"hash/maphash"

	"github.com/ib-77/fx/pkg/fx"
)

type kind uint8

const (
	invalid kind = iota
	ok
	failed
)

type Result[T, E any] struct {
	value  T
	reason E
	kind   kind
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, kind: ok}
}

func Fail[T, E any](reason E) Result[T, E] {
	return Result[T, E]{reason: reason, kind: failed}
}

// FromPair lifts the Go (value, error) convention: a non-nil err is the reason.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok[T, error](value)
}

// Unpack is the inverse of FromPair.
func Unpack[T any](r Result[T, error]) (T, error) {
	switch r.kind {
	case ok:
		return r.value, nil
	case failed:
		var zero T
		return zero, r.reason
	default:
		panic(r.unreachable())
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.kind == ok
}

func (r Result[T, E]) IsError() bool {
	return r.kind == failed
}

func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.kind == ok
}

func (r Result[T, E]) Reason() (E, bool) {
	return r.reason, r.kind == failed
}

func (r Result[T, E]) ValueOr(fallback T) T {
	if r.kind == ok {
		return r.value
	}
	return fallback
}

// Switch runs onSuccess or onFailure depending on the variant.
func (r Result[T, E]) Switch(onSuccess func(T), onFailure func(E)) {
	switch r.kind {
	case ok:
		onSuccess(r.value)
	case failed:
		onFailure(r.reason)
	default:
		panic(r.unreachable())
	}
}

func (r Result[T, E]) String() string {
	switch r.kind {
	case ok:
		return fmt.Sprintf("Ok(%v)", r.value)
	case failed:
		return fmt.Sprintf("Error(%v)", r.reason)
	default:
		return "Invalid"
	}
}

func (r Result[T, E]) unreachable() error {
	return fx.Unreachable(fmt.Sprintf("%T", r), uint8(r.kind))
}

// Match returns onSuccess(value) for Ok and onFailure(reason) for Error.
func Match[T, E, U any](r Result[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	switch r.kind {
	case ok:
		return onSuccess(r.value)
	case failed:
		return onFailure(r.reason)
	default:
		panic(r.unreachable())
	}
}

func Equal[T, E comparable](a, b Result[T, E]) bool {
	return a == b
}

// EqualFunc compares variants and then payloads with the given functions.
func EqualFunc[T, E any](a, b Result[T, E], eqValue func(T, T) bool, eqReason func(E, E) bool) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case ok:
		return eqValue(a.value, b.value)
	case failed:
		return eqReason(a.reason, b.reason)
	default:
		return true
	}
}

// Hash is consistent with ==: equal results hash equally under one seed.
func Hash[T, E comparable](seed maphash.Seed, r Result[T, E]) uint64 {
	return maphash.Comparable(seed, r)
}
