package option

import (
	"iter"

	"github.com/ib-77/fx/pkg/fx"
	"github.com/ib-77/fx/pkg/fx/result"
)

// Of lifts a raw value: nil becomes None, anything else Some.
func Of[T any](value T) Option[T] {
	if fx.IsNil(value) {
		return None[T]()
	}
	return Option[T]{value: value, kind: some}
}

func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Of(*ptr)
}

// FromOk lifts the comma-ok idiom of map lookups and type assertions.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Of(value)
}

// ToOption treats the zero value of T as absent.
func ToOption[T comparable](value T) Option[T] {
	var zero T
	if value == zero {
		return None[T]()
	}
	return Of(value)
}

func When[T any](value T, predicate func(T) bool) Option[T] {
	return Of(value).Filter(predicate)
}

// FromResult keeps the success value and discards the failure reason.
func FromResult[T, E any](r result.Result[T, E]) Option[T] {
	return result.Match(r, Of[T], func(E) Option[T] { return None[T]() })
}

// ToResult maps Some(v) to Ok(v) and None to Error(errorFactory()).
func ToResult[T, E any](o Option[T], errorFactory func() E) result.Result[T, E] {
	return Match(o,
		result.Ok[T, E],
		func() result.Result[T, E] { return result.Fail[T](errorFactory()) })
}

// ToNullable returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToNullable() *T {
	if o.kind != some {
		return nil
	}
	v := o.value
	return &v
}

// ToEnumerable yields the value once for Some and nothing for None. The
// sequence can be ranged over any number of times.
func (o Option[T]) ToEnumerable() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.kind == some {
			yield(o.value)
		}
	}
}

func (o Option[T]) ToSlice() []T {
	if o.kind == some {
		return []T{o.value}
	}
	return []T{}
}
