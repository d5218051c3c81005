package option

import "iter"

// FirstOrNone returns the first element of seq satisfying predicate.
// Iteration stops at the first match. A nil match panics as Some does.
func FirstOrNone[T any](seq iter.Seq[T], predicate func(T) bool) Option[T] {
	for v := range seq {
		if predicate(v) {
			return Some(v)
		}
	}
	return None[T]()
}

// Values yields the value of every Some in seq, in order, skipping None.
func Values[T any](seq iter.Seq[Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if o.kind == some && !yield(o.value) {
				return
			}
		}
	}
}

// Choose yields Some(x) for each x of seq satisfying predicate.
func Choose[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[Option[T]] {
	return func(yield func(Option[T]) bool) {
		for v := range seq {
			if !predicate(v) {
				continue
			}
			if !yield(Some(v)) {
				return
			}
		}
	}
}

// ChooseMap filters and transforms in one pass, yielding the present
// results of chooser.
func ChooseMap[T, U any](seq iter.Seq[T], chooser func(T) Option[U]) iter.Seq[U] {
	return Values(func(yield func(Option[U]) bool) {
		for v := range seq {
			if !yield(chooser(v)) {
				return
			}
		}
	})
}
