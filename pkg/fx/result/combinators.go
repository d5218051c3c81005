package result

func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	return Match(r,
		func(v T) Result[U, E] { return Ok[U, E](f(v)) },
		func(e E) Result[U, E] { return Fail[U](e) })
}

func MapFailure[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	return Match(r,
		func(v T) Result[T, F] { return Ok[T, F](v) },
		func(e E) Result[T, F] { return Fail[T](f(e)) })
}

// Bind chains a step that may fail; an Error is returned with its reason untouched.
func Bind[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	return Match(r,
		f,
		func(e E) Result[U, E] { return Fail[U](e) })
}

// SelectMany binds a dependent step and projects both success values.
func SelectMany[T, E, C, R any](r Result[T, E], bind func(T) Result[C, E], project func(T, C) R) Result[R, E] {
	return Bind(r, func(v T) Result[R, E] {
		return Map(bind(v), func(c C) R {
			return project(v, c)
		})
	})
}

func (r Result[T, E]) Tap(action func(T)) Result[T, E] {
	r.Switch(action, func(E) {})
	return r
}

func (r Result[T, E]) TapError(action func(E)) Result[T, E] {
	r.Switch(func(T) {}, action)
	return r
}
