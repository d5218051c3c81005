// Package try turns computations that panic or return an error into a
// result.Result[T, error].
//
// Only the wrapped computation is guarded. A panic raised later by a
// combinator applied to the returned Result is not captured.
package try
