// Package result provides Result[T, E], the outcome of a computation that
// either succeeded with a T or failed with a reason of type E.
//
// Result is a closed two-variant sum built with Ok and Fail. The zero value
// is neither variant; dispatching on it panics with fx.ErrUnreachable.
//
// Key operations:
// - Match/Switch: exhaustive dispatch on Ok or Error
// - Map/MapFailure: transform the success value or the failure reason
// - Bind/SelectMany: chain dependent steps, short-circuiting on the first Error
// - Tap/TapError: side effects on one path, returning the original result
// - MatchAsync/MapAsync/BindAsync/...: the same over a *task.Task carrier
package result
