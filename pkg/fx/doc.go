// Package fx holds what the option, result, try and task packages share:
// the error sentinels each failure condition wraps, and small helpers for
// nil detection and cancellation checks.
//
// Sentinels:
// - ErrNilValue: a present variant was constructed from a nil value
// - ErrNoValue: a value was demanded from an empty Option
// - ErrCancelled: an async combinator was cancelled before it awaited its carrier
// - ErrUnreachable: a dispatch landed on neither variant
// - ErrPanicked: a captured panic whose value was not an error
package fx
