// Package option provides Option[T], a value that is either present (Some)
// or absent (None).
//
// The zero value of Option[T] is None. Some never holds a nil pointer,
// interface, map, slice, channel or function: use Of to lift a value that
// may be nil.
//
// Common usage:
// - Some/None/Of/FromPtr/ToOption/When: construction and lifting
// - Match/Switch: exhaustive dispatch
// - Map/Bind/Filter/Tap: transform and chain, short-circuiting on None
// - Reduce/OrElse/OrThrow: leave the Option with a value
// - ToResult/ToNullable/ToEnumerable: convert to other shapes
// - FirstOrNone/Values/Choose/ChooseMap/First: lift sequences and channels
// - MatchAsync/MapAsync/BindAsync/...: the same over a *task.Task carrier
package option
