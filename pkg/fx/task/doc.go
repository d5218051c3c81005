// Package task provides Task, the single asynchronous carrier used by the
// async combinators of the option, result and try packages.
//
// A Task is resolved lazily on the goroutine that first awaits it and the
// outcome is memoized, so combinators chained over tasks suspend only when
// the final task is awaited. Work that must run elsewhere is started by the
// caller with Go or GoContext, or bridged from a channel with FromChan.
//
// Common usage:
// - FromValue/Failed: already resolved tasks (a synchronous carrier)
// - New: a lazily resolved task
// - Go/GoContext/FromChan: caller-scheduled work
// - Lift/LiftThunk/LiftAction: turn a synchronous continuation into an async one
// - Then: await a carrier, then a continuation, checking cancellation first
package task
