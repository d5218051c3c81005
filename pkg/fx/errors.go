package fx

import "errors"

var (
	// ErrNilValue is wrapped by the panic of Some given a nil value.
	ErrNilValue = errors.New("value must not be nil")
	// ErrNoValue is wrapped by the error OrThrow returns for None.
	ErrNoValue = errors.New("no value present")
	// ErrCancelled marks a task whose context was done before it awaited its carrier.
	ErrCancelled = errors.New("operation cancelled")
	// ErrUnreachable is wrapped by the panic of a dispatch on a corrupt variant tag.
	ErrUnreachable = errors.New("unreachable variant")
	// ErrPanicked is wrapped by the Error try reports for a panic whose value was not an error.
	ErrPanicked = errors.New("computation panicked")
)
