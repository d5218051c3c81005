package fx

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// IsNil reports whether i is nil or a typed nil of a nil-able kind.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// GetErrors flattens err into the errors it joins, depth first, so the parts
// of a Cancelled error can be reported one by one. A nil err gives an empty
// slice; an err that joins nothing is returned alone.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	joined, isJoin := err.(interface{ Unwrap() []error })
	if !isJoin {
		return []error{err}
	}

	parts := make([]error, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		parts = append(parts, GetErrors(e)...)
	}
	return parts
}

func IsCancellationError(err error) bool {
	return errors.Is(err, ErrCancelled) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Cancelled wraps the cause of a done context so that both ErrCancelled and
// the context error match with errors.Is.
func Cancelled(ctx context.Context) error {
	cause := context.Cause(ctx)
	if cause == nil {
		cause = context.Canceled
	}
	return errors.Join(ErrCancelled, cause)
}

// Unreachable is the panic value for a dispatch on a corrupt variant tag.
func Unreachable(typeName string, tag uint8) error {
	return fmt.Errorf("%w: %s with tag %d", ErrUnreachable, typeName, tag)
}
