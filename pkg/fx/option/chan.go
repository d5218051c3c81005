package option

import "context"

// First receives one value from ch. It returns None when ch is closed or ctx
// is done first.
func First[T any](ctx context.Context, ch <-chan T) Option[T] {
	select {
	case v, ok := <-ch:
		return FromOk(v, ok)
	case <-ctx.Done():
		return None[T]()
	}
}

// Collect receives from ch until it is closed or ctx is done and keeps the
// values that lift to Some.
func Collect[T any](ctx context.Context, ch <-chan Option[T]) []T {
	res := make([]T, 0)
	for {
		select {
		case o, ok := <-ch:
			if !ok {
				return res
			}
			if v, present := o.Get(); present {
				res = append(res, v)
			}
		case <-ctx.Done():
			return res
		}
	}
}
