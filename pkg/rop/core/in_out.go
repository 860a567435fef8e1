package core

import "context"

// FromChanFirst waits for the first value on out. ok is false when the
// channel is closed or ctx ends before a value arrives.
func FromChanFirst[T any](ctx context.Context, out <-chan T) (res T, ok bool) {
	select {
	case v, open := <-out:
		if !open {
			return res, false
		}
		return v, true
	case <-ctx.Done():
		return res, false
	}
}
