package whilst

import (
	"context"
	"sync/atomic"

	"github.com/ib-77/whilst/pkg/rop"
	"github.com/ib-77/whilst/pkg/rop/core"
)

// Outcome of a finished run: the final invocation count and the values of the
// last successful worker invocation.
type Outcome struct {
	Count   int
	Results []any
}

// Await runs DoWhilst and blocks until it finishes or ctx ends.
//
// A worker or predicate error comes back as a failure holding that exact
// error. When ctx ends first the result is a cancellation; the run itself keeps
// going in the background and its outcome is discarded.
func Await(ctx context.Context, worker Worker, predicate Predicate, opts ...core.Option) rop.Result[Outcome] {
	var last atomic.Int64

	counted := predicate
	if predicate != nil {
		counted = func(count int, check Check) {
			last.Store(int64(count))
			predicate(count, check)
		}
	}

	out := make(chan rop.Result[Outcome], 1)
	err := DoWhilst(worker, counted, func(err error, results ...any) {
		if err != nil {
			out <- rop.Fail[Outcome](err)
			return
		}
		out <- rop.Success(Outcome{Count: int(last.Load()), Results: results})
	}, opts...)
	if err != nil {
		return rop.Fail[Outcome](err)
	}

	if res, ok := core.FromChanFirst(ctx, out); ok {
		return res
	}

	select {
	case res := <-out:
		return res
	default:
		return rop.Cancel[Outcome](ctx.Err())
	}
}
