package whilst

import (
	"github.com/ib-77/whilst/pkg/rop"
	"github.com/ib-77/whilst/pkg/rop/core"
)

// Next reports the end of one worker invocation. A non-nil err stops the run;
// otherwise args replace the values later handed to Done.
type Next func(err error, args ...any)

// Check reports a predicate decision. more=true runs the worker again.
type Check func(err error, more bool)

// Worker receives the number of completed invocations so far.
type Worker func(count int, next Next)

// Predicate receives the number of completed worker invocations.
type Predicate func(count int, check Check)

// Done receives either the error that stopped the run, or nil followed by the
// values of the last successful worker invocation.
type Done func(err error, results ...any)

// DoWhilst invokes worker, then predicate, and repeats while the predicate
// asks for more. It returns an error only when an argument is nil, in which
// case nothing is invoked.
func DoWhilst(worker Worker, predicate Predicate, done Done, opts ...core.Option) error {
	if worker == nil {
		return rop.NotAFunction(rop.FirstArgument, worker)
	}
	if predicate == nil {
		return rop.NotAFunction(rop.SecondArgument, predicate)
	}
	if done == nil {
		return rop.NotAFunction(rop.ThirdArgument, done)
	}

	newRun(worker, predicate, done, core.Apply(opts...)).start()
	return nil
}

// Bind returns a Worker that calls fn with recv as its receiver.
func Bind[R any](recv R, fn func(recv R, count int, next Next)) Worker {
	if fn == nil {
		return nil
	}
	return func(count int, next Next) {
		fn(recv, count, next)
	}
}
