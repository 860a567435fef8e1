package whilst

import (
	"github.com/ib-77/whilst/pkg/rop"
	"github.com/ib-77/whilst/pkg/rop/core"
)

// DoWhilstAny is DoWhilst for values whose function type is only known at run
// time. thisArg is passed to workers of shape func(any, int, Next) and is
// ignored otherwise.
//
// Accepted shapes:
//   - worker: Worker, func(int, Next), func(int, func(error, ...any)), func(any, int, Next)
//   - predicate: Predicate, func(int, Check), func(int, func(error, bool))
//   - done: Done, func(error, ...any)
//
// Any other value, including a nil function, is rejected with
// *rop.ErrInvalidArgument before anything is invoked.
func DoWhilstAny(worker, predicate, done any, thisArg any, opts ...core.Option) error {
	w, ok := asWorker(worker, thisArg)
	if !ok {
		return rop.NotAFunction(rop.FirstArgument, worker)
	}
	p, ok := asPredicate(predicate)
	if !ok {
		return rop.NotAFunction(rop.SecondArgument, predicate)
	}
	d, ok := asDone(done)
	if !ok {
		return rop.NotAFunction(rop.ThirdArgument, done)
	}
	return DoWhilst(w, p, d, opts...)
}

func asWorker(v any, thisArg any) (Worker, bool) {
	if rop.IsNil(v) {
		return nil, false
	}
	switch fn := v.(type) {
	case Worker:
		return fn, true
	case func(int, Next):
		return fn, true
	case func(int, func(error, ...any)):
		return func(count int, next Next) { fn(count, next) }, true
	case func(any, int, Next):
		return Bind(thisArg, fn), true
	}
	return nil, false
}

func asPredicate(v any) (Predicate, bool) {
	if rop.IsNil(v) {
		return nil, false
	}
	switch fn := v.(type) {
	case Predicate:
		return fn, true
	case func(int, Check):
		return fn, true
	case func(int, func(error, bool)):
		return func(count int, check Check) { fn(count, check) }, true
	}
	return nil, false
}

func asDone(v any) (Done, bool) {
	if rop.IsNil(v) {
		return nil, false
	}
	switch fn := v.(type) {
	case Done:
		return fn, true
	case func(error, ...any):
		return fn, true
	}
	return nil, false
}
