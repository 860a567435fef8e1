// Package whilst repeats a callback-style worker until a predicate says stop.
//
// The caller supplies three functions:
// - Worker: does one unit of work and reports through its Next handler
// - Predicate: decides through its Check handler whether to run the worker again
// - Done: receives the terminal outcome exactly once
//
// Worker and Predicate run strictly in alternation. Either one may call its
// handler synchronously or later from another goroutine. Each handler is
// single-use: extra calls, and calls arriving after the run finished, are
// dropped.
//
// Entry points:
// - DoWhilst: typed functions
// - DoWhilstAny: dynamically typed functions with an optional worker receiver
// - Bind: attach a receiver to a worker
// - Await: block until the run finishes and get a rop.Result[Outcome]
package whilst
