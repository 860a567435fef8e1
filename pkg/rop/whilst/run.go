package whilst

import (
	"sync"

	"github.com/eapache/queue"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ib-77/whilst/pkg/rop/core"
	"github.com/ib-77/whilst/pkg/rop/metrics"
)

// run holds the state of one top-level DoWhilst call.
type run struct {
	worker    Worker
	predicate Predicate
	done      Done
	opts      core.Options
	logger    log.FieldLogger

	mu       sync.Mutex
	state    State
	count    int
	aux      []any
	steps    *queue.Queue
	draining bool
}

func newRun(worker Worker, predicate Predicate, done Done, opts core.Options) *run {
	id := uuid.New()
	return &run{
		worker:    worker,
		predicate: predicate,
		done:      done,
		opts:      opts,
		logger:    opts.Logger.WithFields(log.Fields{"run": id.String(), "name": opts.Name}),
		state:     StateInvoking,
		steps:     queue.New(),
	}
}

func (r *run) start() {
	r.opts.Metrics.RunStarted(r.opts.Name)
	r.logger.Debug("starting")
	r.schedule(r.invokeWorker)
}

// schedule queues step and drains the queue unless another goroutine is
// already draining it. Handlers called from inside a step only enqueue, so
// synchronous workers loop here instead of growing the stack.
func (r *run) schedule(step func()) {
	r.mu.Lock()
	r.steps.Add(step)
	if r.draining {
		r.mu.Unlock()
		return
	}
	r.draining = true
	for r.steps.Length() > 0 {
		next := r.steps.Remove().(func())
		r.mu.Unlock()
		next()
		r.mu.Lock()
	}
	r.draining = false
	r.mu.Unlock()
}

func (r *run) invokeWorker() {
	r.mu.Lock()
	count := r.count
	r.mu.Unlock()

	r.logger.WithField("count", count).Debug("invoking worker")
	r.worker(count, r.nextHandler())
}

func (r *run) invokePredicate(count int) {
	r.logger.WithField("count", count).Debug("checking predicate")
	r.predicate(count, r.checkHandler())
}

func (r *run) nextHandler() Next {
	used := false
	return func(err error, args ...any) {
		r.mu.Lock()
		if used || r.state != StateInvoking {
			state := r.state
			r.mu.Unlock()
			r.ignore("worker", state)
			return
		}
		used = true

		if err != nil {
			r.state = StateFailed
			r.mu.Unlock()
			r.schedule(func() { r.fail(err) })
			return
		}

		r.count++
		r.aux = append([]any(nil), args...)
		r.state = StateChecking
		count := r.count
		r.mu.Unlock()

		r.opts.Metrics.Iteration(r.opts.Name)
		r.schedule(func() { r.invokePredicate(count) })
	}
}

func (r *run) checkHandler() Check {
	used := false
	return func(err error, more bool) {
		r.mu.Lock()
		if used || r.state != StateChecking {
			state := r.state
			r.mu.Unlock()
			r.ignore("predicate", state)
			return
		}
		used = true

		switch {
		case err != nil:
			r.state = StateFailed
			r.mu.Unlock()
			r.schedule(func() { r.fail(err) })
		case more:
			r.state = StateInvoking
			r.mu.Unlock()
			r.schedule(r.invokeWorker)
		default:
			r.state = StateDone
			results := r.aux
			count := r.count
			r.aux = nil
			r.mu.Unlock()
			r.schedule(func() { r.succeed(count, results) })
		}
	}
}

func (r *run) fail(err error) {
	r.opts.Metrics.RunFinished(r.opts.Name, metrics.OutcomeFailed)
	r.logger.WithError(err).WithField("state", StateFailed.String()).Debug("finished")
	r.done(err)
}

func (r *run) succeed(count int, results []any) {
	r.opts.Metrics.RunFinished(r.opts.Name, metrics.OutcomeDone)
	r.logger.WithFields(log.Fields{
		"count":   count,
		"results": len(results),
		"state":   StateDone.String(),
	}).Debug("finished")
	r.done(nil, results...)
}

func (r *run) ignore(source string, state State) {
	r.opts.Metrics.IgnoredCallback(r.opts.Name)
	logger := r.logger.WithFields(log.Fields{"source": source, "state": state.String()})
	if state.Terminal() {
		logger.Debug("ignoring callback after run finished")
		return
	}
	logger.Debug("ignoring repeated callback")
}
