package pointer

// Scheduler defers work until the current input batch has settled.
//
// Press handling is deliberately deferred by one scheduling tick so that
// exclusion flags toggled by a modifier-key event arriving in the same batch
// (space-pan, text-edit focus) are observed consistently. The deferral is an
// explicit contract, not an ambient task queue: the event-loop owner drains
// the scheduler after each batch.
type Scheduler interface {
	// Defer enqueues fn to run once the current input batch settles.
	Defer(fn func())
}

// Queue is a FIFO Scheduler drained explicitly by the event loop.
type Queue struct {
	fns []func()
}

// NewQueue creates an empty deferral queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Defer enqueues fn for the next Drain.
func (q *Queue) Defer(fn func()) {
	q.fns = append(q.fns, fn)
}

// Drain runs all queued functions in order and clears the queue.
// Functions deferred while draining run in the same pass, preserving FIFO
// order across nested deferrals.
func (q *Queue) Drain() {
	for len(q.fns) > 0 {
		fn := q.fns[0]
		q.fns = q.fns[1:]
		fn()
	}
}

// Len returns the number of pending functions.
func (q *Queue) Len() int {
	return len(q.fns)
}

// Immediate is a Scheduler that runs work synchronously. It exists for
// callers that process one event at a time and have no batching to settle.
type Immediate struct{}

// Defer runs fn immediately.
func (Immediate) Defer(fn func()) { fn() }
