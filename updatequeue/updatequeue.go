// Package updatequeue implements the update queue: marking components
// dirty, scheduling a flush through the batching strategy, and draining
// the dirty set in mount-order so a flush is always top-down.
//
// Grounded on RendererImpl.ReRender / cleanupUnmountedComponents pairing
// (one external trigger, one internal sweep), generalised from "one root
// re-render" to a proper per-instance dirty set with ordering and
// nested-update guarantees.
package updatequeue

import (
	"sort"
	"time"

	"github.com/forgelogic/corereact/batch"
	"github.com/forgelogic/corereact/instance"
	"github.com/forgelogic/corereact/transaction"
)

// FlushObserver receives the wall-clock duration of one drain pass. A nil
// observer (the default) means flush timing is simply not recorded.
type FlushObserver interface {
	ObserveFlush(time.Duration)
}

// Driver is implemented by the composite reconciler: it is the thing that
// actually knows how to recompute a dirty instance's state and re-render.
// Queue is deliberately ignorant of reconciliation so that reconciler can
// depend on updatequeue without creating an import cycle.
type Driver interface {
	// MountOrder returns the instance's monotone mount order, used as the
	// drain tiebreaker (parents first).
	MountOrder(h instance.Handle) uint64
	// PerformUpdateIfNecessary recomputes h's pending state/element and
	// re-renders if needed, It must clear the instance's
	// PendingStateQueue/PendingReplace/PendingForceUpd before returning.
	PerformUpdateIfNecessary(h instance.Handle)
	// TakePendingCallbacks returns and clears h's queued setState
	// callbacks, in enqueue order.
	TakePendingCallbacks(h instance.Handle) []func()
}

// Queue is the process-wide dirty set plus the batching strategy that
// schedules its drain. One Queue is created per runtime.Runtime.
type Queue struct {
	driver   Driver
	strategy *batch.Strategy
	observer FlushObserver

	dirty    []instance.Handle
	dirtySet map[instance.Handle]bool

	// flushing is true for the whole dynamic extent of flush(), including
	// every componentDidMount/componentDidUpdate callback it fires. A
	// setState reached from in there must not re-enter the batching
	// strategy's transaction — it is already running one level up the
	// stack — so EnqueueUpdate takes a direct path onto the dirty set
	// instead, and flush's own outer loop picks it up as another pass.
	flushing bool
}

// SetFlushObserver installs the observer notified after each drain pass.
// Passing nil disables observation.
func (q *Queue) SetFlushObserver(o FlushObserver) { q.observer = o }

// New creates a Queue bound to driver. The returned Queue owns a
// batch.Strategy whose flush callback drains this Queue; callers needing
// to trigger a batch around unrelated work (e.g. the listener shim) should
// reuse Strategy() rather than constructing a second Strategy.
func New(driver Driver) *Queue {
	q := &Queue{driver: driver, dirtySet: map[instance.Handle]bool{}}
	q.strategy = batch.New(q.flush)
	return q
}

// Strategy exposes the shared batching strategy so callers outside this
// package (the event listener shim, the public mount surface) can batch
// their own side effects through the same open/close transaction.
func (q *Queue) Strategy() *batch.Strategy { return q.strategy }

// EnqueueSetState pushes patch onto inst's pending state queue and marks
// it dirty,
func (q *Queue) EnqueueSetState(h instance.Handle, patch instance.StatePatch, inst *instance.Instance) {
	inst.PendingStateQueue = append(inst.PendingStateQueue, patch)
	q.EnqueueUpdate(h)
}

// EnqueueReplaceState is EnqueueSetState but discards anything already
// queued for inst in the current batch first: a replace always wins over
// whatever was queued ahead of it, matching foldPendingState's own
// assumption that a PendingReplace clears the accumulator before folding.
func (q *Queue) EnqueueReplaceState(h instance.Handle, patch instance.StatePatch, inst *instance.Instance) {
	inst.PendingReplace = true
	inst.PendingStateQueue = []instance.StatePatch{patch}
	q.EnqueueUpdate(h)
}

// EnqueueForceUpdate sets PendingForceUpd and marks inst dirty.
func (q *Queue) EnqueueForceUpdate(h instance.Handle, inst *instance.Instance) {
	inst.PendingForceUpd = true
	q.EnqueueUpdate(h)
}

// EnqueueCallback queues cb to run after inst's next flush completes.
func (q *Queue) EnqueueCallback(h instance.Handle, cb func(), inst *instance.Instance) {
	inst.PendingCallbacks = append(inst.PendingCallbacks, cb)
	q.EnqueueUpdate(h)
}

// EnqueueUpdate marks h dirty. If no batch is currently open, it opens one
// via the batching strategy (whose close step calls flush); if a batch is
// already open, it just records h and returns,
func (q *Queue) EnqueueUpdate(h instance.Handle) {
	if q.flushing {
		q.enqueueDirect(h)
		return
	}
	if !q.strategy.IsBatchingUpdates() {
		q.strategy.BatchedUpdates(func() { q.enqueueDirect(h) })
		return
	}
	q.enqueueDirect(h)
}

func (q *Queue) enqueueDirect(h instance.Handle) {
	if q.dirtySet[h] {
		return
	}
	q.dirtySet[h] = true
	q.dirty = append(q.dirty, h)
}

// flush is the batching strategy's close callback: it drains the dirty
// set, processing nested dirtying (setState called from within
// componentDidMount/componentDidUpdate) in further passes of the same
// outer loop, each pass running as one "updates transaction".
func (q *Queue) flush() {
	q.flushing = true
	defer func() { q.flushing = false }()
	for len(q.dirty) > 0 {
		q.drainOnePass()
	}
}

func (q *Queue) drainOnePass() {
	var firedCallbacks []func()
	start := time.Now()

	tx := transaction.New(
		transaction.Wrapper{
			// nested-updates wrapper: nothing to restore on close — any
			// handle appended to q.dirty while this pass's method runs
			// is simply picked up by the outer for-loop in flush, which
			// is the "recursively flush them" behavior in plain Go terms.
			Initialize: func() any { return len(q.dirty) },
		},
		transaction.Wrapper{
			// post-callbacks wrapper: every instance's pending callbacks
			// collected during this pass fire only once the pass's
			// method has fully returned, so a callback never observes a
			// still-mid-flush sibling.
			Close: func(any) {
				for _, cb := range firedCallbacks {
					cb()
				}
			},
		},
	)

	_ = tx.Perform(func() error {
		batch := q.dirty
		q.dirty = nil
		for _, h := range batch {
			delete(q.dirtySet, h)
		}
		sort.Slice(batch, func(i, j int) bool {
			return q.driver.MountOrder(batch[i]) < q.driver.MountOrder(batch[j])
		})
		for _, h := range batch {
			q.driver.PerformUpdateIfNecessary(h)
			firedCallbacks = append(firedCallbacks, q.driver.TakePendingCallbacks(h)...)
		}
		return nil
	})

	if q.observer != nil {
		q.observer.ObserveFlush(time.Since(start))
	}
}

// Empty reports whether the dirty set is currently empty.
func (q *Queue) Empty() bool { return len(q.dirty) == 0 }
