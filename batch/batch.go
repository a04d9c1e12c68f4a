// Package batch implements the default batching strategy: a global
// IsBatchingUpdates flag and a BatchedUpdates entry point that wraps an
// operation in a two-phase transaction so re-entrant calls short-circuit
// to direct invocation and only the outermost call drains the update
// queue. Grounded on RendererImpl, which guards its whole render cycle
// with a mutex and funnels every external trigger (SetState, router
// navigation) through one ReRender entry point; Strategy generalises that
// single entry point into an explicit open/close transaction.
package batch

import "github.com/forgelogic/corereact/transaction"

// Strategy is the process-wide batching strategy. It is not safe for
// concurrent use from multiple goroutines simultaneously — the
// whole runtime is single-threaded by contract; Strategy itself does not
// add locking, matching the rest of the reconciler.
type Strategy struct {
	isBatchingUpdates bool
	flush             func()
	tx                *transaction.Transaction
}

// New creates a Strategy whose outermost BatchedUpdates call invokes flush
// once the batching transaction closes.
func New(flush func()) *Strategy {
	s := &Strategy{flush: flush}
	s.tx = transaction.New(transaction.Wrapper{
		Initialize: func() any { return nil },
		Close: func(any) {
			s.isBatchingUpdates = false
			if s.flush != nil {
				s.flush()
			}
		},
	})
	return s
}

// IsBatchingUpdates reports whether a batch is currently open.
func (s *Strategy) IsBatchingUpdates() bool { return s.isBatchingUpdates }

// BatchedUpdates runs fn inside a batch. Re-entrant calls (fn calling
// BatchedUpdates again) short-circuit to a direct invocation because the
// flag is already set; only the outermost call opens/closes the
// transaction and triggers flush.
func (s *Strategy) BatchedUpdates(fn func()) {
	if s.isBatchingUpdates {
		fn()
		return
	}
	s.isBatchingUpdates = true
	_ = s.tx.Perform(func() error {
		fn()
		return nil
	})
}
