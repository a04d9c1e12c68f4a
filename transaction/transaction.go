// Package transaction implements a reusable transaction abstraction: a
// pooled open/close-wrapper runner around arbitrary work, used for mount
// and for event dispatch. Nothing names this pattern explicitly elsewhere,
// but the dev/prod lifecycle split (renderer_dev.go / renderer_prod.go
// wrapping OnMount/OnUnmount calls in a panic boundary) is exactly the
// "wrapper around arbitrary work" shape this package generalises into a
// reusable abstraction — the same coroutine-like control flow that is
// naturally expressed here as direct recursion.
package transaction

import "fmt"

// initSentinel marks a wrapper's init-data slot before Initialize runs, so
// a panic during Initialize can be detected and that wrapper's Close is
// skipped.
type initSentinel struct{}

var observedError = initSentinel{}

// Wrapper is one paired open/close step. Initialize's return value is
// threaded through to the matching Close call.
type Wrapper struct {
	Initialize func() any
	Close      func(initData any)
}

// Transaction owns an ordered sequence of Wrappers and enforces the
// invariant that Initialize calls happen in order before Method runs, and
// Close calls happen in order afterward — "all post-mount callbacks fire
// after all mounts complete" falls out of wrappers being closed only once
// Method has fully returned.
type Transaction struct {
	Wrappers []Wrapper

	running bool
	initData []any
}

// New constructs a Transaction around the given wrappers.
func New(wrappers ...Wrapper) *Transaction {
	return &Transaction{Wrappers: wrappers}
}

// Reset clears perform-scoped state so a pooled Transaction can be reused
// for unrelated wrappers on its next acquisition.
func (t *Transaction) Reset(wrappers ...Wrapper) {
	t.Wrappers = wrappers
	t.running = false
	t.initData = nil
}

// Destructor satisfies pool.Resettable.
func (t *Transaction) Destructor() {
	t.Wrappers = nil
	t.running = false
	t.initData = nil
}

// Perform runs method inside the transaction:
//  1. assert not already inside this transaction instance
//  2. initialize every wrapper in order, recording initData / the error
//     sentinel
//  3. invoke method
//  4. close every wrapper in order whose init did not error, even if
//     method panicked — the original panic, if any, is re-raised after
//     every closeable wrapper has run
//  5. reset
func (t *Transaction) Perform(method func() error) (err error) {
	if t.running {
		panic("transaction: Perform called while already running")
	}
	t.running = true
	t.initData = make([]any, len(t.Wrappers))

	var initPanic any
	for i, w := range t.Wrappers {
		t.initData[i] = observedError
		if w.Initialize == nil {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil && initPanic == nil {
					initPanic = r
				}
			}()
			t.initData[i] = w.Initialize()
		}()
	}

	var methodPanic any
	if initPanic == nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					methodPanic = r
				}
			}()
			err = method()
		}()
	}

	for i := 0; i < len(t.Wrappers); i++ {
		w := t.Wrappers[i]
		if t.initData[i] == observedError && w.Initialize != nil {
			// init aborted (panicked before assigning); skip close.
			continue
		}
		if w.Close != nil {
			closeWrapper(w, t.initData[i])
		}
	}

	t.running = false
	t.initData = nil

	if initPanic != nil {
		panic(initPanic)
	}
	if methodPanic != nil {
		panic(methodPanic)
	}
	return err
}

// closeWrapper runs one wrapper's Close, converting a panic into a
// logged-and-swallowed event so the rest of the close phase still runs
// for the other wrappers.
func closeWrapper(w Wrapper, initData any) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("transaction: wrapper close panicked: %v\n", r)
		}
	}()
	w.Close(initData)
}

// IsRunning reports whether Perform is currently on the call stack for t.
func (t *Transaction) IsRunning() bool { return t.running }
