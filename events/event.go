// Package events implements the synthetic event system: a pooled wrapper
// around each native event, a small plugin registry that extracts
// synthetic events from native ones, and a hub that attaches one
// delegated top-level listener per (document, event name) and walks the
// internal-instance tree for two-phase capture/bubble dispatch.
//
// Grounded on the adapter pair in events/adapters.go (one small Adapt*
// function per native event shape feeding a typed args struct into a
// handler) and generalised into the pooled, capture/bubble-aware
// SyntheticEvent/Hub pair here.
package events

import (
	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/pool"
)

// SyntheticEvent is the pooled, cross-platform event object handlers
// receive. By default it is released back to its pool as soon as the
// whole capture/bubble dispatch it was created for has finished; calling
// Persist keeps it alive
// for asynchronous use (e.g. stashing it in a closure for later), trading
// the pool's reuse for a plain garbage-collected allocation.
type SyntheticEvent struct {
	Type      string
	Target    hostdom.Node
	Native    hostdom.Event
	Data      map[string]any
	persisted bool
	defaulted bool
	stopped   bool
}

// Get reads a named field captured by the plugin that extracted this
// event, falling back to the native event's own Get for fields the
// plugin didn't bother copying.
func (e *SyntheticEvent) Get(name string) any {
	if e.Data != nil {
		if v, ok := e.Data[name]; ok {
			return v
		}
	}
	if e.Native != nil {
		return e.Native.Get(name)
	}
	return nil
}

// PreventDefault forwards to the native event.
func (e *SyntheticEvent) PreventDefault() {
	e.defaulted = true
	if e.Native != nil {
		e.Native.PreventDefault()
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *SyntheticEvent) DefaultPrevented() bool { return e.defaulted }

// StopPropagation halts the remaining capture/bubble walk for this
// dispatch; it does not stop sibling top-level listeners for other event
// names, only the instance-tree walk this hub is driving.
func (e *SyntheticEvent) StopPropagation() {
	e.stopped = true
	if e.Native != nil {
		e.Native.StopPropagation()
	}
}

// Persist keeps this event out of the pool's free list after dispatch
// completes, so a handler may retain it past the synchronous call.
func (e *SyntheticEvent) Persist() { e.persisted = true }

// IsPersistent reports whether Persist was called during dispatch.
func (e *SyntheticEvent) IsPersistent() bool { return e.persisted }

// Destructor satisfies pool.Resettable: it clears every field so a
// released event can never leak a reference into its next acquirer.
func (e *SyntheticEvent) Destructor() {
	e.Type = ""
	e.Target = nil
	e.Native = nil
	e.Data = nil
	e.persisted = false
	e.defaulted = false
	e.stopped = false
}

var eventPool = pool.New[SyntheticEvent](64, func() *SyntheticEvent { return &SyntheticEvent{} })
