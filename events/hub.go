package events

import (
	"github.com/forgelogic/corereact/batch"
	"github.com/forgelogic/corereact/devlog"
	"github.com/forgelogic/corereact/domcache"
	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/instance"
)

// DispatchObserver receives the name of each event dispatched through a
// Hub. A nil observer (the default) means dispatch counts are simply not
// recorded.
type DispatchObserver interface {
	ObserveDispatch(eventName string)
}

// Hub is the process-wide event delegation point: one Hub per mounted
// root document. It attaches at most one native listener per (document,
// event name) regardless of how many host instances register a handler
// for that name, and resolves every dispatch by walking the
// internal-instance tree rather than the DOM.
type Hub struct {
	arena    *instance.Arena
	cache    *domcache.Cache
	strategy *batch.Strategy
	observer DispatchObserver

	plugins map[string]Plugin // event name -> plugin

	bubble  map[instance.Handle]map[string]any
	capture map[instance.Handle]map[string]any

	attached map[attachKey]bool
}

// SetDispatchObserver installs the observer notified on every dispatch.
// Passing nil disables observation.
func (h *Hub) SetDispatchObserver(o DispatchObserver) { h.observer = o }

type attachKey struct {
	root      hostdom.Node
	eventName string
}

// New creates a Hub bound to arena/cache/strategy, registering
// SimpleEventPlugin for DefaultEventNames.
func New(arena *instance.Arena, cache *domcache.Cache, strategy *batch.Strategy) *Hub {
	h := &Hub{
		arena:    arena,
		cache:    cache,
		strategy: strategy,
		plugins:  map[string]Plugin{},
		bubble:   map[instance.Handle]map[string]any{},
		capture:  map[instance.Handle]map[string]any{},
		attached: map[attachKey]bool{},
	}
	h.RegisterPlugin(NewSimpleEventPlugin(DefaultEventNames...))
	return h
}

// RegisterPlugin adds p for every name it declares, overriding any
// previously registered plugin for that name.
func (h *Hub) RegisterPlugin(p Plugin) {
	for _, name := range p.Names() {
		h.plugins[name] = p
	}
}

// SetHandler installs or clears (handler == nil) the handler for
// (instanceHandle, eventName) and, on the capturing==true path, the
// capture-phase handler instead. root is the container node the instance
// was mounted under, so the hub can lazily attach the one delegated
// top-level listener this event name needs on that subtree's root.
func (h *Hub) SetHandler(root hostdom.Node, target instance.Handle, eventName string, capturing bool, handler any) {
	table := h.bubble
	if capturing {
		table = h.capture
	}
	m, ok := table[target]
	if !ok {
		m = map[string]any{}
		table[target] = m
	}
	if handler == nil {
		delete(m, eventName)
		if len(m) == 0 {
			delete(table, target)
		}
		return
	}
	m[eventName] = handler
	h.ensureTopLevelListener(root, eventName)
}

// ClearInstance removes every handler registered for an instance being
// unmounted, so a stale Go closure never fires again.
func (h *Hub) ClearInstance(target instance.Handle) {
	delete(h.bubble, target)
	delete(h.capture, target)
}

func (h *Hub) ensureTopLevelListener(root hostdom.Node, eventName string) {
	key := attachKey{root, eventName}
	if h.attached[key] {
		return
	}
	h.attached[key] = true
	root.AddEventListener(eventName, true, func(native hostdom.Event) {
		h.Dispatch(eventName, native)
	})
}

// Dispatch resolves native's target to an instance Handle, builds the
// capture/bubble path of enclosing host instances (root to target, then
// target to root), and invokes registered handlers in that order. The
// whole dispatch runs inside one BatchedUpdates call so every setState
// triggered by the event flushes together.
func (h *Hub) Dispatch(eventName string, native hostdom.Event) {
	if h.observer != nil {
		h.observer.ObserveDispatch(eventName)
	}
	h.strategy.BatchedUpdates(func() {
		h.dispatchOnce(eventName, native)
	})
}

func (h *Hub) dispatchOnce(eventName string, native hostdom.Event) {
	targetHandle, ok := h.cache.Lookup(native.Target())
	if !ok {
		return
	}

	path := h.pathToRoot(targetHandle)

	ev := eventPool.Get(func(e *SyntheticEvent) {
		e.Type = eventName
		e.Target = native.Target()
		e.Native = native
	})
	if plugin, ok := h.plugins[eventName]; ok {
		plugin.Extract(ev, native)
	}
	defer func() {
		if !ev.IsPersistent() {
			eventPool.Release(ev)
		}
	}()

	var firstPanic any

	// Capture: root -> target.
	for i := len(path) - 1; i >= 0; i-- {
		if ev.stopped {
			break
		}
		h.invoke(h.capture, path[i], eventName, ev, &firstPanic)
	}
	// Bubble: target -> root.
	if !ev.stopped {
		for i := 0; i < len(path); i++ {
			if ev.stopped {
				break
			}
			h.invoke(h.bubble, path[i], eventName, ev, &firstPanic)
		}
	}

	if firstPanic != nil {
		panic(firstPanic)
	}
}

// invoke calls the (target, eventName) listener in table, if any, catching
// a panic so a listener that fails doesn't stop the rest of the capture or
// bubble path from running. The first panic seen across the whole dispatch
// is recorded into *firstPanic for dispatchOnce to rethrow once both
// phases have fully run; any further panic is only logged.
func (h *Hub) invoke(table map[instance.Handle]map[string]any, target instance.Handle, eventName string, ev *SyntheticEvent, firstPanic *any) {
	handlers, ok := table[target]
	if !ok {
		return
	}
	fn, ok := handlers[eventName]
	if !ok {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if *firstPanic == nil {
				*firstPanic = r
			} else {
				devlog.Warn("event listener for %s panicked: %v", eventName, r)
			}
		}
	}()
	callHandler(fn, ev)
}

// pathToRoot returns the chain of host-instance handles from target up to
// (and including) the outermost host ancestor, ordered target-first.
// instance.Parent always already points at the nearest enclosing host, so
// this is a direct walk with no composite instances to skip.
func (h *Hub) pathToRoot(target instance.Handle) []instance.Handle {
	var path []instance.Handle
	for cur := target; cur != 0; {
		inst := h.arena.Get(cur)
		if inst == nil {
			break
		}
		path = append(path, cur)
		if !inst.HasParent || inst.Parent == 0 {
			break
		}
		cur = inst.Parent
	}
	return path
}
