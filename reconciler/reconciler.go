// Package reconciler implements instantiation, mounting, updating and
// unmounting for every internal-instance kind, the keyed multi-child diff,
// the host property differ, and the node<->instance cache wiring that
// lets an event dispatched at a native node resolve back to its owner.
//
// This intentionally folds what would otherwise be a separate host
// adapter into the same package as the composite/multi-child reconciler:
// mounting a host instance's children requires recursively
// instantiating/mounting arbitrary descriptors (host, composite, text),
// and Go has no clean way to split that mutual recursion across two
// packages without an interface doing all the actual work anyway.
package reconciler

import (
	"fmt"

	"github.com/forgelogic/corereact/component"
	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/domcache"
	"github.com/forgelogic/corereact/element"
	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/instance"
	"github.com/forgelogic/corereact/updatequeue"
)

// EventHub is the subset of events.Hub the property differ needs to wire
// onXxx props to native listeners. It is declared here, the consuming
// side, so events never needs to import reconciler.
type EventHub interface {
	SetHandler(root hostdom.Node, target instance.Handle, eventName string, capturing bool, handler any)
	ClearInstance(target instance.Handle)
}

// PanicHook observes a lifecycle-method panic after it has been
// recovered (production build) or immediately before it is re-raised
// (development build); see lifecycle_dev.go / lifecycle_prod.go.
type PanicHook func(stage string, publicInstance any, err error)

// MetricsHook observes mount/update/unmount counts per instance kind. A
// nil MetricsHook is valid; every call site checks before invoking it.
type MetricsHook interface {
	ObserveMount(kind string)
	ObserveUpdate(kind string)
	ObserveUnmount(kind string)
}

// Reconciler owns the arena and drives every mount/update/unmount. One
// Reconciler is created per mounted root document.
type Reconciler struct {
	arena *instance.Arena
	cache *domcache.Cache
	hub   EventHub
	queue *updatequeue.Queue

	onPanic PanicHook
	metrics MetricsHook

	dev bool
}

// New creates a Reconciler with no queue and no hub attached yet.
// AttachQueue must be called once afterward with the updatequeue.Queue
// constructed with this Reconciler as its Driver, and AttachHub once the
// events.Hub has been constructed with that queue's batching strategy —
// Reconciler, Queue and Hub form a three-way mutual dependency that Go
// has no forward declaration for, so construction happens in stages.
func New(arena *instance.Arena, cache *domcache.Cache, onPanic PanicHook, metrics MetricsHook, dev bool) *Reconciler {
	return &Reconciler{arena: arena, cache: cache, onPanic: onPanic, metrics: metrics, dev: dev}
}

// AttachQueue binds the update queue this reconciler's components enqueue
// state changes through.
func (r *Reconciler) AttachQueue(q *updatequeue.Queue) { r.queue = q }

// AttachHub binds the event hub the property differ registers onXxx
// handlers against.
func (r *Reconciler) AttachHub(hub EventHub) { r.hub = hub }

func (r *Reconciler) observeMount(kind string) {
	if r.metrics != nil {
		r.metrics.ObserveMount(kind)
	}
}

func (r *Reconciler) observeUpdate(kind string) {
	if r.metrics != nil {
		r.metrics.ObserveUpdate(kind)
	}
}

func (r *Reconciler) observeUnmount(kind string) {
	if r.metrics != nil {
		r.metrics.ObserveUnmount(kind)
	}
}

// MountOrder implements updatequeue.Driver.
func (r *Reconciler) MountOrder(h instance.Handle) uint64 {
	inst := r.arena.Get(h)
	if inst == nil {
		return 0
	}
	return inst.MountOrder
}

// TakePendingCallbacks implements updatequeue.Driver.
func (r *Reconciler) TakePendingCallbacks(h instance.Handle) []func() {
	inst := r.arena.Get(h)
	if inst == nil {
		return nil
	}
	cbs := inst.PendingCallbacks
	inst.PendingCallbacks = nil
	return cbs
}

// PerformUpdateIfNecessary implements updatequeue.Driver: it recomputes a
// dirty composite instance's state and re-renders if necessary. Only
// composite instances are ever marked dirty directly (host/text instances
// change only as a consequence of their composite ancestor re-rendering),
// so a dirty handle resolving to anything else is a bug upstream.
func (r *Reconciler) PerformUpdateIfNecessary(h instance.Handle) {
	inst := r.arena.Get(h)
	if inst == nil || inst.Kind != instance.Composite {
		return
	}
	r.updateComposite(inst, inst.CurrentElement, inst.Context, false)
}

// Unmount tears down the subtree rooted at h, the exported counterpart of
// the unexported per-kind dispatcher in mount.go, for callers outside
// this package (the public mount surface) that only ever unmount a whole
// root.
func (r *Reconciler) Unmount(h instance.Handle) { r.unmount(h) }

// RootContainer mounts descriptor under container, appending the produced
// node to container.Node, and returns the root host node produced, or nil
// if descriptor rendered to nothing (the react-empty comment placeholder
// is still appended to the container).
func (r *Reconciler) RootContainer(descriptor any, container *instance.ContainerInfo, ctx context.Context) hostdom.Node {
	h := r.instantiate(descriptor, container.TopLevelWrapper, ctx)
	inst := r.arena.Get(h)
	inst.ContainerInfo = container
	container.TopLevelWrapper = h
	node := r.mount(h, container, ctx)
	if node != nil && container.Node != nil {
		container.Node.AppendChild(node)
	}
	if node != nil && node.Kind() == hostdom.CommentNode {
		return nil
	}
	return node
}

// instantiate allocates (but does not mount) an Instance for descriptor.
func (r *Reconciler) instantiate(descriptor any, parent instance.Handle, ctx context.Context) instance.Handle {
	kind, el := classify(descriptor)
	switch kind {
	case kindEmpty:
		inst := r.arena.New(instance.Empty)
		return inst.Handle
	case kindText:
		inst := r.arena.New(instance.Text)
		inst.CurrentText = fmt.Sprintf("%v", descriptor)
		return inst.Handle
	case kindHost:
		inst := r.arena.New(instance.Host)
		inst.CurrentElement = el
		inst.Tag = el.Type.(string)
		return inst.Handle
	default:
		inst := r.arena.New(instance.Composite)
		inst.CurrentElement = el
		inst.Context = ctx
		r.constructComposite(inst, el, ctx)
		return inst.Handle
	}
}

func (r *Reconciler) constructComposite(inst *instance.Instance, el *element.Element, ctx context.Context) {
	switch t := el.Type.(type) {
	case component.ConstructorFunc:
		updater := &instanceUpdater{r: r, h: inst.Handle}
		pub := t(el.Props, ctx, updater)
		if base, ok := pub.(interface{ SetUpdater(component.Updater) }); ok {
			base.SetUpdater(updater)
		}
		inst.PublicInstance = pub
	case component.ThunkFunc:
		inst.PublicInstance = component.NewAutoThunk(t, el.Props)
	default:
		panic("reconciler: unsupported composite type")
	}
}

// instanceUpdater adapts a Reconciler+Handle into component.Updater.
type instanceUpdater struct {
	r *Reconciler
	h instance.Handle
}

func (u *instanceUpdater) EnqueueSetState(patch instance.StatePatch, cb func()) {
	inst := u.r.arena.Get(u.h)
	if inst == nil {
		return
	}
	u.r.queue.EnqueueSetState(u.h, patch, inst)
	if cb != nil {
		inst.PendingCallbacks = append(inst.PendingCallbacks, cb)
	}
}

func (u *instanceUpdater) EnqueueReplaceState(patch instance.StatePatch, cb func()) {
	inst := u.r.arena.Get(u.h)
	if inst == nil {
		return
	}
	u.r.queue.EnqueueReplaceState(u.h, patch, inst)
	if cb != nil {
		inst.PendingCallbacks = append(inst.PendingCallbacks, cb)
	}
}

func (u *instanceUpdater) EnqueueForceUpdate(cb func()) {
	inst := u.r.arena.Get(u.h)
	if inst == nil {
		return
	}
	u.r.queue.EnqueueForceUpdate(u.h, inst)
	if cb != nil {
		inst.PendingCallbacks = append(inst.PendingCallbacks, cb)
	}
}

func (u *instanceUpdater) IsMounted() bool {
	inst := u.r.arena.Get(u.h)
	return inst != nil && (inst.ContainerInfo != nil || inst.HasParent)
}
