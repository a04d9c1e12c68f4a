package reconciler

import (
	"github.com/forgelogic/corereact/component"
	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/element"
	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/instance"
)

// currentDescriptor reconstructs the value ShouldUpdate should compare an
// instance against: its element for Host/Composite kinds, its current text
// for Text (any string or number is compatible with a Text instance, so
// the content never affects should-update), or nil for Empty.
func currentDescriptor(inst *instance.Instance) any {
	if inst == nil {
		return nil
	}
	switch inst.Kind {
	case instance.Host, instance.Composite:
		return inst.CurrentElement
	case instance.Text:
		return inst.CurrentText
	default:
		return nil
	}
}

// mountComposite folds pending state set during a componentWillMount
// call, renders the composite's child descriptor, mounts it, and queues
// componentDidMount to run once the surrounding mount finishes.
func (r *Reconciler) mountComposite(inst *instance.Instance, container *instance.ContainerInfo, ctx context.Context) hostdom.Node {
	if m, ok := inst.PublicInstance.(component.Mounter); ok {
		r.invoke("componentWillMount", inst, func() { m.ComponentWillMount() })
	}
	r.foldPendingState(inst)

	childCtx := r.childContext(inst, ctx)
	childDescriptor := r.render(inst)
	childHandle := r.instantiate(childDescriptor, inst.Parent, childCtx)
	childInst := r.arena.Get(childHandle)
	childInst.Parent = inst.Parent
	childInst.HasParent = childInst.Parent != 0
	inst.RenderedChild = childHandle
	inst.HasRenderedChild = true

	node := r.mount(childHandle, container, childCtx)

	attachRef(inst.CurrentElement, inst.PublicInstance)

	if dm, ok := inst.PublicInstance.(component.DidMounter); ok {
		inst.PendingCallbacks = append(inst.PendingCallbacks, func() {
			r.invoke("componentDidMount", inst, func() { dm.ComponentDidMount() })
		})
	}
	r.observeMount("composite")
	return node
}

func (r *Reconciler) childContext(inst *instance.Instance, ctx context.Context) context.Context {
	provider, ok := inst.PublicInstance.(component.ContextProvider)
	if !ok {
		return ctx
	}
	return context.Merge(ctx, provider.GetChildContext(), provider.ChildContextTypes())
}

func (r *Reconciler) render(inst *instance.Instance) *element.Element {
	var out *element.Element
	r.invoke("render", inst, func() {
		out = inst.PublicInstance.(component.Component).Render()
	})
	return out
}

// foldPendingState applies every queued StatePatch in order, honoring a
// ReplaceState that clears everything queued before it, then clears the
// queue.
func (r *Reconciler) foldPendingState(inst *instance.Instance) {
	setter, hasInit := inst.PublicInstance.(interface{ Init(component.State) })
	getter, hasGet := inst.PublicInstance.(interface{ State() component.State })

	if len(inst.PendingStateQueue) == 0 {
		return
	}
	var state component.State
	if hasGet {
		state = getter.State()
	}
	if inst.PendingReplace {
		state = component.State{}
	}
	props := currentProps(inst)
	for _, patch := range inst.PendingStateQueue {
		if patch.Updater != nil {
			updated := patch.Updater(state, props, inst.Context)
			state = component.State(updated)
		} else if patch.Object != nil {
			if state == nil {
				state = component.State{}
			}
			state.Merge(patch.Object)
		}
	}
	if hasInit {
		setter.Init(state)
	}
	inst.PendingStateQueue = nil
	inst.PendingReplace = false
}

func currentProps(inst *instance.Instance) element.Props {
	if inst.CurrentElement == nil {
		return nil
	}
	return inst.CurrentElement.Props
}

// updateComposite is shared by the composite-receives-new-element path
// (parent re-rendered, nextElement non-nil) and the dirty-flush path
// (setState/forceUpdate with no new element, nextElement nil).
func (r *Reconciler) updateComposite(inst *instance.Instance, nextElement *element.Element, ctx context.Context, fromParent bool) {
	pub := inst.PublicInstance.(component.Component)

	var nextProps element.Props
	if fromParent {
		nextProps = nextElement.Props
		if pr, ok := pub.(component.PropsReceiver); ok {
			r.invoke("componentWillReceiveProps", inst, func() { pr.ComponentWillReceiveProps(nextProps, ctx) })
		}
	} else {
		nextProps = currentProps(inst)
	}

	forceUpdate := inst.PendingForceUpd
	inst.PendingForceUpd = false
	var prevState component.State
	if sb, ok := pub.(interface{ State() component.State }); ok {
		prevState = sb.State().Clone()
	}
	prevContext := inst.Context
	r.foldPendingState(inst)

	var nextState component.State
	if sb, ok := pub.(interface{ State() component.State }); ok {
		nextState = sb.State()
	}

	shouldUpdate := forceUpdate
	if !shouldUpdate {
		if ud, ok := pub.(component.UpdateDecider); ok {
			shouldUpdate = ud.ShouldComponentUpdate(nextProps, nextState, ctx)
		} else {
			shouldUpdate = true
		}
	}

	prevElement := inst.CurrentElement
	if fromParent {
		inst.CurrentElement = nextElement
		swapRef(prevElement, nextElement, inst.PublicInstance)
	}
	inst.Context = ctx

	if !shouldUpdate {
		return
	}

	if pu, ok := pub.(component.PreUpdater); ok {
		r.invoke("componentWillUpdate", inst, func() { pu.ComponentWillUpdate(nextProps, nextState, ctx) })
	}

	childCtx := r.childContext(inst, ctx)
	childDescriptor := r.render(inst)
	r.updateRenderedChild(inst, childDescriptor, childCtx)

	if du, ok := pub.(component.DidUpdater); ok {
		var prevProps element.Props
		if prevElement != nil {
			prevProps = prevElement.Props
		}
		inst.PendingCallbacks = append(inst.PendingCallbacks, func() {
			r.invoke("componentDidUpdate", inst, func() { du.ComponentDidUpdate(prevProps, prevState, prevContext) })
		})
	}
	r.observeUpdate("composite")
}

// updateRenderedChild applies the should-update predicate between the
// previously rendered child and the freshly rendered descriptor: reuse in
// place when compatible, otherwise unmount the old subtree and mount a
// new one at the same position.
func (r *Reconciler) updateRenderedChild(inst *instance.Instance, nextDescriptor any, ctx context.Context) {
	prevChild := inst.RenderedChild
	prevInst := r.arena.Get(prevChild)

	if prevInst != nil && ShouldUpdate(currentDescriptor(prevInst), nextDescriptor) {
		r.receive(prevChild, nextDescriptor, ctx)
		return
	}

	var container *instance.ContainerInfo
	var parentHost instance.Handle
	var parentNode, nextSibling hostdom.Node
	if prevInst != nil {
		leaf := prevInst
		for leaf.Kind == instance.Composite && leaf.HasRenderedChild {
			leaf = r.arena.Get(leaf.RenderedChild)
		}
		container = leaf.ContainerInfo
		parentHost = prevInst.Parent
		if old := r.nodeFor(prevChild); old != nil {
			parentNode, nextSibling = old.ParentNode(), old.NextSibling()
		}
	}

	r.unmount(prevChild)

	newHandle := r.instantiate(nextDescriptor, parentHost, ctx)
	newInst := r.arena.Get(newHandle)
	newInst.Parent = parentHost
	newInst.HasParent = parentHost != 0
	inst.RenderedChild = newHandle
	if node := r.mount(newHandle, container, ctx); node != nil && parentNode != nil {
		parentNode.InsertBefore(node, nextSibling)
	}
}

// receive re-renders an existing instance in place against a compatible
// new descriptor (any: *element.Element for Host/Composite, a bare
// string/number for Text, nil for Empty), dispatching per kind.
func (r *Reconciler) receive(h instance.Handle, next any, ctx context.Context) {
	inst := r.arena.Get(h)
	if inst == nil {
		return
	}
	switch inst.Kind {
	case instance.Composite:
		r.updateComposite(inst, next.(*element.Element), ctx, true)
	case instance.Host:
		r.updateHost(inst, next.(*element.Element), ctx)
	case instance.Text:
		r.updateText(inst, next)
	default:
		// Empty receiving another empty value: nothing to do.
	}
}

func (r *Reconciler) unmountComposite(inst *instance.Instance) {
	attachRef(inst.CurrentElement, nil)
	if um, ok := inst.PublicInstance.(component.Unmounter); ok {
		r.invoke("componentWillUnmount", inst, func() { um.ComponentWillUnmount() })
	}
	if inst.HasRenderedChild {
		r.unmount(inst.RenderedChild)
	}
	r.observeUnmount("composite")
}
