package reconciler

import (
	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/instance"
	"github.com/forgelogic/corereact/hostdom"
)

// mount dispatches to the per-kind mount routine and returns the host
// node the subtree ultimately produced (the comment placeholder for
// Empty). Every mount call
// assigns MountOrder exactly once, which is what gives the update queue's
// drain its top-down guarantee.
func (r *Reconciler) mount(h instance.Handle, container *instance.ContainerInfo, ctx context.Context) hostdom.Node {
	inst := r.arena.Get(h)
	inst.MountOrder = r.arena.NextMountOrder()

	switch inst.Kind {
	case instance.Composite:
		return r.mountComposite(inst, container, ctx)
	case instance.Host:
		return r.mountHost(inst, container, ctx)
	case instance.Text:
		return r.mountText(inst, container)
	default:
		return r.mountEmpty(inst, container)
	}
}

// unmount dispatches to the per-kind unmount routine, detaching DOM nodes
// and freeing the instance from the arena once finished.
func (r *Reconciler) unmount(h instance.Handle) {
	inst := r.arena.Get(h)
	if inst == nil {
		return
	}
	switch inst.Kind {
	case instance.Composite:
		r.unmountComposite(inst)
	case instance.Host:
		r.unmountHost(inst)
	case instance.Text, instance.Empty:
		r.unmountText(inst)
	}
	r.arena.Free(h)
}

// nodeFor returns the host node representing h, recursing through
// composite instances to their rendered child.
func (r *Reconciler) nodeFor(h instance.Handle) hostdom.Node {
	inst := r.arena.Get(h)
	if inst == nil {
		return nil
	}
	switch inst.Kind {
	case instance.Composite:
		if !inst.HasRenderedChild {
			return nil
		}
		return r.nodeFor(inst.RenderedChild)
	case instance.Host:
		return inst.DOMNode
	default:
		// Text and Empty both render to the single node stashed in
		// OpeningMarker: a real text node for Text, a comment
		// placeholder for Empty.
		return inst.OpeningMarker
	}
}
