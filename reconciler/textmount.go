package reconciler

import (
	"fmt"

	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/instance"
)

// mountText creates the actual text node and tags it directly in the
// node<->instance cache, so a text instance's position stays addressable
// without needing a pair of comment markers around it.
func (r *Reconciler) mountText(inst *instance.Instance, container *instance.ContainerInfo) hostdom.Node {
	id := container.NextID()
	inst.DOMID = int(id)
	inst.OpeningMarker = container.Document.CreateTextNode(inst.CurrentText)
	r.cache.Tag(inst.OpeningMarker, inst.Handle)
	inst.ContainerInfo = container
	r.observeMount("text")
	return inst.OpeningMarker
}

func (r *Reconciler) updateText(inst *instance.Instance, next any) {
	text := fmt.Sprintf("%v", next)
	if text != inst.CurrentText {
		inst.CurrentText = text
		if inst.OpeningMarker != nil {
			inst.OpeningMarker.SetTextData(text)
		}
	}
	r.observeUpdate("text")
}

func (r *Reconciler) unmountText(inst *instance.Instance) {
	if inst.OpeningMarker != nil && inst.OpeningMarker.ParentNode() != nil {
		inst.OpeningMarker.ParentNode().RemoveChild(inst.OpeningMarker)
	}
	r.observeUnmount("text")
}

// mountEmpty creates a comment placeholder for a null/false/undefined
// child, "<!--react-empty: N-->", so the position it occupies among
// siblings stays addressable.
func (r *Reconciler) mountEmpty(inst *instance.Instance, container *instance.ContainerInfo) hostdom.Node {
	id := container.NextID()
	inst.DOMID = int(id)
	inst.OpeningMarker = container.Document.CreateComment(fmt.Sprintf("react-empty: %d", id))
	r.cache.Tag(inst.OpeningMarker, inst.Handle)
	inst.ContainerInfo = container
	r.observeMount("empty")
	return inst.OpeningMarker
}
