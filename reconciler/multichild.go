package reconciler

import (
	"fmt"

	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/element"
	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/instance"
)

// childKey derives the key a child descriptor reconciles by: its
// explicit Key if it carries one (prefixed so an explicit key can never
// collide with an implicit one), otherwise its position.
func childKey(descriptor any, index int) string {
	if el, ok := descriptor.(*element.Element); ok && el != nil && el.Key != nil {
		return fmt.Sprintf("$%v", el.Key)
	}
	return fmt.Sprintf(".%d", index)
}

// mountChildren instantiates and mounts every child descriptor of a host
// instance's children prop, in order, appending each produced node.
func (r *Reconciler) mountChildren(inst *instance.Instance, container *instance.ContainerInfo, ctx context.Context) {
	descriptors := element.ChildrenSlice(inst.CurrentElement.Props)
	inst.RenderedChildren = make(map[string]instance.Handle, len(descriptors))
	inst.ChildOrder = make([]string, 0, len(descriptors))

	for i, d := range descriptors {
		key := childKey(d, i)
		h := r.instantiate(d, inst.Handle, ctx)
		child := r.arena.Get(h)
		child.Parent = inst.Handle
		child.HasParent = true
		child.MountIndex = i
		inst.RenderedChildren[key] = h
		inst.ChildOrder = append(inst.ChildOrder, key)

		node := r.mount(h, container, ctx)
		if node != nil {
			inst.DOMNode.AppendChild(node)
		}
	}
}

// updateChildren reconciles inst's children against a freshly rendered
// descriptor list: compatible keyed children are updated in place, with
// at most the out-of-order ones physically moved (tracked via lastIndex,
// the highest old position placed so far in new order); incompatible or
// newly-added children are replaced/mounted; children whose key no
// longer appears are unmounted.
func (r *Reconciler) updateChildren(inst *instance.Instance, nextDescriptors []any, ctx context.Context) {
	oldRendered := inst.RenderedChildren
	oldOrder := inst.ChildOrder

	newRendered := make(map[string]instance.Handle, len(nextDescriptors))
	newOrder := make([]string, 0, len(nextDescriptors))
	consumed := make(map[string]bool, len(oldOrder))

	var prevNode hostdom.Node
	lastIndex := -1

	for i, next := range nextDescriptors {
		key := childKey(next, i)
		oldHandle, existed := oldRendered[key]
		oldInst := r.arena.Get(oldHandle)

		var childHandle instance.Handle
		needsPlacement := false

		if existed && oldInst != nil && ShouldUpdate(currentDescriptor(oldInst), next) {
			r.receive(oldHandle, next, ctx)
			childHandle = oldHandle
			consumed[key] = true
			if oldInst.MountIndex < lastIndex {
				needsPlacement = true
			} else {
				lastIndex = oldInst.MountIndex
			}
		} else {
			if existed {
				r.unmount(oldHandle)
				consumed[key] = true
			}
			childHandle = r.instantiate(next, inst.Handle, ctx)
			child := r.arena.Get(childHandle)
			child.Parent = inst.Handle
			child.HasParent = true
			r.mount(childHandle, inst.ContainerInfo, ctx)
			needsPlacement = true
		}

		child := r.arena.Get(childHandle)
		child.MountIndex = i
		newRendered[key] = childHandle
		newOrder = append(newOrder, key)

		node := r.nodeFor(childHandle)
		if needsPlacement && node != nil {
			r.placeAfter(inst.DOMNode, node, prevNode)
		}
		if node != nil {
			prevNode = node
		}
	}

	for _, key := range oldOrder {
		if consumed[key] {
			continue
		}
		if h, ok := oldRendered[key]; ok {
			r.unmount(h)
		}
	}

	inst.RenderedChildren = newRendered
	inst.ChildOrder = newOrder
}

// placeAfter inserts node immediately after after (nil meaning "at the
// front"), moving it out of its current position first if it was already
// attached to parent.
func (r *Reconciler) placeAfter(parent, node, after hostdom.Node) {
	var ref hostdom.Node
	if after != nil {
		ref = after.NextSibling()
	} else {
		ref = parent.FirstChild()
	}
	if ref == node {
		return
	}
	if node.ParentNode() == parent {
		parent.RemoveChild(node)
	}
	parent.InsertBefore(node, ref)
}
