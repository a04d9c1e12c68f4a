package reconciler

import (
	"fmt"

	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/devlog"
	"github.com/forgelogic/corereact/element"
	"github.com/forgelogic/corereact/events"
	"github.com/forgelogic/corereact/events/domprops"
	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/instance"
)

// namespaceFor resolves the namespace the children of a tag element are
// created in: svg switches into SVG, math into MathML, foreignObject back
// into HTML, and everything else inherits its parent's namespace. An svg
// or math element itself is also created in the returned namespace;
// mountHost keeps a foreignObject element in its parent's namespace.
func namespaceFor(tag, parentNamespace string) string {
	switch tag {
	case "svg":
		return hostdom.SVGNamespace
	case "math":
		return hostdom.MathMLNamespace
	case "foreignObject":
		return hostdom.HTMLNamespace
	default:
		return parentNamespace
	}
}

// mountHost creates the native node for a host instance, applies its
// initial props, mounts and appends its children, and returns the node.
func (r *Reconciler) mountHost(inst *instance.Instance, container *instance.ContainerInfo, ctx context.Context) hostdom.Node {
	parentNamespace := hostdom.HTMLNamespace
	if container.NamespaceURI != "" {
		parentNamespace = container.NamespaceURI
	}
	ns := namespaceFor(inst.Tag, parentNamespace)
	elemNS := ns
	if inst.Tag == "foreignObject" {
		elemNS = parentNamespace
	}

	node := container.Document.CreateElement(inst.Tag, elemNS)
	inst.DOMNode = node
	inst.NamespaceURI = elemNS
	inst.ContainerInfo = container
	r.cache.Tag(node, inst.Handle)

	childContainer := &instance.ContainerInfo{
		Document:     container.Document,
		Node:         node,
		Tag:          inst.Tag,
		NamespaceURI: ns,
	}

	for name, value := range inst.CurrentElement.Props {
		r.applyProp(inst, name, nil, value)
	}

	r.mountChildren(inst, childContainer, ctx)

	attachRef(inst.CurrentElement, node)

	r.observeMount("host")
	return node
}

// updateHost diffs next's props against inst's currently-applied props and
// reconciles children against next's children slice.
func (r *Reconciler) updateHost(inst *instance.Instance, next *element.Element, ctx context.Context) {
	prev := inst.CurrentElement
	inst.CurrentElement = next
	swapRef(prev, next, inst.DOMNode)

	prevProps := prev.Props
	nextProps := next.Props

	for name, value := range nextProps {
		old, existed := prevProps[name]
		if !existed || !propsEqual(old, value) {
			r.applyProp(inst, name, old, value)
		}
	}
	for name, old := range prevProps {
		if _, stillPresent := nextProps[name]; !stillPresent {
			r.applyProp(inst, name, old, nil)
		}
	}

	r.updateChildren(inst, element.ChildrenSlice(nextProps), ctx)
	r.observeUpdate("host")
}

// unmountHost clears every handler this instance registered, detaches its
// node, and recursively unmounts its children.
func (r *Reconciler) unmountHost(inst *instance.Instance) {
	attachRef(inst.CurrentElement, nil)
	if r.hub != nil {
		r.hub.ClearInstance(inst.Handle)
	}
	for _, key := range inst.ChildOrder {
		r.unmount(inst.RenderedChildren[key])
	}
	if inst.DOMNode != nil && inst.DOMNode.ParentNode() != nil {
		inst.DOMNode.ParentNode().RemoveChild(inst.DOMNode)
	}
	r.observeUnmount("host")
}

// applyProp sets or clears a single prop, dispatching on its kind: a
// reserved structural prop is skipped (children is handled by the
// multi-child diff, key/ref never reach props at all), an onXxx prop
// registers or clears a native listener through the event hub, style is
// diffed key by key, dangerouslySetInnerHTML bypasses the child
// reconciler entirely, boolean attrs follow present/absent semantics, a
// must-use-property key is written as a DOM property unless the tag is a
// custom element, and everything else is a plain attribute.
func (r *Reconciler) applyProp(inst *instance.Instance, name string, old, value any) {
	if domprops.IsReserved(name) {
		return
	}
	if name == "key" || name == "ref" {
		return
	}

	if eventName, ok := domprops.EventNameForProp(name); ok {
		if r.dev && value != nil {
			r.warnUnsupportedEvent("on"+eventName, inst.Tag)
		}
		if r.hub != nil && inst.ContainerInfo != nil {
			top := inst
			for top.HasParent {
				p := r.arena.Get(top.Parent)
				if p == nil || p.ContainerInfo == nil {
					break
				}
				top = p
			}
			r.hub.SetHandler(top.ContainerInfo.Node, inst.Handle, eventName, false, value)
		}
		return
	}

	if name == domprops.StyleProp {
		r.applyStyle(inst, old, value)
		return
	}

	if name == domprops.DangerousHTMLProp {
		r.applyDangerousHTML(inst, value)
		return
	}

	if value == nil {
		inst.DOMNode.RemoveAttribute(name)
		return
	}

	if domprops.IsBooleanAttr(name) {
		if truthy(value) {
			inst.DOMNode.SetAttribute(name, "")
		} else {
			inst.DOMNode.RemoveAttribute(name)
		}
		return
	}

	if !domprops.IsCustomElementTag(inst.Tag) && mustUseProperty(inst.Tag, name) {
		inst.DOMNode.SetProperty(name, value)
		return
	}

	inst.DOMNode.SetAttribute(name, fmt.Sprintf("%v", value))
}

// warnUnsupportedEvent logs (only when the reconciler was created with dev
// set, i.e. runtime.Config.Dev) when a prop name matches a
// registered event but the host tag isn't among that event's
// SupportedTags, the same class of mistake GetEventSignature/
// IsEventSupported exist to catch at compile time for generated code;
// mounting from a plain element.CreateElement call has no compile step to
// run that check in, so it runs once here instead.
func (r *Reconciler) warnUnsupportedEvent(propName, tag string) {
	sig := events.GetEventSignature(propName)
	if sig == nil {
		return
	}
	if !events.IsEventSupported(propName, tag) {
		devlog.Warn("%s is not a standard event on <%s>", propName, tag)
	}
}

// mustUseProperty names the handful of props that must be written as a
// DOM IDL property rather than an attribute: an attribute-level write to
// value/checked only sets the initial value and is invisible to a
// controlled input once the user has interacted with it.
func mustUseProperty(tag, name string) bool {
	if tag != "input" && tag != "textarea" && tag != "select" && tag != "option" {
		return false
	}
	switch name {
	case "value", "checked":
		return true
	default:
		return false
	}
}

// applyStyle diffs a style prop key by key, normalising every raw value via
// the dangerous-style-value rule (domprops.NormalizeStyleValue) before
// comparing or writing it, so a numeric or boolean style value behaves the
// same as it would coming from a real stylesheet property.
func (r *Reconciler) applyStyle(inst *instance.Instance, old, value any) {
	style := inst.DOMNode.Style()
	if style == nil {
		return
	}
	raw, _ := value.(map[string]any)
	nextStyle := make(map[string]string, len(raw))
	for k, v := range raw {
		nextStyle[k] = domprops.NormalizeStyleValue(k, v)
	}

	prevStyle := inst.PrevStyleCopy
	for k, v := range nextStyle {
		if prevStyle[k] == v {
			continue
		}
		if v == "" {
			style.RemoveProperty(k)
		} else {
			style.SetProperty(k, v)
		}
	}
	for k := range prevStyle {
		if _, ok := nextStyle[k]; !ok {
			style.RemoveProperty(k)
		}
	}
	inst.PrevStyleCopy = nextStyle
}

func (r *Reconciler) applyDangerousHTML(inst *instance.Instance, value any) {
	m, ok := value.(map[string]any)
	if !ok {
		return
	}
	html, _ := m[domprops.DangerousHTMLKey].(string)
	inst.DOMNode.SetProperty("innerHTML", html)
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// propsEqual compares two prop values for the purpose of deciding whether
// a reapply is necessary. Maps (style) and slices (children, handled
// separately) are never reference-equal across renders, so they always
// compare unequal here and get re-diffed by their own specialised path.
func propsEqual(a, b any) bool {
	switch a.(type) {
	case map[string]string, map[string]any, []any:
		return false
	default:
		return a == b
	}
}
