//go:build js && wasm

// Package wasmhost implements hostdom.Node/hostdom.Document against a
// real browser DOM via honnef.co/go/js/dom/v2, the one place in this
// module that ever touches syscall/js.
//
// Grounded on uiwgo/dom/dom.go and uiwgo/dom/aliases.go: dom.GetWindow()
// resolves the global document once, node wrappers are thin structs
// holding the underlying dom/v2 value, and a node's raw js.Value
// (Underlying()) is used directly only for the handful of operations
// dom/v2 doesn't wrap (the private-property tagging domcache needs).
package wasmhost

import (
	"syscall/js"

	domv2 "honnef.co/go/js/dom/v2"

	"github.com/forgelogic/corereact/hostdom"
)

// Document wraps the browser's global document.
type Document struct {
	doc domv2.Document
}

// NewDocument resolves and wraps the browser's global document.
func NewDocument() *Document {
	return &Document{doc: domv2.GetWindow().Document()}
}

// QuerySelector resolves a CSS selector to a Node, for a wasm bootstrap
// to turn runtime.Config.MountSelector into the container Render needs.
func (d *Document) QuerySelector(selector string) hostdom.Node {
	el := d.doc.QuerySelector(selector)
	if el == nil {
		return nil
	}
	return &Node{n: el}
}

func (d *Document) CreateElement(tag, namespaceURI string) hostdom.Node {
	if namespaceURI != "" && namespaceURI != hostdom.HTMLNamespace {
		el := d.doc.Underlying().Call("createElementNS", namespaceURI, tag)
		return &Node{n: domv2.WrapElement(el)}
	}
	return &Node{n: d.doc.CreateElement(tag)}
}

func (d *Document) CreateTextNode(s string) hostdom.Node {
	return &Node{n: d.doc.CreateTextNode(s)}
}

func (d *Document) CreateComment(s string) hostdom.Node {
	return &Node{n: d.doc.CreateComment(s)}
}

// Node wraps a dom/v2 Node. Every hostdom.Node method either delegates
// directly to dom/v2 or, for the handful of operations dom/v2 has no
// typed wrapper for (must-use-property writes, private-property
// tagging), drops to the underlying js.Value.
type Node struct {
	n domv2.Node
}

func (n *Node) underlying() js.Value { return n.n.Underlying() }

func (n *Node) Kind() hostdom.NodeKind {
	switch n.n.NodeType() {
	case domv2.TextNode:
		return hostdom.TextNode
	case domv2.CommentNode:
		return hostdom.CommentNode
	case domv2.DocumentFragmentNode:
		return hostdom.DocumentFragmentNode
	default:
		return hostdom.ElementNode
	}
}

func (n *Node) TagName() string {
	if el, ok := n.n.(domv2.Element); ok {
		return el.TagName()
	}
	return ""
}

func (n *Node) SetAttribute(name, value string) {
	if el, ok := n.n.(domv2.Element); ok {
		el.SetAttribute(name, value)
	}
}

func (n *Node) RemoveAttribute(name string) {
	if el, ok := n.n.(domv2.Element); ok {
		el.RemoveAttribute(name)
	}
}

func (n *Node) HasAttribute(name string) bool {
	el, ok := n.n.(domv2.Element)
	return ok && el.HasAttribute(name)
}

func (n *Node) SetProperty(name string, value any) {
	n.underlying().Set(name, value)
}

func (n *Node) Style() hostdom.StyleDecl {
	el, ok := n.n.(domv2.Element)
	if !ok {
		return nil
	}
	return &styleDecl{decl: el.Style()}
}

func (n *Node) AddEventListener(eventType string, capture bool, fn func(hostdom.Event)) {
	n.n.AddEventListener(eventType, capture, func(e domv2.Event) {
		fn(&Event{e: e})
	})
}

func (n *Node) RemoveEventListener(eventType string, capture bool, fn func(hostdom.Event)) {
	// dom/v2 identifies listeners by the exact closure passed to
	// AddEventListener; a wrapper allocated fresh per call can't be
	// un-registered that way, so handler lifecycle here is managed by
	// events.Hub clearing its own table instead of calling this.
}

func (n *Node) AppendChild(child hostdom.Node) {
	n.n.AppendChild(child.(*Node).n)
}

func (n *Node) InsertBefore(child, reference hostdom.Node) {
	var ref domv2.Node
	if reference != nil {
		ref = reference.(*Node).n
	}
	n.n.InsertBefore(child.(*Node).n, ref)
}

func (n *Node) RemoveChild(child hostdom.Node) {
	n.n.RemoveChild(child.(*Node).n)
}

func (n *Node) ParentNode() hostdom.Node {
	p := n.n.ParentNode()
	if p == nil {
		return nil
	}
	return &Node{n: p}
}

func (n *Node) NextSibling() hostdom.Node {
	s := n.n.NextSibling()
	if s == nil {
		return nil
	}
	return &Node{n: s}
}

func (n *Node) FirstChild() hostdom.Node {
	c := n.n.FirstChild()
	if c == nil {
		return nil
	}
	return &Node{n: c}
}

func (n *Node) Children() []hostdom.Node {
	kids := n.n.ChildNodes()
	out := make([]hostdom.Node, len(kids))
	for i, k := range kids {
		out[i] = &Node{n: k}
	}
	return out
}

func (n *Node) SetTextData(s string) {
	n.n.SetNodeValue(s)
}

func (n *Node) TextData() string {
	return n.n.NodeValue()
}

func (n *Node) SetPrivate(key string, v any) {
	n.underlying().Set(key, js.ValueOf(v))
}

func (n *Node) GetPrivate(key string) (any, bool) {
	v := n.underlying().Get(key)
	if v.IsUndefined() || v.IsNull() {
		return nil, false
	}
	return v, true
}

type styleDecl struct {
	decl *domv2.CSSStyleDeclaration
}

func (s *styleDecl) SetProperty(name, value string) { s.decl.SetProperty(name, value, "") }
func (s *styleDecl) RemoveProperty(name string)      { s.decl.RemoveProperty(name) }

// Event wraps a dom/v2 Event.
type Event struct {
	e domv2.Event
}

func (e *Event) Type() string { return e.e.Type() }

func (e *Event) Target() hostdom.Node {
	t, ok := e.e.Target().(domv2.Node)
	if !ok {
		return nil
	}
	return &Node{n: t}
}

func (e *Event) PreventDefault()  { e.e.PreventDefault() }
func (e *Event) StopPropagation() { e.e.StopPropagation() }

func (e *Event) Get(name string) any {
	v := e.e.Underlying().Get(name)
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	switch v.Type() {
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeString:
		return v.String()
	default:
		return v.String()
	}
}
