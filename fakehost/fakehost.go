// Package fakehost is an in-memory hostdom.Document/Node implementation,
// modeled on uiwgo's mockdom package: it lets every package above the host
// adapter boundary be exercised by ordinary `go test`, without a browser
// or the js/wasm toolchain.
package fakehost

import (
	"fmt"
	"strings"
	"sync"

	"github.com/forgelogic/corereact/hostdom"
)

// Document is the in-memory root used by tests and by the native (non-wasm)
// build of the runtime.
type Document struct{}

// NewDocument returns a fresh fakehost.Document.
func NewDocument() *Document { return &Document{} }

func (d *Document) CreateElement(tag, namespaceURI string) hostdom.Node {
	return &Node{kind: hostdom.ElementNode, tag: tag, namespace: namespaceURI, attrs: map[string]string{}, props: map[string]any{}, style: newStyle(), privates: map[string]any{}}
}

func (d *Document) CreateTextNode(s string) hostdom.Node {
	return &Node{kind: hostdom.TextNode, text: s, privates: map[string]any{}}
}

func (d *Document) CreateComment(s string) hostdom.Node {
	return &Node{kind: hostdom.CommentNode, text: s, privates: map[string]any{}}
}

type listenerEntry struct {
	capture bool
	fn      func(hostdom.Event)
}

// Node is a single in-memory DOM node.
type Node struct {
	mu sync.Mutex

	kind      hostdom.NodeKind
	tag       string
	namespace string
	text      string

	attrs map[string]string
	props map[string]any
	style *Style

	parent   *Node
	children []*Node

	listeners map[string][]listenerEntry
	privates  map[string]any
}

func (n *Node) Kind() hostdom.NodeKind { return n.kind }
func (n *Node) TagName() string        { return n.tag }

func (n *Node) SetAttribute(name, value string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.attrs[name] = value
}

func (n *Node) RemoveAttribute(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.attrs, name)
}

func (n *Node) HasAttribute(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.attrs[name]
	return ok
}

// Attribute returns an attribute value for test assertions.
func (n *Node) Attribute(name string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) SetProperty(name string, value any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.props[name] = value
}

// Property returns a DOM-IDL property for test assertions.
func (n *Node) Property(name string) (any, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, ok := n.props[name]
	return v, ok
}

func (n *Node) Style() hostdom.StyleDecl { return n.style }

func (n *Node) AddEventListener(eventType string, capture bool, fn func(hostdom.Event)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = map[string][]listenerEntry{}
	}
	n.listeners[eventType] = append(n.listeners[eventType], listenerEntry{capture: capture, fn: fn})
}

func (n *Node) RemoveEventListener(eventType string, capture bool, fn func(hostdom.Event)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	entries := n.listeners[eventType]
	for i, e := range entries {
		if e.capture == capture {
			n.listeners[eventType] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Dispatch invokes every listener registered for eventType on this node
// (used by the native-build top-level listener shim and by tests).
func (n *Node) Dispatch(eventType string, capture bool, ev hostdom.Event) {
	n.mu.Lock()
	entries := append([]listenerEntry(nil), n.listeners[eventType]...)
	n.mu.Unlock()
	for _, e := range entries {
		if e.capture == capture {
			e.fn(ev)
		}
	}
}

func (n *Node) AppendChild(child hostdom.Node) {
	c := child.(*Node)
	n.mu.Lock()
	defer n.mu.Unlock()
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) InsertBefore(child, reference hostdom.Node) {
	c := child.(*Node)
	n.mu.Lock()
	defer n.mu.Unlock()
	c.parent = n
	if reference == nil {
		n.children = append(n.children, c)
		return
	}
	r := reference.(*Node)
	idx := -1
	for i, ch := range n.children {
		if ch == r {
			idx = i
			break
		}
	}
	if idx < 0 {
		n.children = append(n.children, c)
		return
	}
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = c
}

func (n *Node) RemoveChild(child hostdom.Node) {
	c := child.(*Node)
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *Node) ParentNode() hostdom.Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) NextSibling() hostdom.Node {
	n.mu.Lock()
	p := n.parent
	n.mu.Unlock()
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, ch := range p.children {
		if ch == n {
			if i+1 < len(p.children) {
				return p.children[i+1]
			}
			return nil
		}
	}
	return nil
}

func (n *Node) FirstChild() hostdom.Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) Children() []hostdom.Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]hostdom.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *Node) SetTextData(s string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.text = s
}

func (n *Node) TextData() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.text
}

func (n *Node) SetPrivate(key string, v any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.privates[key] = v
}

func (n *Node) GetPrivate(key string) (any, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, ok := n.privates[key]
	return v, ok
}

// OuterHTML renders the subtree as an HTML string, for assertions against
// concrete scenarios such as "hello world div".
func (n *Node) OuterHTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *Node) writeHTML(b *strings.Builder) {
	switch n.kind {
	case hostdom.TextNode:
		b.WriteString(n.text)
		return
	case hostdom.CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.text)
		b.WriteString("-->")
		return
	}
	b.WriteString("<")
	b.WriteString(n.tag)
	n.mu.Lock()
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	attrs := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		attrs[k] = v
	}
	children := append([]*Node(nil), n.children...)
	n.mu.Unlock()
	sortStrings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%q", k, attrs[k])
	}
	b.WriteString(">")
	for _, c := range children {
		c.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteString(">")
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Style is the in-memory hostdom.StyleDecl implementation.
type Style struct {
	mu    sync.Mutex
	props map[string]string
}

func newStyle() *Style { return &Style{props: map[string]string{}} }

func (s *Style) SetProperty(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props[name] = value
}

func (s *Style) RemoveProperty(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.props, name)
}

// Get returns a style property for test assertions.
func (s *Style) Get(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.props[name]
	return v, ok
}

// FakeEvent is an in-memory hostdom.Event used by tests and the listener
// shim's native dispatch path.
type FakeEvent struct {
	EventType       string
	TargetNode      hostdom.Node
	Fields          map[string]any
	defaultPrevented  bool
	propagationStopped bool
}

func (e *FakeEvent) Type() string          { return e.EventType }
func (e *FakeEvent) Target() hostdom.Node  { return e.TargetNode }
func (e *FakeEvent) PreventDefault()       { e.defaultPrevented = true }
func (e *FakeEvent) StopPropagation()      { e.propagationStopped = true }
func (e *FakeEvent) Get(name string) any   { return e.Fields[name] }
func (e *FakeEvent) DefaultPrevented() bool  { return e.defaultPrevented }
func (e *FakeEvent) PropagationStopped() bool { return e.propagationStopped }
