// Package hostdom defines the host-backend contract the reconciler mounts
// against. The reconciler, update queue, transaction framework and event
// system never import syscall/js directly; they only ever see a Node or
// a Document through this package, so they can be exercised by ordinary
// `go test` against fakehost, and only the wasmhost implementation needs
// the js/wasm toolchain.
package hostdom

// NodeKind discriminates the concrete shape of a Node, mirroring the DOM's
// own node-type distinction closely enough for the reconciler's purposes.
type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
	CommentNode
	DocumentFragmentNode
)

// Event is the minimal native-event surface the listener shim and event
// plugins need: enough to resolve a target node and to let a synthetic
// event forward PreventDefault/StopPropagation to the real event.
type Event interface {
	Type() string
	Target() Node
	PreventDefault()
	StopPropagation()
	// Get exposes raw per-event-type fields (clientX, key, value, ...) by
	// name, the same shape an Adapt* function reads off a js.Value with
	// e.Get("..."). A fakehost.FakeEvent backs this with a plain map for tests.
	Get(name string) any
}

// StyleDecl is the subset of CSSStyleDeclaration the property differ needs.
type StyleDecl interface {
	SetProperty(name, value string)
	RemoveProperty(name string)
}

// Node is one DOM node, real or fake. Every reconciler/host-adapter
// operation is expressed purely in terms of this interface.
type Node interface {
	Kind() NodeKind
	TagName() string

	SetAttribute(name, value string)
	RemoveAttribute(name string)
	HasAttribute(name string) bool
	// SetProperty assigns a DOM IDL property directly (el.value = x,
	// el.checked = x, ...) rather than through setAttribute, for the
	// must-use-property keys the property registry names.
	SetProperty(name string, value any)
	Style() StyleDecl

	AddEventListener(eventType string, capture bool, fn func(Event))
	RemoveEventListener(eventType string, capture bool, fn func(Event))

	AppendChild(child Node)
	InsertBefore(child, reference Node)
	RemoveChild(child Node)
	ParentNode() Node
	NextSibling() Node
	FirstChild() Node
	Children() []Node

	SetTextData(s string)
	TextData() string

	// SetPrivate/GetPrivate back the node<->instance cache : a
	// private, randomly-suffixed property name is used as the key so
	// multiple runtime instances on one page never collide.
	SetPrivate(key string, v any)
	GetPrivate(key string) (any, bool)
}

// Document creates nodes in a given namespace. HTML/SVG/MathML namespace
// switching (driven by the parent tag) happens one layer up, in the host
// adapter; Document.CreateElement just needs to be told which one to use.
type Document interface {
	CreateElement(tag, namespaceURI string) Node
	CreateTextNode(s string) Node
	CreateComment(s string) Node
}

// Namespace URIs recognised by the host adapter's HTML/SVG/MathML switch.
const (
	HTMLNamespace  = "http://www.w3.org/1999/xhtml"
	SVGNamespace   = "http://www.w3.org/2000/svg"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
)
