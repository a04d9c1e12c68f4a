// Package instance implements the internal instance: the mutable shadow
// node owning reconciliation state for one descriptor. Instances are
// addressed by a stable integer Handle minted from a monotonic counter,
// so parent/child back-references can be non-owning without relying on Go
// pointer identity for persistence across a restart of the arena (tests
// routinely build a fresh Arena per case).
package instance

import (
	"sync/atomic"

	"github.com/forgelogic/corereact/element"
	"github.com/forgelogic/corereact/hostdom"
)

// Handle is the stable identity of an internal instance, minted once at
// instantiation and never reused within one Arena's lifetime.
type Handle uint64

// Kind discriminates the internal-instance variants.
type Kind int

const (
	Composite Kind = iota
	Host
	Text
	Empty // the platform-registered placeholder for a null/false descriptor
)

// Instance is the discriminated union of all tree-node kinds. Only the
// fields relevant to Kind are populated; this collapses three separate Go
// types (Component/host/text) into one record keyed by handle, which is
// what makes the arena and its handle-based back references possible
// without an interface-typed tree of heterogeneous node structs.
type Instance struct {
	Handle Handle
	Kind   Kind

	// Shared across variants.
	CurrentElement *element.Element
	Parent         Handle // nearest enclosing HOST ancestor; 0 = root
	HasParent      bool
	MountOrder     uint64
	MountIndex     int // position among current siblings, for move detection

	// Composite-only.
	PublicInstance    any
	RenderedChild     Handle
	HasRenderedChild  bool
	PendingStateQueue []StatePatch
	PendingReplace    bool
	PendingForceUpd   bool
	PendingCallbacks  []func()
	Context           map[string]any
	TopLevelWrapper   bool

	// Host-only.
	Tag             string
	NamespaceURI    string
	RenderedChildren map[string]Handle
	ChildOrder       []string // insertion order of RenderedChildren keys
	DOMNode          hostdom.Node
	DOMID            int
	RootNodeID       string
	ContainerInfo    *ContainerInfo
	WrapperState     any
	CachedChildNodes bool
	PrevStyleCopy    map[string]string

	// Text-only.
	CurrentText   string
	OpeningMarker hostdom.Node
	ClosingMarker hostdom.Node
}

// StatePatch is either a plain object (map[string]any) or an updater
// function (prevState, props, context) -> object, folded by the
// state-merge semantics.
type StatePatch struct {
	Object  map[string]any
	Updater func(prevState map[string]any, props element.Props, context map[string]any) map[string]any
}

// ContainerInfo is the host-backend container record.
type ContainerInfo struct {
	TopLevelWrapper Handle
	idCounter       uint64
	Document        hostdom.Document
	Node            hostdom.Node
	Tag             string
	NamespaceURI    string
}

// NextID issues the next per-container id used in reactid-style diff
// markers, monotone and starting at 1.
func (c *ContainerInfo) NextID() uint64 {
	return atomic.AddUint64(&c.idCounter, 1)
}

// Arena owns every live Instance for one runtime and mints monotonically
// increasing Handles and mount orders. A parent owns all descendants; the
// child-to-parent Handle is a non-owning reference cleared on unmount, so
// the reconciler never has an owning Go-level cycle.
type Arena struct {
	nextHandle uint64
	mountSeq   uint64
	instances  map[Handle]*Instance
}

// NewArena creates an empty Arena. Handle 0 is reserved to mean "no
// parent" (the topmost root), so the first real instance gets Handle 1.
func NewArena() *Arena {
	return &Arena{instances: map[Handle]*Instance{}}
}

// New allocates a fresh Instance of the given kind and registers it.
func (a *Arena) New(kind Kind) *Instance {
	a.nextHandle++
	h := Handle(a.nextHandle)
	inst := &Instance{Handle: h, Kind: kind}
	a.instances[h] = inst
	return inst
}

// Get resolves a Handle back to its Instance, or nil if it has been freed.
func (a *Arena) Get(h Handle) *Instance {
	if h == 0 {
		return nil
	}
	return a.instances[h]
}

// NextMountOrder mints the next globally-monotone mount order: if A was
// mounted before B then A.MountOrder < B.MountOrder.
func (a *Arena) NextMountOrder() uint64 {
	a.mountSeq++
	return a.mountSeq
}

// Free removes an instance from the arena once it has finished unmounting.
func (a *Arena) Free(h Handle) {
	delete(a.instances, h)
}

// NearestHostAncestor returns h's Parent, the nearest enclosing Host
// instance (or the zero Handle, meaning the tree root). Composite instances never
// appear as a Parent value — Parent always already points at the nearest
// enclosing host.
func (a *Arena) NearestHostAncestor(h Handle) Handle {
	inst := a.Get(h)
	if inst == nil {
		return 0
	}
	return inst.Parent
}
