// Package domcache backs the node<->instance cache: a private, randomly
// suffixed property name tags every host/text/empty node with the Handle
// of the instance that owns it, so an event dispatched at an arbitrary
// native node can find its way back into the instance tree. It is a
// standalone package (rather than living in reconciler or events)
// specifically so both the reconciler, which tags nodes at mount time,
// and the event hub, which reads the tags at dispatch time, can share one
// Cache without importing each other.
package domcache

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/instance"
)

// Cache is the shared node<->instance tag. One Cache is created per
// runtime so its private-property key never collides with another
// runtime instance mounted on the same page.
type Cache struct {
	key string
}

// New creates a Cache with a fresh random key.
func New() *Cache {
	return &Cache{key: fmt.Sprintf("__reactInternalInstance$%s", uuid.NewString())}
}

// Tag records that n is owned by h.
func (c *Cache) Tag(n hostdom.Node, h instance.Handle) {
	if n != nil {
		n.SetPrivate(c.key, h)
	}
}

// Lookup walks from n up through ParentNode links until it finds a tagged
// node. Most nodes are tagged directly at mount time so this resolves in
// one step on the common path; the walk only matters for nodes introduced
// outside the reconciler's control, e.g. children of a
// dangerouslySetInnerHTML blob, which resolve to the nearest enclosing
// host instance instead.
func (c *Cache) Lookup(n hostdom.Node) (instance.Handle, bool) {
	for cur := n; cur != nil; cur = cur.ParentNode() {
		if v, ok := cur.GetPrivate(c.key); ok {
			if h, ok := v.(instance.Handle); ok {
				return h, true
			}
		}
	}
	return 0, false
}
