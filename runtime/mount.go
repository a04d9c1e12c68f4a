package runtime

import (
	"sync"

	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/hostdom"
)

// registry tracks the one Runtime mounted per container node, the same
// container-keyed bookkeeping ReactDOM's top-level API uses so a second
// Render call against an already-mounted container goes to the same
// Runtime, which unmounts the previous tree before mounting the new one
// rather than mounting a sibling tree. The previous tree is never updated
// in place.
var (
	registryMu sync.Mutex
	registry   = map[hostdom.Node]*Runtime{}
)

// Render mounts descriptor into container (creating document's elements
// as needed) under the default background context, reusing the Runtime
// already mounted at container if Render was called on it before.
func Render(descriptor any, document hostdom.Document, container hostdom.Node, cfg Config) hostdom.Node {
	return RenderSubtreeIntoContainer(context.Context{}, descriptor, document, container, cfg)
}

// RenderSubtreeIntoContainer mounts descriptor into container under an
// explicit parent context, the equivalent of React's same-named function
// with the legacy parentComponent argument collapsed to the plain
// context.Context it exists to propagate — this reconciler has no
// internal registry mapping a public component instance back to its
// Handle, and propagating context is the only thing a portal's "parent"
// argument is used for here.
func RenderSubtreeIntoContainer(parentCtx context.Context, descriptor any, document hostdom.Document, container hostdom.Node, cfg Config) hostdom.Node {
	registryMu.Lock()
	rt, ok := registry[container]
	if !ok {
		rt = New(cfg)
		registry[container] = rt
	}
	registryMu.Unlock()

	return rt.Mount(descriptor, document, container, parentCtx)
}

// UnmountComponentAtNode tears down whatever is mounted at container,
// reporting whether anything was actually mounted there.
func UnmountComponentAtNode(container hostdom.Node) bool {
	registryMu.Lock()
	rt, ok := registry[container]
	delete(registry, container)
	registryMu.Unlock()

	if !ok {
		return false
	}
	return rt.Unmount()
}
