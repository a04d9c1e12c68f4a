// Package corereact re-exports the small application-facing surface of
// the reconciliation runtime: building descriptors and mounting them into
// a container. Every other package (element, instance, reconciler,
// events, runtime, ...) is independently importable for testing or for a
// host application that needs finer control, but a typical caller only
// ever needs the names in this file.
//
// Grounded on the teacher exposing runtime.NewRenderer plus a handful of
// package-level vdom helpers as its whole app-facing surface, rather than
// asking callers to reach into its internal packages directly.
package corereact

import (
	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/element"
	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/runtime"
)

// Type, Props, Ref and Config mirror the element package's equivalents so
// a caller of this package never has to import element directly just to
// build a descriptor.
type (
	Type   = element.Type
	Props  = element.Props
	Ref    = element.Ref
	Config = element.Config
)

// Element is the immutable descriptor CreateElement produces.
type Element = element.Element

// Config/Hooks/Context mirror the runtime and context packages.
type (
	RuntimeConfig = runtime.Config
	RuntimeHooks  = runtime.Hooks
	Context       = context.Context
)

// CreateElement builds a descriptor from a type, an optional config map,
// and zero or more children.
func CreateElement(typ Type, config Config, children ...any) *Element {
	return element.CreateElement(typ, config, children...)
}

// CloneElement produces a new descriptor that reuses typ/key/ref from
// source but merges newConfig over its props.
func CloneElement(source *Element, newConfig Config, children ...any) *Element {
	return element.CloneElement(source, newConfig, children...)
}

// IsValidElement reports whether v is a descriptor CreateElement
// produced.
func IsValidElement(v any) bool {
	return element.IsValidElement(v)
}

// Render mounts descriptor into container under document, creating
// host elements as needed. Calling Render again on a container already
// mounted into unmounts the existing tree and mounts the new descriptor in
// its place, instead of mounting a sibling one; the existing tree is not
// updated in place.
func Render(descriptor any, document hostdom.Document, container hostdom.Node, cfg RuntimeConfig) hostdom.Node {
	return runtime.Render(descriptor, document, container, cfg)
}

// RenderSubtreeIntoContainer is Render with an explicit parent context,
// for mounting a subtree that needs to inherit context from an existing
// mounted tree rather than starting a fresh one.
func RenderSubtreeIntoContainer(parentCtx Context, descriptor any, document hostdom.Document, container hostdom.Node, cfg RuntimeConfig) hostdom.Node {
	return runtime.RenderSubtreeIntoContainer(parentCtx, descriptor, document, container, cfg)
}

// UnmountComponentAtNode tears down whatever is mounted at container,
// reporting whether anything was actually mounted there.
func UnmountComponentAtNode(container hostdom.Node) bool {
	return runtime.UnmountComponentAtNode(container)
}

// ConfigureSentry wires a production error reporter onto cfg; a no-op
// when dsn is empty.
func ConfigureSentry(cfg *RuntimeConfig, dsn, environment, release string) error {
	return runtime.ConfigureSentry(cfg, dsn, environment, release)
}
