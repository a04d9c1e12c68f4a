// Package element implements the element descriptor factory: the immutable
// record describing what should exist in the tree, grounded on
// vdom.NewVNode/Text/Div/Button but generalised to arbitrary host tags and
// composite types.
package element

import "fmt"

// typeTagSentinel is the unexported marker stored on every descriptor
// produced by CreateElement, so IsValidElement can tell a real descriptor
// apart from an arbitrary struct that merely looks like one.
type typeTagSentinel bool

var sentinel = typeTagSentinel(true)

// Type is either a host tag name (string) or a composite callable
// (component.ConstructorFunc / component.ThunkFunc); it is stored as `any` and type-switched on by
// the instance factory.
type Type any

// Props is the merged attribute/prop/children bag of a descriptor.
type Props map[string]any

// Ref is a user-supplied callback or handle receiving the mounted public
// instance or host node.
type Ref func(instance any)

// Element is the immutable descriptor of a tree node. Equality is by
// reference; once constructed an Element must never be mutated in place —
// every "update" replaces the props/children with a brand-new Props map
// before constructing the new Element.
type Element struct {
	typeTag typeTagSentinel
	Type    Type
	Key     any
	Ref     Ref
	Props   Props
	Owner   any
}

// IsValidElement reports whether v is an Element with the correct
// construction sentinel.
func IsValidElement(v any) bool {
	e, ok := v.(*Element)
	return ok && e != nil && e.typeTag == sentinel
}

// Config carries key/ref/owner plus arbitrary props, the same split
// NewVNode applies when it special-cases "onClick" before folding the
// rest into Attributes.
type Config map[string]any

const (
	keyProp   = "key"
	refProp   = "ref"
	ownerProp = "owner"
)

// CreateElement builds a descriptor from a type, an optional config map,
// and zero or more children: key/ref/owner are extracted from config,
// remaining entries become props, and children are folded into
// props["children"] as a single value (len==1) or an ordered slice.
func CreateElement(typ Type, config Config, children ...any) *Element {
	e := &Element{typeTag: sentinel, Type: typ, Props: Props{}}

	if config != nil {
		for k, v := range config {
			switch k {
			case keyProp:
				if v != nil {
					e.Key = fmt.Sprintf("%v", v)
				}
			case refProp:
				if ref, ok := v.(Ref); ok {
					e.Ref = ref
				}
			case ownerProp:
				e.Owner = v
			default:
				e.Props[k] = v
			}
		}
	}

	switch len(children) {
	case 0:
		// no children prop is set
	case 1:
		e.Props["children"] = children[0]
	default:
		flat := make([]any, len(children))
		copy(flat, children)
		e.Props["children"] = flat
	}

	return e
}

// CloneElement produces a new descriptor that reuses typ/key/ref from
// source but merges newConfig over its props and optionally replaces
// children, without mutating source — descriptor identity-mutation is
// forbidden.
func CloneElement(source *Element, newConfig Config, children ...any) *Element {
	merged := Config{}
	for k, v := range source.Props {
		merged[k] = v
	}
	if source.Key != nil {
		merged[keyProp] = source.Key
	}
	if source.Ref != nil {
		merged[refProp] = source.Ref
	}
	for k, v := range newConfig {
		merged[k] = v
	}
	if len(children) > 0 {
		return CreateElement(source.Type, merged, children...)
	}
	if existing, ok := source.Props["children"]; ok {
		if slice, ok := existing.([]any); ok {
			return CreateElement(source.Type, merged, slice...)
		}
		return CreateElement(source.Type, merged, existing)
	}
	return CreateElement(source.Type, merged)
}

// ChildrenSlice normalises props["children"] into an ordered slice,
// regardless of whether it was stored as a single value or a slice.
func ChildrenSlice(props Props) []any {
	if props == nil {
		return nil
	}
	c, ok := props["children"]
	if !ok || c == nil {
		return nil
	}
	if slice, ok := c.([]any); ok {
		return slice
	}
	return []any{c}
}
