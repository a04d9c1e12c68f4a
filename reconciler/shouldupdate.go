package reconciler

import "github.com/forgelogic/corereact/element"

// descriptorKind classifies a raw child value the same way ShouldUpdate
// needs to, without yet allocating an instance.
type descriptorKind int

const (
	kindEmpty descriptorKind = iota
	kindText
	kindHost
	kindComposite
)

func classify(v any) (descriptorKind, *element.Element) {
	if v == nil {
		return kindEmpty, nil
	}
	if b, ok := v.(bool); ok {
		if !b {
			return kindEmpty, nil
		}
		// `true` alone renders nothing either, matching the JSX "&&"
		// idiom this spec's model is drawn from.
		return kindEmpty, nil
	}
	switch t := v.(type) {
	case string, int, int64, float64, float32:
		return kindText, nil
	case *element.Element:
		if t == nil {
			return kindEmpty, nil
		}
		if _, isString := t.Type.(string); isString {
			return kindHost, t
		}
		return kindComposite, t
	default:
		return kindEmpty, nil
	}
}

// ShouldUpdate is the should-update predicate: it decides whether an
// existing instance can be reused for a new descriptor value, or whether
// the subtree must be replaced outright.
func ShouldUpdate(prev, next any) bool {
	pk, pe := classify(prev)
	nk, ne := classify(next)

	if pk == kindEmpty && nk == kindEmpty {
		return true
	}
	if pk == kindText && nk == kindText {
		return true
	}
	if pk == kindHost && nk == kindHost {
		return pe.Type == ne.Type && keyEqual(pe.Key, ne.Key)
	}
	if pk == kindComposite && nk == kindComposite {
		return sameType(pe.Type, ne.Type) && keyEqual(pe.Key, ne.Key)
	}
	return false
}

func keyEqual(a, b any) bool { return a == b }

// sameType compares composite Type values. Function values in Go are not
// comparable with ==, so ConstructorFunc/ThunkFunc identity is resolved
// through typeIdentity instead of a direct comparison — see DESIGN.md.
func sameType(a, b element.Type) bool {
	return typeIdentity(a) == typeIdentity(b)
}
