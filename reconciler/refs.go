package reconciler

import "github.com/forgelogic/corereact/element"

// attachRef invokes el's ref callback, if any, with value. value is the
// mounted public instance for a composite or the DOM node for a host;
// nil detaches a previously attached ref.
func attachRef(el *element.Element, value any) {
	if el != nil && el.Ref != nil {
		el.Ref(value)
	}
}

// swapRef detaches prev's ref and attaches next's ref between renders. Go
// func values cannot be compared, so any two non-nil callbacks count as
// different: whenever either element carries a ref, the old one is called
// with nil and the new one with value, even if it is the same callback.
// Only two nil refs are left alone.
func swapRef(prev, next *element.Element, value any) {
	var prevRef, nextRef element.Ref
	if prev != nil {
		prevRef = prev.Ref
	}
	if next != nil {
		nextRef = next.Ref
	}
	if sameRef(prevRef, nextRef) {
		return
	}
	if prevRef != nil {
		prevRef(nil)
	}
	if nextRef != nil {
		nextRef(value)
	}
}

func sameRef(a, b element.Ref) bool {
	if a == nil && b == nil {
		return true
	}
	return false
}
