package reconciler

import (
	"fmt"
	"reflect"

	"github.com/forgelogic/corereact/element"
)

// typeIdentity returns a comparable key for a composite element.Type so
// two descriptors can be compared for "same component type" without
// relying on == over a func value, which Go forbids for anything but nil.
// Host tag names (plain strings) are returned as-is; ConstructorFunc and
// ThunkFunc values are keyed by their underlying code pointer, which is
// stable for a given package-level func value across calls.
func typeIdentity(t element.Type) string {
	if s, ok := t.(string); ok {
		return "host:" + s
	}
	v := reflect.ValueOf(t)
	if v.Kind() == reflect.Func {
		return fmt.Sprintf("func:%x", v.Pointer())
	}
	return fmt.Sprintf("type:%v", reflect.TypeOf(t))
}
