//go:build dev

package reconciler

import (
	"fmt"

	"github.com/forgelogic/corereact/instance"
)

// invoke runs fn (a single lifecycle method call) under the development
// build's panic policy: report to onPanic for visibility, then re-raise
// so the panic reaches the caller (a test, or a top-level recover in the
// host application) with its original stack intact. It always returns
// true because a failing call never returns at all.
func (r *Reconciler) invoke(stage string, inst *instance.Instance, fn func()) bool {
	defer func() {
		if rec := recover(); rec != nil {
			if r.onPanic != nil {
				r.onPanic(stage, inst.PublicInstance, fmt.Errorf("%v", rec))
			}
			panic(rec)
		}
	}()
	fn()
	return true
}
