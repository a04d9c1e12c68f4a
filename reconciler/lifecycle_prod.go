//go:build !dev

package reconciler

import (
	"fmt"

	"github.com/forgelogic/corereact/instance"
)

// invoke runs fn under the production build's panic policy: recover,
// report to onPanic, and return false so the caller can fail that one
// lifecycle step gracefully (render as empty, skip a did-mount callback)
// without tearing down the whole page. The instance itself is not
// automatically unmounted here; a component wanting crash isolation
// narrower than "stop at this step" should implement ErrorHandler.
func (r *Reconciler) invoke(stage string, inst *instance.Instance, fn func()) bool {
	ok := true
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				ok = false
				if r.onPanic != nil {
					r.onPanic(stage, inst.PublicInstance, fmt.Errorf("%v", rec))
				}
			}
		}()
		fn()
	}()
	return ok
}
