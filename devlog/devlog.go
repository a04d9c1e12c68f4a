// Package devlog implements the runtime's developer-facing logging: a
// thin wrapper around the standard library's log package whose verbosity
// is chosen by a flag the caller passes rather than by a build tag, since
// the build-tag split (lifecycle_dev.go/lifecycle_prod.go) already covers
// the one behavior that genuinely can't change at runtime — whether a
// lifecycle panic is re-raised.
//
// Grounded on the fmt.Printf("ERROR: ...") calls in
// nojs/runtime/renderer_prod.go, generalized into a shared logger so
// every ambient warning goes through one place instead of being
// inlined at each call site.
package devlog

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "corereact: ", log.LstdFlags)

// Warn always logs, regardless of verbosity: a recovered lifecycle panic,
// a dropped event, or any other condition a host application should see
// even in a quiet production build.
func Warn(format string, args ...any) {
	std.Printf(format, args...)
}

// Debugf logs only when verbose is true, so tracing can be switched on
// without a rebuild. No package in this module calls it, and
// runtime.Config.Dev is not passed to it.
func Debugf(verbose bool, format string, args ...any) {
	if verbose {
		std.Printf(format, args...)
	}
}
