// Package errorreport implements production error reporting: a thin
// wrapper over sentry-go that turns a recovered lifecycle panic into a
// captured exception with the failing stage and component type attached
// as tags.
//
// Grounded on bubblyui/pkg/bubbly/observability/sentry_reporter.go:
// sentry.Init from a DSN (an empty DSN disables sending, useful for
// tests), a reporter struct wrapping the resulting hub rather than
// calling the package-level sentry functions directly, and a Flush
// method a host application calls before exiting to drain pending events.
package errorreport

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter sends recovered lifecycle panics to Sentry.
type Reporter struct {
	hub *sentry.Hub
}

// NewReporter initializes the Sentry SDK with dsn and returns a Reporter
// bound to the resulting hub. An empty dsn disables sending without
// erroring, so tests can construct a Reporter without a real project.
func NewReporter(dsn, environment, release string) (*Reporter, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
	})
	if err != nil {
		return nil, fmt.Errorf("errorreport: sentry init: %w", err)
	}
	return &Reporter{hub: sentry.CurrentHub()}, nil
}

// ReportPanic captures a recovered lifecycle panic as a Sentry exception,
// tagged with the lifecycle stage it occurred in and the concrete type of
// the public component instance.
func (r *Reporter) ReportPanic(stage string, publicInstance any, err error) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("lifecycle_stage", stage)
		scope.SetTag("component_type", fmt.Sprintf("%T", publicInstance))
		r.hub.CaptureException(err)
	})
}

// Flush blocks up to timeout waiting for buffered events to send,
// intended to be called before the host process exits.
func (r *Reporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}
