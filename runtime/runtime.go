// Package runtime is the public mount surface: Render,
// UnmountComponentAtNode and RenderSubtreeIntoContainer, backed by one
// Runtime record per mounted container that wires the instance arena,
// node cache, event hub, update queue and reconciler together.
//
// Grounded on RendererImpl: a single owning struct reachable only through
// package-level entry points, guarded by a mutex even though the
// reconciliation model is single-threaded by contract, so a host
// application that accidentally calls Render from two goroutines gets a
// detectable race instead of silent corruption.
package runtime

import (
	"sync"

	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/devlog"
	"github.com/forgelogic/corereact/domcache"
	"github.com/forgelogic/corereact/errorreport"
	"github.com/forgelogic/corereact/events"
	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/instance"
	"github.com/forgelogic/corereact/metrics"
	"github.com/forgelogic/corereact/reconciler"
	"github.com/forgelogic/corereact/updatequeue"
)

// Hooks carries the optional observability callbacks a host application
// wires onto a Runtime before mounting.
type Hooks struct {
	// OnPanic observes a recovered (or, in a dev build, about-to-be
	// re-raised) lifecycle panic. A nil OnPanic falls back to
	// devlog.Warn.
	OnPanic func(stage string, publicInstance any, err error)
	// Metrics receives mount/update/unmount counts. A nil Metrics
	// defaults to metrics.Noop.
	Metrics reconciler.MetricsHook
}

// Config is the single place a caller configures the public mount
// surface.
type Config struct {
	// MountSelector documents the CSS selector a wasm bootstrap resolves
	// to a container node before calling Render; resolving it is the
	// wasm-specific bootstrap's job (it needs document.querySelector),
	// not this package's, so Render itself always takes an
	// already-resolved hostdom.Node.
	MountSelector string
	Hooks         Hooks
	// Dev turns on the reconciler's dev-only check (the unsupported-event
	// warning logged through devlog.Warn) independently of the
	// lifecycle_dev.go/lifecycle_prod.go build-tag split, so both code
	// paths are exercisable from a single test binary. It is not passed
	// to devlog.Debugf.
	Dev bool
}

// Runtime owns every live instance mounted under one container.
type Runtime struct {
	mu sync.Mutex

	arena *instance.Arena
	cache *domcache.Cache
	hub   *events.Hub
	queue *updatequeue.Queue
	recon *reconciler.Reconciler

	cfg       Config
	container *instance.ContainerInfo
}

// New builds a fully wired Runtime from cfg. The three-way Reconciler /
// Queue / Hub dependency is resolved in the same staged order
// reconciler.New documents: reconciler first (no queue, no hub), then the
// queue (needs the reconciler as its Driver), then the hub (needs the
// queue's batching strategy), then the two AttachX calls that close the
// loop.
func New(cfg Config) *Runtime {
	arena := instance.NewArena()
	cache := domcache.New()

	metricsHook := cfg.Hooks.Metrics
	if metricsHook == nil {
		metricsHook = metrics.Noop{}
	}
	onPanic := buildPanicHook(cfg)

	recon := reconciler.New(arena, cache, onPanic, metricsHook, cfg.Dev)
	queue := updatequeue.New(recon)
	recon.AttachQueue(queue)
	if fo, ok := metricsHook.(updatequeue.FlushObserver); ok {
		queue.SetFlushObserver(fo)
	}

	hub := events.New(arena, cache, queue.Strategy())
	recon.AttachHub(hub)
	if do, ok := metricsHook.(events.DispatchObserver); ok {
		hub.SetDispatchObserver(do)
	}

	return &Runtime{arena: arena, cache: cache, hub: hub, queue: queue, recon: recon, cfg: cfg}
}

func buildPanicHook(cfg Config) reconciler.PanicHook {
	return func(stage string, publicInstance any, err error) {
		if cfg.Hooks.OnPanic != nil {
			cfg.Hooks.OnPanic(stage, publicInstance, err)
			return
		}
		devlog.Warn("lifecycle panic in %s (%T): %v", stage, publicInstance, err)
	}
}

// Mount renders descriptor into container under the given context, inside
// one batched update so setState calls made while mounting are flushed
// together once the mount returns. Calling Mount again on the same Runtime
// unmounts the previously mounted tree and mounts the new one; it never
// updates the old tree in place.
func (rt *Runtime) Mount(descriptor any, document hostdom.Document, container hostdom.Node, ctx context.Context) hostdom.Node {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.container != nil {
		rt.unmountLocked()
	}
	rt.container = &instance.ContainerInfo{Document: document, Node: container}
	var node hostdom.Node
	rt.queue.Strategy().BatchedUpdates(func() {
		node = rt.recon.RootContainer(descriptor, rt.container, ctx)
	})
	return node
}

// Unmount tears down everything this Runtime has mounted.
func (rt *Runtime) Unmount() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.unmountLocked()
}

func (rt *Runtime) unmountLocked() bool {
	if rt.container == nil {
		return false
	}
	h := rt.container.TopLevelWrapper
	rt.container = nil
	if h == 0 {
		return false
	}
	rt.recon.Unmount(h)
	return true
}

// ConfigureSentry wires a production error reporter onto cfg, used the
// way runtime.Hooks.OnPanic's default forwards to sentry-go when a DSN
// has been configured: with no DSN, OnPanic falls back to devlog.Warn
// instead of failing to construct a Runtime at all.
func ConfigureSentry(cfg *Config, dsn, environment, release string) error {
	if dsn == "" {
		return nil
	}
	reporter, err := errorreport.NewReporter(dsn, environment, release)
	if err != nil {
		return err
	}
	cfg.Hooks.OnPanic = reporter.ReportPanic
	return nil
}
