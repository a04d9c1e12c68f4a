// Package component defines the composite contract: the interfaces a
// user-defined component may implement, the updater façade it talks to,
// and the Base struct it embeds to get SetState/ForceUpdate for free.
//
// Grounded on the component.Component / runtime.ComponentBase pair (a
// one-method render contract plus an embeddable base providing
// StateHasChanged), expanded to the full React-style lifecycle:
// componentWillMount through componentWillUnmount, shouldComponentUpdate,
// and context typing — the same way runtime/componentlifecycle.go
// declares one small interface per optional hook (Initializer,
// ParameterReceiver, Cleaner, PropUpdater) rather than one fat interface
// every component must fully implement.
package component

import (
	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/element"
	"github.com/forgelogic/corereact/instance"
)

// State is a plain keyed record, the same shape as Context.
type State map[string]any

// Clone returns a shallow copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge shallow-merges patch into s in place, the object-patch half of
// the state-merge semantics.
func (s State) Merge(patch map[string]any) {
	for k, v := range patch {
		s[k] = v
	}
}

// Updater is the façade a mounted component talks to; it is backed by the
// update queue but components never see the queue directly, mirroring how
// ComponentBase only ever sees *Renderer, never the renderer's internals.
type Updater interface {
	EnqueueSetState(patch instance.StatePatch, cb func())
	EnqueueReplaceState(patch instance.StatePatch, cb func())
	EnqueueForceUpdate(cb func())
	IsMounted() bool
}

// Component is the minimal contract every composite type must satisfy:
// produce a child descriptor. Every other lifecycle hook below is
// optional and detected with a type assertion, exactly like the
// Initializer/ParameterReceiver/Cleaner interfaces.
type Component interface {
	Render() *element.Element
}

// Mounter is implemented by components needing one-time pre-mount setup
// whose pending state updates are folded in before the first render:
// componentWillMount.
type Mounter interface {
	ComponentWillMount()
}

// PropsReceiver reacts to a parent re-render before shouldComponentUpdate
// runs: componentWillReceiveProps.
type PropsReceiver interface {
	ComponentWillReceiveProps(nextProps element.Props, nextContext context.Context)
}

// UpdateDecider implements shouldComponentUpdate; components without it
// default to true (always re-render),
type UpdateDecider interface {
	ShouldComponentUpdate(nextProps element.Props, nextState State, nextContext context.Context) bool
}

// PreUpdater implements componentWillUpdate, called only when an update
// is not being skipped.
type PreUpdater interface {
	ComponentWillUpdate(nextProps element.Props, nextState State, nextContext context.Context)
}

// DidMounter implements componentDidMount, enqueued on the mount-ready
// queue once the subtree finishes mounting.
type DidMounter interface {
	ComponentDidMount()
}

// DidUpdater implements componentDidUpdate, enqueued on the mount-ready
// queue after a successful receive().
type DidUpdater interface {
	ComponentDidUpdate(prevProps element.Props, prevState State, prevContext context.Context)
}

// Unmounter implements componentWillUnmount.
type Unmounter interface {
	ComponentWillUnmount()
}

// ErrorHandler implements the single-retry recovery hook: unstable_handleError.
type ErrorHandler interface {
	UnstableHandleError(err error)
}

// ContextConsumer declares which context keys this component reads.
type ContextConsumer interface {
	ContextTypes() context.Types
}

// ContextProvider declares and supplies child context augmentation.
type ContextProvider interface {
	ChildContextTypes() context.Types
	GetChildContext() map[string]any
}

// Base is the struct most user components embed to get SetState,
// ForceUpdate, ReplaceState and IsMounted for free, mirroring
// ComponentBase.StateHasChanged but exposing the full updater contract on
// the component base class.
type Base struct {
	updater Updater
	state   State
}

// SetUpdater is called by the framework at mount time; user code must
// never call it directly, matching the SetRenderer convention.
func (b *Base) SetUpdater(u Updater) { b.updater = u }

// State returns the component's current state record.
func (b *Base) State() State { return b.state }

// Init sets the component's starting state; a ConstructorFunc calls it
// once, before returning the public instance, to establish state that
// shouldComponentUpdate and render will see on the first pass.
func (b *Base) Init(s State) {
	if s == nil {
		s = State{}
	}
	b.state = s
}

// SetState enqueues patch to be shallow-merged into state on the next
// flush; cb (if non-nil) runs after that flush completes.
func (b *Base) SetState(patch map[string]any, cb ...func()) {
	var done func()
	if len(cb) > 0 {
		done = cb[0]
	}
	b.updater.EnqueueSetState(instance.StatePatch{Object: patch}, done)
}

// SetStateFunc is the functional-updater form of SetState.
func (b *Base) SetStateFunc(fn func(prevState State, props element.Props, ctx context.Context) State, cb ...func()) {
	var done func()
	if len(cb) > 0 {
		done = cb[0]
	}
	b.updater.EnqueueSetState(instance.StatePatch{Updater: func(prev map[string]any, props element.Props, ctx map[string]any) map[string]any {
		return fn(State(prev), props, ctx)
	}}, done)
}

// ReplaceState is the deprecated sibling of SetState: the queued patch
// becomes the entirety of the next state rather than being merged.
func (b *Base) ReplaceState(patch map[string]any, cb ...func()) {
	var done func()
	if len(cb) > 0 {
		done = cb[0]
	}
	b.updater.EnqueueReplaceState(instance.StatePatch{Object: patch}, done)
}

// ForceUpdate skips shouldComponentUpdate on the next flush.
func (b *Base) ForceUpdate(cb ...func()) {
	var done func()
	if len(cb) > 0 {
		done = cb[0]
	}
	b.updater.EnqueueForceUpdate(done)
}

// IsMounted is deprecated but provided
func (b *Base) IsMounted() bool {
	return b.updater != nil && b.updater.IsMounted()
}

// ConstructorFunc is the "component marker": a composite type registered
// this way is treated as a stateful component, and its value is called
// once at mount time to build the public instance.
type ConstructorFunc func(props element.Props, ctx context.Context, updater Updater) Component

// ThunkFunc is a composite type with no component marker: a plain
// function invoked on every render with no instance of its own besides
// the auto-instance the reconciler wraps it in.
type ThunkFunc func(props element.Props) *element.Element

// autoThunk adapts a ThunkFunc into a Component so the composite
// reconciler never needs to special-case the stateless path beyond
// recognising the ThunkFunc marker at instantiate time.
type autoThunk struct {
	fn    ThunkFunc
	props element.Props
}

func (a *autoThunk) Render() *element.Element { return a.fn(a.props) }

// NewAutoThunk wraps fn/props as a Component, used by the reconciler when
// it instantiates a descriptor whose Type is a ThunkFunc.
func NewAutoThunk(fn ThunkFunc, props element.Props) Component {
	return &autoThunk{fn: fn, props: props}
}
