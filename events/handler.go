package events

// Handler is the canonical signature a component prop such as onClick is
// expected to hold. callHandler also accepts a bare func() for handlers
// that don't care about the event object, matching how the adapters in
// events/adapters.go let a caller ignore unneeded event args.
type Handler func(*SyntheticEvent)

func callHandler(fn any, ev *SyntheticEvent) {
	switch h := fn.(type) {
	case Handler:
		h(ev)
	case func(*SyntheticEvent):
		h(ev)
	case func():
		h()
	}
}
