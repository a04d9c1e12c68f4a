package events

import "github.com/forgelogic/corereact/hostdom"

// Plugin extracts the Data fields of a synthetic event from a native one.
// Most native events need nothing beyond the fields SimpleEventPlugin
// already copies; a plugin only needs to exist for event families whose
// handler-facing shape differs from the raw native fields (composition
// events, multi-touch gestures, and so on) — none of which this runtime's
// supported event set currently needs, so SimpleEventPlugin is the only
// registered plugin.
type Plugin interface {
	// Names lists the native DOM event names (lowercase, e.g. "click")
	// this plugin handles.
	Names() []string
	// Extract populates ev.Data from native. ev.Type and ev.Target/Native
	// are already set by the hub before Extract runs.
	Extract(ev *SyntheticEvent, native hostdom.Event)
}

// simpleFields lists the event-type-independent fields SimpleEventPlugin
// copies out of the native event, covering the handler-visible args the
// adapters in events/adapters.go expose per native event kind (click
// coordinates, key identity, input value, checked state).
var simpleFields = []string{
	"clientX", "clientY", "key", "code", "value", "checked",
	"deltaY", "button", "altKey", "ctrlKey", "shiftKey", "metaKey",
}

// SimpleEventPlugin is the default plugin; events.New registers it for
// DefaultEventNames only. An event name with no registered plugin gets no
// Data, and SyntheticEvent.Get then reads the native event directly.
type SimpleEventPlugin struct{ names []string }

// NewSimpleEventPlugin builds a plugin covering the given native event
// names with the default field set.
func NewSimpleEventPlugin(names ...string) *SimpleEventPlugin {
	return &SimpleEventPlugin{names: names}
}

func (p *SimpleEventPlugin) Names() []string { return p.names }

func (p *SimpleEventPlugin) Extract(ev *SyntheticEvent, native hostdom.Event) {
	data := make(map[string]any, len(simpleFields))
	for _, f := range simpleFields {
		if v := native.Get(f); v != nil {
			data[f] = v
		}
	}
	ev.Data = data
}

// DefaultEventNames is the baseline event set wired to SimpleEventPlugin
// when a Hub is constructed without an explicit plugin list.
var DefaultEventNames = []string{
	"click", "dblclick", "change", "input", "submit",
	"keydown", "keyup", "keypress",
	"mousedown", "mouseup", "mouseover", "mouseout", "mousemove",
	"focus", "blur", "wheel", "contextmenu",
}
