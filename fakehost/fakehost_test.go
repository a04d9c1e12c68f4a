package fakehost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelogic/corereact/hostdom"
)

func TestOuterHTML_SortsAttributesAndRendersChildren(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div", hostdom.HTMLNamespace).(*Node)
	div.SetAttribute("id", "root")
	div.SetAttribute("class", "box")
	div.AppendChild(doc.CreateTextNode("hi"))

	assert.Equal(t, `<div class="box" id="root">hi</div>`, div.OuterHTML())
}

func TestInsertBefore_PlacesChildAheadOfReference(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul", hostdom.HTMLNamespace).(*Node)
	a := doc.CreateElement("a", hostdom.HTMLNamespace)
	b := doc.CreateElement("b", hostdom.HTMLNamespace)
	parent.AppendChild(a)
	parent.InsertBefore(b, a)

	children := parent.Children()
	require.Len(t, children, 2)
	assert.Same(t, b, children[0])
	assert.Same(t, a, children[1])
}

func TestInsertBefore_NilReferenceAppends(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul", hostdom.HTMLNamespace).(*Node)
	a := doc.CreateElement("a", hostdom.HTMLNamespace)
	b := doc.CreateElement("b", hostdom.HTMLNamespace)
	parent.AppendChild(a)
	parent.InsertBefore(b, nil)

	children := parent.Children()
	require.Len(t, children, 2)
	assert.Same(t, a, children[0])
	assert.Same(t, b, children[1])
}

func TestRemoveChild_ClearsParentLink(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div", hostdom.HTMLNamespace).(*Node)
	child := doc.CreateElement("span", hostdom.HTMLNamespace)
	parent.AppendChild(child)

	parent.RemoveChild(child)

	assert.Empty(t, parent.Children())
	assert.Nil(t, child.ParentNode())
}

func TestNextSibling_ReturnsFollowingChildOrNil(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div", hostdom.HTMLNamespace).(*Node)
	a := doc.CreateElement("a", hostdom.HTMLNamespace)
	b := doc.CreateElement("b", hostdom.HTMLNamespace)
	parent.AppendChild(a)
	parent.AppendChild(b)

	assert.Same(t, b, a.(*Node).NextSibling())
	assert.Nil(t, b.(*Node).NextSibling())
}

func TestDispatch_OnlyInvokesListenersForMatchingPhase(t *testing.T) {
	doc := NewDocument()
	node := doc.CreateElement("button", hostdom.HTMLNamespace).(*Node)

	var bubbleCalls, captureCalls int
	node.AddEventListener("click", false, func(hostdom.Event) { bubbleCalls++ })
	node.AddEventListener("click", true, func(hostdom.Event) { captureCalls++ })

	node.Dispatch("click", false, &FakeEvent{EventType: "click"})

	assert.Equal(t, 1, bubbleCalls)
	assert.Equal(t, 0, captureCalls)
}

func TestRemoveEventListener_StopsFurtherDispatch(t *testing.T) {
	doc := NewDocument()
	node := doc.CreateElement("button", hostdom.HTMLNamespace).(*Node)

	calls := 0
	handler := func(hostdom.Event) { calls++ }
	node.AddEventListener("click", false, handler)
	node.RemoveEventListener("click", false, handler)

	node.Dispatch("click", false, &FakeEvent{EventType: "click"})
	assert.Equal(t, 0, calls)
}

func TestStyle_SetAndRemoveProperty(t *testing.T) {
	doc := NewDocument()
	node := doc.CreateElement("div", hostdom.HTMLNamespace)
	style := node.Style().(*Style)

	style.SetProperty("color", "red")
	v, ok := style.Get("color")
	require.True(t, ok)
	assert.Equal(t, "red", v)

	style.RemoveProperty("color")
	_, ok = style.Get("color")
	assert.False(t, ok)
}

func TestFakeEvent_TracksPreventDefaultAndStopPropagation(t *testing.T) {
	ev := &FakeEvent{EventType: "click", Fields: map[string]any{"key": "Enter"}}

	assert.False(t, ev.DefaultPrevented())
	ev.PreventDefault()
	assert.True(t, ev.DefaultPrevented())

	assert.False(t, ev.PropagationStopped())
	ev.StopPropagation()
	assert.True(t, ev.PropagationStopped())

	assert.Equal(t, "Enter", ev.Get("key"))
}
