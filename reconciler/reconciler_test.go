package reconciler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelogic/corereact/component"
	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/domcache"
	"github.com/forgelogic/corereact/element"
	"github.com/forgelogic/corereact/fakehost"
	"github.com/forgelogic/corereact/hostdom"
	"github.com/forgelogic/corereact/instance"
)

func newTestReconciler() (*Reconciler, *instance.Arena, *instance.ContainerInfo) {
	arena := instance.NewArena()
	cache := domcache.New()
	r := New(arena, cache, nil, nil, false)
	doc := fakehost.NewDocument()
	root := doc.CreateElement("div", hostdom.HTMLNamespace)
	container := &instance.ContainerInfo{Document: doc, Node: root}
	return r, arena, container
}

func TestRootContainer_MountsHostTreeWithTextChild(t *testing.T) {
	r, _, container := newTestReconciler()

	el := element.CreateElement("span", element.Config{"id": "greeting"}, "hello world")
	node := r.RootContainer(el, container, context.Context{})

	require.NotNil(t, node)
	fn := node.(*fakehost.Node)
	assert.Equal(t, "span", fn.TagName())
	v, ok := fn.Attribute("id")
	require.True(t, ok)
	assert.Equal(t, "greeting", v)
	assert.Equal(t, "<span id=\"greeting\">hello world</span>", fn.OuterHTML())
}

func TestRootContainer_NullDescriptorMountsNothing(t *testing.T) {
	r, _, container := newTestReconciler()
	node := r.RootContainer(nil, container, context.Context{})
	assert.Nil(t, node)
}

func TestUpdateHost_BooleanAttrFollowsPresence(t *testing.T) {
	r, arena, container := newTestReconciler()

	el := element.CreateElement("input", element.Config{"disabled": true})
	h := r.instantiate(el, 0, context.Context{})
	r.mount(h, container, context.Context{})
	inst := arena.Get(h)

	fn := inst.DOMNode.(*fakehost.Node)
	_, ok := fn.Attribute("disabled")
	assert.True(t, ok)

	next := element.CreateElement("input", element.Config{"disabled": false})
	r.updateHost(inst, next, context.Context{})
	_, ok = fn.Attribute("disabled")
	assert.False(t, ok)
}

func TestUpdateHost_StyleDiffsKeyByKey(t *testing.T) {
	r, arena, container := newTestReconciler()

	el := element.CreateElement("div", element.Config{"style": map[string]any{"color": "red", "display": "block"}})
	h := r.instantiate(el, 0, context.Context{})
	r.mount(h, container, context.Context{})
	inst := arena.Get(h)

	next := element.CreateElement("div", element.Config{"style": map[string]any{"color": "blue"}})
	r.updateHost(inst, next, context.Context{})

	style := inst.DOMNode.Style().(*fakehost.Style)
	v, ok := style.Get("color")
	require.True(t, ok)
	assert.Equal(t, "blue", v)
	_, ok = style.Get("display")
	assert.False(t, ok)
}

func TestUpdateHost_StyleNormalizesNumericAndFalsyValues(t *testing.T) {
	r, arena, container := newTestReconciler()

	el := element.CreateElement("div", element.Config{"style": map[string]any{"display": "block"}})
	h := r.instantiate(el, 0, context.Context{})
	r.mount(h, container, context.Context{})
	inst := arena.Get(h)

	next := element.CreateElement("div", element.Config{"style": map[string]any{
		"width":    10,
		"opacity":  0.5,
		"zIndex":   2,
		"display":  false,
		"color":    "  red  ",
		"fontSize": 0,
	}})
	r.updateHost(inst, next, context.Context{})

	style := inst.DOMNode.Style().(*fakehost.Style)

	v, ok := style.Get("width")
	require.True(t, ok)
	assert.Equal(t, "10px", v, "numeric non-unitless property gets a px suffix")

	v, ok = style.Get("opacity")
	require.True(t, ok)
	assert.Equal(t, "0.5", v, "unitless property is stringified bare")

	v, ok = style.Get("zIndex")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = style.Get("display")
	assert.False(t, ok, "a false style value normalizes to empty, clearing the property")

	v, ok = style.Get("color")
	require.True(t, ok)
	assert.Equal(t, "red", v, "string values are trimmed")

	v, ok = style.Get("fontSize")
	require.True(t, ok)
	assert.Equal(t, "0", v, "zero never gets a px suffix")
}

func TestUpdateHost_MustUsePropertyWritesIDLProperty(t *testing.T) {
	r, arena, container := newTestReconciler()

	el := element.CreateElement("input", element.Config{"value": "a"})
	h := r.instantiate(el, 0, context.Context{})
	r.mount(h, container, context.Context{})
	inst := arena.Get(h)

	next := element.CreateElement("input", element.Config{"value": "b"})
	r.updateHost(inst, next, context.Context{})

	fn := inst.DOMNode.(*fakehost.Node)
	v, ok := fn.Property("value")
	require.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = fn.Attribute("value")
	assert.False(t, ok)
}

func TestUnmount_DetachesNodeFromParent(t *testing.T) {
	r, _, container := newTestReconciler()

	el := element.CreateElement("p", nil, "bye")
	h := r.instantiate(el, 0, context.Context{})
	node := r.mount(h, container, context.Context{})
	container.Node.AppendChild(node)

	r.unmount(h)
	assert.Nil(t, node.ParentNode())
}

func TestMountHost_AttachesAndDetachesRef(t *testing.T) {
	r, _, container := newTestReconciler()

	var captured hostdom.Node
	ref := element.Ref(func(v any) {
		if v == nil {
			captured = nil
			return
		}
		captured = v.(hostdom.Node)
	})

	el := element.CreateElement("input", element.Config{"ref": ref})
	h := r.instantiate(el, 0, context.Context{})
	node := r.mount(h, container, context.Context{})

	require.Equal(t, node, captured)

	r.unmount(h)
	assert.Nil(t, captured)
}

func TestUpdateHost_SwapsRefWhenCallbackChanges(t *testing.T) {
	r, arena, container := newTestReconciler()

	var firstDetached bool
	first := element.Ref(func(v any) {
		if v == nil {
			firstDetached = true
		}
	})
	el := element.CreateElement("input", element.Config{"ref": first})
	h := r.instantiate(el, 0, context.Context{})
	r.mount(h, container, context.Context{})
	inst := arena.Get(h)

	var secondAttached any
	second := element.Ref(func(v any) { secondAttached = v })
	next := element.CreateElement("input", element.Config{"ref": second})
	r.updateHost(inst, next, context.Context{})

	assert.True(t, firstDetached)
	assert.Equal(t, inst.DOMNode, secondAttached)
}

func TestMountComposite_AttachesPublicInstanceToRef(t *testing.T) {
	r, _, container := newTestReconciler()

	var captured *fakeUpdaterComponent
	ref := element.Ref(func(v any) {
		if v == nil {
			captured = nil
			return
		}
		captured = v.(*fakeUpdaterComponent)
	})

	ctor := component.ConstructorFunc(func(props element.Props, ctx context.Context, u component.Updater) component.Component {
		return &fakeUpdaterComponent{}
	})
	el := element.CreateElement(ctor, element.Config{"ref": ref})
	h := r.instantiate(el, 0, context.Context{})
	r.mount(h, container, context.Context{})

	require.NotNil(t, captured)

	r.unmount(h)
	assert.Nil(t, captured)
}

type fakeUpdaterComponent struct{ component.Base }

func (c *fakeUpdaterComponent) Render() *element.Element {
	return element.CreateElement("div", nil)
}

func TestInstantiate_ThunkFuncRendersOnEveryCall(t *testing.T) {
	r, arena, container := newTestReconciler()

	var thunk component.ThunkFunc = func(props element.Props) *element.Element {
		name, _ := props["name"].(string)
		return element.CreateElement("div", nil, "hi "+name)
	}

	el := element.CreateElement(thunk, element.Config{"name": "ada"})
	h := r.instantiate(el, 0, context.Context{})
	node := r.mount(h, container, context.Context{})

	inst := arena.Get(h)
	require.True(t, inst.HasRenderedChild)
	fn := node.(*fakehost.Node)
	assert.Equal(t, "<div>hi ada</div>", fn.OuterHTML())
}
