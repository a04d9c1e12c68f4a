package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelogic/corereact/component"
	"github.com/forgelogic/corereact/context"
	"github.com/forgelogic/corereact/element"
	"github.com/forgelogic/corereact/fakehost"
	"github.com/forgelogic/corereact/hostdom"
)

type counter struct {
	component.Base
}

func newCounter(props element.Props, ctx context.Context, u component.Updater) component.Component {
	c := &counter{}
	c.SetUpdater(u)
	c.Init(component.State{"count": 0})
	return c
}

func (c *counter) Render() *element.Element {
	n := c.State()["count"].(int)
	return element.CreateElement("button", element.Config{"id": "btn"}, n)
}

func (c *counter) Increment() { c.SetStateFunc(func(prev component.State, props element.Props, ctx context.Context) component.State {
	return component.State{"count": prev["count"].(int) + 1}
}) }

func TestMount_RendersCompositeIntoContainer(t *testing.T) {
	rt := New(Config{})
	doc := fakehost.NewDocument()
	container := doc.CreateElement("div", hostdom.HTMLNamespace)

	node := rt.Mount(element.CreateElement(component.ConstructorFunc(newCounter), nil), doc, container, context.Context{})

	require.NotNil(t, node)
	fn := node.(*fakehost.Node)
	assert.Equal(t, "<button id=\"btn\">0</button>", fn.OuterHTML())
}

func TestSetState_FlushesSynchronouslyAndRerendersHost(t *testing.T) {
	rt := New(Config{})
	doc := fakehost.NewDocument()
	container := doc.CreateElement("div", hostdom.HTMLNamespace)

	var captured *counter
	ref := element.Ref(func(inst any) {
		if c, ok := inst.(*counter); ok {
			captured = c
		}
	})
	node := rt.Mount(element.CreateElement(component.ConstructorFunc(newCounter), element.Config{"ref": ref}), doc, container, context.Context{})
	_ = node

	require.NotNil(t, captured)
	captured.Increment()

	fn := node.(*fakehost.Node)
	assert.Equal(t, "<button id=\"btn\">1</button>", fn.OuterHTML())
}

func TestMount_CalledTwiceReplacesPreviousTree(t *testing.T) {
	rt := New(Config{})
	doc := fakehost.NewDocument()
	container := doc.CreateElement("div", hostdom.HTMLNamespace)

	rt.Mount(element.CreateElement("span", nil, "first"), doc, container, context.Context{})
	second := rt.Mount(element.CreateElement("span", nil, "second"), doc, container, context.Context{})

	fn := second.(*fakehost.Node)
	assert.Equal(t, "<span>second</span>", fn.OuterHTML())
}

func TestUnmount_ReportsWhetherSomethingWasMounted(t *testing.T) {
	rt := New(Config{})
	assert.False(t, rt.Unmount())

	doc := fakehost.NewDocument()
	container := doc.CreateElement("div", hostdom.HTMLNamespace)
	rt.Mount(element.CreateElement("span", nil), doc, container, context.Context{})
	assert.True(t, rt.Unmount())
	assert.False(t, rt.Unmount(), "second Unmount on an already-torn-down Runtime reports nothing to do")
}

func TestRender_ReusesRuntimeForSameContainer(t *testing.T) {
	doc := fakehost.NewDocument()
	container := doc.CreateElement("div", hostdom.HTMLNamespace)

	Render(element.CreateElement("span", nil, "v1"), doc, container, Config{})
	node := Render(element.CreateElement("span", nil, "v2"), doc, container, Config{})

	assert.Equal(t, "<span>v2</span>", node.(*fakehost.Node).OuterHTML())
	assert.True(t, UnmountComponentAtNode(container))
}

func TestBuildPanicHook_FallsBackToDevlogWhenNoHookConfigured(t *testing.T) {
	hook := buildPanicHook(Config{})
	assert.NotPanics(t, func() { hook("render", nil, assert.AnError) })
}

func TestConfigureSentry_EmptyDSNIsNoop(t *testing.T) {
	cfg := Config{}
	err := ConfigureSentry(&cfg, "", "test", "v0")
	require.NoError(t, err)
	assert.Nil(t, cfg.Hooks.OnPanic)
}
