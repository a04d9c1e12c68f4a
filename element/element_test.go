package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateElement_ExtractsKeyRefOwnerFromConfig(t *testing.T) {
	var capturedRef any
	ref := Ref(func(inst any) { capturedRef = inst })

	el := CreateElement("div", Config{"key": 42, "ref": ref, "owner": "parent", "id": "x"})

	assert.Equal(t, "42", el.Key)
	assert.Equal(t, "parent", el.Owner)
	require.NotNil(t, el.Ref)
	el.Ref("hi")
	assert.Equal(t, "hi", capturedRef)
	assert.Equal(t, "x", el.Props["id"])
	_, hasKeyProp := el.Props["key"]
	assert.False(t, hasKeyProp)
}

func TestCreateElement_ChildrenCollapseSingleVsMultiple(t *testing.T) {
	one := CreateElement("span", nil, "only")
	assert.Equal(t, "only", one.Props["children"])

	many := CreateElement("div", nil, "a", "b")
	assert.Equal(t, []any{"a", "b"}, many.Props["children"])

	none := CreateElement("br", nil)
	_, ok := none.Props["children"]
	assert.False(t, ok)
}

func TestIsValidElement(t *testing.T) {
	el := CreateElement("div", nil)
	assert.True(t, IsValidElement(el))
	assert.False(t, IsValidElement(&Element{Type: "div"}))
	assert.False(t, IsValidElement("div"))
	assert.False(t, IsValidElement(nil))
}

func TestCloneElement_MergesConfigWithoutMutatingSource(t *testing.T) {
	source := CreateElement("div", Config{"id": "a", "key": "k1"}, "child")
	clone := CloneElement(source, Config{"id": "b"})

	assert.Equal(t, "a", source.Props["id"])
	assert.Equal(t, "b", clone.Props["id"])
	assert.Equal(t, "k1", clone.Key)
	assert.Equal(t, "child", clone.Props["children"])
}

func TestCloneElement_ExplicitChildrenReplaceSources(t *testing.T) {
	source := CreateElement("ul", nil, "a", "b")
	clone := CloneElement(source, nil, "c")
	assert.Equal(t, "c", clone.Props["children"])
}

func TestChildrenSlice_NormalisesSingleAndMultiple(t *testing.T) {
	assert.Nil(t, ChildrenSlice(nil))
	assert.Equal(t, []any{"x"}, ChildrenSlice(Props{"children": "x"}))
	assert.Equal(t, []any{"x", "y"}, ChildrenSlice(Props{"children": []any{"x", "y"}}))
}
