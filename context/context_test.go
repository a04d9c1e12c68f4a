package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_DropsUndeclaredKeys(t *testing.T) {
	ctx := Context{"theme": "dark", "locale": "en", "secret": "x"}
	out := Filter(ctx, Types{"theme": true, "locale": true})
	assert.Equal(t, Context{"theme": "dark", "locale": "en"}, out)
}

func TestFilter_NoDeclaredTypesReturnsEmpty(t *testing.T) {
	ctx := Context{"theme": "dark"}
	out := Filter(ctx, nil)
	assert.Equal(t, Context{}, out)
}

func TestMerge_ChildContextOnlyAppliesDeclaredKeys(t *testing.T) {
	parent := Context{"theme": "dark"}
	child := map[string]any{"locale": "en", "undeclared": "dropped"}
	out := Merge(parent, child, Types{"locale": true})

	assert.Equal(t, Context{"theme": "dark", "locale": "en"}, out)
}

func TestMerge_NilDeclaredAllowsEverything(t *testing.T) {
	parent := Context{"theme": "dark"}
	child := map[string]any{"locale": "en"}
	out := Merge(parent, child, nil)

	assert.Equal(t, Context{"theme": "dark", "locale": "en"}, out)
}

func TestMerge_DoesNotMutateParent(t *testing.T) {
	parent := Context{"theme": "dark"}
	Merge(parent, map[string]any{"locale": "en"}, nil)
	assert.Equal(t, Context{"theme": "dark"}, parent)
}
