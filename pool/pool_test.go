package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct {
	value     int
	destroyed bool
}

func (w *widget) Destructor() {
	w.value = 0
	w.destroyed = true
}

func TestGet_AllocatesWhenPoolIsEmpty(t *testing.T) {
	allocated := 0
	p := New(2, func() *widget {
		allocated++
		return &widget{}
	})

	w := p.Get(func(w *widget) { w.value = 7 })
	assert.Equal(t, 1, allocated)
	assert.Equal(t, 7, w.value)
}

func TestRelease_RecyclesUpToCapacity(t *testing.T) {
	allocated := 0
	p := New(1, func() *widget {
		allocated++
		return &widget{}
	})

	a := p.Get(nil)
	p.Release(a)
	assert.True(t, a.destroyed)
	assert.Equal(t, 1, p.Len())

	b := p.Get(func(w *widget) { w.value = 3 })
	assert.Same(t, a, b)
	assert.Equal(t, 1, allocated, "second Get should reuse the released instance rather than allocate")
	assert.Equal(t, 3, b.value)
}

func TestRelease_DropsInstancesBeyondCapacity(t *testing.T) {
	p := New(1, func() *widget { return &widget{} })

	a := p.Get(nil)
	b := p.Get(nil)

	p.Release(a)
	p.Release(b)

	assert.Equal(t, 1, p.Len(), "pool never grows its free list past its configured capacity")
}

func TestNew_NonPositiveCapacityFallsBackToDefault(t *testing.T) {
	p := New(0, func() *widget { return &widget{} })
	assert.Equal(t, DefaultCap, p.cap)
}
