package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchedUpdates_FlushesOnceOuterCallCloses(t *testing.T) {
	flushCount := 0
	s := New(func() { flushCount++ })

	var insideBatching bool
	s.BatchedUpdates(func() {
		insideBatching = s.IsBatchingUpdates()
	})

	assert.True(t, insideBatching)
	assert.False(t, s.IsBatchingUpdates())
	assert.Equal(t, 1, flushCount)
}

func TestBatchedUpdates_ReentrantCallDoesNotFlushEarly(t *testing.T) {
	flushCount := 0
	s := New(func() { flushCount++ })

	s.BatchedUpdates(func() {
		s.BatchedUpdates(func() {
			assert.Equal(t, 0, flushCount)
		})
		assert.Equal(t, 0, flushCount, "nested call must not have triggered flush yet")
	})

	assert.Equal(t, 1, flushCount)
}

func TestBatchedUpdates_NilFlushIsSafe(t *testing.T) {
	s := New(nil)
	called := false
	s.BatchedUpdates(func() { called = true })
	assert.True(t, called)
}
