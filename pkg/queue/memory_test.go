package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue[string](8)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.NoError(t, q.Enqueue("c"))
	assert.Equal(t, 3, q.Size())

	assert.Equal(t, "a", q.Dequeue())
	assert.Equal(t, []string{"b", "c"}, q.ReadAll())
	assert.Equal(t, 0, q.Size())

	require.NoError(t, q.Enqueue("d"))
	q.Clear()
	assert.Equal(t, 0, q.Size())
	assert.Nil(t, q.ReadAll())
}

func TestInMemoryQueueFull(t *testing.T) {
	q := NewInMemoryQueue[int](2)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	// A full queue reports the overflow instead of blocking under the
	// lock, so it can still be drained afterwards.
	assert.ErrorIs(t, q.Enqueue(3), ErrQueueFull)
	assert.Equal(t, []int{1, 2}, q.ReadAll())

	require.NoError(t, q.Enqueue(4))
	assert.Equal(t, 4, q.Dequeue())
}
