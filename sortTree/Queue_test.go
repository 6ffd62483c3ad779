package sortTree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	queue := InitialQueue(10)
	require.Equal(t, 0, queue.Len())

	node, has := queue.Dequeue()
	require.Equal(t, false, has, "dequeue on empty queue should fail")
	require.Nil(t, node)

	for i := 0; i < 30; i++ {
		queue.Enqueue(newTreeNode(i))
	}
	require.Equal(t, 30, queue.Len())

	for i := 0; i < 20; i++ {
		node, has := queue.Dequeue()
		require.Equal(t, true, has)
		require.Equal(t, i, node.key, "queue should be first in first out")
	}
	require.Equal(t, 10, queue.Len())

	//出队与入队交替
	queue.Enqueue(newTreeNode(30))
	for i := 20; i <= 30; i++ {
		node, has := queue.Dequeue()
		require.Equal(t, true, has)
		require.Equal(t, i, node.key)
	}
	require.Equal(t, 0, queue.Len())
	require.Equal(t, 0, queue.head, "drained queue should reset its head")

	_, has = queue.Dequeue()
	require.Equal(t, false, has)

	require.Equal(t, DEFAULTQUEUESIZE, cap(InitialQueue(-1).queue))
}
