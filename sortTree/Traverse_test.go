package sortTree

import (
	"math/rand"
	"testing"

	"github.com/QinLinag/omniponent_bst/kv"

	"github.com/stretchr/testify/require"
)

func TestTraversals(t *testing.T) {
	tree := newSampleTree(t)

	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.InOrder())
	require.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, tree.PreOrder())
	require.Equal(t, []int{1, 4, 3, 7, 9, 8, 5}, tree.PostOrder())
	require.Equal(t, []int{5, 3, 8, 1, 4, 7, 9}, tree.LevelOrder())

	//每次调用都重新计算，反映当前状态
	tree.Remove(5)
	require.Equal(t, []int{1, 3, 4, 7, 8, 9}, tree.InOrder())
	require.Equal(t, []int{7, 3, 8, 1, 4, 9}, tree.LevelOrder())
}

func TestTraversalsOnEmptyTree(t *testing.T) {
	tree := NewSortTree()
	for _, order := range kv.Orders {
		keys, err := tree.Traverse(order)
		require.Nil(t, err)
		require.NotNil(t, keys)
		require.Empty(t, keys)
	}
	require.Empty(t, tree.Edges())
}

func TestTraverseDispatch(t *testing.T) {
	tree := newSampleTree(t)

	keys, err := tree.Traverse(kv.PostOrder)
	require.Nil(t, err)
	require.Equal(t, tree.PostOrder(), keys)

	keys, err = tree.Traverse(kv.Order("zigzag"))
	require.ErrorIs(t, err, kv.ErrUnknownOrder)
	require.Nil(t, keys)
}

func TestLevelOrderDepthNonDecreasing(t *testing.T) {
	tree := NewSortTree()
	for _, key := range rand.New(rand.NewSource(3)).Perm(300) {
		tree.Insert(key)
	}

	depth := 0
	for _, key := range tree.LevelOrder() {
		found, path := tree.Find(key, true)
		require.True(t, found)
		require.GreaterOrEqual(t, len(path), depth)
		depth = len(path)
	}
	require.Equal(t, tree.Height(), depth)
}

func TestEdges(t *testing.T) {
	tree := newSampleTree(t)
	require.Equal(t, []kv.Edge{
		{Parent: 5, Child: 3, Side: kv.Left},
		{Parent: 5, Child: 8, Side: kv.Right},
		{Parent: 3, Child: 1, Side: kv.Left},
		{Parent: 3, Child: 4, Side: kv.Right},
		{Parent: 8, Child: 7, Side: kv.Left},
		{Parent: 8, Child: 9, Side: kv.Right},
	}, tree.Edges())

	tree.Insert(6)
	require.Len(t, tree.Edges(), tree.GetCount()-1)
}

func TestDegenerateTraversals(t *testing.T) {
	tree := NewSortTree()
	for i := 5000; i > 0; i-- {
		tree.Insert(i)
	}
	keys := tree.InOrder()
	require.Len(t, keys, 5000)
	require.Equal(t, 1, keys[0])
	require.Equal(t, 5000, tree.PreOrder()[0])
	require.Equal(t, 5000, tree.PostOrder()[4999])
	require.Equal(t, 5000, tree.Height())
}
