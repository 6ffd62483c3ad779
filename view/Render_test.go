package view

import (
	"strings"
	"testing"

	"github.com/QinLinag/omniponent_bst/sortTree"

	"github.com/stretchr/testify/require"
)

func sampleTree() *sortTree.Tree {
	tree := sortTree.NewSortTree()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(key)
	}
	return tree
}

func TestRenderEmpty(t *testing.T) {
	require.Equal(t, EmptyTree+"\n", RenderTree(sortTree.NewSortTree(), nil))
}

func TestRenderTree(t *testing.T) {
	out := RenderTree(sampleTree(), nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "5", lines[0])
	require.Contains(t, lines[1], "3")
	require.Contains(t, lines[2], "1")
	require.Contains(t, lines[3], "4")
	require.Contains(t, lines[4], "8")
	require.Contains(t, lines[6], "9")
	require.NotContains(t, out, PathMarker)
}

func TestRenderHighlightsPath(t *testing.T) {
	tree := sampleTree()
	_, path := tree.Find(4, true)
	out := RenderTree(tree, path)
	require.Contains(t, out, "5*")
	require.Contains(t, out, "3*")
	require.Contains(t, out, "4*")
	require.NotContains(t, out, "8*")
}

func TestRenderMissingSibling(t *testing.T) {
	tree := sortTree.NewSortTree()
	for _, key := range []int{5, 8, 9} {
		tree.Insert(key)
	}
	out := RenderTree(tree, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	//5 -> (·, 8), 8 -> (·, 9)
	require.Len(t, lines, 5)
	require.Equal(t, 2, strings.Count(out, MissingNode))
}
