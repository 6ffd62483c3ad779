package view

import (
	"strconv"

	"github.com/QinLinag/omniponent_bst/kv"
	"github.com/QinLinag/omniponent_bst/sortTree"

	"github.com/xlab/treeprint"
)

const (
	EmptyTree   = "(empty)"
	MissingNode = "·"
	PathMarker  = "*"
)

type children struct {
	left  *int
	right *int
}

// 把快照渲染成缩进文本树，highlight中的key（通常是查找路径）加上PathMarker
func Render(snapshot kv.Snapshot, highlight []int) string {
	if snapshot.Root == nil {
		return EmptyTree + "\n"
	}

	links := make(map[int]*children, len(snapshot.Edges))
	for _, edge := range snapshot.Edges {
		c, ok := links[edge.Parent]
		if !ok {
			c = &children{}
			links[edge.Parent] = c
		}
		child := edge.Child
		if edge.Side == kv.Left {
			c.left = &child
		} else {
			c.right = &child
		}
	}
	marked := make(map[int]bool, len(highlight))
	for _, key := range highlight {
		marked[key] = true
	}

	root := *snapshot.Root
	tree := treeprint.NewWithRoot(label(root, marked))
	addChildren(tree, root, links, marked)
	return tree.String()
}

func RenderTree(tree *sortTree.Tree, highlight []int) string {
	snapshot := kv.Snapshot{
		Edges: tree.Edges(),
	}
	if root, ok := tree.Root(); ok {
		snapshot.Root = &root
	}
	return Render(snapshot, highlight)
}

func addChildren(branch treeprint.Tree, key int, links map[int]*children, marked map[int]bool) {
	c, ok := links[key]
	if !ok {
		return
	}
	//只有一个孩子时，用占位符表示另一侧
	for _, child := range []*int{c.left, c.right} {
		if child == nil {
			branch.AddNode(MissingNode)
			continue
		}
		if _, hasChildren := links[*child]; hasChildren {
			sub := branch.AddBranch(label(*child, marked))
			addChildren(sub, *child, links, marked)
		} else {
			branch.AddNode(label(*child, marked))
		}
	}
}

func label(key int, marked map[int]bool) string {
	s := strconv.Itoa(key)
	if marked[key] {
		s += PathMarker
	}
	return s
}
