package sortTree

// 树中的节点：持有一个key，独占左右子树
type treeNode struct {
	key   int
	left  *treeNode
	right *treeNode
}

func newTreeNode(key int) *treeNode {
	return &treeNode{
		key:   key,
		left:  nil,
		right: nil,
	}
}
