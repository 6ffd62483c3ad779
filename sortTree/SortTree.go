package sortTree

import (
	"github.com/QinLinag/omniponent_bst/kv"
)

// 二叉排序树，通过key排序，不做平衡。只允许单个写者，不加锁
type Tree struct {
	root  *treeNode
	count int
}

func NewSortTree() *Tree {
	tree := Tree{}
	tree.Init()
	return &tree
}

func (tree *Tree) Init() {
	tree.root = nil
	tree.count = 0
}

func (tree *Tree) GetCount() int {
	return tree.count
}

func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// 返回根节点的key
func (tree *Tree) Root() (int, bool) {
	if tree.root == nil {
		return 0, false
	}
	return tree.root.key, true
}

// 清空整棵树
func (tree *Tree) Clear() {
	tree.Init()
}

/*
插入：重复的key被拒绝，树保持不变
*/
func (tree *Tree) Insert(key int) kv.InsertResult {
	if tree.root == nil { //空树
		tree.root = newTreeNode(key)
		tree.count++
		return kv.Inserted
	}

	current := tree.root
	for {
		if key == current.key {
			return kv.Rejected
		} else if key < current.key {
			if current.left == nil {
				current.left = newTreeNode(key)
				tree.count++
				return kv.Inserted
			}
			current = current.left
		} else {
			if current.right == nil {
				current.right = newTreeNode(key)
				tree.count++
				return kv.Inserted
			}
			current = current.right
		}
	}
}

/*
查找：wantPath为true时，返回从根开始访问过的所有key
*/
func (tree *Tree) Find(key int, wantPath bool) (bool, []int) {
	var path []int
	if wantPath {
		path = make([]int, 0)
	}

	current := tree.root
	for current != nil {
		if wantPath {
			path = append(path, current.key)
		}
		if key == current.key {
			return true, path
		} else if key < current.key {
			current = current.left
		} else {
			current = current.right
		}
	}
	return false, path
}

func (tree *Tree) Contains(key int) bool {
	found, _ := tree.Find(key, false)
	return found
}

/*
删除：不存在的key直接忽略
*/
func (tree *Tree) Remove(key int) {
	var removed bool
	tree.root, removed = removeNode(tree.root, key)
	if removed {
		tree.count--
	}
}

// 返回替换node的子树，以及是否真的摘掉了一个节点
func removeNode(node *treeNode, key int) (*treeNode, bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	if key < node.key {
		node.left, removed = removeNode(node.left, key)
		return node, removed
	} else if key > node.key {
		node.right, removed = removeNode(node.right, key)
		return node, removed
	}

	if node.left == nil && node.right == nil {
		return nil, true
	}
	if node.left == nil {
		return node.right, true
	}
	if node.right == nil {
		return node.left, true
	}

	//两个孩子：用右子树中最小的key覆盖当前节点，再从右子树删掉它
	successor := minNode(node.right)
	node.key = successor.key
	node.right, removed = removeNode(node.right, successor.key)
	return node, removed
}

func minNode(node *treeNode) *treeNode {
	for node.left != nil {
		node = node.left
	}
	return node
}

func maxNode(node *treeNode) *treeNode {
	for node.right != nil {
		node = node.right
	}
	return node
}

func (tree *Tree) Min() (int, bool) {
	if tree.root == nil {
		return 0, false
	}
	return minNode(tree.root).key, true
}

func (tree *Tree) Max() (int, bool) {
	if tree.root == nil {
		return 0, false
	}
	return maxNode(tree.root).key, true
}

/*
树高：空树为0
*/
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(node *treeNode) int {
	if node == nil {
		return 0
	}
	return 1 + max(height(node.left), height(node.right))
}
