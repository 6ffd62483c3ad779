package sortTree

import "github.com/QinLinag/omniponent_bst/kv"

// 所有遍历都用非递归方式，每次调用都重新计算

func (tree *Tree) PreOrder() []int {
	keys := make([]int, 0, tree.count)
	if tree.root == nil {
		return keys
	}
	stack := InitialStack(tree.count / 2)
	stack.Push(tree.root)
	for {
		node, succ := stack.Pop()
		if !succ {
			break
		}
		keys = append(keys, node.key)
		//右孩子先入栈，左孩子先出栈
		if node.right != nil {
			stack.Push(node.right)
		}
		if node.left != nil {
			stack.Push(node.left)
		}
	}
	return keys
}

func (tree *Tree) InOrder() []int {
	keys := make([]int, 0, tree.count)
	stack := InitialStack(tree.count / 2)
	current := tree.root
	for {
		if current != nil {
			stack.Push(current)
			current = current.left
		} else {
			popNode, succ := stack.Pop()
			if !succ {
				break
			}
			keys = append(keys, popNode.key)
			current = popNode.right
		}
	}
	return keys
}

func (tree *Tree) PostOrder() []int {
	keys := make([]int, 0, tree.count)
	if tree.root == nil {
		return keys
	}
	//按 根-右-左 的顺序收集，再整体反转
	stack := InitialStack(tree.count / 2)
	stack.Push(tree.root)
	for {
		node, succ := stack.Pop()
		if !succ {
			break
		}
		keys = append(keys, node.key)
		if node.left != nil {
			stack.Push(node.left)
		}
		if node.right != nil {
			stack.Push(node.right)
		}
	}
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys
}

func (tree *Tree) LevelOrder() []int {
	keys := make([]int, 0, tree.count)
	tree.levelWalk(func(node *treeNode) {
		keys = append(keys, node.key)
	})
	return keys
}

// 按层序返回所有父子连接
func (tree *Tree) Edges() []kv.Edge {
	edges := make([]kv.Edge, 0, max(tree.count-1, 0))
	tree.levelWalk(func(node *treeNode) {
		if node.left != nil {
			edges = append(edges, kv.Edge{Parent: node.key, Child: node.left.key, Side: kv.Left})
		}
		if node.right != nil {
			edges = append(edges, kv.Edge{Parent: node.key, Child: node.right.key, Side: kv.Right})
		}
	})
	return edges
}

func (tree *Tree) Traverse(order kv.Order) ([]int, error) {
	switch order {
	case kv.PreOrder:
		return tree.PreOrder(), nil
	case kv.InOrder:
		return tree.InOrder(), nil
	case kv.PostOrder:
		return tree.PostOrder(), nil
	case kv.LevelOrder:
		return tree.LevelOrder(), nil
	}
	return nil, kv.ErrUnknownOrder
}

func (tree *Tree) levelWalk(visit func(node *treeNode)) {
	if tree.root == nil {
		return
	}
	queue := InitialQueue(tree.count / 2)
	queue.Enqueue(tree.root)
	for {
		node, succ := queue.Dequeue()
		if !succ {
			return
		}
		visit(node)
		if node.left != nil {
			queue.Enqueue(node.left)
		}
		if node.right != nil {
			queue.Enqueue(node.right)
		}
	}
}
