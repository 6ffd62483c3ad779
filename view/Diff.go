package view

import (
	"slices"

	"github.com/QinLinag/omniponent_bst/kv"
)

// 两次渲染之间新增和消失的节点、连接，节点按当前key标识
type Changes struct {
	EnteredNodes []int     `json:"enteredNodes"`
	ExitedNodes  []int     `json:"exitedNodes"`
	EnteredEdges []kv.Edge `json:"enteredEdges"`
	ExitedEdges  []kv.Edge `json:"exitedEdges"`
}

func (c Changes) IsEmpty() bool {
	return len(c.EnteredNodes) == 0 && len(c.ExitedNodes) == 0 &&
		len(c.EnteredEdges) == 0 && len(c.ExitedEdges) == 0
}

func Diff(before, after kv.Snapshot) Changes {
	changes := Changes{
		EnteredNodes: difference(after.Keys, before.Keys),
		ExitedNodes:  difference(before.Keys, after.Keys),
		EnteredEdges: difference(after.Edges, before.Edges),
		ExitedEdges:  difference(before.Edges, after.Edges),
	}
	slices.Sort(changes.EnteredNodes)
	slices.Sort(changes.ExitedNodes)
	return changes
}

// 返回a中有而b中没有的元素，保持a的顺序
func difference[T comparable](a, b []T) []T {
	seen := make(map[T]struct{}, len(b))
	for _, v := range b {
		seen[v] = struct{}{}
	}
	out := make([]T, 0)
	for _, v := range a {
		if _, ok := seen[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}
