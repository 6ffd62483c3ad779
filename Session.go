package bst

import (
	"log/slog"

	"github.com/QinLinag/omniponent_bst/kv"
	"github.com/QinLinag/omniponent_bst/sortTree"
)

// 一个会话绑定一棵树，把用户操作转成树操作并记录日志
type Session struct {
	tree   *sortTree.Tree
	logger *slog.Logger
}

func NewSession(tree *sortTree.Tree, logger *slog.Logger) *Session {
	if tree == nil {
		tree = sortTree.NewSortTree()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		tree:   tree,
		logger: logger.With("component", "bst"),
	}
}

func (s *Session) Tree() *sortTree.Tree {
	return s.tree
}

/*
增删查功能接口
*/
func (s *Session) Insert(key int) kv.InsertResult {
	result := s.tree.Insert(key)
	recordOperation("insert", result.String())
	if result == kv.Rejected {
		s.logger.Info("key already exists", "key", key)
	} else {
		s.logger.Info("key inserted", "key", key, "count", s.tree.GetCount())
	}
	return result
}

// 存在就删除，返回是否删除成功
func (s *Session) Remove(key int) bool {
	if !s.tree.Contains(key) {
		recordOperation("remove", "absent")
		s.logger.Info("key not found", "key", key)
		return false
	}
	s.tree.Remove(key)
	recordOperation("remove", "removed")
	s.logger.Info("key removed", "key", key, "count", s.tree.GetCount())
	return true
}

func (s *Session) Search(key int) kv.SearchReport {
	found, path := s.tree.Find(key, true)
	if found {
		recordOperation("search", "found")
		s.logger.Info("key found", "key", key, "path", path)
	} else {
		recordOperation("search", "absent")
		s.logger.Info("key not found", "key", key, "path", path)
	}
	return kv.SearchReport{
		Key:   key,
		Found: found,
		Path:  path,
	}
}

func (s *Session) Traverse(order kv.Order) ([]int, error) {
	keys, err := s.tree.Traverse(order)
	if err != nil {
		recordOperation("traverse", "error")
		s.logger.Warn("traversal failed", "order", order, "err", err)
		return nil, err
	}
	recordOperation("traverse", string(order))
	s.logger.Debug("traversal", "order", order, "keys", keys)
	return keys, nil
}

func (s *Session) Height() int {
	return s.tree.Height()
}

func (s *Session) Clear() {
	s.tree.Clear()
	recordOperation("clear", "ok")
	s.logger.Info("tree cleared")
}

// 当前树的快照：节点数、树高、有序key和父子连接
func (s *Session) Snapshot() kv.Snapshot {
	snapshot := kv.Snapshot{
		Count:  s.tree.GetCount(),
		Height: s.tree.Height(),
		Keys:   s.tree.InOrder(),
		Edges:  s.tree.Edges(),
	}
	if root, ok := s.tree.Root(); ok {
		snapshot.Root = &root
	}
	return snapshot
}
