package kv

import (
	"encoding/json"
	"fmt"
)

type Side int

const (
	Left Side = iota

	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "left":
		*s = Left
	case "right":
		*s = Right
	default:
		return fmt.Errorf("unknown side %q", name)
	}
	return nil
}

// 父子连接的快照，使用当前key标识节点而不是节点本身
type Edge struct {
	Parent int  `json:"parent"`
	Child  int  `json:"child"`
	Side   Side `json:"side"`
}

// 树在某一时刻的只读视图
type Snapshot struct {
	Count  int    `json:"count"`
	Height int    `json:"height"`
	Root   *int   `json:"root,omitempty"`
	Keys   []int  `json:"keys"`
	Edges  []Edge `json:"edges"`
}

//将对象序列化为json
func Convert[T any](value T) ([]byte, error) {
	return json.Marshal(value)
}

//json反序列化
func Get[T any](data []byte) (T, error) {
	var value T
	err := json.Unmarshal(data, &value)
	return value, err
}
