package kv

type InsertResult int

const (
	Inserted InsertResult = iota

	Rejected
)

func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// 插入被拒绝时返回原因，成功返回nil
func (r InsertResult) Err() error {
	if r == Rejected {
		return ErrDuplicateKey
	}
	return nil
}

// 查找结果，Path 从根开始记录每个访问过的key
type SearchReport struct {
	Key   int   `json:"key"`
	Found bool  `json:"found"`
	Path  []int `json:"path"`
}

type Order string

const (
	PreOrder   Order = "pre"
	InOrder    Order = "in"
	PostOrder  Order = "post"
	LevelOrder Order = "level"
)

var Orders = []Order{PreOrder, InOrder, PostOrder, LevelOrder}

func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case PreOrder, InOrder, PostOrder, LevelOrder:
		return Order(s), nil
	case "bfs":
		return LevelOrder, nil
	}
	return "", ErrUnknownOrder
}
