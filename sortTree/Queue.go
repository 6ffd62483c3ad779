package sortTree

const (
	DEFAULTQUEUESIZE = 64
)

// 先进先出队列，层序遍历使用
type Queue struct {
	queue []*treeNode
	head  int
}

func InitialQueue(size int) Queue {
	if size <= 0 {
		size = DEFAULTQUEUESIZE
	}
	return Queue{
		queue: make([]*treeNode, 0, size),
		head:  0,
	}
}

func (q *Queue) Enqueue(node *treeNode) {
	q.queue = append(q.queue, node)
}

func (q *Queue) Dequeue() (*treeNode, bool) {
	if q.head == len(q.queue) {
		return nil, false
	}
	node := q.queue[q.head]
	q.queue[q.head] = nil
	q.head++
	if q.head == len(q.queue) { //队列已空，复用底层数组
		q.queue = q.queue[:0]
		q.head = 0
	}
	return node, true
}

func (q *Queue) Len() int {
	return len(q.queue) - q.head
}
