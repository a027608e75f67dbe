package autodiff

import "container/heap"

// functionQueue is the backward worklist: a max-heap of Functions ordered by
// generation, then depth, then insertion order.
//
// Generations alone cannot separate a Function from a consumer of its outputs
// (both may share the maximum input generation), so depth, which strictly grows
// along every edge, settles ties. Together they yield a reverse topological order.
type functionQueue struct {
	items []queueItem
	seq   int
}

type queueItem struct {
	fn  Function
	b   *Base
	seq int
}

var _ heap.Interface = (*functionQueue)(nil)

func (q *functionQueue) Len() int { return len(q.items) }

func (q *functionQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.b.generation != b.b.generation {
		return a.b.generation > b.b.generation
	}
	if a.b.depth != b.b.depth {
		return a.b.depth > b.b.depth
	}
	return a.seq < b.seq
}

func (q *functionQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *functionQueue) Push(x any) {
	q.items = append(q.items, x.(queueItem))
}

func (q *functionQueue) Pop() any {
	n := len(q.items)
	item := q.items[n-1]
	q.items[n-1] = queueItem{}
	q.items = q.items[:n-1]
	return item
}

// push enqueues fn.
func (q *functionQueue) push(fn Function) {
	heap.Push(q, queueItem{fn: fn, b: fn.base(), seq: q.seq})
	q.seq++
}

// pop removes the Function with the highest priority.
func (q *functionQueue) pop() Function {
	return heap.Pop(q).(queueItem).fn
}
