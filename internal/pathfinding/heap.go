package pathfinding

import "container/heap"

// Heap is a binary min-heap ordered by a caller supplied score. Scores are
// read lazily on every comparison, so after changing an item's score the
// caller must call Rescore.
type Heap[T comparable] struct {
	q queue[T]
}

// NewHeap creates an empty heap. tieBreak may be nil; equal scores then fall
// back to insertion order.
func NewHeap[T comparable](score func(T) float64, tieBreak func(a, b T) bool) *Heap[T] {
	return &Heap[T]{
		q: queue[T]{
			score:    score,
			tieBreak: tieBreak,
			index:    make(map[T]int),
		},
	}
}

// Push adds item. An item already in the heap must be rescored, not pushed again.
func (h *Heap[T]) Push(item T) {
	heap.Push(&h.q, item)
}

// Pop removes and returns the minimum item. ok is false when the heap is empty.
func (h *Heap[T]) Pop() (item T, ok bool) {
	if h.q.Len() == 0 {
		return item, false
	}
	return heap.Pop(&h.q).(T), true
}

// Rescore restores heap order after item's score changed.
func (h *Heap[T]) Rescore(item T) {
	if i, ok := h.q.index[item]; ok {
		heap.Fix(&h.q, i)
	}
}

// Remove deletes item from the heap and reports whether it was present.
func (h *Heap[T]) Remove(item T) bool {
	i, ok := h.q.index[item]
	if !ok {
		return false
	}
	heap.Remove(&h.q, i)
	return true
}

func (h *Heap[T]) Contains(item T) bool {
	_, ok := h.q.index[item]
	return ok
}

func (h *Heap[T]) Size() int {
	return h.q.Len()
}

type queueEntry[T comparable] struct {
	item T
	seq  uint64
}

// queue implements heap.Interface and tracks each item's position so Fix and
// Remove can find it.
type queue[T comparable] struct {
	entries  []queueEntry[T]
	index    map[T]int
	score    func(T) float64
	tieBreak func(a, b T) bool
	nextSeq  uint64
}

func (q queue[T]) Len() int { return len(q.entries) }

func (q queue[T]) Less(i, j int) bool {
	a, b := q.entries[i], q.entries[j]
	sa, sb := q.score(a.item), q.score(b.item)
	if sa != sb {
		return sa < sb
	}
	if q.tieBreak != nil {
		if q.tieBreak(a.item, b.item) {
			return true
		}
		if q.tieBreak(b.item, a.item) {
			return false
		}
	}
	return a.seq < b.seq
}

func (q queue[T]) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.index[q.entries[i].item] = i
	q.index[q.entries[j].item] = j
}

func (q *queue[T]) Push(x any) {
	item := x.(T)
	q.index[item] = len(q.entries)
	q.entries = append(q.entries, queueEntry[T]{item: item, seq: q.nextSeq})
	q.nextSeq++
}

func (q *queue[T]) Pop() any {
	old := q.entries
	n := len(old)
	entry := old[n-1]
	old[n-1] = queueEntry[T]{}
	q.entries = old[:n-1]
	delete(q.index, entry.item)
	return entry.item
}
