// Package updatablepq implements a priority queue that supports raising an
// item's priority by pushing it again. It does not reorder entries in
// place: pushing an already-seen identity is a no-op once that identity has
// been popped, and stale duplicates still sitting below the top are
// discarded lazily as they surface, rather than removed eagerly.
package updatablepq

import (
	"container/heap"

	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/exp/constraints"
)

// EmptyQueueError is panicked by Top and Pop on an empty queue.
type EmptyQueueError struct{}

func (EmptyQueueError) Error() string { return "updatablepq: operation on empty queue" }

type item[T any, P constraints.Ordered] struct {
	value    T
	priority P
}

type innerHeap[T any, P constraints.Ordered] []item[T, P]

func (h innerHeap[T, P]) Len() int           { return len(h) }
func (h innerHeap[T, P]) Less(i, j int) bool { return h[i].priority > h[j].priority }
func (h innerHeap[T, P]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *innerHeap[T, P]) Push(x any) {
	*h = append(*h, x.(item[T, P]))
}

func (h *innerHeap[T, P]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// Queue is a max-priority queue over values of type T with priorities P,
// deduplicated by an identity of type I extracted from each value.
type Queue[T any, P constraints.Ordered, I comparable] struct {
	heap     innerHeap[T, P]
	seen     *hashset.Set
	identity func(T) I
}

// New returns an empty Queue using identity to extract the deduplication key
// from a value; two pushes with equal identities are treated as the same
// logical item, so a later push is understood as a priority update.
func New[T any, P constraints.Ordered, I comparable](identity func(T) I) *Queue[T, P, I] {
	return &Queue[T, P, I]{seen: hashset.New(), identity: identity}
}

// Empty reports whether the queue holds no live entries.
func (q *Queue[T, P, I]) Empty() bool {
	return q.heap.Len() == 0
}

// Push queues value at priority, unless its identity has already been popped.
func (q *Queue[T, P, I]) Push(value T, priority P) {
	id := q.identity(value)
	if q.seen.Contains(id) {
		return
	}
	heap.Push(&q.heap, item[T, P]{value: value, priority: priority})
}

// Top returns the value and priority at the front of the queue. Panics with
// EmptyQueueError if the queue is empty.
func (q *Queue[T, P, I]) Top() (T, P) {
	if q.Empty() {
		panic(EmptyQueueError{})
	}
	top := q.heap[0]
	return top.value, top.priority
}

// Pop removes and returns the front value and priority, marking its identity
// seen and discarding any now-stale duplicates that surface to the top.
// Panics with EmptyQueueError if the queue is empty.
func (q *Queue[T, P, I]) Pop() (T, P) {
	if q.Empty() {
		panic(EmptyQueueError{})
	}
	top := heap.Pop(&q.heap).(item[T, P])
	q.seen.Add(q.identity(top.value))
	for !q.Empty() && q.seen.Contains(q.identity(q.heap[0].value)) {
		heap.Pop(&q.heap)
	}
	return top.value, top.priority
}

// Clear empties the queue and forgets every previously seen identity.
func (q *Queue[T, P, I]) Clear() {
	q.heap = nil
	q.seen = hashset.New()
}
