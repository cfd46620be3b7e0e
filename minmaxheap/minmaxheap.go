// Package minmaxheap implements a min-max heap: a single array-based binary
// tree giving O(1) access to both the minimum and maximum element and
// O(log n) insertion and removal of either extreme.
//
// Levels of the tree alternate between min-levels (even depth, root is
// depth 0) and max-levels (odd depth); the ordering invariant flips
// between them. See Atkinson, Sack, Santoro & Strothotte (1986).
package minmaxheap

import "golang.org/x/exp/constraints"

// EmptyHeapError is panicked by Min, Max, PopMin, and PopMax on an empty heap.
type EmptyHeapError struct{}

func (EmptyHeapError) Error() string {
	return "minmaxheap: operation on empty heap"
}

// Heap is a min-max heap over an ordered element type.
type Heap[T constraints.Ordered] struct {
	values []T
}

// New returns an empty heap.
func New[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{}
}

// From builds a heap from the given values in O(n) time. The input slice is
// copied, not retained.
func From[T constraints.Ordered](values []T) *Heap[T] {
	h := &Heap[T]{values: append([]T(nil), values...)}
	if len(h.values) == 0 {
		return h
	}

	// depth of the current layer of internal nodes
	level := -2
	// size at which we would begin filling the next level of the tree
	nextLevelBegin := 1
	for nextLevelBegin-1 < len(h.values) {
		nextLevelBegin *= 2
		level++
	}

	internalLevelEnd := nextLevelBegin/2 - 1
	internalLevelBegin := nextLevelBegin/4 - 1

	for level >= 0 {
		for i := internalLevelBegin; i < internalLevelEnd; i++ {
			h.restoreBelow(i, level)
		}
		internalLevelEnd = internalLevelBegin
		internalLevelBegin = (internalLevelBegin+1)/2 - 1
		level--
	}
	return h
}

// cmp reports whether a belongs above b at the given level: on even
// (min) levels a <= b is wanted, on odd (max) levels a >= b is wanted.
func cmp[T constraints.Ordered](a, b T, level int) bool {
	return (level%2 == 0) != (a > b)
}

// Size returns the number of elements in the heap.
func (h *Heap[T]) Size() int {
	return len(h.values)
}

// Empty reports whether the heap has no elements.
func (h *Heap[T]) Empty() bool {
	return len(h.values) == 0
}

// Min returns the minimum element. Panics with EmptyHeapError if the heap is empty.
func (h *Heap[T]) Min() T {
	if len(h.values) == 0 {
		panic(EmptyHeapError{})
	}
	return h.values[0]
}

// Max returns the maximum element. Panics with EmptyHeapError if the heap is empty.
func (h *Heap[T]) Max() T {
	switch len(h.values) {
	case 0:
		panic(EmptyHeapError{})
	case 1:
		return h.values[0]
	case 2:
		return h.values[1]
	default:
		if h.values[1] > h.values[2] {
			return h.values[1]
		}
		return h.values[2]
	}
}

// Push adds a value to the heap.
func (h *Heap[T]) Push(v T) {
	h.values = append(h.values, v)
	h.postAdd()
}

func (h *Heap[T]) postAdd() {
	if len(h.values) == 1 {
		return
	}

	i := len(h.values) - 1
	parent := (i+1)/2 - 1

	level := -1
	nextLevelBegin := 1
	for nextLevelBegin-1 < len(h.values) {
		nextLevelBegin *= 2
		level++
	}

	if cmp(h.values[i], h.values[parent], level-1) {
		h.values[i], h.values[parent] = h.values[parent], h.values[i]
		h.restoreAbove(parent, level-1)
	} else {
		h.restoreAbove(i, level)
	}
}

// PopMin removes and returns the minimum element. Panics with EmptyHeapError
// if the heap is empty.
func (h *Heap[T]) PopMin() T {
	if len(h.values) == 0 {
		panic(EmptyHeapError{})
	}
	m := h.values[0]
	last := len(h.values) - 1
	h.values[0] = h.values[last]
	h.values = h.values[:last]
	if len(h.values) > 0 {
		h.restoreBelow(0, 0)
	}
	return m
}

// PopMax removes and returns the maximum element. Panics with EmptyHeapError
// if the heap is empty.
func (h *Heap[T]) PopMax() T {
	if len(h.values) == 0 {
		panic(EmptyHeapError{})
	}
	if len(h.values) <= 2 {
		last := len(h.values) - 1
		m := h.values[last]
		h.values = h.values[:last]
		return m
	}
	i := 1
	if h.values[2] > h.values[1] {
		i = 2
	}
	m := h.values[i]
	last := len(h.values) - 1
	h.values[i] = h.values[last]
	h.values = h.values[:last]
	h.restoreBelow(i, 1)
	return m
}

// restoreBelow pushes the extremum at level down to i, considering i's
// children and grandchildren.
func (h *Heap[T]) restoreBelow(i, level int) {
	rightest := 4*i + 6
	leftest := rightest - 3
	if leftest >= len(h.values) {
		left := 2*i + 1
		right := left + 1
		if left >= len(h.values) {
			return
		}
		most := i
		if !cmp(h.values[i], h.values[left], level) {
			most = left
		}
		if right < len(h.values) {
			if !cmp(h.values[most], h.values[right], level) {
				most = right
			}
		}
		if most != i {
			h.values[i], h.values[most] = h.values[most], h.values[i]
		}
		return
	}

	most := i
	if !cmp(h.values[i], h.values[leftest], level) {
		most = leftest
	}
	for j := leftest + 1; j <= rightest; j++ {
		if j >= len(h.values) {
			break
		}
		if !cmp(h.values[most], h.values[j], level) {
			most = j
		}
	}

	directChildSwapped := false
	if leftest+2 >= len(h.values) {
		right := 2*i + 2
		if cmp(h.values[right], h.values[most], level) {
			h.values[i], h.values[right] = h.values[right], h.values[i]
			directChildSwapped = true
		}
	}

	if !directChildSwapped && most != i {
		h.values[i], h.values[most] = h.values[most], h.values[i]
		intermediate := 2*i + 2
		if most <= leftest+1 {
			intermediate = 2*i + 1
		}
		if cmp(h.values[most], h.values[intermediate], level+1) {
			h.values[intermediate], h.values[most] = h.values[most], h.values[intermediate]
		}
		h.restoreBelow(most, level+2)
	}
}

// restoreAbove pulls the value at i up past its grandparent as long as it
// violates the ordering for level.
func (h *Heap[T]) restoreAbove(i, level int) {
	if i <= 2 {
		return
	}
	grandparent := (i+1)/4 - 1
	if cmp(h.values[i], h.values[grandparent], level-2) {
		h.values[i], h.values[grandparent] = h.values[grandparent], h.values[i]
		h.restoreAbove(grandparent, level-2)
	}
}
