// Package rankpairingheap implements a rank-pairing heap: a meldable
// priority queue with amortized O(1) increase-priority and O(log n)
// extract-max, deduplicating on key so that a value can only ever be
// popped once.
//
// Nodes form a forest of half-trees (Haeupler, Sen & Tarjan, 2011): only
// left edges carry the heap-ordering constraint; right edges are a
// free-form spine used for lazy melding. The type-2 rank rule governs
// every internal node.
package rankpairingheap

import (
	"github.com/alphadose/haxmap"
	"golang.org/x/exp/constraints"
)

const noIndex = -1

type node[T comparable, P constraints.Ordered] struct {
	value    T
	priority P
	rank     uint64
	parent   int
	left     int
	right    int
}

type handle struct {
	index  int
	popped bool
}

// Heap is a rank-pairing heap over comparable values with ordered priorities.
// The zero value is not usable; construct with New.
type Heap[T comparable, P constraints.Ordered] struct {
	nodes        []node[T, P]
	firstRoot    int
	otherRoots   []int
	current      *haxmap.Map[T, handle]
	less         func(a, b P) bool
	numItems     int
}

// EmptyHeapError is panicked by Top and Pop on an empty heap.
type EmptyHeapError struct{}

func (EmptyHeapError) Error() string { return "rankpairingheap: operation on empty heap" }

// New returns an empty heap ordered so that Pop extracts the greatest priority first.
func New[T comparable, P constraints.Ordered]() *Heap[T, P] {
	return NewWithCompare[T, P](func(a, b P) bool { return a < b })
}

// NewWithCompare returns an empty heap using less(a, b) to decide whether a is
// lower priority than b; Pop always extracts the highest-priority element
// under this relation.
func NewWithCompare[T comparable, P constraints.Ordered](less func(a, b P) bool) *Heap[T, P] {
	return &Heap[T, P]{
		firstRoot:  noIndex,
		current:    haxmap.New[T, handle](),
		less:       less,
		otherRoots: nil,
	}
}

// Size returns the number of values currently live in the heap (excludes popped values).
func (h *Heap[T, P]) Size() int {
	return h.numItems
}

// Empty reports whether the heap currently has no live values.
func (h *Heap[T, P]) Empty() bool {
	return h.numItems == 0
}

// Top returns the value and priority of the current maximum. Panics with
// EmptyHeapError if the heap is empty.
func (h *Heap[T, P]) Top() (T, P) {
	if h.firstRoot == noIndex {
		panic(EmptyHeapError{})
	}
	n := &h.nodes[h.firstRoot]
	return n.value, n.priority
}

func (h *Heap[T, P]) newNode(value T, priority P) int {
	h.nodes = append(h.nodes, node[T, P]{
		value:    value,
		priority: priority,
		parent:   noIndex,
		left:     noIndex,
		right:    noIndex,
	})
	return len(h.nodes) - 1
}

// placeHalfTree inserts the half-tree rooted at idx into the forest.
func (h *Heap[T, P]) placeHalfTree(idx int) {
	if h.firstRoot == noIndex {
		h.firstRoot = idx
		return
	}
	if h.less(h.nodes[h.firstRoot].priority, h.nodes[idx].priority) {
		h.otherRoots = append(h.otherRoots, h.firstRoot)
		h.firstRoot = idx
	} else {
		h.otherRoots = append(h.otherRoots, idx)
	}
}

// link merges half-trees a and b, where a has the greater (or equal) key,
// and returns the index of the winning root.
func (h *Heap[T, P]) link(a, b int) int {
	winner, loser := &h.nodes[a], &h.nodes[b]
	if winner.rank == loser.rank {
		winner.rank++
	}
	loser.right = winner.left
	if loser.right != noIndex {
		h.nodes[loser.right].parent = b
	}
	winner.left = b
	loser.parent = a
	return a
}

// PushOrReprioritize inserts value with priority if it has never been seen;
// if it is live, raises its priority to the greater of the old and new
// value; if it has already been popped, this is a no-op.
func (h *Heap[T, P]) PushOrReprioritize(value T, priority P) {
	if hdl, ok := h.current.Get(value); ok {
		if !hdl.popped {
			h.reprioritize(hdl.index, priority)
		}
		return
	}
	idx := h.newNode(value, priority)
	h.placeHalfTree(idx)
	h.current.Set(value, handle{index: idx})
	h.numItems++
}

func (h *Heap[T, P]) reprioritize(idx int, priority P) {
	n := &h.nodes[idx]
	if !h.less(n.priority, priority) {
		// not an increase, no-op
		return
	}
	n.priority = priority

	if n.parent == noIndex {
		// already a root; may need to become the first root
		if idx != h.firstRoot && h.less(h.nodes[h.firstRoot].priority, priority) {
			h.swapToFirstRoot(idx)
		}
		return
	}

	parent := n.parent
	n.parent = noIndex
	right := n.right
	n.right = noIndex
	if right != noIndex {
		h.nodes[right].parent = parent
	}
	if h.nodes[parent].left == idx {
		h.nodes[parent].left = right
	} else {
		h.nodes[parent].right = right
	}

	h.placeHalfTree(idx)

	// restore the type-2 rank rule up from parent: for each ancestor p, recompute
	// rank from its present children and stop as soon as it's not a decrease.
	for p := parent; p != noIndex; {
		pn := &h.nodes[p]
		hasLeft := pn.left != noIndex
		hasRight := pn.right != noIndex
		var nextRank uint64
		switch {
		case hasLeft && hasRight:
			leftRank := h.nodes[pn.left].rank
			rightRank := h.nodes[pn.right].rank
			hi, lo := leftRank, rightRank
			if lo > hi {
				hi, lo = lo, hi
			}
			nextRank = hi
			if hi-lo <= 1 {
				nextRank++
			}
		case hasLeft:
			nextRank = h.nodes[pn.left].rank + 1
		case hasRight:
			nextRank = h.nodes[pn.right].rank + 1
		default:
			nextRank = 0
		}
		if nextRank >= pn.rank {
			break
		}
		pn.rank = nextRank
		p = pn.parent
	}
}

// swapToFirstRoot moves idx (already a root in otherRoots) to be the first root.
func (h *Heap[T, P]) swapToFirstRoot(idx int) {
	for i, r := range h.otherRoots {
		if r == idx {
			h.otherRoots[i] = h.firstRoot
			h.firstRoot = idx
			return
		}
	}
}

// Pop removes and returns the maximum value and priority, marking the value popped.
func (h *Heap[T, P]) Pop() (T, P) {
	if h.firstRoot == noIndex {
		panic(EmptyHeapError{})
	}
	value, priority := h.Top()
	h.numItems--
	h.current.Set(value, handle{index: noIndex, popped: true})

	firstRoot := h.firstRoot
	working := h.otherRoots
	h.otherRoots = nil
	h.firstRoot = noIndex

	// disassemble first root: walk down-left then along the right spine
	left := h.nodes[firstRoot].left
	if left != noIndex {
		cur := left
		h.nodes[cur].parent = noIndex
		working = append(working, cur)
		for h.nodes[cur].right != noIndex {
			next := h.nodes[cur].right
			h.nodes[cur].right = noIndex
			h.nodes[next].parent = noIndex
			working = append(working, next)
			cur = next
		}
	}

	// one-pass bucketed linking
	buckets := make([]int, 0)
	for _, idx := range working {
		n := &h.nodes[idx]
		if n.left != noIndex {
			n.rank = h.nodes[n.left].rank + 1
		} else {
			n.rank = 0
		}
		for uint64(len(buckets)) <= n.rank {
			buckets = append(buckets, noIndex)
		}
		bucketRank := n.rank
		other := buckets[bucketRank]
		if other != noIndex {
			var winner, loser int
			if h.less(h.nodes[other].priority, h.nodes[idx].priority) {
				winner, loser = idx, other
			} else {
				winner, loser = other, idx
			}
			// link may bump winner.rank in place; winner can alias n (idx's
			// node), so the bucket to clear must be the one read above, not
			// n.rank re-read after linking.
			merged := h.link(winner, loser)
			h.placeHalfTree(merged)
			buckets[bucketRank] = noIndex
		} else {
			buckets[bucketRank] = idx
		}
	}
	for _, idx := range buckets {
		if idx != noIndex {
			h.placeHalfTree(idx)
		}
	}

	return value, priority
}
