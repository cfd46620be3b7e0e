// Package rmq implements a Fischer-Heun style range-minimum query
// structure: O(n) construction and O(1) query over a fixed sequence, via
// block partitioning, per-shape Cartesian-tree memoization, and a sparse
// table over blocks.
package rmq

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// RangeError is panicked by RangeMin when given an invalid or out-of-bounds interval.
type RangeError struct {
	Lo, Hi, N int
}

func (e RangeError) Error() string {
	return "rmq: invalid range"
}

// shapeEntry maps an encoded Cartesian-tree shape to the index of its memo
// table in Table.memos. Ordered by Shape for use in a btree.BTreeG.
type shapeEntry struct {
	Shape uint64
	Memo  int
}

func shapeLess(a, b shapeEntry) bool {
	return a.Shape < b.Shape
}

// Table answers O(1) range-minimum queries over an immutable sequence.
type Table[T constraints.Ordered] struct {
	data      []T
	blockSize int
	// blockShape[i] indexes into memos for block i.
	blockShape []int
	memos      [][]int // memos[shape][i*len+j] = offset of min in [i,j] within the block, for i<=j
	// sparse[k][i] = global index of the minimum among blocks i..i+2^k-1
	sparse    [][]int
	floorLog2 []int
	numBlocks int
}

// blockLen returns the number of elements actually in block blk (every block
// is blockSize long except possibly the last, which may be shorter).
func (t *Table[T]) blockLen(blk int) int {
	start := blk * t.blockSize
	end := start + t.blockSize
	if end > len(t.data) {
		end = len(t.data)
	}
	return end - start
}

// New builds a Table over data in O(n) time. data is copied.
func New[T constraints.Ordered](data []T) *Table[T] {
	t := &Table[T]{data: append([]T(nil), data...)}
	n := len(t.data)
	if n == 0 {
		t.blockSize = 1
		return t
	}

	logSize := 0
	for tmp := n; tmp > 1; tmp /= 2 {
		logSize++
	}
	t.blockSize = logSize/4 + 1
	b := t.blockSize

	t.numBlocks = (n-1)/b + 1
	t.blockShape = make([]int, t.numBlocks)

	shapeIndex := btree.NewG[shapeEntry](32, shapeLess)

	for blk := 0; blk < t.numBlocks; blk++ {
		start := blk * b
		end := start + b
		if end > n {
			end = n
		}
		shape := cartesianShape(t.data[start:end])
		if found, ok := shapeIndex.Get(shapeEntry{Shape: shape}); ok {
			t.blockShape[blk] = found.Memo
		} else {
			memoIdx := len(t.memos)
			t.memos = append(t.memos, buildBlockMemo(t.data[start:end]))
			shapeIndex.ReplaceOrInsert(shapeEntry{Shape: shape, Memo: memoIdx})
			t.blockShape[blk] = memoIdx
		}
	}

	// floor-log2 table, sized to numBlocks+1 per the construction note on
	// sign-of-block-boundary arithmetic: callers index it with counts of
	// blocks, which range from 0 to numBlocks inclusive.
	t.floorLog2 = make([]int, t.numBlocks+1)
	for i := 2; i <= t.numBlocks; i++ {
		t.floorLog2[i] = t.floorLog2[i/2] + 1
	}

	maxK := t.floorLog2[t.numBlocks] + 1
	t.sparse = make([][]int, maxK)
	t.sparse[0] = make([]int, t.numBlocks)
	for i := 0; i < t.numBlocks; i++ {
		start := i * b
		blen := t.blockLen(i)
		t.sparse[0][i] = start + t.memos[t.blockShape[i]][memoKey(0, blen-1, blen)]
	}
	for k := 1; k < maxK; k++ {
		span := 1 << uint(k)
		row := make([]int, 0, t.numBlocks)
		for i := 0; i+span <= t.numBlocks; i++ {
			lo := t.sparse[k-1][i]
			hi := t.sparse[k-1][i+span/2]
			if t.data[hi] < t.data[lo] {
				row = append(row, hi)
			} else {
				row = append(row, lo)
			}
		}
		t.sparse[k] = row
	}

	return t
}

// memoKey computes the flat index for the (i,j) pair within a block of size b.
func memoKey(i, j, b int) int {
	return i*b + j
}

// buildBlockMemo computes, for every 0<=i<=j<len(block), the offset within
// block of the minimum in block[i..j], via naive O(b^2) comparison.
func buildBlockMemo[T constraints.Ordered](block []T) []int {
	b := len(block)
	memo := make([]int, b*b)
	for i := 0; i < b; i++ {
		best := i
		memo[memoKey(i, i, b)] = i
		for j := i + 1; j < b; j++ {
			if block[j] < block[best] {
				best = j
			}
			memo[memoKey(i, j, b)] = best
		}
	}
	return memo
}

// cartesianShape encodes the Cartesian-tree topology of block as a
// level-order bitmap (root first): a 1 bit marks a present node and a 0 bit
// an absent child position, 2*len(block)+1 bits in all.
func cartesianShape[T constraints.Ordered](block []T) uint64 {
	type node struct {
		val         T
		left, right int
	}
	nodes := make([]node, 0, len(block))
	root := -1
	stack := make([]int, 0, len(block))

	for i, v := range block {
		idx := len(nodes)
		nodes = append(nodes, node{val: v, left: -1, right: -1})
		last := -1
		for len(stack) > 0 && nodes[stack[len(stack)-1]].val > v {
			last = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			nodes[stack[len(stack)-1]].right = idx
		} else {
			root = idx
		}
		nodes[idx].left = last
		stack = append(stack, idx)
		_ = i
	}

	var shape uint64
	bitPos := uint(0)
	queue := []int{root}
	for len(queue) > 0 && bitPos < 64 {
		cur := queue[0]
		queue = queue[1:]
		if cur != -1 {
			shape |= 1 << bitPos
			queue = append(queue, nodes[cur].left, nodes[cur].right)
		}
		bitPos++
	}
	return shape
}

// RangeMin returns the index of the minimum element in the half-open
// interval [lo, hi). Panics with RangeError if lo >= hi or the interval is
// out of bounds.
func (t *Table[T]) RangeMin(lo, hi int) int {
	n := len(t.data)
	if lo < 0 || hi > n || lo >= hi {
		panic(RangeError{Lo: lo, Hi: hi, N: n})
	}
	b := t.blockSize
	beginBlock := lo / b
	endBlock := (hi - 1) / b

	if beginBlock == endBlock {
		start := beginBlock * b
		blen := t.blockLen(beginBlock)
		relLo, relHi := lo-start, hi-1-start
		return start + t.memos[t.blockShape[beginBlock]][memoKey(relLo, relHi, blen)]
	}

	beginBlockStart := beginBlock * b
	endBlockStart := endBlock * b
	beginBlen := t.blockLen(beginBlock)
	endBlen := t.blockLen(endBlock)

	relLo := lo - beginBlockStart
	relHiInBegin := beginBlen - 1
	beginIdx := beginBlockStart + t.memos[t.blockShape[beginBlock]][memoKey(relLo, relHiInBegin, beginBlen)]

	relHiEnd := hi - 1 - endBlockStart
	endIdx := endBlockStart + t.memos[t.blockShape[endBlock]][memoKey(0, relHiEnd, endBlen)]

	best := beginIdx
	if t.data[endIdx] < t.data[best] {
		best = endIdx
	}

	if beginBlock+1 < endBlock {
		count := endBlock - beginBlock - 1
		k := t.floorLog2[count]
		lowIdx := t.sparse[k][beginBlock+1]
		highIdx := t.sparse[k][endBlock-(1<<uint(k))]
		if t.data[lowIdx] < t.data[best] {
			best = lowIdx
		}
		if t.data[highIdx] < t.data[best] {
			best = highIdx
		}
	}

	return best
}

// Len returns the number of elements the table was constructed over.
func (t *Table[T]) Len() int {
	return len(t.data)
}
