// Package suffixtree implements a suffix tree built in linear time via
// Ukkonen's online algorithm, supporting substring location and
// longest-suffix-prefix overlap queries.
//
// Edges carry (first, last) index pairs into the original text; leaf
// edges use a shared "open end" sentinel that tracks the current
// construction phase. Internal nodes carry a suffix link required for
// the O(n) construction bound.
package suffixtree

import (
	"github.com/cornelk/hashmap"
)

// SentinelError is panicked by New when text contains the internal sentinel byte.
type SentinelError struct{}

func (SentinelError) Error() string {
	return "suffixtree: text must not contain the NUL sentinel byte"
}

const sentinel = 0
const noNode = -1

type stNode struct {
	children   *hashmap.Map[byte, int]
	first      int
	last       int // -1 means "open", i.e. tracks the current phase
	suffixLink int
	start      int // leaves only: index in the text where this leaf's suffix begins
}

func (n *stNode) length(phase int) int {
	if n.last >= 0 {
		return n.last - n.first + 1
	}
	return phase - n.first + 1
}

func (n *stNode) finalIndex(phase int) int {
	if n.last >= 0 {
		return n.last - n.first
	}
	return phase - n.first
}

// Tree is a suffix tree over an immutable byte slice.
type Tree struct {
	text  []byte
	nodes []stNode
	root  int
}

func (t *Tree) newNode(first, last int) int {
	t.nodes = append(t.nodes, stNode{children: hashmap.New[byte, int](), first: first, last: last, suffixLink: noNode})
	return len(t.nodes) - 1
}

func (t *Tree) charAt(i int) byte {
	if i == len(t.text) {
		return sentinel
	}
	return t.text[i]
}

// New builds a suffix tree over text in O(len(text)) time. text must not
// contain the NUL byte, which is used internally as a unique sentinel;
// violating this precondition panics with SentinelError.
func New(text []byte) *Tree {
	for _, b := range text {
		if b == sentinel {
			panic(SentinelError{})
		}
	}

	t := &Tree{text: text}
	t.root = t.newNode(-1, -1)

	activeNode := t.root
	activeEdge := byte(0)
	activeLength := 0
	remainder := 0

	n := len(text)
	var lastCreatedInternal int

	for phase := 0; phase <= n; phase++ {
		lastCreatedInternal = noNode
		remainder++

		for remainder > 0 {
			if activeLength == 0 {
				activeEdge = t.charAt(phase)
			}

			childIdx, hasChild := t.nodes[activeNode].children.Get(activeEdge)

			if !hasChild {
				leaf := t.newNode(phase, -1)
				t.nodes[leaf].start = phase - remainder + 1
				t.nodes[activeNode].children.Set(activeEdge, leaf)
				if lastCreatedInternal != noNode {
					t.nodes[lastCreatedInternal].suffixLink = activeNode
					lastCreatedInternal = noNode
				}
				remainder--
				if activeNode == t.root && activeLength > 0 {
					activeLength--
					activeEdge = t.charAt(phase - remainder + 1)
				} else if activeNode != t.root {
					activeNode = t.nodes[activeNode].suffixLink
					if activeNode == noNode {
						activeNode = t.root
					}
				}
				continue
			}

			child := &t.nodes[childIdx]
			edgeLen := child.length(phase)
			if activeLength >= edgeLen {
				// canonicalize: descend past this edge
				activeNode = childIdx
				activeLength -= edgeLen
				activeEdge = t.charAt(phase - activeLength)
				continue
			}

			if t.charAt(child.first+activeLength) == t.charAt(phase) {
				// rule 3: character already present on the edge
				activeLength++
				if lastCreatedInternal != noNode {
					t.nodes[lastCreatedInternal].suffixLink = activeNode
					lastCreatedInternal = noNode
				}
				break
			}

			// split the edge
			splitFirst := child.first
			splitLast := child.first + activeLength - 1
			splitIdx := t.newNode(splitFirst, splitLast)
			t.nodes[activeNode].children.Set(activeEdge, splitIdx)

			leaf := t.newNode(phase, -1)
			t.nodes[leaf].start = phase - remainder + 1
			// newNode may have moved t.nodes, so child is re-read by index
			t.nodes[childIdx].first += activeLength
			t.nodes[splitIdx].children.Set(t.charAt(t.nodes[childIdx].first), childIdx)
			t.nodes[splitIdx].children.Set(t.charAt(phase), leaf)

			if lastCreatedInternal != noNode {
				t.nodes[lastCreatedInternal].suffixLink = splitIdx
			}
			lastCreatedInternal = splitIdx

			remainder--
			if activeNode == t.root && activeLength > 0 {
				activeLength--
				activeEdge = t.charAt(phase - remainder + 1)
			} else if activeNode != t.root {
				activeNode = t.nodes[activeNode].suffixLink
				if activeNode == noNode {
					activeNode = t.root
				}
			}
		}
	}

	return t
}

// walk follows query from the root as far as possible. It returns the index
// of the deepest node fully matched, the number of characters matched along
// the edge into a partially-matched child (0 if the walk stopped exactly at
// a node), the index of that partially matched child (noNode if none), and
// whether every character of query was consumed.
func (t *Tree) walk(query []byte) (node int, edgeOffset int, partialChild int, matched bool) {
	cur := t.root
	i := 0
	for i < len(query) {
		childIdx, ok := t.nodes[cur].children.Get(query[i])
		if !ok {
			return cur, 0, noNode, false
		}
		child := &t.nodes[childIdx]
		edgeLen := child.length(len(t.text))
		j := 0
		for j < edgeLen && i < len(query) {
			if t.charAt(child.first+j) != query[i] {
				return cur, j, childIdx, false
			}
			i++
			j++
		}
		if j == edgeLen {
			cur = childIdx
			continue
		}
		// query exhausted partway along this edge
		return cur, j, childIdx, true
	}
	return cur, 0, noNode, true
}

// LongestOverlap returns the length of the longest prefix of query that
// equals some suffix of the text the tree was built from. Returns 0 for an
// empty query or an empty tree.
func (t *Tree) LongestOverlap(query []byte) int {
	if len(query) == 0 {
		return 0
	}
	best := 0
	cur := t.root
	matched := 0
	i := 0
	for i < len(query) {
		childIdx, ok := t.nodes[cur].children.Get(query[i])
		if !ok {
			break
		}
		child := &t.nodes[childIdx]
		edgeLen := child.length(len(t.text))
		j := 0
		for j < edgeLen && i < len(query) {
			if t.charAt(child.first+j) != query[i] {
				break
			}
			i++
			j++
			matched++
			if t.charAt(child.first+j) == sentinel {
				if matched > best {
					best = matched
				}
			}
		}
		if j < edgeLen {
			break
		}
		// a node with a sentinel child ends a suffix of the text
		if _, ok := t.nodes[childIdx].children.Get(sentinel); ok && matched > best {
			best = matched
		}
		cur = childIdx
	}
	return best
}

// SubstringLocations returns every start index in the tree's text at which
// query occurs. Returns an empty slice for an empty query or no match.
func (t *Tree) SubstringLocations(query []byte) []int {
	if len(query) == 0 {
		return nil
	}
	node, _, partialChild, matched := t.walk(query)
	if !matched {
		return nil
	}
	startNode := node
	if partialChild != noNode {
		startNode = partialChild
	}
	return t.collectLeaves(startNode)
}

// collectLeaves performs a non-recursive BFS over the subtree rooted at
// nodeIdx, returning every leaf's suffix start index. The worklist is a
// plain slice consumed from the front; subtrees are shallow enough
// relative to the text that the O(n) front-slice is not worth a ring
// buffer here.
func (t *Tree) collectLeaves(nodeIdx int) []int {
	var result []int
	worklist := []int{nodeIdx}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		n := &t.nodes[cur]
		if n.children.Len() == 0 {
			result = append(result, n.start)
			continue
		}
		n.children.Range(func(_ byte, child int) bool {
			worklist = append(worklist, child)
			return true
		})
	}
	return result
}
