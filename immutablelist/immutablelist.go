// Package immutablelist implements a Lisp-style persistent singly-linked
// list: push-front and pop-front are both O(1) and share structure with
// every list they were derived from.
//
// A long persistent chain can still be freed all at once when its last
// reference drops, and letting the garbage collector run one finalizer per
// node in a deep chain recurses through each node's "next" pointer exactly
// the way a naive destructor chain would in a non-GC'd language. Past a
// length threshold, List attaches a finalizer that unlinks iteratively
// through a package-level queue instead of relying on finalizer-triggers-
// finalizer chaining.
package immutablelist

import (
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
)

// finalizeThreshold sets which List nodes get an unlinking finalizer: those
// whose depth is a positive multiple of it. All other nodes are left to the
// garbage collector alone.
const finalizeThreshold = 1024

// EmptyListError is panicked by Front and PopFront on an empty list.
type EmptyListError struct{}

func (EmptyListError) Error() string { return "immutablelist: operation on empty list" }

// List is a node of a persistent singly-linked list. The nil *List is the
// empty list.
type List[T any] struct {
	value T
	next  *List[T]
	depth int
}

// Empty returns the empty list.
func Empty[T any]() *List[T] {
	return nil
}

// Cons prepends item to rest (which may be nil, meaning the empty list) and
// returns the new list head.
func Cons[T any](item T, rest *List[T]) *List[T] {
	depth := 1
	if rest != nil {
		depth = rest.depth + 1
	}
	node := &List[T]{value: item, next: rest, depth: depth}
	if depth >= finalizeThreshold && depth%finalizeThreshold == 0 {
		runtime.SetFinalizer(node, finalizeNode[T])
	}
	return node
}

// PushFront returns a new list with item prepended to l.
func (l *List[T]) PushFront(item T) *List[T] {
	return Cons(item, l)
}

// PopFront returns the tail of the list with the front item removed. Panics
// with EmptyListError if l is empty.
func (l *List[T]) PopFront() *List[T] {
	if l == nil {
		panic(EmptyListError{})
	}
	return l.next
}

// Front returns the first item of the list. Panics with EmptyListError if l
// is empty.
func (l *List[T]) Front() T {
	if l == nil {
		panic(EmptyListError{})
	}
	return l.value
}

// Empty reports whether l is the empty list.
func (l *List[T]) Empty() bool {
	return l == nil
}

// Values returns an iterator function, front-to-back, following the pattern
// repeated (next, ok) until ok is false.
func (l *List[T]) Values() func() (T, bool) {
	cur := l
	return func() (v T, ok bool) {
		if cur == nil {
			return v, false
		}
		v, ok = cur.value, true
		cur = cur.next
		return v, ok
	}
}

// ToSlice collects the list's values, front-to-back, into a new slice.
func (l *List[T]) ToSlice() []T {
	var result []T
	for cur := l; cur != nil; cur = cur.next {
		result = append(result, cur.value)
	}
	return result
}

// Less lexicographically compares a and b: shorter is less when one is a
// prefix of the other, and the first differing element decides otherwise.
func Less[T constraints.Ordered](a, b *List[T]) bool {
	for {
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		if a.value != b.value {
			return a.value < b.value
		}
		a, b = a.next, b.next
	}
}

// Greater reports whether a is lexicographically greater than b.
func Greater[T constraints.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

// Equal reports whether a and b hold the same sequence of values.
func Equal[T comparable](a, b *List[T]) bool {
	for {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		if a.value != b.value {
			return false
		}
		a, b = a.next, b.next
	}
}

// NotEqual reports whether a and b differ.
func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// finalizeNode is attached to deep chains; instead of letting the garbage
// collector potentially run one finalizer per node in a recursive trigger
// chain, it hands the unlink off to the package-level iterative drain queue.
func finalizeNode[T any](l *List[T]) {
	enqueueUnlink(func() { l.next = nil })
}

type unlinkTask struct {
	run  func()
	next *unlinkTask
}

var (
	queueMu sync.Mutex
	qHead   *unlinkTask
	qTail   *unlinkTask
)

// enqueueUnlink appends run to the deletion queue. Whether this call becomes
// the drainer is decided by the same lock that does the append: a thread
// that finds the queue empty at the moment it inserts is the only one
// that can correctly conclude no drainer is running, so it becomes one.
// A thread that finds the queue non-empty knows some drainer (either
// already running, or about to start per this same rule) will reach its
// task, because the drain loop only reports the queue empty, and lets
// qHead go nil, inside this same critical section.
func enqueueUnlink(run func()) {
	task := &unlinkTask{run: run}

	queueMu.Lock()
	wasEmpty := qHead == nil
	if qTail != nil {
		qTail.next = task
		qTail = task
	} else {
		qHead, qTail = task, task
	}
	queueMu.Unlock()

	if !wasEmpty {
		return
	}
	drainUnlinkQueue()
}

func drainUnlinkQueue() {
	for {
		queueMu.Lock()
		task := qHead
		if task == nil {
			queueMu.Unlock()
			return
		}
		qHead = task.next
		if qHead == nil {
			qTail = nil
		}
		queueMu.Unlock()

		task.run()
	}
}
