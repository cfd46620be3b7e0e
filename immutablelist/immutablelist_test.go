package immutablelist

import (
	"runtime"
	"testing"
)

func TestPushFrontAndFront(t *testing.T) {
	var l *List[int]
	if !l.Empty() {
		t.Fatalf("nil list should be empty")
	}
	l = l.PushFront(3)
	l = l.PushFront(2)
	l = l.PushFront(1)
	if l.Front() != 1 {
		t.Errorf("Front() = %d, want 1", l.Front())
	}
	if l.ToSlice()[0] != 1 || l.ToSlice()[1] != 2 || l.ToSlice()[2] != 3 {
		t.Errorf("ToSlice() = %v, want [1 2 3]", l.ToSlice())
	}
}

func TestStructuralSharing(t *testing.T) {
	base := Cons(3, Cons(2, Cons(1, nil)))
	branchA := base.PushFront(10)
	branchB := base.PushFront(20)

	if branchA.PopFront() != base {
		t.Errorf("branchA's tail should be the exact same node as base")
	}
	if branchB.PopFront() != base {
		t.Errorf("branchB's tail should be the exact same node as base")
	}
	if len(base.ToSlice()) != 3 {
		t.Errorf("base should be unaffected by derived pushes, got %v", base.ToSlice())
	}
}

func TestPopFrontToEmpty(t *testing.T) {
	l := Cons(1, nil)
	l = l.PopFront()
	if !l.Empty() {
		t.Fatalf("expected empty list after popping the only element")
	}
}

func TestEmptyPanics(t *testing.T) {
	var l *List[int]
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("Front() on empty list should panic")
			}
		}()
		l.Front()
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("PopFront() on empty list should panic")
			}
		}()
		l.PopFront()
	}()
}

func TestValuesIterator(t *testing.T) {
	l := Cons("a", Cons("b", Cons("c", nil)))
	next := l.Values()
	var got []string
	for v, ok := next(); ok; v, ok = next() {
		got = append(got, v)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
}

func TestComparisons(t *testing.T) {
	a := Cons(1, Cons(2, nil))
	b := Cons(1, Cons(2, nil))
	c := Cons(1, Cons(3, nil))
	var empty *List[int]

	if !Equal(a, b) {
		t.Errorf("a and b should be equal")
	}
	if Equal(a, c) {
		t.Errorf("a and c should not be equal")
	}
	if !NotEqual(a, c) {
		t.Errorf("a and c should be unequal")
	}
	if !Less(a, c) {
		t.Errorf("a should be less than c (2 < 3 at second position)")
	}
	if !Greater(c, a) {
		t.Errorf("c should be greater than a")
	}
	if !Less(empty, a) {
		t.Errorf("empty list should be less than a nonempty one")
	}
	if Less(a, empty) {
		t.Errorf("nonempty list should not be less than empty")
	}
}

func TestDeepChainFinalizes(t *testing.T) {
	var l *List[int]
	for i := 0; i < finalizeThreshold*3; i++ {
		l = l.PushFront(i)
	}
	if len(l.ToSlice()) != finalizeThreshold*3 {
		t.Fatalf("ToSlice() length = %d, want %d", len(l.ToSlice()), finalizeThreshold*3)
	}
	l = nil
	runtime.GC()
	runtime.GC()
}
