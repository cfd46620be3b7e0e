package rankpairingheap

import (
	"math/rand"
	"testing"
)

func TestScenario(t *testing.T) {
	h := New[string, int]()
	h.PushOrReprioritize("a", 3)
	h.PushOrReprioritize("b", 5)
	h.PushOrReprioritize("c", 1)
	h.PushOrReprioritize("c", 7)

	v, p := h.Pop()
	if v != "c" || p != 7 {
		t.Fatalf("first pop = (%q, %d), want (c, 7)", v, p)
	}
	v, p = h.Pop()
	if v != "b" || p != 5 {
		t.Fatalf("second pop = (%q, %d), want (b, 5)", v, p)
	}
	v, p = h.Pop()
	if v != "a" || p != 3 {
		t.Fatalf("third pop = (%q, %d), want (a, 3)", v, p)
	}

	h.PushOrReprioritize("c", 100)
	if !h.Empty() {
		t.Fatalf("expected empty after pushing a popped value")
	}
}

func TestReprioritizeDownwardIsNoOp(t *testing.T) {
	h := New[string, int]()
	h.PushOrReprioritize("x", 10)
	h.PushOrReprioritize("x", 1)
	_, p := h.Top()
	if p != 10 {
		t.Fatalf("priority after downward reprioritize = %d, want 10", p)
	}
}

func TestEmptyPanics(t *testing.T) {
	h := New[int, int]()
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("Top() on empty heap should panic")
			}
		}()
		h.Top()
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("Pop() on empty heap should panic")
			}
		}()
		h.Pop()
	}()
}

func TestPopOrderRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		h := New[int, int]()
		n := 1 + rng.Intn(200)
		priorities := make(map[int]int)
		for i := 0; i < n; i++ {
			priorities[i] = rng.Intn(1000)
		}
		// shuffle insertion order and occasionally reprioritize upward
		order := rng.Perm(n)
		for _, v := range order {
			h.PushOrReprioritize(v, priorities[v])
		}
		for v := range priorities {
			if rng.Intn(4) == 0 {
				bump := priorities[v] + rng.Intn(500)
				h.PushOrReprioritize(v, bump)
				priorities[v] = bump
			}
		}

		if h.Size() != n {
			t.Fatalf("Size() = %d, want %d", h.Size(), n)
		}

		lastPriority := 1 << 31
		for !h.Empty() {
			_, p := h.Pop()
			if p > lastPriority {
				t.Fatalf("pop order violated: got priority %d after %d", p, lastPriority)
			}
			lastPriority = p
		}
	}
}
