package rmq

import (
	"math/rand"
	"testing"
)

func TestScenario(t *testing.T) {
	table := New([]int{4, 1, 3, 2, 5, 0, 6})
	if got := table.RangeMin(0, 4); got != 1 {
		t.Errorf("RangeMin(0,4) = %d, want 1", got)
	}
	if got := table.RangeMin(2, 6); got != 5 {
		t.Errorf("RangeMin(2,6) = %d, want 5", got)
	}
	if got := table.RangeMin(4, 7); got != 5 {
		t.Errorf("RangeMin(4,7) = %d, want 5", got)
	}
}

func TestInvalidRangePanics(t *testing.T) {
	table := New([]int{1, 2, 3})
	cases := []struct{ lo, hi int }{
		{0, 0},
		{2, 1},
		{-1, 2},
		{0, 4},
		{3, 3},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("RangeMin(%d,%d) should have panicked", c.lo, c.hi)
				}
			}()
			table.RangeMin(c.lo, c.hi)
		}()
	}
}

func TestEmptyConstruction(t *testing.T) {
	table := New([]int{})
	if table.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", table.Len())
	}
	defer func() {
		if recover() == nil {
			t.Errorf("RangeMin on empty table should panic")
		}
	}()
	table.RangeMin(0, 1)
}

func TestSingleElement(t *testing.T) {
	table := New([]int{42})
	if got := table.RangeMin(0, 1); got != 0 {
		t.Errorf("RangeMin(0,1) = %d, want 0", got)
	}
}

// TestBlockPlusOneBoundary exercises the construction boundary where the sequence length is
// exactly one more than the block size, so the final block holds a single
// element (spec's sign-of-block-boundary callout on greatest_smaller_power_of_2).
func TestBlockPlusOneBoundary(t *testing.T) {
	table := New([]int{0, 1, 2, 3})
	b := table.blockSize
	data := make([]int, b+1)
	for i := range data {
		data[i] = b + 1 - i
	}
	table = New(data)
	got := table.RangeMin(0, len(data))
	if data[got] != 1 {
		t.Fatalf("RangeMin over full range = index %d (value %d), want value 1", got, data[got])
	}
	lastIdx := len(data) - 1
	got = table.RangeMin(lastIdx, lastIdx+1)
	if got != lastIdx {
		t.Fatalf("RangeMin(%d,%d) = %d, want %d", lastIdx, lastIdx+1, got, lastIdx)
	}
}

func bruteRangeMin(data []int, lo, hi int) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if data[i] < data[best] {
			best = i
		}
	}
	return best
}

func TestAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(80)
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(50)
		}
		table := New(data)
		if table.Len() != n {
			t.Fatalf("Len() = %d, want %d", table.Len(), n)
		}
		for q := 0; q < 20 && n > 0; q++ {
			lo := rng.Intn(n)
			hi := lo + 1 + rng.Intn(n-lo)
			got := table.RangeMin(lo, hi)
			want := bruteRangeMin(data, lo, hi)
			if data[got] != data[want] {
				t.Fatalf("n=%d data=%v RangeMin(%d,%d) = %d (value %d), want value %d", n, data, lo, hi, got, data[got], data[want])
			}
			if got < lo || got >= hi {
				t.Fatalf("RangeMin(%d,%d) = %d out of range", lo, hi, got)
			}
		}
	}
}
