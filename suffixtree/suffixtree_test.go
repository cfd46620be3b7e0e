package suffixtree

import (
	"math/rand"
	"sort"
	"testing"
)

func TestLongestOverlapScenario(t *testing.T) {
	tree := New([]byte("ACGTGACA"))
	got := tree.LongestOverlap([]byte("ACAGCCT"))
	if got != 3 {
		t.Fatalf("LongestOverlap = %d, want 3", got)
	}
}

func TestSubstringLocationsScenario(t *testing.T) {
	tree := New([]byte("AGTGCGATAGATGATAGAAGATCGCTCGCTCCGCGATA"))
	got := tree.SubstringLocations([]byte("GATA"))
	sort.Ints(got)
	want := []int{5, 12, 34}
	if len(got) != len(want) {
		t.Fatalf("SubstringLocations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SubstringLocations = %v, want %v", got, want)
		}
	}
}

func TestEmptyTree(t *testing.T) {
	tree := New([]byte(""))
	if got := tree.LongestOverlap([]byte("ABC")); got != 0 {
		t.Fatalf("LongestOverlap on empty tree = %d, want 0", got)
	}
	if got := tree.SubstringLocations([]byte("")); len(got) != 0 {
		t.Fatalf("SubstringLocations(\"\") = %v, want empty", got)
	}
}

func TestSentinelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for text containing sentinel byte")
		}
	}()
	New([]byte{'a', 0, 'b'})
}

func bruteSubstringLocations(s, q string) []int {
	var result []int
	if len(q) == 0 {
		return result
	}
	for i := 0; i+len(q) <= len(s); i++ {
		if s[i:i+len(q)] == q {
			result = append(result, i)
		}
	}
	return result
}

func bruteLongestOverlap(s, q string) int {
	best := 0
	for k := 1; k <= len(q) && k <= len(s); k++ {
		if q[:k] == s[len(s)-k:] {
			best = k
		}
	}
	return best
}

func TestAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := "abc"
	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(40)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		tree := New(buf)

		for q := 0; q < 10; q++ {
			qn := rng.Intn(6)
			qbuf := make([]byte, qn)
			for i := range qbuf {
				qbuf[i] = alphabet[rng.Intn(len(alphabet))]
			}

			gotLoc := tree.SubstringLocations(qbuf)
			sort.Ints(gotLoc)
			wantLoc := bruteSubstringLocations(string(buf), string(qbuf))
			if len(gotLoc) != len(wantLoc) {
				t.Fatalf("text=%q query=%q: SubstringLocations = %v, want %v", buf, qbuf, gotLoc, wantLoc)
			}
			for i := range wantLoc {
				if gotLoc[i] != wantLoc[i] {
					t.Fatalf("text=%q query=%q: SubstringLocations = %v, want %v", buf, qbuf, gotLoc, wantLoc)
				}
			}

			gotOverlap := tree.LongestOverlap(qbuf)
			wantOverlap := bruteLongestOverlap(string(buf), string(qbuf))
			if gotOverlap != wantOverlap {
				t.Fatalf("text=%q query=%q: LongestOverlap = %d, want %d", buf, qbuf, gotOverlap, wantOverlap)
			}
		}
	}
}
