package suffixtree

import (
	"fmt"
	"sort"
)

// RunSuite exercises the package's scenarios and returns an error describing
// the first assertion that fails, or nil if none do.
func RunSuite() error {
	overlapTree := New([]byte("ACGTGACA"))
	if got := overlapTree.LongestOverlap([]byte("ACAGCCT")); got != 3 {
		return fmt.Errorf("suffixtree: LongestOverlap = %d, want 3", got)
	}

	locTree := New([]byte("AGTGCGATAGATGATAGAAGATCGCTCGCTCCGCGATA"))
	got := locTree.SubstringLocations([]byte("GATA"))
	sort.Ints(got)
	want := []int{5, 12, 34}
	if len(got) != len(want) {
		return fmt.Errorf("suffixtree: SubstringLocations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("suffixtree: SubstringLocations = %v, want %v", got, want)
		}
	}

	emptyTree := New([]byte(""))
	if got := emptyTree.LongestOverlap([]byte("ABC")); got != 0 {
		return fmt.Errorf("suffixtree: LongestOverlap on empty tree = %d, want 0", got)
	}
	if got := emptyTree.SubstringLocations([]byte("")); len(got) != 0 {
		return fmt.Errorf("suffixtree: SubstringLocations(\"\") = %v, want empty", got)
	}

	return nil
}
