package minmaxheap

import "fmt"

// RunSuite exercises the scenario from the package's test suite and returns
// an error describing the first assertion that fails, or nil if none do.
// It shares no state with the package's *_test.go files but checks the same
// invariants, so it can be run from cmd/harness without the testing package.
func RunSuite() error {
	h := From([]int{5, 1, 9, 3, 7, 2, 8, 4, 6})
	if h.Min() != 1 {
		return fmt.Errorf("minmaxheap: Min() = %d, want 1", h.Min())
	}
	if h.Max() != 9 {
		return fmt.Errorf("minmaxheap: Max() = %d, want 9", h.Max())
	}
	h.PopMin()
	h.PopMax()
	if h.Min() != 2 {
		return fmt.Errorf("minmaxheap: Min() after pops = %d, want 2", h.Min())
	}
	if h.Max() != 8 {
		return fmt.Errorf("minmaxheap: Max() after pops = %d, want 8", h.Max())
	}
	return nil
}
