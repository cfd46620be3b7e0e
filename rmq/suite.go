package rmq

import "fmt"

// RunSuite exercises the package's scenario and returns an error describing
// the first assertion that fails, or nil if none do.
func RunSuite() error {
	table := New([]int{4, 1, 3, 2, 5, 0, 6})
	if got := table.RangeMin(0, 4); got != 1 {
		return fmt.Errorf("rmq: RangeMin(0,4) = %d, want 1", got)
	}
	if got := table.RangeMin(2, 6); got != 5 {
		return fmt.Errorf("rmq: RangeMin(2,6) = %d, want 5", got)
	}
	if got := table.RangeMin(4, 7); got != 5 {
		return fmt.Errorf("rmq: RangeMin(4,7) = %d, want 5", got)
	}
	return nil
}
