package unionfind

import (
	"fmt"
	"reflect"
)

// RunSuite exercises the package's scenario and returns an error describing
// the first assertion that fails, or nil if none do.
func RunSuite() error {
	u := New(10)
	u.Union(0, 1)
	u.Union(2, 3)
	u.Union(3, 4)
	u.Union(5, 6)
	u.Union(2, 4)

	if got := u.GroupSize(4); got != 3 {
		return fmt.Errorf("unionfind: GroupSize(4) = %d, want 3", got)
	}
	if u.Find(2) != u.Find(4) {
		return fmt.Errorf("unionfind: Find(2) = %d, Find(4) = %d, want equal", u.Find(2), u.Find(4))
	}
	if got := u.Group(3); !reflect.DeepEqual(got, []int{2, 3, 4}) {
		return fmt.Errorf("unionfind: Group(3) = %v, want [2 3 4]", got)
	}
	return nil
}
