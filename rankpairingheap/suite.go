package rankpairingheap

import "fmt"

// RunSuite exercises the package's scenario and returns an error describing
// the first assertion that fails, or nil if none do.
func RunSuite() error {
	h := New[string, int]()
	h.PushOrReprioritize("a", 3)
	h.PushOrReprioritize("b", 5)
	h.PushOrReprioritize("c", 1)
	h.PushOrReprioritize("c", 7)

	if v, p := h.Pop(); v != "c" || p != 7 {
		return fmt.Errorf("rankpairingheap: first pop = (%q, %d), want (c, 7)", v, p)
	}
	if v, p := h.Pop(); v != "b" || p != 5 {
		return fmt.Errorf("rankpairingheap: second pop = (%q, %d), want (b, 5)", v, p)
	}
	if v, p := h.Pop(); v != "a" || p != 3 {
		return fmt.Errorf("rankpairingheap: third pop = (%q, %d), want (a, 3)", v, p)
	}
	h.PushOrReprioritize("c", 100)
	if !h.Empty() {
		return fmt.Errorf("rankpairingheap: expected empty after pushing a popped value")
	}
	return nil
}
