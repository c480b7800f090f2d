package recommend

import "math/rand"

// Selector picks one of n text templates and returns its index in [0, n).
type Selector interface {
	Select(n int) int
}

// SelectorFunc adapts a plain function to Selector.
type SelectorFunc func(n int) int

func (f SelectorFunc) Select(n int) int { return f(n) }

// RandomSelector picks templates uniformly at random.
func RandomSelector() Selector {
	return SelectorFunc(func(n int) int { return rand.Intn(n) })
}

// FixedSelector always picks the template at index i (wrapped into range).
func FixedSelector(i int) Selector {
	return SelectorFunc(func(n int) int {
		if i < 0 {
			return 0
		}
		return i % n
	})
}

func pick(sel Selector, options []string) string {
	i := sel.Select(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}
