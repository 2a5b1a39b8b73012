package tree

import "math/rand"

// Chooser picks uniformly among n alternatives. Leaf assignment uses it to
// break majority-class ties; injecting a stub makes tie-breaks deterministic
// in tests.
type Chooser interface {
	// Choose returns an index in [0, n). n is always >= 1.
	Choose(n int) int
}

// NewRandChooser returns a Chooser drawing from r.
func NewRandChooser(r *rand.Rand) Chooser {
	return randChooser{r: r}
}

type randChooser struct {
	r *rand.Rand
}

func (c randChooser) Choose(n int) int {
	return c.r.Intn(n)
}

// defaultChooser draws from math/rand's shared, auto-seeded source.
type defaultChooser struct{}

func (defaultChooser) Choose(n int) int {
	return rand.Intn(n)
}
