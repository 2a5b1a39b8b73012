package floret

import (
	"math/rand"

	"github.com/marisvale/floret/internal/engine/tree"
)

type options struct {
	maxDepth   int
	rootPrefix string
	treeOpts   []tree.Option
}

// Option configures training.
type Option func(*options)

// WithMaxDepth bounds how deep the tree may grow below the root.
// Default: 5.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithRootPrefix sets a position-label prefix for the root node.
// The prefix counts toward the depth bound.
func WithRootPrefix(prefix string) Option {
	return func(o *options) {
		o.rootPrefix = prefix
	}
}

// WithRand supplies the randomness used to break ties between equally
// common classes at a leaf. Use a seeded source for reproducible trees.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.treeOpts = append(o.treeOpts, tree.WithChooser(tree.NewRandChooser(r)))
	}
}

func defaultOptions() options {
	return options{maxDepth: 5}
}
