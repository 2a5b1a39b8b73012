// Package tree builds binary decision trees over labeled records by
// recursive information-gain splitting, and classifies records by walking
// the built tree.
package tree

import (
	"errors"

	"github.com/marisvale/floret/internal/model"
)

// ErrNoRecords is returned when Build is given an empty record set.
var ErrNoRecords = errors.New("no records to build tree from")

// Node is one node of a built decision tree. A node is either a leaf
// (Leaf true, Class set, no children) or an internal node (Leaf false,
// Feature and Threshold set, both children present). The tree is
// write-once: nodes are never modified after Build returns.
type Node struct {
	Position  string // path from the root; "" for the root, then "L"/"R" appended per split
	Records   []model.Record
	Leaf      bool
	Class     model.Class   // leaf only
	Feature   model.Feature // internal only
	Threshold float64       // internal only; zero on leaves
	Left      *Node
	Right     *Node
}

// Classify walks the tree from n and returns the predicted class for r.
// At each internal node a feature value strictly below the threshold routes
// left, otherwise right. Deterministic for any well-formed tree.
func (n *Node) Classify(r model.Record) model.Class {
	cur := n
	for !cur.Leaf {
		if r.Feature(cur.Feature) < cur.Threshold {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return cur.Class
}

// Walk visits every node depth-first, preorder (node, left subtree, right
// subtree) — the order the printed report lists nodes in.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	if n.Left != nil {
		n.Left.Walk(fn)
	}
	if n.Right != nil {
		n.Right.Walk(fn)
	}
}

// Depth returns the number of splits between the root prefix and this node.
func (n *Node) Depth(prefix string) int {
	return len(n.Position) - len(prefix)
}

// Builder builds decision trees bounded by a maximum depth. The depth bound
// and tie-break source are fixed at construction; a Builder is safe to reuse
// across independent builds.
type Builder struct {
	maxDepth int
	chooser  Chooser
}

// Option configures a Builder.
type Option func(*Builder)

// WithChooser sets the tie-break source used by leaf assignment.
// Default: math/rand's shared source.
func WithChooser(c Chooser) Option {
	return func(b *Builder) { b.chooser = c }
}

// New creates a Builder with the given depth bound. maxDepth counts splits
// below the root prefix: a bound of 0 makes the root a leaf.
func New(maxDepth int, opts ...Option) *Builder {
	b := &Builder{
		maxDepth: maxDepth,
		chooser:  defaultChooser{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build constructs a tree over records, rooted at the given position prefix.
// The depth bound is relative to the prefix, so a subtree built with prefix
// "LR" and bound 3 stops at position length 5.
func (b *Builder) Build(records []model.Record, prefix string) (*Node, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return b.build(records, prefix, b.maxDepth+len(prefix)), nil
}

// build recursively splits until a stopping condition holds. Feature ties on
// equal maximum gain go to the earlier feature in model.Features order.
func (b *Builder) build(records []model.Record, position string, bound int) *Node {
	node := &Node{Position: position, Records: records}

	if len(records) == 1 || len(position) >= bound || uniform(records) {
		b.makeLeaf(node)
		return node
	}

	var best split
	bestFeature := model.Features[0]
	for i, f := range model.Features {
		s := bestSplit(records, f)
		if i == 0 || s.gain > best.gain {
			best = s
			bestFeature = f
		}
	}

	// No feature separates the remaining records at all.
	if best.gain == 0 {
		b.makeLeaf(node)
		return node
	}

	node.Feature = bestFeature
	node.Threshold = best.threshold
	node.Left = b.build(best.left, position+"L", bound)
	node.Right = b.build(best.right, position+"R", bound)
	return node
}

// makeLeaf assigns the majority class, breaking ties uniformly at random
// among the tied classes.
func (b *Builder) makeLeaf(node *Node) {
	counts := countClasses(node.Records)

	max := counts[0]
	for _, c := range counts[1:] {
		if c > max {
			max = c
		}
	}
	var tied []model.Class
	for class, c := range counts {
		if c == max {
			tied = append(tied, model.Class(class))
		}
	}

	node.Leaf = true
	if len(tied) == 1 {
		node.Class = tied[0]
	} else {
		node.Class = tied[b.chooser.Choose(len(tied))]
	}
}

// uniform reports whether every record shares one class.
func uniform(records []model.Record) bool {
	for _, r := range records[1:] {
		if r.Class != records[0].Class {
			return false
		}
	}
	return true
}
