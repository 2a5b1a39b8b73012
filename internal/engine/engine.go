// Package engine orchestrates a full run: train/validation split, tree
// build, and accuracy evaluation of both slices.
package engine

import (
	"errors"
	"fmt"

	"github.com/marisvale/floret/internal/engine/tree"
	"github.com/marisvale/floret/internal/model"
)

var (
	// ErrInvalidRange marks a validation slice outside the dataset bounds.
	ErrInvalidRange = errors.New("invalid validation range")
	// ErrEmptyDataset marks a run with no training records left.
	ErrEmptyDataset = errors.New("empty training set")
)

// Params configures a single run.
type Params struct {
	ValidationStart int    // inclusive index into the full record sequence
	ValidationEnd   int    // exclusive
	MaxDepth        int    // maximum splits below the root prefix
	RootPrefix      string // optional position label for the root
}

// Evaluation is the per-slice classification outcome: one hit flag per
// record plus the tallied accuracy.
type Evaluation struct {
	Correct int
	Total   int
	Hits    []bool
}

// String renders the accuracy as "correct/total".
func (e Evaluation) String() string {
	return fmt.Sprintf("%d/%d", e.Correct, e.Total)
}

// Result is the outcome of a run: the built tree and both evaluations.
type Result struct {
	Params     Params
	Tree       *tree.Node
	Train      Evaluation
	Validation Evaluation
}

// Engine builds and evaluates decision trees. Tree options (such as an
// injected tie-break chooser) are fixed at construction.
type Engine struct {
	treeOpts []tree.Option
}

// New creates an Engine. opts are forwarded to every tree build.
func New(opts ...tree.Option) *Engine {
	return &Engine{treeOpts: opts}
}

// Run splits records into a training set and the validation slice
// [p.ValidationStart, p.ValidationEnd), builds a depth-bounded tree over
// the training set, and classifies both slices. Range and dataset
// validation happens before any tree is built.
func (e *Engine) Run(records []model.Record, p Params) (*Result, error) {
	if p.ValidationStart < 0 || p.ValidationEnd > len(records) || p.ValidationStart > p.ValidationEnd {
		return nil, fmt.Errorf("%w: [%d,%d) over %d records",
			ErrInvalidRange, p.ValidationStart, p.ValidationEnd, len(records))
	}

	validation := append([]model.Record(nil), records[p.ValidationStart:p.ValidationEnd]...)
	training := make([]model.Record, 0, len(records)-len(validation))
	training = append(training, records[:p.ValidationStart]...)
	training = append(training, records[p.ValidationEnd:]...)

	if len(training) == 0 {
		return nil, fmt.Errorf("%w: validation slice covers all %d records", ErrEmptyDataset, len(records))
	}

	root, err := tree.New(p.MaxDepth, e.treeOpts...).Build(training, p.RootPrefix)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}

	return &Result{
		Params:     p,
		Tree:       root,
		Train:      evaluate(root, training),
		Validation: evaluate(root, validation),
	}, nil
}

// evaluate classifies every record against the tree and tallies hits.
func evaluate(root *tree.Node, records []model.Record) Evaluation {
	ev := Evaluation{Total: len(records), Hits: make([]bool, len(records))}
	for i, r := range records {
		if root.Classify(r) == r.Label() {
			ev.Hits[i] = true
			ev.Correct++
		}
	}
	return ev
}
