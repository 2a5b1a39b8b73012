package floret

import (
	"fmt"

	"github.com/marisvale/floret/internal/engine/tree"
	"github.com/marisvale/floret/internal/model"
)

// Class is a predicted flower class.
type Class string

// The three classes a tree can predict.
const (
	Setosa     Class = "setosa"
	Versicolor Class = "versicolor"
	Virginica  Class = "virginica"
)

// Sample is one set of flower measurements to classify.
type Sample struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
}

// LabeledSample is a sample with its known class, used for training
// and evaluation.
type LabeledSample struct {
	Sample
	Class Class
}

// Accuracy counts correct predictions over a sample set.
type Accuracy struct {
	Correct int
	Total   int
}

// String renders the accuracy as "correct/total".
func (a Accuracy) String() string {
	return fmt.Sprintf("%d/%d", a.Correct, a.Total)
}

// Tree is a trained decision tree.
// It is immutable and safe for concurrent use.
type Tree struct {
	root *tree.Node
}

// Train builds a decision tree from labeled samples.
// It returns an error when samples is empty or a sample carries an
// unknown class.
func Train(samples []LabeledSample, opts ...Option) (*Tree, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	records := make([]model.Record, 0, len(samples))
	for i, s := range samples {
		rec, err := toRecord(s)
		if err != nil {
			return nil, fmt.Errorf("floret: sample %d: %w", i, err)
		}
		records = append(records, rec)
	}

	builder := tree.New(o.maxDepth, o.treeOpts...)
	root, err := builder.Build(records, o.rootPrefix)
	if err != nil {
		return nil, fmt.Errorf("floret: %w", err)
	}
	return &Tree{root: root}, nil
}

// Classify walks the tree for the given sample and returns the
// predicted class.
func (t *Tree) Classify(s Sample) Class {
	cls := t.root.Classify(model.Record{
		SepalLength: s.SepalLength,
		SepalWidth:  s.SepalWidth,
		PetalLength: s.PetalLength,
		PetalWidth:  s.PetalWidth,
	})
	return Class(cls.String())
}

// Evaluate classifies every sample and counts how many predictions
// match the known class.
func (t *Tree) Evaluate(samples []LabeledSample) Accuracy {
	acc := Accuracy{Total: len(samples)}
	for _, s := range samples {
		if t.Classify(s.Sample) == s.Class {
			acc.Correct++
		}
	}
	return acc
}

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int {
	n := 0
	t.root.Walk(func(*tree.Node) {
		n++
	})
	return n
}

func toRecord(s LabeledSample) (model.Record, error) {
	cls, err := toClass(s.Class)
	if err != nil {
		return model.Record{}, err
	}
	return model.Record{
		SepalLength: s.SepalLength,
		SepalWidth:  s.SepalWidth,
		PetalLength: s.PetalLength,
		PetalWidth:  s.PetalWidth,
		Class:       cls,
	}, nil
}

func toClass(c Class) (model.Class, error) {
	switch c {
	case Setosa:
		return model.Setosa, nil
	case Versicolor:
		return model.Versicolor, nil
	case Virginica:
		return model.Virginica, nil
	default:
		return 0, fmt.Errorf("unknown class %q", c)
	}
}
