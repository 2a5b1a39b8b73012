// Package report turns a run result into the printable report payload:
// run parameters, a depth-first node dump, and both accuracies.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marisvale/floret/internal/engine"
	"github.com/marisvale/floret/internal/engine/tree"
)

// Accuracy is a correct/total pair.
type Accuracy struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// String renders the accuracy as "correct/total".
func (a Accuracy) String() string {
	return fmt.Sprintf("%d/%d", a.Correct, a.Total)
}

// Node is one dumped tree node. Internal nodes carry the split feature code
// as ID; leaves carry the predicted class name and a zero threshold.
type Node struct {
	ID        string   `json:"id"`
	Leaf      bool     `json:"leaf"`
	Class     int      `json:"class"` // numeric class code, meaningful on leaves
	Threshold float64  `json:"threshold"`
	Position  string   `json:"position"` // "Root" for the root node
	Records   []string `json:"records,omitempty"`
}

// Report is the full payload rendered by the output sinks.
type Report struct {
	RunID           string    `json:"run_id"`
	CreatedAt       time.Time `json:"created_at"`
	ValidationStart int       `json:"validation_start"`
	ValidationEnd   int       `json:"validation_end"`
	MaxDepth        int       `json:"max_depth"`
	RootPrefix      string    `json:"root_prefix,omitempty"`
	Nodes           []Node    `json:"nodes"`
	Train           Accuracy  `json:"train"`
	Validation      Accuracy  `json:"validation"`
}

// New builds a Report from a run result, assigning it a fresh run ID.
// Nodes are listed depth-first, preorder, matching the build order.
func New(res *engine.Result) Report {
	rep := Report{
		RunID:           uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		ValidationStart: res.Params.ValidationStart,
		ValidationEnd:   res.Params.ValidationEnd,
		MaxDepth:        res.Params.MaxDepth,
		RootPrefix:      res.Params.RootPrefix,
		Train:           Accuracy{Correct: res.Train.Correct, Total: res.Train.Total},
		Validation:      Accuracy{Correct: res.Validation.Correct, Total: res.Validation.Total},
	}

	res.Tree.Walk(func(n *tree.Node) {
		dump := Node{
			Leaf:      n.Leaf,
			Threshold: n.Threshold,
			Position:  position(n.Position),
			Records:   make([]string, len(n.Records)),
		}
		if n.Leaf {
			dump.ID = n.Class.String()
			dump.Class = int(n.Class)
		} else {
			dump.ID = n.Feature.Code()
		}
		for i, r := range n.Records {
			dump.Records[i] = r.String()
		}
		rep.Nodes = append(rep.Nodes, dump)
	})
	return rep
}

func position(p string) string {
	if p == "" {
		return "Root"
	}
	return p
}
