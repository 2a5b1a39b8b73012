package tree

import (
	"math"
	"testing"

	"github.com/marisvale/floret/internal/model"
)

const epsilon = 1e-12

func rec(sl, sw, pl, pw float64, c model.Class) model.Record {
	return model.Record{SepalLength: sl, SepalWidth: sw, PetalLength: pl, PetalWidth: pw, Class: c}
}

// flat builds records whose four features all carry the same value.
func flat(values []float64, classes []model.Class) []model.Record {
	records := make([]model.Record, len(values))
	for i, v := range values {
		records[i] = rec(v, v, v, v, classes[i])
	}
	return records
}

func TestImpurity(t *testing.T) {
	cases := []struct {
		name string
		t    tally
		want float64
	}{
		{"pure", tally{4, 0, 0}, 0},
		{"two-way even", tally{2, 2, 0}, 1},
		{"three-way even", tally{3, 3, 3}, math.Log2(3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := impurity(tc.t); math.Abs(got-tc.want) > epsilon {
				t.Fatalf("impurity(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestGainZeroWhenSideEmpty(t *testing.T) {
	parent := tally{2, 2, 2}
	if g := gain(parent, tally{}); g != 0 {
		t.Fatalf("gain with empty left = %v, want 0", g)
	}
	if g := gain(parent, parent); g != 0 {
		t.Fatalf("gain with empty right = %v, want 0", g)
	}
}

func TestGainBounds(t *testing.T) {
	// For any partition, 0 <= gain <= parent impurity.
	records := []model.Record{
		rec(5.1, 3.5, 1.4, 0.2, model.Setosa),
		rec(4.9, 3.0, 1.4, 0.2, model.Setosa),
		rec(7.0, 3.2, 4.7, 1.4, model.Versicolor),
		rec(6.4, 3.2, 4.5, 1.5, model.Versicolor),
		rec(6.3, 3.3, 6.0, 2.5, model.Virginica),
		rec(5.8, 2.7, 5.1, 1.9, model.Virginica),
	}
	parent := countClasses(records)
	upper := impurity(parent)

	var left tally
	for i := 0; i < len(records); i++ {
		g := gain(parent, left)
		if g < 0 || g > upper+epsilon {
			t.Fatalf("gain at prefix %d = %v, outside [0, %v]", i, g, upper)
		}
		left[records[i].Class]++
	}
}

func TestGainPerfectSplit(t *testing.T) {
	// Separating 2 setosa from 2 versicolor removes all impurity.
	parent := tally{2, 2, 0}
	g := gain(parent, tally{2, 0, 0})
	if math.Abs(g-1) > epsilon {
		t.Fatalf("gain = %v, want 1", g)
	}
}

func TestBestSplitSeparatesClasses(t *testing.T) {
	records := flat(
		[]float64{1, 1, 5},
		[]model.Class{model.Setosa, model.Setosa, model.Versicolor},
	)
	for _, f := range model.Features {
		s := bestSplit(records, f)
		if s.gain <= 0 {
			t.Fatalf("feature %s: gain = %v, want > 0", f.Code(), s.gain)
		}
		if s.threshold != 3 {
			t.Fatalf("feature %s: threshold = %v, want 3 (midpoint of 1 and 5)", f.Code(), s.threshold)
		}
		if len(s.left) != 2 || len(s.right) != 1 {
			t.Fatalf("feature %s: partition %d/%d, want 2/1", f.Code(), len(s.left), len(s.right))
		}
	}
}

func TestBestSplitPartitionComplete(t *testing.T) {
	records := []model.Record{
		rec(5.1, 3.5, 1.4, 0.2, model.Setosa),
		rec(4.9, 3.0, 1.4, 0.2, model.Setosa),
		rec(7.0, 3.2, 4.7, 1.4, model.Versicolor),
		rec(6.4, 3.2, 4.5, 1.5, model.Versicolor),
		rec(6.3, 3.3, 6.0, 2.5, model.Virginica),
	}
	parent := countClasses(records)
	for _, f := range model.Features {
		s := bestSplit(records, f)
		if len(s.left)+len(s.right) != len(records) {
			t.Fatalf("feature %s: %d + %d != %d", f.Code(), len(s.left), len(s.right), len(records))
		}
		got := countClasses(s.left)
		for i, c := range countClasses(s.right) {
			got[i] += c
		}
		if got != parent {
			t.Fatalf("feature %s: class counts %v + children != parent %v", f.Code(), got, parent)
		}
		// Left strictly below the threshold, right at or above.
		for _, r := range s.left {
			if r.Feature(f) >= s.threshold {
				t.Fatalf("feature %s: left record %v not below threshold %v", f.Code(), r.Feature(f), s.threshold)
			}
		}
		for _, r := range s.right {
			if r.Feature(f) < s.threshold {
				t.Fatalf("feature %s: right record %v below threshold %v", f.Code(), r.Feature(f), s.threshold)
			}
		}
	}
}

func TestBestSplitNeverSplitsEqualValues(t *testing.T) {
	// All values equal: no candidate exists, the default index-1 split applies
	// and the achieved gain is 0.
	records := flat(
		[]float64{2, 2, 2, 2},
		[]model.Class{model.Setosa, model.Versicolor, model.Setosa, model.Virginica},
	)
	s := bestSplit(records, model.SepalLength)
	if s.gain != 0 {
		t.Fatalf("gain = %v, want 0", s.gain)
	}
	if len(s.left) != 1 || len(s.right) != 3 {
		t.Fatalf("default partition %d/%d, want 1/3", len(s.left), len(s.right))
	}
}

func TestBestSplitTieKeepsEarliest(t *testing.T) {
	// Candidates at indices 1 and 3 achieve the same gain (index 2 achieves
	// none); the earliest must win.
	records := flat(
		[]float64{1, 2, 3, 4},
		[]model.Class{model.Setosa, model.Versicolor, model.Setosa, model.Versicolor},
	)
	s := bestSplit(records, model.SepalLength)
	if s.gain <= 0 {
		t.Fatalf("gain = %v, want > 0", s.gain)
	}
	if len(s.left) != 1 {
		t.Fatalf("left size = %d, want 1 (earliest tied candidate)", len(s.left))
	}
	if s.threshold != 1.5 {
		t.Fatalf("threshold = %v, want 1.5", s.threshold)
	}
}

func TestBestSplitDoesNotMutateInput(t *testing.T) {
	records := flat(
		[]float64{4, 3, 2, 1},
		[]model.Class{model.Setosa, model.Setosa, model.Versicolor, model.Versicolor},
	)
	bestSplit(records, model.PetalWidth)
	for i, want := range []float64{4, 3, 2, 1} {
		if records[i].PetalWidth != want {
			t.Fatalf("input reordered: records[%d].PetalWidth = %v, want %v", i, records[i].PetalWidth, want)
		}
	}
}
