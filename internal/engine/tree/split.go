package tree

import (
	"math"
	"sort"

	"github.com/marisvale/floret/internal/model"
)

// tally counts records per class.
type tally [model.NumClasses]int

func countClasses(records []model.Record) tally {
	var t tally
	for _, r := range records {
		t[r.Class]++
	}
	return t
}

func (t tally) total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

func (t tally) sub(other tally) tally {
	var out tally
	for i := range t {
		out[i] = t[i] - other[i]
	}
	return out
}

// linlog is x·log2(x) with the 0·log2(0) = 0 convention.
func linlog(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log2(x)
}

// impurity is the entropy of the class distribution in t:
// I(p,q,r) = -(p·log2 p + q·log2 q + r·log2 r).
func impurity(t tally) float64 {
	n := float64(t.total())
	sum := 0.0
	for _, c := range t {
		sum += linlog(float64(c) / n)
	}
	return -sum
}

// gain is the impurity reduction achieved by splitting a parent with class
// counts parent into a left group with counts left (right is the remainder).
// A split leaving either side empty has gain 0.
func gain(parent, left tally) float64 {
	right := parent.sub(left)
	n := parent.total()
	n1 := left.total()
	n2 := right.total()
	if n1 == 0 || n2 == 0 {
		return 0
	}
	fn := float64(n)
	return impurity(parent) -
		float64(n1)/fn*impurity(left) -
		float64(n2)/fn*impurity(right)
}

// split is the outcome of a best-split search for one feature: the achieved
// gain, the midpoint threshold, and the two record groups. left holds the
// records with feature value below the threshold.
type split struct {
	gain      float64
	threshold float64
	left      []model.Record
	right     []model.Record
}

// bestSplit finds the highest-gain binary split of records on feature f.
// Records are stable-sorted by f ascending; only positions where the value
// changes are candidates, since splitting between equal values separates
// nothing. Ties keep the earliest candidate. When no candidate improves on
// gain 0, the split falls back to index 1 so both groups stay non-empty.
// Requires len(records) >= 2. Pure: records is not modified.
func bestSplit(records []model.Record, f model.Feature) split {
	sorted := append([]model.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Feature(f) < sorted[j].Feature(f)
	})

	parent := countClasses(sorted)
	var left tally
	bestIdx := 1
	bestGain := 0.0
	for i := 1; i < len(sorted); i++ {
		left[sorted[i-1].Class]++ // left now covers sorted[:i]
		if sorted[i-1].Feature(f) == sorted[i].Feature(f) {
			continue
		}
		if g := gain(parent, left); g > bestGain {
			bestGain = g
			bestIdx = i
		}
	}

	return split{
		gain:      bestGain,
		threshold: (sorted[bestIdx-1].Feature(f) + sorted[bestIdx].Feature(f)) / 2,
		left:      sorted[:bestIdx:bestIdx],
		right:     sorted[bestIdx:],
	}
}
