package model

import "fmt"

// Class is one of the three flower classes a record can carry.
type Class int

const (
	Setosa Class = iota
	Versicolor
	Virginica
)

// NumClasses is the size of the class enumeration.
const NumClasses = 3

// String returns the class name ("setosa", "versicolor", "virginica").
func (c Class) String() string {
	switch c {
	case Setosa:
		return "setosa"
	case Versicolor:
		return "versicolor"
	case Virginica:
		return "virginica"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Valid reports whether c is a member of the class enumeration.
func (c Class) Valid() bool {
	return c >= Setosa && c <= Virginica
}

// Feature identifies one of the four measured features of a record.
type Feature int

const (
	SepalLength Feature = iota
	SepalWidth
	PetalLength
	PetalWidth
)

// NumFeatures is the size of the feature enumeration.
const NumFeatures = 4

// Features lists all features in priority order: when two features achieve
// the same split gain, the earlier one in this order wins.
var Features = [NumFeatures]Feature{SepalLength, SepalWidth, PetalLength, PetalWidth}

// Code returns the short feature code used in printed reports.
func (f Feature) Code() string {
	switch f {
	case SepalLength:
		return "SL"
	case SepalWidth:
		return "SW"
	case PetalLength:
		return "PL"
	case PetalWidth:
		return "PW"
	default:
		return fmt.Sprintf("feature(%d)", int(f))
	}
}

// Record is one labeled data point: four measurements and a class.
// Records are immutable after construction.
type Record struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
	Class       Class
}

// Feature returns the value of the given feature for this record.
func (r Record) Feature(f Feature) float64 {
	switch f {
	case SepalLength:
		return r.SepalLength
	case SepalWidth:
		return r.SepalWidth
	case PetalLength:
		return r.PetalLength
	default:
		return r.PetalWidth
	}
}

// Label returns the record's class.
func (r Record) Label() Class {
	return r.Class
}

// String renders the record the way it appears in the input format:
// four feature values and the numeric class code, comma-separated.
func (r Record) String() string {
	return fmt.Sprintf("%.1f,%.1f,%.1f,%.1f,%d",
		r.SepalLength, r.SepalWidth, r.PetalLength, r.PetalWidth, int(r.Class))
}
