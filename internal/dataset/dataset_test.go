package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/marisvale/floret/internal/model"
)

func TestParseLine(t *testing.T) {
	rec, err := ParseLine("5.1,3.5,1.4,0.2,0")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	want := model.Record{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: 0.2, Class: model.Setosa}
	if rec != want {
		t.Fatalf("got %+v, want %+v", rec, want)
	}
}

func TestParseLineWhitespace(t *testing.T) {
	rec, err := ParseLine("  6.3, 2.9, 5.6, 1.8, 2\n")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if rec.Class != model.Virginica {
		t.Fatalf("got class %v, want virginica", rec.Class)
	}
}

func TestParseLineFullWidth(t *testing.T) {
	// Full-width digits and commas, as exported by some spreadsheets.
	// NFKC folds them to ASCII before tokenizing.
	rec, err := ParseLine("５.１，３.５，１.４，０.２，０")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if rec.SepalLength != 5.1 || rec.Class != model.Setosa {
		t.Fatalf("got %+v", rec)
	}
}

func TestParseLineMalformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"too few tokens", "5.1,3.5,1.4,0"},
		{"too many tokens", "5.1,3.5,1.4,0.2,0,9"},
		{"non-numeric feature", "5.1,petal,1.4,0.2,0"},
		{"non-integer class", "5.1,3.5,1.4,0.2,zero"},
		{"fractional class", "5.1,3.5,1.4,0.2,1.5"},
		{"class out of range", "5.1,3.5,1.4,0.2,3"},
		{"nan feature", "NaN,3.5,1.4,0.2,0"},
		{"inf feature", "+Inf,3.5,1.4,0.2,0"},
		{"empty", ","},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseLine(tc.line); !errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("ParseLine(%q) error = %v, want ErrMalformedRecord", tc.line, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	input := "5.1,3.5,1.4,0.2,0\n\n7.0,3.2,4.7,1.4,1\n6.3,3.3,6.0,2.5,2\n"
	records, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[1].Class != model.Versicolor {
		t.Fatalf("records[1].Class = %v, want versicolor", records[1].Class)
	}
}

func TestLoadReportsLineNumber(t *testing.T) {
	input := "5.1,3.5,1.4,0.2,0\nbogus\n"
	_, err := Load(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("error = %v, want ErrMalformedRecord", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error %q does not name line 2", err)
	}
}

func TestLoadEmpty(t *testing.T) {
	records, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}
