// Package dataset loads labeled records from the CSV-ish input format:
// one record per line, four feature values followed by a numeric class code.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/marisvale/floret/internal/model"
)

// ErrMalformedRecord marks an input line that does not parse into exactly
// five well-formed tokens. Callers must reject such lines; a malformed line
// never yields a zero-valued record.
var ErrMalformedRecord = errors.New("malformed record")

const tokensPerLine = 5

// ParseLine parses one input line ("5.1,3.5,1.4,0.2,0") into a Record.
// The line is NFKC-normalized first so full-width digits and separators
// from spreadsheet exports parse the same as ASCII.
func ParseLine(line string) (model.Record, error) {
	line = strings.TrimSpace(norm.NFKC.String(line))

	tokens := strings.Split(line, ",")
	if len(tokens) != tokensPerLine {
		return model.Record{}, fmt.Errorf("%w: got %d tokens, want %d", ErrMalformedRecord, len(tokens), tokensPerLine)
	}

	var features [model.NumFeatures]float64
	for i, tok := range tokens[:model.NumFeatures] {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return model.Record{}, fmt.Errorf("%w: feature %d: %q is not a number", ErrMalformedRecord, i, tok)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return model.Record{}, fmt.Errorf("%w: feature %d: %q is not finite", ErrMalformedRecord, i, tok)
		}
		features[i] = v
	}

	code, err := strconv.Atoi(strings.TrimSpace(tokens[model.NumFeatures]))
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: class code %q is not an integer", ErrMalformedRecord, tokens[model.NumFeatures])
	}
	class := model.Class(code)
	if !class.Valid() {
		return model.Record{}, fmt.Errorf("%w: class code %d out of range", ErrMalformedRecord, code)
	}

	return model.Record{
		SepalLength: features[0],
		SepalWidth:  features[1],
		PetalLength: features[2],
		PetalWidth:  features[3],
		Class:       class,
	}, nil
}

// Load reads records from r, one per line. Blank lines are skipped;
// any malformed line fails the whole load with its line number.
func Load(r io.Reader) ([]model.Record, error) {
	var records []model.Record
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return records, nil
}

// LoadFile reads records from the file at path, or from stdin when path
// is "-" or empty.
func LoadFile(path string) ([]model.Record, error) {
	if path == "" || path == "-" {
		return Load(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
