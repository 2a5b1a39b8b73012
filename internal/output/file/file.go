// Package file appends run reports as NDJSON lines to a history file.
package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/marisvale/floret/internal/output"
	"github.com/marisvale/floret/internal/report"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Output.
type Option func(*Output)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// WithRecords includes the per-node record dumps in the written reports.
// Default: structure and accuracies only, which keeps history lines small.
func WithRecords() Option {
	return func(o *Output) { o.includeRecords = true }
}

// Output appends one JSON line per run report, building a run history file.
type Output struct {
	mu             sync.Mutex
	w              *bufio.Writer
	f              *os.File
	bufSize        int
	includeRecords bool
}

// New creates a file output appending to path, creating it if needed.
func New(path string, opts ...Option) (*Output, error) {
	o := &Output{bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(o)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	return o, nil
}

// Write JSON-encodes the report and appends it as a line.
func (o *Output) Write(_ context.Context, rep report.Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := json.Marshal(output.FormatReport(rep, o.includeRecords))
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')
	if _, err := o.w.Write(data); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes buffered data and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	if err := o.f.Close(); err != nil {
		return fmt.Errorf("file output: close: %w", err)
	}
	return nil
}
