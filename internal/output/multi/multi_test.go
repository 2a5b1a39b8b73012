package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/marisvale/floret/internal/report"
)

// mockOutput records calls for test assertions.
type mockOutput struct {
	reports []report.Report
	closed  bool
	err     error // if set, Write and Close return this error
}

func (m *mockOutput) Write(_ context.Context, rep report.Report) error {
	m.reports = append(m.reports, rep)
	return m.err
}

func (m *mockOutput) Close() error {
	m.closed = true
	return m.err
}

func testReport(id string) report.Report {
	return report.Report{
		RunID:    id,
		MaxDepth: 3,
		Train:    report.Accuracy{Correct: 5, Total: 5},
	}
}

func TestFanOutDeliversToAll(t *testing.T) {
	a := &mockOutput{}
	b := &mockOutput{}
	c := &mockOutput{}
	m := New(a, b, c)

	if err := m.Write(context.Background(), testReport("run-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, out := range []*mockOutput{a, b, c} {
		if len(out.reports) != 1 {
			t.Errorf("output %d: got %d reports, want 1", i, len(out.reports))
		}
		if out.reports[0].RunID != "run-1" {
			t.Errorf("output %d: got run ID %q, want run-1", i, out.reports[0].RunID)
		}
	}
}

func TestErrorDoesNotPreventDelivery(t *testing.T) {
	failing := &mockOutput{err: errors.New("disk full")}
	healthy := &mockOutput{}
	m := New(failing, healthy)

	err := m.Write(context.Background(), testReport("run-2"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(healthy.reports) != 1 {
		t.Fatalf("healthy output got %d reports, want 1", len(healthy.reports))
	}
	if len(failing.reports) != 1 {
		t.Fatalf("failing output got %d reports, want 1", len(failing.reports))
	}
}

func TestCloseCallsAllOutputs(t *testing.T) {
	a := &mockOutput{err: errors.New("err-a")}
	b := &mockOutput{}
	m := New(a, b)

	if err := m.Close(); err == nil {
		t.Fatal("expected error, got nil")
	}
	if !a.closed || !b.closed {
		t.Errorf("Close not called on all outputs: a=%v b=%v", a.closed, b.closed)
	}
}
