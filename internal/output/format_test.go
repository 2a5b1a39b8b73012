package output

import (
	"testing"

	"github.com/marisvale/floret/internal/report"
)

func sampleReport() report.Report {
	return report.Report{
		RunID: "test-run",
		Nodes: []report.Node{
			{ID: "PL", Position: "Root", Threshold: 2.45, Records: []string{"5.1,3.5,1.4,0.2,0"}},
			{ID: "setosa", Leaf: true, Position: "L", Records: []string{"5.1,3.5,1.4,0.2,0"}},
		},
		Train:      report.Accuracy{Correct: 1, Total: 1},
		Validation: report.Accuracy{Correct: 0, Total: 0},
	}
}

func TestFormatReportIncludeRecords(t *testing.T) {
	rep := sampleReport()
	got := FormatReport(rep, true)
	if len(got.Nodes[0].Records) != 1 {
		t.Fatal("records dropped despite includeRecords=true")
	}
}

func TestFormatReportStripRecords(t *testing.T) {
	rep := sampleReport()
	got := FormatReport(rep, false)
	for i, n := range got.Nodes {
		if n.Records != nil {
			t.Fatalf("node %d still carries records", i)
		}
	}
	// Original untouched.
	if len(rep.Nodes[0].Records) != 1 {
		t.Fatal("FormatReport mutated its input")
	}
	if got.Nodes[0].ID != "PL" || got.Nodes[1].ID != "setosa" {
		t.Fatal("structure fields lost while stripping records")
	}
}
