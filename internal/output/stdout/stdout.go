// Package stdout renders run reports to standard output, either as a
// human-readable table or as JSON.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/marisvale/floret/internal/output"
	"github.com/marisvale/floret/internal/report"
)

// Format selects the stdout rendering.
type Format string

const (
	// Table renders the report as bordered text tables.
	Table Format = "table"
	// JSON encodes the report as a single JSON document.
	JSON Format = "json"
)

// Output writes run reports to stdout.
type Output struct {
	format         Format
	pretty         bool // indent JSON; ignored for tables
	includeRecords bool
}

// New creates a stdout Output. includeRecords controls whether the per-node
// record dumps appear; pretty indents JSON output.
func New(format Format, pretty, includeRecords bool) *Output {
	return &Output{format: format, pretty: pretty, includeRecords: includeRecords}
}

func (o *Output) Write(_ context.Context, rep report.Report) error {
	formatted := output.FormatReport(rep, o.includeRecords)
	if o.format == JSON {
		enc := json.NewEncoder(os.Stdout)
		if o.pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(formatted); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
		return nil
	}
	renderTables(formatted)
	return nil
}

func (o *Output) Close() error {
	return nil
}

// renderTables writes a summary table and the node dump table.
func renderTables(rep report.Report) {
	summary := table.NewWriter()
	summary.SetOutputMirror(os.Stdout)
	summary.SetTitle("RUN %s", rep.RunID)
	validation := "empty"
	if rep.ValidationEnd > rep.ValidationStart {
		validation = fmt.Sprintf("records %d to %d", rep.ValidationStart, rep.ValidationEnd-1)
	}
	summary.AppendRow(table.Row{"Validation Set", validation})
	summary.AppendRow(table.Row{"Maximum Depth", rep.MaxDepth})
	summary.AppendRow(table.Row{"Train Accuracy", rep.Train.String()})
	summary.AppendRow(table.Row{"Validation Accuracy", rep.Validation.String()})
	summary.Render()

	nodes := table.NewWriter()
	nodes.SetOutputMirror(os.Stdout)
	nodes.SetTitle("DECISION TREE")
	nodes.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Node", Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Name: "Threshold", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Position", AlignHeader: text.AlignCenter},
		{Name: "Records", AlignHeader: text.AlignCenter, WidthMax: 60},
	})
	nodes.AppendHeader(table.Row{"Node", "Threshold", "Position", "Records"})
	for _, n := range rep.Nodes {
		threshold := ""
		if !n.Leaf {
			threshold = fmt.Sprintf("%.2f", n.Threshold)
		}
		nodes.AppendRow(table.Row{n.ID, threshold, n.Position, recordsCell(n)})
		nodes.AppendSeparator()
	}
	nodes.Render()
}

func recordsCell(n report.Node) string {
	if len(n.Records) == 0 {
		return ""
	}
	cell := n.Records[0]
	for _, line := range n.Records[1:] {
		cell += "\n" + line
	}
	return cell
}
