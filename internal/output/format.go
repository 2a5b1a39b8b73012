package output

import "github.com/marisvale/floret/internal/report"

// FormatReport returns a copy of the report trimmed according to
// includeRecords. When false, the per-node record dumps are dropped and
// only the tree structure and accuracies remain.
func FormatReport(rep report.Report, includeRecords bool) report.Report {
	if includeRecords {
		return rep
	}
	nodes := make([]report.Node, len(rep.Nodes))
	for i, n := range rep.Nodes {
		n.Records = nil
		nodes[i] = n
	}
	rep.Nodes = nodes
	return rep
}
