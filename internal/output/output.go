package output

import (
	"context"

	"github.com/marisvale/floret/internal/report"
)

// Output defines the interface all report destinations implement.
type Output interface {
	Write(ctx context.Context, rep report.Report) error
	Close() error
}
