package view

import (
	"context"

	"github.com/kallumq/Data-Display-site/internal/analysis"
	"github.com/kallumq/Data-Display-site/internal/dataset"
)

// Severity tags a status message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Loader fetches the dataset once at startup.
type Loader interface {
	Load(ctx context.Context, location string) (dataset.Dataset, error)
}

// TableSurface displays an ordered header and ordered rows of cell text.
// Escaping is the surface's concern.
type TableSurface interface {
	SetHeader(columns []string)
	SetRows(rows [][]string)
}

// ChartHandle is a live chart owned by a ChartSurface.
type ChartHandle interface {
	ID() string
	Dispose() error
}

// ChartSurface renders one chart per spec and hands back a handle that must
// be disposed before the chart is replaced.
type ChartSurface interface {
	Create(spec analysis.ChartSpec) (ChartHandle, error)
}

// StatusSurface shows a one-line status message.
type StatusSurface interface {
	Show(msg string, sev Severity, autoHide bool)
}
