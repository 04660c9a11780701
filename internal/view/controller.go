package view

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kallumq/Data-Display-site/internal/analysis"
	"github.com/kallumq/Data-Display-site/internal/dataset"
)

// Status messages shown during the controller lifecycle.
const (
	MsgLoading = "Loading data..."
	MsgFailed  = "Failed to load data."
	MsgNoData  = "No data to display."
)

// Controller owns the loaded dataset, the current filtered view and the live
// chart handles. It is not safe for concurrent use: Start, Search and Close
// must be called from a single goroutine.
type Controller struct {
	loader Loader
	table  TableSurface
	charts ChartSurface
	status StatusSurface

	// Debug receives diagnostic lines when non-nil.
	Debug io.Writer

	location string
	raw      dataset.Dataset
	schema   analysis.Schema
	filtered []dataset.Record
	query    string
	handles  []ChartHandle
	ready    bool
}

// NewController wires a controller to its collaborators.
func NewController(location string, loader Loader, table TableSurface, charts ChartSurface, status StatusSurface) *Controller {
	return &Controller{
		location: location,
		loader:   loader,
		table:    table,
		charts:   charts,
		status:   status,
	}
}

// Start loads the dataset and renders the initial view. It returns a
// *dataset.LoadError when loading fails and dataset.ErrEmptyDataset when the
// source holds no records; in both cases nothing is rendered.
func (c *Controller) Start(ctx context.Context) error {
	if c.ready {
		return errors.New("controller already started")
	}
	c.status.Show(MsgLoading, SeverityWarning, false)
	ds, err := c.loader.Load(ctx, c.location)
	if err != nil {
		c.debugf("load %s failed: %v", c.location, err)
		c.status.Show(MsgFailed, SeverityDanger, false)
		var le *dataset.LoadError
		if !errors.As(err, &le) {
			err = &dataset.LoadError{Location: c.location, Err: err}
		}
		return err
	}
	c.debugf("loaded %d records from %s", len(ds), c.location)
	c.status.Show(fmt.Sprintf("Using %s.", c.location), SeverityInfo, true)

	if len(ds) == 0 {
		c.status.Show(MsgNoData, SeverityWarning, false)
		return dataset.ErrEmptyDataset
	}
	c.raw = ds
	c.schema = analysis.InferSchema(ds)
	c.filtered = analysis.Filter(ds, "")
	c.debugf("columns=%v numeric=%v", c.schema.Columns, c.schema.Numeric)

	c.table.SetHeader(c.schema.Columns)
	c.renderRows()
	c.ready = true
	return c.rebuildCharts()
}

// Search applies a new search-input value. Calls before a successful Start
// are ignored.
func (c *Controller) Search(query string) error {
	if !c.ready {
		return nil
	}
	c.query = query
	c.filtered = analysis.Filter(c.raw, query)
	c.debugf("query %q matched %d/%d records", analysis.NormalizeQuery(query), len(c.filtered), len(c.raw))
	c.renderRows()
	return c.rebuildCharts()
}

// Close releases every live chart handle.
func (c *Controller) Close() error {
	return c.disposeCharts()
}

// Schema returns the schema inferred at Start.
func (c *Controller) Schema() analysis.Schema { return c.schema }

// Filtered returns the current filtered view.
func (c *Controller) Filtered() []dataset.Record { return c.filtered }

// Query returns the last search-input value.
func (c *Controller) Query() string { return c.query }

// LiveCharts is the number of chart handles not yet disposed.
func (c *Controller) LiveCharts() int { return len(c.handles) }

func (c *Controller) renderRows() {
	rows := make([][]string, len(c.filtered))
	for i, rec := range c.filtered {
		rows[i] = analysis.Cells(rec, c.schema.Columns)
	}
	c.table.SetRows(rows)
}

func (c *Controller) rebuildCharts() error {
	var errs []error
	if err := c.disposeCharts(); err != nil {
		errs = append(errs, err)
	}
	for _, spec := range analysis.BuildCharts(c.filtered, c.schema.Numeric, c.schema.Columns) {
		h, err := c.charts.Create(spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("chart %s: %w", spec.Column, err))
			continue
		}
		c.handles = append(c.handles, h)
	}
	return errors.Join(errs...)
}

func (c *Controller) disposeCharts() error {
	var errs []error
	kept := c.handles[:0]
	for _, h := range c.handles {
		if err := h.Dispose(); err != nil {
			// Still live: keep it so the next rebuild or Close retries.
			errs = append(errs, fmt.Errorf("dispose chart %s: %w", h.ID(), err))
			kept = append(kept, h)
		}
	}
	clear(c.handles[len(kept):])
	c.handles = kept
	return errors.Join(errs...)
}

func (c *Controller) debugf(format string, args ...any) {
	if c.Debug == nil {
		return
	}
	fmt.Fprintf(c.Debug, "[debug] "+format+"\n", args...)
}
