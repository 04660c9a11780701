package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/kallumq/Data-Display-site/internal/analysis"
	"github.com/kallumq/Data-Display-site/internal/view"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// TextCharts draws each chart as a one-line sparkline. Gaps print as blanks.
type TextCharts struct {
	w    io.Writer
	live map[string]struct{}
}

// NewTextCharts returns a chart surface writing to w.
func NewTextCharts(w io.Writer) *TextCharts {
	return &TextCharts{w: w, live: make(map[string]struct{})}
}

// Live is the number of undisposed charts.
func (c *TextCharts) Live() int { return len(c.live) }

// Create prints the chart and registers a handle for it.
func (c *TextCharts) Create(spec analysis.ChartSpec) (view.ChartHandle, error) {
	id := uuid.NewString()
	fmt.Fprintf(c.w, "%s (x: %s)\n", spec.Title(), spec.XAxisTitle())
	fmt.Fprintf(c.w, "  %s\n", Sparkline(spec.Values()))
	if lo, hi, ok := valueRange(spec.Values()); ok {
		fmt.Fprintf(c.w, "  range %.4g .. %.4g", lo, hi)
	} else {
		fmt.Fprint(c.w, "  no values")
	}
	if n := len(spec.Points); n > 0 {
		fmt.Fprintf(c.w, "; %s → %s", spec.Points[0].Label, spec.Points[n-1].Label)
	}
	fmt.Fprintln(c.w)
	c.live[id] = struct{}{}
	return &textHandle{id: id, owner: c}, nil
}

type textHandle struct {
	id    string
	owner *TextCharts
}

func (h *textHandle) ID() string { return h.id }

func (h *textHandle) Dispose() error {
	delete(h.owner.live, h.id)
	return nil
}

// Sparkline maps values onto eight block levels; nil values become spaces.
func Sparkline(vals []*float64) string {
	lo, hi, ok := valueRange(vals)
	if !ok {
		return strings.Repeat(" ", len(vals))
	}
	var b strings.Builder
	for _, v := range vals {
		if v == nil {
			b.WriteRune(' ')
			continue
		}
		idx := int(math.Round(unit(*v, lo, hi) * float64(len(sparkLevels)-1)))
		b.WriteRune(sparkLevels[idx])
	}
	return b.String()
}

// unit places v within lo..hi as a fraction in [0,1]. Halving first keeps
// hi-lo finite for values near the float64 limits.
func unit(v, lo, hi float64) float64 {
	span := hi/2 - lo/2
	if !(span > 0) {
		return 0
	}
	u := (v/2 - lo/2) / span
	if math.IsNaN(u) {
		return 0
	}
	return math.Max(0, math.Min(1, u))
}

func valueRange(vals []*float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v == nil {
			continue
		}
		ok = true
		lo = math.Min(lo, *v)
		hi = math.Max(hi, *v)
	}
	return lo, hi, ok
}
