package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/kallumq/Data-Display-site/internal/analysis"
	"github.com/kallumq/Data-Display-site/internal/utils"
	"github.com/kallumq/Data-Display-site/internal/view"
)

const maxTicks = 8

// FileCharts renders each chart to an image file in Dir. A handle owns its
// file; disposing it deletes the file.
type FileCharts struct {
	Dir    string
	Format string // svg|png
	Width  int
	Height int
	// Log receives one line per written file when non-nil.
	Log io.Writer

	live map[string]string
}

// NewFileCharts returns a file-backed chart surface. The directory is created
// on first use.
func NewFileCharts(dir, format string, width, height int) *FileCharts {
	return &FileCharts{Dir: dir, Format: strings.ToLower(format), Width: width, Height: height, live: make(map[string]string)}
}

// Live is the number of chart files currently on disk.
func (c *FileCharts) Live() int { return len(c.live) }

// Create renders spec and writes it to a new file.
func (c *FileCharts) Create(spec analysis.ChartSpec) (view.ChartHandle, error) {
	provider, ext := chart.SVG, ".svg"
	switch c.Format {
	case "", "svg":
	case "png":
		provider, ext = chart.PNG, ".png"
	default:
		return nil, fmt.Errorf("unsupported chart format: %s (use svg or png)", c.Format)
	}
	if err := utils.EnsureDir(c.Dir); err != nil {
		return nil, fmt.Errorf("chart dir: %w", err)
	}
	graph := LineChart(spec, c.Width, c.Height)
	var buf bytes.Buffer
	if err := graph.Render(provider, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	id := uuid.NewString()
	path := filepath.Join(c.Dir, slug(spec.Column)+"-"+id[:8]+ext)
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return nil, err
	}
	c.live[id] = path
	if c.Log != nil {
		fmt.Fprintf(c.Log, "✓ Chart %s → %s\n", spec.Title(), path)
	}
	return &fileHandle{id: id, path: path, owner: c}, nil
}

type fileHandle struct {
	id    string
	path  string
	owner *FileCharts
}

func (h *fileHandle) ID() string { return h.id }

// Path is the rendered file.
func (h *fileHandle) Path() string { return h.path }

func (h *fileHandle) Dispose() error {
	if _, ok := h.owner.live[h.id]; !ok {
		return nil
	}
	delete(h.owner.live, h.id)
	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove chart file: %w", err)
	}
	return nil
}

// LineChart builds a go-chart line chart for spec. X positions are the
// 1-based point indexes; each run of present values becomes its own series so
// absent points break the line. A lone point is drawn as a short flat stub
// because go-chart needs two X values per series.
func LineChart(spec analysis.ChartSpec, width, height int) chart.Chart {
	n := len(spec.Points)
	lo, hi, ok := valueRange(spec.Values())
	if !ok {
		lo, hi = 0, 1
	}
	// Ranges wider than float64 can hold are plotted at 1/yScale.
	yScale := 1.0
	if math.IsInf(hi-lo, 0) {
		yScale = 4
	}
	lo, hi = lo/yScale, hi/yScale
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.05, 1)
	}

	style := chart.Style{
		StrokeColor: chart.ColorBlue,
		StrokeWidth: 2,
		DotColor:    chart.ColorBlue,
		DotWidth:    3,
	}
	var series []chart.Series
	var xs, ys []float64
	flush := func() {
		switch len(xs) {
		case 0:
		case 1:
			series = append(series, chart.ContinuousSeries{Name: spec.Column, Style: style,
				XValues: []float64{xs[0] - 0.25, xs[0] + 0.25}, YValues: []float64{ys[0], ys[0]}})
		default:
			series = append(series, chart.ContinuousSeries{Name: spec.Column, Style: style, XValues: xs, YValues: ys})
		}
		xs, ys = nil, nil
	}
	for i, p := range spec.Points {
		if p.Value == nil {
			flush()
			continue
		}
		xs = append(xs, float64(i+1))
		ys = append(ys, *p.Value/yScale)
	}
	flush()
	if len(series) == 0 {
		// go-chart refuses a chart without a visible series.
		series = append(series, chart.ContinuousSeries{
			Style:   chart.Style{StrokeColor: chart.ColorTransparent, StrokeWidth: 1},
			XValues: []float64{0.5, float64(n) + 0.5},
			YValues: []float64{lo, lo},
		})
	}

	yAxis := chart.YAxis{
		Range: &chart.ContinuousRange{Min: lo - pad, Max: hi + pad},
	}
	if yScale != 1 {
		yAxis.ValueFormatter = func(v interface{}) string {
			f, _ := v.(float64)
			f = math.Max(-math.MaxFloat64, math.Min(math.MaxFloat64, f*yScale))
			return fmt.Sprintf("%.3g", f)
		}
	}

	// go-chart takes the X range from the tick span, so unlabeled edge ticks
	// keep a one-row view from collapsing to zero width.
	ticks := append([]chart.Tick{{Value: 0.5}}, xTicks(spec.Labels())...)
	ticks = append(ticks, chart.Tick{Value: float64(n) + 0.5})

	return chart.Chart{
		Title:      spec.Title(),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  spec.XAxisTitle(),
			Range: &chart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5},
			Ticks: ticks,
		},
		YAxis:  yAxis,
		Series: series,
	}
}

// xTicks spreads at most maxTicks labels evenly across the points.
func xTicks(labels []string) []chart.Tick {
	n := len(labels)
	if n == 0 {
		return nil
	}
	step := 1
	if n > maxTicks {
		step = int(math.Ceil(float64(n) / maxTicks))
	}
	ticks := make([]chart.Tick, 0, maxTicks+1)
	for i := 0; i < n; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i + 1), Label: labels[i]})
	}
	return ticks
}

var slugRe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func slug(s string) string {
	s = strings.Trim(slugRe.ReplaceAllString(s, "_"), "_")
	if s == "" {
		return "chart"
	}
	return s
}
