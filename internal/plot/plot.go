// Package plot renders the analysis charts as PNG files via go-chart.
package plot

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/couchcryptid/nfdb-fire-analysis/internal/config"
	"github.com/couchcryptid/nfdb-fire-analysis/internal/domain"
)

// Fixed output file names, written into the configured output directory.
// Existing files with the same name are overwritten.
const (
	FiresPerYearFile   = "fires_per_year.png"
	CauseCountsFile    = "fire_causes.png"
	LocationSampleFile = "fire_locations_sample.png"
	YearlyByCauseFile  = "fires_by_cause_year.png"
)

// scatterAlpha approximates the 30% point opacity of the original plots.
const scatterAlpha = 76

// Renderer writes chart images according to the configured geometry.
type Renderer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRenderer returns a Renderer writing into cfg.OutputDir.
func NewRenderer(cfg *config.Config, logger *slog.Logger) *Renderer {
	return &Renderer{cfg: cfg, logger: logger}
}

// FiresPerYear renders the bar chart of fire counts per year, ascending.
// Returns the written path, or "" when the table is empty.
func (r *Renderer) FiresPerYear(t domain.Table) (string, error) {
	counts := domain.CountByYear(t)
	if len(counts) == 0 {
		r.logger.Warn("skipping chart, no records", "chart", FiresPerYearFile)
		return "", nil
	}

	bars := make([]chart.Value, 0, len(counts))
	maxCount := 0
	for _, yc := range counts {
		bars = append(bars, chart.Value{Label: strconv.Itoa(yc.Year), Value: float64(yc.Count)})
		if yc.Count > maxCount {
			maxCount = yc.Count
		}
	}

	const barWidth, barSpacing = 6, 4
	width := r.cfg.YearChart.Width
	if need := len(bars)*(barWidth+barSpacing) + 80; need > width {
		width = need
	}

	ch := chart.BarChart{
		Title:      "Fires per Year",
		Width:      width,
		Height:     r.cfg.YearChart.Height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		XAxis:      chart.Style{TextRotationDegrees: 90},
		YAxis:      chart.YAxis{Name: "Number of Fires", Range: countRange(maxCount)},
		Bars:       bars,
	}
	return r.write(FiresPerYearFile, ch.Render)
}

// CauseCounts renders the bar chart of fire counts per cause, in
// descending frequency order. Returns the written path, or "" when the
// table is empty.
func (r *Renderer) CauseCounts(t domain.Table) (string, error) {
	counts := domain.CountByCause(t)
	if len(counts) == 0 {
		r.logger.Warn("skipping chart, no records", "chart", CauseCountsFile)
		return "", nil
	}

	bars := make([]chart.Value, 0, len(counts))
	maxCount := 0
	for _, cc := range counts {
		bars = append(bars, chart.Value{Label: cc.Cause, Value: float64(cc.Count)})
		if cc.Count > maxCount {
			maxCount = cc.Count
		}
	}

	const barWidth, barSpacing = 60, 20
	width := r.cfg.CauseChart.Width
	if need := len(bars)*(barWidth+barSpacing) + 80; need > width {
		width = need
	}

	ch := chart.BarChart{
		Title:      "Fire Causes",
		Width:      width,
		Height:     r.cfg.CauseChart.Height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		YAxis:      chart.YAxis{Name: "Count", Range: countRange(maxCount)},
		Bars:       bars,
	}
	return r.write(CauseCountsFile, ch.Render)
}

// LocationSample renders a scatter of up to n sampled ignition points.
// Returns the written path, or "" when the table is empty.
func (r *Renderer) LocationSample(t domain.Table, n int) (string, error) {
	sample := domain.Sample(t, n, r.cfg.Seed)
	return r.scatter(LocationSampleFile, "Sample Fire Locations", sample)
}

// LocationsByCause renders one scatter per distinct cause, each over a
// fixed-seed sample of up to n records of that cause, so every cause
// present in the table yields exactly one file. Path-separator
// characters in the cause label are replaced to keep file names
// filesystem-safe. Returns the written paths.
func (r *Renderer) LocationsByCause(t domain.Table, n int) ([]string, error) {
	var paths []string
	for _, cause := range domain.Causes(t) {
		sample := domain.Sample(domain.FilterByCause(t, cause), n, r.cfg.Seed)
		name := fmt.Sprintf("fire_locations_%s.png", sanitizeCause(cause))
		path, err := r.scatter(name, "Locations - "+cause, sample)
		if err != nil {
			return paths, fmt.Errorf("cause %q: %w", cause, err)
		}
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// YearlyByCause renders one line series per cause across the observed
// years, with missing (year, cause) combinations plotted as zero.
// Returns the written path, or "" when fewer than two years are present.
func (r *Renderer) YearlyByCause(t domain.Table) (string, error) {
	m := domain.PivotYearCause(t)
	if len(m.Years) < 2 {
		r.logger.Warn("skipping chart, need at least two years", "chart", YearlyByCauseFile, "years", len(m.Years))
		return "", nil
	}

	xs := make([]float64, len(m.Years))
	for i, year := range m.Years {
		xs[i] = float64(year)
	}

	series := make([]chart.Series, 0, len(m.Causes))
	allYs := make([]float64, 0, len(m.Causes)*len(m.Years))
	for _, cause := range m.Causes {
		ys := make([]float64, len(m.Years))
		for i, c := range m.Counts[cause] {
			ys[i] = float64(c)
		}
		allYs = append(allYs, ys...)
		series = append(series, chart.ContinuousSeries{
			Name:    cause,
			XValues: xs,
			YValues: ys,
		})
	}

	// Uniform counts leave the derived y range with a zero delta, which
	// go-chart rejects; pad it instead of failing the run.
	yaxis := chart.YAxis{Name: "Number of Fires"}
	if rg := paddedRange(allYs, 0.5); rg != nil {
		yaxis.Range = rg
	}

	ch := chart.Chart{
		Title:      "Fires per Year by Cause",
		Width:      r.cfg.TrendChart.Width,
		Height:     r.cfg.TrendChart.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: yearFormatter,
		},
		YAxis:  yaxis,
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return r.write(YearlyByCauseFile, ch.Render)
}

func (r *Renderer) scatter(name, title string, points domain.Table) (string, error) {
	if len(points) == 0 {
		r.logger.Warn("skipping chart, no records", "chart", name)
		return "", nil
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Longitude
		ys[i] = p.Latitude
	}

	// Single points and collinear samples span no distance on one axis;
	// pad those axes so the derived range keeps a non-zero delta.
	xaxis := chart.XAxis{Name: "Longitude"}
	if rg := paddedRange(xs, 0.5); rg != nil {
		xaxis.Range = rg
	}
	yaxis := chart.YAxis{Name: "Latitude"}
	if rg := paddedRange(ys, 0.5); rg != nil {
		yaxis.Range = rg
	}

	ch := chart.Chart{
		Title:      title,
		Width:      r.cfg.ScatterChart.Width,
		Height:     r.cfg.ScatterChart.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		XAxis:      xaxis,
		YAxis:      yaxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    1,
					DotColor:    chart.ColorBlue.WithAlpha(scatterAlpha),
				},
			},
		},
	}
	return r.write(name, ch.Render)
}

// write renders a chart into a buffer and writes it to the output
// directory, overwriting any previous file with the same name.
func (r *Renderer) write(name string, render func(chart.RendererProvider, io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(r.cfg.OutputDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// countRange returns an explicit zero-based y range for count bar
// charts. Deriving the range from the bars alone fails on a single bar
// or uniform counts: go-chart rejects a data range whose delta is zero.
func countRange(maxCount int) *chart.ContinuousRange {
	if maxCount <= 0 {
		maxCount = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: float64(maxCount)}
}

// paddedRange returns an explicit range padded by pad on each side when
// vals span no distance, and nil when the derived range is already
// usable. Assigning a typed nil to the axis Range interface would make
// go-chart dereference it, hence the conditional at the call sites.
func paddedRange(vals []float64, pad float64) *chart.ContinuousRange {
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo != hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// sanitizeCause makes a cause label safe for use in a file name.
func sanitizeCause(cause string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(cause)
}

func yearFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(f))
	}
	return ""
}
