// Package pipeline orchestrates one analysis run: load, summarize, plot.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/couchcryptid/nfdb-fire-analysis/internal/config"
	"github.com/couchcryptid/nfdb-fire-analysis/internal/dataset"
	"github.com/couchcryptid/nfdb-fire-analysis/internal/domain"
	"github.com/couchcryptid/nfdb-fire-analysis/internal/observability"
	"github.com/couchcryptid/nfdb-fire-analysis/internal/plot"
	"github.com/couchcryptid/nfdb-fire-analysis/internal/report"
)

// Params are the per-run inputs taken from the command line.
type Params struct {
	DataFile        string
	SampleSize      int
	CauseSampleSize int

	// SkipPlots suppresses all image generation; the console summary is
	// still produced.
	SkipPlots bool
}

// Pipeline executes the analysis steps strictly in sequence. No step
// depends on another's output; all read the one loaded table.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	out     io.Writer
}

// New creates a Pipeline writing its console summary to out.
func New(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, out io.Writer) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger, metrics: metrics, out: out}
}

// Run loads the dataset, prints the summary, and renders each chart in a
// fixed order. The context is checked between steps so a cancelled run
// stops at the next step boundary.
func (p *Pipeline) Run(ctx context.Context, params Params) error {
	table, err := p.load(params.DataFile)
	if err != nil {
		return err
	}

	if err := report.WriteSummary(p.out, table); err != nil {
		return err
	}

	if params.SkipPlots {
		p.logger.Info("plot generation skipped")
		return nil
	}
	return p.renderAll(ctx, table, params)
}

func (p *Pipeline) load(path string) (domain.Table, error) {
	start := time.Now()
	res, err := dataset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	p.metrics.LoadDuration.Observe(time.Since(start).Seconds())
	p.metrics.RecordsLoaded.Add(float64(len(res.Table)))
	p.metrics.RowsSkipped.Add(float64(res.RowsSkipped))

	p.logger.Info("dataset loaded",
		"file", path,
		"records", len(res.Table),
		"rows_skipped", res.RowsSkipped,
		"loaded_at", res.LoadedAt,
	)
	return res.Table, nil
}

// renderAll runs the five chart generators in a fixed sequence. Each one
// consumes the loaded table (or a grouped subset) independently.
func (p *Pipeline) renderAll(ctx context.Context, table domain.Table, params Params) error {
	renderer := plot.NewRenderer(p.cfg, p.logger)

	steps := []struct {
		name string
		fn   func() ([]string, error)
	}{
		{"fires_per_year", single(func() (string, error) { return renderer.FiresPerYear(table) })},
		{"fire_causes", single(func() (string, error) { return renderer.CauseCounts(table) })},
		{"fire_locations_sample", single(func() (string, error) { return renderer.LocationSample(table, params.SampleSize) })},
		{"fires_by_cause_year", single(func() (string, error) { return renderer.YearlyByCause(table) })},
		{"fire_locations_by_cause", func() ([]string, error) { return renderer.LocationsByCause(table, params.CauseSampleSize) }},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			p.logger.Info("run cancelled", "before", step.name)
			return err
		}

		start := time.Now()
		paths, err := step.fn()
		if err != nil {
			p.metrics.RenderErrors.WithLabelValues(step.name).Inc()
			return fmt.Errorf("render %s: %w", step.name, err)
		}
		p.metrics.RenderDuration.WithLabelValues(step.name).Observe(time.Since(start).Seconds())

		for _, path := range paths {
			p.metrics.PlotsRendered.WithLabelValues(step.name).Inc()
			p.logger.Info("chart written", "chart", step.name, "path", path)
		}
	}
	return nil
}

// single adapts a one-file renderer to the multi-file step shape,
// dropping the empty path of a skipped chart.
func single(fn func() (string, error)) func() ([]string, error) {
	return func() ([]string, error) {
		path, err := fn()
		if err != nil || path == "" {
			return nil, err
		}
		return []string{path}, nil
	}
}
