// Command analyze loads an NFDB ignition point file, prints summary
// statistics to stdout, and renders a fixed set of chart images.
//
// Usage:
//
//	analyze --file NFDB_point_20240613.txt
//	analyze --file points.txt --sample-size 20000 --no-plots
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/nfdb-fire-analysis/internal/config"
	"github.com/couchcryptid/nfdb-fire-analysis/internal/observability"
	"github.com/couchcryptid/nfdb-fire-analysis/internal/pipeline"
)

type options struct {
	File            string `long:"file" default:"NFDB_point_20240613.txt" description:"Path to NFDB ignition point text file"`
	SampleSize      int    `long:"sample-size" default:"10000" description:"Number of locations to plot in the scatter plot"`
	CauseSampleSize int    `long:"cause-sample-size" default:"5000" description:"Locations per cause for cause-based scatter plots"`
	NoPlots         bool   `long:"no-plots" description:"Skip generating image files"`

	Config      string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to optional YAML render settings"`
	MetricsAddr string `long:"metrics-addr" env:"METRICS_ADDR" description:"Expose Prometheus metrics on this address for the duration of the run"`
	LogLevel    string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"Log level (debug, info, warn, error)"`
	LogFormat   string `long:"log-format" env:"LOG_FORMAT" default:"text" description:"Log format (text, json)"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := observability.NewLogger(opts.LogLevel, opts.LogFormat)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		logger.Error("failed to load render settings", "error", err)
		os.Exit(1)
	}

	metrics := observability.NewMetrics()

	var metricsSrv *http.Server
	if opts.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: opts.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
		logger.Info("metrics exposed", "addr", opts.MetricsAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(cfg, logger, metrics, os.Stdout)
	runErr := p.Run(ctx, pipeline.Params{
		DataFile:        opts.File,
		SampleSize:      opts.SampleSize,
		CauseSampleSize: opts.CauseSampleSize,
		SkipPlots:       opts.NoPlots,
	})

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("analysis failed", "error", runErr)
		os.Exit(1)
	}
}
