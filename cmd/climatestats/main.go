// Command climatestats runs one batch pass over the input CSV directory:
// reshape wide per-station files into station-month records, then write the
// seasonal average, largest range, and stability reports.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/station-climate-etl/internal/adapter/csvdir"
	httpadapter "github.com/couchcryptid/station-climate-etl/internal/adapter/http"
	"github.com/couchcryptid/station-climate-etl/internal/adapter/report"
	"github.com/couchcryptid/station-climate-etl/internal/analysis"
	"github.com/couchcryptid/station-climate-etl/internal/config"
	"github.com/couchcryptid/station-climate-etl/internal/domain"
	"github.com/couchcryptid/station-climate-etl/internal/observability"
	"github.com/couchcryptid/station-climate-etl/internal/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	reader := csvdir.NewReader(cfg, logger)
	analyzer := analysis.NewAnalyzer(logger)
	writer := report.NewWriter(cfg, logger)

	p := pipeline.New(reader, analyzer, writer, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional metrics listener for supervised runs.
	var srv *httpadapter.Server
	if cfg.MetricsAddr != "" {
		srv = httpadapter.NewServer(cfg.MetricsAddr, p, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	summary, runErr := p.Run(ctx)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", "error", err)
		}
		cancel()
	}

	switch {
	case runErr == nil:
		logger.Info("successfully loaded data",
			"station_month_records", summary.Records,
			"input_dir", cfg.InputDir,
			"output_dir", cfg.OutputDir,
		)
		return 0
	case errors.Is(runErr, domain.ErrNoInputFiles):
		// Nothing to analyze is a clean stop, not a failure.
		logger.Warn("no input files", "error", runErr, "input_dir", cfg.InputDir)
		return 0
	default:
		logger.Error("run failed", "error", runErr)
		return 1
	}
}
