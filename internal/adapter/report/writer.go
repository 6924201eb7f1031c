// Package report renders the three analysis reports as plain text and writes
// them to the output directory.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/station-climate-etl/internal/config"
	"github.com/couchcryptid/station-climate-etl/internal/domain"
)

// Fixed report file names, overwritten on every run.
const (
	SeasonalFile  = "average_temp.txt"
	RangeFile     = "largest_temp_range_station.txt"
	StabilityFile = "temperature_stability_stations.txt"
)

// Writer persists a ReportSet as three text files.
// It implements pipeline.ReportLoader.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a Writer targeting the configured output directory.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	return &Writer{dir: cfg.OutputDir, logger: logger}
}

// LoadReports writes all three reports. Any write failure is fatal for the run.
func (w *Writer) LoadReports(ctx context.Context, set domain.ReportSet) error {
	files := []struct {
		name    string
		content string
	}{
		{SeasonalFile, RenderSeasonal(set.SeasonalAverages)},
		{RangeFile, RenderRange(set.RangeLeaders)},
		{StabilityFile, RenderStability(set.Stability)},
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(w.dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("write report %s: %w", f.name, err)
		}
		w.logger.Debug("report written", "file", f.name, "bytes", len(f.content))
	}
	return nil
}

// RenderSeasonal formats the seasonal average report, one line per season.
func RenderSeasonal(averages []domain.SeasonAverage) string {
	var b strings.Builder
	for _, a := range averages {
		fmt.Fprintf(&b, "%s: %s°C\n", a.Season, domain.FormatTemp(a.Mean))
	}
	return b.String()
}

// RenderRange formats the largest-range report, one line per tied leader.
func RenderRange(leaders []domain.StationRange) string {
	var b strings.Builder
	for _, r := range leaders {
		fmt.Fprintf(&b, "Station %s: Range %s°C (Max: %s°C, Min: %s°C)\n",
			r.StationName, domain.FormatTemp(r.Range), domain.FormatTemp(r.Max), domain.FormatTemp(r.Min))
	}
	return b.String()
}

// RenderStability formats the two-section stability report. Section headers
// are always present, even with no eligible stations.
func RenderStability(report domain.StabilityReport) string {
	var b strings.Builder
	b.WriteString("Most Stable:\n")
	for _, s := range report.MostStable {
		fmt.Fprintf(&b, "Station %s: StdDev %s°C\n", s.StationName, domain.FormatTemp(s.StdDev))
	}
	b.WriteString("\nMost Variable:\n")
	for _, s := range report.MostVariable {
		fmt.Fprintf(&b, "Station %s: StdDev %s°C\n", s.StationName, domain.FormatTemp(s.StdDev))
	}
	return b.String()
}
