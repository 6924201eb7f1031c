// Package analysis implements the three aggregation passes over the combined
// station-month table: seasonal mean, per-station range, and per-station
// variability. Each pass is a pure read; the table is never mutated.
package analysis

import (
	"log/slog"
	"sort"

	"github.com/couchcryptid/station-climate-etl/internal/domain"
)

// Analyzer runs all three passes over a dataset.
// It implements pipeline.Analyzer.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze computes the full report set for the given records.
func (a *Analyzer) Analyze(records []domain.StationMonthRecord) domain.ReportSet {
	set := domain.ReportSet{
		SeasonalAverages: SeasonalAverages(records),
		RangeLeaders:     RangeLeaders(records),
		Stability:        Stability(records),
	}
	a.logger.Debug("analysis complete",
		"seasons", len(set.SeasonalAverages),
		"range_leaders", len(set.RangeLeaders),
		"most_stable", len(set.Stability.MostStable),
		"most_variable", len(set.Stability.MostVariable),
	)
	return set
}

// groupByStation collects each station's temperatures, pooling same-named
// stations across files, plus the station names in sorted order. Ties in the
// range and stability reports are emitted in this name order.
func groupByStation(records []domain.StationMonthRecord) (map[string][]float64, []string) {
	groups := make(map[string][]float64)
	for _, r := range records {
		groups[r.StationName] = append(groups[r.StationName], r.Temperature)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return groups, names
}
