package analysis

import (
	"github.com/couchcryptid/station-climate-etl/internal/domain"
)

// RangeLeaders finds every station whose annual temperature range equals the
// global maximum. Min and max are each rounded to one decimal before the
// range is taken, so the reported numbers are self-consistent. Ties are all
// included, sorted by station name.
func RangeLeaders(records []domain.StationMonthRecord) []domain.StationRange {
	groups, names := groupByStation(records)

	ranges := make(map[string]domain.StationRange, len(groups))
	maxRange := 0.0
	found := false
	for _, name := range names {
		temps := groups[name]
		lo, hi := temps[0], temps[0]
		for _, t := range temps[1:] {
			if t < lo {
				lo = t
			}
			if t > hi {
				hi = t
			}
		}

		r := domain.StationRange{
			StationName: name,
			Min:         domain.Round1(lo),
			Max:         domain.Round1(hi),
		}
		r.Range = r.Max - r.Min
		ranges[name] = r

		if !found || r.Range > maxRange {
			maxRange = r.Range
			found = true
		}
	}

	var leaders []domain.StationRange
	for _, name := range names {
		if r := ranges[name]; r.Range == maxRange {
			leaders = append(leaders, r)
		}
	}
	return leaders
}
