package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/station-climate-etl/internal/domain"
)

// SeasonalAverages computes the mean temperature per season, rounded to one
// decimal. Lines come out in alphabetical season order (Autumn, Spring,
// Summer, Winter); seasons with no observations are omitted.
func SeasonalAverages(records []domain.StationMonthRecord) []domain.SeasonAverage {
	groups := make(map[domain.Season][]float64, len(domain.Seasons))
	for _, r := range records {
		groups[r.Season] = append(groups[r.Season], r.Temperature)
	}

	averages := make([]domain.SeasonAverage, 0, len(groups))
	for _, season := range domain.Seasons {
		temps := groups[season]
		if len(temps) == 0 {
			continue
		}
		averages = append(averages, domain.SeasonAverage{
			Season: season,
			Mean:   domain.Round1(stat.Mean(temps, nil)),
		})
	}
	return averages
}
