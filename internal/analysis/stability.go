package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/station-climate-etl/internal/domain"
)

// Stability finds the stations with the smallest and largest sample standard
// deviation of temperature, rounded to one decimal. Stations with fewer than
// two observations have no defined stddev and are excluded from both
// extremes. Ties are all included, sorted by station name; if every station
// is equally variable both sections list the same stations.
func Stability(records []domain.StationMonthRecord) domain.StabilityReport {
	groups, names := groupByStation(records)

	stddevs := make(map[string]float64, len(groups))
	eligible := make([]string, 0, len(names))
	for _, name := range names {
		temps := groups[name]
		if len(temps) < 2 {
			continue
		}
		stddevs[name] = domain.Round1(stat.StdDev(temps, nil))
		eligible = append(eligible, name)
	}
	if len(eligible) == 0 {
		return domain.StabilityReport{}
	}

	minStd, maxStd := stddevs[eligible[0]], stddevs[eligible[0]]
	for _, name := range eligible[1:] {
		sd := stddevs[name]
		if sd < minStd {
			minStd = sd
		}
		if sd > maxStd {
			maxStd = sd
		}
	}

	var report domain.StabilityReport
	for _, name := range eligible {
		if stddevs[name] == minStd {
			report.MostStable = append(report.MostStable, domain.StationStdDev{StationName: name, StdDev: minStd})
		}
		if stddevs[name] == maxStd {
			report.MostVariable = append(report.MostVariable, domain.StationStdDev{StationName: name, StdDev: maxStd})
		}
	}
	return report
}
