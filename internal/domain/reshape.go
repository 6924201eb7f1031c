package domain

import "math"

// Melt reshapes wide rows into long station-month records: for each source
// row, one record per month in calendar order. Missing temperatures (NaN) are
// kept at this stage; DropMissing removes them after all files are combined.
func Melt(rows []WideStationRow) ([]StationMonthRecord, error) {
	records := make([]StationMonthRecord, 0, len(rows)*12)
	for _, row := range rows {
		for i, temp := range row.Temps {
			month := i + 1
			season, err := SeasonForMonth(month)
			if err != nil {
				return nil, err
			}
			records = append(records, StationMonthRecord{
				StationName: row.StationName,
				StationID:   row.StationID,
				Latitude:    row.Latitude,
				Longitude:   row.Longitude,
				Month:       month,
				Temperature: temp,
				Season:      season,
			})
		}
	}
	return records, nil
}

// DropMissing returns the records with a real temperature and the count of
// records discarded for a missing one. Input order is preserved.
func DropMissing(records []StationMonthRecord) ([]StationMonthRecord, int) {
	kept := make([]StationMonthRecord, 0, len(records))
	dropped := 0
	for _, r := range records {
		if math.IsNaN(r.Temperature) {
			dropped++
			continue
		}
		kept = append(kept, r)
	}
	return kept, dropped
}
