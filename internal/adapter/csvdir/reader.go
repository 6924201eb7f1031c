// Package csvdir reads wide-format station temperature CSVs from a directory
// and reshapes them into the combined long-form dataset.
package csvdir

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/station-climate-etl/internal/config"
	"github.com/couchcryptid/station-climate-etl/internal/domain"
)

// colTypes forces month columns to float so blank or unparseable cells parse
// as NaN (missing) instead of flipping the whole column to strings. Identity
// columns stay strings and are carried through untouched.
var colTypes = buildColTypes()

func buildColTypes() map[string]series.Type {
	types := make(map[string]series.Type, 16)
	for _, c := range domain.IdentityColumns {
		types[c] = series.String
	}
	for _, m := range domain.MonthNames {
		types[m] = series.Float
	}
	return types
}

// Reader discovers and loads every CSV in a directory.
// It implements pipeline.Extractor.
type Reader struct {
	dir    string
	logger *slog.Logger
}

// NewReader creates a Reader over the configured input directory.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	return &Reader{dir: cfg.InputDir, logger: logger}
}

// Extract loads all CSV files in discovery order, melts each into long form,
// concatenates them, and drops rows with missing temperatures. One unreadable
// file fails the whole extraction; no partial dataset is returned.
func (r *Reader) Extract(ctx context.Context) (domain.Dataset, error) {
	files, err := r.discover()
	if err != nil {
		return domain.Dataset{}, err
	}

	var combined []domain.StationMonthRecord
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return domain.Dataset{}, err
		}

		rows, err := readFile(path)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("load %s: %w", filepath.Base(path), err)
		}

		records, err := domain.Melt(rows)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("reshape %s: %w", filepath.Base(path), err)
		}

		r.logger.Debug("file loaded", "file", filepath.Base(path), "stations", len(rows))
		combined = append(combined, records...)
	}

	kept, dropped := domain.DropMissing(combined)
	return domain.Dataset{
		Records:     kept,
		FilesRead:   len(files),
		RowsDropped: dropped,
	}, nil
}

// discover lists the directory's CSV files in name order. An absent directory
// is treated the same as an empty one.
func (r *Reader) discover() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoInputFiles, r.dir)
		}
		return nil, fmt.Errorf("read input directory %s: %w", r.dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, filepath.Join(r.dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoInputFiles, r.dir)
	}
	return files, nil
}

// readFile parses one wide-format CSV into station rows.
func readFile(path string) ([]domain.WideStationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.WithTypes(colTypes))
	if df.Err != nil {
		return nil, fmt.Errorf("parse csv: %w", df.Err)
	}
	if err := checkColumns(df); err != nil {
		return nil, err
	}

	rows := make([]domain.WideStationRow, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		row := domain.WideStationRow{
			StationName: df.Col("STATION_NAME").Elem(i).String(),
			StationID:   df.Col("STN_ID").Elem(i).String(),
			Latitude:    df.Col("LAT").Elem(i).String(),
			Longitude:   df.Col("LON").Elem(i).String(),
		}
		for m, name := range domain.MonthNames {
			row.Temps[m] = df.Col(name).Elem(i).Float() // NaN when missing
		}
		rows[i] = row
	}
	return rows, nil
}

// checkColumns verifies the fixed schema: four identity columns plus twelve months.
func checkColumns(df dataframe.DataFrame) error {
	present := make(map[string]bool, len(df.Names()))
	for _, n := range df.Names() {
		present[n] = true
	}
	for _, c := range domain.IdentityColumns {
		if !present[c] {
			return fmt.Errorf("missing required column %q", c)
		}
	}
	for _, m := range domain.MonthNames {
		if !present[m] {
			return fmt.Errorf("missing month column %q", m)
		}
	}
	return nil
}
