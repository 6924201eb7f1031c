package csvdir_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/station-climate-etl/internal/adapter/csvdir"
	"github.com/couchcryptid/station-climate-etl/internal/config"
	"github.com/couchcryptid/station-climate-etl/internal/domain"
)

const csvHeader = "STATION_NAME,STN_ID,LAT,LON,January,February,March,April,May,June,July,August,September,October,November,December"

func writeCSV(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	content := strings.Join(append([]string{csvHeader}, lines...), "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newReader(dir string) *csvdir.Reader {
	cfg := &config.Config{InputDir: dir}
	return csvdir.NewReader(cfg, slog.Default())
}

func TestExtract_SingleFile(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "obs.csv",
		"PERTH AIRPORT,9021,-31.93,115.98,25,25,23,20,16,14,13,13,15,17,20,23",
	)

	dataset, err := newReader(dir).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, dataset.FilesRead)
	assert.Equal(t, 0, dataset.RowsDropped)
	require.Len(t, dataset.Records, 12)

	first := dataset.Records[0]
	assert.Equal(t, "PERTH AIRPORT", first.StationName)
	assert.Equal(t, "9021", first.StationID)
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, 25.0, first.Temperature)
	assert.Equal(t, domain.SeasonSummer, first.Season)

	last := dataset.Records[11]
	assert.Equal(t, 12, last.Month)
	assert.Equal(t, 23.0, last.Temperature)
}

func TestExtract_MissingTemperaturesDropped(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "obs.csv",
		"GAPPY STATION,1,0,0,10,,12,13,14,15,16,17,18,19,,21",
	)

	dataset, err := newReader(dir).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, dataset.RowsDropped)
	require.Len(t, dataset.Records, 10)
	for _, r := range dataset.Records {
		assert.NotEqual(t, 2, r.Month, "February was blank")
		assert.NotEqual(t, 11, r.Month, "November was blank")
	}
}

func TestExtract_MultipleFilesInDiscoveryOrder(t *testing.T) {
	dir := t.TempDir()
	// ReadDir returns names sorted, so a.csv comes before b.csv.
	writeCSV(t, dir, "b.csv", "BRAVO,2,0,0,1,1,1,1,1,1,1,1,1,1,1,1")
	writeCSV(t, dir, "a.csv", "ALPHA,1,0,0,2,2,2,2,2,2,2,2,2,2,2,2")

	dataset, err := newReader(dir).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, dataset.FilesRead)
	require.Len(t, dataset.Records, 24)
	assert.Equal(t, "ALPHA", dataset.Records[0].StationName)
	assert.Equal(t, "BRAVO", dataset.Records[12].StationName)
}

func TestExtract_IgnoresNonCSVFiles(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "obs.csv", "ONLY,1,0,0,1,1,1,1,1,1,1,1,1,1,1,1")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not data"), 0o644))

	dataset, err := newReader(dir).Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dataset.FilesRead)
}

func TestExtract_EmptyDirectory(t *testing.T) {
	_, err := newReader(t.TempDir()).Extract(context.Background())
	require.ErrorIs(t, err, domain.ErrNoInputFiles)
}

func TestExtract_MissingDirectory(t *testing.T) {
	_, err := newReader(filepath.Join(t.TempDir(), "nope")).Extract(context.Background())
	require.ErrorIs(t, err, domain.ErrNoInputFiles)
}

func TestExtract_MissingMonthColumn(t *testing.T) {
	dir := t.TempDir()
	header := strings.Replace(csvHeader, ",December", "", 1)
	content := header + "\nBROKEN,1,0,0,1,1,1,1,1,1,1,1,1,1,1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte(content), 0o644))

	_, err := newReader(dir).Extract(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoInputFiles)
	assert.Contains(t, err.Error(), "December")
}

func TestExtract_MalformedCSV(t *testing.T) {
	dir := t.TempDir()
	content := csvHeader + "\nRAGGED,1,0,0,1,2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte(content), 0o644))

	_, err := newReader(dir).Extract(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoInputFiles)
}

func TestExtract_OneBadFileAbortsEverything(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "good.csv", "FINE,1,0,0,1,1,1,1,1,1,1,1,1,1,1,1")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zz_bad.csv"), []byte(csvHeader+"\nRAGGED,1\n"), 0o644))

	_, err := newReader(dir).Extract(context.Background())
	require.Error(t, err)
}

func TestExtract_ContextCancelled(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "obs.csv", "ONLY,1,0,0,1,1,1,1,1,1,1,1,1,1,1,1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newReader(dir).Extract(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
