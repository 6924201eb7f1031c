// Command genmock generates mock wide-format station temperature CSV files
// for local runs and test fixtures. Output is deterministic for a given seed
// so fixtures can be regenerated reproducibly.
//
// Usage:
//
//	go run ./cmd/genmock -out-dir temp -files 2 -stations 5 -missing 0.1
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/station-climate-etl/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out-dir", "", "directory to write mock CSV files into")
	files := flag.Int("files", 2, "number of CSV files to generate")
	stations := flag.Int("stations", 5, "stations per file")
	missing := flag.Float64("missing", 0.05, "fraction of month cells left blank")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out-dir")
	}
	if *missing < 0 || *missing >= 1 {
		return fmt.Errorf("-missing must be in [0, 1)")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	for f := 0; f < *files; f++ {
		name := fmt.Sprintf("stations_batch_%02d.csv", f+1)
		if err := writeMockFile(filepath.Join(*outDir, name), *stations, *missing, f, rng); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d stations)\n", filepath.Join(*outDir, name), *stations)
	}
	return nil
}

// writeMockFile writes one wide-format CSV with the fixed header and
// plausible Australian monthly temperatures.
func writeMockFile(path string, stations int, missing float64, fileIdx int, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append(domain.IdentityColumns[:], domain.MonthNames[:]...)
	if err := w.Write(header); err != nil {
		return err
	}

	for s := 0; s < stations; s++ {
		row := mockStationRow(fileIdx, s, missing, rng)
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func mockStationRow(fileIdx, stationIdx int, missing float64, rng *rand.Rand) []string {
	id := fileIdx*1000 + stationIdx + 1
	row := []string{
		fmt.Sprintf("MOCK STATION %03d", id),
		strconv.Itoa(10000 + id),
		fmt.Sprintf("%.4f", -44+rng.Float64()*34), // roughly Australian latitudes
		fmt.Sprintf("%.4f", 113+rng.Float64()*41),
	}

	base := 10 + rng.Float64()*15
	swing := 3 + rng.Float64()*10
	for m := 0; m < 12; m++ {
		if rng.Float64() < missing {
			row = append(row, "")
			continue
		}
		// Annual cycle: +1 at midsummer (January), -1 at midwinter (July).
		phase := float64(m) / 12
		temp := base + swing*math.Cos(2*math.Pi*phase) + rng.NormFloat64()*0.8
		row = append(row, fmt.Sprintf("%.1f", temp))
	}
	return row
}
