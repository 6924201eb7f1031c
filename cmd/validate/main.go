// Command validate cross-checks written report files against an independent
// recomputation from the input CSVs. It re-runs the loader and the three
// analyses, renders the expected report text, and diffs it against what is on
// disk, phase by phase.
//
// Usage:
//
//	go run ./cmd/validate -input-dir temp -report-dir .
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/couchcryptid/station-climate-etl/internal/adapter/csvdir"
	"github.com/couchcryptid/station-climate-etl/internal/adapter/report"
	"github.com/couchcryptid/station-climate-etl/internal/analysis"
	"github.com/couchcryptid/station-climate-etl/internal/config"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	inputDir := flag.String("input-dir", "", "directory containing input CSV files")
	reportDir := flag.String("report-dir", "", "directory containing the written reports")
	flag.Parse()

	if *inputDir == "" || *reportDir == "" {
		flag.Usage()
		fmt.Fprintln(os.Stderr, "missing required flags: -input-dir, -report-dir")
		os.Exit(2)
	}

	phases, err := validate(*inputDir, *reportDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "validate:", err)
		os.Exit(1)
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  %s\n", e)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func validate(inputDir, reportDir string) ([]*phase, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg := &config.Config{InputDir: inputDir}

	dataset, err := csvdir.NewReader(cfg, logger).Extract(context.Background())
	if err != nil {
		return nil, fmt.Errorf("extract input data: %w", err)
	}

	set := analysis.NewAnalyzer(logger).Analyze(dataset.Records)

	checks := []struct {
		name string
		file string
		want string
	}{
		{"seasonal averages", report.SeasonalFile, report.RenderSeasonal(set.SeasonalAverages)},
		{"largest temperature range", report.RangeFile, report.RenderRange(set.RangeLeaders)},
		{"temperature stability", report.StabilityFile, report.RenderStability(set.Stability)},
	}

	var phases []*phase
	for _, c := range checks {
		p := &phase{name: c.name}
		got, err := os.ReadFile(filepath.Join(reportDir, c.file))
		if err != nil {
			p.errorf("read %s: %v", c.file, err)
		} else if diff := cmp.Diff(c.want, string(got)); diff != "" {
			p.errorf("%s mismatch (-want +got):\n%s", c.file, diff)
		}
		phases = append(phases, p)
	}
	return phases, nil
}
