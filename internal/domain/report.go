package domain

// SeasonAverage is one line of the seasonal average report.
type SeasonAverage struct {
	Season Season
	Mean   float64 // rounded to one decimal
}

// StationRange holds a station's rounded temperature extremes and their spread.
type StationRange struct {
	StationName string
	Min         float64
	Max         float64
	Range       float64 // Max - Min, computed on the rounded extremes
}

// StationStdDev holds a station's rounded sample standard deviation.
type StationStdDev struct {
	StationName string
	StdDev      float64
}

// StabilityReport lists the stations at the two stddev extremes. Both slices
// hold every station tied at that extreme; they coincide when all stations
// are equally variable.
type StabilityReport struct {
	MostStable   []StationStdDev
	MostVariable []StationStdDev
}

// ReportSet is the output of the three analysis passes over one dataset.
type ReportSet struct {
	SeasonalAverages []SeasonAverage
	RangeLeaders     []StationRange
	Stability        StabilityReport
}
