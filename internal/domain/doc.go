// Package domain models Australian Bureau-style station temperature data.
//
// # Data Source
//
// Input files are wide-format CSVs, one file per observation batch, one row
// per weather station. Each row carries four identity columns followed by
// twelve monthly mean temperature columns:
//
//	STATION_NAME,STN_ID,LAT,LON,January,February,...,December
//
// Temperatures are degrees Celsius. A blank or unparseable month cell means
// the station has no observation for that month; such cells become missing
// records and are dropped before aggregation rather than carried as nulls.
//
// STN_ID, LAT and LON are opaque metadata: they are preserved on every
// reshaped record but never used for grouping or arithmetic. Station identity
// for aggregation is STATION_NAME alone — two files that name the same
// station pool their month records into one logical station.
//
// # Long Format
//
// Analyses operate on the long form: one StationMonthRecord per station per
// month, produced by melting each wide row in month order (January through
// December) and concatenating files in discovery order. Records are
// immutable once built.
//
// # Seasons
//
// Seasons follow the Southern-Hemisphere (Australian) convention:
//
//	December, January, February  → Summer
//	March, April, May            → Autumn
//	June, July, August           → Winter
//	September, October, November → Spring
//
// [SeasonForMonth] is total over 1–12 and returns an error for anything else
// so an out-of-range month fails loudly instead of leaking an undefined
// season label into a report.
//
// # Rounding
//
// All reported temperatures are rounded to one decimal using
// round-half-to-even (banker's rounding), matching the numeric convention of
// the upstream reports this tool reproduces. Station range is computed on the
// rounded min and max, not the raw values. See [Round1].
package domain
