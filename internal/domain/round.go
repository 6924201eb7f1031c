package domain

import (
	"math"
	"strconv"
)

// Round1 rounds to one decimal place using round-half-to-even, the convention
// of the upstream reports. Exact .x5 ties round toward the even tenth.
func Round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// FormatTemp renders a temperature with exactly one decimal, e.g. "30.0".
func FormatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
