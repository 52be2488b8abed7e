package motn

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v as the shortest text that round-trips, always with a
// fractional part or exponent: 100.0, -0.0, 0.5, 1e-05, 1e+16.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(v, 'e', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
