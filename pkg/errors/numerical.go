package errors

import (
	"math"
)

// AllFinite reports whether every value is finite (neither NaN nor Inf).
func AllFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NonFinite returns the non-finite entries of values, capped at 10 entries
// to keep warning messages bounded.
func NonFinite(values []float64) []float64 {
	var bad []float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = append(bad, v)
			if len(bad) >= 10 {
				break
			}
		}
	}
	return bad
}

// CheckScalar returns an error if value is NaN or Inf.
func CheckScalar(operation string, value float64, iteration int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Newf("numerical instability in %s at iteration %d: %g", operation, iteration, value)
	}
	return nil
}
