package grading

import "math"

// SafeDivide returns numerator/denominator, or fallback when the denominator
// is zero. It never panics and a zero denominator can never produce ±Inf.
func SafeDivide(numerator, denominator, fallback float64) float64 {
	if denominator == 0 {
		return fallback
	}
	return numerator / denominator
}

// Clamp01 clamps x into [0,1]. NaN clamps to 0, so a poisoned intermediate
// cannot pass through this helper; the IsValidNumber guards at the emit
// sites stay in place regardless.
func Clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}

// IsValidNumber reports whether x is finite and not NaN. Every coefficient
// and aggregate score passes this check before leaving the package.
func IsValidNumber(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
