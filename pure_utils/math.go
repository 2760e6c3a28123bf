package pure_utils

import "math"

// SafeDiv returns num/den, or def when the quotient is not defined: den is
// zero or NaN, or num is NaN. Every derived-metric ratio has a structurally
// possible zero denominator (an agent with no assigned tasks), so division
// must degrade to a default instead of producing NaN or Inf.
func SafeDiv(num, den, def float64) float64 {
	if den == 0 || math.IsNaN(den) || math.IsNaN(num) {
		return def
	}
	return num / den
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// ClampPercentage bounds x to [0, 100].
func ClampPercentage(x float64) float64 {
	return Clamp(x, 0, 100)
}

// RoundToDecimals rounds x half away from zero to d decimals. NaN rounds
// to 0.
func RoundToDecimals(x float64, d int) float64 {
	if math.IsNaN(x) {
		return 0
	}
	ratio := math.Pow(10, float64(d))
	return math.Round(x*ratio) / ratio
}
