package util

import "math"

// RoundCurrency rounds to whole currency units, half away from zero.
// Tax and discount are rounded independently before they enter the total.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount)
}

// Clamp keeps n within [min, max] inclusive.
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
