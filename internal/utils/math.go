package utils

import "math"

// RoundTo rounds value to the given number of decimal places
func RoundTo(value float64, places int) float64 {
	if places < 0 {
		return value
	}
	pow := math.Pow(10, float64(places))
	return math.Round(value*pow) / pow
}

// MinInt returns the smallest of the given integers.
// Returns 0 when called with no arguments.
func MinInt(values ...int) int {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// FloorDiv returns floor(a/b) as an int, or 0 when b is not positive.
// Quotients outside the int range saturate at math.MaxInt or math.MinInt.
func FloorDiv(a, b float64) int {
	if b <= 0 {
		return 0
	}
	q := math.Floor(a / b)
	switch {
	case math.IsNaN(q):
		return 0
	case q >= math.MaxInt:
		return math.MaxInt
	case q <= math.MinInt:
		return math.MinInt
	}
	return int(q)
}
