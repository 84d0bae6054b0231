package domain

import "math"

// RoundCents rounds a money value to 2 decimal places. All money values
// are rounded at the point of computation, not at display time, so
// derived rates stay stable across repeated queries.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// CPC is cost per click, 0 when there are no clicks.
func CPC(spend float64, clicks int64) float64 {
	if clicks <= 0 {
		return 0
	}
	return RoundCents(spend / float64(clicks))
}

// CPM is cost per thousand impressions, 0 when there are no impressions.
func CPM(spend float64, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return RoundCents(spend / float64(impressions) * 1000)
}
