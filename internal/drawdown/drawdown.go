// Package drawdown builds wealth and drawdown curves from a return series
// and derives the drawdown-based risk figures.
package drawdown

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Wealth returns the compounded wealth curve: wealth[i] = prod(1 + r_k), k<=i.
func Wealth(returns []float64) []float64 {
	wealth := make([]float64, len(returns))
	acc := 1.0
	for i, r := range returns {
		acc *= 1.0 + r
		wealth[i] = acc
	}
	return wealth
}

// Curve returns the drawdown series: wealth[i]/peak[i] - 1, always <= 0,
// where peak[i] is the running maximum of the wealth curve itself. The first
// observation is its own peak, so drawdown[0] is 0 even for an opening loss
// and a single-point series yields an identically-zero curve.
func Curve(returns []float64) []float64 {
	dd := make([]float64, len(returns))
	acc := 1.0
	peak := math.Inf(-1)
	for i, r := range returns {
		acc *= 1.0 + r
		if acc > peak {
			peak = acc
		}
		dd[i] = acc/peak - 1.0
	}
	return dd
}

// Max returns the maximum drawdown: min of the curve, 0 when the curve
// never goes negative.
func Max(curve []float64) float64 {
	maxDD := 0.0
	for _, d := range curve {
		if d < maxDD {
			maxDD = d
		}
	}
	return maxDD
}

// Avg returns the arithmetic mean of the drawdown curve.
func Avg(curve []float64) float64 {
	if len(curve) == 0 {
		return 0
	}
	return stat.Mean(curve, nil)
}

// UlcerIndex returns the root-mean-square of the drawdown curve,
// penalizing both depth and duration of declines.
func UlcerIndex(curve []float64) float64 {
	if len(curve) == 0 {
		return 0
	}
	var sumSq float64
	for _, d := range curve {
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(curve)))
}

// RecoveryFactor returns total compounded return divided by the absolute
// maximum drawdown, 0 when there is no drawdown.
func RecoveryFactor(returns []float64) float64 {
	maxDD := Max(Curve(returns))
	if maxDD == 0 {
		return 0
	}

	wealth := 1.0
	for _, r := range returns {
		wealth *= 1.0 + r
	}
	totalReturn := wealth - 1.0

	return totalReturn / math.Abs(maxDD)
}
