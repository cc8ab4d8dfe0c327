// Package metrics implements the pure numerical transforms over a prepared
// return series: aggregate return statistics, risk measures, performance
// ratios and benchmark-relative figures.
//
// All functions are deterministic over their inputs. Numerical degeneracies
// (zero variance, zero denominators, too few observations) never escape as
// errors; each resolves to the documented fallback value so a report always
// has a complete shape.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// Return Aggregates
// =============================================================================

// TotalReturn returns the compounded total return: prod(1 + r) - 1.
func TotalReturn(returns []float64) float64 {
	wealth := 1.0
	for _, r := range returns {
		wealth *= 1.0 + r
	}
	return wealth - 1.0
}

// CAGR returns the compound annual growth rate:
// wealth^(periodsPerYear/n) - 1, 0 when the series is empty.
func CAGR(returns []float64, periodsPerYear int) float64 {
	n := len(returns)
	if n == 0 {
		return 0
	}

	wealth := 1.0 + TotalReturn(returns)
	if wealth < 0 {
		// r < -1 is not a valid simple return
		return 0
	}

	return math.Pow(wealth, float64(periodsPerYear)/float64(n)) - 1.0
}

// Mean returns the arithmetic mean, 0 for an empty series.
func Mean(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return stat.Mean(returns, nil)
}

// StdDev returns the sample standard deviation (n-1 denominator),
// 0 when fewer than two observations.
func StdDev(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil)
}

// Skewness returns the adjusted sample skewness,
// 0 when fewer than three observations or when variance is 0.
func Skewness(returns []float64) float64 {
	if len(returns) < 3 || StdDev(returns) == 0 {
		return 0
	}
	return stat.Skew(returns, nil)
}

// Kurtosis returns the sample excess kurtosis,
// 0 when fewer than four observations or when variance is 0.
func Kurtosis(returns []float64) float64 {
	if len(returns) < 4 || StdDev(returns) == 0 {
		return 0
	}
	return stat.ExKurtosis(returns, nil)
}
