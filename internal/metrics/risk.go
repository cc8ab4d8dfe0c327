package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// Risk Measures
// =============================================================================

// Volatility returns the annualized volatility: std * sqrt(periodsPerYear).
func Volatility(returns []float64, periodsPerYear int) float64 {
	return StdDev(returns) * math.Sqrt(float64(periodsPerYear))
}

// ValueAtRisk returns the (1-confidence)-quantile of the return distribution
// as a signed return (typically negative), using linear interpolation
// between order statistics. 예: confidence 0.95 → 하위 5% 백분위수.
func ValueAtRisk(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	return percentile(sorted, (1.0-confidence)*100.0)
}

// ConditionalValueAtRisk returns the mean of all returns at or below the
// VaR threshold (Expected Shortfall). Falls back to the VaR value itself
// when no observation lies at or below the threshold.
func ConditionalValueAtRisk(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	threshold := ValueAtRisk(returns, confidence)

	var sum float64
	var count int
	for _, r := range returns {
		if r <= threshold {
			sum += r
			count++
		}
	}

	if count == 0 {
		return threshold
	}
	return sum / float64(count)
}

// percentile computes the p-th percentile (0-100) of ascending-sorted data
// with linear interpolation between adjacent order statistics.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	idx := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := idx - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Correlation returns the Pearson correlation of two equal-length samples,
// 0 when either side is degenerate.
func Correlation(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	c := stat.Correlation(x, y, nil)
	if math.IsNaN(c) {
		return 0
	}
	return c
}
