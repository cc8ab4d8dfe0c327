package metrics

import (
	"math"

	"github.com/wonny/quantanalysis/internal/drawdown"
)

// =============================================================================
// Performance Ratios
// =============================================================================
// riskFree is always the annualized rate; it is converted to per-period
// inside each ratio by dividing by periodsPerYear.

// Sharpe returns the annualized Sharpe ratio:
// mean(r - rf/ppy) / std(r) * sqrt(ppy), 0 when std is 0.
func Sharpe(returns []float64, riskFree float64, periodsPerYear int) float64 {
	if len(returns) == 0 {
		return 0
	}

	std := StdDev(returns)
	if std == 0 {
		return 0
	}

	excessMean := Mean(returns) - riskFree/float64(periodsPerYear)
	return excessMean / std * math.Sqrt(float64(periodsPerYear))
}

// Sortino returns the annualized Sortino ratio: the Sharpe numerator divided
// by the downside deviation sqrt(mean(min(r, 0)^2)), 0 when the downside
// deviation is 0. The target return is 0.
func Sortino(returns []float64, riskFree float64, periodsPerYear int) float64 {
	if len(returns) == 0 {
		return 0
	}

	var sumSq float64
	for _, r := range returns {
		if r < 0 {
			sumSq += r * r
		}
	}
	downsideDev := math.Sqrt(sumSq / float64(len(returns)))
	if downsideDev == 0 {
		return 0
	}

	excessMean := Mean(returns) - riskFree/float64(periodsPerYear)
	return excessMean / downsideDev * math.Sqrt(float64(periodsPerYear))
}

// Calmar returns CAGR divided by the absolute maximum drawdown,
// 0 when there is no drawdown.
func Calmar(returns []float64, periodsPerYear int) float64 {
	maxDD := drawdown.Max(drawdown.Curve(returns))
	if maxDD == 0 {
		return 0
	}
	return CAGR(returns, periodsPerYear) / math.Abs(maxDD)
}

// Omega returns the omega ratio at the given threshold:
// sum of gains above threshold over sum of losses below it.
// A series with no losses has no defined omega; 0 is reported.
func Omega(returns []float64, threshold float64) float64 {
	var gains, losses float64
	for _, r := range returns {
		if r > threshold {
			gains += r - threshold
		} else {
			losses += threshold - r
		}
	}

	if losses == 0 {
		return 0
	}
	return gains / losses
}
