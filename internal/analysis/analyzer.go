// Package analysis assembles the individual metric groups into one report.
package analysis

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wonny/quantanalysis/internal/drawdown"
	"github.com/wonny/quantanalysis/internal/metrics"
	"github.com/wonny/quantanalysis/internal/series"
	"github.com/wonny/quantanalysis/pkg/logger"
)

// Category maps metric name to value within one report category.
type Category map[string]float64

// Report is the assembled, read-only metrics report.
// Key names are a stable contract consumed by the report/presentation layer.
// RelativeMetrics is present iff a benchmark was supplied and the aligned
// overlap had at least 2 points.
type Report struct {
	ReturnsStats       Category `json:"returns_stats"`
	RiskMetrics        Category `json:"risk_metrics"`
	PerformanceMetrics Category `json:"performance_metrics"`
	DrawdownMetrics    Category `json:"drawdown_metrics"`
	RelativeMetrics    Category `json:"relative_metrics,omitempty"`
}

// Analyzer computes a full metrics report for a return series.
// 순수 계산기: same inputs always produce the same report.
type Analyzer struct {
	riskFreeRate   float64 // annualized
	periodsPerYear int
	logger         *logger.Logger
}

// New creates an Analyzer. periodsPerYear must be a positive integer
// (252 daily, 52 weekly, 12 monthly).
func New(riskFreeRate float64, periodsPerYear int, log *logger.Logger) (*Analyzer, error) {
	if periodsPerYear <= 0 {
		return nil, fmt.Errorf("periods per year must be positive, got %d", periodsPerYear)
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Analyzer{
		riskFreeRate:   riskFreeRate,
		periodsPerYear: periodsPerYear,
		logger:         log,
	}, nil
}

// Analyze prepares the raw series (and optional benchmark, nil = none) and
// computes the full report. Only malformed-input errors are returned;
// numerical degeneracies resolve to the fallbacks defined in each metric.
func (a *Analyzer) Analyze(raw []series.RawPoint, rawBenchmark []series.RawPoint) (*Report, error) {
	rs, err := series.Prepare(raw)
	if err != nil {
		return nil, fmt.Errorf("prepare returns: %w", err)
	}

	var bench *series.ReturnSeries
	if rawBenchmark != nil {
		bench, err = series.Prepare(rawBenchmark)
		if err != nil {
			return nil, fmt.Errorf("prepare benchmark: %w", err)
		}
	}

	report := a.AnalyzeSeries(rs, bench)

	a.logger.WithFields(map[string]interface{}{
		"observations":  rs.Len(),
		"has_benchmark": bench != nil,
		"total_return":  report.ReturnsStats["total_return"],
		"sharpe":        report.PerformanceMetrics["sharpe"],
		"max_drawdown":  report.RiskMetrics["max_drawdown"],
	}).Info("Analysis completed")

	return report, nil
}

// AnalyzeSeries computes the report for already-prepared series.
// The three metric groups share only the immutable inputs and the drawdown
// curve, so they run fork-join in parallel; each worker gets its own copy
// of the values.
func (a *Analyzer) AnalyzeSeries(rs *series.ReturnSeries, bench *series.ReturnSeries) *Report {
	curve := drawdown.Curve(rs.Values())
	maxDD := drawdown.Max(curve)

	var returnsStats, riskMetrics, perfMetrics Category

	var g errgroup.Group
	g.Go(func() error {
		r := rs.Values()
		returnsStats = Category{
			"total_return": metrics.TotalReturn(r),
			"cagr":         metrics.CAGR(r, a.periodsPerYear),
			"mean_return":  metrics.Mean(r),
			"std_return":   metrics.StdDev(r),
			"skewness":     metrics.Skewness(r),
			"kurtosis":     metrics.Kurtosis(r),
		}
		return nil
	})
	g.Go(func() error {
		r := rs.Values()
		riskMetrics = Category{
			"volatility":   metrics.Volatility(r, a.periodsPerYear),
			"max_drawdown": maxDD,
			"var_95":       metrics.ValueAtRisk(r, 0.95),
			"cvar_95":      metrics.ConditionalValueAtRisk(r, 0.95),
			"ulcer_index":  drawdown.UlcerIndex(curve),
		}
		return nil
	})
	g.Go(func() error {
		r := rs.Values()
		perfMetrics = Category{
			"sharpe":  metrics.Sharpe(r, a.riskFreeRate, a.periodsPerYear),
			"sortino": metrics.Sortino(r, a.riskFreeRate, a.periodsPerYear),
			"calmar":  metrics.Calmar(r, a.periodsPerYear),
			"omega":   metrics.Omega(r, 0),
		}
		return nil
	})
	_ = g.Wait() // workers are pure and never fail

	report := &Report{
		ReturnsStats:       returnsStats,
		RiskMetrics:        riskMetrics,
		PerformanceMetrics: perfMetrics,
		DrawdownMetrics: Category{
			"max_drawdown":    maxDD,
			"avg_drawdown":    drawdown.Avg(curve),
			"recovery_factor": drawdown.RecoveryFactor(rs.Values()),
		},
	}

	if bench != nil {
		a.compareBenchmark(report, rs, bench)
	}

	return report
}

// compareBenchmark aligns the series, computes relative metrics and merges
// them into the report. An overlap below 2 points leaves the relative
// category absent; alpha/beta/information_ratio then keep neutral defaults.
func (a *Analyzer) compareBenchmark(report *Report, rs, bench *series.ReturnSeries) {
	pair := series.Align(rs, bench)
	rel := metrics.Compare(pair.A, pair.B, a.riskFreeRate, a.periodsPerYear)

	if !rel.Usable {
		a.logger.WithField("overlap", pair.Len()).Warn("Benchmark overlap too short, skipping relative metrics")
		report.PerformanceMetrics["alpha"] = rel.Alpha
		report.PerformanceMetrics["beta"] = rel.Beta
		report.PerformanceMetrics["information_ratio"] = rel.InformationRatio
		return
	}

	report.PerformanceMetrics["alpha"] = rel.Alpha
	report.PerformanceMetrics["beta"] = rel.Beta
	report.PerformanceMetrics["information_ratio"] = rel.InformationRatio

	report.RelativeMetrics = Category{
		"excess_return":     rel.ExcessReturn,
		"tracking_error":    rel.TrackingError,
		"information_ratio": rel.InformationRatio,
	}
}

// RiskFreeRate returns the configured annualized risk-free rate.
func (a *Analyzer) RiskFreeRate() float64 {
	return a.riskFreeRate
}

// PeriodsPerYear returns the configured annualization factor.
func (a *Analyzer) PeriodsPerYear() int {
	return a.periodsPerYear
}
