package metrics

import "math"

// =============================================================================
// Benchmark-relative Metrics
// =============================================================================

// Relative holds benchmark-relative figures computed from an aligned pair.
// Usable reports whether the overlap was long enough (>= 2 points) for the
// relative category to be emitted at all.
type Relative struct {
	Usable      bool
	Overlap     int
	Correlation float64

	Alpha float64 // annualized regression intercept
	Beta  float64 // regression slope vs the benchmark

	ExcessReturn     float64 // annualized mean of (r_p - r_b)
	TrackingError    float64 // annualized std of (r_p - r_b)
	InformationRatio float64
}

// NeutralRelative returns the defined fallback when comparison is not
// possible: alpha 0, beta 1, information ratio 0.
func NeutralRelative(overlap int) Relative {
	return Relative{Overlap: overlap, Beta: 1}
}

// Compare computes benchmark-relative metrics over two aligned value slices.
//
// Every degenerate case is an explicit named guard rather than a blanket
// recovery: overlap < 2, zero benchmark variance, zero tracking error.
func Compare(portfolio, benchmark []float64, riskFree float64, periodsPerYear int) Relative {
	n := len(portfolio)
	if n != len(benchmark) || n < 2 {
		return NeutralRelative(n)
	}

	ppy := float64(periodsPerYear)
	rfPerPeriod := riskFree / ppy

	exP := make([]float64, n)
	exB := make([]float64, n)
	diff := make([]float64, n)
	for i := 0; i < n; i++ {
		exP[i] = portfolio[i] - rfPerPeriod
		exB[i] = benchmark[i] - rfPerPeriod
		diff[i] = portfolio[i] - benchmark[i]
	}

	rel := Relative{Usable: true, Overlap: n}

	// Guard: zero benchmark variance → beta 1, alpha 0
	stdB := StdDev(exB)
	if stdB == 0 {
		rel.Beta = 1
	} else {
		rel.Correlation = Correlation(exP, exB)
		rel.Beta = rel.Correlation * StdDev(exP) / stdB
		rel.Alpha = (Mean(exP) - rel.Beta*Mean(exB)) * ppy
	}

	rel.ExcessReturn = Mean(diff) * ppy
	rel.TrackingError = StdDev(diff) * math.Sqrt(ppy)

	// Guard: zero tracking error → information ratio 0
	if rel.TrackingError != 0 {
		rel.InformationRatio = rel.ExcessReturn / rel.TrackingError
	}

	return rel
}
