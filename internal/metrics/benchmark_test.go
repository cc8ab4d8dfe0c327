package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_SelfComparison(t *testing.T) {
	returns := []float64{0.01, -0.02, 0.03, 0.015, -0.005}

	rel := Compare(returns, returns, 0, 252)

	assert.True(t, rel.Usable)
	assert.Equal(t, 5, rel.Overlap)
	assert.InDelta(t, 1.0, rel.Beta, 1e-12)
	assert.InDelta(t, 0.0, rel.Alpha, 1e-12)
	assert.InDelta(t, 1.0, rel.Correlation, 1e-12)
	assert.InDelta(t, 0.0, rel.ExcessReturn, 1e-12)
	assert.InDelta(t, 0.0, rel.TrackingError, 1e-12)
	assert.Equal(t, 0.0, rel.InformationRatio, "zero tracking error pins the ratio to 0")
}

func TestCompare_LeveragedPortfolio(t *testing.T) {
	benchmark := []float64{0.01, -0.02, 0.03, 0.015, -0.005}
	portfolio := make([]float64, len(benchmark))
	for i, r := range benchmark {
		portfolio[i] = 2 * r
	}

	rel := Compare(portfolio, benchmark, 0, 252)

	assert.True(t, rel.Usable)
	assert.InDelta(t, 2.0, rel.Beta, 1e-9)
	assert.InDelta(t, 0.0, rel.Alpha, 1e-9)
	assert.InDelta(t, 1.0, rel.Correlation, 1e-9)

	// The diff series is exactly the benchmark, annualized
	assert.InDelta(t, Mean(benchmark)*252, rel.ExcessReturn, 1e-9)
	assert.InDelta(t, StdDev(benchmark)*math.Sqrt(252), rel.TrackingError, 1e-9)
	assert.InDelta(t, rel.ExcessReturn/rel.TrackingError, rel.InformationRatio, 1e-9)
}

func TestCompare_ConstantShift(t *testing.T) {
	// Exact binary fractions keep the diff series exactly constant
	benchmark := []float64{0.25, -0.5, 0.75, 0.375, -0.125}
	portfolio := make([]float64, len(benchmark))
	for i, r := range benchmark {
		portfolio[i] = r + 0.0625
	}

	rel := Compare(portfolio, benchmark, 0, 252)

	assert.True(t, rel.Usable)
	assert.InDelta(t, 1.0, rel.Beta, 1e-9)
	assert.InDelta(t, 0.0625*252, rel.Alpha, 1e-9)
	assert.InDelta(t, 0.0625*252, rel.ExcessReturn, 1e-9)
	assert.Equal(t, 0.0, rel.TrackingError)
	assert.Equal(t, 0.0, rel.InformationRatio)
}

func TestCompare_ShortOverlap(t *testing.T) {
	tests := []struct {
		name      string
		portfolio []float64
		benchmark []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{0.01}, []float64{0.02}},
		{"length mismatch", []float64{0.01, 0.02}, []float64{0.01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel := Compare(tt.portfolio, tt.benchmark, 0, 252)

			assert.False(t, rel.Usable)
			assert.Equal(t, 0.0, rel.Alpha)
			assert.Equal(t, 1.0, rel.Beta)
			assert.Equal(t, 0.0, rel.InformationRatio)
		})
	}
}

func TestCompare_FlatBenchmark(t *testing.T) {
	portfolio := []float64{0.01, -0.02, 0.03}
	benchmark := []float64{0.005, 0.005, 0.005}

	rel := Compare(portfolio, benchmark, 0, 252)

	assert.True(t, rel.Usable)
	assert.Equal(t, 1.0, rel.Beta, "zero benchmark variance defaults beta to 1")
	assert.Equal(t, 0.0, rel.Alpha)
	assert.NotZero(t, rel.TrackingError)
}

func TestNeutralRelative(t *testing.T) {
	rel := NeutralRelative(1)

	assert.False(t, rel.Usable)
	assert.Equal(t, 1, rel.Overlap)
	assert.Equal(t, 1.0, rel.Beta)
	assert.Equal(t, 0.0, rel.Alpha)
}
