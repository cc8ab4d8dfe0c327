package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/quantanalysis/internal/i18n"
	"github.com/wonny/quantanalysis/internal/series"
)

func prepared(t *testing.T, raw []series.RawPoint) *series.ReturnSeries {
	t.Helper()
	rs, err := series.Prepare(raw)
	require.NoError(t, err)
	return rs
}

func TestResample_Daily(t *testing.T) {
	rs := prepared(t, []series.RawPoint{
		{Key: "2024-01-01", Value: 0.01},
		{Key: "2024-01-02", Value: -0.02},
	})

	labels, values := Resample(rs, FreqDaily)

	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, labels)
	assert.Equal(t, []float64{0.01, -0.02}, values)
}

func TestResample_Monthly(t *testing.T) {
	rs := prepared(t, []series.RawPoint{
		{Key: "2024-01-30", Value: 0.01},
		{Key: "2024-01-31", Value: 0.02},
		{Key: "2024-02-01", Value: -0.01},
	})

	labels, values := Resample(rs, FreqMonthly)

	require.Len(t, values, 2)
	assert.Equal(t, []string{"2024-01", "2024-02"}, labels)
	// January compounds both observations
	assert.InDelta(t, 1.01*1.02-1, values[0], 1e-12)
	assert.InDelta(t, -0.01, values[1], 1e-12)
}

func TestResample_Weekly(t *testing.T) {
	// 2024-01-01 (Mon) through 2024-01-08 (next Mon) span two ISO weeks
	rs := prepared(t, []series.RawPoint{
		{Key: "2024-01-01", Value: 0.01},
		{Key: "2024-01-05", Value: 0.02},
		{Key: "2024-01-08", Value: -0.01},
	})

	labels, values := Resample(rs, FreqWeekly)

	require.Len(t, values, 2)
	// Buckets are labeled with their last observation date
	assert.Equal(t, []string{"2024-01-05", "2024-01-08"}, labels)
	assert.InDelta(t, 1.01*1.02-1, values[0], 1e-12)
	assert.InDelta(t, -0.01, values[1], 1e-12)
}

func TestResample_CompoundsToTotal(t *testing.T) {
	rs := prepared(t, []series.RawPoint{
		{Key: "2024-01-15", Value: 0.01},
		{Key: "2024-02-15", Value: -0.02},
		{Key: "2024-02-16", Value: 0.03},
		{Key: "2024-03-15", Value: 0.015},
	})

	_, monthly := Resample(rs, FreqMonthly)

	// Compounding the buckets must reproduce the total compounded return
	wealth := 1.0
	for _, v := range monthly {
		wealth *= 1.0 + v
	}
	assert.InDelta(t, 1.01*0.98*1.03*1.015, wealth, 1e-12)
}

func TestTail(t *testing.T) {
	labels := []string{"a", "b", "c", "d"}
	values := []float64{1, 2, 3, 4}

	gotL, gotV := tail(labels, values, 2)
	assert.Equal(t, []string{"c", "d"}, gotL)
	assert.Equal(t, []float64{3, 4}, gotV)

	gotL, gotV = tail(labels, values, 10)
	assert.Equal(t, labels, gotL)
	assert.Equal(t, values, gotV)
}

func TestCharts_RenderPNG(t *testing.T) {
	bundle := i18n.NewBundle("en")
	rs := prepared(t, []series.RawPoint{
		{Key: "2024-01-01", Value: 0.01},
		{Key: "2024-01-02", Value: -0.02},
		{Key: "2024-01-03", Value: 0.03},
		{Key: "2024-01-04", Value: 0.015},
	})
	bench := prepared(t, []series.RawPoint{
		{Key: "2024-01-01", Value: 0.005},
		{Key: "2024-01-02", Value: -0.01},
		{Key: "2024-01-03", Value: 0.02},
		{Key: "2024-01-04", Value: 0.01},
	})

	pngHeader := []byte{0x89, 'P', 'N', 'G'}

	cumulative, err := CumulativeChart(rs, bench, bundle)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, cumulative[:4])

	dd, err := DrawdownChart(rs, bundle)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, dd[:4])

	bars, err := ReturnsBarChart(rs, FreqDaily, bundle)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, bars[:4])
}

func TestCharts_TooFewPoints(t *testing.T) {
	bundle := i18n.NewBundle("en")
	rs := prepared(t, []series.RawPoint{{Key: "2024-01-01", Value: 0.01}})

	_, err := CumulativeChart(rs, nil, bundle)
	assert.Error(t, err)

	_, err = DrawdownChart(rs, bundle)
	assert.Error(t, err)
}
