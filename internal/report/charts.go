package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/vicanso/go-charts/v2"

	"github.com/wonny/quantanalysis/internal/drawdown"
	"github.com/wonny/quantanalysis/internal/i18n"
	"github.com/wonny/quantanalysis/internal/series"
)

// Frequency selects the resampling of the periodic returns bar chart.
type Frequency string

const (
	FreqDaily   Frequency = "D"
	FreqWeekly  Frequency = "W"
	FreqMonthly Frequency = "M"
)

// splitNumber picks the x-axis label density for a series length.
func splitNumber(n int) int {
	switch {
	case n <= 30:
		return 6
	case n <= 120:
		return 8
	default:
		return 10
	}
}

func dateLabels(dates []time.Time) []string {
	labels := make([]string, len(dates))
	for i, d := range dates {
		labels[i] = d.Format("2006-01-02")
	}
	return labels
}

// CumulativeChart renders the wealth curves of the portfolio and the
// optional benchmark (nil = none) as a PNG line chart.
func CumulativeChart(rs *series.ReturnSeries, bench *series.ReturnSeries, bundle *i18n.Bundle) ([]byte, error) {
	if rs.Len() < 2 {
		return nil, errors.New("not enough data points")
	}

	values := [][]float64{drawdown.Wealth(rs.Values())}
	names := []string{bundle.T("common.portfolio")}
	dates := rs.Dates()

	// Overlay the benchmark on the date intersection so both curves share
	// one x-axis.
	if bench != nil {
		pair := series.Align(rs, bench)
		if pair.Len() >= 2 {
			values = [][]float64{drawdown.Wealth(pair.A), drawdown.Wealth(pair.B)}
			names = append(names, bundle.T("common.benchmark"))
			dates = pair.Dates
		}
	}

	seriesList := charts.NewSeriesListDataFromValues(values, charts.ChartTypeLine)
	for i := range seriesList {
		seriesList[i].Name = names[i]
	}

	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc(bundle.T("charts.cumulative_returns")),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        dateLabels(dates),
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: splitNumber(len(dates)),
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// DrawdownChart renders the drawdown curve (in percent) as a PNG line chart.
func DrawdownChart(rs *series.ReturnSeries, bundle *i18n.Bundle) ([]byte, error) {
	if rs.Len() < 2 {
		return nil, errors.New("not enough data points")
	}

	curve := drawdown.Curve(rs.Values())
	pct := make([]float64, len(curve))
	for i, d := range curve {
		pct[i] = d * 100
	}

	painter, err := charts.LineRender([][]float64{pct},
		charts.TitleTextOptionFunc(bundle.T("charts.drawdown")+" (%)"),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        dateLabels(rs.Dates()),
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: splitNumber(rs.Len()),
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// ReturnsBarChart renders resampled periodic returns (in percent) as a PNG
// bar chart. Weekly keeps the most recent 52 bars, monthly the most recent 24.
func ReturnsBarChart(rs *series.ReturnSeries, freq Frequency, bundle *i18n.Bundle) ([]byte, error) {
	if rs.Len() == 0 {
		return nil, errors.New("not enough data points")
	}

	labels, values := Resample(rs, freq)

	var title string
	switch freq {
	case FreqDaily:
		title = bundle.T("charts.daily_returns")
	case FreqWeekly:
		title = bundle.T("charts.weekly_returns")
		labels, values = tail(labels, values, 52)
	default:
		title = bundle.T("charts.monthly_returns")
		labels, values = tail(labels, values, 24)
	}

	pct := make([]float64, len(values))
	for i, v := range values {
		pct[i] = v * 100
	}

	painter, err := charts.BarRender([][]float64{pct},
		charts.TitleTextOptionFunc(title+" (%)"),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: splitNumber(len(labels)),
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// Resample compounds per-period returns into D/W/M buckets.
// Each bucket is labeled with its last observation date.
func Resample(rs *series.ReturnSeries, freq Frequency) (labels []string, values []float64) {
	if freq == FreqDaily {
		for i := 0; i < rs.Len(); i++ {
			p := rs.At(i)
			labels = append(labels, p.Date.Format("2006-01-02"))
			values = append(values, p.Value)
		}
		return labels, values
	}

	bucketKey := func(d time.Time) string {
		if freq == FreqWeekly {
			year, week := d.ISOWeek()
			return fmt.Sprintf("%04d-W%02d", year, week)
		}
		return d.Format("2006-01")
	}

	var currentKey string
	wealth := 1.0
	var lastDate time.Time
	flush := func() {
		if currentKey == "" {
			return
		}
		if freq == FreqWeekly {
			labels = append(labels, lastDate.Format("2006-01-02"))
		} else {
			labels = append(labels, lastDate.Format("2006-01"))
		}
		values = append(values, wealth-1.0)
	}

	for i := 0; i < rs.Len(); i++ {
		p := rs.At(i)
		key := bucketKey(p.Date)
		if key != currentKey {
			flush()
			currentKey = key
			wealth = 1.0
		}
		wealth *= 1.0 + p.Value
		lastDate = p.Date
	}
	flush()

	return labels, values
}

func tail(labels []string, values []float64, n int) ([]string, []float64) {
	if len(values) <= n {
		return labels, values
	}
	return labels[len(labels)-n:], values[len(values)-n:]
}
