// Package report turns an assembled metrics report into a self-contained
// HTML document with embedded charts. It only reads the report; all numeric
// work happens upstream.
package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/wonny/quantanalysis/internal/analysis"
	"github.com/wonny/quantanalysis/internal/i18n"
	"github.com/wonny/quantanalysis/internal/series"
)

// Options configures report generation.
type Options struct {
	Title       string // empty = localized default
	Language    string // "zh" or "en"
	ReturnsFreq Frequency
	OutputDir   string
}

// card is one summary tile in the rendered report.
type card struct {
	Label string
	Value string
	Class string // "", "positive", "negative"
}

// row is one line of the detailed metrics table.
type row struct {
	Label string
	Value string
}

// section is one category block of the detailed metrics table.
type section struct {
	Title string
	Rows  []row
}

type view struct {
	Lang        string
	Title       string
	PeriodFrom  string
	PeriodTo    string
	PeriodSep   string
	TradingDays int
	DaysLabel   string
	DaysWord    string
	GeneratedAt string
	GeneratedOn string

	SummaryTitle string
	Cards        []card

	ChartsTitle string
	Charts      []template.URL

	DetailTitle string
	MetricCol   string
	ValueCol    string
	Sections    []section

	Footer string
}

// Generate renders the full HTML document for a report.
// bench may be nil. Chart rendering failures degrade to a chart-less
// document rather than failing the report.
func Generate(rep *analysis.Report, rs *series.ReturnSeries, bench *series.ReturnSeries, opts Options) (string, error) {
	bundle := i18n.NewBundle(opts.Language)

	title := opts.Title
	if title == "" {
		title = bundle.T("report.title")
	}

	v := view{
		Lang:        string(bundle.Lang()),
		Title:       title,
		PeriodFrom:  rs.First().Date.Format("2006-01-02"),
		PeriodTo:    rs.Last().Date.Format("2006-01-02"),
		PeriodSep:   bundle.T("common.to"),
		TradingDays: rs.Len(),
		DaysLabel:   bundle.T("common.trading_days"),
		DaysWord:    bundle.T("common.days"),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		GeneratedOn: bundle.T("common.generated_on"),

		SummaryTitle: bundle.T("categories.performance_summary"),
		ChartsTitle:  bundle.T("report.chart_analysis"),
		DetailTitle:  bundle.T("report.detailed_metrics"),
		MetricCol:    bundle.T("common.metric"),
		ValueCol:     bundle.T("common.value"),
		Footer:       bundle.T("report.generated_by"),
	}

	v.Cards = summaryCards(rep, bundle)
	v.Sections = detailSections(rep, bundle)

	freq := opts.ReturnsFreq
	if freq == "" {
		freq = FreqMonthly
	}
	for _, png := range renderCharts(rs, bench, freq, bundle) {
		encoded := base64.StdEncoding.EncodeToString(png)
		v.Charts = append(v.Charts, template.URL("data:image/png;base64,"+encoded))
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render report template: %w", err)
	}
	return buf.String(), nil
}

// Write generates the report and writes it to a timestamped file,
// returning the file path.
func Write(rep *analysis.Report, rs *series.ReturnSeries, bench *series.ReturnSeries, opts Options) (string, error) {
	html, err := Generate(rep, rs, bench, opts)
	if err != nil {
		return "", err
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	filename := filepath.Join(dir,
		fmt.Sprintf("portfolio_report_%s.html", time.Now().Format("20060102_150405")))

	if err := os.WriteFile(filename, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return filename, nil
}

func summaryCards(rep *analysis.Report, bundle *i18n.Bundle) []card {
	signClass := func(v float64) string {
		if v > 0 {
			return "positive"
		}
		if v < 0 {
			return "negative"
		}
		return ""
	}

	return []card{
		{bundle.T("metrics.total_return"), FormatMetric("total_return", rep.ReturnsStats["total_return"]), signClass(rep.ReturnsStats["total_return"])},
		{bundle.T("metrics.cagr"), FormatMetric("cagr", rep.ReturnsStats["cagr"]), signClass(rep.ReturnsStats["cagr"])},
		{bundle.T("metrics.sharpe"), FormatMetric("sharpe", rep.PerformanceMetrics["sharpe"]), signClass(rep.PerformanceMetrics["sharpe"])},
		{bundle.T("metrics.max_drawdown"), FormatMetric("max_drawdown", rep.RiskMetrics["max_drawdown"]), "negative"},
		{bundle.T("metrics.volatility"), FormatMetric("volatility", rep.RiskMetrics["volatility"]), ""},
		{bundle.T("metrics.sortino"), FormatMetric("sortino", rep.PerformanceMetrics["sortino"]), signClass(rep.PerformanceMetrics["sortino"])},
	}
}

func detailSections(rep *analysis.Report, bundle *i18n.Bundle) []section {
	mkRows := func(cat analysis.Category, names ...string) []row {
		rows := make([]row, 0, len(names))
		for _, name := range names {
			v, ok := cat[name]
			if !ok {
				continue
			}
			rows = append(rows, row{Label: bundle.T("metrics." + name), Value: FormatMetric(name, v)})
		}
		return rows
	}

	sections := []section{
		{
			Title: bundle.T("categories.returns_stats"),
			Rows:  mkRows(rep.ReturnsStats, "total_return", "cagr", "mean_return", "std_return", "skewness", "kurtosis"),
		},
		{
			Title: bundle.T("categories.risk_metrics"),
			Rows:  mkRows(rep.RiskMetrics, "volatility", "max_drawdown", "var_95", "cvar_95", "ulcer_index"),
		},
		{
			Title: bundle.T("categories.performance_metrics"),
			Rows: append(
				mkRows(rep.PerformanceMetrics, "sharpe", "sortino", "calmar", "omega"),
				mkRows(rep.DrawdownMetrics, "avg_drawdown", "recovery_factor")...),
		},
	}

	if rep.RelativeMetrics != nil {
		rows := mkRows(rep.RelativeMetrics, "excess_return", "tracking_error", "information_ratio")
		rows = append(rows, mkRows(rep.PerformanceMetrics, "alpha", "beta")...)
		sections = append(sections, section{
			Title: bundle.T("categories.relative_metrics"),
			Rows:  rows,
		})
	}

	return sections
}

func renderCharts(rs *series.ReturnSeries, bench *series.ReturnSeries, freq Frequency, bundle *i18n.Bundle) [][]byte {
	var pngs [][]byte
	if png, err := CumulativeChart(rs, bench, bundle); err == nil {
		pngs = append(pngs, png)
	}
	if png, err := DrawdownChart(rs, bundle); err == nil {
		pngs = append(pngs, png)
	}
	if png, err := ReturnsBarChart(rs, freq, bundle); err == nil {
		pngs = append(pngs, png)
	}
	return pngs
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Helvetica Neue', Arial, 'PingFang SC', 'Microsoft YaHei', sans-serif;
  line-height: 1.47; color: #1d1d1f; background: #f5f5f7; padding: 24px;
}
.container {
  max-width: 1100px; margin: 0 auto; background: #fff; border-radius: 18px;
  border: 1px solid rgba(0,0,0,0.05); box-shadow: 0 4px 16px rgba(0,0,0,0.04); overflow: hidden;
}
.header { padding: 48px 48px 32px; text-align: center; border-bottom: 1px solid rgba(0,0,0,0.08); }
.header h1 { font-size: 2.25rem; font-weight: 600; margin-bottom: 16px; }
.header-info { font-size: 1rem; color: #86868b; margin-bottom: 8px; }
.content { padding: 48px; }
.section { margin-bottom: 56px; }
.section h2 { font-size: 1.75rem; font-weight: 600; margin-bottom: 28px; }
.metrics-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 20px; }
.metric-card { padding: 28px 22px; border-radius: 16px; border: 1px solid rgba(0,0,0,0.06); }
.metric-title { font-size: 0.875rem; color: #86868b; margin-bottom: 10px; }
.metric-value { font-size: 2rem; font-weight: 600; }
.metric-value.positive { color: #22c55e; }
.metric-value.negative { color: #ef4444; }
.chart-container { text-align: center; margin: 24px 0; padding: 24px; border-radius: 16px; border: 1px solid rgba(0,0,0,0.06); }
.chart-container img { max-width: 100%; height: auto; border-radius: 12px; }
.metrics-table { width: 100%; border-collapse: separate; border-spacing: 0; border-radius: 12px; overflow: hidden; border: 1px solid rgba(0,0,0,0.06); }
.metrics-table th { background: #f5f5f7; padding: 14px 20px; text-align: left; font-size: 0.875rem; border-bottom: 1px solid rgba(0,0,0,0.06); }
.metrics-table td { padding: 14px 20px; border-bottom: 1px solid rgba(0,0,0,0.04); font-size: 0.875rem; }
.metrics-table tr:last-child td { border-bottom: none; }
.category-header { background: #f5f5f7 !important; font-weight: 600 !important; text-align: center !important; }
.footer { background: #f5f5f7; color: #86868b; padding: 28px; text-align: center; border-top: 1px solid rgba(0,0,0,0.06); }
.footer p { margin: 4px 0; font-size: 0.875rem; }
@media (prefers-color-scheme: dark) {
  body { color: #f5f5f7; background: #000; }
  .container { background: #1d1d1f; border-color: rgba(255,255,255,0.1); }
  .header, .metrics-table th, .metrics-table td { border-color: rgba(255,255,255,0.1); }
  .metric-card, .chart-container, .metrics-table { border-color: rgba(255,255,255,0.1); }
  .metrics-table th, .footer { background: #2c2c2e; }
  .category-header { background: #2c2c2e !important; }
  .chart-container img { background: #fff; }
}
@media (max-width: 768px) {
  .content, .header { padding: 24px; }
  .metrics-grid { grid-template-columns: 1fr; }
}
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>{{.Title}}</h1>
    <p class="header-info">{{.PeriodFrom}} {{.PeriodSep}} {{.PeriodTo}}</p>
    <p class="header-info">{{.DaysLabel}}: {{.TradingDays}} {{.DaysWord}} | {{.GeneratedOn}}: {{.GeneratedAt}}</p>
  </div>
  <div class="content">
    <div class="section">
      <h2>{{.SummaryTitle}}</h2>
      <div class="metrics-grid">
        {{range .Cards}}<div class="metric-card">
          <div class="metric-title">{{.Label}}</div>
          <div class="metric-value {{.Class}}">{{.Value}}</div>
        </div>
        {{end}}
      </div>
    </div>
    {{if .Charts}}<div class="section">
      <h2>{{.ChartsTitle}}</h2>
      {{range .Charts}}<div class="chart-container"><img src="{{.}}" alt=""></div>
      {{end}}
    </div>{{end}}
    <div class="section">
      <h2>{{.DetailTitle}}</h2>
      <table class="metrics-table">
        <thead><tr><th>{{.MetricCol}}</th><th>{{.ValueCol}}</th></tr></thead>
        <tbody>
          {{range .Sections}}<tr><td colspan="2" class="category-header">{{.Title}}</td></tr>
          {{range .Rows}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
          {{end}}{{end}}
        </tbody>
      </table>
    </div>
  </div>
  <div class="footer">
    <p>{{.Footer}}</p>
    <p>{{.GeneratedOn}}: {{.GeneratedAt}}</p>
  </div>
</div>
</body>
</html>
`))
