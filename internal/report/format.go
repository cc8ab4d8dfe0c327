package report

import "fmt"

// Format is an explicit per-metric display rule. Metric names map to a
// Format value; formatting never dispatches on substrings of the name.
type Format int

const (
	FormatPercent2 Format = iota // 12.34%
	FormatPercent3               // 12.345%
	FormatDecimal3               // 1.234
	FormatDecimal4               // 1.2345
)

// Render formats a value according to the rule.
func (f Format) Render(v float64) string {
	switch f {
	case FormatPercent2:
		return fmt.Sprintf("%.2f%%", v*100)
	case FormatPercent3:
		return fmt.Sprintf("%.3f%%", v*100)
	case FormatDecimal4:
		return fmt.Sprintf("%.4f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

// metricFormats is the display rule per report metric key.
var metricFormats = map[string]Format{
	"total_return":      FormatPercent2,
	"cagr":              FormatPercent2,
	"mean_return":       FormatPercent3,
	"std_return":        FormatPercent3,
	"skewness":          FormatDecimal3,
	"kurtosis":          FormatDecimal3,
	"volatility":        FormatPercent2,
	"max_drawdown":      FormatPercent2,
	"avg_drawdown":      FormatPercent2,
	"var_95":            FormatPercent3,
	"cvar_95":           FormatPercent3,
	"ulcer_index":       FormatDecimal4,
	"sharpe":            FormatDecimal3,
	"sortino":           FormatDecimal3,
	"calmar":            FormatDecimal3,
	"omega":             FormatDecimal3,
	"recovery_factor":   FormatDecimal3,
	"alpha":             FormatPercent3,
	"beta":              FormatDecimal3,
	"excess_return":     FormatPercent2,
	"tracking_error":    FormatPercent2,
	"information_ratio": FormatDecimal3,
}

// FormatMetric renders a metric value using its registered rule,
// defaulting to three decimals for unknown names.
func FormatMetric(name string, v float64) string {
	f, ok := metricFormats[name]
	if !ok {
		f = FormatDecimal3
	}
	return f.Render(v)
}
