package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Render(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		value  float64
		want   string
	}{
		{"percent two decimals", FormatPercent2, 0.25, "25.00%"},
		{"percent three decimals", FormatPercent3, 0.1, "10.000%"},
		{"decimal three", FormatDecimal3, 1.23456, "1.235"},
		{"decimal four", FormatDecimal4, 1.23456, "1.2346"},
		{"negative percent", FormatPercent2, -0.05, "-5.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.Render(tt.value))
		})
	}
}

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"total_return", 0.0659, "6.59%"},
		{"var_95", -0.018, "-1.800%"},
		{"sharpe", 1.23456, "1.235"},
		{"ulcer_index", 0.028867, "0.0289"},
		{"beta", 1.0, "1.000"},
		{"unknown_metric", 0.5, "0.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMetric(tt.name, tt.value))
		})
	}
}

func TestMetricFormats_CoverReportKeys(t *testing.T) {
	// Every key the assembler emits has an explicit display rule
	keys := []string{
		"total_return", "cagr", "mean_return", "std_return", "skewness", "kurtosis",
		"volatility", "max_drawdown", "avg_drawdown", "var_95", "cvar_95", "ulcer_index",
		"sharpe", "sortino", "calmar", "omega", "recovery_factor",
		"alpha", "beta", "excess_return", "tracking_error", "information_ratio",
	}
	for _, key := range keys {
		_, ok := metricFormats[key]
		assert.True(t, ok, "no format rule for %q", key)
	}
}
