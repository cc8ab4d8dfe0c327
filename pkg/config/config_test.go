package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "RISK_FREE_RATE", "PERIODS_PER_YEAR",
		"REPORT_LANGUAGE", "REPORT_OUTPUT_DIR", "REPORT_TITLE",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 0.0, cfg.Analysis.RiskFreeRate)
	assert.Equal(t, 252, cfg.Analysis.PeriodsPerYear)
	assert.Equal(t, "zh", cfg.Report.Language)
	assert.Equal(t, ".", cfg.Report.OutputDir)
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("RISK_FREE_RATE", "0.03")
	t.Setenv("PERIODS_PER_YEAR", "52")
	t.Setenv("REPORT_LANGUAGE", "en")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 0.03, cfg.Analysis.RiskFreeRate)
	assert.Equal(t, 52, cfg.Analysis.PeriodsPerYear)
	assert.Equal(t, "en", cfg.Report.Language)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PERIODS_PER_YEAR", "not-a-number")
	t.Setenv("RISK_FREE_RATE", "abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 252, cfg.Analysis.PeriodsPerYear)
	assert.Equal(t, 0.0, cfg.Analysis.RiskFreeRate)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid env", "ENV", "bogus"},
		{"negative periods", "PERIODS_PER_YEAR", "-1"},
		{"unsupported language", "REPORT_LANGUAGE", "fr"},
		{"zero rate limit", "RATE_LIMIT_RPS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
