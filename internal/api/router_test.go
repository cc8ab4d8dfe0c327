package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/wonny/quantanalysis/internal/analysis"
	"github.com/wonny/quantanalysis/internal/api/handlers"
	"github.com/wonny/quantanalysis/pkg/config"
	"github.com/wonny/quantanalysis/pkg/logger"
)

func testRouter(t *testing.T, limiter *rate.Limiter) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Port: "0",
		Env:  "development",
		Analysis: config.AnalysisConfig{
			RiskFreeRate:   0,
			PeriodsPerYear: 252,
		},
		Report: config.ReportConfig{
			Language:  "en",
			OutputDir: t.TempDir(),
		},
		LogLevel:  "error",
		LogFormat: "json",
	}
	log := logger.NewNop()

	analyzer, err := analysis.New(cfg.Analysis.RiskFreeRate, cfg.Analysis.PeriodsPerYear, log)
	require.NoError(t, err)

	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	handler := handlers.NewAnalysisHandler(analyzer, cfg, log)
	return NewRouter(handler, limiter, log)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := testRouter(t, nil)

	payload := `{
		"returns": [
			{"date": "2024-01-01", "value": 0.10},
			{"date": "2024-01-02", "value": -0.05},
			{"date": "2024-01-03", "value": 0.02}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report analysis.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.InDelta(t, 1.1*0.95*1.02-1, report.ReturnsStats["total_return"], 1e-9)
	assert.InDelta(t, -0.05, report.RiskMetrics["max_drawdown"], 1e-9)
	assert.Nil(t, report.RelativeMetrics)
}

func TestAnalyzeEndpoint_NullValuesDropped(t *testing.T) {
	router := testRouter(t, nil)

	payload := `{
		"returns": [
			{"date": "2024-01-01", "value": 0.01},
			{"date": "2024-01-02", "value": null},
			{"date": "2024-01-03", "value": 0.02}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report analysis.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.InDelta(t, 1.01*1.02-1, report.ReturnsStats["total_return"], 1e-9)
}

func TestAnalyzeEndpoint_BadRequests(t *testing.T) {
	router := testRouter(t, nil)

	tests := []struct {
		name    string
		payload string
	}{
		{"malformed json", `{not-json`},
		{"empty series", `{"returns": []}`},
		{"all values null", `{"returns": [{"date": "2024-01-01", "value": null}]}`},
		{"bad dates", `{"returns": [{"date": "bogus", "value": 0.01}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAnalyzeEndpoint_WithBenchmark(t *testing.T) {
	router := testRouter(t, nil)

	payload := `{
		"returns": [
			{"date": "2024-01-01", "value": 0.01},
			{"date": "2024-01-02", "value": -0.02},
			{"date": "2024-01-03", "value": 0.03}
		],
		"benchmark": [
			{"date": "2024-01-01", "value": 0.005},
			{"date": "2024-01-02", "value": -0.01},
			{"date": "2024-01-03", "value": 0.02}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report analysis.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.NotNil(t, report.RelativeMetrics)
	assert.Contains(t, report.RelativeMetrics, "tracking_error")
	assert.Contains(t, report.PerformanceMetrics, "beta")
}

func TestReportEndpoint(t *testing.T) {
	router := testRouter(t, nil)

	payload := `{
		"returns": [
			{"date": "2024-01-01", "value": 0.01},
			{"date": "2024-01-02", "value": -0.02},
			{"date": "2024-01-03", "value": 0.03}
		],
		"language": "en",
		"title": "API Report"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/report", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "API Report")
	assert.Contains(t, rec.Body.String(), "Sharpe Ratio")
}

func TestRateLimit(t *testing.T) {
	// One request allowed, no refill during the test
	router := testRouter(t, rate.NewLimiter(rate.Limit(0.0001), 1))

	body := func() *bytes.Reader {
		return bytes.NewReader([]byte(`{"returns": [{"date": "2024-01-01", "value": 0.01}]}`))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body()))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body()))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Health stays outside the limited subrouter
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
