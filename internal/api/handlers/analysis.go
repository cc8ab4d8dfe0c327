package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/wonny/quantanalysis/internal/analysis"
	"github.com/wonny/quantanalysis/internal/report"
	"github.com/wonny/quantanalysis/internal/series"
	"github.com/wonny/quantanalysis/pkg/config"
	"github.com/wonny/quantanalysis/pkg/logger"
)

// AnalysisHandler handles analysis API endpoints
// ⭐ SSOT: 분석 API 핸들러는 이 구조체에서만
type AnalysisHandler struct {
	analyzer *analysis.Analyzer
	config   *config.Config
	logger   *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer *analysis.Analyzer, cfg *config.Config, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		config:   cfg,
		logger:   log,
	}
}

// PointRequest is one (date, return) observation. A null value marks a
// missing observation and is dropped during preparation.
type PointRequest struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// AnalyzeRequest represents an analysis request
type AnalyzeRequest struct {
	Returns   []PointRequest `json:"returns"`
	Benchmark []PointRequest `json:"benchmark,omitempty"`
}

// Analyze computes the full metrics report for a return series
// POST /api/v1/analyze
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rep, err := h.analyzer.Analyze(toRawPoints(req.Returns), toRawPoints(req.Benchmark))
	if err != nil {
		h.respondAnalysisError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rep)
}

// ReportRequest represents an HTML report request
type ReportRequest struct {
	AnalyzeRequest
	Title    string `json:"title,omitempty"`
	Language string `json:"language,omitempty"` // "zh" or "en"
}

// Report renders the full HTML report for a return series
// POST /api/v1/report
func (h *AnalysisHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rs, err := series.Prepare(toRawPoints(req.Returns))
	if err != nil {
		h.respondAnalysisError(w, err)
		return
	}

	var bench *series.ReturnSeries
	if req.Benchmark != nil {
		bench, err = series.Prepare(toRawPoints(req.Benchmark))
		if err != nil {
			h.respondAnalysisError(w, err)
			return
		}
	}

	rep := h.analyzer.AnalyzeSeries(rs, bench)

	lang := req.Language
	if lang == "" {
		lang = h.config.Report.Language
	}

	html, err := report.Generate(rep, rs, bench, report.Options{
		Title:    req.Title,
		Language: lang,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate report")
		respondError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// toRawPoints converts request points, mapping null values to NaN so the
// preparation step drops them.
func toRawPoints(points []PointRequest) []series.RawPoint {
	if points == nil {
		return nil
	}
	raw := make([]series.RawPoint, len(points))
	for i, p := range points {
		value := math.NaN()
		if p.Value != nil {
			value = *p.Value
		}
		raw[i] = series.RawPoint{Key: p.Date, Value: value}
	}
	return raw
}

// respondAnalysisError maps malformed-input errors to 400
func (h *AnalysisHandler) respondAnalysisError(w http.ResponseWriter, err error) {
	if errors.Is(err, series.ErrInvalidInput) || errors.Is(err, series.ErrInvalidIndex) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.WithError(err).Error("Analysis failed")
	respondError(w, http.StatusInternalServerError, "Analysis failed")
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
