package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Analysis defaults. Explicit values are always threaded into the
	// engine; these are only the CLI/API fallbacks.
	Analysis AnalysisConfig

	// Report
	Report ReportConfig

	// API rate limiting
	RateLimit RateLimitConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// AnalysisConfig holds default engine parameters
type AnalysisConfig struct {
	RiskFreeRate   float64 // annualized (e.g. 0.03 = 3%)
	PeriodsPerYear int     // 252 daily, 52 weekly, 12 monthly
}

// ReportConfig holds report generation defaults
type ReportConfig struct {
	Language  string // "zh" or "en"
	OutputDir string
	Title     string // empty = localized default
}

// RateLimitConfig holds API rate limiter settings
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		Analysis: AnalysisConfig{
			RiskFreeRate:   getEnvAsFloat("RISK_FREE_RATE", 0.0),
			PeriodsPerYear: getEnvAsInt("PERIODS_PER_YEAR", 252),
		},

		Report: ReportConfig{
			Language:  getEnv("REPORT_LANGUAGE", "zh"),
			OutputDir: getEnv("REPORT_OUTPUT_DIR", "."),
			Title:     getEnv("REPORT_TITLE", ""),
		},

		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Analysis.PeriodsPerYear <= 0 {
		return fmt.Errorf("PERIODS_PER_YEAR must be a positive integer")
	}

	if c.Report.Language != "zh" && c.Report.Language != "en" {
		return fmt.Errorf("REPORT_LANGUAGE must be one of: zh, en")
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}
