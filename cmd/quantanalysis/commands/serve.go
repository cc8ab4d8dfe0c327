package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/wonny/quantanalysis/internal/analysis"
	"github.com/wonny/quantanalysis/internal/api"
	"github.com/wonny/quantanalysis/internal/api/handlers"
	"github.com/wonny/quantanalysis/pkg/config"
	"github.com/wonny/quantanalysis/pkg/logger"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 분석 엔드포인트 제공
- HTML 리포트 엔드포인트 제공

Endpoints:
  GET  /health              - Health check
  POST /api/v1/analyze      - 지표 리포트 계산
  POST /api/v1/report       - HTML 리포트 렌더링

Example:
  go run ./cmd/quantanalysis serve
  go run ./cmd/quantanalysis serve --port 8080`,
	RunE: runServe,
}

var (
	servePort string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	// Flags
	serveCmd.Flags().StringVar(&servePort, "port", "", "API 서버 포트 (기본: config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("=== quantanalysis API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if servePort != "" {
		cfg.Port = servePort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Create analyzer
	analyzer, err := analysis.New(cfg.Analysis.RiskFreeRate, cfg.Analysis.PeriodsPerYear, log)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	// 4. Create rate limiter
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)

	// 5. Create handler
	analysisHandler := handlers.NewAnalysisHandler(analyzer, cfg, log)

	// 6. Create router
	router := api.NewRouter(analysisHandler, limiter, log)

	// 7. Create server
	server := api.New(cfg, log, router)

	// 8. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  POST /api/v1/analyze")
	fmt.Println("  POST /api/v1/report")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
