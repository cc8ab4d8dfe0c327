package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/quantanalysis/internal/analysis"
	"github.com/wonny/quantanalysis/internal/ingest"
	"github.com/wonny/quantanalysis/internal/report"
	"github.com/wonny/quantanalysis/internal/series"
	"github.com/wonny/quantanalysis/pkg/config"
	"github.com/wonny/quantanalysis/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "수익률 시계열 분석",
	Long: `CSV 수익률 시계열에서 전체 지표 리포트를 계산합니다.

이 명령어는:
- CSV 파일에서 (날짜, 수익률) 로드
- 수익 통계 / 리스크 지표 / 성과 지표 계산
- 벤치마크 제공 시 상대 지표 계산

Example:
  go run ./cmd/quantanalysis analyze --input returns.csv
  go run ./cmd/quantanalysis analyze --input returns.csv --benchmark bench.csv
  go run ./cmd/quantanalysis analyze --input returns.csv --json`,
	RunE: runAnalyze,
}

var (
	analyzeInput     string
	analyzeBenchmark string
	analyzeRiskFree  float64
	analyzePPY       int
	analyzeJSON      bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Flags
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "수익률 CSV 파일 (date,return)")
	analyzeCmd.Flags().StringVar(&analyzeBenchmark, "benchmark", "", "벤치마크 CSV 파일 (optional)")
	analyzeCmd.Flags().Float64Var(&analyzeRiskFree, "rf", -1, "연간 무위험 수익률 (기본: config)")
	analyzeCmd.Flags().IntVar(&analyzePPY, "ppy", 0, "연간 기간 수 252/52/12 (기본: config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "JSON 출력")
	analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("=== quantanalysis Analyze ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flag overrides
	riskFree := cfg.Analysis.RiskFreeRate
	if analyzeRiskFree >= 0 {
		riskFree = analyzeRiskFree
	}
	ppy := cfg.Analysis.PeriodsPerYear
	if analyzePPY > 0 {
		ppy = analyzePPY
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Load series
	returns, err := ingest.LoadCSV(analyzeInput)
	if err != nil {
		return fmt.Errorf("load returns: %w", err)
	}

	var benchmark []series.RawPoint
	if analyzeBenchmark != "" {
		benchmark, err = ingest.LoadCSV(analyzeBenchmark)
		if err != nil {
			return fmt.Errorf("load benchmark: %w", err)
		}
	}

	// 4. Run analysis
	analyzer, err := analysis.New(riskFree, ppy, log)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	rep, err := analyzer.Analyze(returns, benchmark)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	// 5. Print result
	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	printCategory("Returns", rep.ReturnsStats,
		"total_return", "cagr", "mean_return", "std_return", "skewness", "kurtosis")
	printCategory("Risk", rep.RiskMetrics,
		"volatility", "max_drawdown", "var_95", "cvar_95", "ulcer_index")
	printCategory("Performance", rep.PerformanceMetrics,
		"sharpe", "sortino", "calmar", "omega", "alpha", "beta", "information_ratio")
	printCategory("Drawdown", rep.DrawdownMetrics,
		"max_drawdown", "avg_drawdown", "recovery_factor")
	if rep.RelativeMetrics != nil {
		printCategory("Relative", rep.RelativeMetrics,
			"excess_return", "tracking_error", "information_ratio")
	}

	fmt.Println("\n✅ Analysis complete")
	return nil
}

// printCategory prints one metric category as an aligned block
func printCategory(title string, cat analysis.Category, names ...string) {
	fmt.Printf("\n--- %s ---\n", title)
	for _, name := range names {
		v, ok := cat[name]
		if !ok {
			continue
		}
		fmt.Printf("  %-20s %s\n", name, report.FormatMetric(name, v))
	}
}
