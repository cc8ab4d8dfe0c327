package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/quantanalysis/internal/analysis"
	"github.com/wonny/quantanalysis/internal/ingest"
	"github.com/wonny/quantanalysis/internal/report"
	"github.com/wonny/quantanalysis/internal/series"
	"github.com/wonny/quantanalysis/pkg/config"
	"github.com/wonny/quantanalysis/pkg/logger"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "HTML 리포트 생성",
	Long: `수익률 시계열을 분석하고 차트가 포함된 HTML 리포트를 생성합니다.

이 명령어는:
- 전체 지표 리포트 계산
- 누적수익 / 드로다운 / 기간수익 차트 렌더링
- 단일 HTML 파일로 저장

Example:
  go run ./cmd/quantanalysis report --input returns.csv
  go run ./cmd/quantanalysis report --input returns.csv --benchmark bench.csv --lang en
  go run ./cmd/quantanalysis report --input returns.csv --output ./reports --freq W`,
	RunE: runReport,
}

var (
	reportInput     string
	reportBenchmark string
	reportTitle     string
	reportLang      string
	reportOutput    string
	reportFreq      string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	// Flags
	reportCmd.Flags().StringVar(&reportInput, "input", "", "수익률 CSV 파일 (date,return)")
	reportCmd.Flags().StringVar(&reportBenchmark, "benchmark", "", "벤치마크 CSV 파일 (optional)")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "리포트 제목 (기본: config)")
	reportCmd.Flags().StringVar(&reportLang, "lang", "", "리포트 언어 zh|en (기본: config)")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "출력 디렉토리 (기본: config)")
	reportCmd.Flags().StringVar(&reportFreq, "freq", "M", "수익률 차트 주기 D|W|M")
	reportCmd.MarkFlagRequired("input")
}

func runReport(cmd *cobra.Command, args []string) error {
	fmt.Println("=== quantanalysis Report ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	title := reportTitle
	if title == "" {
		title = cfg.Report.Title
	}
	lang := reportLang
	if lang == "" {
		lang = cfg.Report.Language
	}
	outputDir := reportOutput
	if outputDir == "" {
		outputDir = cfg.Report.OutputDir
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Load and prepare series
	rawReturns, err := ingest.LoadCSV(reportInput)
	if err != nil {
		return fmt.Errorf("load returns: %w", err)
	}
	rs, err := series.Prepare(rawReturns)
	if err != nil {
		return fmt.Errorf("prepare returns: %w", err)
	}

	var bench *series.ReturnSeries
	if reportBenchmark != "" {
		rawBench, err := ingest.LoadCSV(reportBenchmark)
		if err != nil {
			return fmt.Errorf("load benchmark: %w", err)
		}
		bench, err = series.Prepare(rawBench)
		if err != nil {
			return fmt.Errorf("prepare benchmark: %w", err)
		}
	}

	// 4. Run analysis
	analyzer, err := analysis.New(cfg.Analysis.RiskFreeRate, cfg.Analysis.PeriodsPerYear, log)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}
	rep := analyzer.AnalyzeSeries(rs, bench)

	// 5. Write HTML report
	path, err := report.Write(rep, rs, bench, report.Options{
		Title:       title,
		Language:    lang,
		ReturnsFreq: report.Frequency(reportFreq),
		OutputDir:   outputDir,
	})
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	log.WithField("path", path).Info("Report generated")
	fmt.Printf("\n✅ Report written to %s\n", path)
	return nil
}
