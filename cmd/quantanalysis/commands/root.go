package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quantanalysis",
	Short: "quantanalysis - 포트폴리오 수익률 분석 엔진",
	Long: `quantanalysis Unified CLI

수익률 시계열에서 리스크/성과 지표를 계산하고 HTML 리포트를 생성.

Usage:
  go run ./cmd/quantanalysis [command]

Examples:
  go run ./cmd/quantanalysis analyze --input returns.csv
  go run ./cmd/quantanalysis report --input returns.csv --benchmark bench.csv
  go run ./cmd/quantanalysis serve`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
