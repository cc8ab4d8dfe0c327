package main

import (
	"os"

	"github.com/wonny/quantanalysis/cmd/quantanalysis/commands"
)

// main is the entry point for the quantanalysis CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/quantanalysis [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
