// Command nucleo is the demonstration and batch driver for the nucleo
// toolkit: parity-block verification, hotspot metadata sealing, and SNP
// payload embedding. The library packages stay pure; everything with I/O
// or a process exit lives here.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nucleo",
	Short: "DNA sequence integrity tools: parity blocks, sealed hotspots, SNP embedding",
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
