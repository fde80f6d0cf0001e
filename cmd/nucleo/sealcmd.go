package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nucleo/hotspot"
	"github.com/katalvlaran/nucleo/seal"
)

var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Encrypt hotspot metadata records into per-record envelopes",
	Long: `seal parses a hotspot record file and encrypts each record's
canonical metadata block under the XChaCha20 key. Every record becomes a
hotspot_N.bin envelope (nonce||ciphertext) plus a hotspot_N.meta sidecar
with the public fields.`,
	Run: runSeal,
}

var (
	sealConfigPath string
	sealInput      string
	sealKeyFile    string
	sealOutputDir  string
	sealWorkers    int
)

func init() {
	sealCmd.Flags().StringVar(&sealConfigPath, "config", "", "optional YAML config file")
	sealCmd.Flags().StringVar(&sealInput, "input", "", "hotspot record file")
	sealCmd.Flags().StringVar(&sealKeyFile, "key", "", "hex key file (64 hex digits)")
	sealCmd.Flags().StringVar(&sealOutputDir, "out", "", "output directory for envelopes")
	sealCmd.Flags().IntVar(&sealWorkers, "workers", 0, "parallel sealers (default from config)")
	rootCmd.AddCommand(sealCmd)
}

func runSeal(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(sealConfigPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	if sealInput != "" {
		cfg.Input = sealInput
	}
	if sealKeyFile != "" {
		cfg.KeyFile = sealKeyFile
	}
	if sealOutputDir != "" {
		cfg.OutputDir = sealOutputDir
	}
	if sealWorkers > 0 {
		cfg.Workers = sealWorkers
	}

	if err := runSealBatch(cfg); err != nil {
		slog.Error("seal", "err", err)
		os.Exit(1)
	}
}

func runSealBatch(cfg Config) error {
	if cfg.Input == "" || cfg.KeyFile == "" {
		return fmt.Errorf("seal requires --input and --key (or config equivalents)")
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaultConfig().Workers
	}
	key, err := seal.LoadKeyFile(cfg.KeyFile)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := hotspot.ParseRecords(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, rec := range records {
		i, rec := i, rec // per-iteration copies; go directive is 1.21 for the local toolchain
		g.Go(func() error {
			return sealRecord(cfg.OutputDir, i, rec, key)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("seal complete", "records", len(records), "dir", cfg.OutputDir)

	return nil
}

// sealRecord writes hotspot_N.bin and its .meta sidecar. The sidecar keeps
// the fields that stay public: hotspot count, the alternate when present,
// and the envelope geometry.
func sealRecord(dir string, idx int, rec hotspot.Record, key []byte) error {
	env, err := seal.Seal(key, []byte(rec.Plaintext()))
	if err != nil {
		return fmt.Errorf("record %d: %w", idx, err)
	}
	raw, err := env.MarshalBinary()
	if err != nil {
		return fmt.Errorf("record %d: %w", idx, err)
	}

	binPath := filepath.Join(dir, fmt.Sprintf("hotspot_%d.bin", idx))
	if err := os.WriteFile(binPath, raw, 0o644); err != nil {
		return err
	}

	meta := fmt.Sprintf("Hotspot Count: %d\n", len(rec.Positions))
	if rec.Alternate != "" {
		meta += fmt.Sprintf("Alternate: %s\n", rec.Alternate)
	}
	meta += fmt.Sprintf("Nonce (hex): %s\nCiphertext Length: %d\n",
		hex.EncodeToString(env.Nonce[:]), len(env.Ciphertext))

	metaPath := filepath.Join(dir, fmt.Sprintf("hotspot_%d.meta", idx))

	return os.WriteFile(metaPath, []byte(meta), 0o644)
}
