package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nucleo/snpembed"
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embed a payload into a sequence at candidate SNP positions",
	Long: `embed writes payload bits, MSB first, into a DNA sequence by
substituting alleles at the given candidate positions. The reference base
of each candidate is read from the sequence itself, so a stale position
list fails loudly instead of corrupting silently.`,
	Run: runEmbed,
}

var (
	embedSequence  string
	embedPayload   string
	embedPositions string
)

func init() {
	embedCmd.Flags().StringVar(&embedSequence, "sequence", "", "carrier DNA sequence")
	embedCmd.Flags().StringVar(&embedPayload, "payload", "", "payload as hex digits")
	embedCmd.Flags().StringVar(&embedPositions, "positions", "", "comma-separated candidate positions")
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(cmd *cobra.Command, args []string) {
	if err := runEmbedOnce(embedSequence, embedPayload, embedPositions); err != nil {
		slog.Error("embed", "err", err)
		os.Exit(1)
	}
}

func runEmbedOnce(sequence, payloadHex, positions string) error {
	if sequence == "" || payloadHex == "" || positions == "" {
		return fmt.Errorf("embed requires --sequence, --payload and --positions")
	}
	payload, err := hex.DecodeString(payloadHex)
	if err != nil {
		return fmt.Errorf("payload: %w", err)
	}

	candidates, err := candidatesFrom(sequence, positions)
	if err != nil {
		return err
	}

	res, err := snpembed.Embed(sequence, candidates, payload)
	if err != nil {
		return err
	}

	fmt.Printf("Capacity: %d bits, payload: %d bits\n",
		snpembed.Capacity(candidates), len(payload)*8)
	fmt.Println(res.Sequence)
	for _, a := range res.Alleles {
		fmt.Printf("  pos %d: %c -> %c (bit %d)\n", a.Position, a.Reference, a.Allele, a.Bit)
	}

	return nil
}

// candidatesFrom builds the candidate list, taking each reference base from
// the sequence at the named position.
func candidatesFrom(sequence, positions string) ([]snpembed.CandidateSNP, error) {
	var candidates []snpembed.CandidateSNP
	for _, token := range strings.Split(positions, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		p, err := strconv.Atoi(token)
		if err != nil || p < 0 || p >= len(sequence) {
			return nil, fmt.Errorf("position %q out of range for %d-base sequence", token, len(sequence))
		}
		candidates = append(candidates, snpembed.CandidateSNP{
			Position:  p,
			Reference: sequence[p],
		})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidate positions given")
	}

	return candidates, nil
}
