package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"career-guide/internal/domain/matching"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	seed uint64
}

// source returns a seeded source when --seed was given.
func (o *rootOptions) source(cmd *cobra.Command) matching.RandomSource {
	if cmd.Flags().Changed("seed") {
		return matching.NewSeededSource(o.seed)
	}
	return matching.DefaultSource()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "careerctl",
		Short:         "Career guide scoring tools",
		Long:          "careerctl scores skill matches, extracts keywords, generates fallback postings, rates resumes for ATS completeness and prioritises skill gaps.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "Seed the score jitter for reproducible output")

	root.AddCommand(
		newMatchCmd(opts),
		newKeywordsCmd(),
		newFallbackCmd(opts),
		newATSCmd(),
		newGapsCmd(opts),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return b, nil
}
