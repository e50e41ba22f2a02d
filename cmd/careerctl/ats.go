package main

import (
	"errors"
	"fmt"

	"career-guide/internal/payload"
	"career-guide/internal/usecase"

	"github.com/spf13/cobra"
)

func newATSCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "ats",
		Short: "Score a parsed resume for ATS completeness",
		Long:  "Reads resume parser output (JSON, optionally inside a markdown fence) and prints the ATS score with each check.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readInput(cmd, in)
			if err != nil {
				return err
			}

			profile, report, err := usecase.NewResumeUsecase().ScoreRaw(raw)
			if err != nil {
				return describePayloadError(err)
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"ats_score": report.Score,
				"checks":    report.Checks,
				"profile":   profile,
			})
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "-", "Resume payload file, - for stdin")
	return cmd
}

func describePayloadError(err error) error {
	var ve *payload.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("payload rejected: %w", ve)
	}
	return fmt.Errorf("payload rejected: %w", err)
}
