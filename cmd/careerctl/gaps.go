package main

import (
	"career-guide/internal/usecase"

	"github.com/spf13/cobra"
)

func newGapsCmd(root *rootOptions) *cobra.Command {
	var in string
	var skills []string
	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Prioritise a skill-gap analysis",
		Long:  "Reads skill-gap analysis output, recomputes gaps and priority tiers, and re-scores suggested jobs when --skills is given.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readInput(cmd, in)
			if err != nil {
				return err
			}

			a, err := usecase.NewSkillGapUsecase(root.source(cmd)).AnalyzeRaw(raw, skills)
			if err != nil {
				return describePayloadError(err)
			}
			summary := make(map[string]int, len(a.Summary))
			for p, n := range a.Summary {
				summary[string(p)] = n
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"gaps":        a.Gaps,
				"summary":     summary,
				"job_matches": a.JobMatches,
			})
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "-", "Analysis payload file, - for stdin")
	cmd.Flags().StringSliceVarP(&skills, "skills", "s", nil, "User skills, comma separated")
	return cmd
}
