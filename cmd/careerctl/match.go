package main

import (
	"errors"

	"career-guide/internal/usecase"

	"github.com/spf13/cobra"
)

func newMatchCmd(root *rootOptions) *cobra.Command {
	var required, skills []string
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score user skills against required skills",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewMatchingUsecase(root.source(cmd))
			res := uc.ScoreMatch(required, skills)
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"match_score": res.MatchScore,
				"base_score":  res.BaseScore,
				"matched":     res.Matched,
				"missing":     res.Missing,
				"sparse":      res.Sparse,
			})
		},
	}
	cmd.Flags().StringSliceVarP(&required, "required", "r", nil, "Required skills, comma separated")
	cmd.Flags().StringSliceVarP(&skills, "skills", "s", nil, "User skills, comma separated")
	return cmd
}

func newKeywordsCmd() *cobra.Command {
	var description, in string
	var skills []string
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Extract technology keywords from a job description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if description == "" && in == "" {
				return errors.New("one of --description or --in is required")
			}
			if in != "" {
				b, err := readInput(cmd, in)
				if err != nil {
					return err
				}
				description = string(b)
			}

			keywords := usecase.NewMatchingUsecase(nil).ExtractKeywords(description, skills)
			if keywords == nil {
				keywords = []string{}
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{"keywords": keywords})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Job description text")
	cmd.Flags().StringVarP(&in, "in", "i", "", "Read the description from a file, - for stdin")
	cmd.Flags().StringSliceVarP(&skills, "skills", "s", nil, "User skills, comma separated")
	return cmd
}
