package main

import (
	"fmt"
	"io"
	"log"

	"career-guide/internal/domain/job"
	"career-guide/internal/usecase"

	"github.com/spf13/cobra"
)

func newFallbackCmd(root *rootOptions) *cobra.Command {
	var (
		count          int
		location       string
		employmentType string
		catalogPath    string
		skills         []string
	)
	cmd := &cobra.Command{
		Use:   "fallback",
		Short: "Generate fallback job postings from the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := job.DefaultCatalog()
			if catalogPath != "" {
				loaded, err := job.LoadCatalog(catalogPath)
				if err != nil {
					return fmt.Errorf("failed to load catalog: %w", err)
				}
				catalog = loaded
			}

			uc := usecase.NewJobSearchUsecase(nil, catalog, nil, root.source(cmd), 0, log.New(io.Discard, "", 0))
			postings, err := uc.Fallback(usecase.FallbackParams{
				Count:          count,
				Location:       location,
				EmploymentType: employmentType,
				Skills:         skills,
			})
			if err != nil {
				return fmt.Errorf("invalid --count %d: %w", count, err)
			}
			return writeJSON(cmd.OutOrStdout(), postings)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of postings, 0 for the whole catalog")
	cmd.Flags().StringVarP(&location, "location", "l", "", "Override the template location")
	cmd.Flags().StringVarP(&employmentType, "type", "t", "", "Override the template employment type")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file replacing the built-in templates")
	cmd.Flags().StringSliceVarP(&skills, "skills", "s", nil, "User skills, comma separated")
	return cmd
}
