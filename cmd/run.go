package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MullaAhmed/claude-skill-generator/internal/adapters/driven/config"
	"github.com/MullaAhmed/claude-skill-generator/internal/connectors/firecrawl"
	"github.com/MullaAhmed/claude-skill-generator/internal/connectors/github"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/services"
)

// runSummary is the JSON output of the run command.
type runSummary struct {
	Success bool  `json:"success"`
	Results []any `json:"results"`
}

// NewRunCmd builds the run subcommand: the concurrent front half of the
// pipeline (parse, verify, enhanced fetch) for one or more locators. The
// workers share a single rate-limit budget for the hosting API.
func NewRunCmd() *cobra.Command {
	var (
		baseDir     string
		concurrency int
		maxChars    int
	)

	runCmd := &cobra.Command{
		Use:   "run <locator> [locator...]",
		Short: "Parse, verify and research repositories concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			cfg := config.Resolve(".")

			client := github.NewClient(cfg, github.NewRateLimiter())
			pipeline := services.NewPipeline(
				services.NewVerifier(client),
				firecrawl.NewClient(cfg.FirecrawlAPIKey, maxChars),
				baseDir,
				concurrency,
			)

			results := pipeline.ProcessAll(cobraCmd.Context(), args)

			summary := runSummary{Success: true}
			for _, result := range results {
				if result.Err != nil {
					summary.Success = false
				}
				summary.Results = append(summary.Results, result)
			}

			if err := printJSON(summary); err != nil {
				return err
			}
			if !summary.Success {
				return errCommandFailed
			}
			return nil
		},
	}

	runCmd.Flags().StringVar(&baseDir, "dir", ".claude/tmp/skills", "base directory for per-repository work dirs")
	runCmd.Flags().IntVar(&concurrency, "concurrency", services.DefaultConcurrency, "maximum parallel workers")
	runCmd.Flags().IntVar(&maxChars, "max-chars", 0, "truncate scraped content to this many characters (0 = unlimited)")

	return runCmd
}
