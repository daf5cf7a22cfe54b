package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MullaAhmed/claude-skill-generator/internal/adapters/driven/config"
	"github.com/MullaAhmed/claude-skill-generator/internal/connectors/github"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/services"
)

// verifyResult is the JSON output of the verify command.
type verifyResult struct {
	Success bool   `json:"success"`
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	*domain.RepositoryMetadata
}

// NewVerifyCmd builds the verify subcommand.
func NewVerifyCmd() *cobra.Command {
	var token string

	verifyCmd := &cobra.Command{
		Use:   "verify <locator>",
		Short: "Verify a repository exists and fetch its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			ref, err := domain.ParseReference(args[0])
			if err != nil {
				return printError(err)
			}

			cfg := config.Resolve(".")
			if token != "" {
				cfg.GitHubToken = token
			}

			verifier := services.NewVerifier(github.NewClient(cfg, nil))
			metadata, err := verifier.Verify(cobraCmd.Context(), ref)
			if err != nil {
				return printError(err)
			}

			return printJSON(verifyResult{
				Success:            true,
				Owner:              ref.Owner,
				Repo:               ref.Name,
				RepositoryMetadata: metadata,
			})
		},
	}

	verifyCmd.Flags().StringVar(&token, "token", "", "GitHub token (overrides configured sources)")

	return verifyCmd
}
