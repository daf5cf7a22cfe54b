package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
)

// parseResult is the JSON output of the parse command.
type parseResult struct {
	Success       bool   `json:"success"`
	Owner         string `json:"owner"`
	Repo          string `json:"repo"`
	NormalizedURL string `json:"normalized_url"`
	CodewikiURL   string `json:"codewiki_url"`
}

// NewParseCmd builds the parse subcommand.
func NewParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <locator>",
		Short: "Parse and normalise a repository locator",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ref, err := domain.ParseReference(args[0])
			if err != nil {
				return printError(err)
			}

			return printJSON(parseResult{
				Success:       true,
				Owner:         ref.Owner,
				Repo:          ref.Name,
				NormalizedURL: ref.NormalizedURL,
				CodewikiURL:   ref.CodewikiURL(),
			})
		},
	}
}
