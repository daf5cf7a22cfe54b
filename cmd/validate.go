package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MullaAhmed/claude-skill-generator/internal/adapters/driven/skillfs"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/services"
)

// NewValidateCmd builds the validate subcommand.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <skillDir>",
		Short: "Run the conformance ruleset over a skill directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tree, err := skillfs.NewLoader().Load(args[0])
			if err != nil {
				return printError(err)
			}

			validator := services.NewValidator(services.DefaultValidatorConfig())
			report := validator.Validate(tree)

			if err := printJSON(report); err != nil {
				return err
			}
			if !report.Passed {
				return errCommandFailed
			}
			return nil
		},
	}
}
