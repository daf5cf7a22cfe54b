package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MullaAhmed/claude-skill-generator/internal/adapters/driven/archive"
	"github.com/MullaAhmed/claude-skill-generator/internal/adapters/driven/skillfs"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/services"
)

// packageResult is the JSON output of the package command.
type packageResult struct {
	Success     bool   `json:"success"`
	ArchivePath string `json:"archive_path"`
	EntryCount  int    `json:"entry_count"`
}

// packageFailure carries the validation report when packaging is refused.
type packageFailure struct {
	Success bool                     `json:"success"`
	Kind    string                   `json:"kind"`
	Error   string                   `json:"error"`
	Report  *domain.ValidationReport `json:"report,omitempty"`
}

// NewPackageCmd builds the package subcommand.
func NewPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package <skillDir> [outputDir]",
		Short: "Validate a skill directory and package it into a .skill archive",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			outputDir := ""
			if len(args) > 1 {
				outputDir = args[1]
			}

			tree, err := skillfs.NewLoader().Load(args[0])
			if err != nil {
				return printError(err)
			}

			validator := services.NewValidator(services.DefaultValidatorConfig())
			result, err := archive.NewPackager(validator).Package(tree, outputDir)
			if err != nil {
				var pkgErr *domain.PackagingError
				if errors.As(err, &pkgErr) && pkgErr.Report != nil {
					if printErr := printJSON(packageFailure{
						Success: false,
						Kind:    errorKind(err),
						Error:   err.Error(),
						Report:  pkgErr.Report,
					}); printErr != nil {
						return printErr
					}
					return errCommandFailed
				}
				return printError(err)
			}

			return printJSON(packageResult{
				Success:     true,
				ArchivePath: result.Path,
				EntryCount:  result.EntryCount,
			})
		},
	}
}
