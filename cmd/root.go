// Package cmd wires the CLI surface: one subcommand per core pipeline
// operation, printing JSON results to stdout and diagnostics to stderr.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
	"github.com/MullaAhmed/claude-skill-generator/internal/logger"
)

var version = "dev" // Set at build time using -ldflags

// errCommandFailed signals a non-zero exit after the JSON error payload has
// already been printed.
var errCommandFailed = errors.New("command failed")

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// NewRootCmd builds the root command and its subcommands.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "skillforge <command> [args]",
		Short: "Turn a GitHub repository into a validated, packaged skill",
		Long: `skillforge converts a GitHub repository reference into a distributable
skill package. The deterministic pipeline stages are exposed as
subcommands: parse a locator, verify it against the GitHub API, validate
a candidate skill directory and package it into a .skill archive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.SetVerbose(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline diagnostics to stderr")

	rootCmd.AddCommand(NewParseCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewPackageCmd())
	rootCmd.AddCommand(NewRunCmd())

	return rootCmd
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// errorPayload is the uniform JSON error object.
type errorPayload struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind,omitempty"`
	Error   string `json:"error"`
}

// printError prints the classified error payload and returns the sentinel
// that makes the process exit non-zero.
func printError(err error) error {
	payload := errorPayload{
		Success: false,
		Kind:    errorKind(err),
		Error:   err.Error(),
	}
	if printErr := printJSON(payload); printErr != nil {
		return printErr
	}
	return errCommandFailed
}

// errorKind maps a domain error to its stable JSON kind.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrNonRepositoryURL):
		return "non_repository_url"
	case errors.Is(err, domain.ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, domain.ErrRepoNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrTransientNetwork):
		return "transient_network_error"
	case errors.Is(err, domain.ErrValidationFailed):
		return "validation_failed"
	case errors.Is(err, domain.ErrFilesystem):
		return "filesystem_error"
	default:
		return ""
	}
}
