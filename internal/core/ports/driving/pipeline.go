package driving

import (
	"context"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
)

// RunResult is the outcome of one pipeline worker processing one locator.
type RunResult struct {
	// ID is the unique identifier assigned to the run.
	ID string `json:"id"`

	// Locator is the raw input locator.
	Locator string `json:"locator"`

	// Reference is the parsed reference, nil if parsing failed.
	Reference *domain.RepositoryReference `json:"reference,omitempty"`

	// Metadata is the verified repository metadata, nil on failure.
	Metadata *domain.RepositoryMetadata `json:"metadata,omitempty"`

	// WorkDir is the worker's exclusive working directory.
	WorkDir string `json:"work_dir,omitempty"`

	// Err is the failure that stopped the run, nil on success.
	Err error `json:"-"`

	// Error is the string form of Err for JSON output.
	Error string `json:"error,omitempty"`
}

// Pipeline processes repository locators through the deterministic stages:
// parse, verify and optional enhanced fetch. Validation and packaging of the
// skill directory happen once the external content collaborator has filled
// the worker's directory.
type Pipeline interface {
	// Process runs a single locator through parse and verify.
	Process(ctx context.Context, locator string) *RunResult

	// ProcessAll runs each locator in its own worker, bounded by the
	// configured concurrency. Results are returned in input order.
	ProcessAll(ctx context.Context, locators []string) []*RunResult
}
