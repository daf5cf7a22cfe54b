package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNonRepositoryURL indicates the locator points inside a repository
	// (a file, branch or sub-path) rather than at the repository root.
	ErrNonRepositoryURL = errors.New("locator addresses a file or branch, not a repository")

	// ErrInvalidFormat indicates the locator is not a well-formed
	// repository URL.
	ErrInvalidFormat = errors.New("invalid repository locator format")

	// ErrRepoNotFound indicates the repository does not exist or is
	// private without access.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrRateLimited indicates the hosting API quota is exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrForbidden indicates the request was authenticated but access
	// was denied.
	ErrForbidden = errors.New("access forbidden")

	// ErrTransientNetwork indicates a connection or timeout failure that
	// may succeed on retry.
	ErrTransientNetwork = errors.New("transient network error")

	// ErrValidationFailed indicates a skill tree failed conformance
	// validation and cannot be packaged.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFilesystem indicates packaging failed while writing the archive.
	ErrFilesystem = errors.New("filesystem error")
)

// ParseError reports why a repository locator was rejected.
// Kind is one of ErrNonRepositoryURL or ErrInvalidFormat.
type ParseError struct {
	Kind    error
	Locator string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Locator, e.Reason)
}

// Unwrap exposes the kind for errors.Is checks.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

// VerifyError reports a classified repository verification failure.
// Kind is one of ErrRepoNotFound, ErrRateLimited, ErrForbidden or
// ErrTransientNetwork.
type VerifyError struct {
	Kind   error
	Repo   string
	Reason string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verify %s: %s", e.Repo, e.Reason)
}

// Unwrap exposes the kind for errors.Is checks.
func (e *VerifyError) Unwrap() error {
	return e.Kind
}

// PackagingError reports why packaging was aborted.
// When Kind is ErrValidationFailed, Report carries the full validation
// report so the caller can surface every issue at once.
type PackagingError struct {
	Kind   error
	Report *ValidationReport
	Reason string
}

func (e *PackagingError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("package: %s", e.Reason)
	}
	return fmt.Sprintf("package: %v", e.Kind)
}

// Unwrap exposes the kind for errors.Is checks.
func (e *PackagingError) Unwrap() error {
	return e.Kind
}
