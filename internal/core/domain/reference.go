package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentPattern matches a valid owner or repository name segment.
var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// RepositoryReference is a canonical reference to a remote repository.
// It is created by ParseReference and immutable thereafter.
type RepositoryReference struct {
	// Owner is the user or organisation that owns the repository.
	Owner string

	// Name is the repository name, without any .git suffix.
	Name string

	// NormalizedURL is the canonical https URL of the repository root:
	// no trailing slash, no .git suffix, no branch or file path.
	NormalizedURL string
}

// FullName returns the "owner/name" form used by the hosting API.
func (r RepositoryReference) FullName() string {
	return r.Owner + "/" + r.Name
}

// CodewikiURL returns the Codewiki mirror URL for the repository, used by
// the enhanced-fetch path to retrieve generated documentation.
func (r RepositoryReference) CodewikiURL() string {
	return "https://codewiki.google/github.com/" + r.FullName()
}

// ParseReference parses a raw repository locator into a canonical
// RepositoryReference.
//
// Accepted variations all normalise to the same result:
//
//	github.com/owner/repo
//	http://github.com/owner/repo
//	https://github.com/owner/repo/
//	https://github.com/owner/repo.git
//
// Locators that address a file, branch or sub-path inside the repository
// fail with ErrNonRepositoryURL; anything else malformed fails with
// ErrInvalidFormat. Parsing is pure and idempotent: re-parsing a
// NormalizedURL returns an identical reference.
func ParseReference(raw string) (RepositoryReference, error) {
	locator := strings.TrimSpace(raw)
	if locator == "" {
		return RepositoryReference{}, &ParseError{
			Kind:    ErrInvalidFormat,
			Locator: raw,
			Reason:  "locator is empty",
		}
	}

	rest, ok := stripHost(locator)
	if !ok {
		return RepositoryReference{}, &ParseError{
			Kind:    ErrInvalidFormat,
			Locator: raw,
			Reason:  "not a github.com repository URL",
		}
	}

	rest = strings.TrimSuffix(rest, "/")
	segments := strings.Split(rest, "/")

	switch {
	case len(segments) < 2 || segments[0] == "" || segments[1] == "":
		return RepositoryReference{}, &ParseError{
			Kind:    ErrInvalidFormat,
			Locator: raw,
			Reason:  "missing owner or repository segment",
		}
	case len(segments) > 2:
		return RepositoryReference{}, &ParseError{
			Kind:    ErrNonRepositoryURL,
			Locator: raw,
			Reason:  "locator points inside the repository; use the repository root URL",
		}
	}

	owner := segments[0]
	name := strings.TrimSuffix(segments[1], ".git")

	for _, segment := range []string{owner, name} {
		if !segmentPattern.MatchString(segment) {
			return RepositoryReference{}, &ParseError{
				Kind:    ErrInvalidFormat,
				Locator: raw,
				Reason:  fmt.Sprintf("invalid segment %q", segment),
			}
		}
		// Leading separators are rejected by the hosting service.
		if strings.HasPrefix(segment, "-") || strings.HasPrefix(segment, ".") {
			return RepositoryReference{}, &ParseError{
				Kind:    ErrInvalidFormat,
				Locator: raw,
				Reason:  fmt.Sprintf("segment %q cannot start with %q", segment, segment[:1]),
			}
		}
	}

	return RepositoryReference{
		Owner:         owner,
		Name:          name,
		NormalizedURL: "https://github.com/" + owner + "/" + name,
	}, nil
}

// stripHost removes an optional scheme and the github.com host, returning
// the path that follows. Returns false if the locator is not for github.com.
func stripHost(locator string) (string, bool) {
	for _, prefix := range []string{"https://", "http://"} {
		locator = strings.TrimPrefix(locator, prefix)
	}
	locator = strings.TrimPrefix(locator, "www.")

	if !strings.HasPrefix(strings.ToLower(locator), "github.com/") {
		return "", false
	}
	return locator[len("github.com/"):], true
}
