package domain

import "time"

// RepositoryMetadata holds the metadata returned by the hosting API for a
// verified repository. Fields absent in the API response are explicitly
// empty rather than omitted. Read-only downstream of the verifier.
type RepositoryMetadata struct {
	// FullName is the "owner/name" identifier.
	FullName string `json:"full_name"`

	// Description is the repository description, empty if unset.
	Description string `json:"description"`

	// DefaultBranch is the default branch name (e.g. "main").
	DefaultBranch string `json:"default_branch"`

	// Topics are the repository topics, empty slice if none.
	Topics []string `json:"topics"`

	// License is the SPDX identifier or license name, empty if unlicensed.
	License string `json:"license"`

	// Homepage is the project homepage URL, empty if unset.
	Homepage string `json:"homepage"`

	// StarCount is the stargazer count.
	StarCount int `json:"stargazers_count"`

	// IsArchived reports whether the repository is archived.
	IsArchived bool `json:"archived"`

	// IsFork reports whether the repository is a fork.
	IsFork bool `json:"fork"`

	// PrimaryLanguage is the dominant language, empty if undetected.
	PrimaryLanguage string `json:"language"`

	// CreatedAt is when the repository was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the repository was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
