package domain

import "regexp"

// Manifest field limits imposed by the skill packaging conventions.
const (
	// NameMaxLength is the maximum length of a skill name.
	NameMaxLength = 64

	// DescriptionMaxLength is the maximum length of a skill description.
	DescriptionMaxLength = 1024
)

// NamePattern matches a valid skill name: lowercase alphanumerics and
// hyphens, starting and ending with an alphanumeric, or a single character.
var NamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$|^[a-z0-9]$`)

// ReservedWords are substrings that may not appear in a skill name.
var ReservedWords = []string{"anthropic", "claude"}

// AllowedManifestFields are the frontmatter keys a skill manifest may carry.
// Any other key is an authorization error unless explicitly permitted.
var AllowedManifestFields = map[string]struct{}{
	"name":          {},
	"description":   {},
	"license":       {},
	"allowed-tools": {},
	"metadata":      {},
}

// SkillManifest is the declaration block at the root of a skill package,
// parsed from the SKILL.md frontmatter.
type SkillManifest struct {
	// Name identifies the skill. Subject to NamePattern and NameMaxLength.
	Name string `json:"name" yaml:"name"`

	// Description explains what the skill does and when to use it.
	Description string `json:"description" yaml:"description"`

	// License is an optional license declaration.
	License string `json:"license,omitempty" yaml:"license"`

	// AllowedTools optionally restricts the tools the skill may invoke.
	AllowedTools []string `json:"allowed_tools,omitempty" yaml:"allowed-tools"`

	// Metadata carries optional free-form metadata.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata"`

	// Extra holds frontmatter keys outside the allowed set. Populating it
	// is a conformance violation; it is retained so the validator can name
	// the offending keys.
	Extra map[string]any `json:"-" yaml:"-"`
}
