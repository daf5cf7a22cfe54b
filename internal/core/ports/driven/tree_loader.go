package driven

import "github.com/MullaAhmed/claude-skill-generator/internal/core/domain"

// TreeLoader builds a SkillTree from a candidate skill directory.
// Loading is a read-only pass; a missing or malformed manifest is recorded
// on the tree rather than returned as an error, so the validator can report
// it alongside other findings.
type TreeLoader interface {
	// Load traverses dir and returns its skill tree.
	Load(dir string) (*domain.SkillTree, error)
}
