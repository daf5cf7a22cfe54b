package driven

import "github.com/MullaAhmed/claude-skill-generator/internal/core/domain"

// Archiver packages a validated skill tree into a single archive file.
type Archiver interface {
	// Package validates tree and, on a passing report, writes the archive
	// under outputDir (the current directory when empty). A failing report
	// aborts with domain.PackagingError before any filesystem write.
	Package(tree *domain.SkillTree, outputDir string) (*domain.SkillArchive, error)
}
