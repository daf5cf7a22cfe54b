package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MullaAhmed/claude-skill-generator/internal/adapters/driven/skillfs"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/ports/driven"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/services"
	"github.com/MullaAhmed/claude-skill-generator/internal/logger"
)

// archiveEpoch is the fixed timestamp written to every entry so repeated
// packaging of an unchanged tree is byte-identical.
var archiveEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// excludedNames are artifacts never packaged, matched against any path
// segment.
var excludedNames = map[string]struct{}{
	".git":         {},
	".svn":         {},
	".hg":          {},
	"__pycache__":  {},
	"node_modules": {},
	".DS_Store":    {},
}

// excludedSuffixes are build byproducts never packaged.
var excludedSuffixes = []string{".pyc", ".pyo"}

// Ensure Packager implements the interface.
var _ driven.Archiver = (*Packager)(nil)

// Packager builds skill archives from validated trees.
type Packager struct {
	validator *services.Validator
}

// NewPackager creates a packager that validates with validator before any
// filesystem write.
func NewPackager(validator *services.Validator) *Packager {
	return &Packager{validator: validator}
}

// Package validates tree and writes {name}.skill under outputDir. When
// validation fails it returns a PackagingError carrying the full report and
// performs no filesystem writes. The archive is written to a temporary file
// and renamed into place, so a crash mid-write never leaves a corrupt
// archive at the final path.
func (p *Packager) Package(tree *domain.SkillTree, outputDir string) (*domain.SkillArchive, error) {
	report := p.validator.Validate(tree)
	if !report.Passed {
		return nil, &domain.PackagingError{
			Kind:   domain.ErrValidationFailed,
			Report: report,
			Reason: fmt.Sprintf("%d critical validation error(s)", len(report.Errors)),
		}
	}

	if outputDir == "" {
		outputDir = "."
	}
	outputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, &domain.PackagingError{Kind: domain.ErrFilesystem, Reason: err.Error()}
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, &domain.PackagingError{Kind: domain.ErrFilesystem, Reason: fmt.Sprintf("create output dir: %v", err)}
	}

	name := tree.Manifest.Name
	finalPath := filepath.Join(outputDir, name+domain.ArchiveExtension)
	tmpPath := filepath.Join(outputDir, fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))

	entryCount, err := p.writeArchive(tree, tmpPath)
	if err != nil {
		_ = os.Remove(tmpPath)
		return nil, &domain.PackagingError{Kind: domain.ErrFilesystem, Reason: err.Error()}
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return nil, &domain.PackagingError{Kind: domain.ErrFilesystem, Reason: fmt.Sprintf("publish archive: %v", err)}
	}

	logger.Info("Packaged %d files into %s", entryCount, finalPath)

	return &domain.SkillArchive{
		Path:       finalPath,
		EntryCount: entryCount,
		SourceRoot: tree.RootPath,
	}, nil
}

// writeArchive writes the zip to tmpPath and returns the entry count.
func (p *Packager) writeArchive(tree *domain.SkillTree, tmpPath string) (int, error) {
	entries := p.collectEntries(tree)

	f, err := os.Create(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("create temp archive: %w", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	prefix := filepath.Base(tree.RootPath)

	for _, rel := range entries {
		header := &zip.FileHeader{
			Name:     path.Join(prefix, rel),
			Method:   zip.Deflate,
			Modified: archiveEpoch,
		}

		entry, err := w.CreateHeader(header)
		if err != nil {
			return 0, fmt.Errorf("add %s: %w", rel, err)
		}

		src, err := os.Open(filepath.Join(tree.RootPath, filepath.FromSlash(rel)))
		if err != nil {
			return 0, fmt.Errorf("open %s: %w", rel, err)
		}
		_, err = io.Copy(entry, src)
		src.Close()
		if err != nil {
			return 0, fmt.Errorf("write %s: %w", rel, err)
		}
	}

	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("finalise archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("flush archive: %w", err)
	}

	return len(entries), nil
}

// collectEntries returns the relative paths to package, excluded artifacts
// removed, in lexicographic order.
func (p *Packager) collectEntries(tree *domain.SkillTree) []string {
	entries := []string{skillfs.ManifestFileName}
	for _, resource := range tree.Resources {
		if excluded(resource.RelPath) {
			continue
		}
		entries = append(entries, resource.RelPath)
	}
	sort.Strings(entries)
	return entries
}

// excluded reports whether the path names a known non-package artifact.
func excluded(relPath string) bool {
	for _, segment := range strings.Split(relPath, "/") {
		if _, ok := excludedNames[segment]; ok {
			return true
		}
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	for _, suffix := range excludedSuffixes {
		if strings.HasSuffix(relPath, suffix) {
			return true
		}
	}
	return false
}
