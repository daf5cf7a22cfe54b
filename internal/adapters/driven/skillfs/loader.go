package skillfs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
	"github.com/MullaAhmed/claude-skill-generator/internal/core/ports/driven"
)

const (
	// ManifestFileName is the declaration file at the root of a skill package.
	ManifestFileName = "SKILL.md"

	// MaxResourceContentBytes caps how much of a resource file is loaded
	// into the tree for cross-reference rules.
	MaxResourceContentBytes = 1 << 20
)

// categoryDirs maps a top-level directory to its resource category.
var categoryDirs = map[string]domain.ResourceCategory{
	"references": domain.ResourceReference,
	"examples":   domain.ResourceExample,
	"scripts":    domain.ResourceScript,
	"assets":     domain.ResourceAsset,
}

// Ensure Loader implements the interface.
var _ driven.TreeLoader = (*Loader)(nil)

// Loader builds skill trees from the filesystem.
type Loader struct{}

// NewLoader creates a skill tree loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load traverses dir and returns its skill tree. Resources appear in
// lexical traversal order; hidden files and directories are skipped. A
// missing or unparsable SKILL.md is recorded on the tree so validation can
// report it.
func (l *Loader) Load(dir string) (*domain.SkillTree, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	tree := &domain.SkillTree{RootPath: root}

	content, err := os.ReadFile(filepath.Join(root, ManifestFileName))
	switch {
	case os.IsNotExist(err):
		tree.ManifestErr = fmt.Sprintf("no %s found in %s", ManifestFileName, dir)
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", ManifestFileName, err)
	default:
		manifest, body, fmErr := ExtractFrontmatter(string(content))
		tree.Body = body
		if fmErr != nil {
			tree.ManifestErr = fmErr.Error()
		} else {
			tree.Manifest = manifest
		}
	}

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == ManifestFileName {
			return nil
		}

		resource := domain.ResourceFile{
			RelPath:  rel,
			Category: categorize(rel),
		}
		if fi, err := entry.Info(); err == nil && fi.Size() <= MaxResourceContentBytes {
			if data, err := os.ReadFile(path); err == nil {
				resource.Content = string(data)
			}
		}

		tree.Resources = append(tree.Resources, resource)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("traverse %s: %w", dir, walkErr)
	}

	return tree, nil
}

// categorize derives the resource category from the top-level directory.
func categorize(relPath string) domain.ResourceCategory {
	top, _, found := strings.Cut(relPath, "/")
	if !found {
		return domain.ResourceUnknown
	}
	if category, ok := categoryDirs[top]; ok {
		return category
	}
	return domain.ResourceUnknown
}
