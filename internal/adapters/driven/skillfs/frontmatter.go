package skillfs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
)

const frontmatterFence = "---"

// ExtractFrontmatter splits a SKILL.md document into its parsed manifest
// and markdown body. A missing or malformed declaration block returns an
// error; the loader records it on the tree instead of failing the run.
func ExtractFrontmatter(content string) (*domain.SkillManifest, string, error) {
	if !strings.HasPrefix(strings.TrimLeft(content, "\n\r \t"), frontmatterFence) {
		return nil, content, fmt.Errorf("missing YAML frontmatter (file must start with %s)", frontmatterFence)
	}

	lines := strings.Split(content, "\n")
	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterFence {
			closing = i
			break
		}
	}
	if closing == -1 {
		return nil, content, fmt.Errorf("invalid YAML frontmatter (missing closing %s)", frontmatterFence)
	}

	block := strings.Join(lines[1:closing], "\n")
	body := strings.Join(lines[closing+1:], "\n")

	// First pass: the raw key set, to detect fields outside the allowed
	// ones. A non-mapping block is rejected outright.
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, body, fmt.Errorf("invalid YAML in frontmatter: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	// Second pass: the typed manifest fields.
	var manifest domain.SkillManifest
	if err := yaml.Unmarshal([]byte(block), &manifest); err != nil {
		return nil, body, fmt.Errorf("invalid frontmatter fields: %w", err)
	}

	for key, value := range raw {
		if _, ok := domain.AllowedManifestFields[key]; !ok {
			if manifest.Extra == nil {
				manifest.Extra = map[string]any{}
			}
			manifest.Extra[key] = value
		}
	}

	return &manifest, body, nil
}
