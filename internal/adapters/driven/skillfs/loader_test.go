package skillfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
)

const skillDoc = "---\nname: http-client\ndescription: Use this when sending requests.\n---\n# Guide\n\nBody text."

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func findResource(tree *domain.SkillTree, rel string) (domain.ResourceFile, bool) {
	for _, resource := range tree.Resources {
		if resource.RelPath == rel {
			return resource, true
		}
	}
	return domain.ResourceFile{}, false
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("builds the tree with categorised resources", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "SKILL.md", skillDoc)
		writeFile(t, dir, "references/api.md", "api notes")
		writeFile(t, dir, "examples/demo.sh", "echo demo")
		writeFile(t, dir, "scripts/run.py", "print('hi')")
		writeFile(t, dir, "assets/logo.svg", "<svg/>")
		writeFile(t, dir, "NOTES.txt", "loose file")

		tree, err := loader.Load(dir)

		require.NoError(t, err)
		require.NotNil(t, tree.Manifest)
		assert.Equal(t, "http-client", tree.Manifest.Name)
		assert.Equal(t, "# Guide\n\nBody text.", tree.Body)
		assert.Empty(t, tree.ManifestErr)
		require.Len(t, tree.Resources, 5)

		cases := []struct {
			rel  string
			want domain.ResourceCategory
		}{
			{"references/api.md", domain.ResourceReference},
			{"examples/demo.sh", domain.ResourceExample},
			{"scripts/run.py", domain.ResourceScript},
			{"assets/logo.svg", domain.ResourceAsset},
			{"NOTES.txt", domain.ResourceUnknown},
		}
		for _, tc := range cases {
			resource, ok := findResource(tree, tc.rel)
			require.True(t, ok, "resource %s", tc.rel)
			assert.Equal(t, tc.want, resource.Category, "resource %s", tc.rel)
		}

		api, _ := findResource(tree, "references/api.md")
		assert.Equal(t, "api notes", api.Content)
	})

	t.Run("missing manifest is recorded, not fatal", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "scripts/run.sh", "echo")

		tree, err := loader.Load(dir)

		require.NoError(t, err)
		assert.Nil(t, tree.Manifest)
		assert.Contains(t, tree.ManifestErr, "no SKILL.md found")
		assert.Len(t, tree.Resources, 1)
	})

	t.Run("malformed frontmatter is recorded, not fatal", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "SKILL.md", "# no frontmatter here")

		tree, err := loader.Load(dir)

		require.NoError(t, err)
		assert.Nil(t, tree.Manifest)
		assert.Contains(t, tree.ManifestErr, "missing YAML frontmatter")
	})

	t.Run("hidden files and directories are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "SKILL.md", skillDoc)
		writeFile(t, dir, ".hidden", "x")
		writeFile(t, dir, ".git/config", "x")
		writeFile(t, dir, "references/.draft.md", "x")
		writeFile(t, dir, "references/api.md", "api")

		tree, err := loader.Load(dir)

		require.NoError(t, err)
		require.Len(t, tree.Resources, 1)
		assert.Equal(t, "references/api.md", tree.Resources[0].RelPath)
	})

	t.Run("manifest file is not listed as a resource", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "SKILL.md", skillDoc)

		tree, err := loader.Load(dir)

		require.NoError(t, err)
		assert.Empty(t, tree.Resources)
	})

	t.Run("nested paths keep forward slashes", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "SKILL.md", skillDoc)
		writeFile(t, dir, "references/deep/more.md", "x")

		tree, err := loader.Load(dir)

		require.NoError(t, err)
		resource, ok := findResource(tree, "references/deep/more.md")
		require.True(t, ok)
		assert.Equal(t, domain.ResourceReference, resource.Category)
	})

	t.Run("rejects a missing directory", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
	})

	t.Run("rejects a plain file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "file.txt", "x")

		_, err := loader.Load(filepath.Join(dir, "file.txt"))
		require.Error(t, err)
	})
}
