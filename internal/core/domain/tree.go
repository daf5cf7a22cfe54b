package domain

// ResourceCategory classifies a file bundled with a skill.
type ResourceCategory string

// Resource categories recognised in a skill package.
const (
	// ResourceReference is in-depth reference material, loaded on demand.
	ResourceReference ResourceCategory = "reference"

	// ResourceExample is a runnable example.
	ResourceExample ResourceCategory = "example"

	// ResourceScript is a utility script.
	ResourceScript ResourceCategory = "script"

	// ResourceAsset is a bundled binary or data asset.
	ResourceAsset ResourceCategory = "asset"

	// ResourceUnknown is a file outside the recognised directories.
	ResourceUnknown ResourceCategory = "unknown"
)

// IsValid returns true if the category is recognised.
func (c ResourceCategory) IsValid() bool {
	switch c {
	case ResourceReference, ResourceExample, ResourceScript, ResourceAsset, ResourceUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c ResourceCategory) String() string {
	return string(c)
}

// ResourceFile is a single categorised file inside a skill package.
type ResourceFile struct {
	// RelPath is the path relative to the skill root, using forward slashes.
	RelPath string `json:"rel_path"`

	// Category is the resource classification derived from the top-level
	// directory the file lives in.
	Category ResourceCategory `json:"category"`

	// Content is the file content, loaded for cross-reference and
	// structure rules. Empty for files over the loader's size cap.
	Content string `json:"-"`
}

// SkillTree is the in-memory shape of a candidate skill directory. It is
// built once by the tree loader and treated as read-only by the validator
// and packager.
type SkillTree struct {
	// RootPath is the absolute path of the skill directory.
	RootPath string

	// Manifest is the parsed declaration block. Nil when SKILL.md is
	// missing or its frontmatter failed to parse; the validator reports
	// this as a critical error.
	Manifest *SkillManifest

	// ManifestErr describes why the manifest failed to parse, if it did.
	ManifestErr string

	// Body is the markdown content following the frontmatter.
	Body string

	// Resources are the bundled files in deterministic traversal order.
	Resources []ResourceFile
}
