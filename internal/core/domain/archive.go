package domain

// ArchiveExtension is the file extension of a packaged skill.
const ArchiveExtension = ".skill"

// SkillArchive describes a packaged skill written to disk.
type SkillArchive struct {
	// Path is the absolute path of the published archive.
	Path string `json:"path"`

	// EntryCount is the number of files in the archive.
	EntryCount int `json:"entry_count"`

	// SourceRoot is the skill directory the archive was built from.
	SourceRoot string `json:"source_root"`
}
