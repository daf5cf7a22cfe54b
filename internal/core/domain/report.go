package domain

// Issue codes emitted by the conformance validator. Codes are stable so
// reports are diffable across runs.
const (
	CodeManifestMissing   = "manifest_missing"
	CodeRequiredField     = "required_field"
	CodeNameFormat        = "name_format"
	CodeNameReserved      = "name_reserved_word"
	CodeDescriptionLength = "description_length"
	CodeMarkupForbidden   = "markup_forbidden"
	CodeExtraFields       = "extra_frontmatter_fields"

	CodeDescriptionBrief = "description_brevity"
	CodeNoTriggerPhrase  = "no_trigger_phrases"
	CodeBodyLength       = "body_length"
	CodeNoExamples       = "no_examples_or_guidance"
	CodeReferenceDepth   = "reference_depth"
	CodeMissingTOC       = "missing_table_of_contents"
	CodeUnreferencedFile = "unreferenced_file"
)

// Issue is a single validation finding.
type Issue struct {
	// Code identifies the rule that produced the issue.
	Code string `json:"code"`

	// Message is a human-readable explanation.
	Message string `json:"message"`

	// Path names the file or field the issue applies to.
	Path string `json:"path,omitempty"`
}

// ValidationReport is the result of running the conformance ruleset over a
// skill tree. Produced fresh per validation call and never cached.
type ValidationReport struct {
	// Passed is true if and only if Errors is empty.
	Passed bool `json:"passed"`

	// Errors are critical rule violations that block packaging, in
	// deterministic rule-then-traversal order.
	Errors []Issue `json:"errors"`

	// Warnings are reported but do not block packaging.
	Warnings []Issue `json:"warnings"`
}

// NewValidationReport builds a report from collected issues, deriving
// Passed from the absence of critical errors. Nil slices are normalised to
// empty so JSON output always carries arrays.
func NewValidationReport(errs, warnings []Issue) *ValidationReport {
	if errs == nil {
		errs = []Issue{}
	}
	if warnings == nil {
		warnings = []Issue{}
	}
	return &ValidationReport{
		Passed:   len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
