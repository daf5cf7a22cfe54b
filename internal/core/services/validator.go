package services

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/domain"
)

// ValidatorConfig holds the heuristic thresholds of the warning rules.
// The critical rules are fixed by the skill packaging conventions; the
// heuristics are deliberately tunable because the conventions themselves
// are not firm about them.
type ValidatorConfig struct {
	// DescriptionBriefLength is the length under which a description is
	// flagged as too brief.
	DescriptionBriefLength int

	// TriggerPhrases are the indicators a description should contain so a
	// reader knows when to use the skill.
	TriggerPhrases []string

	// BodyMinWords and BodyMaxWords bound the recommended body size.
	BodyMinWords int
	BodyMaxWords int

	// ExampleMarkers are the markers whose absence from the body flags
	// missing task or example guidance.
	ExampleMarkers []string

	// ReferenceTOCLines is the line count above which a reference file
	// should open with an index.
	ReferenceTOCLines int
}

// DefaultValidatorConfig returns the documented heuristic defaults.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		DescriptionBriefLength: 50,
		TriggerPhrases:         []string{"when", "use this", "should be used", "helps with", "for"},
		BodyMinWords:           100,
		BodyMaxWords:           5000,
		ExampleMarkers:         []string{"## example", "### example", "example:", "examples", "core tasks", "workflow"},
		ReferenceTOCLines:      100,
	}
}

// Validator runs the conformance ruleset over a skill tree. Validation is
// a pure read-only pass: the same tree always yields an identical report,
// with issues in manifest, body, then traversal order.
type Validator struct {
	cfg ValidatorConfig
}

// NewValidator creates a validator with the given thresholds.
func NewValidator(cfg ValidatorConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Validate produces a fresh validation report for tree.
func (v *Validator) Validate(tree *domain.SkillTree) *domain.ValidationReport {
	if tree.Manifest == nil {
		reason := tree.ManifestErr
		if reason == "" {
			reason = "missing skill declaration"
		}
		return domain.NewValidationReport([]domain.Issue{{
			Code:    domain.CodeManifestMissing,
			Message: reason,
			Path:    "SKILL.md",
		}}, nil)
	}

	var errs, warnings []domain.Issue

	errs = append(errs, v.checkName(tree.Manifest.Name)...)

	descErrs, descWarnings := v.checkDescription(tree.Manifest.Description)
	errs = append(errs, descErrs...)
	warnings = append(warnings, descWarnings...)

	errs = append(errs, v.checkExtraFields(tree.Manifest.Extra)...)

	warnings = append(warnings, v.checkBody(tree.Body)...)
	warnings = append(warnings, v.checkResources(tree)...)

	return domain.NewValidationReport(errs, warnings)
}

// checkName applies the critical name rules.
func (v *Validator) checkName(name string) []domain.Issue {
	if name == "" {
		return []domain.Issue{{
			Code:    domain.CodeRequiredField,
			Message: "required field 'name' is missing",
			Path:    "name",
		}}
	}

	var issues []domain.Issue

	if count := utf8.RuneCountInString(name); count > domain.NameMaxLength {
		issues = append(issues, domain.Issue{
			Code:    domain.CodeNameFormat,
			Message: fmt.Sprintf("field 'name' exceeds %d characters (got %d)", domain.NameMaxLength, count),
			Path:    "name",
		})
	}
	if strings.ContainsAny(name, "<>") {
		issues = append(issues, domain.Issue{
			Code:    domain.CodeMarkupForbidden,
			Message: "field 'name' cannot contain XML tags",
			Path:    "name",
		})
	} else if !domain.NamePattern.MatchString(name) {
		issues = append(issues, domain.Issue{
			Code:    domain.CodeNameFormat,
			Message: "field 'name' must contain only lowercase letters, numbers and hyphens, starting and ending with a letter or number",
			Path:    "name",
		})
	}
	for _, reserved := range domain.ReservedWords {
		if strings.Contains(strings.ToLower(name), reserved) {
			issues = append(issues, domain.Issue{
				Code:    domain.CodeNameReserved,
				Message: fmt.Sprintf("field 'name' cannot contain reserved word %q", reserved),
				Path:    "name",
			})
		}
	}

	return issues
}

// checkDescription applies the description rules, critical and advisory.
func (v *Validator) checkDescription(description string) (errs, warnings []domain.Issue) {
	if strings.TrimSpace(description) == "" {
		errs = append(errs, domain.Issue{
			Code:    domain.CodeRequiredField,
			Message: "required field 'description' is missing",
			Path:    "description",
		})
		return errs, nil
	}

	// Limits count characters, not bytes, so multibyte text is not
	// penalised.
	if count := utf8.RuneCountInString(description); count > domain.DescriptionMaxLength {
		errs = append(errs, domain.Issue{
			Code:    domain.CodeDescriptionLength,
			Message: fmt.Sprintf("field 'description' exceeds %d characters (got %d)", domain.DescriptionMaxLength, count),
			Path:    "description",
		})
	}
	if strings.ContainsAny(description, "<>") {
		errs = append(errs, domain.Issue{
			Code:    domain.CodeMarkupForbidden,
			Message: "field 'description' cannot contain XML tags",
			Path:    "description",
		})
	}

	if utf8.RuneCountInString(description) < v.cfg.DescriptionBriefLength {
		warnings = append(warnings, domain.Issue{
			Code:    domain.CodeDescriptionBrief,
			Message: "field 'description' is quite short; consider adding more detail",
			Path:    "description",
		})
	}
	lower := strings.ToLower(description)
	hasTrigger := false
	for _, phrase := range v.cfg.TriggerPhrases {
		if strings.Contains(lower, phrase) {
			hasTrigger = true
			break
		}
	}
	if !hasTrigger {
		warnings = append(warnings, domain.Issue{
			Code:    domain.CodeNoTriggerPhrase,
			Message: "description lacks trigger phrases; consider explaining when to use this skill",
			Path:    "description",
		})
	}

	return errs, warnings
}

// checkExtraFields flags frontmatter keys outside the allowed set.
func (v *Validator) checkExtraFields(extra map[string]any) []domain.Issue {
	if len(extra) == 0 {
		return nil
	}

	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return []domain.Issue{{
		Code:    domain.CodeExtraFields,
		Message: fmt.Sprintf("unexpected frontmatter properties: %s", strings.Join(keys, ", ")),
		Path:    "frontmatter",
	}}
}

// checkBody applies the advisory body rules.
func (v *Validator) checkBody(body string) []domain.Issue {
	var warnings []domain.Issue

	wordCount := len(strings.Fields(body))
	switch {
	case wordCount < v.cfg.BodyMinWords:
		warnings = append(warnings, domain.Issue{
			Code:    domain.CodeBodyLength,
			Message: fmt.Sprintf("skill body is quite short (%d words); consider adding more detail", wordCount),
			Path:    "SKILL.md",
		})
	case wordCount > v.cfg.BodyMaxWords:
		warnings = append(warnings, domain.Issue{
			Code:    domain.CodeBodyLength,
			Message: fmt.Sprintf("skill body is very long (%d words); consider moving details to references/", wordCount),
			Path:    "SKILL.md",
		})
	}

	lower := strings.ToLower(body)
	hasMarker := false
	for _, marker := range v.cfg.ExampleMarkers {
		if strings.Contains(lower, marker) {
			hasMarker = true
			break
		}
	}
	if !hasMarker {
		warnings = append(warnings, domain.Issue{
			Code:    domain.CodeNoExamples,
			Message: "no examples or task guidance found; consider adding short examples or task steps",
			Path:    "SKILL.md",
		})
	}

	return warnings
}

// checkResources applies the cross-file rules in traversal order.
func (v *Validator) checkResources(tree *domain.SkillTree) []domain.Issue {
	var warnings []domain.Issue

	for _, resource := range tree.Resources {
		if resource.Category != domain.ResourceReference {
			continue
		}

		// Reference material should be reachable in one hop from the
		// body. A reference file pointing at another reference file puts
		// content two hops out.
		for _, other := range tree.Resources {
			if other.RelPath == resource.RelPath || other.Category != domain.ResourceReference {
				continue
			}
			if mentions(resource.Content, other.RelPath) {
				warnings = append(warnings, domain.Issue{
					Code:    domain.CodeReferenceDepth,
					Message: fmt.Sprintf("reference file links to another reference file (%s), two hops from the skill body", other.RelPath),
					Path:    resource.RelPath,
				})
				break
			}
		}

		if lineCount(resource.Content) > v.cfg.ReferenceTOCLines && !hasLeadingIndex(resource.Content) {
			warnings = append(warnings, domain.Issue{
				Code:    domain.CodeMissingTOC,
				Message: fmt.Sprintf("reference file exceeds %d lines and lacks a leading table of contents", v.cfg.ReferenceTOCLines),
				Path:    resource.RelPath,
			})
		}
	}

	for _, resource := range tree.Resources {
		if resource.Category == domain.ResourceUnknown {
			continue
		}
		if !v.isReferenced(tree, resource) {
			warnings = append(warnings, domain.Issue{
				Code:    domain.CodeUnreferencedFile,
				Message: "file is not mentioned in the skill body or any other bundled file",
				Path:    resource.RelPath,
			})
		}
	}

	return warnings
}

// isReferenced reports whether the resource is mentioned in the body or in
// any other resource file.
func (v *Validator) isReferenced(tree *domain.SkillTree, resource domain.ResourceFile) bool {
	if mentions(tree.Body, resource.RelPath) {
		return true
	}
	for _, other := range tree.Resources {
		if other.RelPath == resource.RelPath {
			continue
		}
		if mentions(other.Content, resource.RelPath) {
			return true
		}
	}
	return false
}

// mentions reports whether content names the file, by relative path or
// bare filename.
func mentions(content, relPath string) bool {
	if content == "" {
		return false
	}
	return strings.Contains(content, relPath) || strings.Contains(content, path.Base(relPath))
}

// lineCount counts the lines in content.
func lineCount(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// hasLeadingIndex reports whether the file opens with an index: a contents
// heading or a list of anchor links within the first lines.
func hasLeadingIndex(content string) bool {
	lines := strings.Split(content, "\n")
	limit := len(lines)
	if limit > 30 {
		limit = 30
	}
	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(strings.ToLower(line))
		if strings.HasPrefix(trimmed, "#") && strings.Contains(trimmed, "contents") {
			return true
		}
		if (strings.HasPrefix(trimmed, "- [") || strings.HasPrefix(trimmed, "* [")) && strings.Contains(trimmed, "](#") {
			return true
		}
	}
	return false
}
