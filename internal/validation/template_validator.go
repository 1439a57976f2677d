package validation

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationResult represents the result of a template cross-check
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Message  string   `json:"message"`
	Matched  []string `json:"matched"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// TemplateValidator cross-checks the tags advertised by render elements
// against the text of a template.
type TemplateValidator struct {
	startDelimiter string
	endDelimiter   string
}

// NewTemplateValidator creates a validator for templates using the given
// delimiters. Empty delimiters default to "{" and "}".
func NewTemplateValidator(startDelimiter, endDelimiter string) *TemplateValidator {
	if startDelimiter == "" {
		startDelimiter = "{"
	}
	if endDelimiter == "" {
		endDelimiter = "}"
	}
	return &TemplateValidator{startDelimiter: startDelimiter, endDelimiter: endDelimiter}
}

// ValidateTags checks which of the tags occur in template. Tags are given in
// their canonical "{...}" form and are rewritten to the validator's delimiters.
// A tag absent from the template is a warning; a loop whose opening tag is
// present without its closing tag is an error.
func (v *TemplateValidator) ValidateTags(template string, templateName string, tags []string) ValidationResult {
	result := ValidationResult{
		Valid:    true,
		Message:  "Template validation successful",
		Matched:  []string{},
		Warnings: []string{},
		Errors:   []string{},
	}

	tags = slices.Clone(tags)
	slices.Sort(tags)
	present := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if strings.Contains(template, v.rewrite(tag)) {
			present[tag] = true
			result.Matched = append(result.Matched, tag)
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: tag %s is not used in the template", templateName, v.rewrite(tag)))
		}
	}

	for _, tag := range tags {
		closing, ok := closingTag(tag)
		if !ok || !present[tag] || !slices.Contains(tags, closing) {
			continue
		}
		if !present[closing] {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s is opened but %s never closes it", templateName, v.rewrite(tag), v.rewrite(closing)))
		}
	}

	if warning := v.checkBalance(template, templateName); warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	result.Valid = len(result.Errors) == 0
	if !result.Valid {
		result.Message = "Template validation failed"
	} else if len(result.Warnings) > 0 {
		result.Message = "Template validation passed with warnings"
	}
	return result
}

func (v *TemplateValidator) rewrite(tag string) string {
	if v.startDelimiter == "{" && v.endDelimiter == "}" {
		return tag
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(tag, "{"), "}")
	return v.startDelimiter + inner + v.endDelimiter
}

// checkBalance performs a basic count of opening against closing delimiters
func (v *TemplateValidator) checkBalance(template, templateName string) string {
	if v.startDelimiter == v.endDelimiter {
		if strings.Count(template, v.startDelimiter)%2 != 0 {
			return fmt.Sprintf("%s: odd number of %q delimiters", templateName, v.startDelimiter)
		}
		return ""
	}
	opened := strings.Count(template, v.startDelimiter)
	closed := strings.Count(template, v.endDelimiter)
	if opened != closed {
		return fmt.Sprintf("%s: %d opening %q against %d closing %q delimiters", templateName, opened, v.startDelimiter, closed, v.endDelimiter)
	}
	return ""
}

// closingTag returns the "{/name}" tag matching a loop opening tag.
func closingTag(tag string) (string, bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tag, "{"), "}")
	if inner == "" {
		return "", false
	}
	switch inner[0] {
	case '#', '!', ':', '=', '-', '~':
		name := strings.TrimSuffix(strings.TrimSpace(inner[1:]), "#")
		if name == "" {
			return "", false
		}
		return "{/" + name + "}", true
	}
	return "", false
}
