package elements

import (
	"github.com/rmitchellscott/cloudofficeprint/internal/logging"
	"github.com/rmitchellscott/cloudofficeprint/internal/validation"
)

// TagCheckResult reports how the tags of an element tree relate to a
// template.
type TagCheckResult = validation.ValidationResult

// CheckTemplateTags looks up every tag advertised by e in the text of a
// template using the default delimiters. Unused tags are reported as
// warnings and loops opened without being closed as errors. The payload is
// not affected.
func CheckTemplateTags(template string, e Element) TagCheckResult {
	return CheckTemplateTagsWithDelimiters(template, "", "", e)
}

// CheckTemplateTagsWithDelimiters is CheckTemplateTags for templates using
// custom start and end delimiters.
func CheckTemplateTagsWithDelimiters(template, start, end string, e Element) TagCheckResult {
	name := e.Name()
	if name == "" {
		name = "data"
	}
	result := validation.NewTemplateValidator(start, end).ValidateTags(template, name, e.AvailableTags())
	if !result.Valid {
		logging.WarnWithComponent(logging.ComponentTemplate, "Template tag check failed",
			"element", name, "errors", len(result.Errors))
	}
	return result
}
