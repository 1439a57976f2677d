package resource

import (
	"github.com/rmitchellscott/cloudofficeprint/internal/logging"
	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// Template is the main document of a print job: a resource plus custom tag
// delimiters and server side template caching.
//
// Once the server returned a hash for the template, it is enough to send the
// hash instead of the whole file. A Template is not safe for concurrent use
// because executing a job may update its hash.
type Template struct {
	Resource       *Resource
	StartDelimiter optional.Option[string]
	EndDelimiter   optional.Option[string]

	// ShouldHash asks the server to cache the template and return its hash.
	ShouldHash bool
	// Hash is the hash of a template cached on the server.
	Hash string
}

// NewTemplate wraps a resource.
func NewTemplate(r *Resource) *Template {
	return &Template{Resource: r}
}

// TemplateFromBase64 builds a template from base64 encoded content.
func TemplateFromBase64(data, fileType string) *Template {
	return NewTemplate(FromBase64(data, fileType))
}

// TemplateFromRaw builds a template from raw content.
func TemplateFromRaw(data []byte, fileType string) (*Template, error) {
	r, err := FromRaw(data, fileType)
	if err != nil {
		return nil, err
	}
	return NewTemplate(r), nil
}

// TemplateFromLocalFile builds a template from a local file.
func TemplateFromLocalFile(path string) (*Template, error) {
	r, err := FromLocalFile(path)
	if err != nil {
		return nil, err
	}
	return NewTemplate(r), nil
}

// TemplateFromServerPath builds a template from a file on the server.
func TemplateFromServerPath(path string) *Template {
	return NewTemplate(FromServerPath(path))
}

// TemplateFromURL builds a template the server downloads itself.
func TemplateFromURL(rawURL, fileType string) (*Template, error) {
	r, err := FromURL(rawURL, fileType)
	if err != nil {
		return nil, err
	}
	return NewTemplate(r), nil
}

// TemplateFromHTML builds a template from an HTML document.
func TemplateFromHTML(html string, landscape bool) *Template {
	return NewTemplate(FromHTML(html, landscape))
}

// FileType returns the file type of the underlying resource.
func (t *Template) FileType() string {
	return t.Resource.FileType()
}

// UpdateHash records the hash the server returned. Later requests send only
// the hash.
func (t *Template) UpdateHash(hash string) {
	if hash == "" {
		return
	}
	logging.DebugWithComponent(logging.ComponentTemplate, "Template hash updated", "hash", hash)
	t.Hash = hash
	t.ShouldHash = false
}

// ResetHash forgets the stored hash so the next request sends the whole file.
func (t *Template) ResetHash(shouldHash bool) {
	t.Hash = ""
	t.ShouldHash = shouldHash
}

// TemplateDict returns the "template" object of a request.
func (t *Template) TemplateDict() map[string]any {
	var result map[string]any
	if t.Hash != "" && !t.ShouldHash {
		result = map[string]any{
			"template_type": t.FileType(),
			"template_hash": t.Hash,
		}
	} else {
		result = t.Resource.TemplateDict()
		if t.ShouldHash {
			result["should_hash"] = true
		}
		if t.Hash != "" {
			result["template_hash"] = t.Hash
		}
	}
	if t.StartDelimiter.Has() {
		result["start_delimiter"] = t.StartDelimiter.Value()
	}
	if t.EndDelimiter.Has() {
		result["end_delimiter"] = t.EndDelimiter.Value()
	}
	return result
}
