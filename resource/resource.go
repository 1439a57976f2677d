// Package resource describes the files a print job sends along: the template
// and the secondary files that are prepended, appended, attached or used as
// subtemplates.
package resource

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rmitchellscott/cloudofficeprint/internal/mimetypes"
	"github.com/rmitchellscott/cloudofficeprint/internal/storage"
	"github.com/rmitchellscott/cloudofficeprint/internal/utils"
)

// ErrUnknownFileType is returned when the type of a file can neither be taken
// from its name nor sniffed from its content.
var ErrUnknownFileType = errors.New("resource: unknown file type")

// Kind tells where the content of a resource lives.
type Kind int

const (
	// Base64Kind resources carry their content base64 encoded.
	Base64Kind Kind = iota
	// ServerPathKind resources name a file on the server.
	ServerPathKind
	// URLKind resources are downloaded by the server.
	URLKind
	// HTMLKind resources carry an inline HTML document.
	HTMLKind
)

func (k Kind) String() string {
	switch k {
	case Base64Kind:
		return "base64"
	case ServerPathKind:
		return "server path"
	case URLKind:
		return "url"
	case HTMLKind:
		return "html"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Resource is an immutable file payload.
type Resource struct {
	kind      Kind
	data      string
	fileType  string
	landscape bool
}

// FileType returns the extension of the file without dot, e.g. "docx".
func (r *Resource) FileType() string {
	return r.fileType
}

// MimeType returns the mime type matching the file type, or "" when unknown.
func (r *Resource) MimeType() string {
	m, _ := mimetypes.FromExtension(r.fileType)
	return m
}

func (r *Resource) Kind() Kind {
	return r.kind
}

// Data returns the payload: base64 content, a server path, a URL or HTML.
func (r *Resource) Data() string {
	return r.data
}

// FromBase64 wraps already encoded content.
func FromBase64(data, fileType string) *Resource {
	return &Resource{kind: Base64Kind, data: data, fileType: normalize(fileType)}
}

// FromRaw encodes content. An empty fileType is sniffed from the content.
func FromRaw(data []byte, fileType string) (*Resource, error) {
	if fileType == "" {
		fileType, _ = mimetypes.Detect(data)
		if fileType == "" {
			return nil, ErrUnknownFileType
		}
	}
	return FromBase64(base64.StdEncoding.EncodeToString(data), fileType), nil
}

// FromLocalFile reads and encodes a local file. The type comes from the file
// extension, or from the content when the extension is missing.
func FromLocalFile(path string) (*Resource, error) {
	data, err := storage.ReadAll(context.Background(), storage.NewFilesystemBackend(""), path)
	if err != nil {
		return nil, fmt.Errorf("resource: %w", err)
	}
	r, err := FromRaw(data, mimetypes.ExtensionOf(path))
	if err != nil {
		return nil, fmt.Errorf("resource: %s: %w", path, err)
	}
	return r, nil
}

// FromServerPath refers to a file already present on the server.
func FromServerPath(path string) *Resource {
	return &Resource{kind: ServerPathKind, data: path, fileType: mimetypes.ExtensionOf(path)}
}

// FromURL lets the server download the file. An empty fileType is taken from
// the URL path.
func FromURL(rawURL, fileType string) (*Resource, error) {
	if err := utils.ValidateURLWithConfig(rawURL, utils.ResourceURLConfig); err != nil {
		return nil, fmt.Errorf("resource: %w", err)
	}
	if fileType == "" {
		fileType = mimetypes.ExtensionOf(rawURL)
	}
	return &Resource{kind: URLKind, data: rawURL, fileType: normalize(fileType)}, nil
}

// FetchURL downloads a file now and embeds it base64 encoded. The type is
// taken from the URL path, then the Content-Type header, then the content.
func FetchURL(ctx context.Context, client *http.Client, rawURL string) (*Resource, error) {
	if err := utils.ValidateURLWithConfig(rawURL, utils.ServerURLConfig); err != nil {
		return nil, fmt.Errorf("resource: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("resource: creating request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resource: fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resource: fetching %s: status %d", rawURL, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("resource: reading %s: %w", rawURL, err)
	}

	fileType := mimetypes.ExtensionOf(rawURL)
	if fileType == "" {
		fileType, _ = mimetypes.ToExtension(resp.Header.Get("Content-Type"))
	}
	return FromRaw(data, fileType)
}

// FromHTML wraps an HTML document. Landscape only matters when the resource
// is used as a template.
func FromHTML(html string, landscape bool) *Resource {
	return &Resource{kind: HTMLKind, data: html, fileType: "html", landscape: landscape}
}

// TemplateDict returns the resource in the shape of the "template" object.
func (r *Resource) TemplateDict() map[string]any {
	result := map[string]any{"template_type": r.fileType}
	switch r.kind {
	case ServerPathKind:
		result["filename"] = r.data
	case URLKind:
		result["url"] = r.data
	case HTMLKind:
		result["html_template_content"] = r.data
		if r.landscape {
			result["orientation"] = "landscape"
		}
	default:
		result["file"] = r.data
	}
	return result
}

// SecondaryFileDict returns the resource in the shape used for prepended,
// appended and attached files and subtemplates.
func (r *Resource) SecondaryFileDict() map[string]any {
	result := map[string]any{"mime_type": r.MimeType()}
	switch r.kind {
	case ServerPathKind:
		result["file_source"] = "file"
		result["filename"] = r.data
	case URLKind:
		result["file_source"] = "file"
		result["file_url"] = r.data
	case HTMLKind:
		result["file_source"] = "file"
		result["file_content"] = r.data
	default:
		result["file_source"] = "base64"
		result["file_content"] = r.data
	}
	return result
}

func normalize(fileType string) string {
	return mimetypes.ExtensionOf("." + fileType)
}
