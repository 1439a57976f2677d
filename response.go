package cloudofficeprint

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rmitchellscott/cloudofficeprint/internal/mimetypes"
	"github.com/rmitchellscott/cloudofficeprint/internal/storage"
)

// Response is the rendered output of a job.
type Response struct {
	// MimeType is the Content-Type the server sent.
	MimeType string
	Body     []byte
}

// FileType returns the extension matching the mime type, e.g. "pdf". When
// the mime type is unknown the content is sniffed.
func (r *Response) FileType() string {
	if ext, ok := mimetypes.ToExtension(r.MimeType); ok {
		return ext
	}
	ext, _ := mimetypes.Detect(r.Body)
	return ext
}

func (r *Response) Binary() []byte {
	return r.Body
}

// Text returns the output as a string. Binary output gives ErrDecoding.
func (r *Response) Text() (string, error) {
	if !utf8.Valid(r.Body) {
		return "", ErrDecoding
	}
	return string(r.Body), nil
}

// ToFile writes the output to path and returns the path written. A path
// without extension gets the extension of the file type.
func (r *Response) ToFile(ctx context.Context, path string) (string, error) {
	if filepath.Ext(path) == "" {
		if ext := r.FileType(); ext != "" {
			path = path + "." + strings.TrimPrefix(ext, ".")
		}
	}
	if err := storage.NewFilesystemBackend("").Put(ctx, path, bytes.NewReader(r.Body)); err != nil {
		return "", fmt.Errorf("cloudofficeprint: %w", err)
	}
	return path, nil
}
