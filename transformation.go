package cloudofficeprint

import (
	"path/filepath"
	"strings"
)

// TransformationFunction is JavaScript the server runs on the data before
// rendering. It is either inline code or the name of a file in the server's
// transformation directory.
type TransformationFunction struct {
	jsCode   string
	filename string
}

// JSCode returns a transformation function with inline code.
func JSCode(code string) (*TransformationFunction, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrInvalidTransformation
	}
	return &TransformationFunction{jsCode: code}, nil
}

// TransformationFile refers to a file on the server by name. Paths are
// rejected.
func TransformationFile(name string) (*TransformationFunction, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidTransformation
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return nil, ErrInvalidFilename
	}
	return &TransformationFunction{filename: name}, nil
}

func (t *TransformationFunction) AsDict() map[string]any {
	if t.filename != "" {
		return map[string]any{"filename": t.filename}
	}
	return map[string]any{"js_code": t.jsCode}
}
