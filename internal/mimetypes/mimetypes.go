// Package mimetypes maps between file extensions and mime types for the
// formats the Cloud Office Print server understands, and sniffs raw content
// when the caller did not name a type.
package mimetypes

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var extensionToMime = map[string]string{
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"doc":  "application/msword",
	"xls":  "application/vnd.ms-excel",
	"ppt":  "application/vnd.ms-powerpoint",
	"odt":  "application/vnd.oasis.opendocument.text",
	"ods":  "application/vnd.oasis.opendocument.spreadsheet",
	"odp":  "application/vnd.oasis.opendocument.presentation",
	"pdf":  "application/pdf",
	"rtf":  "application/rtf",
	"html": "text/html",
	"htm":  "text/html",
	"md":   "text/markdown",
	"txt":  "text/plain",
	"csv":  "text/csv",
	"xml":  "text/xml",
	"json": "application/json",
	"ics":  "text/calendar",
	"epub": "application/epub+zip",
	"zip":  "application/zip",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"svg":  "image/svg+xml",
	"tiff": "image/tiff",
	"webp": "image/webp",
	"docm": "application/vnd.ms-word.document.macroEnabled.12",
	"xlsm": "application/vnd.ms-excel.sheet.macroEnabled.12",
	"pptm": "application/vnd.ms-powerpoint.presentation.macroEnabled.12",
}

// preferred extension when several share a mime type
var mimeToExtension = map[string]string{
	"text/html":  "html",
	"image/jpeg": "jpg",
}

func init() {
	for ext, m := range extensionToMime {
		if _, ok := mimeToExtension[m]; !ok {
			mimeToExtension[m] = ext
		}
	}
}

// FromExtension returns the mime type for a file extension (with or without
// the leading dot). The second result is false for unknown extensions.
func FromExtension(ext string) (string, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if m, ok := extensionToMime[ext]; ok {
		return m, true
	}
	if m := mime.TypeByExtension("." + ext); m != "" {
		return stripParams(m), true
	}
	return "", false
}

// ToExtension returns the extension (without dot) for a mime type. Parameters
// such as "; charset=utf-8" are ignored.
func ToExtension(mimeType string) (string, bool) {
	mimeType = stripParams(mimeType)
	if ext, ok := mimeToExtension[mimeType]; ok {
		return ext, true
	}
	if m := mimetype.Lookup(mimeType); m != nil && m.Extension() != "" {
		return strings.TrimPrefix(m.Extension(), "."), true
	}
	return "", false
}

// ExtensionOf returns the lower-cased extension of a path or URL without the dot.
func ExtensionOf(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Detect sniffs the content and returns its extension and mime type.
func Detect(data []byte) (ext string, mimeType string) {
	m := mimetype.Detect(data)
	return strings.TrimPrefix(m.Extension(), "."), stripParams(m.String())
}

func stripParams(m string) string {
	if i := strings.Index(m, ";"); i >= 0 {
		m = m[:i]
	}
	return strings.TrimSpace(strings.ToLower(m))
}
