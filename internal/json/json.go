// Package json wraps json-iterator so every payload in the SDK is encoded the
// same way: standard library compatible, with map keys sorted.
package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Encoder represents an encoder for json
type Encoder interface {
	Encode(v any) error
}

// Decoder represents a decoder for json
type Decoder interface {
	Decode(v any) error
}

var handler = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal converts object as bytes
func Marshal(v any) ([]byte, error) {
	return handler.Marshal(v)
}

// MarshalIndent is Marshal with indentation, used for verbose payload logging.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return handler.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes object from bytes
func Unmarshal(data []byte, v any) error {
	return handler.Unmarshal(data, v)
}

// NewEncoder creates an encoder to write objects to writer
func NewEncoder(writer io.Writer) Encoder {
	return handler.NewEncoder(writer)
}

// NewDecoder creates a decoder to read objects from reader
func NewDecoder(reader io.Reader) Decoder {
	return handler.NewDecoder(reader)
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	return handler.Valid(data)
}
