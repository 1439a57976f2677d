package config

import (
	"fmt"
	"maps"

	"github.com/rmitchellscott/cloudofficeprint/optional"
)

const (
	defaultEncoding  = "raw"
	defaultConverter = "libreoffice"
)

// RequestOption makes the server POST the output to URL instead of returning
// it in the response.
type RequestOption struct {
	URL          string            `validate:"required,url"`
	ExtraHeaders map[string]string `validate:"omitempty"`
}

func (r *RequestOption) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

func (r *RequestOption) AsDict() map[string]any {
	result := map[string]any{"url": r.URL}
	if len(r.ExtraHeaders) > 0 {
		result["extra_headers"] = maps.Clone(r.ExtraHeaders)
	}
	return result
}

// OutputConfig describes the document the server produces. The zero value
// renders with raw encoding and the libreoffice converter; the output type is
// taken from the template when left unset.
type OutputConfig struct {
	FileType  optional.Option[string]
	Converter string
	Locale    optional.Option[string]
	UpdateTOC optional.Option[bool]
	// ReturnOutput asks the server to return the output even when it is also
	// stored or posted elsewhere.
	ReturnOutput     optional.Option[bool]
	Polling          optional.Option[bool]
	SecretKey        optional.Option[string]
	RequestOption    *RequestOption
	CloudAccessToken CloudAccessToken
	ServerDirectory  optional.Option[string]
	PDFOptions       *PDFOptions
	CSVOptions       *CsvOptions
	PrependPerPage   optional.Option[bool]
	AppendPerPage    optional.Option[bool]

	encoding string
}

// NewOutputConfig returns an output config for the given file type. An empty
// fileType leaves the type to the template.
func NewOutputConfig(fileType string) *OutputConfig {
	return &OutputConfig{FileType: optional.FromNonDefault(fileType)}
}

// Encoding returns the output encoding, raw unless set otherwise.
func (o *OutputConfig) Encoding() string {
	if o.encoding == "" {
		return defaultEncoding
	}
	return o.encoding
}

// SetEncoding sets the output encoding. Only raw and base64 are accepted.
func (o *OutputConfig) SetEncoding(encoding string) error {
	if err := validate.Var(encoding, "required,oneof=raw base64"); err != nil {
		return fmt.Errorf("%w: got %q", ErrInvalidEncoding, encoding)
	}
	o.encoding = encoding
	return nil
}

// Validate checks the nested request option.
func (o *OutputConfig) Validate() error {
	if o.RequestOption != nil {
		if err := o.RequestOption.Validate(); err != nil {
			return err
		}
	}
	if v, ok := o.CloudAccessToken.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return nil
}

// AsDict returns the "output" object of a request.
func (o *OutputConfig) AsDict() map[string]any {
	converter := o.Converter
	if converter == "" {
		converter = defaultConverter
	}
	result := map[string]any{
		"output_encoding":  o.Encoding(),
		"output_converter": converter,
	}
	put(result, []entry{
		{"output_type", o.FileType},
		{"output_locale", o.Locale},
		{"update_toc", o.UpdateTOC},
		{"return_output", o.ReturnOutput},
		{"output_polling", o.Polling},
		{"secret_key", o.SecretKey},
		{"output_directory", o.ServerDirectory},
		{"output_prepend_per_page", o.PrependPerPage},
		{"output_append_per_page", o.AppendPerPage},
	})
	if o.RequestOption != nil {
		result["request_option"] = o.RequestOption.AsDict()
	}
	if o.CloudAccessToken != nil {
		maps.Copy(result, o.CloudAccessToken.AsDict())
	}
	if o.PDFOptions != nil {
		maps.Copy(result, o.PDFOptions.AsDict())
	}
	if o.CSVOptions != nil {
		maps.Copy(result, o.CSVOptions.AsDict())
	}
	return result
}
