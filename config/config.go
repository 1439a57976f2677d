// Package config holds the option bags of a print job: output settings, PDF
// and CSV options, server settings with command hooks and an IPP printer, and
// cloud storage tokens. Every type serializes only the fields that are set.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidEncoding is returned for output encodings other than raw and base64.
	ErrInvalidEncoding = errors.New("config: encoding must be raw or base64")
	// ErrUnknownCloudService is returned for cloud services the server does not support.
	ErrUnknownCloudService = errors.New("config: unknown cloud service")
	// ErrInvalidConfig wraps every other validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationError turns a validator error into ErrInvalidConfig with a
// readable message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			switch ve.Tag() {
			case "required":
				return fmt.Errorf("%w: %s is required", ErrInvalidConfig, ve.Field())
			case "url":
				return fmt.Errorf("%w: %s must be a valid URL", ErrInvalidConfig, ve.Field())
			case "min", "max":
				return fmt.Errorf("%w: %s is out of range", ErrInvalidConfig, ve.Field())
			}
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

type option interface {
	Any() (any, bool)
}

type entry struct {
	key   string
	value option
}

// put copies the set entries into m.
func put(m map[string]any, entries []entry) {
	for _, e := range entries {
		if v, ok := e.value.Any(); ok {
			m[e.key] = v
		}
	}
}
