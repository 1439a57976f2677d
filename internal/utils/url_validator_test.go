package utils

import (
	"strings"
	"testing"
)

func TestValidateURLWithConfig(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		config        URLValidationConfig
		expectError   bool
		errorContains string
	}{
		{
			name:        "valid https URL",
			url:         "https://api.cloudofficeprint.com/",
			config:      ServerURLConfig,
			expectError: false,
		},
		{
			name:        "valid http URL with port",
			url:         "http://localhost:8010/",
			config:      ServerURLConfig,
			expectError: false,
		},
		{
			name:          "invalid URL",
			url:           "not-a-url",
			config:        ServerURLConfig,
			expectError:   true,
			errorContains: "unsupported URL scheme",
		},
		{
			name:          "ftp rejected for servers",
			url:           "ftp://example.com/file.docx",
			config:        ServerURLConfig,
			expectError:   true,
			errorContains: "unsupported URL scheme",
		},
		{
			name:        "ftp accepted for resources",
			url:         "ftp://example.com/file.docx",
			config:      ResourceURLConfig,
			expectError: false,
		},
		{
			name:          "missing hostname",
			url:           "http:///path",
			config:        ServerURLConfig,
			expectError:   true,
			errorContains: "URL missing hostname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURLWithConfig(tt.url, tt.config)
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("expected error to contain %q, got %q", tt.errorContains, err.Error())
				}
			} else if err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}
