package utils

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// URLValidationConfig holds configuration for URL validation
type URLValidationConfig struct {
	AllowedSchemes []string
}

var (
	// ServerURLConfig accepts the schemes a Cloud Office Print server listens on.
	ServerURLConfig = URLValidationConfig{AllowedSchemes: []string{"http", "https"}}
	// ResourceURLConfig accepts the schemes the server can fetch files from.
	ResourceURLConfig = URLValidationConfig{AllowedSchemes: []string{"http", "https", "ftp", "sftp"}}
)

// ValidateURL validates a URL as a server address
func ValidateURL(urlStr string) error {
	return ValidateURLWithConfig(urlStr, ServerURLConfig)
}

// ValidateURLWithConfig validates a URL with the provided configuration
func ValidateURLWithConfig(urlStr string, cfg URLValidationConfig) error {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsedURL.Scheme)
	if !slices.Contains(cfg.AllowedSchemes, scheme) {
		return fmt.Errorf("unsupported URL scheme: %s (allowed: %s)", parsedURL.Scheme, strings.Join(cfg.AllowedSchemes, ", "))
	}

	if parsedURL.Hostname() == "" {
		return fmt.Errorf("URL missing hostname")
	}

	return nil
}
