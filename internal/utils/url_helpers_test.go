package utils

import (
	"net/url"
	"testing"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"adds trailing slash", "http://localhost:8010", "http://localhost:8010/"},
		{"keeps trailing slash", "https://api.cloudofficeprint.com/", "https://api.cloudofficeprint.com/"},
		{"keeps sub path", "https://example.com/cop", "https://example.com/cop/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := BaseURL(tt.in)
			if err != nil {
				t.Fatalf("BaseURL(%q) error: %v", tt.in, err)
			}
			if u.String() != tt.want {
				t.Errorf("BaseURL(%q) = %q, want %q", tt.in, u.String(), tt.want)
			}
		})
	}
}

func TestBaseURLRejectsInvalid(t *testing.T) {
	if _, err := BaseURL("localhost:8010"); err == nil {
		t.Errorf("expected error for URL without scheme")
	}
}

func TestEndpointURL(t *testing.T) {
	base, err := BaseURL("https://example.com/cop")
	if err != nil {
		t.Fatal(err)
	}
	if got := EndpointURL(base, "marco", nil); got != "https://example.com/cop/marco" {
		t.Errorf("EndpointURL = %q", got)
	}
	q := url.Values{"template": []string{"docx"}}
	if got := EndpointURL(base, "supported_output_mimetypes", q); got != "https://example.com/cop/supported_output_mimetypes?template=docx" {
		t.Errorf("EndpointURL with query = %q", got)
	}
}
