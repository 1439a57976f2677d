package mimetypes

import "testing"

func TestFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
		ok   bool
	}{
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{".PDF", "application/pdf", true},
		{"html", "text/html", true},
		{"md", "text/markdown", true},
		{"nope-not-a-type", "", false},
	}
	for _, tt := range tests {
		got, ok := FromExtension(tt.ext)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromExtension(%q) = %q, %v; want %q, %v", tt.ext, got, ok, tt.want, tt.ok)
		}
	}
}

func TestToExtension(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"application/pdf", "pdf"},
		{"text/html; charset=utf-8", "html"},
		{"image/jpeg", "jpg"},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"},
	}
	for _, tt := range tests {
		if got, ok := ToExtension(tt.mime); !ok || got != tt.want {
			t.Errorf("ToExtension(%q) = %q, %v; want %q", tt.mime, got, ok, tt.want)
		}
	}
}

func TestExtensionOf(t *testing.T) {
	tests := map[string]string{
		"/srv/templates/invoice.DOCX":             "docx",
		"https://example.com/a/b/report.pptx?x=1": "pptx",
		"no_extension":                            "",
	}
	for in, want := range tests {
		if got := ExtensionOf(in); got != want {
			t.Errorf("ExtensionOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDetect(t *testing.T) {
	ext, m := Detect([]byte("%PDF-1.7\n%âãÏÓ\n"))
	if ext != "pdf" || m != "application/pdf" {
		t.Errorf("Detect(pdf) = %q, %q", ext, m)
	}
}
