package fetch

import "testing"

func TestEncodingFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"text/html; charset=windows-1252", "windows-1252"},
		{"text/html", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := encodingFromContentType(tt.contentType); got != tt.want {
			t.Errorf("encodingFromContentType(%q) = %q, want %q", tt.contentType, got, tt.want)
		}
	}
}

func TestIsXMLContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/xhtml+xml; charset=utf-8", true},
		{"text/xml", true},
		{"text/html", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isXMLContentType(tt.contentType); got != tt.want {
			t.Errorf("isXMLContentType(%q) = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}
