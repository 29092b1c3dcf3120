package decode

import "testing"

func TestDecodeHTML(t *testing.T) {
	doc := Decode([]byte(`<html><body><a href="/a">A</a></body></html>`), "utf-8", "https://example.com/", false)
	if doc.IsXML() {
		t.Fatal("expected an HTML document")
	}
	if doc.HTMLRoot == nil {
		t.Fatal("expected a non-nil HTML root")
	}
	if doc.BaseURL != "https://example.com/" {
		t.Errorf("BaseURL = %q", doc.BaseURL)
	}
}

func TestDecodeXML(t *testing.T) {
	doc := Decode([]byte(`<?xml version="1.0"?><root><a href="/a">A</a></root>`), "utf-8", "https://example.com/", true)
	if !doc.IsXML() {
		t.Fatal("expected an XML document")
	}
	if doc.XMLRoot == nil {
		t.Fatal("expected a non-nil XML root")
	}
}

func TestDecodeBaseElementOverridesSourceURL(t *testing.T) {
	doc := Decode([]byte(`<html><head><base href="https://cdn.example.com/assets/"></head><body></body></html>`),
		"utf-8", "https://example.com/page", false)
	if doc.BaseURL != "https://cdn.example.com/assets/" {
		t.Errorf("BaseURL = %q, want the <base href>", doc.BaseURL)
	}
}

func TestDecodeOnlyFirstBaseCounts(t *testing.T) {
	doc := Decode([]byte(`<html><head>
		<base href="/first/">
		<base href="/second/">
	</head><body></body></html>`), "utf-8", "https://example.com/page", false)
	if doc.BaseURL != "https://example.com/first/" {
		t.Errorf("BaseURL = %q, want the first <base href> resolved", doc.BaseURL)
	}
}

func TestDecodeNeverFails(t *testing.T) {
	doc := Decode([]byte{0xff, 0xfe, 0x00, 0x01}, "", "https://example.com/", false)
	if doc == nil {
		t.Fatal("Decode must never return nil")
	}
}

func TestDecodeDeclaredWindows1252(t *testing.T) {
	// 0xe9 is "é" in windows-1252 but invalid as a lone UTF-8 byte.
	body := []byte("<html><body><a href=\"/a\">caf\xe9</a></body></html>")
	doc := Decode(body, "windows-1252", "https://example.com/", false)
	if doc.HTMLRoot == nil {
		t.Fatal("expected a parsed HTML document")
	}
}

func TestDecodeExposesEffectiveEncoding(t *testing.T) {
	doc := Decode([]byte(`<html><body></body></html>`), "iso8859-15", "https://example.com/", false)
	if doc.Encoding != "iso8859-15" {
		t.Errorf("Encoding = %q, want the declared charset", doc.Encoding)
	}
}

