package urlx

import "testing"

func TestResolveRelative(t *testing.T) {
	tests := []struct {
		base     string
		ref      string
		wantURL  string
		wantFrag string
	}{
		{"https://example.com/dir/", "page", "https://example.com/dir/page", ""},
		{"https://example.com/dir/", "/abs", "https://example.com/abs", ""},
		{"https://example.com/page", "#section", "https://example.com/page", "section"},
		{"https://example.com/", "https://other.com/x", "https://other.com/x", ""},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.base, tt.ref, "")
		if err != nil {
			t.Fatalf("Resolve(%q, %q): unexpected error: %v", tt.base, tt.ref, err)
		}
		if got.URL != tt.wantURL {
			t.Errorf("Resolve(%q, %q).URL = %q, want %q", tt.base, tt.ref, got.URL, tt.wantURL)
		}
		if got.Fragment != tt.wantFrag {
			t.Errorf("Resolve(%q, %q).Fragment = %q, want %q", tt.base, tt.ref, got.Fragment, tt.wantFrag)
		}
	}
}

func TestResolveMalformedRejected(t *testing.T) {
	bad := []string{
		"http://[example.org/",
	}
	for _, ref := range bad {
		if _, err := Resolve("https://example.com/", ref, ""); err == nil {
			t.Errorf("Resolve(_, %q): expected an error", ref)
		}
	}
}

func TestResolveQueryUsesDocumentEncoding(t *testing.T) {
	got, err := Resolve("http://example.org/", "/♥/you?c=€", "iso8859-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "http://example.org/%E2%99%A5/you?c=%A4"
	if got.URL != want {
		t.Errorf("Resolve with iso8859-15 query = %q, want %q", got.URL, want)
	}
}

func TestResolveQueryDefaultsToUTF8(t *testing.T) {
	got, err := Resolve("http://example.org/", "/you?c=€", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "http://example.org/you?c=%E2%82%AC"
	if got.URL != want {
		t.Errorf("Resolve with no declared encoding = %q, want %q", got.URL, want)
	}
}

func TestCanonicalizeSortsQueryAndDropsFragment(t *testing.T) {
	got, err := Canonicalize("https://example.com/page?b=2&a=1#frag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://example.com/page?a=1&b=2"
	if got != want {
		t.Errorf("Canonicalize = %q, want %q", got, want)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	once, err := Canonicalize("https://example.com/page?a=1&b=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := Canonicalize(once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if once != twice {
		t.Errorf("Canonicalize not idempotent: %q != %q", once, twice)
	}
}
