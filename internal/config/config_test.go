package config

import (
	"encoding/json"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Tags(); len(got) != 2 || got[0] != "a" || got[1] != "area" {
		t.Errorf("default tags = %v, want [a area]", got)
	}
	if got := cfg.Attrs(); len(got) != 1 || got[0] != "href" {
		t.Errorf("default attrs = %v, want [href]", got)
	}
	if !cfg.Unique() {
		t.Error("unique should default to true")
	}
	if !cfg.Strip() {
		t.Error("strip should default to true")
	}
	if cfg.Canonicalize() {
		t.Error("canonicalize should default to false")
	}
	if len(cfg.DenyExtensions()) == 0 {
		t.Error("expected a non-empty default deny-extensions list")
	}
}

func TestWithTagsEmptyMeansNone(t *testing.T) {
	cfg, err := New(WithTags())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Tags()) != 0 {
		t.Errorf("WithTags() with no args should clear tags, got %v", cfg.Tags())
	}
}

func TestNewInvalidRegexFails(t *testing.T) {
	_, err := New(WithAllow("(unterminated"))
	if err == nil {
		t.Fatal("expected an error for an invalid regex")
	}
	cfgErr, ok := err.(*ConfigurationError)
	if !ok {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
	if cfgErr.Field != "allow" {
		t.Errorf("Field = %q, want %q", cfgErr.Field, "allow")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	cfg, err := New(
		WithAllow(`/blog/`),
		WithDenyDomains("ads.example.com"),
		WithCanonicalize(true),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var roundTripped Config
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(roundTripped.Allow()) != 1 || roundTripped.Allow()[0].String() != `/blog/` {
		t.Errorf("Allow round-trip = %v", roundTripped.Allow())
	}
	if !roundTripped.Canonicalize() {
		t.Error("Canonicalize should round-trip as true")
	}
	if len(roundTripped.DenyDomains()) != 1 || roundTripped.DenyDomains()[0] != "ads.example.com" {
		t.Errorf("DenyDomains round-trip = %v", roundTripped.DenyDomains())
	}
}

func TestJSONRoundTripDropsProcessValue(t *testing.T) {
	cfg, err := New(WithProcessValue(func(raw string) (string, bool) {
		return raw, true
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := json.Marshal(cfg)
	var roundTripped Config
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if roundTripped.ProcessValue() != nil {
		t.Error("ProcessValue should not survive a JSON round trip")
	}
}
