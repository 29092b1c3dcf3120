package config

import "encoding/json"

// jsonConfig mirrors Config's serializable surface. ProcessValue is a
// Go closure and has no JSON representation, so it is excluded —
// round-tripping a Config through JSON always yields one with
// ProcessValue unset, matching spec.md §3's "the configured regex
// patterns and callable, if any, must round-trip through a standard
// object-serialization boundary" for every field except the callable.
type jsonConfig struct {
	Allow          []string `json:"allow,omitempty"`
	Deny           []string `json:"deny,omitempty"`
	AllowDomains   []string `json:"allow_domains,omitempty"`
	DenyDomains    []string `json:"deny_domains,omitempty"`
	RestrictXPaths []string `json:"restrict_xpaths,omitempty"`
	RestrictCSS    []string `json:"restrict_css,omitempty"`
	RestrictText   []string `json:"restrict_text,omitempty"`
	Tags           []string `json:"tags"`
	Attrs          []string `json:"attrs"`
	DenyExtensions []string `json:"deny_extensions"`
	Canonicalize   bool     `json:"canonicalize"`
	Unique         bool     `json:"unique"`
	Strip          bool     `json:"strip"`
}

// MarshalJSON serializes every field except ProcessValue.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonConfig{
		Allow:          c.allowSrc,
		Deny:           c.denySrc,
		AllowDomains:   c.allowDomains,
		DenyDomains:    c.denyDomains,
		RestrictXPaths: c.restrictXPaths,
		RestrictCSS:    c.restrictCSS,
		RestrictText:   c.restrictTextSrc,
		Tags:           c.tags,
		Attrs:          c.attrs,
		DenyExtensions: c.denyExtensions,
		Canonicalize:   c.canonicalize,
		Unique:         c.unique,
		Strip:          c.strip,
	})
}

// UnmarshalJSON rebuilds a Config via New, so every regex field is
// recompiled and validated exactly as it would be from Options.
func (c *Config) UnmarshalJSON(data []byte) error {
	var j jsonConfig
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}

	opts := []Option{
		WithAllow(j.Allow...),
		WithDeny(j.Deny...),
		WithAllowDomains(j.AllowDomains...),
		WithDenyDomains(j.DenyDomains...),
		WithRestrictXPaths(j.RestrictXPaths...),
		WithRestrictCSS(j.RestrictCSS...),
		WithRestrictText(j.RestrictText...),
		WithTags(j.Tags...),
		WithAttrs(j.Attrs...),
		WithDenyExtensions(j.DenyExtensions...),
		WithCanonicalize(j.Canonicalize),
		WithUnique(j.Unique),
		WithStrip(j.Strip),
	}

	built, err := New(opts...)
	if err != nil {
		return err
	}
	*c = built
	return nil
}
