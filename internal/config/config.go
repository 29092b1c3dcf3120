// Package config builds the immutable, validated configuration the
// extraction pipeline runs against. It follows the teacher's
// crawlOptions-struct-plus-flags pattern, generalized into a functional
// options constructor since a library has no flag set behind it.
package config

import (
	"fmt"
	"regexp"

	"github.com/tariktz/linkxtract/internal/filter"
)

// ProcessValueFunc rewrites or rejects a raw attribute value before it
// is resolved against the base URL. Returning ok=false drops the anchor.
type ProcessValueFunc func(raw string) (value string, ok bool)

// ConfigurationError reports a failure while building a Config: an
// invalid allow, deny or restrict_text regex. It always names the Option
// field that failed. XPath and CSS selectors are not checked here.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("linkxtract: config: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Config is the fully-resolved, immutable extractor configuration. It
// is built exclusively through New; its fields are unexported so that
// construction always goes through validation.
type Config struct {
	allow          []*regexp.Regexp
	deny           []*regexp.Regexp
	allowDomains   []string
	denyDomains    []string
	restrictXPaths []string
	restrictCSS    []string
	restrictText   []*regexp.Regexp
	tags           []string
	attrs          []string
	denyExtensions []string
	canonicalize   bool
	unique         bool
	processValue   ProcessValueFunc
	strip          bool

	allowSrc        []string
	denySrc         []string
	restrictTextSrc []string
}

// Option configures a Config under construction.
type Option func(*build) error

type build struct {
	cfg Config
}

// New builds a Config from opts, applying defaults for anything not
// set: tags={a, area}, attrs={href}, deny_extensions=the built-in
// archive/media/binary list, unique=true, strip=true. It returns a
// *ConfigurationError wrapping the first compile failure encountered,
// in option-application order.
func New(opts ...Option) (Config, error) {
	b := &build{cfg: Config{
		tags:           append([]string(nil), defaultTags...),
		attrs:          append([]string(nil), defaultAttrs...),
		denyExtensions: append([]string(nil), filter.DefaultDenyExtensions...),
		unique:         true,
		strip:          true,
	}}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return Config{}, err
		}
	}
	return b.cfg, nil
}

var (
	defaultTags  = []string{"a", "area"}
	defaultAttrs = []string{"href"}
)

func compileAll(field string, patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &ConfigurationError{Field: field, Err: err}
		}
		out = append(out, re)
	}
	return out, nil
}

// WithAllow sets the allow regex list; an empty call allows everything.
func WithAllow(patterns ...string) Option {
	return func(b *build) error {
		re, err := compileAll("allow", patterns)
		if err != nil {
			return err
		}
		b.cfg.allow = re
		b.cfg.allowSrc = patterns
		return nil
	}
}

// WithDeny sets the deny regex list; an empty call denies nothing.
func WithDeny(patterns ...string) Option {
	return func(b *build) error {
		re, err := compileAll("deny", patterns)
		if err != nil {
			return err
		}
		b.cfg.deny = re
		b.cfg.denySrc = patterns
		return nil
	}
}

// WithAllowDomains sets the allow-domain list; an empty call allows
// every domain.
func WithAllowDomains(domains ...string) Option {
	return func(b *build) error {
		b.cfg.allowDomains = domains
		return nil
	}
}

// WithDenyDomains sets the deny-domain list.
func WithDenyDomains(domains ...string) Option {
	return func(b *build) error {
		b.cfg.denyDomains = domains
		return nil
	}
}

// WithRestrictXPaths sets the XPath expressions regions are selected
// from. Invalid expressions are never rejected at construction time —
// they simply match zero nodes at extraction time, per spec.
func WithRestrictXPaths(exprs ...string) Option {
	return func(b *build) error {
		b.cfg.restrictXPaths = exprs
		return nil
	}
}

// WithRestrictCSS sets the CSS selectors regions are selected from.
func WithRestrictCSS(selectors ...string) Option {
	return func(b *build) error {
		b.cfg.restrictCSS = selectors
		return nil
	}
}

// WithRestrictText sets the anchor-text regex allowlist; an empty call
// allows every anchor text.
func WithRestrictText(patterns ...string) Option {
	return func(b *build) error {
		re, err := compileAll("restrict_text", patterns)
		if err != nil {
			return err
		}
		b.cfg.restrictText = re
		b.cfg.restrictTextSrc = patterns
		return nil
	}
}

// WithTags overrides the default {a, area} tag set. Calling it with no
// arguments sets an empty tag set, which extracts nothing — distinct
// from never calling WithTags, which keeps the default.
func WithTags(tags ...string) Option {
	return func(b *build) error {
		b.cfg.tags = tags
		return nil
	}
}

// WithAttrs overrides the default {href} attribute set. Calling it with
// no arguments sets an empty attribute set, which extracts nothing.
func WithAttrs(attrs ...string) Option {
	return func(b *build) error {
		b.cfg.attrs = attrs
		return nil
	}
}

// WithDenyExtensions overrides the built-in deny-extensions list.
// Calling it with no arguments disables extension-based filtering
// entirely.
func WithDenyExtensions(exts ...string) Option {
	return func(b *build) error {
		b.cfg.denyExtensions = exts
		return nil
	}
}

// WithCanonicalize enables or disables URL canonicalization. Default
// false.
func WithCanonicalize(enabled bool) Option {
	return func(b *build) error {
		b.cfg.canonicalize = enabled
		return nil
	}
}

// WithUnique enables or disables deduplication. Default true.
func WithUnique(enabled bool) Option {
	return func(b *build) error {
		b.cfg.unique = enabled
		return nil
	}
}

// WithStrip enables or disables whitespace stripping on raw attribute
// values before they are processed and resolved. Default true.
func WithStrip(enabled bool) Option {
	return func(b *build) error {
		b.cfg.strip = enabled
		return nil
	}
}

// WithProcessValue sets the raw-value preprocessing hook. It is never
// serialized: it has no JSON representation.
func WithProcessValue(fn ProcessValueFunc) Option {
	return func(b *build) error {
		b.cfg.processValue = fn
		return nil
	}
}

// Accessors. Config's fields are unexported so every mutation goes
// through a validated Option; the pipeline packages read the resolved
// values through these.

func (c Config) Allow() []*regexp.Regexp        { return c.allow }
func (c Config) Deny() []*regexp.Regexp         { return c.deny }
func (c Config) AllowDomains() []string         { return c.allowDomains }
func (c Config) DenyDomains() []string          { return c.denyDomains }
func (c Config) RestrictXPaths() []string       { return c.restrictXPaths }
func (c Config) RestrictCSS() []string          { return c.restrictCSS }
func (c Config) RestrictText() []*regexp.Regexp { return c.restrictText }
func (c Config) Tags() []string                 { return c.tags }
func (c Config) Attrs() []string                { return c.attrs }
func (c Config) DenyExtensions() []string       { return c.denyExtensions }
func (c Config) Canonicalize() bool             { return c.canonicalize }
func (c Config) Unique() bool                   { return c.unique }
func (c Config) Strip() bool                    { return c.strip }
func (c Config) ProcessValue() ProcessValueFunc { return c.processValue }
