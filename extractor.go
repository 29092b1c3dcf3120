// Package linkxtract extracts hyperlinks from an HTML or XHTML
// response: it decodes the body, narrows it to the configured regions,
// walks their anchor-bearing elements, resolves and normalizes each
// URL, runs the filter chain, and aggregates the survivors into an
// ordered, optionally canonicalized and deduplicated link list.
package linkxtract

import (
	"github.com/tariktz/linkxtract/internal/aggregate"
	"github.com/tariktz/linkxtract/internal/config"
	"github.com/tariktz/linkxtract/internal/decode"
	"github.com/tariktz/linkxtract/internal/filter"
	"github.com/tariktz/linkxtract/internal/linkmodel"
	"github.com/tariktz/linkxtract/internal/region"
	"github.com/tariktz/linkxtract/internal/resolve"
	"github.com/tariktz/linkxtract/internal/walk"
)

// Link is an extracted hyperlink. See internal/linkmodel.Link for the
// field-by-field contract; it is aliased here so the pipeline packages
// and this façade share one type without an import cycle.
type Link = linkmodel.Link

// Config is the immutable extractor configuration produced by
// config.New.
type Config = config.Config

// ConfigurationError reports a failed Config build (an invalid regex).
type ConfigurationError = config.ConfigurationError

// Response is the fetched page an extractor runs against.
type Response struct {
	// URL is the response's final URL, used as the base for resolving
	// relative references absent a <base> element.
	URL string
	// Body is the raw, possibly non-UTF-8 response bytes.
	Body []byte
	// Encoding is the declared charset, e.g. from a Content-Type
	// header or an HTML meta tag. Empty means "unknown" and triggers
	// charset sniffing.
	Encoding string
	// IsXML selects the XML parser for XHTML-as-XML responses; false
	// parses Body as permissive HTML.
	IsXML bool
}

// LinkExtractor runs one ExtractorConfig against many Responses. It
// holds no mutable state, so a single instance is safe to share across
// concurrently running extraction calls.
type LinkExtractor struct {
	cfg Config
}

// NewExtractor builds a LinkExtractor from an already-validated Config.
// Config is built via config.New, which compiles every regex up front,
// so NewExtractor itself cannot fail. Selectors are not checked there;
// an invalid one matches nothing at extraction time.
func NewExtractor(cfg Config) (*LinkExtractor, error) {
	return &LinkExtractor{cfg: cfg}, nil
}

// ExtractLinks runs the full pipeline against resp: decode, select
// regions, walk anchors, resolve URLs, filter, then aggregate. It never
// returns an error — malformed input yields fewer links, not a failure.
func (e *LinkExtractor) ExtractLinks(resp Response) []Link {
	doc := decode.Decode(resp.Body, resp.Encoding, resp.URL, resp.IsXML)

	regions := region.Select(doc, e.cfg.RestrictXPaths(), e.cfg.RestrictCSS())

	var anchors []walk.Anchor
	for _, r := range regions {
		anchors = append(anchors, walk.Walk(r, e.cfg.Tags(), e.cfg.Attrs())...)
	}

	resolved := resolve.Resolve(anchors, doc.BaseURL, doc.Encoding, resolve.ProcessValueFunc(e.cfg.ProcessValue()), e.cfg.Strip())

	filtered := filter.Apply(resolved, filter.Rules{
		Allow:          e.cfg.Allow(),
		Deny:           e.cfg.Deny(),
		AllowDomains:   e.cfg.AllowDomains(),
		DenyDomains:    e.cfg.DenyDomains(),
		DenyExtensions: e.cfg.DenyExtensions(),
		RestrictText:   e.cfg.RestrictText(),
	})

	return aggregate.Aggregate(filtered, aggregate.Options{
		Canonicalize: e.cfg.Canonicalize(),
		Unique:       e.cfg.Unique(),
	})
}

// Matches reports whether rawURL alone — independent of any document —
// would survive the filter chain's allow/deny/domain/extension rules.
// It does not evaluate restrict_text, which requires anchor text.
func (e *LinkExtractor) Matches(rawURL string) bool {
	links := filter.Apply([]resolve.Resolved{{URL: rawURL}}, filter.Rules{
		Allow:          e.cfg.Allow(),
		Deny:           e.cfg.Deny(),
		AllowDomains:   e.cfg.AllowDomains(),
		DenyDomains:    e.cfg.DenyDomains(),
		DenyExtensions: e.cfg.DenyExtensions(),
	})
	return len(links) == 1
}
