// Package filter applies the allow/deny/domain/extension/text rules
// that decide which resolved links survive into the final result.
package filter

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tariktz/linkxtract/internal/resolve"
)

// allowedSchemes are the only URL schemes a link may carry to pass the
// chain; javascript:, mailto:, tel:, and data: links never resolve to
// crawlable pages.
var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"file":  true,
	"ftp":   true,
}

// Rules is the fully-resolved set of filter parameters for one
// extraction call. Every slice is applied as an OR within itself; rule
// categories are applied as AND across categories, matching Scrapy's
// LinkExtractor semantics.
type Rules struct {
	Allow          []*regexp.Regexp
	Deny           []*regexp.Regexp
	AllowDomains   []string
	DenyDomains    []string
	DenyExtensions []string
	RestrictText   []*regexp.Regexp
}

// Apply returns the subset of links that satisfy every rule category in
// r. Link order is preserved.
func Apply(links []resolve.Resolved, r Rules) []resolve.Resolved {
	out := make([]resolve.Resolved, 0, len(links))
	for _, l := range links {
		if keep(l, r) {
			out = append(out, l)
		}
	}
	return out
}

func keep(l resolve.Resolved, r Rules) bool {
	u, err := url.Parse(l.URL)
	if err != nil {
		return false
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return false
	}

	matchURL := l.URL
	if l.Fragment != "" {
		matchURL += "#" + l.Fragment
	}
	if !matchesAny(r.Allow, matchURL, true) {
		return false
	}
	if matchesAny(r.Deny, matchURL, false) {
		return false
	}

	host := u.Hostname()
	if len(r.AllowDomains) > 0 && !domainMatchesAny(host, r.AllowDomains) {
		return false
	}
	if domainMatchesAny(host, r.DenyDomains) {
		return false
	}

	if hasExtension(u.Path, r.DenyExtensions) {
		return false
	}

	if !matchesAny(r.RestrictText, l.Text, true) {
		return false
	}

	return true
}

// matchesAny reports whether s matches at least one pattern in res. When
// res is empty, emptyResult is returned instead: callers pass true for
// allow/restrict_text (an empty list allows everything) and false for
// deny (an empty deny-list denies nothing).
func matchesAny(res []*regexp.Regexp, s string, emptyResult bool) bool {
	if len(res) == 0 {
		return emptyResult
	}
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// domainMatchesAny reports whether host equals one of domains, or is a
// sub-domain of one of them (a dot-delimited label suffix match, so
// "example.com" matches "shop.example.com" but not "notexample.com").
func domainMatchesAny(host string, domains []string) bool {
	host = strings.ToLower(host)
	for _, d := range domains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
