// Package aggregate turns the filter chain's surviving links into the
// final ordered, optionally canonicalized and deduplicated Link slice.
package aggregate

import (
	"github.com/tariktz/linkxtract/internal/linkmodel"
	"github.com/tariktz/linkxtract/internal/resolve"
	"github.com/tariktz/linkxtract/internal/urlx"
)

// Options controls how links are finalized.
type Options struct {
	// Canonicalize sorts each link's query parameters and drops any
	// fragment before it is compared or returned.
	Canonicalize bool
	// Unique drops later links whose (possibly canonicalized) URL has
	// already been seen, keeping the first occurrence's text/nofollow.
	Unique bool
}

// Aggregate finalizes links in order, applying canonicalization and
// deduplication per opts.
func Aggregate(links []resolve.Resolved, opts Options) []linkmodel.Link {
	seen := make(map[string]bool, len(links))
	out := make([]linkmodel.Link, 0, len(links))

	for _, l := range links {
		finalURL := l.URL
		if opts.Canonicalize {
			if c, err := urlx.Canonicalize(finalURL); err == nil {
				finalURL = c
			}
		}

		if opts.Unique {
			if seen[finalURL] {
				continue
			}
			seen[finalURL] = true
		}

		out = append(out, linkmodel.Link{
			URL:      finalURL,
			Text:     l.Text,
			Fragment: l.Fragment,
			Nofollow: l.Nofollow,
		})
	}

	return out
}
