// Package resolve turns a walked Anchor into an absolute, split
// (url, fragment) pair, applying the user's process_value hook first
// and silently dropping anything that cannot be resolved.
package resolve

import (
	"strings"

	"github.com/tariktz/linkxtract/internal/urlx"
	"github.com/tariktz/linkxtract/internal/walk"
)

// Resolved is an anchor whose attribute value has been turned into an
// absolute URL, still carrying the anchor's text and nofollow flag.
type Resolved struct {
	URL      string
	Fragment string
	Text     string
	Nofollow bool
}

// ProcessValueFunc rewrites (or rejects) a raw attribute value before it
// is resolved against the base URL. Returning ok=false drops the anchor
// entirely, before resolution is ever attempted.
type ProcessValueFunc func(raw string) (value string, ok bool)

// Resolve applies processValue (if non-nil) to each anchor's raw,
// unstripped value, then strips the result (if strip is true) before
// resolving it against baseURL. Anchors whose value is rejected by
// processValue, or that fail to resolve against baseURL, are silently
// dropped — never an error. docEncoding is the source document's
// charset label (see decode.Document.Encoding); it controls how a
// resolved URL's query string is percent-encoded.
func Resolve(anchors []walk.Anchor, baseURL, docEncoding string, processValue ProcessValueFunc, strip bool) []Resolved {
	out := make([]Resolved, 0, len(anchors))
	for _, a := range anchors {
		raw := a.Value
		if raw == "" {
			continue
		}

		if processValue != nil {
			v, ok := processValue(raw)
			if !ok {
				continue
			}
			raw = v
		}
		if strip {
			raw = strings.TrimSpace(raw)
		}
		if raw == "" {
			continue
		}

		resolved, err := urlx.Resolve(baseURL, raw, docEncoding)
		if err != nil {
			continue
		}

		out = append(out, Resolved{
			URL:      resolved.URL,
			Fragment: resolved.Fragment,
			Text:     a.Text,
			Nofollow: a.Nofollow,
		})
	}
	return out
}
