// Package urlx adapts github.com/nlnwa/whatwg-url to the narrow
// resolve/serialize/canonicalize surface the extraction engine needs.
// Every direct call into that library lives in this one file so the
// rest of the pipeline only ever sees plain strings.
package urlx

import (
	"fmt"
	"net/url"
	"strings"

	whatwgurl "github.com/nlnwa/whatwg-url/url"
	"golang.org/x/text/encoding/htmlindex"
)

// parser is stateless and safe for concurrent use; one instance is
// shared across every Resolve/Canonicalize call made by every
// LinkExtractor in the process.
var parser = whatwgurl.NewParser()

// Resolved is an absolute URL split into its fragment-free form and the
// fragment that followed '#', if any.
type Resolved struct {
	URL      string
	Fragment string
}

// Resolve resolves ref against base following RFC 3986 reference
// resolution (net/url's ResolveReference), then re-parses
// and re-serializes the result through the WHATWG URL parser to obtain
// spec-correct, idempotent percent-encoding and a clean fragment split.
//
// docEncoding is the IANA charset label the source document was decoded
// under (for example "iso8859-15"), or "" for UTF-8/unknown. The path,
// host, and every other component are always percent-encoded as UTF-8,
// but the query string is re-encoded into docEncoding's bytes before
// percent-encoding, matching how a browser submits a form on a non-UTF-8
// page: a query value built from non-ASCII source text carries the
// document's bytes, not UTF-8's.
//
// It returns an error for anything either parser rejects — a malformed
// host, an invalid port, an unbalanced IPv6 literal — so the caller can
// silently drop the link, per the resolver's forgiving contract.
func Resolve(base, ref, docEncoding string) (*Resolved, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}

	combined := baseURL.ResolveReference(refURL)

	parsed, err := parser.Parse(combined.String())
	if err != nil {
		return nil, err
	}

	fragment := strings.TrimPrefix(parsed.Hash(), "#")
	parsed.SetHash("")

	if combined.RawQuery != "" {
		if q, ok := encodeQuery(combined.RawQuery, docEncoding); ok {
			parsed.SetSearch(q)
		}
	}

	return &Resolved{URL: parsed.Href(false), Fragment: fragment}, nil
}

// encodeQuery re-encodes a query string, as written in the reference,
// into charset's bytes and percent-encodes the result, leaving the
// query's ASCII structural characters ('=', '&', etc.) and any existing
// %XX escapes untouched. It reports false
// when charset is empty or unrecognized, in which case the caller keeps
// the WHATWG parser's own (UTF-8) encoding of the query.
func encodeQuery(rawQuery, charset string) (string, bool) {
	if charset == "" {
		return "", false
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", false
	}
	encoded, err := enc.NewEncoder().String(rawQuery)
	if err != nil {
		return "", false
	}
	return percentEncodeQuery(encoded), true
}

// queryUnreserved are the ASCII bytes a query string may carry literally:
// RFC 3986's unreserved set plus the query/sub-delims punctuation used to
// separate keys and values, and '%' so already-encoded sequences are kept.
const queryUnreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
	"-_.~!$&'()*+,;=:@/?%"

func percentEncodeQuery(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x80 && strings.IndexByte(queryUnreserved, b) >= 0 {
			sb.WriteByte(b)
			continue
		}
		fmt.Fprintf(&sb, "%%%02X", b)
	}
	return sb.String()
}

// Canonicalize re-serializes rawURL with its query parameters sorted
// by key and its fragment dropped. The sort is stable and compares keys
// only: parameters that share a key keep their original relative order.
// The query is re-serialized by the sort; percent-escapes elsewhere in
// the URL keep the hex-digit case they arrived with. It is idempotent:
// canonicalizing an already-canonical URL returns it unchanged.
func Canonicalize(rawURL string) (string, error) {
	parsed, err := parser.Parse(rawURL)
	if err != nil {
		return "", err
	}
	parsed.SetHash("")
	parsed.SearchParams().Sort()
	return parsed.Href(false), nil
}
