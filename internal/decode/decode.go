// Package decode turns a response's (body, declared encoding, source
// URL) into a traversable document tree and the effective base URL
// relative references in it resolve against.
package decode

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"

	"github.com/tariktz/linkxtract/internal/urlx"
)

// Document is the decoded, parsed form of a fetched response. Exactly
// one of HTMLRoot or XMLRoot is non-nil, unless parsing failed
// entirely, in which case both are nil and BaseURL falls back to the
// source URL.
type Document struct {
	HTMLRoot *html.Node
	XMLRoot  *xmlquery.Node
	BaseURL  string
	// Encoding is the IANA charset label the response body was decoded
	// under, or "" when no declared or sniffed charset could be used and
	// the body was taken as UTF-8. Query strings built
	// from the document's text are re-encoded in this charset when
	// links are resolved.
	Encoding string
}

// IsXML reports whether the document was parsed as XML/XHTML rather
// than permissive HTML.
func (d *Document) IsXML() bool { return d.XMLRoot != nil }

// Decode parses body under declaredEncoding and returns a traversable
// document tree plus its effective base URL. isXML selects the XML
// parser (for XHTML-as-XML responses); otherwise body is parsed as
// permissive HTML. Decode never fails: unparseable input yields an
// empty Document, not an error.
func Decode(body []byte, declaredEncoding, sourceURL string, isXML bool) *Document {
	text, effectiveEncoding := decodeBytes(body, declaredEncoding)

	if isXML {
		root, err := xmlquery.Parse(strings.NewReader(text))
		if err != nil || root == nil {
			return &Document{BaseURL: sourceURL, Encoding: effectiveEncoding}
		}
		return &Document{
			XMLRoot:  root,
			BaseURL:  effectiveXMLBase(root, sourceURL, effectiveEncoding),
			Encoding: effectiveEncoding,
		}
	}

	root, err := htmlquery.Parse(strings.NewReader(text))
	if err != nil || root == nil {
		return &Document{BaseURL: sourceURL, Encoding: effectiveEncoding}
	}
	return &Document{
		HTMLRoot: root,
		BaseURL:  effectiveHTMLBase(root, sourceURL, effectiveEncoding),
		Encoding: effectiveEncoding,
	}
}

// effectiveHTMLBase resolves the document's effective base URL: the
// source URL, unless a <base href> element exists in the document, in
// which case only the first one counts.
func effectiveHTMLBase(root *html.Node, sourceURL, encoding string) string {
	base := htmlquery.FindOne(root, "//head/base")
	if base == nil {
		base = htmlquery.FindOne(root, "//base")
	}
	if base == nil {
		return sourceURL
	}
	href := strings.TrimSpace(htmlquery.SelectAttr(base, "href"))
	if href == "" {
		return sourceURL
	}
	resolved, err := urlx.Resolve(sourceURL, href, encoding)
	if err != nil {
		return sourceURL
	}
	return resolved.URL
}

func effectiveXMLBase(root *xmlquery.Node, sourceURL, encoding string) string {
	base := xmlquery.FindOne(root, "//base")
	if base == nil {
		return sourceURL
	}
	href := strings.TrimSpace(xmlquery.SelectAttr(base, "href"))
	if href == "" {
		return sourceURL
	}
	resolved, err := urlx.Resolve(sourceURL, href, encoding)
	if err != nil {
		return sourceURL
	}
	return resolved.URL
}
