// Package walk traverses a region's subtree and collects the raw
// anchors it contains: each matching element's attribute value, its
// anchor text, and the rel attribute's nofollow token.
package walk

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"

	"github.com/tariktz/linkxtract/internal/region"
)

// Anchor is one untouched link-bearing element found while walking a
// region, before URL resolution or filtering.
type Anchor struct {
	Tag      string
	Attr     string
	Value    string
	Text     string
	Nofollow bool
}

// DefaultTags and DefaultAttrs are the extractor's built-in tag/attr
// sets: anchors and image-map areas, read off their href.
var (
	DefaultTags  = []string{"a", "area"}
	DefaultAttrs = []string{"href"}
)

// Walk collects one Anchor per (element, attribute) pair within region
// r whose tag is in tags and whose attribute is in attrs and present
// with a non-empty value — so an element carrying two matched
// attributes yields two Anchors. Elements are visited in document
// order; results across regions are concatenated by the caller in the
// region list's order. An empty tags or attrs set is the caller's
// (config layer's) way of saying "extract nothing" and yields no
// anchors — Walk applies no defaulting of its own.
func Walk(r region.Region, tags, attrs []string) []Anchor {
	if len(tags) == 0 || len(attrs) == 0 {
		return nil
	}
	tagSet := toSet(tags)

	if r.Root.XML != nil {
		var out []Anchor
		walkXML(r.Root.XML, tagSet, attrs, &out)
		return out
	}
	if r.Root.HTML != nil {
		var out []Anchor
		walkHTML(r.Root.HTML, tagSet, attrs, &out)
		return out
	}
	return nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[strings.ToLower(it)] = true
	}
	return set
}

func walkHTML(n *html.Node, tagSet map[string]bool, attrs []string, out *[]Anchor) {
	if n.Type == html.ElementNode && tagSet[strings.ToLower(n.Data)] {
		*out = append(*out, anchorsFromHTML(n, attrs)...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, tagSet, attrs, out)
	}
}

func anchorsFromHTML(n *html.Node, attrs []string) []Anchor {
	values := make(map[string]string, len(n.Attr))
	var rel string
	for _, a := range n.Attr {
		key := strings.ToLower(a.Key)
		values[key] = a.Val
		if key == "rel" {
			rel = a.Val
		}
	}

	var out []Anchor
	for _, attrName := range attrs {
		value, present := values[strings.ToLower(attrName)]
		if !present || value == "" {
			continue
		}
		out = append(out, Anchor{
			Tag:      strings.ToLower(n.Data),
			Attr:     attrName,
			Value:    value,
			Text:     collectHTMLText(n),
			Nofollow: hasNofollowToken(rel),
		})
	}
	return out
}

func collectHTMLText(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.TrimSpace(sb.String())
}

func walkXML(n *xmlquery.Node, tagSet map[string]bool, attrs []string, out *[]Anchor) {
	if n.Type == xmlquery.ElementNode && tagSet[strings.ToLower(n.Data)] {
		*out = append(*out, anchorsFromXML(n, attrs)...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkXML(c, tagSet, attrs, out)
	}
}

func anchorsFromXML(n *xmlquery.Node, attrs []string) []Anchor {
	values := make(map[string]string, len(n.Attr))
	var rel string
	for _, a := range n.Attr {
		key := strings.ToLower(a.Name.Local)
		values[key] = a.Value
		if key == "rel" {
			rel = a.Value
		}
	}

	var out []Anchor
	for _, attrName := range attrs {
		value, present := values[strings.ToLower(attrName)]
		if !present || value == "" {
			continue
		}
		out = append(out, Anchor{
			Tag:      strings.ToLower(n.Data),
			Attr:     attrName,
			Value:    value,
			Text:     strings.TrimSpace(n.InnerText()),
			Nofollow: hasNofollowToken(rel),
		})
	}
	return out
}

// hasNofollowToken reports whether rel contains the "nofollow" token,
// matching on whitespace-separated tokens case-insensitively.
func hasNofollowToken(rel string) bool {
	for _, tok := range strings.Fields(rel) {
		if strings.EqualFold(tok, "nofollow") {
			return true
		}
	}
	return false
}
