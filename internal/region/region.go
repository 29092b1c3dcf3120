// Package region narrows a decoded document to the subtrees the
// extractor should walk, per the configured XPath and CSS restrictions.
package region

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"

	"github.com/tariktz/linkxtract/internal/decode"
)

// Node is the root of one region: exactly one of HTML or XML is
// non-nil, mirroring which tree the owning Document was parsed into.
type Node struct {
	HTML *html.Node
	XML  *xmlquery.Node
}

// Region is one subtree the walker should traverse.
type Region struct {
	Root Node
}

// Select returns the ordered list of regions to walk: the roots matched
// by xpaths, followed by the roots matched by css, in that order — or
// the whole document as a single region when both lists are empty. A
// selector that matches nothing contributes zero regions; it is never
// an error.
func Select(doc *decode.Document, xpaths, css []string) []Region {
	if len(xpaths) == 0 && len(css) == 0 {
		return wholeDocument(doc)
	}

	regions := make([]Region, 0, len(xpaths)+len(css))
	for _, expr := range xpaths {
		regions = append(regions, xpathRegions(doc, expr)...)
	}
	for _, sel := range css {
		regions = append(regions, cssRegions(doc, sel)...)
	}
	return regions
}

func wholeDocument(doc *decode.Document) []Region {
	if doc.IsXML() {
		if doc.XMLRoot == nil {
			return nil
		}
		return []Region{{Root: Node{XML: doc.XMLRoot}}}
	}
	if doc.HTMLRoot == nil {
		return nil
	}
	return []Region{{Root: Node{HTML: doc.HTMLRoot}}}
}

func xpathRegions(doc *decode.Document, expr string) []Region {
	if doc.IsXML() {
		if doc.XMLRoot == nil {
			return nil
		}
		nodes, err := xmlquery.QueryAll(doc.XMLRoot, expr)
		if err != nil {
			return nil
		}
		out := make([]Region, 0, len(nodes))
		for _, n := range nodes {
			out = append(out, Region{Root: Node{XML: n}})
		}
		return out
	}

	if doc.HTMLRoot == nil {
		return nil
	}
	nodes, err := htmlquery.QueryAll(doc.HTMLRoot, expr)
	if err != nil {
		return nil
	}
	out := make([]Region, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Region{Root: Node{HTML: n}})
	}
	return out
}

// cssRegions matches sel against the HTML tree only, the same way the
// teacher's canonical/lastmod extraction used goquery for HTML
// traversal. goquery.Find panics on an invalid selector (it compiles
// via cascadia.MustCompile internally), so sel is validated with
// cascadia.Compile first — an invalid selector contributes zero
// regions rather than erroring, matching every other selector kind. An
// XML document is a distinct node type (antchfx/xmlquery.Node) goquery
// cannot walk, so a restrict_css entry on an XML response also
// contributes zero regions.
func cssRegions(doc *decode.Document, sel string) []Region {
	if doc.IsXML() || doc.HTMLRoot == nil {
		return nil
	}
	if _, err := cascadia.Compile(sel); err != nil {
		return nil
	}

	gdoc := goquery.NewDocumentFromNode(doc.HTMLRoot)
	selection := gdoc.Find(sel)
	out := make([]Region, 0, selection.Length())
	selection.Each(func(_ int, s *goquery.Selection) {
		if s.Length() == 0 {
			return
		}
		out = append(out, Region{Root: Node{HTML: s.Get(0)}})
	})
	return out
}
