// Package markup flattens presentational and namespaced tags out of filing
// HTML so that text matching and table parsing see plain structure.
package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// StripNamespaced replaces every element whose tag name contains a colon with
// its own text content. Modern filings decorate numbers and phrases with
// inline XBRL elements (ix:nonFraction and friends); the annotations carry no
// layout meaning and confuse downstream matchers. The pass is best-effort and
// idempotent: the replacement text nodes have no tag to match again.
func StripNamespaced(sel *goquery.Selection) {
	sel.Find("*").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if !strings.Contains(n.Data, ":") {
			return
		}
		parent := n.Parent
		if parent == nil {
			// Already detached by an enclosing replacement.
			return
		}
		text := &html.Node{Type: html.TextNode, Data: s.Text()}
		parent.InsertBefore(text, n)
		parent.RemoveChild(n)
	})
}

// UnwrapContainers removes generic text-flow wrappers (div, span, p, font) in
// place, promoting their children to the parent in order. Filings wrap table
// cell contents in arbitrarily deep stacks of these; once unwrapped, a cell's
// text sits directly under the cell.
func UnwrapContainers(sel *goquery.Selection) {
	sel.Find("div, span, p, font").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		parent := n.Parent
		if parent == nil {
			return
		}
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			n.RemoveChild(c)
			parent.InsertBefore(c, n)
			c = next
		}
		parent.RemoveChild(n)
	})
}

// NormalizeTable returns a normalized private copy of one table selection.
// The caller's tree is left untouched so sibling tables each see the
// original markup.
func NormalizeTable(table *goquery.Selection) *goquery.Selection {
	clone := table.Clone()
	StripNamespaced(clone)
	UnwrapContainers(clone)
	return clone
}
