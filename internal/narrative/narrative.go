// Package narrative excerpts the Management's Discussion and Analysis
// section from a filing's primary document.
package narrative

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mkenealy/secreports/internal/markup"
)

// startPattern tolerates the apostrophe variants that show up in filings:
// a literal ', a typographic ’, or an HTML entity that survived decoding.
var startPattern = regexp.MustCompile(`(?i)management.{1,5}s discussion and analysis`)

// stopPattern matches the headings that conventionally follow MD&A in a
// periodic report.
var stopPattern = regexp.MustCompile(`(?i)quantitative and qualitative disclosures about market risk|financial statements and supplementary data`)

// Extract returns the MD&A section as plain text, paragraphs separated by a
// blank line. The start heading is the first text node matching the section
// phrase that is not inside a hyperlink, which skips table-of-contents
// entries linking to the section. The walk stops just before the first h1-h4
// heading matching the stop phrases, or at document end. An empty return
// means the section was not found or contained no text.
func Extract(doc *goquery.Document) string {
	root := doc.Get(0)
	anchor := findAnchor(root)
	if anchor == nil {
		return ""
	}

	var b strings.Builder
	seen := false
	stopped := false
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if stopped {
			return
		}
		if n == anchor {
			seen = true
		} else if seen && n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h1", "h2", "h3", "h4":
				text := visibleText(n)
				if stopPattern.MatchString(text) {
					stopped = true
					return
				}
				appendBlock(&b, text)
			case "p", "div":
				appendBlock(&b, visibleText(n))
			}
		}
		for c := n.FirstChild; c != nil && !stopped; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return b.String()
}

// findAnchor returns the nearest containing element of the first eligible
// occurrence of the start phrase.
func findAnchor(root *html.Node) *html.Node {
	var anchor *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if anchor != nil {
			return
		}
		if n.Type == html.TextNode && startPattern.MatchString(n.Data) && !insideLink(n) {
			anchor = n.Parent
			return
		}
		for c := n.FirstChild; c != nil && anchor == nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return anchor
}

func insideLink(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && strings.EqualFold(p.Data, "a") {
			return true
		}
	}
	return false
}

func appendBlock(b *strings.Builder, text string) {
	if text == "" {
		return
	}
	b.WriteString(text)
	b.WriteString("\n\n")
}

// visibleText concatenates the text nodes under n with whitespace runs
// collapsed to single spaces.
func visibleText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return markup.CollapseSpaces(b.String())
}
