// Package subdoc locates embedded documents inside a full-text EDGAR
// submission. A submission concatenates every exhibit between literal
// <DOCUMENT> and </DOCUMENT> markers, with a <TYPE> declaration line near the
// top of each region. The framing is line-oriented SGML-ish text, not HTML,
// so it is scanned literally rather than parsed.
package subdoc

import (
	"regexp"
	"strings"
)

const (
	startMarker = "<DOCUMENT>"
	endMarker   = "</DOCUMENT>"
	typePrefix  = "<TYPE>"
)

var typePattern = regexp.MustCompile(`<TYPE>[^\n]+`)

// Document is one embedded region of a submission.
type Document struct {
	// Type is the declared value of the region's <TYPE> line, e.g. "10-K".
	Type string
	// Body is the region's raw content between the markers.
	Body string
}

// Main returns the longest embedded document whose declared type contains
// formType as a substring. The i-th start marker pairs with the i-th end
// marker; when the marker counts disagree or any pair is inverted, the blob
// is ambiguous and Main reports not found rather than guessing at an
// alignment. ok is false when no region qualifies.
func Main(fullText, formType string) (doc Document, ok bool) {
	starts := markerOffsets(fullText, startMarker)
	ends := markerOffsets(fullText, endMarker)
	if len(starts) != len(ends) {
		return Document{}, false
	}
	for i := range starts {
		begin := starts[i] + len(startMarker)
		end := ends[i]
		if begin > end {
			return Document{}, false
		}
		body := fullText[begin:end]
		decl := typePattern.FindString(body)
		if decl == "" {
			continue
		}
		declared := strings.TrimSpace(strings.TrimPrefix(decl, typePrefix))
		if !strings.Contains(declared, formType) {
			continue
		}
		if len(body) > len(doc.Body) || !ok {
			doc = Document{Type: declared, Body: body}
			ok = true
		}
	}
	return doc, ok
}

func markerOffsets(s, marker string) []int {
	var offsets []int
	for from := 0; ; {
		i := strings.Index(s[from:], marker)
		if i < 0 {
			return offsets
		}
		offsets = append(offsets, from+i)
		from += i + len(marker)
	}
}
