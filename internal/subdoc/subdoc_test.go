package subdoc

import (
	"strings"
	"testing"
)

func wrap(typeLine, body string) string {
	return "<DOCUMENT>\n<TYPE>" + typeLine + "\n<SEQUENCE>1\n<TEXT>\n" + body + "\n</TEXT>\n</DOCUMENT>\n"
}

func TestMain_PicksLongestMatchingRegion(t *testing.T) {
	short := wrap("10-K", strings.Repeat("a", 500))
	long := wrap("10-K/A", strings.Repeat("b", 1200))
	blob := short + long

	doc, ok := Main(blob, "10-K")
	if !ok {
		t.Fatalf("expected a match")
	}
	if doc.Type != "10-K/A" {
		t.Fatalf("expected the longer region's type, got %q", doc.Type)
	}
	if !strings.Contains(doc.Body, strings.Repeat("b", 1200)) {
		t.Fatalf("expected the longer region's body")
	}
}

func TestMain_TieKeepsFirstRegion(t *testing.T) {
	body := strings.Repeat("x", 100)
	blob := wrap("10-Q", "first"+body) + wrap("10-Q", "later"+body)

	doc, ok := Main(blob, "10-Q")
	if !ok {
		t.Fatalf("expected a match")
	}
	if !strings.Contains(doc.Body, "first") {
		t.Fatalf("tie should keep the first region, got %q", doc.Body[:40])
	}
}

func TestMain_NoMatchingType(t *testing.T) {
	blob := wrap("EX-99.1", "exhibit body") + wrap("GRAPHIC", "image bytes")
	if _, ok := Main(blob, "10-K"); ok {
		t.Fatalf("expected no match")
	}
}

func TestMain_TypeMatchIsSubstringAndCaseSensitive(t *testing.T) {
	blob := wrap("10-k", "lowercase declared type")
	if _, ok := Main(blob, "10-K"); ok {
		t.Fatalf("declared type comparison must be case-sensitive")
	}
}

func TestMain_RegionWithoutTypeIsNotACandidate(t *testing.T) {
	noType := "<DOCUMENT>\n<SEQUENCE>1\n" + strings.Repeat("z", 2000) + "\n</DOCUMENT>\n"
	blob := noType + wrap("10-K", "small but declared")

	doc, ok := Main(blob, "10-K")
	if !ok {
		t.Fatalf("expected the declared region to win")
	}
	if !strings.Contains(doc.Body, "small but declared") {
		t.Fatalf("undeclared region must not be selected")
	}
}

func TestMain_MismatchedMarkersIsNotFound(t *testing.T) {
	blob := "<DOCUMENT>\n<TYPE>10-K\nbody without end marker\n" + wrap("10-K", "complete region")
	if _, ok := Main(blob, "10-K"); ok {
		t.Fatalf("ambiguous marker pairing must surface as not found")
	}
}

func TestMain_EmptyBlob(t *testing.T) {
	if _, ok := Main("", "10-K"); ok {
		t.Fatalf("expected not found on empty input")
	}
}
