package edgar

import (
	"testing"
)

func TestFilingCache_RoundTrip(t *testing.T) {
	c := &FilingCache{Dir: t.TempDir()}
	body := []byte("full text submission")

	if _, err := c.Load("0000320193-24-000123"); err == nil {
		t.Fatalf("expected miss before save")
	}
	if err := c.Save("0000320193-24-000123", body); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := c.Load("0000320193-24-000123")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(body) {
		t.Fatalf("unexpected cached body %q", got)
	}
}

func TestFilingCache_RejectsPathTraversal(t *testing.T) {
	c := &FilingCache{Dir: t.TempDir()}
	if err := c.Save("../escape", []byte("x")); err == nil {
		t.Fatalf("expected traversal-looking key to be rejected")
	}
	if _, err := c.Load(""); err == nil {
		t.Fatalf("expected empty key to be rejected")
	}
}

func TestFilingCache_UnconfiguredDir(t *testing.T) {
	var c *FilingCache
	if _, err := c.Load("0000000000-00-000000"); err == nil {
		t.Fatalf("expected error for nil cache")
	}
	c = &FilingCache{}
	if err := c.Save("0000000000-00-000000", nil); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}
