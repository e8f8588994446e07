package app

import (
	"path/filepath"
	"testing"
)

func TestSafeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Apple Inc.", "Apple_Inc."},
		{`A/B\C:D*E?F"G<H>I|J`, "ABCDEFGHIJ"},
		{"MICROSOFT CORP", "MICROSOFT_CORP"},
		{"10-K/A", "10-KA"},
	}
	for _, tc := range cases {
		if got := safeName(tc.in); got != tc.want {
			t.Fatalf("safeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestArtifactPaths(t *testing.T) {
	narrativePath, workbookPath := artifactPaths(filepath.Join("out", "Apple_Inc."), "Apple Inc.", "10-K", "2024-11-01")
	wantNarr := filepath.Join("out", "Apple_Inc.", "Apple_Inc._10-K_2024-11-01_MDA.txt")
	wantBook := filepath.Join("out", "Apple_Inc.", "Apple_Inc._10-K_2024-11-01_Tables.xlsx")
	if narrativePath != wantNarr {
		t.Fatalf("narrative path %q, want %q", narrativePath, wantNarr)
	}
	if workbookPath != wantBook {
		t.Fatalf("workbook path %q, want %q", workbookPath, wantBook)
	}
}
