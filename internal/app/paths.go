package app

import (
	"fmt"
	"path/filepath"
	"strings"
)

// safeName strips the characters that are unsafe in filenames on common
// filesystems and replaces spaces with underscores, so company titles like
// "APPLE INC." map to stable directory and file names.
func safeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '\\', '/', '*', '?', ':', '"', '<', '>', '|':
			// dropped
		case ' ':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// artifactPaths returns the narrative and workbook paths for one filing
// under the company directory.
func artifactPaths(companyDir, company, form, date string) (narrativePath, workbookPath string) {
	base := filepath.Join(companyDir, fmt.Sprintf("%s_%s_%s", safeName(company), safeName(form), date))
	return base + "_MDA.txt", base + "_Tables.xlsx"
}
