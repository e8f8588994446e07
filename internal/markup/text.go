package markup

import "strings"

// CollapseSpaces collapses whitespace runs, including non-breaking spaces,
// to single spaces, with no leading or trailing space. A padding-only
// string collapses to empty.
func CollapseSpaces(s string) string {
	var b strings.Builder
	pendingSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ' ' {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
