package markup

import "testing"

func TestCollapseSpaces(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  a   b  ", "a b"},
		{"a\n\tb\r\nc", "a b c"},
		{"  ", ""},
		{"x y", "x y"},
		{"", ""},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := CollapseSpaces(tc.in); got != tc.want {
			t.Fatalf("CollapseSpaces(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
