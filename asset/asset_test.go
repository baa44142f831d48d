package asset

import "testing"

func TestIdentString(t *testing.T) {
	cases := []struct {
		name string
		id   Ident
		want string
	}{
		{"no query", Ident{Path: "a.js"}, "a.js"},
		{"with query", Ident{Path: "a.js", Query: "v=2"}, "a.js?v=2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.id.String(); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestIdentEquality(t *testing.T) {
	a := Ident{Path: "a.js", Query: "x"}
	b := Ident{Path: "a.js", Query: "x"}
	c := Ident{Path: "a.js", Query: "y"}
	if a != b {
		t.Errorf("expected equal idents to compare equal")
	}
	if a == c {
		t.Errorf("expected different query idents to compare unequal")
	}
}
