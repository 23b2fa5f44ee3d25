package main

import "testing"

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"sys", "Sys"},
		{"parola sys-fixed", "ParolaSysFixed"},
		{"5x7", "F5x7"},
		{"", "Font"},
		{"--", "Font"},
		{"Big_Font", "BigFont"},
	}
	for _, test := range tests {
		if got := identifier(test.name); got != test.want {
			t.Errorf("identifier(%q): expected %q, got %q", test.name, test.want, got)
		}
	}
}
