package main

import "testing"

func TestIntensity(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
		ok   bool
	}{
		{0, 0, true},
		{15, 15, true},
		{16, 0, false},
		{256, 0, false},
		{-5, 0, false},
	}
	for _, test := range tests {
		got, err := intensity(test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("intensity(%d): expected %d ok=%t, got %d %v", test.in, test.want, test.ok, got, err)
		}
	}
}
