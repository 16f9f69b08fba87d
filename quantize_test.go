package base16

import "testing"

func TestANSI256(t *testing.T) {
	cases := []struct {
		hex  string
		want uint8
	}{
		{"#000000", 16},  // cube origin
		{"#ff0000", 196}, // pure red sits on the cube
		{"#5f0000", 52},  // first red cube level
		{"#ffffff", 231}, // cube top corner
		{"#808080", 244}, // exact grey ramp entry
		{"#080808", 232}, // darkest grey
	}
	for _, tc := range cases {
		c, err := ParseColor(tc.hex)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.hex, err)
		}
		if got := c.ANSI256(); got != tc.want {
			t.Fatalf("ANSI256(%s) = %d, want %d", tc.hex, got, tc.want)
		}
	}
}

func TestANSI16(t *testing.T) {
	cases := []struct {
		hex  string
		want uint8
	}{
		{"#000000", 0},
		{"#c0c0c0", 7},
		{"#808080", 8},
		{"#ff0000", 9},
		{"#00ff00", 10},
		{"#0000ff", 12},
		{"#ffffff", 15},
	}
	for _, tc := range cases {
		c, err := ParseColor(tc.hex)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.hex, err)
		}
		if got := c.ANSI16(); got != tc.want {
			t.Fatalf("ANSI16(%s) = %d, want %d", tc.hex, got, tc.want)
		}
	}
}
