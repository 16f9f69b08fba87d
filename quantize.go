package base16

import "math"

// Conventional xterm RGB values of the sixteen basic terminal colors.
var ansi16 = [16]Color{
	{0x00, 0x00, 0x00}, // black
	{0x80, 0x00, 0x00}, // red
	{0x00, 0x80, 0x00}, // green
	{0x80, 0x80, 0x00}, // yellow
	{0x00, 0x00, 0x80}, // blue
	{0x80, 0x00, 0x80}, // magenta
	{0x00, 0x80, 0x80}, // cyan
	{0xc0, 0xc0, 0xc0}, // white
	{0x80, 0x80, 0x80}, // bright black
	{0xff, 0x00, 0x00}, // bright red
	{0x00, 0xff, 0x00}, // bright green
	{0xff, 0xff, 0x00}, // bright yellow
	{0x00, 0x00, 0xff}, // bright blue
	{0xff, 0x00, 0xff}, // bright magenta
	{0x00, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

// ANSI256 maps the color onto the xterm 256-color palette. The cube mapping
// follows tmux's colour.c: xterm provides a 6x6x6 color cube (16 to 231) and
// 24 greys (232 to 255), and the cube levels are not evenly spread (0x00,
// 0x5f, 0x87, 0xaf, 0xd7, 0xff). The nearer of the cube candidate and the
// grey candidate wins, measured in HSLuv space.
func (c Color) ANSI256() uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)

	q2c := [6]int{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	qr, qg, qb := to6Cube(r), to6Cube(g), to6Cube(b)
	cr, cg, cb := q2c[qr], q2c[qg], q2c[qb]

	ci := 36*qr + 6*qg + qb
	if cr == r && cg == g && cb == b {
		return uint8(16 + ci)
	}

	// Closest grey by channel average. Greys run 8, 18, ... 238.
	greyAvg := (r + g + b) / 3
	greyIdx := 23
	if greyAvg <= 238 {
		greyIdx = (greyAvg - 3) / 10
	}
	grey := 8 + 10*greyIdx

	in := c.colorful()
	cube := Color{uint8(cr), uint8(cg), uint8(cb)}.colorful()
	mono := Color{uint8(grey), uint8(grey), uint8(grey)}.colorful()
	if in.DistanceHSLuv(cube) <= in.DistanceHSLuv(mono) {
		return uint8(16 + ci)
	}
	return uint8(232 + greyIdx)
}

// ANSI16 maps the color onto the sixteen basic terminal colors, picking the
// perceptually nearest candidate in HSLuv space.
func (c Color) ANSI16() uint8 {
	in := c.colorful()
	best := 0
	bestDist := math.MaxFloat64
	for i, candidate := range ansi16 {
		if d := in.DistanceHSLuv(candidate.colorful()); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

func to6Cube(v int) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v - 35) / 40
}
