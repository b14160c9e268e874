package scene

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the colour as normalized GL components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Background RGB
	Balls      []RGB
	Title      RGB
	Text       RGB
	Hits       RGB
	Misses     RGB
	Win        RGB
	Lose       RGB
}{
	Background: RGB{R: 64, G: 64, B: 64}, // Android Color.DKGRAY
	Balls: []RGB{
		{R: 0, G: 255, B: 0},
		{R: 255, G: 196, B: 0},
		{R: 0, G: 200, B: 255},
		{R: 255, G: 80, B: 160},
		{R: 190, G: 120, B: 255},
		{R: 255, G: 120, B: 60},
	},
	Title:  RGB{R: 100, G: 255, B: 100},
	Text:   RGB{R: 255, G: 255, B: 255},
	Hits:   RGB{R: 100, G: 255, B: 100},
	Misses: RGB{R: 255, G: 80, B: 80},
	Win:    RGB{R: 255, G: 255, B: 100},
	Lose:   RGB{R: 255, G: 80, B: 80},
}

// BallColor returns the colour for ball i; colours repeat past the palette.
func BallColor(i int) RGB {
	return Palette.Balls[i%len(Palette.Balls)]
}
