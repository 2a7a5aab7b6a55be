package colors

// BGR is an 8-bit pixel in the blue-green-red order used by 24-bit bitmaps.
type BGR struct {
	B, G, R uint8
}

// RGBA implements color.Color. BGR pixels are always opaque.
func (c BGR) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Linear converts back to a [0,1] light-space color.
func (c BGR) Linear() Linear {
	return Linear{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
