package colors

// Linear is a light-space RGB color with float64 components.
// Components are unbounded while lighting terms are accumulated;
// they are clamped only when converted to BGR.
type Linear struct {
	R, G, B float64
}

func New(r, g, b float64) Linear {
	return Linear{R: r, G: g, B: b}
}

func White() Linear {
	return Linear{R: 1, G: 1, B: 1}
}

func Black() Linear {
	return Linear{}
}

// Add returns c + o (component-wise).
func (c Linear) Add(o Linear) Linear {
	return Linear{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul returns c * o (component-wise).
func (c Linear) Mul(o Linear) Linear {
	return Linear{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale returns c * s (scalar).
func (c Linear) Scale(s float64) Linear {
	return Linear{c.R * s, c.G * s, c.B * s}
}

// ClampMax caps each component at max. Values below max are left alone.
func (c Linear) ClampMax(max float64) Linear {
	return Linear{
		R: clampMax(c.R, max),
		G: clampMax(c.G, max),
		B: clampMax(c.B, max),
	}
}

// Clamp01 clamps each component into [0,1].
func (c Linear) Clamp01() Linear {
	return Linear{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

// ToBGR converts to an 8-bit pixel, truncating 255*clamp01(x) toward zero.
func (c Linear) ToBGR() BGR {
	return BGR{
		B: to8bit(c.B),
		G: to8bit(c.G),
		R: to8bit(c.R),
	}
}

// --- helpers ---

func clampMax(x, max float64) float64 {
	if x > max {
		return max
	}
	return x
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8bit(x float64) uint8 {
	// NaN fails every comparison in clamp01, so catch it here.
	if x != x {
		return 0
	}
	return uint8(255.0 * clamp01(x))
}
