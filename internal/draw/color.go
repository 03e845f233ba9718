package draw

// Color is a floating point colour. Channels are nominally in [0,1] but are
// passed to the backend unclamped.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// RGB returns an opaque colour.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// White is opaque white.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Opaque returns c with alpha forced to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Translucent returns the fill colour used under solid outlines: half
// intensity at half alpha.
func (c Color) Translucent() Color {
	return Color{R: 0.5 * c.R, G: 0.5 * c.G, B: 0.5 * c.B, A: 0.5}
}

// ParticleColor is the 8-bit-per-channel colour a particle system stores
// per particle.
type ParticleColor struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Color normalises the channels to [0,1].
func (p ParticleColor) Color() Color {
	return Color{
		R: float32(p.R) / 255,
		G: float32(p.G) / 255,
		B: float32(p.B) / 255,
		A: float32(p.A) / 255,
	}
}
