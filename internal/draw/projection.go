package draw

import "github.com/go-gl/mathgl/mgl64"

// PointSize is the base marker size per world unit of visible height.
const PointSize = 0.05 / 40.0

// Projection maps a rectangle of simulation space onto the screen.
// Simulation y points up, screen y points down.
type Projection struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64

	ScreenWidth  int
	ScreenHeight int

	// PointScale is PointSize × (Top − Bottom). Point markers are sized in
	// world units scaled by it, so they shrink at a controlled rate as the
	// view zooms out.
	PointScale float64

	toScreen mgl64.Mat4
}

// NewProjection builds the orthographic view of [left,right]×[bottom,top]
// on a screenWidth×screenHeight pixel target. Bounds are not validated.
func NewProjection(screenWidth, screenHeight int, left, right, bottom, top float64) Projection {
	w := float64(screenWidth)
	h := float64(screenHeight)
	// Clip space [-1,1]² to pixels, origin top-left.
	viewport := mgl64.Translate3D(w/2, h/2, 0).Mul4(mgl64.Scale3D(w/2, -h/2, 1))
	return Projection{
		Left:         left,
		Right:        right,
		Bottom:       bottom,
		Top:          top,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		PointScale:   PointSize * (top - bottom),
		toScreen:     viewport.Mul4(mgl64.Ortho2D(left, right, bottom, top)),
	}
}

// ToScreen maps a simulation-space point to pixel coordinates.
func (p Projection) ToScreen(v Vec2) (float32, float32) {
	s := p.toScreen.Mul4x1(mgl64.Vec4{v[0], v[1], 0, 1})
	return float32(s[0]), float32(s[1])
}

// Matrix returns the combined world-to-pixel matrix.
func (p Projection) Matrix() mgl64.Mat4 {
	return p.toScreen
}

// Height is the visible simulation-space height.
func (p Projection) Height() float64 {
	return p.Top - p.Bottom
}
