package testbed

import "github.com/Garsondee/debugdraw/internal/draw"

const (
	zoomMin = 0.25
	zoomMax = 8.0
)

// Camera is the view onto the scene: a centre in world units, the visible
// height at zoom 1 and a zoom factor (>1 is closer).
type Camera struct {
	CenterX    float64
	CenterY    float64
	ViewHeight float64
	Zoom       float64
}

// NewCamera centres a camera on the scene bounds.
func NewCamera(bounds draw.AABB, viewHeight float64) Camera {
	return Camera{
		CenterX:    (bounds.Lower[0] + bounds.Upper[0]) / 2,
		CenterY:    (bounds.Lower[1] + bounds.Upper[1]) / 2,
		ViewHeight: viewHeight,
		Zoom:       1,
	}
}

// Bounds returns the visible world rectangle for a screen of the given
// size, keeping pixels square. A degenerate screen is treated as square.
func (c Camera) Bounds(screenW, screenH int) (left, right, bottom, top float64) {
	aspect := 1.0
	if screenW > 0 && screenH > 0 {
		aspect = float64(screenW) / float64(screenH)
	}
	halfH := c.ViewHeight / 2 / c.Zoom
	halfW := halfH * aspect
	return c.CenterX - halfW, c.CenterX + halfW, c.CenterY - halfH, c.CenterY + halfH
}

// Apply installs the camera's view as the draw projection.
func (c Camera) Apply(dd *draw.DebugDraw, screenW, screenH int) {
	l, r, b, t := c.Bounds(screenW, screenH)
	dd.SetProjection(screenW, screenH, l, r, b, t)
}

// Pan moves the centre by a distance given in screen-relative units: one
// unit is the visible height, so panning feels the same at every zoom.
func (c *Camera) Pan(dx, dy float64) {
	scale := c.ViewHeight / c.Zoom
	c.CenterX += dx * scale
	c.CenterY += dy * scale
}

// ZoomBy multiplies the zoom, clamped to [zoomMin, zoomMax].
func (c *Camera) ZoomBy(f float64) {
	c.Zoom *= f
	if c.Zoom < zoomMin {
		c.Zoom = zoomMin
	}
	if c.Zoom > zoomMax {
		c.Zoom = zoomMax
	}
}

// ScreenToWorld maps a pixel position back into the scene.
func (c Camera) ScreenToWorld(x, y float64, screenW, screenH int) draw.Vec2 {
	l, r, b, t := c.Bounds(screenW, screenH)
	return draw.Vec2{
		l + x/float64(screenW)*(r-l),
		t - y/float64(screenH)*(t-b),
	}
}
