package testbed

import (
	"testing"

	"github.com/Garsondee/debugdraw/internal/draw"
	"github.com/stretchr/testify/assert"
)

var testBounds = draw.AABB{Lower: draw.Vec2{-20, 0}, Upper: draw.Vec2{20, 30}}

func TestNewCamera_CentresOnBounds(t *testing.T) {
	c := NewCamera(testBounds, 30)
	assert.Equal(t, 0.0, c.CenterX)
	assert.Equal(t, 15.0, c.CenterY)
	assert.Equal(t, 1.0, c.Zoom)
}

func TestCamera_BoundsKeepPixelsSquare(t *testing.T) {
	c := NewCamera(testBounds, 30)
	l, r, b, top := c.Bounds(1600, 800)

	assert.InDelta(t, 30, top-b, 1e-9)
	assert.InDelta(t, 60, r-l, 1e-9)
}

func TestCamera_ZoomBy_Clamped(t *testing.T) {
	c := NewCamera(testBounds, 30)
	c.ZoomBy(100)
	assert.Equal(t, zoomMax, c.Zoom)
	c.ZoomBy(1e-6)
	assert.Equal(t, zoomMin, c.Zoom)
}

func TestCamera_PanScalesWithZoom(t *testing.T) {
	c := NewCamera(testBounds, 30)
	c.Pan(0.1, 0)
	assert.InDelta(t, 3, c.CenterX, 1e-9)

	c.ZoomBy(2)
	c.Pan(0.1, 0)
	assert.InDelta(t, 4.5, c.CenterX, 1e-9)
}

func TestCamera_ScreenToWorldInvertsProjection(t *testing.T) {
	c := NewCamera(testBounds, 30)
	dd := draw.NewDebugDraw(draw.WithTextureFunc(draw.HeadlessTextures))
	c.Apply(dd, 1280, 720)

	world := draw.Vec2{3.5, 7.25}
	x, y := dd.Projection().ToScreen(world)
	back := c.ScreenToWorld(float64(x), float64(y), 1280, 720)

	assert.InDelta(t, world[0], back[0], 1e-4)
	assert.InDelta(t, world[1], back[1], 1e-4)
}

func TestCamera_BoundsDegenerateScreen(t *testing.T) {
	c := NewCamera(testBounds, 30)
	for _, size := range [][2]int{{800, 0}, {0, 600}, {0, 0}} {
		l, r, b, top := c.Bounds(size[0], size[1])
		assert.InDelta(t, 30, r-l, 1e-9, "%v", size)
		assert.InDelta(t, 30, top-b, 1e-9, "%v", size)
	}
}
