// Package draw renders a physics simulation's debug view: shapes, frames,
// bounding boxes, particle clouds and text, in simulation coordinates.
package draw

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// circleSegments is the polygon resolution of every circle.
	circleSegments = 16
	// AxisScale is the length of the transform gizmo axes in world units.
	AxisScale = 0.4
)

var (
	screenTextColor = Color{R: 0.9, G: 0.6, B: 0.6, A: 1}
	worldTextColor  = Color{R: 0.5, G: 0.9, B: 0.5, A: 1}
	axisXColor      = RGB(1, 0, 0)
	axisYColor      = RGB(0, 1, 0)
)

// DebugDraw is the render context a simulation draws its state through.
// It owns the active projection, the draw flags and the lazily built
// particle sprite and font. A DebugDraw is not safe for concurrent use; it
// belongs to the goroutine running the game loop.
//
// Every operation takes its blend mode, texture and filter from a fresh
// options value, so no render state outlives the call.
type DebugDraw struct {
	target     Target
	proj       Projection
	flags      DrawFlags
	lineWidth  float32
	newTexture TextureFunc

	white  *ebiten.Image
	sprite *ebiten.Image
	fonts  *FontCache

	mesh Mesh
	pts  []point
}

// Option configures a DebugDraw.
type Option func(*DebugDraw)

// WithTextureFunc replaces the texture factory, e.g. with HeadlessTextures.
func WithTextureFunc(fn TextureFunc) Option {
	return func(dd *DebugDraw) { dd.newTexture = fn }
}

// WithLineWidth sets the stroke width in pixels.
func WithLineWidth(w float32) Option {
	return func(dd *DebugDraw) { dd.lineWidth = w }
}

// WithFont replaces the text face descriptor.
func WithFont(desc FontDescriptor) Option {
	return func(dd *DebugDraw) { dd.fonts = NewFontCache(desc) }
}

// WithTarget binds the initial target.
func WithTarget(t Target) Option {
	return func(dd *DebugDraw) { dd.target = t }
}

// NewDebugDraw creates a render context. Until SetProjection is called the
// point scale is PointSize and all geometry collapses to the origin.
func NewDebugDraw(opts ...Option) *DebugDraw {
	dd := &DebugDraw{
		proj:       Projection{PointScale: PointSize},
		flags:      ShapeBit,
		lineWidth:  1,
		newTexture: GPUTextures,
		fonts:      NewFontCache(DefaultFont),
	}
	for _, opt := range opts {
		opt(dd)
	}
	dd.mesh.flush = dd.flush
	return dd
}

// Bind sets the target subsequent calls draw onto. Calls made with no
// target are dropped.
func (dd *DebugDraw) Bind(t Target) {
	dd.target = t
}

// SetProjection replaces the view: the rectangle [left,right]×[bottom,top]
// of simulation space fills a screenWidth×screenHeight target.
func (dd *DebugDraw) SetProjection(screenWidth, screenHeight int, left, right, bottom, top float64) {
	dd.proj = NewProjection(screenWidth, screenHeight, left, right, bottom, top)
}

// Projection returns the active projection.
func (dd *DebugDraw) Projection() Projection {
	return dd.proj
}

// SetFlags replaces the draw flags.
func (dd *DebugDraw) SetFlags(f DrawFlags) { dd.flags = f }

// Flags returns the draw flags.
func (dd *DebugDraw) Flags() DrawFlags { return dd.flags }

// AppendFlags sets the given bits.
func (dd *DebugDraw) AppendFlags(f DrawFlags) { dd.flags |= f }

// ClearFlags clears the given bits.
func (dd *DebugDraw) ClearFlags(f DrawFlags) { dd.flags &^= f }

// ParticleSprite returns the soft-disc particle texture, building it on
// first use.
func (dd *DebugDraw) ParticleSprite() *ebiten.Image {
	if dd.sprite == nil {
		dd.sprite = dd.newTexture(BuildParticleSprite())
	}
	return dd.sprite
}

// Font returns the HUD face, loading it on first use.
func (dd *DebugDraw) Font() *text.GoXFace {
	return dd.fonts.Face()
}

func (dd *DebugDraw) whiteTexture() *ebiten.Image {
	if dd.white == nil {
		img := image.NewRGBA(image.Rect(0, 0, 3, 3))
		for i := range img.Pix {
			img.Pix[i] = 0xff
		}
		dd.white = dd.newTexture(img)
	}
	return dd.white
}

// Dispose releases the textures and the font and returns the font's close
// error. The context rebuilds them if it is used again. Only call it with
// textures from GPUTextures.
func (dd *DebugDraw) Dispose() error {
	if dd.sprite != nil {
		dd.sprite.Deallocate()
		dd.sprite = nil
	}
	if dd.white != nil {
		dd.white.Deallocate()
		dd.white = nil
	}
	return dd.fonts.Close()
}

// project maps world vertices into the scratch point buffer.
func (dd *DebugDraw) project(vertices []Vec2) []point {
	dd.pts = dd.pts[:0]
	for _, v := range vertices {
		x, y := dd.proj.ToScreen(v)
		dd.pts = append(dd.pts, point{x, y})
	}
	return dd.pts
}

func (dd *DebugDraw) projectPoint(v Vec2) point {
	x, y := dd.proj.ToScreen(v)
	return point{x, y}
}

// circle returns the world-space vertices of the circle polygon.
func circle(center Vec2, radius float64) []Vec2 {
	out := make([]Vec2, circleSegments)
	for i := range out {
		s, c := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		out[i] = Vec2{center[0] + radius*c, center[1] + radius*s}
	}
	return out
}

// flush submits the scratch mesh with the white texture.
func (dd *DebugDraw) flush() {
	if dd.mesh.Empty() {
		return
	}
	op := &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendSourceOver}
	dd.target.DrawTriangles(dd.mesh.Vertices, dd.mesh.Indices, dd.whiteTexture(), op)
	dd.mesh.Reset()
}

// DrawPolygon strokes the closed outline through vertices.
func (dd *DebugDraw) DrawPolygon(vertices []Vec2, color Color) {
	if dd.target == nil {
		return
	}
	dd.mesh.Reset()
	dd.mesh.appendLoop(dd.project(vertices), dd.lineWidth, color.Opaque())
	dd.flush()
}

// DrawFlatPolygon fills vertices opaquely. The polygon must be convex and
// consistently wound.
func (dd *DebugDraw) DrawFlatPolygon(vertices []Vec2, color Color) {
	if dd.target == nil {
		return
	}
	dd.mesh.Reset()
	dd.mesh.appendFan(dd.project(vertices), color.Opaque())
	dd.flush()
}

// DrawSolidPolygon fills vertices translucently, then strokes an opaque
// outline over the fill. The polygon must be convex and consistently wound.
func (dd *DebugDraw) DrawSolidPolygon(vertices []Vec2, color Color) {
	if dd.target == nil {
		return
	}
	pts := dd.project(vertices)
	dd.mesh.Reset()
	dd.mesh.appendFan(pts, color.Translucent())
	dd.flush()
	dd.mesh.appendLoop(pts, dd.lineWidth, color.Opaque())
	dd.flush()
}

// DrawCircle strokes a circle.
func (dd *DebugDraw) DrawCircle(center Vec2, radius float64, color Color) {
	if dd.target == nil {
		return
	}
	dd.mesh.Reset()
	dd.mesh.appendLoop(dd.project(circle(center, radius)), dd.lineWidth, color.Opaque())
	dd.flush()
}

// DrawSolidCircle fills a circle translucently, strokes it, and marks its
// orientation with a radius along axis.
func (dd *DebugDraw) DrawSolidCircle(center Vec2, radius float64, axis Vec2, color Color) {
	if dd.target == nil {
		return
	}
	pts := dd.project(circle(center, radius))
	dd.mesh.Reset()
	dd.mesh.appendFan(pts, color.Translucent())
	dd.flush()

	opaque := color.Opaque()
	dd.mesh.appendLoop(pts, dd.lineWidth, opaque)
	tip := center.Add(axis.Mul(radius))
	dd.mesh.appendLine(dd.projectPoint(center), dd.projectPoint(tip), dd.lineWidth, opaque)
	dd.flush()
}

// DrawSegment strokes the line p1–p2.
func (dd *DebugDraw) DrawSegment(p1, p2 Vec2, color Color) {
	if dd.target == nil {
		return
	}
	dd.mesh.Reset()
	dd.mesh.appendLine(dd.projectPoint(p1), dd.projectPoint(p2), dd.lineWidth, color.Opaque())
	dd.flush()
}

// DrawTransform draws the frame gizmo: the local x axis in red and the
// local y axis in green, AxisScale long.
func (dd *DebugDraw) DrawTransform(xf Transform) {
	if dd.target == nil {
		return
	}
	origin := dd.projectPoint(xf.P)
	dd.mesh.Reset()
	dd.mesh.appendLine(origin, dd.projectPoint(xf.P.Add(xf.Q.XAxis().Mul(AxisScale))), dd.lineWidth, axisXColor)
	dd.mesh.appendLine(origin, dd.projectPoint(xf.P.Add(xf.Q.YAxis().Mul(AxisScale))), dd.lineWidth, axisYColor)
	dd.flush()
}

// DrawPoint fills a square marker centred on p. Its half-width is
// size × PointScale world units, so markers follow the zoom.
func (dd *DebugDraw) DrawPoint(p Vec2, size float64, color Color) {
	if dd.target == nil {
		return
	}
	h := size * dd.proj.PointScale
	corners := []Vec2{
		{p[0] - h, p[1] - h},
		{p[0] + h, p[1] - h},
		{p[0] + h, p[1] + h},
		{p[0] - h, p[1] + h},
	}
	dd.mesh.Reset()
	dd.mesh.appendFan(dd.project(corners), color.Opaque())
	dd.flush()
}

// DrawAABB strokes a bounding box.
func (dd *DebugDraw) DrawAABB(box AABB, color Color) {
	if dd.target == nil {
		return
	}
	corners := []Vec2{
		box.Lower,
		{box.Upper[0], box.Lower[1]},
		box.Upper,
		{box.Lower[0], box.Upper[1]},
	}
	dd.mesh.Reset()
	dd.mesh.appendLoop(dd.project(corners), dd.lineWidth, color.Opaque())
	dd.flush()
}

// DrawString draws s in screen pixels with (x, y) as its top-left corner.
func (dd *DebugDraw) DrawString(x, y int, s string) {
	dd.drawText(float64(x), float64(y), s, screenTextColor)
}

// DrawStringf formats and draws a screen-space string.
func (dd *DebugDraw) DrawStringf(x, y int, format string, args ...any) {
	dd.DrawString(x, y, fmt.Sprintf(format, args...))
}

// DrawWorldString draws s with its baseline starting at the simulation-space
// point p.
func (dd *DebugDraw) DrawWorldString(p Vec2, s string) {
	if dd.target == nil {
		return
	}
	x, y := dd.proj.ToScreen(p)
	ascent := dd.Font().Metrics().HAscent
	dd.drawText(float64(x), float64(y)-ascent, s, worldTextColor)
}

// drawText lays out s from the top of its line box, which text/v2 does by
// default, in the pixel-aligned top-left projection.
func (dd *DebugDraw) drawText(x, y float64, s string, c Color) {
	if dd.target == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(c.R, c.G, c.B, c.A)
	dd.target.DrawText(s, dd.Font(), op)
}
