package draw

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Target receives the triangle batches and text runs produced by a
// DebugDraw. Screen adapts an Ebitengine image; Recorder captures calls
// without a GPU.
type Target interface {
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
	DrawText(s string, face text.Face, options *text.DrawOptions)
}

type screenTarget struct {
	img *ebiten.Image
}

// Screen returns a Target drawing onto img.
func Screen(img *ebiten.Image) Target {
	return screenTarget{img: img}
}

func (t screenTarget) DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions) {
	t.img.DrawTriangles(vertices, indices, img, options)
}

func (t screenTarget) DrawText(s string, face text.Face, options *text.DrawOptions) {
	text.Draw(t.img, s, face, options)
}

// TextureFunc turns a bitmap into a texture handle.
type TextureFunc func(img image.Image) *ebiten.Image

// GPUTextures uploads bitmaps with ebiten.NewImageFromImage.
func GPUTextures(img image.Image) *ebiten.Image {
	return ebiten.NewImageFromImage(img)
}

// HeadlessTextures returns a fresh placeholder handle per bitmap without
// touching the graphics driver. The handles only carry identity: pass them
// to a Recorder, never to a real image.
func HeadlessTextures(image.Image) *ebiten.Image {
	return new(ebiten.Image)
}

// CountingTarget forwards to another Target and tallies what passes
// through it.
type CountingTarget struct {
	next      Target
	calls     int
	vertices  int
	triangles int
	texts     int
}

// Counting wraps next.
func Counting(next Target) *CountingTarget {
	return &CountingTarget{next: next}
}

func (c *CountingTarget) DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions) {
	c.calls++
	c.vertices += len(vertices)
	c.triangles += len(indices) / 3
	c.next.DrawTriangles(vertices, indices, img, options)
}

func (c *CountingTarget) DrawText(s string, face text.Face, options *text.DrawOptions) {
	c.calls++
	c.texts++
	c.next.DrawText(s, face, options)
}

// Calls is the number of draw calls since the last Reset.
func (c *CountingTarget) Calls() int { return c.calls }

// Vertices is the number of vertices submitted since the last Reset.
func (c *CountingTarget) Vertices() int { return c.vertices }

// Triangles is the number of triangles submitted since the last Reset.
func (c *CountingTarget) Triangles() int { return c.triangles }

// Texts is the number of text runs since the last Reset.
func (c *CountingTarget) Texts() int { return c.texts }

// Reset clears the tallies.
func (c *CountingTarget) Reset() {
	c.calls, c.vertices, c.triangles, c.texts = 0, 0, 0, 0
}
