package draw

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// textureCounter is a headless texture factory that counts constructions.
type textureCounter struct {
	n int
}

func (tc *textureCounter) make(img image.Image) *ebiten.Image {
	tc.n++
	return HeadlessTextures(img)
}

// newTestDraw returns a context bound to a Recorder with the 800×600 view
// of [-10,10]×[-7.5,7.5].
func newTestDraw(t *testing.T, opts ...Option) (*DebugDraw, *Recorder, *textureCounter) {
	t.Helper()
	tc := &textureCounter{}
	rec := NewRecorder()
	opts = append([]Option{WithTextureFunc(tc.make), WithTarget(rec)}, opts...)
	dd := NewDebugDraw(opts...)
	dd.SetProjection(800, 600, -10, 10, -7.5, 7.5)
	return dd, rec, tc
}

// bounds returns the pixel bounding box of a batch.
func bounds(vs []ebiten.Vertex) (minX, minY, maxX, maxY float32) {
	minX, minY = vs[0].DstX, vs[0].DstY
	maxX, maxY = minX, minY
	for _, v := range vs[1:] {
		minX = min(minX, v.DstX)
		minY = min(minY, v.DstY)
		maxX = max(maxX, v.DstX)
		maxY = max(maxY, v.DstY)
	}
	return
}
