package draw

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CopiesBuffers(t *testing.T) {
	rec := NewRecorder()
	vs := []ebiten.Vertex{{DstX: 1}, {DstX: 2}, {DstX: 3}}
	is := []uint16{0, 1, 2}
	rec.DrawTriangles(vs, is, nil, nil)
	vs[0].DstX = 99
	is[0] = 2

	call := rec.Calls()[0]
	assert.Equal(t, float32(1), call.Vertices[0].DstX)
	assert.Equal(t, uint16(0), call.Indices[0])
}

func TestRecorder_TotalsAndReset(t *testing.T) {
	dd, rec, _ := newTestDraw(t)
	dd.DrawSegment(Vec2{0, 0}, Vec2{1, 0}, red)
	dd.DrawParticles(make([]Vec2, 5), 0.1, nil)
	dd.DrawString(0, 0, "hud")

	assert.Equal(t, 2, rec.Count(CallTriangles))
	assert.Equal(t, 1, rec.Count(CallText))
	assert.Equal(t, 4+20, rec.Vertices())
	assert.Equal(t, 2+10, rec.Triangles())
	assert.Contains(t, rec.Calls()[0].String(), "v=4")

	rec.Reset()
	assert.Empty(t, rec.Calls())
	_, ok := rec.Last()
	assert.False(t, ok)
}

func TestCountingTarget_ForwardsAndCounts(t *testing.T) {
	rec := NewRecorder()
	ct := Counting(rec)
	dd := NewDebugDraw(WithTextureFunc(HeadlessTextures), WithTarget(ct))
	dd.SetProjection(100, 100, 0, 1, 0, 1)

	dd.DrawParticles(make([]Vec2, 3), 0.1, nil)
	dd.DrawString(1, 1, "x")

	require.Len(t, rec.Calls(), 2)
	assert.Equal(t, 2, ct.Calls())
	assert.Equal(t, 12, ct.Vertices())
	assert.Equal(t, 6, ct.Triangles())
	assert.Equal(t, 1, ct.Texts())

	ct.Reset()
	assert.Equal(t, 0, ct.Calls())
}

func TestRecorder_CallsSurviveReset(t *testing.T) {
	dd, rec, _ := newTestDraw(t)
	dd.DrawString(0, 0, "first")
	before := rec.Calls()

	rec.Reset()
	dd.DrawString(0, 0, "second")

	require.Len(t, before, 1)
	assert.Equal(t, "first", before[0].Text)
	assert.True(t, rec.HasText("second"))
	assert.False(t, rec.HasText("first"))
}
