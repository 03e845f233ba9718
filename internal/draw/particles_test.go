package draw

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func particleGrid(n int) []Vec2 {
	out := make([]Vec2, n)
	for i := range out {
		out[i] = Vec2{float64(i%10) - 5, float64(i/10) - 3}
	}
	return out
}

func TestDrawParticles_FourVerticesTwoTrianglesEach(t *testing.T) {
	dd, rec, _ := newTestDraw(t)
	const n = 37
	colors := make([]ParticleColor, n)
	for i := range colors {
		colors[i] = ParticleColor{R: uint8(i * 5), G: 40, B: 200, A: 255}
	}

	dd.DrawParticles(particleGrid(n), 0.1, colors)

	require.Equal(t, 1, rec.Count(CallTriangles), "one draw call for the whole cloud")
	call := rec.Calls()[0]
	assert.Len(t, call.Vertices, 4*n)
	assert.Equal(t, 2*n, call.Triangles())

	for tri := 0; tri < call.Triangles(); tri++ {
		owner := tri / 2
		for k := 0; k < 3; k++ {
			idx := int(call.Indices[tri*3+k])
			assert.Equal(t, owner, idx/4, "triangle %d references vertex %d of another particle", tri, idx)
		}
	}
}

func TestDrawParticles_NilColorsMatchExplicitWhite(t *testing.T) {
	centers := particleGrid(12)
	white := make([]ParticleColor, len(centers))
	for i := range white {
		white[i] = ParticleColor{R: 255, G: 255, B: 255, A: 255}
	}

	dd, rec, _ := newTestDraw(t)
	dd.DrawParticles(centers, 0.25, nil)
	dd.DrawParticles(centers, 0.25, white)

	calls := rec.Filter(CallTriangles)
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0].Vertices, calls[1].Vertices)
	assert.Equal(t, calls[0].Indices, calls[1].Indices)
}

func TestDrawParticles_SingleParticleScenario(t *testing.T) {
	dd, rec, _ := newTestDraw(t)

	dd.DrawParticles([]Vec2{{0, 0}}, 0.5, nil)

	call, ok := rec.Last()
	require.True(t, ok)
	require.Len(t, call.Vertices, 4)
	assert.Equal(t, 2, call.Triangles())

	// Half-width 1.0 world unit is 40px in both axes of this view.
	minX, minY, maxX, maxY := bounds(call.Vertices)
	assert.InDelta(t, 360, minX, 1e-3)
	assert.InDelta(t, 440, maxX, 1e-3)
	assert.InDelta(t, 260, minY, 1e-3)
	assert.InDelta(t, 340, maxY, 1e-3)

	for _, v := range call.Vertices {
		assert.Equal(t, [4]float32{1, 1, 1, 1}, [4]float32{v.ColorR, v.ColorG, v.ColorB, v.ColorA})
	}
	assert.Same(t, dd.ParticleSprite(), call.Texture)
	assert.Equal(t, ebiten.BlendSourceOver, call.Blend)
	assert.Equal(t, ebiten.FilterLinear, call.Filter)
}

func TestDrawParticles_CounterClockwiseWithFullTexture(t *testing.T) {
	dd, rec, _ := newTestDraw(t)
	dd.DrawParticles([]Vec2{{1, 1}}, 0.25, nil)

	call, _ := rec.Last()
	v := call.Vertices
	// P0 bottom-left, P1 bottom-right, P2 top-right, P3 top-left on screen.
	assert.Less(t, v[0].DstX, v[1].DstX)
	assert.Equal(t, v[0].DstY, v[1].DstY)
	assert.Greater(t, v[1].DstY, v[2].DstY)
	assert.Equal(t, v[2].DstY, v[3].DstY)

	assert.Equal(t, [2]float32{0, SpriteSize}, [2]float32{v[0].SrcX, v[0].SrcY})
	assert.Equal(t, [2]float32{SpriteSize, SpriteSize}, [2]float32{v[1].SrcX, v[1].SrcY})
	assert.Equal(t, [2]float32{SpriteSize, 0}, [2]float32{v[2].SrcX, v[2].SrcY})
	assert.Equal(t, [2]float32{0, 0}, [2]float32{v[3].SrcX, v[3].SrcY})
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, call.Indices)
}

func TestDrawParticles_ColorsNormalised(t *testing.T) {
	dd, rec, _ := newTestDraw(t)
	dd.DrawParticles([]Vec2{{0, 0}}, 0.1, []ParticleColor{{R: 255, G: 0, B: 51, A: 102}})

	call, _ := rec.Last()
	v := call.Vertices[2]
	assert.InDelta(t, 1.0, v.ColorR, 1e-6)
	assert.InDelta(t, 0.0, v.ColorG, 1e-6)
	assert.InDelta(t, 0.2, v.ColorB, 1e-6)
	assert.InDelta(t, 0.4, v.ColorA, 1e-6)
}

func TestDrawParticles_SplitsAtIndexLimit(t *testing.T) {
	dd, rec, tc := newTestDraw(t)
	n := MaxParticlesPerBatch + 3
	centers := make([]Vec2, n)

	dd.DrawParticles(centers, 0.1, nil)

	calls := rec.Filter(CallTriangles)
	require.Len(t, calls, 2)
	assert.Len(t, calls[0].Vertices, 4*MaxParticlesPerBatch)
	assert.Len(t, calls[1].Vertices, 12)
	assert.Equal(t, uint16(0xffff), calls[0].Indices[len(calls[0].Indices)-1])
	assert.Equal(t, 1, tc.n, "sprite is shared by both batches")
}

func TestDrawParticles_EmptyDrawsNothing(t *testing.T) {
	dd, rec, tc := newTestDraw(t)
	dd.DrawParticles(nil, 0.5, nil)
	assert.Empty(t, rec.Calls())
	assert.Equal(t, 0, tc.n, "sprite is not built for an empty cloud")
}

// ring returns n points evenly spaced on a circle of radius r.
func ring(n int, r float64) []Vec2 {
	pts := make([]Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Vec2{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}

func TestDrawPolygon_SplitsAtIndexLimit(t *testing.T) {
	dd, rec, _ := newTestDraw(t)
	n := 20000

	dd.DrawPolygon(ring(n, 5), red)

	calls := rec.Filter(CallTriangles)
	require.Len(t, calls, 2)
	assert.Len(t, calls[0].Vertices, maxMeshVertices)
	assert.Len(t, calls[1].Vertices, 4*(n-maxMeshVertices/4))
	for ci, c := range calls {
		require.Equal(t, len(c.Vertices)/4*6, len(c.Indices), "call %d", ci)
		for i, idx := range c.Indices {
			q := uint16(i / 6)
			assert.True(t, idx >= 4*q && idx <= 4*q+3,
				"call %d index %d = %d points outside edge quad %d", ci, i, idx, q)
		}
	}
}

func TestDrawFlatPolygon_SplitsFanAtIndexLimit(t *testing.T) {
	dd, rec, _ := newTestDraw(t)
	n := maxMeshVertices + 5000

	dd.DrawFlatPolygon(ring(n, 5), red)

	calls := rec.Filter(CallTriangles)
	require.Len(t, calls, 2)
	tris := 0
	for _, c := range calls {
		tris += c.Triangles()
		assert.LessOrEqual(t, len(c.Vertices), maxMeshVertices)
		for _, idx := range c.Indices {
			require.Less(t, int(idx), len(c.Vertices))
		}
		// Every sub-fan pivots on the polygon's first vertex.
		assert.Equal(t, calls[0].Vertices[0].DstX, c.Vertices[0].DstX)
		assert.Equal(t, calls[0].Vertices[0].DstY, c.Vertices[0].DstY)
	}
	assert.Equal(t, n-2, tris, "sub-fans cover the polygon without gaps")
}
