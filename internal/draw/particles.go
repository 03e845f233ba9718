package draw

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// ParticleSizeMultiplier widens each quad so the sprite's soft falloff
	// does not make particles look smaller than their radius.
	ParticleSizeMultiplier = 2.0

	// MaxParticlesPerBatch is the largest cloud submitted in one draw call;
	// 16-bit indices address at most 65536 vertices.
	MaxParticlesPerBatch = (math.MaxUint16 + 1) / 4
)

// quadUV holds the texture corners for P0..P3 in GL convention (v up).
var quadUV = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// AppendParticleQuads appends one textured quad per particle to m:
// vertices P0(−,−) P1(+,−) P2(+,+) P3(−,+) counter-clockwise in simulation
// space, triangles (P0,P1,P2) and (P0,P2,P3). A nil colors slice draws
// every particle opaque white. The caller keeps len(centers) within
// MaxParticlesPerBatch.
func AppendParticleQuads(m *Mesh, proj Projection, centers []Vec2, radius float64, colors []ParticleColor, spriteSize float32) {
	h := radius * ParticleSizeMultiplier
	offsets := [4]Vec2{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	for i, center := range centers {
		c := White
		if colors != nil {
			c = colors[i].Color()
		}
		base := uint16(len(m.Vertices))
		for k, off := range offsets {
			x, y := proj.ToScreen(center.Add(off))
			// Texture rows run top-down, so v is flipped.
			m.appendVertex(x, y, quadUV[k][0]*spriteSize, (1-quadUV[k][1])*spriteSize, c)
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3)
	}
}

// DrawParticles draws a particle cloud as sprite-textured quads, one draw
// call per MaxParticlesPerBatch particles. colors may be nil; otherwise it
// holds one entry per center.
func (dd *DebugDraw) DrawParticles(centers []Vec2, radius float64, colors []ParticleColor) {
	if dd.target == nil || len(centers) == 0 {
		return
	}
	sprite := dd.ParticleSprite()
	for start := 0; start < len(centers); start += MaxParticlesPerBatch {
		end := min(start+MaxParticlesPerBatch, len(centers))
		var batchColors []ParticleColor
		if colors != nil {
			batchColors = colors[start:end]
		}
		dd.mesh.Reset()
		AppendParticleQuads(&dd.mesh, dd.proj, centers[start:end], radius, batchColors, SpriteSize)
		op := &ebiten.DrawTrianglesOptions{
			Blend:  ebiten.BlendSourceOver,
			Filter: ebiten.FilterLinear,
		}
		dd.target.DrawTriangles(dd.mesh.Vertices, dd.mesh.Indices, sprite, op)
	}
	dd.mesh.Reset()
}
