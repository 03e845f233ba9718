package draw

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxMeshVertices is the most vertices uint16 indices can address.
const maxMeshVertices = math.MaxUint16 + 1

// Mesh is an indexed triangle list in pixel space, ready for a single
// DrawTriangles call.
type Mesh struct {
	Vertices []ebiten.Vertex
	Indices  []uint16

	// flush submits and resets the mesh. Outline and fan builders call it
	// before the vertex count would pass maxMeshVertices.
	flush func()
}

// Reset empties the mesh, keeping its buffers.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// Empty reports whether the mesh has no triangles.
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Triangles returns the triangle count.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// reserve makes room for n more vertices, flushing a mesh that cannot
// take them.
func (m *Mesh) reserve(n int) {
	if len(m.Vertices)+n > maxMeshVertices && m.flush != nil {
		m.flush()
	}
}

func (m *Mesh) appendVertex(x, y, srcX, srcY float32, c Color) uint16 {
	i := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   srcX,
		SrcY:   srcY,
		ColorR: c.R,
		ColorG: c.G,
		ColorB: c.B,
		ColorA: c.A,
	})
	return i
}

// solidSrc is the texel sampled from the white texture for untextured fills.
const solidSrc = 1

// point is a projected vertex in pixels.
type point struct {
	x, y float32
}

// appendFan appends a triangle fan over pts in a solid colour. The polygon
// must be convex and consistently wound; nothing is checked. Fans too large
// for one mesh are split into sub-fans that repeat pts[0] and share their
// boundary vertex.
func (m *Mesh) appendFan(pts []point, c Color) {
	if len(pts) < 3 {
		return
	}
	for start := 1; start < len(pts)-1; {
		end := min(len(pts), start+maxMeshVertices-1)
		m.reserve(1 + end - start)
		base := m.appendVertex(pts[0].x, pts[0].y, solidSrc, solidSrc, c)
		for _, p := range pts[start:end] {
			m.appendVertex(p.x, p.y, solidSrc, solidSrc, c)
		}
		for i := 1; i < end-start; i++ {
			m.Indices = append(m.Indices, base, base+uint16(i), base+uint16(i+1))
		}
		start = end - 1
	}
}

// appendLine appends a segment as a quad of the given pixel width.
// Zero-length segments produce nothing.
func (m *Mesh) appendLine(a, b point, width float32, c Color) {
	dx, dy := b.x-a.x, b.y-a.y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	m.reserve(4)
	half := width / 2
	nx, ny := dy/l*half, -dx/l*half
	v0 := m.appendVertex(a.x+nx, a.y+ny, solidSrc, solidSrc, c)
	v1 := m.appendVertex(a.x-nx, a.y-ny, solidSrc, solidSrc, c)
	v2 := m.appendVertex(b.x+nx, b.y+ny, solidSrc, solidSrc, c)
	v3 := m.appendVertex(b.x-nx, b.y-ny, solidSrc, solidSrc, c)
	m.Indices = append(m.Indices, v1, v0, v2, v2, v3, v1)
}

// appendLoop appends the closed outline through pts.
func (m *Mesh) appendLoop(pts []point, width float32, c Color) {
	n := len(pts)
	for i := range pts {
		m.appendLine(pts[i], pts[(i+1)%n], width, c)
	}
}
