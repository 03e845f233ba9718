package draw

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a point or direction in simulation space.
type Vec2 = mgl64.Vec2

// Rot is a 2D rotation stored as its sine and cosine.
type Rot struct {
	S float64
	C float64
}

// NewRot returns the rotation for an angle in radians.
func NewRot(angle float64) Rot {
	s, c := math.Sincos(angle)
	return Rot{S: s, C: c}
}

// XAxis returns the rotated local x axis.
func (q Rot) XAxis() Vec2 { return Vec2{q.C, q.S} }

// YAxis returns the rotated local y axis.
func (q Rot) YAxis() Vec2 { return Vec2{-q.S, q.C} }

// Apply rotates v.
func (q Rot) Apply(v Vec2) Vec2 {
	return Vec2{q.C*v[0] - q.S*v[1], q.S*v[0] + q.C*v[1]}
}

// Transform is a rigid placement: translation P followed by rotation Q.
type Transform struct {
	P Vec2
	Q Rot
}

// Apply maps a body-local point into simulation space.
func (xf Transform) Apply(v Vec2) Vec2 {
	return xf.P.Add(xf.Q.Apply(v))
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Lower Vec2
	Upper Vec2
}

// Overlaps reports whether two boxes intersect (touching counts).
func (b AABB) Overlaps(o AABB) bool {
	return b.Lower[0] <= o.Upper[0] && o.Lower[0] <= b.Upper[0] &&
		b.Lower[1] <= o.Upper[1] && o.Lower[1] <= b.Upper[1]
}
