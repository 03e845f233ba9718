package testbed

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Garsondee/debugdraw/internal/draw"
)

// ShapeKind is the collision shape of a body.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Debug colours, following the usual physics testbed palette.
var (
	staticColor  = draw.RGB(0.5, 0.9, 0.5)
	dynamicColor = draw.RGB(0.9, 0.7, 0.7)
	sensorColor  = draw.RGB(0.9, 0.9, 0.3)
	boundsColor  = draw.RGB(0.4, 0.4, 0.4)
	jointColor   = draw.RGB(0.5, 0.8, 0.8)
	aabbColor    = draw.RGB(0.9, 0.3, 0.9)
	pairColor    = draw.RGB(0.3, 0.9, 0.9)
	contactColor = draw.RGB(1, 0, 0)
)

const (
	restitution     = 0.4
	particleBounce  = 0.3
	groundFriction  = 0.92
	angularDamping  = 0.9
	springStiffness = 4.0
	contactMarker   = 10.0 // DrawPoint size for contact points
)

// Body is a rigid shape in the toy world.
type Body struct {
	ID     int
	Kind   ShapeKind
	HalfW  float64 // box half extents
	HalfH  float64
	Radius float64 // circle radius
	Pos    draw.Vec2
	Vel    draw.Vec2
	Angle  float64
	AngVel float64
	Static bool
	Sensor bool // drawn but ignored by collisions
	Color  draw.Color
}

// Transform returns the body's placement.
func (b *Body) Transform() draw.Transform {
	return draw.Transform{P: b.Pos, Q: draw.NewRot(b.Angle)}
}

// Vertices returns a box's corners counter-clockwise in world space.
func (b *Body) Vertices() []draw.Vec2 {
	xf := b.Transform()
	return []draw.Vec2{
		xf.Apply(draw.Vec2{-b.HalfW, -b.HalfH}),
		xf.Apply(draw.Vec2{b.HalfW, -b.HalfH}),
		xf.Apply(draw.Vec2{b.HalfW, b.HalfH}),
		xf.Apply(draw.Vec2{-b.HalfW, b.HalfH}),
	}
}

// extent returns the half size of the body's AABB.
func (b *Body) extent() (float64, float64) {
	if b.Kind == ShapeCircle {
		return b.Radius, b.Radius
	}
	s, c := math.Abs(math.Sin(b.Angle)), math.Abs(math.Cos(b.Angle))
	return b.HalfW*c + b.HalfH*s, b.HalfW*s + b.HalfH*c
}

// AABB returns the body's axis-aligned bounds.
func (b *Body) AABB() draw.AABB {
	ex, ey := b.extent()
	return draw.AABB{
		Lower: draw.Vec2{b.Pos[0] - ex, b.Pos[1] - ey},
		Upper: draw.Vec2{b.Pos[0] + ex, b.Pos[1] + ey},
	}
}

// Spring pulls two bodies towards their rest distance.
type Spring struct {
	A, B int // body indices
	Rest float64
}

// Scene is a small deterministic rigid-body and particle world. It exists
// to feed the debug draw layer; its physics is deliberately crude.
type Scene struct {
	Bounds  draw.AABB
	Gravity draw.Vec2
	Floor   float64
	Bodies  []*Body
	Springs []Spring

	// Particles as parallel buffers, the way a particle solver exposes them.
	Positions      []draw.Vec2
	Velocities     []draw.Vec2
	Colors         []draw.ParticleColor
	ParticleRadius float64

	Contacts []draw.Vec2 // body-floor contacts from the last step
	Tick     int

	settings Settings
	rng      *rand.Rand
}

// NewScene builds the scene described by s.
func NewScene(s Settings) *Scene {
	sc := &Scene{settings: s}
	sc.Reset()
	return sc
}

// Reset rebuilds the scene from its settings and seed.
func (sc *Scene) Reset() {
	s := sc.settings
	sc.rng = rand.New(rand.NewSource(s.Seed)) // #nosec G404 -- layout only
	sc.Bounds = draw.AABB{Lower: draw.Vec2{-20, 0}, Upper: draw.Vec2{20, 30}}
	sc.Gravity = draw.Vec2{0, s.Gravity}
	sc.ParticleRadius = s.ParticleRadius
	sc.Tick = 0
	sc.Contacts = sc.Contacts[:0]
	sc.Bodies = sc.Bodies[:0]
	sc.Springs = sc.Springs[:0]

	ground := &Body{Kind: ShapeBox, HalfW: 20, HalfH: 1, Pos: draw.Vec2{0, 1}, Static: true, Color: staticColor}
	sc.addBody(ground)
	sc.Floor = ground.Pos[1] + ground.HalfH
	sc.addBody(&Body{Kind: ShapeCircle, Radius: 3, Pos: draw.Vec2{12, 8}, Static: true, Sensor: true, Color: sensorColor})

	first := len(sc.Bodies)
	for i := 0; i < s.Bodies; i++ {
		b := &Body{
			Pos:    draw.Vec2{-15 + sc.rng.Float64()*30, 10 + sc.rng.Float64()*18},
			Angle:  sc.rng.Float64() * 2 * math.Pi,
			AngVel: (sc.rng.Float64() - 0.5) * 4,
			Color:  dynamicColor,
		}
		if i%2 == 0 {
			b.Kind = ShapeBox
			b.HalfW = 0.5 + sc.rng.Float64()
			b.HalfH = 0.5 + sc.rng.Float64()*0.5
		} else {
			b.Kind = ShapeCircle
			b.Radius = 0.5 + sc.rng.Float64()
		}
		sc.addBody(b)
	}
	for i := first; i+1 < len(sc.Bodies); i += 2 {
		a, b := sc.Bodies[i], sc.Bodies[i+1]
		sc.Springs = append(sc.Springs, Spring{A: i, B: i + 1, Rest: b.Pos.Sub(a.Pos).Len()})
	}

	sc.spawnParticles(s.Particles)
}

func (sc *Scene) addBody(b *Body) {
	b.ID = len(sc.Bodies)
	sc.Bodies = append(sc.Bodies, b)
}

// spawnParticles fills a block above the ground with n particles coloured
// by position.
func (sc *Scene) spawnParticles(n int) {
	sc.Positions = make([]draw.Vec2, n)
	sc.Velocities = make([]draw.Vec2, n)
	sc.Colors = make([]draw.ParticleColor, n)
	if n == 0 {
		return
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	spacing := sc.ParticleRadius * 2
	x0 := -float64(cols) * spacing / 2
	y0 := 12.0
	for i := 0; i < n; i++ {
		col, row := i%cols, i/cols
		jitter := (sc.rng.Float64() - 0.5) * sc.ParticleRadius * 0.2
		sc.Positions[i] = draw.Vec2{x0 + float64(col)*spacing + jitter, y0 + float64(row)*spacing}
		u := float64(col) / float64(cols)
		sc.Colors[i] = draw.ParticleColor{
			R: uint8(255 * u),
			G: 96,
			B: uint8(255 * (1 - u)),
			A: 255,
		}
	}
}

// Step advances the world by dt seconds.
func (sc *Scene) Step(dt float64) {
	sc.Tick++
	sc.Contacts = sc.Contacts[:0]

	for _, sp := range sc.Springs {
		a, b := sc.Bodies[sp.A], sc.Bodies[sp.B]
		d := b.Pos.Sub(a.Pos)
		l := d.Len()
		if l == 0 {
			continue
		}
		impulse := d.Mul(springStiffness * (l - sp.Rest) / l * dt)
		a.Vel = a.Vel.Add(impulse)
		b.Vel = b.Vel.Sub(impulse)
	}

	for _, b := range sc.Bodies {
		if b.Static {
			continue
		}
		b.Vel = b.Vel.Add(sc.Gravity.Mul(dt))
		b.Pos = b.Pos.Add(b.Vel.Mul(dt))
		b.Angle += b.AngVel * dt
		sc.collideBody(b)
	}

	for i := range sc.Positions {
		sc.Velocities[i] = sc.Velocities[i].Add(sc.Gravity.Mul(dt))
		sc.Positions[i] = sc.Positions[i].Add(sc.Velocities[i].Mul(dt))
		sc.collideParticle(i)
	}
}

func (sc *Scene) collideBody(b *Body) {
	ex, ey := b.extent()
	if b.Pos[1]-ey < sc.Floor {
		b.Pos[1] = sc.Floor + ey
		if b.Vel[1] < 0 {
			b.Vel[1] = -b.Vel[1] * restitution
		}
		b.Vel[0] *= groundFriction
		b.AngVel *= angularDamping
		sc.Contacts = append(sc.Contacts, draw.Vec2{b.Pos[0], sc.Floor})
	}
	if b.Pos[0]-ex < sc.Bounds.Lower[0] {
		b.Pos[0] = sc.Bounds.Lower[0] + ex
		b.Vel[0] = math.Abs(b.Vel[0]) * restitution
	}
	if b.Pos[0]+ex > sc.Bounds.Upper[0] {
		b.Pos[0] = sc.Bounds.Upper[0] - ex
		b.Vel[0] = -math.Abs(b.Vel[0]) * restitution
	}
}

func (sc *Scene) collideParticle(i int) {
	p, v := sc.Positions[i], sc.Velocities[i]
	r := sc.ParticleRadius

	for _, b := range sc.Bodies {
		if b.Static || b.Kind != ShapeCircle {
			continue
		}
		d := p.Sub(b.Pos)
		l := d.Len()
		minDist := b.Radius + r
		if l >= minDist || l == 0 {
			continue
		}
		n := d.Mul(1 / l)
		p = b.Pos.Add(n.Mul(minDist))
		if vn := v.Dot(n); vn < 0 {
			v = v.Sub(n.Mul((1 + particleBounce) * vn))
		}
	}

	if p[1]-r < sc.Floor {
		p[1] = sc.Floor + r
		v[1] = math.Abs(v[1]) * particleBounce
		v[0] *= groundFriction
	}
	if p[1]+r > sc.Bounds.Upper[1] {
		p[1] = sc.Bounds.Upper[1] - r
		v[1] = -math.Abs(v[1]) * particleBounce
	}
	if p[0]-r < sc.Bounds.Lower[0] {
		p[0] = sc.Bounds.Lower[0] + r
		v[0] = math.Abs(v[0]) * particleBounce
	}
	if p[0]+r > sc.Bounds.Upper[0] {
		p[0] = sc.Bounds.Upper[0] - r
		v[0] = -math.Abs(v[0]) * particleBounce
	}
	sc.Positions[i], sc.Velocities[i] = p, v
}

// InSensor returns how many particles are inside sensor bodies.
func (sc *Scene) InSensor() int {
	n := 0
	for _, b := range sc.Bodies {
		if !b.Sensor {
			continue
		}
		for _, p := range sc.Positions {
			if p.Sub(b.Pos).Len() <= b.Radius {
				n++
			}
		}
	}
	return n
}

// Render submits the scene to dd, honouring its draw flags.
func (sc *Scene) Render(dd *draw.DebugDraw) {
	flags := dd.Flags()

	if flags.Has(draw.ShapeBit) {
		b := sc.Bounds
		dd.DrawPolygon([]draw.Vec2{
			b.Lower, {b.Upper[0], b.Lower[1]}, b.Upper, {b.Lower[0], b.Upper[1]},
		}, boundsColor)
		for _, body := range sc.Bodies {
			renderBody(dd, body)
		}
	}

	if flags.Has(draw.ParticleBit) {
		dd.DrawParticles(sc.Positions, sc.ParticleRadius, sc.Colors)
	}

	if flags.Has(draw.JointBit) {
		for _, sp := range sc.Springs {
			dd.DrawSegment(sc.Bodies[sp.A].Pos, sc.Bodies[sp.B].Pos, jointColor)
		}
	}

	if flags.Has(draw.AABBBit) {
		for _, body := range sc.Bodies {
			dd.DrawAABB(body.AABB(), aabbColor)
		}
	}

	if flags.Has(draw.PairBit) {
		for _, pair := range sc.OverlappingPairs() {
			dd.DrawSegment(sc.Bodies[pair[0]].Pos, sc.Bodies[pair[1]].Pos, pairColor)
		}
		for _, c := range sc.Contacts {
			dd.DrawPoint(c, contactMarker, contactColor)
		}
	}

	if flags.Has(draw.CenterOfMassBit) {
		for _, body := range sc.Bodies {
			dd.DrawTransform(body.Transform())
			if !body.Static {
				dd.DrawWorldString(body.Pos, fmt.Sprintf("b%d", body.ID))
			}
		}
	}
}

func renderBody(dd *draw.DebugDraw, b *Body) {
	switch {
	case b.Kind == ShapeCircle && b.Sensor:
		dd.DrawCircle(b.Pos, b.Radius, b.Color)
	case b.Kind == ShapeCircle:
		dd.DrawSolidCircle(b.Pos, b.Radius, draw.NewRot(b.Angle).XAxis(), b.Color)
	case b.Static:
		dd.DrawFlatPolygon(b.Vertices(), b.Color)
	default:
		dd.DrawSolidPolygon(b.Vertices(), b.Color)
	}
}

// OverlappingPairs returns the index pairs of bodies whose AABBs overlap,
// the broad-phase view of the world.
func (sc *Scene) OverlappingPairs() [][2]int {
	var out [][2]int
	for i := 0; i < len(sc.Bodies); i++ {
		bi := sc.Bodies[i].AABB()
		for j := i + 1; j < len(sc.Bodies); j++ {
			if bi.Overlaps(sc.Bodies[j].AABB()) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// ParticleCount returns the number of particles.
func (sc *Scene) ParticleCount() int {
	return len(sc.Positions)
}
