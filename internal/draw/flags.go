package draw

import "strings"

// DrawFlags selects which categories of simulation state a host submits.
type DrawFlags uint32

const (
	ShapeBit        DrawFlags = 1 << iota // shapes
	JointBit                              // joint connections
	AABBBit                               // broad-phase boxes
	PairBit                               // broad-phase pairs and contacts
	CenterOfMassBit                       // body frames
	ParticleBit                           // particle clouds
)

var flagNames = []struct {
	bit  DrawFlags
	name string
}{
	{ShapeBit, "shape"},
	{JointBit, "joint"},
	{AABBBit, "aabb"},
	{PairBit, "pair"},
	{CenterOfMassBit, "com"},
	{ParticleBit, "particle"},
}

// AllFlags has every category set.
const AllFlags = ShapeBit | JointBit | AABBBit | PairBit | CenterOfMassBit | ParticleBit

// Has reports whether every bit of f2 is set in f.
func (f DrawFlags) Has(f2 DrawFlags) bool {
	return f&f2 == f2
}

// String lists the set categories, e.g. "shape|particle".
func (f DrawFlags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.bit) {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseDrawFlags parses the String form. Unknown names are ignored.
func ParseDrawFlags(s string) DrawFlags {
	if s == "all" {
		return AllFlags
	}
	var f DrawFlags
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		for _, fn := range flagNames {
			if fn.name == part {
				f |= fn.bit
			}
		}
	}
	return f
}
