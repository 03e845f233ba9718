package draw

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CallKind distinguishes the two kinds of submission a Target accepts.
type CallKind string

const (
	CallTriangles CallKind = "triangles"
	CallText      CallKind = "text"
)

// DrawCall is one recorded submission.
type DrawCall struct {
	Kind CallKind

	// Triangle batches.
	Vertices []ebiten.Vertex
	Indices  []uint16
	Texture  *ebiten.Image
	Blend    ebiten.Blend
	Filter   ebiten.Filter

	// Text runs. X and Y are the translation of the run's origin in pixels.
	Text  string
	Face  text.Face
	X     float64
	Y     float64
	Color Color
}

// Triangles returns the number of triangles in a batch.
func (c DrawCall) Triangles() int {
	return len(c.Indices) / 3
}

// String formats the call as a single log line.
//
//	triangles  v=12   t=6
//	text       (5,5) "particles: 420"
func (c DrawCall) String() string {
	if c.Kind == CallText {
		return fmt.Sprintf("%-10s (%.0f,%.0f) %q", c.Kind, c.X, c.Y, c.Text)
	}
	return fmt.Sprintf("%-10s v=%-4d t=%d", c.Kind, len(c.Vertices), c.Triangles())
}

// Recorder is a Target that keeps every call for later inspection. Vertex
// and index slices are copied, so callers may reuse their buffers.
type Recorder struct {
	calls []DrawCall
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions) {
	call := DrawCall{
		Kind:     CallTriangles,
		Vertices: append([]ebiten.Vertex(nil), vertices...),
		Indices:  append([]uint16(nil), indices...),
		Texture:  img,
	}
	if options != nil {
		call.Blend = options.Blend
		call.Filter = options.Filter
	}
	r.calls = append(r.calls, call)
}

func (r *Recorder) DrawText(s string, face text.Face, options *text.DrawOptions) {
	call := DrawCall{
		Kind:  CallText,
		Text:  s,
		Face:  face,
		Color: White,
	}
	if options != nil {
		call.X = options.GeoM.Element(0, 2)
		call.Y = options.GeoM.Element(1, 2)
		cs := options.ColorScale
		call.Color = Color{R: cs.R(), G: cs.G(), B: cs.B(), A: cs.A()}
	}
	r.calls = append(r.calls, call)
}

// Calls returns all recorded calls in submission order. The slice stays
// valid after Reset.
func (r *Recorder) Calls() []DrawCall {
	return r.calls
}

// Last returns the most recent call, or false if nothing was recorded.
func (r *Recorder) Last() (DrawCall, bool) {
	if len(r.calls) == 0 {
		return DrawCall{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Filter returns the calls of the given kind.
func (r *Recorder) Filter(kind CallKind) []DrawCall {
	var out []DrawCall
	for _, c := range r.calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(kind CallKind) int {
	return len(r.Filter(kind))
}

// Vertices returns the total vertex count over all triangle batches.
func (r *Recorder) Vertices() int {
	n := 0
	for _, c := range r.calls {
		n += len(c.Vertices)
	}
	return n
}

// Triangles returns the total triangle count over all triangle batches.
func (r *Recorder) Triangles() int {
	n := 0
	for _, c := range r.calls {
		n += c.Triangles()
	}
	return n
}

// HasText reports whether a text run with exactly s was recorded.
func (r *Recorder) HasText(s string) bool {
	for _, c := range r.calls {
		if c.Kind == CallText && c.Text == s {
			return true
		}
	}
	return false
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.calls = nil
}
