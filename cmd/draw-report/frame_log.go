package main

import (
	"fmt"
	"strings"

	"github.com/Garsondee/debugdraw/internal/draw"
	"github.com/hajimehoshi/ebiten/v2"
)

// frameEntry is the draw traffic of one rendered frame.
type frameEntry struct {
	Frame     int
	Calls     int
	Triangles int
	Vertices  int
	Texts     int
	Particles int // particle quads submitted
	Batches   int // particle draw calls
}

// String formats the entry as a fixed-width log line.
//
//	[F=042] calls=17   tris=4102   verts=8204   text=6  particles=2000/1
func (e frameEntry) String() string {
	return fmt.Sprintf("[F=%03d] calls=%-4d tris=%-6d verts=%-6d text=%-2d particles=%d/%d",
		e.Frame, e.Calls, e.Triangles, e.Vertices, e.Texts, e.Particles, e.Batches)
}

// frameLog collects per-frame draw statistics from a Recorder.
type frameLog struct {
	entries []frameEntry
}

// record summarises the calls currently held by rec as frame n.
func (fl *frameLog) record(n int, rec *draw.Recorder, sprite *ebiten.Image) frameEntry {
	e := frameEntry{
		Frame:     n,
		Calls:     len(rec.Calls()),
		Triangles: rec.Triangles(),
		Vertices:  rec.Vertices(),
		Texts:     rec.Count(draw.CallText),
	}
	for _, c := range rec.Filter(draw.CallTriangles) {
		if sprite != nil && c.Texture == sprite {
			e.Batches++
			e.Particles += len(c.Vertices) / 4
		}
	}
	fl.entries = append(fl.entries, e)
	return e
}

// Entries returns all recorded frames.
func (fl *frameLog) Entries() []frameEntry {
	return fl.entries
}

// Filter returns the frames for which keep is true.
func (fl *frameLog) Filter(keep func(frameEntry) bool) []frameEntry {
	var out []frameEntry
	for _, e := range fl.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Peak returns the frame with the most triangles, or false if empty.
func (fl *frameLog) Peak() (frameEntry, bool) {
	if len(fl.entries) == 0 {
		return frameEntry{}, false
	}
	best := fl.entries[0]
	for _, e := range fl.entries[1:] {
		if e.Triangles > best.Triangles {
			best = e
		}
	}
	return best, true
}

// Mean returns the average calls and triangles per frame.
func (fl *frameLog) Mean() (calls, tris float64) {
	if len(fl.entries) == 0 {
		return 0, 0
	}
	for _, e := range fl.entries {
		calls += float64(e.Calls)
		tris += float64(e.Triangles)
	}
	n := float64(len(fl.entries))
	return calls / n, tris / n
}

// Format returns the full log, one line per frame.
func (fl *frameLog) Format() string {
	var sb strings.Builder
	for _, e := range fl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
