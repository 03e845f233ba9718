package testbed

import (
	"errors"
	"testing"

	"github.com/Garsondee/debugdraw/internal/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s := DefaultSettings()
	s.Particles = 16
	s.Bodies = 2
	return New(s)
}

func lastEvent(g *Game) EventEntry {
	r := g.events.Recent()
	return r[len(r)-1]
}

func TestNew_AppliesSettings(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, DefaultSettings().DrawFlags(), g.dd.Flags())
	assert.Equal(t, 16, g.scene.ParticleCount())
	assert.Equal(t, 1, g.events.Len())
	assert.True(t, g.showHUD)
}

func TestGame_LayoutTracksWindowSize(t *testing.T) {
	g := newTestGame(t)

	w, h := g.Layout(1280, 720)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
	assert.Equal(t, 1, g.events.Len(), "same size logs nothing")

	w, h = g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, "resize 800x600", lastEvent(g).Message)
}

func TestGame_ToggleFlag(t *testing.T) {
	g := newTestGame(t)

	g.toggleFlag(draw.AABBBit)
	assert.True(t, g.dd.Flags().Has(draw.AABBBit))
	g.toggleFlag(draw.ShapeBit)
	assert.False(t, g.dd.Flags().Has(draw.ShapeBit))
	assert.Equal(t, "draw", lastEvent(g).Category)
}

func TestGame_CopyStats(t *testing.T) {
	g := newTestGame(t)
	orig := clipboardWriter
	t.Cleanup(func() { clipboardWriter = orig })

	var got string
	clipboardWriter = func(s string) error { got = s; return nil }
	g.copyStats()
	assert.Contains(t, got, "particles 16")
	assert.Equal(t, "stats copied", lastEvent(g).Message)

	clipboardWriter = func(string) error { return errors.New("denied") }
	g.copyStats()
	assert.Equal(t, "copy failed: denied", lastEvent(g).Message)
}

func TestGame_HUDLines(t *testing.T) {
	g := newTestGame(t)
	g.paused = true

	lines := g.hudLines()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "PAUSED")
	assert.Contains(t, lines[2], "shape|joint|com|particle")
}

func TestGame_HUDGoesThroughDrawContext(t *testing.T) {
	g := newTestGame(t)
	rec := draw.NewRecorder()
	g.dd.Bind(rec)

	g.drawHUD()
	assert.Equal(t, len(g.hudLines()), rec.Count(draw.CallText))
	texts := rec.Filter(draw.CallText)
	assert.Equal(t, float64(4+hudLineHeight), texts[1].Y)
}

func TestGame_LayoutNeverReturnsEmptyScreen(t *testing.T) {
	g := newTestGame(t)

	w, h := g.Layout(640, 0)
	assert.Equal(t, 640, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, "resize 640x1", lastEvent(g).Message)
}
