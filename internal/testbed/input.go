package testbed

import (
	"math"

	"github.com/Garsondee/debugdraw/internal/draw"
	"github.com/hajimehoshi/ebiten/v2"
)

// flagKeys maps function keys to the draw category they toggle.
var flagKeys = []struct {
	key  ebiten.Key
	flag draw.DrawFlags
}{
	{ebiten.KeyF1, draw.ShapeBit},
	{ebiten.KeyF2, draw.JointBit},
	{ebiten.KeyF3, draw.AABBBit},
	{ebiten.KeyF4, draw.PairBit},
	{ebiten.KeyF5, draw.CenterOfMassBit},
	{ebiten.KeyF6, draw.ParticleBit},
}

// pressed reports a key that went down this frame.
func (g *Game) pressed(k ebiten.Key, current map[ebiten.Key]bool) bool {
	current[k] = ebiten.IsKeyPressed(k)
	return current[k] && !g.prevKeys[k]
}

func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	for _, fk := range flagKeys {
		if g.pressed(fk.key, currentKeys) {
			g.toggleFlag(fk.flag)
		}
	}

	if g.pressed(ebiten.KeyP, currentKeys) {
		g.paused = !g.paused
		g.events.Addf(g.scene.Tick, "sim", "paused=%v", g.paused)
	}
	if g.pressed(ebiten.KeyN, currentKeys) && g.paused {
		g.stepOnce = true
	}
	if g.pressed(ebiten.KeyR, currentKeys) {
		g.scene.Reset()
		g.events.Add(g.scene.Tick, "sim", "reset")
	}
	if g.pressed(ebiten.KeyH, currentKeys) {
		g.showHUD = !g.showHUD
	}
	if g.pressed(ebiten.KeyC, currentKeys) {
		g.copyStats()
	}

	// Camera pan: WASD or arrow keys, 1% of the view per frame.
	const panStep = 0.01
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Pan(0, panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Pan(0, -panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Pan(panStep, 0)
	}

	// Camera zoom: mouse wheel or =/- keys.
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.ZoomBy(math.Pow(1.12, wy))
	}
	if g.pressed(ebiten.KeyEqual, currentKeys) {
		g.camera.ZoomBy(1.25)
	}
	if g.pressed(ebiten.KeyMinus, currentKeys) {
		g.camera.ZoomBy(1 / 1.25)
	}

	g.prevKeys = currentKeys
}

func (g *Game) toggleFlag(f draw.DrawFlags) {
	if g.dd.Flags().Has(f) {
		g.dd.ClearFlags(f)
	} else {
		g.dd.AppendFlags(f)
	}
	g.events.Addf(g.scene.Tick, "draw", "%s", g.dd.Flags())
}

// copyStats puts the stats line on the system clipboard.
func (g *Game) copyStats() {
	if err := setClipboardText(g.statsLine()); err != nil {
		g.events.Addf(g.scene.Tick, "clip", "copy failed: %v", err)
		return
	}
	g.events.Add(g.scene.Tick, "clip", "stats copied")
}
