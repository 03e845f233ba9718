// Package testbed hosts a small physics scene in an Ebitengine window and
// renders it through the debug draw layer.
package testbed

import (
	"fmt"
	"image/color"
	"time"

	"github.com/Garsondee/debugdraw/internal/draw"
	"github.com/hajimehoshi/ebiten/v2"
)

// stepDt is the fixed simulation step; ebiten calls Update at 60 TPS.
const stepDt = 1.0 / 60

// hudLineHeight is the spacing of HUD text lines in pixels.
const hudLineHeight = 20

var backgroundColor = color.RGBA{R: 12, G: 14, B: 18, A: 255}

// Game implements ebiten.Game for the testbed.
type Game struct {
	settings Settings
	scene    *Scene
	dd       *draw.DebugDraw
	camera   Camera
	events   *EventLog
	timer    *FrameTimer
	prof     *Profiler

	width  int
	height int

	paused   bool
	stepOnce bool
	showHUD  bool
	prevKeys map[ebiten.Key]bool

	// Draw statistics of the previous frame's scene pass.
	lastCalls     int
	lastVertices  int
	lastTriangles int
}

// New creates a testbed game from validated settings.
func New(s Settings) *Game {
	g := &Game{
		settings: s,
		scene:    NewScene(s),
		dd:       draw.NewDebugDraw(),
		events:   NewEventLog(),
		timer:    NewFrameTimer(),
		prof:     NewProfiler(),
		width:    s.WindowWidth,
		height:   s.WindowHeight,
		showHUD:  s.ShowHUD,
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.camera = NewCamera(g.scene.Bounds, s.ViewHeight)
	g.dd.SetFlags(s.DrawFlags())
	g.events.Addf(0, "sim", "%d particles, %d bodies", g.scene.ParticleCount(), len(g.scene.Bodies))
	return g
}

func (g *Game) Update() error {
	g.prof.ResetFrame()
	g.handleInput()

	if g.paused && !g.stepOnce {
		return nil
	}
	g.stepOnce = false
	defer g.prof.Track("scene.Step")()
	g.scene.Step(stepDt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.timer.Tick(time.Now())
	screen.Fill(backgroundColor)

	counter := draw.Counting(draw.Screen(screen))
	g.dd.Bind(counter)
	g.camera.Apply(g.dd, g.width, g.height)

	stop := g.prof.Track("scene.Render")
	g.scene.Render(g.dd)
	stop()
	g.lastCalls = counter.Calls()
	g.lastVertices = counter.Vertices()
	g.lastTriangles = counter.Triangles()

	if g.showHUD {
		g.drawHUD()
		g.events.Draw(screen, g.width-logPanelWidth, g.height)
	}
}

// drawHUD writes the status lines in screen space.
func (g *Game) drawHUD() {
	lines := g.hudLines()
	for i, l := range lines {
		g.dd.DrawString(6, 4+i*hudLineHeight, l)
	}
}

func (g *Game) hudLines() []string {
	state := "running"
	if g.paused {
		state = "PAUSED"
	}
	return []string{
		fmt.Sprintf("tick %d  %s  %.1f ms (%.0f fps)", g.scene.Tick, state, g.timer.Millis(), g.timer.FPS()),
		g.statsLine(),
		fmt.Sprintf("draw: %s", g.dd.Flags()),
		fmt.Sprintf("cpu: %s", g.prof.TopN(3)),
		"F1-F6 flags  P pause  N step  R reset  C copy  H hud",
	}
}

// statsLine summarises the scene and the last frame's draw calls.
func (g *Game) statsLine() string {
	return fmt.Sprintf("particles %d  in sensor %d  calls %d  verts %d  tris %d  zoom %.2fx",
		g.scene.ParticleCount(), g.scene.InSensor(), g.lastCalls, g.lastVertices, g.lastTriangles, g.camera.Zoom)
}

// Layout follows the window size so the projection stays pixel-exact.
// Ebitengine requires a positive screen, so sizes are at least 1.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	outsideWidth, outsideHeight = max(outsideWidth, 1), max(outsideHeight, 1)
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.events.Addf(g.scene.Tick, "view", "resize %dx%d", outsideWidth, outsideHeight)
	}
	return g.width, g.height
}
