package testbed

import (
	"errors"
	"flag"
	"fmt"

	"github.com/Garsondee/debugdraw/internal/draw"
)

// Settings configures the testbed scene and window.
type Settings struct {
	WindowWidth    int
	WindowHeight   int
	Particles      int     // particle count
	ParticleRadius float64 // world units
	Bodies         int     // dynamic bodies
	Seed           int64
	Gravity        float64 // world units/s², negative is down
	ViewHeight     float64 // visible world height at zoom 1
	Flags          string  // draw categories, e.g. "shape|particle"
	ShowHUD        bool
}

// DefaultSettings returns the settings the testbed starts with.
func DefaultSettings() Settings {
	return Settings{
		WindowWidth:    1280,
		WindowHeight:   720,
		Particles:      2000,
		ParticleRadius: 0.15,
		Bodies:         8,
		Seed:           42,
		Gravity:        -10,
		ViewHeight:     34,
		Flags:          "shape|joint|com|particle",
		ShowHUD:        true,
	}
}

// BindFlags registers every setting on fs, using the current values as
// defaults.
func (s *Settings) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&s.WindowWidth, "width", s.WindowWidth, "window width in pixels")
	fs.IntVar(&s.WindowHeight, "height", s.WindowHeight, "window height in pixels")
	fs.IntVar(&s.Particles, "particles", s.Particles, "number of particles")
	fs.Float64Var(&s.ParticleRadius, "radius", s.ParticleRadius, "particle radius in world units")
	fs.IntVar(&s.Bodies, "bodies", s.Bodies, "number of dynamic bodies")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "RNG seed for the scene layout")
	fs.Float64Var(&s.Gravity, "gravity", s.Gravity, "vertical gravity in world units/s^2")
	fs.Float64Var(&s.ViewHeight, "view", s.ViewHeight, "visible world height at zoom 1")
	fs.StringVar(&s.Flags, "draw", s.Flags, "draw categories: shape|joint|aabb|pair|com|particle or all")
	fs.BoolVar(&s.ShowHUD, "hud", s.ShowHUD, "show the HUD")
}

// Validate reports every invalid setting.
func (s Settings) Validate() error {
	var errs []error
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.WindowWidth, s.WindowHeight))
	}
	if s.Particles < 0 {
		errs = append(errs, fmt.Errorf("particles must be >= 0, got %d", s.Particles))
	}
	if s.ParticleRadius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be > 0, got %g", s.ParticleRadius))
	}
	if s.Bodies < 0 {
		errs = append(errs, fmt.Errorf("bodies must be >= 0, got %d", s.Bodies))
	}
	if s.ViewHeight <= 0 {
		errs = append(errs, fmt.Errorf("view must be > 0, got %g", s.ViewHeight))
	}
	return errors.Join(errs...)
}

// DrawFlags parses the Flags field.
func (s Settings) DrawFlags() draw.DrawFlags {
	return draw.ParseDrawFlags(s.Flags)
}
