package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/Garsondee/debugdraw/internal/draw"
	"github.com/Garsondee/debugdraw/internal/testbed"
)

const frameDt = 1.0 / 60

type runStats struct {
	runIndex int
	seed     int64

	frames       *frameLog
	inSensor     int
	contacts     int
	overlapPairs int
	finalTick    int
}

type reportOptions struct {
	runs     int
	frames   int
	seedStep int64
	verbose  bool
}

func (o reportOptions) validate() error {
	var errs []error
	if o.runs <= 0 {
		errs = append(errs, errors.New("-runs must be > 0"))
	}
	if o.frames <= 0 {
		errs = append(errs, errors.New("-frames must be > 0"))
	}
	return errors.Join(errs...)
}

func main() {
	s := testbed.DefaultSettings()
	s.Flags = "all"
	s.BindFlags(flag.CommandLine)

	var opts reportOptions
	flag.IntVar(&opts.runs, "runs", 3, "number of headless runs")
	flag.IntVar(&opts.frames, "frames", 300, "frames rendered per run")
	flag.Int64Var(&opts.seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&opts.verbose, "v", false, "print every frame")
	flag.Parse()

	if err := errors.Join(opts.validate(), s.Validate()); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Draw Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d particles=%d bodies=%d draw=%s\n\n",
		opts.runs, opts.frames, s.Seed, opts.seedStep, s.Particles, s.Bodies, s.DrawFlags())

	all := make([]runStats, 0, opts.runs)
	for i := 0; i < opts.runs; i++ {
		rs := s
		rs.Seed = s.Seed + int64(i)*opts.seedStep
		stats := runScene(i+1, rs, opts.frames)
		all = append(all, stats)
		printRun(stats, opts.verbose)
	}
	printAggregate(all)
}

// runScene steps a scene for frames frames and renders each one into a
// Recorder, as the testbed window would.
func runScene(runIndex int, s testbed.Settings, frames int) runStats {
	sc := testbed.NewScene(s)
	rec := draw.NewRecorder()
	dd := draw.NewDebugDraw(draw.WithTextureFunc(draw.HeadlessTextures), draw.WithTarget(rec))
	dd.SetFlags(s.DrawFlags())
	testbed.NewCamera(sc.Bounds, s.ViewHeight).Apply(dd, s.WindowWidth, s.WindowHeight)

	fl := &frameLog{}
	for f := 1; f <= frames; f++ {
		sc.Step(frameDt)
		rec.Reset()
		sc.Render(dd)
		dd.DrawStringf(6, 4, "frame %d  particles %d", f, sc.ParticleCount())
		fl.record(f, rec, dd.ParticleSprite())
	}

	return runStats{
		runIndex:     runIndex,
		seed:         s.Seed,
		frames:       fl,
		inSensor:     sc.InSensor(),
		contacts:     len(sc.Contacts),
		overlapPairs: len(sc.OverlappingPairs()),
		finalTick:    sc.Tick,
	}
}

func printRun(rs runStats, verbose bool) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if verbose {
		fmt.Print(rs.frames.Format())
	}
	calls, tris := rs.frames.Mean()
	fmt.Printf("per_frame_avg: calls=%.1f triangles=%.1f\n", calls, tris)
	if peak, ok := rs.frames.Peak(); ok {
		fmt.Printf("peak: %s\n", peak)
	}
	split := rs.frames.Filter(func(e frameEntry) bool { return e.Batches > 1 })
	fmt.Printf("split_particle_frames=%d\n", len(split))
	fmt.Printf("final: tick=%d in_sensor=%d floor_contacts=%d aabb_pairs=%d\n\n",
		rs.finalTick, rs.inSensor, rs.contacts, rs.overlapPairs)
}

func printAggregate(all []runStats) {
	var sumCalls, sumTris float64
	peakTris := 0
	totalSensor := 0
	for _, rs := range all {
		c, t := rs.frames.Mean()
		sumCalls += c
		sumTris += t
		if p, ok := rs.frames.Peak(); ok && p.Triangles > peakTris {
			peakTris = p.Triangles
		}
		totalSensor += rs.inSensor
	}
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_frame: calls=%.1f triangles=%.1f\n", avgf(sumCalls, len(all)), avgf(sumTris, len(all)))
	fmt.Printf("peak_triangles=%d avg_in_sensor=%.1f\n", peakTris, avgf(float64(totalSensor), len(all)))
}

func avgf(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
