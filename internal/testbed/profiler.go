package testbed

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Profiler accumulates named CPU timings over one frame. It is owned by the
// game loop goroutine.
type Profiler struct {
	totals map[string]time.Duration
	now    func() time.Time
}

// NewProfiler returns an empty profiler using the wall clock.
func NewProfiler() *Profiler {
	return &Profiler{totals: make(map[string]time.Duration), now: time.Now}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer p.Track("scene.Step")()
func (p *Profiler) Track(name string) func() {
	start := p.now()
	return func() {
		p.totals[name] += p.now().Sub(start)
	}
}

// ResetFrame clears the per-frame totals.
func (p *Profiler) ResetFrame() {
	clear(p.totals)
}

// Snapshot returns a copy of the current totals.
func (p *Profiler) Snapshot() map[string]time.Duration {
	out := make(map[string]time.Duration, len(p.totals))
	for k, v := range p.totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals, largest first.
// Example: "scene.Render:4.2ms, scene.Step:2.1ms"
func (p *Profiler) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(p.totals))
	for k, v := range p.totals {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", e.name, float64(e.dur.Microseconds())/1000))
	}
	return strings.Join(parts, ", ")
}
