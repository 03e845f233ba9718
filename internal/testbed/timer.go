package testbed

import "time"

// FrameTimer smooths the frame time with a 1/31 exponential average,
// starting from 16ms.
type FrameTimer struct {
	last     time.Time
	smoothed float64 // milliseconds
}

// NewFrameTimer returns a timer primed at 16ms.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{smoothed: 16}
}

// Tick records a frame at now and returns the smoothed frame time in ms.
// The first tick only sets the reference time.
func (ft *FrameTimer) Tick(now time.Time) float64 {
	if !ft.last.IsZero() {
		delta := float64(now.Sub(ft.last).Microseconds()) / 1000
		ft.smoothed = (ft.smoothed*30 + delta) / 31
	}
	ft.last = now
	return ft.smoothed
}

// Millis returns the smoothed frame time.
func (ft *FrameTimer) Millis() float64 {
	return ft.smoothed
}

// FPS returns the frame rate implied by the smoothed frame time.
func (ft *FrameTimer) FPS() float64 {
	if ft.smoothed <= 0 {
		return 0
	}
	return 1000 / ft.smoothed
}
