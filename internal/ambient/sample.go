// Package ambient drives the non-interactive background motion. Every entity
// loops forever over its own durations; nothing here reads or changes
// application state.
package ambient

import (
	"math"
	"time"

	"github.com/arabellachen/portfolio/internal/scene"
)

// particleSpin is the fixed rotation period of particles.
const particleSpin = 40 * time.Second

// Frame is the sampled visual state of one entity. X and Y are viewport
// percentages including motion; OffsetX and OffsetY are pixel offsets.
type Frame struct {
	ID       string
	Kind     scene.Kind
	X, Y     float64
	OffsetX  float64
	OffsetY  float64
	Size     float64
	Opacity  float64
	Scale    float64
	Rotation float64
}

// phase returns the position in [0,1) within a loop of length period.
func phase(elapsed, period time.Duration) float64 {
	if period <= 0 || elapsed <= 0 {
		return 0
	}
	return float64(elapsed%period) / float64(period)
}

// wave eases 0 → 1 → 0 over one phase.
func wave(p float64) float64 {
	return (1 - math.Cos(2*math.Pi*p)) / 2
}

// easeOut decelerates 0 → 1 over one phase.
func easeOut(p float64) float64 {
	return 1 - (1-p)*(1-p)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func scaled(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

// Sample computes e's frame at elapsed time since its loop set started.
// Motion begins once the entity's delay has passed.
func Sample(e scene.Entity, elapsed time.Duration) Frame {
	e = e.Clamp()
	f := Frame{
		ID:      e.ID,
		Kind:    e.Kind,
		X:       e.X,
		Y:       e.Y,
		Size:    e.Size,
		Opacity: e.Opacity,
		Scale:   1,
	}

	t := elapsed - e.Delay
	if t < 0 {
		t = 0
	}
	d := e.Durations

	switch e.Kind {
	case scene.Star:
		f.Opacity = lerp(e.Opacity, e.Opacity*1.5, wave(phase(t, d.Opacity)))
		f.Scale = lerp(1, 1.1, wave(phase(t, scaled(d.Opacity, 0.5))))
	case scene.Bubble:
		f.OffsetX = e.DriftX * wave(phase(t, d.Move))
		f.OffsetY = e.DriftY * wave(phase(t, scaled(d.Move, 1.2)))
		f.Scale = lerp(1, 1.03, wave(phase(t, d.Scale)))
	case scene.Cloud:
		f.OffsetX = e.DriftX * wave(phase(t, d.Move))
	case scene.Particle:
		f.OffsetX = e.DriftX * wave(phase(t, d.Move))
		f.OffsetY = e.DriftY * wave(phase(t, scaled(d.Move, 1.3)))
		f.Opacity = lerp(e.Opacity, e.Opacity+0.1, wave(phase(t, d.Opacity)))
		f.Rotation = 360 * phase(elapsed, particleSpin)
	case scene.Leaf:
		f.Y = 100 * phase(t, d.Move)
		f.Rotation = 360 * phase(elapsed, scaled(d.Move, 0.5))
		f.X = e.X + e.DriftX*wave(phase(elapsed, scaled(d.Move, 0.25)))
	case scene.Note:
		f.Y = e.Y - 50*easeOut(phase(t, scaled(d.Move, 0.5)))
		f.Rotation = e.Rotation * phase(elapsed, scaled(d.Move, 1.0/3))
		f.OffsetX = e.DriftX * wave(phase(elapsed, scaled(d.Move, 1.0/3)))
	}
	return f.clamp()
}

func (f Frame) clamp() Frame {
	f.X = clampRange(f.X, 0, 100)
	f.Y = clampRange(f.Y, 0, 100)
	f.Opacity = clampRange(f.Opacity, 0, 1)
	if !(f.Scale > 0) {
		f.Scale = 1
	}
	if math.IsNaN(f.OffsetX) || math.IsInf(f.OffsetX, 0) {
		f.OffsetX = 0
	}
	if math.IsNaN(f.OffsetY) || math.IsInf(f.OffsetY, 0) {
		f.OffsetY = 0
	}
	return f
}

func clampRange(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// SampleBurst computes a music-note burst frame. Each note fades in over the
// first fifth of scene.BurstDuration, rises 55px while fading out, and starts
// over for as long as the burst is shown. Notes are invisible until their
// stagger delay has passed.
func SampleBurst(e scene.Entity, elapsed time.Duration) Frame {
	f := Frame{
		ID:      e.ID,
		Kind:    e.Kind,
		X:       e.X,
		Y:       e.Y,
		Size:    e.Size,
		Scale:   e.Size,
		OffsetX: e.DriftX,
	}
	t := elapsed - e.Delay
	if t < 0 {
		return f.clamp()
	}

	p := phase(t, scene.BurstDuration)
	if p < 0.2 {
		f.Opacity = p / 0.2
	} else {
		f.Opacity = 1 - (p-0.2)/0.8
	}
	f.OffsetY = lerp(-5, -60, easeOut(p))
	tilt := 20.0
	if e.Rotation < 0 {
		tilt = -20
	}
	f.Rotation = e.Rotation + tilt*p
	return f.clamp()
}
