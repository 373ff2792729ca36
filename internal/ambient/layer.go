package ambient

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/arabellachen/portfolio/internal/schedule"
	"github.com/arabellachen/portfolio/internal/scene"
)

// Layer owns the entity set of the active mode. Switching modes throws the
// set away and generates a new one; entities are never patched in place.
type Layer struct {
	mu         sync.Mutex
	clock      schedule.Clock
	src        scene.Source
	mode       scene.Mode
	generation uint64
	entities   []scene.Entity
	started    time.Time
}

// NewLayer generates the entity set for mode. A nil src uses the process
// source.
func NewLayer(clock schedule.Clock, mode scene.Mode, src scene.Source) *Layer {
	l := &Layer{clock: clock, src: src}
	l.regenerate(mode)
	return l
}

func (l *Layer) regenerate(mode scene.Mode) {
	l.mode = mode
	l.entities = scene.GenerateMode(mode, l.src)
	l.generation++
	l.started = l.clock.Now()
}

// SetMode switches to mode. Setting the current mode is a no-op.
func (l *Layer) SetMode(mode scene.Mode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if mode == l.mode {
		return
	}
	l.regenerate(mode)
}

// Toggle flips between dark and light and returns the new mode.
func (l *Layer) Toggle() scene.Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.regenerate(l.mode.Toggle())
	return l.mode
}

func (l *Layer) Mode() scene.Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}

// Generation counts how many entity sets this layer has produced.
func (l *Layer) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}

// Entities returns a copy of the active set.
func (l *Layer) Entities() []scene.Entity {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]scene.Entity, len(l.entities))
	copy(out, l.entities)
	return out
}

// Frames samples every entity at the layer clock. Entities whose sampling
// fails are left out of the result.
func (l *Layer) Frames() []Frame {
	l.mu.Lock()
	entities := l.entities
	elapsed := l.clock.Now().Sub(l.started)
	l.mu.Unlock()

	frames := make([]Frame, 0, len(entities))
	for _, e := range entities {
		if f, ok := safeSample(e, elapsed); ok {
			frames = append(frames, f)
		}
	}
	return frames
}

func safeSample(e scene.Entity, elapsed time.Duration) (f Frame, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return Sample(e, elapsed), true
}

// Style renders e as inline CSS custom properties consumed by the page
// stylesheet's keyframes.
func Style(e scene.Entity) string {
	e = e.Clamp()
	var b strings.Builder
	fmt.Fprintf(&b, "left:%.2f%%;top:%.2f%%;", e.X, e.Y)
	fmt.Fprintf(&b, "--size:%.1fpx;--opacity:%.3f;", e.Size, e.Opacity)
	fmt.Fprintf(&b, "--rotation:%.0fdeg;--dx:%.1fpx;--dy:%.1fpx;", e.Rotation, e.DriftX, e.DriftY)
	fmt.Fprintf(&b, "--delay:%.2fs;", e.Delay.Seconds())
	fmt.Fprintf(&b, "--d-opacity:%.2fs;--d-scale:%.2fs;--d-move:%.2fs", e.Durations.Opacity.Seconds(), e.Durations.Scale.Seconds(), e.Durations.Move.Seconds())
	return b.String()
}
