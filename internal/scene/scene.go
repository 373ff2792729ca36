// Package scene generates the decorative entities drawn behind the portfolio
// content. Generation reads no external state: every value comes from the
// explicit per-kind configuration and the supplied random source.
package scene

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Kind names a family of decorative entities.
type Kind string

const (
	Star     Kind = "star"
	Bubble   Kind = "bubble"
	Cloud    Kind = "cloud"
	Particle Kind = "particle"
	Leaf     Kind = "leaf"
	Note     Kind = "note"
)

// Kinds lists every kind in a stable order.
func Kinds() []Kind {
	return []Kind{Star, Bubble, Cloud, Particle, Leaf, Note}
}

// Mode is the active visual theme.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode accepts "dark" or "light" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Light, fmt.Errorf("unknown mode %q", s)
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Durations holds per-property animation cycle lengths.
type Durations struct {
	Opacity time.Duration `json:"opacity"`
	Scale   time.Duration `json:"scale"`
	Move    time.Duration `json:"move"`
}

// Entity is one immutable decorative element. X and Y are percentages of the
// viewport; Size and Drift are in pixels.
type Entity struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"kind"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Size      float64       `json:"size"`
	Opacity   float64       `json:"opacity"`
	Rotation  float64       `json:"rotation"`
	DriftX    float64       `json:"driftX"`
	DriftY    float64       `json:"driftY"`
	Delay     time.Duration `json:"delay"`
	Durations Durations     `json:"durations"`
}

// Clamp forces every field into its valid range.
func (e Entity) Clamp() Entity {
	e.X = clamp(e.X, 0, 100)
	e.Y = clamp(e.Y, 0, 100)
	e.Opacity = clamp(e.Opacity, 0, 1)
	if e.Size < 0 {
		e.Size = 0
	}
	if e.Delay < 0 {
		e.Delay = 0
	}
	if e.Durations.Opacity < 0 {
		e.Durations.Opacity = 0
	}
	if e.Durations.Scale < 0 {
		e.Durations.Scale = 0
	}
	if e.Durations.Move < 0 {
		e.Durations.Move = 0
	}
	return e
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
