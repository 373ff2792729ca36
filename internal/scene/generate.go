package scene

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// NewSource returns a PCG source seeded from crypto/rand.
func NewSource() (*rand.Rand, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	seed1 := binary.LittleEndian.Uint64(b[:8])
	seed2 := binary.LittleEndian.Uint64(b[8:])
	return rand.New(rand.NewPCG(seed1, seed2)), nil
}

// Range is a closed interval of float64 values.
type Range struct {
	Min, Max float64
}

// Normalize swaps reversed bounds.
func (r Range) Normalize() Range {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	r = r.Normalize()
	return v >= r.Min && v <= r.Max
}

func (r Range) draw(src Source) float64 {
	r = r.Normalize()
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// KindConfig declares the value ranges for one kind. Timing ranges are in
// seconds.
type KindConfig struct {
	Kind            Kind
	Size            Range
	Opacity         Range
	Rotation        Range
	DriftX          Range
	DriftY          Range
	Delay           Range
	OpacityDuration Range
	ScaleDuration   Range
	MoveDuration    Range
}

// durationSpread is the random part of every duration for the background
// kinds; the base parts are 5s, 8s and 15s.
var durationSpread = map[Kind]float64{
	Cloud:    40,
	Star:     8,
	Bubble:   20,
	Particle: 12,
}

func backgroundConfig(kind Kind, size, opacity, drift Range) KindConfig {
	spread := durationSpread[kind]
	return KindConfig{
		Kind:            kind,
		Size:            size,
		Opacity:         opacity,
		DriftX:          drift,
		DriftY:          drift,
		Delay:           Range{0, 5},
		OpacityDuration: Range{5, 5 + spread},
		ScaleDuration:   Range{8, 8 + spread},
		MoveDuration:    Range{15, 15 + spread},
	}
}

// DefaultConfig returns the built-in ranges for kind.
func DefaultConfig(kind Kind) KindConfig {
	switch kind {
	case Star:
		return backgroundConfig(Star, Range{1, 4}, Range{0.2, 0.5}, Range{})
	case Bubble:
		return backgroundConfig(Bubble, Range{10, 90}, Range{0.2, 0.3}, Range{-10, 10})
	case Cloud:
		cfg := backgroundConfig(Cloud, Range{60, 140}, Range{0.08, 0.18}, Range{})
		cfg.DriftX = Range{30, 30}
		return cfg
	case Particle:
		return backgroundConfig(Particle, Range{4, 10}, Range{0.2, 0.3}, Range{-15, 15})
	case Leaf:
		return KindConfig{
			Kind:            Leaf,
			Size:            Range{15, 45},
			Opacity:         Range{0.3, 0.7},
			Rotation:        Range{0, 360},
			DriftX:          Range{-5, 5},
			Delay:           Range{0, 5},
			OpacityDuration: Range{3.75, 10},
			ScaleDuration:   Range{7.5, 20},
			MoveDuration:    Range{15, 40},
		}
	case Note:
		return KindConfig{
			Kind:            Note,
			Size:            Range{6, 18},
			Opacity:         Range{0.15, 0.3},
			Rotation:        Range{0, 360},
			DriftX:          Range{-10, 10},
			Delay:           Range{0, 5},
			OpacityDuration: Range{5, 40.0 / 3},
			ScaleDuration:   Range{5, 40.0 / 3},
			MoveDuration:    Range{15, 40},
		}
	default:
		return KindConfig{Kind: kind}
	}
}

// Music note bursts float up from the corner of the music block while the
// music toggle is on.
const (
	BurstSize     = 5
	BurstStagger  = 200 * time.Millisecond
	BurstDuration = 2 * time.Second
)

// BurstConfig is the note burst shown by the music toggle. Size holds the
// glyph scale and DriftX the horizontal offset in pixels.
func BurstConfig() KindConfig {
	return KindConfig{
		Kind:            Note,
		Size:            Range{0.7, 1.2},
		Opacity:         Range{1, 1},
		Rotation:        Range{-30, 30},
		DriftX:          Range{-20, 20},
		DriftY:          Range{-60, -60},
		OpacityDuration: Range{2, 2},
		ScaleDuration:   Range{2, 2},
		MoveDuration:    Range{2, 2},
	}
}

// GenerateBurst draws a note burst anchored at the top right of its
// container. Notes start BurstStagger apart.
func GenerateBurst(src Source) []Entity {
	notes := Generate(BurstConfig(), BurstSize, src)
	for i := range notes {
		notes[i].ID = fmt.Sprintf("burst-%d", i)
		notes[i].X = 90
		notes[i].Y = 0
		notes[i].Delay = time.Duration(i) * BurstStagger
	}
	return notes
}

// Generate draws n entities of cfg.Kind. n <= 0 yields an empty slice. A nil
// src uses the process-wide source.
func Generate(cfg KindConfig, n int, src Source) []Entity {
	if n <= 0 {
		return []Entity{}
	}
	if src == nil {
		src = globalSource{}
	}

	out := make([]Entity, n)
	for i := range out {
		e := Entity{
			ID:       fmt.Sprintf("%s-%d", cfg.Kind, i),
			Kind:     cfg.Kind,
			X:        src.Float64() * 100,
			Y:        src.Float64() * 100,
			Size:     cfg.Size.draw(src),
			Opacity:  cfg.Opacity.draw(src),
			Rotation: cfg.Rotation.draw(src),
			DriftX:   cfg.DriftX.draw(src),
			DriftY:   cfg.DriftY.draw(src),
			Delay:    seconds(cfg.Delay.draw(src)),
			Durations: Durations{
				Opacity: seconds(cfg.OpacityDuration.draw(src)),
				Scale:   seconds(cfg.ScaleDuration.draw(src)),
				Move:    seconds(cfg.MoveDuration.draw(src)),
			},
		}
		out[i] = e.Clamp()
	}
	return out
}

// Population is how many entities of a kind a mode shows.
type Population struct {
	Kind  Kind
	Count int
}

// Populations lists the entity mix for mode.
func Populations(mode Mode) []Population {
	if mode == Dark {
		return []Population{{Bubble, 8}, {Star, 30}, {Note, 6}}
	}
	return []Population{{Cloud, 5}, {Particle, 12}, {Leaf, 8}, {Note, 6}}
}

// GenerateMode builds the full entity set for mode from the default configs.
func GenerateMode(mode Mode, src Source) []Entity {
	var out []Entity
	for _, p := range Populations(mode) {
		out = append(out, Generate(DefaultConfig(p.Kind), p.Count, src)...)
	}
	return out
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
