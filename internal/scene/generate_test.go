package scene

import (
	"math/rand/v2"
	"testing"
	"time"
)

func inSeconds(d time.Duration, r Range) bool {
	return r.Contains(d.Seconds())
}

func TestGenerateCountsAndBounds(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 2))
	for _, kind := range Kinds() {
		cfg := DefaultConfig(kind)
		for _, n := range []int{0, 1, 7, 50} {
			got := Generate(cfg, n, src)
			if len(got) != n {
				t.Fatalf("%s: len = %d, want %d", kind, len(got), n)
			}
			for _, e := range got {
				if e.Kind != kind {
					t.Fatalf("kind = %q, want %q", e.Kind, kind)
				}
				if e.X < 0 || e.X > 100 || e.Y < 0 || e.Y > 100 {
					t.Fatalf("%s: position (%v, %v) out of [0,100]", e.ID, e.X, e.Y)
				}
				if !cfg.Size.Contains(e.Size) {
					t.Fatalf("%s: size %v outside %v", e.ID, e.Size, cfg.Size)
				}
				if !cfg.Opacity.Contains(e.Opacity) {
					t.Fatalf("%s: opacity %v outside %v", e.ID, e.Opacity, cfg.Opacity)
				}
				if !inSeconds(e.Delay, cfg.Delay) {
					t.Fatalf("%s: delay %v outside %v", e.ID, e.Delay, cfg.Delay)
				}
				if !inSeconds(e.Durations.Opacity, cfg.OpacityDuration) ||
					!inSeconds(e.Durations.Scale, cfg.ScaleDuration) ||
					!inSeconds(e.Durations.Move, cfg.MoveDuration) {
					t.Fatalf("%s: durations %+v outside config", e.ID, e.Durations)
				}
			}
		}
	}
}

func TestGenerateNonPositiveCountIsEmpty(t *testing.T) {
	for _, n := range []int{0, -3} {
		got := Generate(DefaultConfig(Star), n, nil)
		if got == nil || len(got) != 0 {
			t.Fatalf("Generate(n=%d) = %#v, want empty slice", n, got)
		}
	}
}

func TestGenerateIDsAreUniqueWithinKind(t *testing.T) {
	got := Generate(DefaultConfig(Bubble), 8, nil)
	seen := make(map[string]bool)
	for _, e := range got {
		if seen[e.ID] {
			t.Fatalf("duplicate id %q", e.ID)
		}
		seen[e.ID] = true
	}
	if got[0].ID != "bubble-0" {
		t.Fatalf("first id = %q, want bubble-0", got[0].ID)
	}
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestGenerateClampsOutOfRangeSource(t *testing.T) {
	got := Generate(DefaultConfig(Star), 3, fixedSource(1.5))
	for _, e := range got {
		if e.X != 100 || e.Y != 100 {
			t.Fatalf("position = (%v, %v), want clamped to 100", e.X, e.Y)
		}
		if e.Opacity > 1 {
			t.Fatalf("opacity = %v, want <= 1", e.Opacity)
		}
	}
}

func TestGenerateNormalizesReversedRanges(t *testing.T) {
	cfg := KindConfig{Kind: Particle, Size: Range{10, 4}}
	for _, e := range Generate(cfg, 20, rand.New(rand.NewPCG(3, 4))) {
		if e.Size < 4 || e.Size > 10 {
			t.Fatalf("size %v outside normalized [4,10]", e.Size)
		}
	}
}

func TestGenerateModePopulations(t *testing.T) {
	cases := map[Mode]map[Kind]int{
		Dark:  {Bubble: 8, Star: 30, Note: 6},
		Light: {Cloud: 5, Particle: 12, Leaf: 8, Note: 6},
	}
	for mode, want := range cases {
		counts := make(map[Kind]int)
		for _, e := range GenerateMode(mode, nil) {
			counts[e.Kind]++
		}
		if len(counts) != len(want) {
			t.Fatalf("%s: kinds = %v, want %v", mode, counts, want)
		}
		for kind, n := range want {
			if counts[kind] != n {
				t.Fatalf("%s: %s count = %d, want %d", mode, kind, counts[kind], n)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(" Dark "); err != nil || m != Dark {
		t.Fatalf("ParseMode(Dark) = %v, %v", m, err)
	}
	if m, err := ParseMode("light"); err != nil || m != Light {
		t.Fatalf("ParseMode(light) = %v, %v", m, err)
	}
	if _, err := ParseMode("sepia"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Fatal("Toggle did not flip mode")
	}
}

func TestNewSource(t *testing.T) {
	src, err := NewSource()
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if v := src.Float64(); v < 0 || v >= 1 {
		t.Fatalf("Float64 = %v, want [0,1)", v)
	}
}

func TestGenerateBurst(t *testing.T) {
	notes := GenerateBurst(rand.New(rand.NewPCG(5, 6)))
	if len(notes) != BurstSize {
		t.Fatalf("got %d notes, want %d", len(notes), BurstSize)
	}
	cfg := BurstConfig()
	for i, n := range notes {
		if n.Kind != Note {
			t.Errorf("%s: kind %s, want note", n.ID, n.Kind)
		}
		if want := time.Duration(i) * BurstStagger; n.Delay != want {
			t.Errorf("%s: delay %v, want %v", n.ID, n.Delay, want)
		}
		if !cfg.Size.Contains(n.Size) || !cfg.Rotation.Contains(n.Rotation) || !cfg.DriftX.Contains(n.DriftX) {
			t.Errorf("%s: scale %v rotation %v offset %v out of range", n.ID, n.Size, n.Rotation, n.DriftX)
		}
		if n.X != 90 || n.Y != 0 {
			t.Errorf("%s: anchored at (%v,%v), want (90,0)", n.ID, n.X, n.Y)
		}
	}
}

func TestDefaultDelaysStartWithinFiveSeconds(t *testing.T) {
	for _, k := range Kinds() {
		if hi := DefaultConfig(k).Delay.Normalize().Max; hi > 5 {
			t.Errorf("%s: delay max %v, want <= 5s", k, hi)
		}
	}
}
