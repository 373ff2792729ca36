// Package companion implements the pointer-following pet: a small mood
// machine driven by pointer activity, an independent blink, and a spring that
// trails the pointer.
package companion

import (
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/arabellachen/portfolio/internal/schedule"
)

// Mood is the pet's behavioral state.
type Mood int

const (
	Normal Mood = iota
	Happy
	Sleepy
)

func (m Mood) String() string {
	switch m {
	case Happy:
		return "happy"
	case Sleepy:
		return "sleepy"
	default:
		return "normal"
	}
}

// Config holds the timing and spring parameters.
type Config struct {
	HappyFor   time.Duration // click → back to normal
	IdleAfter  time.Duration // no movement for longer than this → sleepy
	IdleCheck  time.Duration
	BlinkEvery time.Duration
	BlinkFor   time.Duration

	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultConfig returns the standard pet timings and spring.
func DefaultConfig() Config {
	return Config{
		HappyFor:   time.Second,
		IdleAfter:  5 * time.Second,
		IdleCheck:  time.Second,
		BlinkEvery: 3 * time.Second,
		BlinkFor:   200 * time.Millisecond,
		FPS:        60,
		Frequency:  14.1,
		Damping:    0.88,
	}
}

// Point is a pointer or pet position.
type Point struct {
	X, Y float64
}

// Offscreen is where the pet waits before the first pointer event.
var Offscreen = Point{X: -100, Y: -100}

// Companion is safe for concurrent use. Timer callbacks and event methods
// serialize on one lock; a newer transition always wins over a stale timer.
type Companion struct {
	mu    sync.Mutex
	cfg   Config
	clock schedule.Clock

	mood      Mood
	blinking  bool
	lastMoved time.Time
	running   bool

	revert  *schedule.Slot
	idle    *schedule.Slot
	blink   *schedule.Slot
	unblink *schedule.Slot

	spring   harmonica.Spring
	target   Point
	pos      Point
	velocity Point
}

// New returns a stopped companion in the normal mood.
func New(clock schedule.Clock, cfg Config) *Companion {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	c := &Companion{
		cfg:       cfg,
		clock:     clock,
		lastMoved: clock.Now(),
		spring:    harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		target:    Offscreen,
		pos:       Offscreen,
	}
	c.revert = schedule.NewSlot(clock, &c.mu)
	c.idle = schedule.NewSlot(clock, &c.mu)
	c.blink = schedule.NewSlot(clock, &c.mu)
	c.unblink = schedule.NewSlot(clock, &c.mu)
	return c
}

// Start begins the idle check and blink timers.
func (c *Companion) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.lastMoved = c.clock.Now()
	c.idle.Repeat(c.cfg.IdleCheck, c.checkIdle)
	c.blink.Repeat(c.cfg.BlinkEvery, func() {
		c.blinking = true
		c.unblink.Schedule(c.cfg.BlinkFor, func() { c.blinking = false })
	})
}

// Stop cancels every pending timer.
func (c *Companion) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.revert.Cancel()
	c.idle.Cancel()
	c.blink.Cancel()
	c.unblink.Cancel()
	c.blinking = false
}

// Move records pointer movement to p.
func (c *Companion) Move(p Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = p
	c.lastMoved = c.clock.Now()
	if c.mood == Sleepy {
		c.setMood(Normal)
	}
}

// Click makes the pet happy for HappyFor.
func (c *Companion) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setMood(Happy)
	c.revert.Schedule(c.cfg.HappyFor, func() { c.mood = Normal })
}

func (c *Companion) checkIdle() {
	if c.mood == Sleepy {
		return
	}
	if c.clock.Now().Sub(c.lastMoved) > c.cfg.IdleAfter {
		c.setMood(Sleepy)
	}
}

// setMood applies a transition and drops any pending happy revert.
func (c *Companion) setMood(m Mood) {
	c.revert.Cancel()
	c.mood = m
}

func (c *Companion) Mood() Mood {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mood
}

func (c *Companion) Blinking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blinking
}

// Step advances the follow spring by one frame and returns the new position.
func (c *Companion) Step() Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos.X, c.velocity.X = c.spring.Update(c.pos.X, c.velocity.X, c.target.X)
	c.pos.Y, c.velocity.Y = c.spring.Update(c.pos.Y, c.velocity.Y, c.target.Y)
	return c.pos
}

// Position is the last stepped position.
func (c *Companion) Position() Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// Target is the latest pointer position.
func (c *Companion) Target() Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}
