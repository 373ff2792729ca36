// Package schedule provides cancellable delayed tasks for the view state
// machines. A Slot holds at most one pending task: scheduling again replaces
// the previous task, and a task that was replaced never runs.
package schedule

import (
	"sync"
	"time"
)

// Task is a pending callback.
type Task interface {
	Stop() bool
}

// Clock reports time and runs callbacks after a delay.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Task
}

type realClock struct{}

// Real returns the wall clock backed by time.AfterFunc.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}

// Slot is a single pending task guarded by its owner's lock.
//
// Schedule, Repeat and Cancel must be called with guard held. Callbacks run
// with guard held, after checking that no newer Schedule or Cancel happened
// in the meantime.
type Slot struct {
	clock Clock
	guard sync.Locker
	gen   uint64
	task  Task
}

// NewSlot returns an empty slot.
func NewSlot(clock Clock, guard sync.Locker) *Slot {
	return &Slot{clock: clock, guard: guard}
}

// Schedule runs f after d, replacing any pending task.
func (s *Slot) Schedule(d time.Duration, f func()) {
	s.stop()
	gen := s.gen
	s.task = s.clock.AfterFunc(d, func() {
		s.guard.Lock()
		defer s.guard.Unlock()
		if s.gen != gen {
			return
		}
		s.task = nil
		f()
	})
}

// Repeat runs f every d until the slot is cancelled or rescheduled.
func (s *Slot) Repeat(d time.Duration, f func()) {
	var tick func()
	tick = func() {
		f()
		s.Schedule(d, tick)
	}
	s.Schedule(d, tick)
}

// Cancel drops the pending task, if any.
func (s *Slot) Cancel() {
	s.stop()
}

// Pending reports whether a task is waiting to run.
func (s *Slot) Pending() bool {
	return s.task != nil
}

func (s *Slot) stop() {
	s.gen++
	if s.task != nil {
		s.task.Stop()
		s.task = nil
	}
}
