// Package navigator tracks which portfolio section is on screen.
package navigator

import (
	"strings"
	"sync"
)

// Section is one of the mutually exclusive content views.
type Section string

const (
	About      Section = "about"
	Experience Section = "experience"
	Projects   Section = "projects"
	Interests  Section = "interests"
)

// All returns the sections in navigation order.
func All() []Section {
	return []Section{About, Experience, Projects, Interests}
}

// Parse maps a navigation name to its section.
func Parse(name string) (Section, bool) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range All() {
		if s == known {
			return s, true
		}
	}
	return About, false
}

// Title is the navigation label.
func (s Section) Title() string {
	switch s {
	case Experience:
		return "Experience & Skills"
	case Projects:
		return "Projects & Education"
	case Interests:
		return "Interests"
	default:
		return "About"
	}
}

// Navigator holds the current section. The zero value is not usable; call New.
type Navigator struct {
	mu        sync.Mutex
	current   Section
	scrollTop func()
}

// New starts on About. scrollTop runs whenever the section changes and may be
// nil.
func New(scrollTop func()) *Navigator {
	return &Navigator{current: About, scrollTop: scrollTop}
}

// Select makes s the current section. Selecting the current section again
// changes nothing.
func (n *Navigator) Select(s Section) {
	n.mu.Lock()
	changed := n.current != s
	n.current = s
	hook := n.scrollTop
	n.mu.Unlock()

	if changed && hook != nil {
		hook()
	}
}

// Next moves to the following section, wrapping around.
func (n *Navigator) Next() Section {
	return n.step(1)
}

// Prev moves to the preceding section, wrapping around.
func (n *Navigator) Prev() Section {
	return n.step(-1)
}

func (n *Navigator) step(delta int) Section {
	all := All()
	cur := n.Current()
	idx := 0
	for i, s := range all {
		if s == cur {
			idx = i
		}
	}
	next := all[(idx+delta+len(all))%len(all)]
	n.Select(next)
	return next
}

func (n *Navigator) Current() Section {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Pick returns the block registered for the current section, or the zero
// value when there is none.
func Pick[T any](n *Navigator, blocks map[Section]T) T {
	return blocks[n.Current()]
}
