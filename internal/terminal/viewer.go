// Package terminal renders the portfolio in a terminal: the section content,
// the ambient background, the pointer-following pet and the contact form.
// All view state is owned by one viewer and mutated from its event loop.
package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/arabellachen/portfolio/internal/ambient"
	"github.com/arabellachen/portfolio/internal/companion"
	"github.com/arabellachen/portfolio/internal/contact"
	"github.com/arabellachen/portfolio/internal/content"
	"github.com/arabellachen/portfolio/internal/navigator"
	"github.com/arabellachen/portfolio/internal/schedule"
	"github.com/arabellachen/portfolio/internal/scene"
)

const (
	frameRate      = 30
	taglineEvery   = 3 * time.Second
	contactFields  = 3
	submitFocus    = contactFields
	eventQueueSize = 100
)

// Options configures a terminal session.
type Options struct {
	Poster         contact.Poster
	Mode           scene.Mode
	AcceptLanguage string
	Clock          schedule.Clock
	Logger         hclog.Logger
}

type tabSpan struct {
	section  navigator.Section
	from, to int
}

type viewer struct {
	ctx    context.Context
	screen tcell.Screen
	clock  schedule.Clock
	logger hclog.Logger

	nav   *navigator.Navigator
	layer *ambient.Layer
	pet   *companion.Companion
	flow  *contact.Flow

	about        []string
	notes        []scene.Entity
	notesStarted time.Time
	started      time.Time
	scroll       int
	showPet      bool
	showContact  bool
	focus        int
	mouseDown    bool
	tabs         []tabSpan
	navRow       int

	submissions sync.WaitGroup
}

// Run takes over the terminal until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := newViewer(ctx, screen, opts)
	v.pet.Start()
	defer v.pet.Stop()

	v.run()
	v.submissions.Wait()
	return nil
}

func newViewer(ctx context.Context, screen tcell.Screen, opts Options) *viewer {
	if opts.Clock == nil {
		opts.Clock = schedule.Real()
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}

	petCfg := companion.DefaultConfig()
	petCfg.FPS = frameRate

	v := &viewer{
		ctx:     ctx,
		screen:  screen,
		clock:   opts.Clock,
		logger:  opts.Logger,
		layer:   ambient.NewLayer(opts.Clock, opts.Mode, nil),
		pet:     companion.New(opts.Clock, petCfg),
		flow:    contact.NewFlow(opts.Poster, opts.Clock),
		started: opts.Clock.Now(),
		showPet: true,
	}
	v.nav = navigator.New(func() { v.scroll = 0 })
	_, v.about = content.AboutFor(opts.AcceptLanguage)
	return v
}

func (v *viewer) run() {
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, eventQueueSize)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.draw()
	for {
		select {
		case <-v.ctx.Done():
			return
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-ticker.C:
			v.pet.Step()
			v.draw()
		}
	}
}

// handle applies one input event. It returns false when the user quits.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventKey:
		if v.showContact {
			v.handleFormKey(ev)
			return true
		}
		return v.handleKey(ev)
	}
	return true
}

func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	v.pet.Move(companion.Point{X: float64(x), Y: float64(y)})

	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed && !v.mouseDown {
		v.pet.Click()
		if y == v.navRow {
			for _, tab := range v.tabs {
				if x >= tab.from && x < tab.to {
					v.nav.Select(tab.section)
				}
			}
		}
	}
	v.mouseDown = pressed
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab, tcell.KeyRight:
		v.nav.Next()
	case tcell.KeyBacktab, tcell.KeyLeft:
		v.nav.Prev()
	case tcell.KeyUp:
		v.scrollBy(-1)
	case tcell.KeyDown:
		v.scrollBy(1)
	case tcell.KeyPgUp:
		v.scrollBy(-10)
	case tcell.KeyPgDn:
		v.scrollBy(10)
	case tcell.KeyHome:
		v.scroll = 0
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case '1', '2', '3', '4':
			v.nav.Select(navigator.All()[r-'1'])
		case 'j':
			v.scrollBy(1)
		case 'k':
			v.scrollBy(-1)
		case 'd':
			mode := v.layer.Toggle()
			v.logger.Debug("visual mode switched", "mode", mode)
		case 'n':
			v.toggleMusic()
		case 'p':
			v.showPet = !v.showPet
		case 'c':
			v.showContact = true
			v.focus = 0
		}
	}
	return true
}

// toggleMusic starts or stops the note burst over the interests section.
func (v *viewer) toggleMusic() {
	if v.notes != nil {
		v.notes = nil
		return
	}
	v.notes = scene.GenerateBurst(nil)
	v.notesStarted = v.clock.Now()
}

func (v *viewer) scrollBy(n int) {
	v.scroll += n
	if v.scroll < 0 {
		v.scroll = 0
	}
}

func (v *viewer) handleFormKey(ev *tcell.EventKey) {
	st := v.flow.State()
	form := st.Form
	field := v.fieldPtr(&form)

	switch ev.Key() {
	case tcell.KeyEscape:
		v.showContact = false
		return
	case tcell.KeyTab, tcell.KeyDown:
		v.focus = (v.focus + 1) % (contactFields + 1)
		return
	case tcell.KeyBacktab, tcell.KeyUp:
		v.focus = (v.focus + contactFields) % (contactFields + 1)
		return
	case tcell.KeyEnter:
		if v.focus == submitFocus {
			v.submit(form)
		} else {
			v.focus++
		}
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if field != nil && *field != "" {
			r := []rune(*field)
			*field = string(r[:len(r)-1])
		}
	case tcell.KeyRune:
		if field != nil {
			*field += string(ev.Rune())
		}
	default:
		return
	}
	v.flow.Edit(form)
}

func (v *viewer) fieldPtr(form *contact.Form) *string {
	switch v.focus {
	case 0:
		return &form.Name
	case 1:
		return &form.Email
	case 2:
		return &form.Message
	}
	return nil
}

// submit posts in the background; the loop picks the result up on its next
// frame. The button is inert while a submission is pending.
func (v *viewer) submit(form contact.Form) {
	if v.flow.State().Status == contact.Submitting {
		return
	}
	v.submissions.Add(1)
	go func() {
		defer v.submissions.Done()
		if err := v.flow.Submit(v.ctx, form); err != nil {
			v.logger.Warn("contact submission failed", "error", err)
		}
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
}

func (v *viewer) tagline() string {
	elapsed := v.clock.Now().Sub(v.started)
	return content.Taglines[int(elapsed/taglineEvery)%len(content.Taglines)]
}
