package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/arabellachen/portfolio/internal/ambient"
	"github.com/arabellachen/portfolio/internal/companion"
	"github.com/arabellachen/portfolio/internal/contact"
	"github.com/arabellachen/portfolio/internal/content"
	"github.com/arabellachen/portfolio/internal/navigator"
	"github.com/arabellachen/portfolio/internal/scene"
)

// Approximate pixel size of a terminal cell, used to turn pixel drift into
// cells.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
	bodyTop    = 4
	panelWidth = 42
)

type palette struct {
	base    tcell.Style
	accent  tcell.Style
	muted   tcell.Style
	ambient func(opacity float64) tcell.Style
}

func paletteFor(mode scene.Mode) palette {
	if mode == scene.Dark {
		bg := tcell.NewRGBColor(17, 24, 39)
		base := tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(243, 244, 246))
		return palette{
			base:   base,
			accent: base.Foreground(tcell.NewRGBColor(192, 132, 252)).Bold(true),
			muted:  base.Foreground(tcell.NewRGBColor(156, 163, 175)),
			ambient: func(o float64) tcell.Style {
				c := int32(60 + 195*o)
				return base.Foreground(tcell.NewRGBColor(c, c, c))
			},
		}
	}
	bg := tcell.NewRGBColor(250, 245, 255)
	base := tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(31, 41, 55))
	return palette{
		base:   base,
		accent: base.Foreground(tcell.NewRGBColor(109, 40, 217)).Bold(true),
		muted:  base.Foreground(tcell.NewRGBColor(107, 114, 128)),
		ambient: func(o float64) tcell.Style {
			c := int32(250 - 120*o)
			return base.Foreground(tcell.NewRGBColor(c, c-30, 255))
		},
	}
}

var glyphs = map[scene.Kind]rune{
	scene.Star:     '·',
	scene.Bubble:   'o',
	scene.Cloud:    '~',
	scene.Particle: '•',
	scene.Leaf:     '*',
	scene.Note:     '♪',
}

type line struct {
	text  string
	style tcell.Style
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (v *viewer) draw() {
	s := v.screen
	w, h := s.Size()
	p := paletteFor(v.layer.Mode())

	s.SetStyle(p.base)
	s.Clear()

	v.drawAmbient(w, h, p)
	v.drawHeader(w, p)
	v.drawBody(w, h, p)
	if v.notes != nil && v.nav.Current() == navigator.Interests {
		v.drawNotes(w, p)
	}
	if v.showContact {
		v.drawContact(w, p)
	}
	if v.showPet {
		v.drawPet(p)
	}
	drawText(s, 1, h-1, "1-4/tab sections  j/k scroll  home top  d theme  n music  p pet  c contact  q quit", p.muted)
	s.Show()
}

func (v *viewer) drawAmbient(w, h int, p palette) {
	for _, f := range v.layer.Frames() {
		x := int(f.X/100*float64(w-1) + f.OffsetX/cellWidth)
		y := int(f.Y/100*float64(h-1) + f.OffsetY/cellHeight)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		v.screen.SetContent(x, y, glyphFor(f), nil, p.ambient(f.Opacity))
	}
}

func glyphFor(f ambient.Frame) rune {
	if g, ok := glyphs[f.Kind]; ok {
		return g
	}
	return '.'
}

func (v *viewer) drawHeader(w int, p palette) {
	x := drawText(v.screen, 1, 0, content.Owner, p.accent)
	drawText(v.screen, x+2, 0, v.tagline(), p.muted)

	mode := "☾ dark"
	if v.layer.Mode() == scene.Light {
		mode = "☀ light"
	}
	drawText(v.screen, w-runewidth.StringWidth(mode)-1, 0, mode, p.muted)

	v.navRow = 2
	v.tabs = v.tabs[:0]
	x = 1
	current := v.nav.Current()
	for i, sec := range navigator.All() {
		label := fmt.Sprintf(" %d %s ", i+1, sec.Title())
		style := p.base
		if sec == current {
			style = p.accent.Reverse(true)
		}
		end := drawText(v.screen, x, v.navRow, label, style)
		v.tabs = append(v.tabs, tabSpan{section: sec, from: x, to: end})
		x = end + 1
	}
}

func (v *viewer) drawBody(w, h int, p palette) {
	width := w - 4
	if v.showContact {
		width -= panelWidth + 1
	}
	lines := sectionLines(v.nav.Current(), v.about, width, p)

	rows := h - bodyTop - 2
	if rows < 1 {
		return
	}
	maxScroll := len(lines) - rows
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.scroll > maxScroll {
		v.scroll = maxScroll
	}
	for i := 0; i < rows && v.scroll+i < len(lines); i++ {
		l := lines[v.scroll+i]
		drawText(v.screen, 2, bodyTop+i, l.text, l.style)
	}
}

func (v *viewer) drawContact(w int, p palette) {
	x0 := w - panelWidth - 1
	if x0 < 0 {
		x0 = 0
	}
	st := v.flow.State()
	y := bodyTop
	drawText(v.screen, x0, y, "Contact Me", p.accent)
	y += 2

	switch st.Status {
	case contact.Submitted:
		for _, l := range wrap(st.Message, panelWidth-2) {
			drawText(v.screen, x0, y, l, p.base.Foreground(tcell.NewRGBColor(22, 163, 74)))
			y++
		}
		y++
	case contact.Failed:
		for _, l := range wrap(st.Message, panelWidth-2) {
			drawText(v.screen, x0, y, l, p.base.Foreground(tcell.NewRGBColor(220, 38, 38)))
			y++
		}
		y++
	}

	fields := []struct{ label, value string }{
		{"Your Name", st.Form.Name},
		{"Your Email", st.Form.Email},
		{"Your Message", st.Form.Message},
	}
	for i, f := range fields {
		drawText(v.screen, x0, y, f.label, p.muted)
		style := p.base.Underline(true)
		if v.focus == i {
			style = style.Reverse(true)
		}
		value := runewidth.Truncate(f.value, panelWidth-2, "…")
		drawText(v.screen, x0, y+1, runewidth.FillRight(value, panelWidth-2), style)
		y += 3
	}

	button := "[ Send Message ]"
	if st.Status == contact.Submitting {
		button = "[ Sending... ]"
	}
	style := p.accent
	if v.focus == submitFocus {
		style = style.Reverse(true)
	}
	drawText(v.screen, x0, y, button, style)
}

var noteGlyphs = []rune{'♪', '♫', '♬', '♩', '♭', '♮'}

// drawNotes floats the music burst up from the top right of the body.
func (v *viewer) drawNotes(w int, p palette) {
	right := w - 4
	if v.showContact {
		right -= panelWidth + 1
	}
	elapsed := v.clock.Now().Sub(v.notesStarted)
	for i, n := range v.notes {
		f := ambient.SampleBurst(n, elapsed)
		if f.Opacity < 0.05 {
			continue
		}
		x := right + int(f.OffsetX/cellWidth)
		y := bodyTop + 5 + int(f.OffsetY/cellHeight)
		if x < 0 || y < bodyTop {
			continue
		}
		v.screen.SetContent(x, y, noteGlyphs[i%len(noteGlyphs)], nil, p.accent)
	}
}

// petFace renders the pet for its mood; blinking closes the eyes.
func petFace(m companion.Mood, blinking bool) string {
	switch {
	case m == companion.Sleepy:
		return "(-ω-)zZ"
	case m == companion.Happy:
		return "(^ω^)♪"
	case blinking:
		return "(-ω-)"
	default:
		return "(•ω•)"
	}
}

func (v *viewer) drawPet(p palette) {
	pos := v.pet.Position()
	face := petFace(v.pet.Mood(), v.pet.Blinking())
	x := int(pos.X) - runewidth.StringWidth(face)/2
	y := int(pos.Y)
	w, h := v.screen.Size()
	if y < 0 || y >= h || x >= w {
		return
	}
	if x < 0 {
		x = 0
	}
	drawText(v.screen, x, y, face, p.accent)
}

func sectionLines(section navigator.Section, about []string, width int, p palette) []line {
	var out []line
	heading := func(s string) {
		if len(out) > 0 {
			out = append(out, line{})
		}
		out = append(out, line{s, p.accent})
	}
	para := func(s string, style tcell.Style, indent string) {
		for _, l := range wrap(s, width-runewidth.StringWidth(indent)) {
			out = append(out, line{indent + l, style})
		}
	}

	switch section {
	case navigator.About:
		heading("About Me")
		for i, a := range about {
			if i > 0 {
				out = append(out, line{})
			}
			para(a, p.base, "")
		}
		heading(content.GalleryTitle)
		para(content.GalleryIntro, p.muted, "")
		for _, ph := range content.Photos {
			para("▣ "+ph.Caption, p.base, "  ")
		}
	case navigator.Experience:
		heading("Experience")
		for _, j := range content.Jobs {
			out = append(out, line{})
			para(j.Title+" · "+j.Company, p.base.Bold(true), "")
			para(j.Location+" · "+j.Period, p.muted, "")
			for _, r := range j.Responsibilities {
				para("• "+r, p.base, "  ")
			}
		}
		heading("Skills")
		for _, sk := range content.Skills {
			bar := strings.Repeat("█", sk.Percent/10) + strings.Repeat("░", 10-sk.Percent/10)
			out = append(out, line{fmt.Sprintf("%-18s %s %3d%%", sk.Name, bar, sk.Percent), p.base})
		}
		for _, g := range content.SkillGroups {
			para(g.Title+": "+strings.Join(g.Skills, ", "), p.base, "")
		}
	case navigator.Projects:
		heading("Projects")
		for _, pr := range content.Projects {
			out = append(out, line{})
			para(pr.Title, p.base.Bold(true), "")
			para(pr.Description, p.base, "")
			para(strings.Join(pr.Tags, " · "), p.muted, "")
		}
		heading("Education")
		para(content.School.Degree, p.base.Bold(true), "")
		para(content.School.Institution+" · "+content.School.Period, p.muted, "")
		para(strings.Join(content.School.Courses, " · "), p.base, "")
		for _, a := range content.School.Activities {
			para("• "+a, p.base, "  ")
		}
	case navigator.Interests:
		heading("Music")
		para("[n] toggle music", p.muted, "")
		for _, s := range content.Songs {
			para(fmt.Sprintf("%s (%d) · %s", s.Name, s.Year, s.Description), p.base, "  ")
		}
		heading("Nature")
		for _, pl := range content.Places {
			para(pl.Name+", "+pl.Location+" · "+pl.Description, p.base, "  ")
		}
		heading("Food")
		for _, f := range content.Foods {
			para(f.Name+" ("+f.Type+") · "+f.Favorite, p.base, "  ")
		}
		heading("Quant Finance")
		para(content.Finance.Summary, p.base, "")
		out = append(out, line{"Areas of Interest", p.base.Bold(true)})
		for _, a := range content.Finance.Areas {
			para("• "+a, p.base, "  ")
		}
		out = append(out, line{"Books & Resources I Love", p.base.Bold(true)})
		for _, b := range content.Finance.Books {
			para("• "+b, p.base, "  ")
		}
		para(content.Finance.Quote, p.muted, "")
	}
	return out
}

// wrap breaks text into lines no wider than width cells. Words wider than a
// line, such as unspaced CJK runs, are split by rune.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		if curW > 0 {
			lines = append(lines, cur.String())
		}
		cur.Reset()
		curW = 0
	}

	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		if ww > width {
			flush()
			for _, r := range word {
				rw := runewidth.RuneWidth(r)
				if curW+rw > width {
					flush()
				}
				cur.WriteRune(r)
				curW += rw
			}
			continue
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	flush()
	return lines
}
