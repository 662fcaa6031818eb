// Package preview draws generations straight into a terminal, one character
// cell per automaton cell, scrolling once the screen is full.
package preview

import (
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"ca1/internal/core"
	"ca1/internal/themes"
)

// Terminal is a generate.RowSink backed by a tcell screen.
type Terminal struct {
	screen tcell.Screen
	styles [4]tcell.Style
	rows   [][]uint8

	pace   *core.FixedStep
	budget int
	sleep  func(time.Duration)
}

// New returns a preview drawing on an initialized screen.
func New(screen tcell.Screen, theme themes.Theme) *Terminal {
	t := &Terminal{screen: screen, sleep: time.Sleep}
	for v := range t.styles {
		c := theme.Background()
		if v != 0 {
			c = theme[v]
		}
		t.styles[v] = tcell.StyleDefault.Background(toTcell(c)).Foreground(toTcell(c))
	}
	screen.SetStyle(t.styles[0])
	screen.Clear()
	return t
}

// Pace limits Row to rate generations per second.
func (t *Terminal) Pace(rate int, clock core.Clock) {
	t.pace = core.NewFixedStep(rate, clock)
	t.budget = 0
}

func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// Row draws generation j at the bottom of the visible history.
func (t *Terminal) Row(j int, cells []uint8) error {
	t.wait()

	_, h := t.screen.Size()
	t.rows = append(t.rows, slices.Clone(cells))
	if over := len(t.rows) - h; over > 0 {
		t.rows = t.rows[over:]
	}
	t.redraw()
	t.screen.Show()
	return nil
}

func (t *Terminal) wait() {
	if t.pace == nil {
		return
	}
	for t.budget == 0 {
		if t.budget = t.pace.Steps(); t.budget == 0 {
			t.sleep(4 * time.Millisecond)
		}
	}
	t.budget--
}

func (t *Terminal) redraw() {
	w, _ := t.screen.Size()
	for y, row := range t.rows {
		for x := 0; x < w; x++ {
			style := t.styles[0]
			if x < len(row) {
				style = t.styles[row[x]&3]
			}
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Wait blocks until a key is pressed or the screen is finalized.
func (t *Terminal) Wait() {
	for {
		switch t.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}
