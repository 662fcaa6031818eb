package render

import (
	"errors"
	"fmt"
	"image"

	"ca1/internal/core"
	"ca1/internal/themes"
)

// ErrOutOfBounds is returned when a row does not fit the layout.
var ErrOutOfBounds = errors.New("row outside grid")

// footerHeight fits one line of the 7x13 caption font.
const footerHeight = 17

// Layout places Cols x Rows cells of CellSize pixels separated by 1-pixel
// gutters, with an optional caption footer below the grid.
type Layout struct {
	Cols     int
	Rows     int
	CellSize int
	Footer   bool
}

// Width returns the image width in pixels.
func (l Layout) Width() int { return l.Cols*l.CellSize + l.Cols + 1 }

// GridHeight returns the height of the cell area in pixels.
func (l Layout) GridHeight() int { return l.Rows*l.CellSize + l.Rows + 1 }

// Height returns the image height in pixels.
func (l Layout) Height() int {
	if l.Footer {
		return l.GridHeight() + footerHeight
	}
	return l.GridHeight()
}

// CellRect returns the pixel rectangle of cell (i, j).
func (l Layout) CellRect(i, j int) image.Rectangle {
	x := i*(l.CellSize+1) + 1
	y := j*(l.CellSize+1) + 1
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

// Grid paints automaton rows onto a Surface using one theme.
type Grid struct {
	surface Surface
	layout  Layout
	theme   themes.Theme
}

// NewGrid binds a surface, layout and theme.
func NewGrid(s Surface, l Layout, t themes.Theme) *Grid {
	return &Grid{surface: s, layout: l, theme: t}
}

// Background fills the whole surface with the theme background.
func (g *Grid) Background() {
	g.theme.Background().Set(g.surface)
	g.surface.FillRect(0, 0, g.layout.Width(), g.layout.Height())
}

// Row paints generation j. Zero cells are left as background.
func (g *Grid) Row(j int, cells []uint8) error {
	if j < 0 || j >= g.layout.Rows || len(cells) > g.layout.Cols {
		return fmt.Errorf("%w: row %d with %d cells in a %dx%d grid",
			ErrOutOfBounds, j, len(cells), g.layout.Cols, g.layout.Rows)
	}
	for i, v := range cells {
		if v == 0 {
			continue
		}
		g.theme[int(v)%len(g.theme)].Set(g.surface)
		r := g.layout.CellRect(i, j)
		g.surface.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
	return nil
}

// Caption writes text into the footer. It does nothing when the layout has no
// footer.
func (g *Grid) Caption(text string) {
	if !g.layout.Footer {
		return
	}
	bg := g.theme.Background()
	strip, ink := bg.Brighter(1), core.White
	if bg.Luminance() > 0.5 {
		strip, ink = bg.Darker(1), core.Black
	}

	top := g.layout.GridHeight()
	strip.Set(g.surface)
	g.surface.FillRect(0, top, g.layout.Width(), footerHeight)
	ink.Set(g.surface)
	g.surface.Text(4, top+13, text)
}
