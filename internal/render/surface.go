package render

import (
	"path/filepath"
	"strings"

	"ca1/internal/core"
)

// Surface is a drawing target that accepts paint sources, filled rectangles
// and text, and finally writes itself to a file.
type Surface interface {
	core.Painter
	FillRect(x, y, w, h int)
	// Text draws s with its baseline starting at (x, y).
	Text(x, y int, s string)
	Save(path string) error
}

// Create returns the surface matching the extension of path: SVG for ".svg",
// PNG for anything else.
func Create(path string, l Layout) Surface {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return NewVector(l.Width(), l.Height())
	}
	return NewRaster(l.Width(), l.Height())
}
