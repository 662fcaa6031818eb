package render

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"
)

// Vector records drawing operations as an SVG document.
type Vector struct {
	buf    bytes.Buffer
	canvas *svg.SVG
	style  string
	ended  bool
}

// NewVector starts a w x h SVG document painting opaque black.
func NewVector(w, h int) *Vector {
	v := &Vector{style: "fill:#000000"}
	v.canvas = svg.New(&v.buf)
	v.canvas.Start(w, h, `shape-rendering="crispEdges"`)
	return v
}

// SetSourceRGB selects an opaque fill.
func (v *Vector) SetSourceRGB(r, g, b uint8) {
	v.style = fmt.Sprintf("fill:#%02x%02x%02x", r, g, b)
}

// SetSourceRGBA selects a translucent fill.
func (v *Vector) SetSourceRGBA(r, g, b, a uint8) {
	v.style = fmt.Sprintf("fill:#%02x%02x%02x;fill-opacity:%.3f", r, g, b, float64(a)/255)
}

// FillRect appends a filled rect element.
func (v *Vector) FillRect(x, y, w, h int) {
	v.canvas.Rect(x, y, w, h, v.style)
}

// Text appends a monospace text element.
func (v *Vector) Text(x, y int, s string) {
	v.canvas.Text(x, y, s, v.style+";font-family:monospace;font-size:13px")
}

// Bytes closes the document and returns it.
func (v *Vector) Bytes() []byte {
	if !v.ended {
		v.canvas.End()
		v.ended = true
	}
	return v.buf.Bytes()
}

// Save writes the document to path.
func (v *Vector) Save(path string) error {
	return os.WriteFile(path, v.Bytes(), 0o644)
}
