package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is an in-memory RGBA surface encoded as PNG.
type Raster struct {
	img *image.RGBA
	src *image.Uniform
	op  draw.Op
}

// NewRaster allocates a w x h surface painting opaque black.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		src: image.NewUniform(color.RGBA{A: 0xff}),
		op:  draw.Src,
	}
}

// SetSourceRGB selects an opaque paint that replaces destination pixels.
func (r *Raster) SetSourceRGB(red, green, blue uint8) {
	r.src = image.NewUniform(color.RGBA{R: red, G: green, B: blue, A: 0xff})
	r.op = draw.Src
}

// SetSourceRGBA selects a translucent paint composited over destination pixels.
func (r *Raster) SetSourceRGBA(red, green, blue, alpha uint8) {
	r.src = image.NewUniform(color.NRGBA{R: red, G: green, B: blue, A: alpha})
	r.op = draw.Over
}

// FillRect fills the rectangle clipped to the surface bounds.
func (r *Raster) FillRect(x, y, w, h int) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(r.img.Bounds())
	draw.Draw(r.img, rect, r.src, image.Point{}, r.op)
}

// Text draws s in the 7x13 fixed font using the current paint.
func (r *Raster) Text(x, y int, s string) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  r.src,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Save encodes the surface as PNG at path.
func (r *Raster) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
