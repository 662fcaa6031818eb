package core

import (
	"fmt"
	"math"
)

const (
	darkerFactor   = 0.7
	brighterFactor = 1.0 / darkerFactor
)

// Color is an 8-bit-per-channel ARGB value. The zero value is transparent black.
type Color struct {
	a, r, g, b uint8
}

var (
	// White is opaque #ffffff.
	White = FromRGB(0xff, 0xff, 0xff)
	// Black is opaque #000000.
	Black = FromRGB(0x00, 0x00, 0x00)
)

// FromRGB returns a fully opaque color.
func FromRGB(r, g, b uint8) Color {
	return Color{a: 0xff, r: r, g: g, b: b}
}

// FromRGBA returns a color whose alpha is the fraction a of 255. The product
// is truncated, not rounded, so FromRGBA(0, 0, 0, 0.5) has alpha 127.
// Fractions outside [0,1] are clamped first.
func FromRGBA(r, g, b uint8, a float64) Color {
	return Color{a: fractionToByte(a), r: r, g: g, b: b}
}

// FromRGBA32 decodes a packed 0xAARRGGBB value.
func FromRGBA32(c uint32) Color {
	return Color{
		a: uint8(c >> 24),
		r: uint8(c >> 16),
		g: uint8(c >> 8),
		b: uint8(c),
	}
}

// FromRGB32 decodes a packed 0xRRGGBB value. The top byte is ignored and the
// result is opaque.
func FromRGB32(c uint32) Color {
	return FromRGB(uint8(c>>16), uint8(c>>8), uint8(c))
}

// WithAlpha returns a copy of c with alpha set to the fraction a.
func (c Color) WithAlpha(a float64) Color {
	return FromRGBA(c.r, c.g, c.b, a)
}

// R returns the red channel.
func (c Color) R() uint8 { return c.r }

// G returns the green channel.
func (c Color) G() uint8 { return c.g }

// B returns the blue channel.
func (c Color) B() uint8 { return c.b }

// A returns the alpha channel.
func (c Color) A() uint8 { return c.a }

// RF returns red as a fraction of 255.
func (c Color) RF() float64 { return float64(c.r) / 255 }

// GF returns green as a fraction of 255.
func (c Color) GF() float64 { return float64(c.g) / 255 }

// BF returns blue as a fraction of 255.
func (c Color) BF() float64 { return float64(c.b) / 255 }

// Alpha returns alpha as a fraction of 255.
func (c Color) Alpha() float64 { return float64(c.a) / 255 }

// Opaque reports whether alpha is 255.
func (c Color) Opaque() bool { return c.a == 0xff }

// RGB32 packs the color channels as 0x00RRGGBB.
func (c Color) RGB32() uint32 {
	return uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b)
}

// Luminance returns the Rec. 709 relative luminance. Channels are scaled by
// 1/256, so pure white yields slightly less than 1.
func (c Color) Luminance() float64 {
	r := float64(c.r) / 256
	g := float64(c.g) / 256
	b := float64(c.b) / 256
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Brighter scales every channel by (1/0.7)^k. Channels saturate at 255.
func (c Color) Brighter(k float64) Color {
	return c.scale(math.Pow(brighterFactor, k))
}

// Darker scales every channel by 0.7^k.
func (c Color) Darker(k float64) Color {
	return c.scale(math.Pow(darkerFactor, k))
}

func (c Color) scale(k float64) Color {
	return Color{
		a: c.a,
		r: truncate(float64(c.r) * k),
		g: truncate(float64(c.g) * k),
		b: truncate(float64(c.b) * k),
	}
}

// fractionToByte maps [0,1] onto [0,255] with truncation.
func fractionToByte(f float64) uint8 {
	return truncate(f * 255)
}

func truncate(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// RGBA implements image/color.Color with alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.a)
	a |= a << 8
	r = uint32(c.r)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.g)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.b)
	b |= b << 8
	b = b * a / 0xffff
	return r, g, b, a
}

// String formats the color as #rrggbb. Alpha is omitted.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// Painter is the paint-source half of a rendering surface.
type Painter interface {
	SetSourceRGB(r, g, b uint8)
	SetSourceRGBA(r, g, b, a uint8)
}

// Set selects c as the current paint source of p, using the opaque path when
// alpha is 255.
func (c Color) Set(p Painter) {
	if c.Opaque() {
		p.SetSourceRGB(c.r, c.g, c.b)
		return
	}
	p.SetSourceRGBA(c.r, c.g, c.b, c.a)
}
