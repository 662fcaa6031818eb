package render

import "ca1/internal/themes"

// FillRow converts one generation into premultiplied RGBA pixels, one pixel
// per cell. Zero cells take the theme background. buf must hold at least
// 4*len(cells) bytes.
func FillRow(buf []byte, cells []uint8, theme themes.Theme) {
	var lut [4][4]byte
	for v := range lut {
		c := theme.Background()
		if v != 0 {
			c = theme[v]
		}
		r, g, b, a := c.RGBA()
		lut[v] = [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	for i, c := range cells {
		copy(buf[i*4:i*4+4], lut[c&3][:])
	}
}

// Clear fills buf with the theme background.
func Clear(buf []byte, theme themes.Theme) {
	r, g, b, a := theme.Background().RGBA()
	px := [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for i := 0; i+4 <= len(buf); i += 4 {
		copy(buf[i:i+4], px[:])
	}
}
