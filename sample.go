package perspective

import (
	"math"
)

// sampleNearest returns the source pixel at (x, y) unchanged,
// or White if (x, y) is outside the source.
func sampleNearest(src *Buffer, x, y int) uint32 {
	if x < 0 || x > src.Width-1 || y < 0 || y > src.Height-1 {
		return White
	}
	return src.Pix[y*src.Width+x]
}

// sampleBilinear blends the four source pixels around (x, y).
//
// Coordinates up to one pixel outside the source are still blended,
// taps that miss the source count as white. The result is always opaque.
func sampleBilinear(src *Buffer, x, y float64) uint32 {
	// written so that NaN fails the check
	if !(x >= -1 && x <= float64(src.Width) && y >= -1 && y <= float64(src.Height)) {
		return White
	}

	xt := math.Floor(x)
	yt := math.Floor(y)
	h := x - xt
	v := y - yt
	x0 := int(xt)
	y0 := int(yt)

	ar, ag, ab := rgbAt(src, x0, y0)
	br, bg, bb := rgbAt(src, x0+1, y0)
	cr, cg, cb := rgbAt(src, x0, y0+1)
	dr, dg, db := rgbAt(src, x0+1, y0+1)

	return ARGB(0xFF,
		blend(ar, br, cr, dr, h, v),
		blend(ag, bg, cg, dg, h, v),
		blend(ab, bb, cb, db, h, v))
}

// rgbAt returns the color channels at (x, y), white if outside the source.
func rgbAt(src *Buffer, x, y int) (r, g, b uint8) {
	if x < 0 || x > src.Width-1 || y < 0 || y > src.Height-1 {
		return 0xFF, 0xFF, 0xFF
	}
	_, r, g, b = Channels(src.Pix[y*src.Width+x])
	return r, g, b
}

// blend weights one channel of the taps a, b, c, d
// (top-left, top-right, bottom-left, bottom-right).
func blend(a, b, c, d uint8, h, v float64) uint8 {
	s := float64(float64(a)*(1-h)*(1-v)) +
		float64(float64(b)*h*(1-v)) +
		float64(float64(c)*(1-h)*v) +
		float64(float64(d)*h*v) + 0.5
	return uint8(s)
}
