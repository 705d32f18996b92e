package perspective

import (
	"math"
)

// foreshortening scales how strongly rows are stretched away from the
// horizontal center line as the angle grows.
const foreshortening = 0.001

// intRange bounds the values that are truncated to integer coordinates.
// Anything beyond is far outside any buffer.
const intRange = 1 << 31

type angle struct {
	cos float64
	sin float64
}

func newAngle(degrees float64) angle {
	r := rad(degrees)
	return angle{cos: math.Cos(r), sin: math.Sin(r)}
}

func rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// center is the (truncated) middle index for a dimension.
func center(dim int) int {
	return (dim - 1) / 2
}

// mapBilinear maps the destination pixel (x, y) to a source coordinate.
//
// The result is not bounds-checked and may be infinite or NaN
// when the divisor vanishes.
func mapBilinear(x, y int, dst, src *Buffer, a angle) (float64, float64) {
	xTemp := float64(x - center(dst.Width))
	yTemp := float64(y - center(dst.Height))

	// explicit conversions keep the products from being fused
	ySrc := yTemp / (a.cos - float64(yTemp*foreshortening*a.sin))
	xSrc := float64(xTemp * (float64(foreshortening*a.sin*ySrc) + 1))

	return xSrc + float64(center(src.Width)), ySrc + float64(center(src.Height))
}

// mapNearest maps the destination pixel (x, y) to an integer source coordinate.
//
// Unlike mapBilinear, the row is truncated before it is used to compute
// the column. ok is false if an intermediate value cannot be represented,
// the caller treats that as outside the source.
func mapNearest(x, y int, dst, src *Buffer, a angle) (xSrc, ySrc int, ok bool) {
	xTemp := x - center(dst.Width)
	yTemp := y - center(dst.Height)

	yf := float64(yTemp) / (a.cos - float64(float64(yTemp)*foreshortening*a.sin))
	ySrc, ok = truncate(yf)
	if !ok {
		return 0, 0, false
	}

	xf := float64(xTemp) * (float64(foreshortening*a.sin*float64(ySrc)) + 1)
	xSrc, ok = truncate(xf)
	if !ok {
		return 0, 0, false
	}

	return xSrc + center(src.Width), ySrc + center(src.Height), true
}

// truncate converts f to an int, rounding toward zero.
// It fails for NaN, infinities and values outside the 32-bit range.
func truncate(f float64) (int, bool) {
	if !(f > -intRange && f < intRange) {
		return 0, false
	}
	return int(f), true
}
