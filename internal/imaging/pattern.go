package imaging

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/draw"

	"github.com/akeil/perspective"
)

var (
	gridColor   = color.RGBA{60, 60, 60, 255}
	markerColor = color.RGBA{255, 0, 0, 255}
)

// Pattern draws a test image of the given size: a white background with
// grid lines every cell pixels and a red disc on the center pixel.
//
// The grid makes the foreshortening visible and is used when no
// source image is available.
func Pattern(width, height, cell int) (*perspective.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, perspective.NewValidationError("invalid pattern size %dx%d", width, height)
	}
	if cell <= 0 {
		return nil, perspective.NewValidationError("invalid cell size %d", cell)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetStrokeColor(gridColor)
	gc.SetLineWidth(1)

	w := float64(width)
	h := float64(height)
	for x := 0; x < width; x += cell {
		gc.MoveTo(float64(x)+0.5, 0)
		gc.LineTo(float64(x)+0.5, h)
	}
	for y := 0; y < height; y += cell {
		gc.MoveTo(0, float64(y)+0.5)
		gc.LineTo(w, float64(y)+0.5)
	}
	gc.Stroke()

	r := float64(minInt(width, height)) / 16
	if r < 2 {
		r = 2
	}
	cx := float64((width-1)/2) + 0.5
	cy := float64((height-1)/2) + 0.5
	gc.SetFillColor(markerColor)
	draw2dkit.Circle(gc, cx, cy, r)
	gc.Fill()

	return perspective.FromImage(dst), nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
