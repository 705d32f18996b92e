package perspective

import (
	"image"

	"golang.org/x/image/draw"
)

// White is the packed value for opaque white.
// It is used for every destination pixel that maps outside the source.
const White uint32 = 0xFFFFFFFF

// Buffer is a rectangular grid of packed ARGB values.
//
// Pixels are stored row-major with the origin at the top-left,
// the pixel at (x, y) is Pix[y*Width+x].
// Each value holds alpha in bits 24-31, red 16-23, green 8-15 and blue 0-7.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewBuffer creates a zeroed buffer with the given dimensions.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, NewValidationError("invalid buffer size %dx%d", width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}, nil
}

// Validate checks that the dimensions are positive and match the pixel count.
func (b *Buffer) Validate() error {
	if b == nil {
		return NewValidationError("buffer is nil")
	}
	if b.Width <= 0 || b.Height <= 0 {
		return NewValidationError("invalid buffer size %dx%d", b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height {
		return NewValidationError("buffer size %dx%d does not match pixel count %d",
			b.Width, b.Height, len(b.Pix))
	}
	return nil
}

// Resized returns a new zeroed buffer with the given dimensions.
// The receiver is left unchanged.
func (b *Buffer) Resized(width, height int) (*Buffer, error) {
	return NewBuffer(width, height)
}

// At returns the packed value at (x, y).
func (b *Buffer) At(x, y int) uint32 {
	return b.Pix[y*b.Width+x]
}

// Set sets the packed value at (x, y).
func (b *Buffer) Set(x, y int, argb uint32) {
	b.Pix[y*b.Width+x] = argb
}

// ARGB packs four channels into a single value.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Channels unpacks a packed value.
func Channels(argb uint32) (a, r, g, b uint8) {
	return uint8(argb >> 24), uint8(argb >> 16), uint8(argb >> 8), uint8(argb)
}

// FromImage copies an image into a new buffer.
// Colors are converted to non-premultiplied alpha.
func FromImage(i image.Image) *Buffer {
	rect := i.Bounds()
	n, ok := i.(*image.NRGBA)
	if !ok || rect.Min != (image.Point{}) {
		n = image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
		draw.Draw(n, n.Bounds(), i, rect.Min, draw.Src)
	}

	b := &Buffer{
		Width:  rect.Dx(),
		Height: rect.Dy(),
		Pix:    make([]uint32, rect.Dx()*rect.Dy()),
	}
	for y := 0; y < b.Height; y++ {
		row := n.Pix[y*n.Stride:]
		for x := 0; x < b.Width; x++ {
			p := row[x*4 : x*4+4]
			b.Pix[y*b.Width+x] = ARGB(p[3], p[0], p[1], p[2])
		}
	}
	return b
}

// Image returns a copy of the buffer as an NRGBA image.
func (b *Buffer) Image() *image.NRGBA {
	n := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, v := range b.Pix {
		a, r, g, bl := Channels(v)
		n.Pix[i*4] = r
		n.Pix[i*4+1] = g
		n.Pix[i*4+2] = bl
		n.Pix[i*4+3] = a
	}
	return n
}
