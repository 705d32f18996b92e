package imaging

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/akeil/perspective"
	"github.com/akeil/perspective/internal/fs"
	"github.com/akeil/perspective/internal/logging"
)

// Load reads and decodes the image file at path.
func Load(path string) (*perspective.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perspective.NewNotFound("image %q", path)
		}
		return nil, err
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, perspective.Wrap(err, "decode %q", path)
	}
	return b, nil
}

// Decode reads an image in one of the registered formats
// (GIF, JPEG, PNG, BMP, TIFF or WebP).
func Decode(r io.Reader) (*perspective.Buffer, error) {
	i, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	logging.Debug("Decoded %v image, size %v", format, i.Bounds().Size())
	return perspective.FromImage(i), nil
}

// Fit scales the buffer down so that it fits into maxWidth x maxHeight,
// keeping the aspect ratio. Buffers that already fit are returned as they are.
// A limit of zero or less means "no limit" for that dimension.
func Fit(b *perspective.Buffer, maxWidth, maxHeight int) *perspective.Buffer {
	scale := 1.0
	if maxWidth > 0 && b.Width > maxWidth {
		scale = float64(maxWidth) / float64(b.Width)
	}
	if maxHeight > 0 && b.Height > maxHeight {
		s := float64(maxHeight) / float64(b.Height)
		if s < scale {
			scale = s
		}
	}
	if scale == 1.0 {
		return b
	}

	w := int(float64(b.Width) * scale)
	h := int(float64(b.Height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	logging.Info("Scale image from %dx%d to %dx%d", b.Width, b.Height, w, h)

	src := b.Image()
	rect := image.Rect(0, 0, w, h)
	dst := image.NewNRGBA(rect)
	draw.ApproxBiLinear.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
	return perspective.FromImage(dst)
}

// EncodePNG writes the buffer as a PNG image.
func EncodePNG(b *perspective.Buffer, w io.Writer) error {
	return png.Encode(w, b.Image())
}

// SavePNG writes the buffer as a PNG file to path.
func SavePNG(b *perspective.Buffer, path string) error {
	err := fs.WriteFile(path, func(w io.Writer) error {
		return EncodePNG(b, w)
	})
	if err != nil {
		return perspective.Wrap(err, "save %q", path)
	}
	return nil
}
