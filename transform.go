package perspective

import (
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/perspective/internal/logging"
)

// minChunk is the smallest number of pixels handed to a single worker.
const minChunk = 4096

// Transform overwrites every pixel of dst with the source pixel that
// maps to it under the perspective for the given angle (degrees).
//
// Destination pixels that map outside the source are set to White.
// The size of dst is chosen by the caller, see DestinationSize.
//
// Transform panics if either buffer is invalid, if both are the same
// buffer or if the method is unknown.
func Transform(src, dst *Buffer, angleDegrees float64, m Method) {
	mustCheck(src, dst, m)

	start := time.Now()
	a := newAngle(angleDegrees)

	var pixel func(x, y int) uint32
	switch m {
	case NearestNeighbor:
		pixel = func(x, y int) uint32 {
			xs, ys, ok := mapNearest(x, y, dst, src, a)
			if !ok {
				return White
			}
			return sampleNearest(src, xs, ys)
		}
	case Bilinear:
		pixel = func(x, y int) uint32 {
			xs, ys := mapBilinear(x, y, dst, src, a)
			return sampleBilinear(src, xs, ys)
		}
	}

	n := len(dst.Pix)
	chunk := chunkSize(n, runtime.GOMAXPROCS(0))

	var group errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		group.Go(func() error {
			w := dst.Width
			for i := lo; i < hi; i++ {
				dst.Pix[i] = pixel(i%w, i/w)
			}
			return nil
		})
	}
	group.Wait()

	logging.Debug("Transform %dx%d -> %dx%d, %v, angle %v took %v",
		src.Width, src.Height, dst.Width, dst.Height, m, angleDegrees, time.Since(start))
}

// chunkSize splits n pixels into contiguous ranges, one per worker.
func chunkSize(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	c := (n + workers - 1) / workers
	if c < minChunk {
		c = minChunk
	}
	return c
}

func mustCheck(src, dst *Buffer, m Method) {
	if err := src.Validate(); err != nil {
		panic(Wrap(err, "invalid source"))
	}
	if err := dst.Validate(); err != nil {
		panic(Wrap(err, "invalid destination"))
	}
	if src == dst || overlaps(src.Pix, dst.Pix) {
		panic(NewValidationError("source and destination share the same pixels"))
	}
	if err := m.Validate(); err != nil {
		panic(err)
	}
}

// overlaps reports whether a and b share any element of their backing arrays.
func overlaps(a, b []uint32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}

// DestinationSize returns the destination size used for a source of the
// given size: 1.4 times the width and 1.2 times the height.
// The result is never smaller than 1x1.
func DestinationSize(width, height int) (int, int) {
	w := int(float64(width) * 1.4)
	h := int(float64(height) * 1.2)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
