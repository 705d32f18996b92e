package perspective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noise fills a buffer with deterministic opaque colors.
func noise(w, h int) *Buffer {
	b, _ := NewBuffer(w, h)
	seed := uint32(12345)
	for i := range b.Pix {
		seed = seed*1103515245 + 12345
		b.Pix[i] = 0xFF000000 | seed>>8
	}
	return b
}

func newDst(t *testing.T, w, h int) *Buffer {
	b, err := NewBuffer(w, h)
	require.NoError(t, err)
	return b
}

func TestTransformCenterRed(t *testing.T) {
	src := filled(3, 3, black)
	src.Set(1, 1, red)

	dst := newDst(t, 3, 3)
	Transform(src, dst, 0, NearestNeighbor)
	assert.Equal(t, src.Pix, dst.Pix)

	dst = newDst(t, 3, 3)
	Transform(src, dst, 0, Bilinear)
	assert.Equal(t, red, dst.At(1, 1))
	assert.Equal(t, src.Pix, dst.Pix)
}

func TestTransformIdentity(t *testing.T) {
	src := noise(7, 5)
	src.Set(3, 2, ARGB(12, 1, 2, 3)) // translucent pixels keep their alpha

	dst := newDst(t, 7, 5)
	Transform(src, dst, 0, NearestNeighbor)
	assert.Equal(t, src.Pix, dst.Pix)

	dst = newDst(t, 7, 5)
	Transform(src, dst, 0, Bilinear)
	for i, v := range dst.Pix {
		assert.Equal(t, v, src.Pix[i]|0xFF000000, "pixel %d", i)
	}
}

func TestTransformOverwritesAll(t *testing.T) {
	src := noise(9, 9)
	dst := filled(20, 3, 0x12345678)

	Transform(src, dst, 10, NearestNeighbor)
	for i, v := range dst.Pix {
		assert.NotEqual(t, uint32(0x12345678), v, "pixel %d", i)
	}
}

func TestTransformValues(t *testing.T) {
	src := noise(32, 24)
	values := make(map[uint32]bool)
	for _, v := range src.Pix {
		values[v] = true
	}

	w, h := DestinationSize(src.Width, src.Height)
	for _, deg := range []float64{0, 5, 45, 90, 135, 270, 355, 720, -30} {
		dst := newDst(t, w, h)
		Transform(src, dst, deg, NearestNeighbor)
		for i, v := range dst.Pix {
			if v != White && !values[v] {
				t.Errorf("angle %v: pixel %d is neither fill nor a source pixel: %08x", deg, i, v)
				break
			}
		}

		Transform(src, dst, deg, Bilinear)
		for i, v := range dst.Pix {
			if v>>24 != 0xFF {
				t.Errorf("angle %v: pixel %d is not opaque: %08x", deg, i, v)
				break
			}
		}
	}
}

func TestTransformDeterministic(t *testing.T) {
	src := noise(50, 40)
	for _, m := range []Method{NearestNeighbor, Bilinear} {
		a := newDst(t, 70, 48)
		b := newDst(t, 70, 48)
		Transform(src, a, 33, m)
		Transform(src, b, 33, m)
		assert.Equal(t, a.Pix, b.Pix, "%v", m)
	}
}

// The parallel result must match a plain loop over all pixels.
func TestTransformMatchesSequential(t *testing.T) {
	src := noise(200, 100)
	w, h := DestinationSize(src.Width, src.Height)
	deg := 25.0
	a := newAngle(deg)

	for _, m := range []Method{NearestNeighbor, Bilinear} {
		dst := newDst(t, w, h)
		Transform(src, dst, deg, m)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				var expected uint32
				if m == NearestNeighbor {
					xs, ys, ok := mapNearest(x, y, dst, src, a)
					expected = White
					if ok {
						expected = sampleNearest(src, xs, ys)
					}
				} else {
					xs, ys := mapBilinear(x, y, dst, src, a)
					expected = sampleBilinear(src, xs, ys)
				}
				if dst.At(x, y) != expected {
					t.Fatalf("%v: mismatch at (%d, %d)", m, x, y)
				}
			}
		}
	}
}

// On a left-right symmetric image a half turn is the point reflection.
func TestTransformHalfTurn(t *testing.T) {
	src := noise(9, 7)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width/2; x++ {
			src.Set(src.Width-1-x, y, src.At(x, y))
		}
	}

	dst := newDst(t, 9, 7)
	Transform(src, dst, 180, NearestNeighbor)
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			assert.Equal(t, src.At(dst.Width-1-x, dst.Height-1-y), dst.At(x, y))
		}
	}

	zero := newDst(t, 9, 7)
	Transform(src, zero, 0, NearestNeighbor)
	for i := range zero.Pix {
		assert.Equal(t, zero.Pix[i], dst.Pix[len(dst.Pix)-1-i])
	}
}

func TestTransformDegenerate(t *testing.T) {
	src := noise(5, 5)
	dst := newDst(t, 3, 2001)

	for _, m := range []Method{NearestNeighbor, Bilinear} {
		assert.NotPanics(t, func() { Transform(src, dst, 45, m) })
		// rows far from the center map far outside the source
		assert.Equal(t, White, dst.At(1, 2000))
		assert.Equal(t, White, dst.At(1, 0))
	}
}

func TestTransformPreconditions(t *testing.T) {
	src := noise(4, 4)
	dst := newDst(t, 4, 4)

	assert.Panics(t, func() { Transform(src, src, 0, NearestNeighbor) })
	assert.Panics(t, func() {
		alias := &Buffer{Width: 2, Height: 8, Pix: src.Pix}
		Transform(src, alias, 0, Bilinear)
	})
	assert.Panics(t, func() {
		// shares pixels 4..7 of the source
		offset := &Buffer{Width: 2, Height: 2, Pix: src.Pix[4:8]}
		Transform(src, offset, 0, NearestNeighbor)
	})
	assert.Panics(t, func() {
		tail := &Buffer{Width: 4, Height: 1, Pix: src.Pix[12:16]}
		Transform(src, tail, 0, Bilinear)
	})
	assert.Panics(t, func() { Transform(nil, dst, 0, Bilinear) })
	assert.Panics(t, func() { Transform(&Buffer{Width: 4, Height: 4}, dst, 0, Bilinear) })
	assert.Panics(t, func() { Transform(src, &Buffer{Width: 0, Height: 4}, 0, Bilinear) })
	assert.Panics(t, func() { Transform(src, dst, 0, Method(9)) })

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, IsValidationError(err))
	}()
	Transform(src, &Buffer{Width: 3, Height: 3, Pix: make([]uint32, 8)}, 0, Bilinear)
}

func TestOverlaps(t *testing.T) {
	pix := make([]uint32, 16)
	assert.True(t, overlaps(pix, pix))
	assert.True(t, overlaps(pix, pix[4:8]))
	assert.True(t, overlaps(pix[4:8], pix[7:9]))
	assert.False(t, overlaps(pix[0:4], pix[4:8]))
	assert.False(t, overlaps(pix, make([]uint32, 16)))
	assert.False(t, overlaps(pix, nil))

	// adjacent views of one array do not conflict
	src := &Buffer{Width: 2, Height: 2, Pix: pix[0:4]}
	dst := &Buffer{Width: 2, Height: 2, Pix: pix[4:8]}
	assert.NotPanics(t, func() { Transform(src, dst, 0, NearestNeighbor) })
}

func TestDestinationSize(t *testing.T) {
	cases := [][4]int{
		{10, 5, 14, 6},
		{3, 3, 4, 3},
		{512, 512, 716, 614},
		{1, 1, 1, 1},
	}
	for _, c := range cases {
		w, h := DestinationSize(c[0], c[1])
		assert.Equal(t, c[2], w, "%v", c)
		assert.Equal(t, c[3], h, "%v", c)
	}
}

func TestChunkSize(t *testing.T) {
	assert.Equal(t, minChunk, chunkSize(10, 4))
	assert.Equal(t, 25000, chunkSize(100000, 4))
	assert.Equal(t, 100000, chunkSize(100000, 0))
}
