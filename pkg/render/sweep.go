package render

import (
	"time"

	"github.com/akeil/perspective"
	"github.com/akeil/perspective/internal/logging"
)

// DefaultStep is the angle increment (degrees) for a full sweep.
const DefaultStep = 5.0

// maxAngles limits the number of frames in a sweep.
const maxAngles = 360 * 1000

// Frame is a single transformed image from a sweep.
type Frame struct {
	Angle  float64
	Method perspective.Method
	Buffer *perspective.Buffer
}

// SweepResult holds the outcome of a sweep.
type SweepResult struct {
	// Count is the number of transformed frames.
	Count int
	// Elapsed is the total time spent in the transform.
	Elapsed time.Duration
	// Frames holds copies of the results if they were requested.
	Frames []Frame
}

// Sweeper transforms a source image for every angle from 0 up to 360
// degrees in fixed steps.
type Sweeper struct {
	Method perspective.Method
	Step   float64
	// Keep retains a copy of every frame in the result.
	Keep bool
	// Width and Height set the destination size.
	// If zero, the size is derived with perspective.DestinationSize.
	Width  int
	Height int

	dst *perspective.Buffer
}

// NewSweeper creates a Sweeper with the default step size.
func NewSweeper(m perspective.Method) *Sweeper {
	return &Sweeper{
		Method: m,
		Step:   DefaultStep,
	}
}

// Angles returns the angles visited by a sweep.
func (s *Sweeper) Angles() ([]float64, error) {
	if !(s.Step > 0) {
		return nil, perspective.NewValidationError("invalid step size %v", s.Step)
	}
	n := 360 / s.Step
	if !(n <= maxAngles) {
		return nil, perspective.NewValidationError("step size %v is too small", s.Step)
	}
	angles := make([]float64, 0, int(n)+1)
	for a := 0.0; a < 360; a += s.Step {
		angles = append(angles, a)
	}
	return angles, nil
}

// Run performs the sweep for the given source.
//
// The destination buffer is reused between runs and only recreated
// if the required size changes.
func (s *Sweeper) Run(src *perspective.Buffer) (*SweepResult, error) {
	err := src.Validate()
	if err != nil {
		return nil, perspective.Wrap(err, "invalid source")
	}
	if err = s.Method.Validate(); err != nil {
		return nil, err
	}
	angles, err := s.Angles()
	if err != nil {
		return nil, err
	}

	w, h := s.Width, s.Height
	if w == 0 && h == 0 {
		w, h = perspective.DestinationSize(src.Width, src.Height)
	}
	if s.dst == nil || s.dst.Width != w || s.dst.Height != h {
		s.dst, err = perspective.NewBuffer(w, h)
		if err != nil {
			return nil, err
		}
	}

	res := &SweepResult{}
	for _, a := range angles {
		start := time.Now()
		perspective.Transform(src, s.dst, a, s.Method)
		res.Elapsed += time.Since(start)
		res.Count++

		if s.Keep {
			res.Frames = append(res.Frames, Frame{
				Angle:  a,
				Method: s.Method,
				Buffer: clone(s.dst),
			})
		}
	}

	logging.Info("Calculated %d perspectives (%v) in %v", res.Count, s.Method, res.Elapsed)
	return res, nil
}

func clone(b *perspective.Buffer) *perspective.Buffer {
	pix := make([]uint32, len(b.Pix))
	copy(pix, b.Pix)
	return &perspective.Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}
