package render

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/perspective/internal/imaging"
	"github.com/akeil/perspective/internal/logging"
)

// FrameName is the file name used for a frame written by WritePNGFrames.
func FrameName(f Frame) string {
	return fmt.Sprintf("frame-%v-%06.2f.png", f.Method, f.Angle)
}

// WritePNGFrames writes each frame as a PNG file into dir.
// The directory is created if it does not exist.
func WritePNGFrames(dir string, frames []Frame) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	var group errgroup.Group
	for _, f := range frames {
		f := f
		group.Go(func() error {
			path := filepath.Join(dir, FrameName(f))
			logging.Debug("Write frame %v", path)
			return imaging.SavePNG(f.Buffer, path)
		})
	}
	return group.Wait()
}
