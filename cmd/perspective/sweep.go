package main

import (
	"fmt"
	"io"

	"github.com/akeil/perspective/internal/fs"
	"github.com/akeil/perspective/pkg/render"
)

func doSweep(s settings, input string, step float64, framesDir, pdfPath string) error {
	src, err := loadSource(s, input)
	if err != nil {
		return err
	}

	sw := render.NewSweeper(s.method)
	sw.Step = step
	sw.Keep = framesDir != "" || pdfPath != ""

	fmt.Printf("%v sweep %dx%d source, %v\n", ellipsis, src.Width, src.Height, s.method)
	res, err := sw.Run(src)
	if err != nil {
		return err
	}
	fmt.Printf("Speed Test: Calculated %d perspectives in %d ms\n",
		res.Count, res.Elapsed.Milliseconds())

	if framesDir != "" {
		err = render.WritePNGFrames(framesDir, res.Frames)
		if err != nil {
			fmt.Printf("%v Failed to write frames to %q: %v\n", crossmark, framesDir, err)
			return err
		}
		fmt.Printf("%v %d frames written to %q\n", checkmark, len(res.Frames), framesDir)
	}

	if pdfPath != "" {
		err = writePDF(res.Frames, pdfPath)
		if err != nil {
			fmt.Printf("%v Failed to write %q: %v\n", crossmark, pdfPath, err)
			return err
		}
		fmt.Printf("%v PDF written to %q\n", checkmark, pdfPath)
	}

	return nil
}

func writePDF(frames []render.Frame, path string) error {
	return fs.WriteFile(path, func(w io.Writer) error {
		return render.WritePDF(frames, w)
	})
}
