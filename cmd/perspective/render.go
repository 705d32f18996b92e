package main

import (
	"fmt"
	"time"

	"github.com/akeil/perspective"
	"github.com/akeil/perspective/internal/imaging"
)

func doRender(s settings, input, output string, angle float64, w, h int) error {
	src, err := loadSource(s, input)
	if err != nil {
		return err
	}

	if w == 0 && h == 0 {
		w, h = perspective.DestinationSize(src.Width, src.Height)
	}
	dst, err := perspective.NewBuffer(w, h)
	if err != nil {
		return err
	}

	start := time.Now()
	perspective.Transform(src, dst, angle, s.method)
	elapsed := time.Since(start)

	err = imaging.SavePNG(dst, output)
	if err != nil {
		fmt.Printf("%v Failed to write %q: %v\n", crossmark, output, err)
		return err
	}

	fmt.Printf("%v Angle = %v degrees. Processing time = %d ms. Written to %q\n",
		checkmark, angle, elapsed.Milliseconds(), output)
	return nil
}
