package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/perspective"
	"github.com/akeil/perspective/internal/imaging"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

type settings struct {
	method    perspective.Method
	maxWidth  int
	maxHeight int
}

func main() {
	app := kingpin.New("perspective", "Perspective transform for images")
	app.HelpFlag.Short('h')

	var (
		logLevel  = app.Flag("log-level", "Log level (debug, info, warning, error, none)").Envar("PERSPECTIVE_LOG_LEVEL").Default("warning").String()
		method    = app.Flag("method", "Sampling method (nearest, bilinear)").Short('m').Envar("PERSPECTIVE_METHOD").Default("nearest").String()
		maxWidth  = app.Flag("max-width", "Scale larger source images down to this width").Envar("PERSPECTIVE_MAX_WIDTH").Default("920").Int()
		maxHeight = app.Flag("max-height", "Scale larger source images down to this height").Envar("PERSPECTIVE_MAX_HEIGHT").Default("900").Int()
	)

	render := app.Command("render", "Transform an image for a single angle").Default()
	var (
		input     = render.Arg("input", "Source image, a test pattern is used if empty").String()
		output    = render.Flag("output", "Output PNG file").Short('o').Default("perspective.png").String()
		angle     = render.Flag("angle", "Angle in degrees").Short('a').Default("0").Float64()
		dstWidth  = render.Flag("width", "Destination width, derived from the source if 0").Default("0").Int()
		dstHeight = render.Flag("height", "Destination height, derived from the source if 0").Default("0").Int()
	)

	sweep := app.Command("sweep", "Transform an image for a full turn and report the time taken")
	var (
		sweepInput = sweep.Arg("input", "Source image, a test pattern is used if empty").String()
		step       = sweep.Flag("step", "Angle increment in degrees").Short('s').Default("5").Float64()
		framesDir  = sweep.Flag("frames", "Write every frame as PNG into this directory").String()
		pdfPath    = sweep.Flag("pdf", "Write all frames to this PDF file").String()
	)

	pattern := app.Command("pattern", "Write a test pattern image")
	var (
		patternOut  = pattern.Arg("output", "Output PNG file").Default("pattern.png").String()
		patternW    = pattern.Flag("width", "Image width").Default("512").Int()
		patternH    = pattern.Flag("height", "Image height").Default("512").Int()
		patternCell = pattern.Flag("cell", "Grid cell size").Default("32").Int()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	perspective.SetLogLevel(*logLevel)

	m, err := perspective.ParseMethod(*method)
	app.FatalIfError(err, "")
	s := settings{
		method:    m,
		maxWidth:  *maxWidth,
		maxHeight: *maxHeight,
	}

	switch command {
	case "render":
		err = doRender(s, *input, *output, *angle, *dstWidth, *dstHeight)
	case "sweep":
		err = doSweep(s, *sweepInput, *step, *framesDir, *pdfPath)
	case "pattern":
		err = doPattern(*patternOut, *patternW, *patternH, *patternCell)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

// loadSource reads the source image, scaled to the configured maximum size.
// Without a path, a test pattern is generated instead.
func loadSource(s settings, path string) (*perspective.Buffer, error) {
	var src *perspective.Buffer
	var err error
	if path == "" {
		src, err = imaging.Pattern(512, 512, 32)
	} else {
		src, err = imaging.Load(path)
	}
	if err != nil {
		return nil, err
	}
	return imaging.Fit(src, s.maxWidth, s.maxHeight), nil
}

func doPattern(path string, w, h, cell int) error {
	p, err := imaging.Pattern(w, h, cell)
	if err != nil {
		return err
	}
	err = imaging.SavePNG(p, path)
	if err != nil {
		return err
	}
	fmt.Printf("%v %dx%d pattern written to %q\n", checkmark, w, h, path)
	return nil
}
