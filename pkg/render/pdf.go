package render

import (
	"bytes"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/sync/errgroup"

	"github.com/akeil/perspective/internal/imaging"
	"github.com/akeil/perspective/internal/logging"
)

// WritePDF renders the frames to a PDF document, one frame per page,
// and writes the document to w.
func WritePDF(frames []Frame, w io.Writer) error {
	logging.Debug("Render PDF with %d frames", len(frames))

	// encoding is the expensive part, do it in parallel
	pngs := make([]bytes.Buffer, len(frames))
	var group errgroup.Group
	for i := range frames {
		i := i
		group.Go(func() error {
			return imaging.EncodePNG(frames[i].Buffer, &pngs[i])
		})
	}
	err := group.Wait()
	if err != nil {
		return err
	}

	pdf := setupPDF()
	for i, f := range frames {
		addFramePage(pdf, f, &pngs[i])
	}

	return pdf.Output(w)
}

func setupPDF() *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, "A4", fontDir)

	pdf.SetMargins(24, 24, 24) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("perspective", true)
	pdf.SetTitle("Perspective sweep", true)

	return pdf
}

func addFramePage(pdf *gofpdf.Fpdf, f Frame, r io.Reader) {
	pdf.AddPage()

	left, top, right, _ := pdf.GetMargins()
	pdf.SetXY(left, top)
	pdf.Cellf(0, 10, "Angle = %v degrees, %v  |  %d / {totalPages}", f.Angle, f.Method, pdf.PageNo())

	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, r)

	// The frame is scaled to the (usable) page width
	wPage, _ := pdf.GetPageSize()
	w := wPage - left - right
	x := left
	y := top + 16
	h := 0.0 // keep aspect ratio
	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, w, h, flow, opts, link, linkStr)
}
