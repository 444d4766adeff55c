package easel

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// ExportPNG writes the committed surface to w as a PNG image. An open
// stroke is not included; only finished strokes are durable.
func (e *Engine) ExportPNG(w io.Writer) error {
	e.mu.Lock()
	img := e.committed.ToImage()
	e.mu.Unlock()

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("easel: encode png: %w", err)
	}
	return nil
}

// ExportJPEG writes the committed surface to w as a JPEG image. Quality
// ranges from 1 to 100; values outside that range use jpeg.DefaultQuality.
func (e *Engine) ExportJPEG(w io.Writer, quality int) error {
	e.mu.Lock()
	img := e.committed.ToImage()
	e.mu.Unlock()

	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("easel: encode jpeg: %w", err)
	}
	return nil
}

// ExportPDF writes the committed surface to w as a single-page A4 PDF
// with the canvas image fit to the page margins, aspect ratio preserved.
func (e *Engine) ExportPDF(w io.Writer) error {
	e.mu.Lock()
	img := e.committed.ToImage()
	width, height := e.width, e.height
	e.mu.Unlock()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("easel: encode png for pdf: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	left, top, right, bottom := pdf.GetMargins()
	availW := pageW - left - right
	availH := pageH - top - bottom

	// Fit the canvas inside the printable area.
	scale := availW / float64(width)
	if s := availH / float64(height); s < scale {
		scale = s
	}
	imgW := float64(width) * scale
	imgH := float64(height) * scale
	x := left + (availW-imgW)/2
	y := top + (availH-imgH)/2

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &buf)
	pdf.ImageOptions("canvas", x, y, imgW, imgH, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("easel: write pdf: %w", err)
	}
	return nil
}
