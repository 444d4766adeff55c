// Command easeldemo demonstrates the easel drawing engine.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"strings"

	"github.com/gogpu/easel"
)

func main() {
	var (
		width  = flag.Int("width", 800, "canvas width")
		height = flag.Int("height", 600, "canvas height")
		output = flag.String("output", "demo.png", "output file (.png, .jpg or .pdf)")
	)
	flag.Parse()

	eng, err := easel.NewEngine(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	drawWave(eng, *width, *height)
	drawOverlapDemo(eng)
	drawEraserDemo(eng)

	if err := save(eng, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawWave paints a translucent sine wave across the canvas.
func drawWave(eng *easel.Engine, w, h int) {
	tool := easel.Tool{
		Color:   easel.RGB(0.2, 0.4, 0.8),
		Width:   12,
		Mode:    easel.ModeBrush,
		Shape:   easel.ShapeRound,
		Opacity: 0.7,
	}

	cy := float64(h) / 2
	must(eng.PointerDown(easel.Pt(20, cy), tool))
	for x := 30; x < w-20; x += 10 {
		y := cy + math.Sin(float64(x)/40)*float64(h)/5
		must(eng.PointerMove(easel.Pt(float64(x), y)))
	}
	must(eng.PointerUp(easel.Pt(float64(w-20), cy)))
}

// drawOverlapDemo shows that a self-crossing stroke stays uniform.
func drawOverlapDemo(eng *easel.Engine) {
	tool := easel.Tool{
		Color:   easel.RGB(0.9, 0.3, 0.2),
		Width:   20,
		Mode:    easel.ModeBrush,
		Shape:   easel.ShapeSquare,
		Opacity: 0.5,
	}

	must(eng.PointerDown(easel.Pt(100, 100), tool))
	must(eng.PointerMove(easel.Pt(250, 200)))
	must(eng.PointerMove(easel.Pt(100, 200)))
	must(eng.PointerMove(easel.Pt(250, 100)))
	must(eng.PointerUp(easel.Pt(100, 100)))
}

// drawEraserDemo cuts a line through the previous strokes.
func drawEraserDemo(eng *easel.Engine) {
	tool := easel.DefaultTool()
	tool.Mode = easel.ModeEraser
	tool.Width = 30

	must(eng.PointerDown(easel.Pt(150, 80), tool))
	must(eng.PointerMove(easel.Pt(180, 220)))
	must(eng.PointerUp(easel.Pt(210, 80)))
}

func save(eng *easel.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".pdf"):
		return eng.ExportPDF(f)
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		return eng.ExportJPEG(f, 90)
	default:
		return eng.ExportPNG(f)
	}
}

func must(err error) {
	if err != nil {
		log.Fatalf("Draw failed: %v", err)
	}
}
