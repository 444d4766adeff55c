package easel

import (
	"github.com/gogpu/easel/internal/raster"
	"github.com/gogpu/easel/internal/stroke"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// StrokeParams carries the rasterization parameters for one stroke.
// The parameters are frozen at stroke start and never re-read mid-stroke.
type StrokeParams struct {
	Color      RGBA
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// Renderer rasterizes stroke geometry onto a pixmap.
type Renderer interface {
	// Stroke draws the polyline as a single connected stroke. A one-point
	// polyline produces a dot of the stroke width.
	// Returns an error if the rendering operation fails.
	Stroke(pixmap *Pixmap, points []Point, params StrokeParams) error
}

// SoftwareRenderer is a CPU-based scanline rasterizer.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
	}
}

// Resize adjusts the renderer to new target dimensions.
func (r *SoftwareRenderer) Resize(width, height int) {
	r.rasterizer.Resize(width, height)
}

// Stroke implements Renderer with anti-aliasing enabled.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, points []Point, params StrokeParams) error {
	pts := dedupPoints(points)
	if len(pts) == 0 {
		return nil
	}

	style := stroke.Style{
		Width:      params.Width,
		Cap:        capToStroke(params.Cap),
		Join:       joinToStroke(params.Join),
		MiterLimit: params.MiterLimit,
	}

	var outline stroke.Outline
	if len(pts) == 1 {
		outline = stroke.Dot(pts[0], style)
	} else {
		outline = stroke.NewExpander(style).Expand(pts)
	}
	if len(outline) == 0 {
		return nil
	}

	loops := [][]raster.Point{outlineToRaster(outline)}
	color := raster.RGBA{R: params.Color.R, G: params.Color.G, B: params.Color.B, A: params.Color.A}
	r.rasterizer.FillLoops(&pixmapAdapter{pixmap: pixmap}, loops, color)
	return nil
}

// dedupPoints converts to stroke points, dropping consecutive duplicates.
func dedupPoints(points []Point) []stroke.Point {
	out := make([]stroke.Point, 0, len(points))
	for _, p := range points {
		sp := stroke.Point{X: p.X, Y: p.Y}
		if len(out) > 0 && out[len(out)-1] == sp {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// outlineToRaster converts an outline loop to rasterizer points.
func outlineToRaster(outline stroke.Outline) []raster.Point {
	pts := make([]raster.Point, len(outline))
	for i, p := range outline {
		pts[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return pts
}

func capToStroke(c LineCap) stroke.LineCap {
	switch c {
	case LineCapRound:
		return stroke.LineCapRound
	case LineCapSquare:
		return stroke.LineCapSquare
	default:
		return stroke.LineCapButt
	}
}

func joinToStroke(j LineJoin) stroke.LineJoin {
	switch j {
	case LineJoinRound:
		return stroke.LineJoinRound
	case LineJoinBevel:
		return stroke.LineJoinBevel
	default:
		return stroke.LineJoinMiter
	}
}

// pixmapAdapter adapts easel.Pixmap to the raster.AAPixmap interface.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p *pixmapAdapter) Width() int {
	return p.pixmap.Width()
}

func (p *pixmapAdapter) Height() int {
	return p.pixmap.Height()
}

// BlendPixelAlpha blends a color with the existing pixel using the given
// coverage alpha. Source-over compositing in straight alpha.
func (p *pixmapAdapter) BlendPixelAlpha(x, y int, c raster.RGBA, alpha uint8) {
	if alpha == 0 {
		return
	}
	if x < 0 || x >= p.pixmap.Width() || y < 0 || y >= p.pixmap.Height() {
		return
	}

	col := RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	if alpha == 255 && c.A >= 1 {
		p.pixmap.SetPixel(x, y, col)
		return
	}

	existing := p.pixmap.GetPixel(x, y)

	srcAlpha := c.A * float64(alpha) / 255.0
	invSrcAlpha := 1.0 - srcAlpha

	// Source-over compositing
	outA := srcAlpha + existing.A*invSrcAlpha
	if outA > 0 {
		outR := (c.R*srcAlpha + existing.R*existing.A*invSrcAlpha) / outA
		outG := (c.G*srcAlpha + existing.G*existing.A*invSrcAlpha) / outA
		outB := (c.B*srcAlpha + existing.B*existing.A*invSrcAlpha) / outA
		p.pixmap.SetPixel(x, y, RGBA{R: outR, G: outG, B: outB, A: outA})
	}
}
