// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides scanline rasterization for closed polygon loops,
// with anti-aliasing by 4x vertical supersampling and analytic horizontal
// coverage.
package raster

import "math"

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// AAPixmap is the surface interface for anti-aliased rendering
// (avoids import cycle).
type AAPixmap interface {
	Width() int
	Height() int
	BlendPixelAlpha(x, y int, c RGBA, alpha uint8)
}

// Supersample is the number of sub-scanlines sampled per pixel row.
const Supersample = 4

// Rasterizer performs scanline rasterization.
type Rasterizer struct {
	width    int
	height   int
	aet      *ActiveEdgeTable
	coverage []float64
	edges    []Edge
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:    width,
		height:   height,
		aet:      NewActiveEdgeTable(),
		coverage: make([]float64, width),
	}
}

// Resize adjusts the rasterizer to new target dimensions.
func (r *Rasterizer) Resize(width, height int) {
	r.width = width
	r.height = height
	if len(r.coverage) < width {
		r.coverage = make([]float64, width)
	}
}

// FillLoops rasterizes closed polygon loops with the non-zero winding rule.
// Each loop is implicitly closed (last vertex connects to first). Loops
// never share edges with each other, so separate loops keep independent
// winding contributions.
func (r *Rasterizer) FillLoops(pixmap AAPixmap, loops [][]Point, color RGBA) {
	r.edges = r.edges[:0]
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64

	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		for i := range loop {
			p0 := loop[i]
			p1 := loop[(i+1)%len(loop)]

			// Skip horizontal edges; they never cross a scanline.
			if math.Abs(p1.Y-p0.Y) < 1e-9 {
				continue
			}
			r.edges = append(r.edges, NewEdge(p0, p1))
			yMin = math.Min(yMin, math.Min(p0.Y, p1.Y))
			yMax = math.Max(yMax, math.Max(p0.Y, p1.Y))
		}
	}

	if len(r.edges) == 0 {
		return
	}

	yMinInt := int(math.Floor(yMin))
	yMaxInt := int(math.Ceil(yMax))
	if yMinInt < 0 {
		yMinInt = 0
	}
	if yMaxInt > pixmap.Height() {
		yMaxInt = pixmap.Height()
	}

	width := pixmap.Width()
	if len(r.coverage) < width {
		r.coverage = make([]float64, width)
	}
	coverage := r.coverage[:width]

	for y := yMinInt; y < yMaxInt; y++ {
		for x := range coverage {
			coverage[x] = 0
		}

		for sub := 0; sub < Supersample; sub++ {
			scanY := float64(y) + (float64(sub)+0.5)/Supersample
			r.scanline(coverage, scanY)
		}

		for x := 0; x < width; x++ {
			cov := coverage[x]
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			pixmap.BlendPixelAlpha(x, y, color, uint8(cov*255+0.5))
		}
	}
}

// scanline accumulates the horizontal coverage contribution of a single
// sub-scanline into the coverage buffer.
func (r *Rasterizer) scanline(coverage []float64, y float64) {
	r.aet.Clear()

	for i := range r.edges {
		e := &r.edges[i]
		if e.y0 <= y && y < e.y1 {
			r.aet.AddAtY(*e, y)
		}
	}

	active := r.aet.Edges()
	if len(active) == 0 {
		return
	}
	r.aet.Sort()

	// Non-zero winding spans.
	winding := 0
	var x1 float64
	for _, edge := range active {
		if winding == 0 {
			x1 = edge.x
		}
		winding += edge.dir
		if winding == 0 {
			r.addSpan(coverage, x1, edge.x)
		}
	}
}

// addSpan adds one sub-scanline's worth of coverage for the span [x1, x2),
// with exact fractional coverage at the span ends.
func (r *Rasterizer) addSpan(coverage []float64, x1, x2 float64) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > float64(len(coverage)) {
		x2 = float64(len(coverage))
	}
	if x1 >= x2 {
		return
	}

	first := int(math.Floor(x1))
	last := int(math.Ceil(x2)) - 1
	for x := first; x <= last && x < len(coverage); x++ {
		left := math.Max(x1, float64(x))
		right := math.Min(x2, float64(x+1))
		if right > left {
			coverage[x] += (right - left) / Supersample
		}
	}
}
