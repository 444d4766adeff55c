// Package easel provides a headless freehand drawing engine for Go.
//
// # Overview
//
// easel is a Pure Go raster drawing engine in the GoGPU family. It models a
// paintable canvas the way interactive drawing applications need one: a
// committed surface holding finished strokes, a scratch surface holding the
// stroke currently under the pointer, a bounded undo/redo history of full
// snapshots, and content-preserving resizing.
//
// # Quick Start
//
//	import "github.com/gogpu/easel"
//
//	eng, _ := easel.NewEngine(512, 512)
//
//	tool := easel.DefaultTool()
//	tool.Color = easel.Red
//	tool.Width = 10
//
//	// Draw one stroke
//	eng.PointerDown(easel.Pt(100, 100), tool)
//	eng.PointerMove(easel.Pt(200, 150))
//	eng.PointerUp(easel.Pt(300, 180))
//
//	// Step back, step forward
//	eng.Undo()
//	eng.Redo()
//
//	// Save to PNG
//	f, _ := os.Create("drawing.png")
//	eng.ExportPNG(f)
//	f.Close()
//
// # Surfaces
//
// The engine owns two equally sized pixel buffers. The committed surface is
// durable: it starts opaque white (configurable via WithBackground) and only
// changes through finished strokes, Clear, LoadImage, Undo/Redo, and Resize.
// The scratch surface is transparent except for the in-progress stroke and
// is merged onto the committed surface at the stroke's opacity when the
// pointer lifts. Exports and undo snapshots read the committed surface
// only; Image additionally composites the open stroke as a live preview.
//
// # Concurrency
//
// All engine operations are serialized internally; an Engine is safe for use
// from multiple goroutines. Image decoding in LoadImage is the only slow
// operation and runs without holding the engine lock; a decode that finishes
// after a newer LoadImage or Clear is discarded.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, Pixmap, Tool, Renderer
//   - Internal: stroke (outline expansion), raster (scanline AA), blend
//     (compositing)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Pointer coordinates are surface-local pixels; hosts translate viewport
// coordinates before calling the pointer methods.
package easel
