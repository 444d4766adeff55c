package easel

import (
	"fmt"
	"image"
	"log/slog"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/easel/internal/blend"
)

// activeStroke tracks an in-progress stroke between PointerDown and
// PointerUp. The tool is frozen at stroke start.
type activeStroke struct {
	tool   Tool
	points []Point
}

// Engine is a freehand drawing engine over two surfaces.
//
// The committed surface holds finished strokes and loaded images. The
// scratch surface holds the single stroke currently in progress, rendered
// fully opaque; at PointerUp the scratch is composited onto the committed
// surface at the tool's opacity and then discarded. Rendering a stroke
// opaque on scratch keeps overlapping segments of one stroke from
// darkening each other.
//
// All methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	width  int
	height int

	committed *Pixmap
	scratch   *Pixmap

	renderer     Renderer
	hist         *history
	historyLimit int
	background   RGBA
	scaler       draw.Scaler

	stroke *activeStroke

	// loadGen invalidates in-flight image loads. Bumped by LoadImage and
	// Clear so decodes that finish late are discarded.
	loadGen uint64
}

// NewEngine creates a drawing engine with the given canvas dimensions.
//
// Example:
//
//	eng, err := easel.NewEngine(800, 600)
//	if err != nil {
//		return err
//	}
//	eng.PointerDown(easel.Pt(10, 10), easel.DefaultTool())
//	eng.PointerMove(easel.Pt(120, 90))
//	eng.PointerUp(easel.Pt(200, 100))
func NewEngine(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	e := &Engine{
		width:        width,
		height:       height,
		background:   White,
		historyLimit: DefaultHistoryLimit,
		scaler:       draw.BiLinear,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.renderer == nil {
		e.renderer = NewSoftwareRenderer(width, height)
	}

	e.committed = NewPixmap(width, height)
	e.committed.Clear(e.background)
	e.scratch = NewPixmap(width, height)

	e.hist = newHistory(e.historyLimit)
	e.hist.Record(e.committed)

	Logger().Debug("engine created",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("historyLimit", e.hist.limit))

	return e, nil
}

// Size returns the current canvas dimensions.
func (e *Engine) Size() (width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Background returns the canvas background color.
func (e *Engine) Background() RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.background
}

// PointerDown begins a stroke at p with the given tool. The tool is
// validated and then frozen for the duration of the stroke. If a stroke
// is already open it is completed first, exactly as if PointerUp had been
// called at its last point.
func (e *Engine) PointerDown(p Point, tool Tool) error {
	if err := tool.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stroke != nil {
		e.finishStrokeLocked()
	}

	e.stroke = &activeStroke{
		tool:   tool,
		points: []Point{p},
	}
	return e.redrawScratchLocked()
}

// PointerMove extends the open stroke to p. Without an open stroke it is
// a no-op. The scratch surface always shows the full stroke path, so a
// stroke crossing itself stays uniform.
func (e *Engine) PointerMove(p Point) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stroke == nil {
		return nil
	}
	e.stroke.points = append(e.stroke.points, p)
	return e.redrawScratchLocked()
}

// PointerUp completes the open stroke at p, composites it onto the
// committed surface at the tool's opacity and records an undo snapshot.
// Without an open stroke it is a no-op.
func (e *Engine) PointerUp(p Point) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stroke == nil {
		return nil
	}
	e.stroke.points = append(e.stroke.points, p)
	if err := e.redrawScratchLocked(); err != nil {
		return err
	}
	e.finishStrokeLocked()
	return nil
}

// CancelStroke discards the open stroke without committing it.
// Without an open stroke it is a no-op.
func (e *Engine) CancelStroke() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stroke == nil {
		return
	}
	e.stroke = nil
	e.scratch.Clear(Transparent)
}

// redrawScratchLocked clears the scratch surface and renders the full
// open stroke onto it.
func (e *Engine) redrawScratchLocked() error {
	e.scratch.Clear(Transparent)
	if e.stroke == nil {
		return nil
	}
	params := e.stroke.tool.strokeParams(e.background)
	if err := e.renderer.Stroke(e.scratch, e.stroke.points, params); err != nil {
		return fmt.Errorf("easel: stroke render failed: %w", err)
	}
	return nil
}

// finishStrokeLocked merges the scratch surface onto the committed
// surface, records a snapshot and resets the stroke state.
func (e *Engine) finishStrokeLocked() {
	opacity := e.stroke.tool.compositeOpacity()
	blend.SourceOver(e.committed.Data(), e.scratch.Data(), opacity)

	Logger().Debug("stroke committed",
		slog.Int("points", len(e.stroke.points)),
		slog.String("mode", e.stroke.tool.Mode.String()),
		slog.Float64("opacity", opacity))

	e.stroke = nil
	e.scratch.Clear(Transparent)
	e.hist.Record(e.committed)
}

// Undo restores the previous snapshot. It reports whether anything
// changed. An open stroke is discarded first.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.hist.Undo()
	if snap == nil {
		return false
	}
	e.discardStrokeLocked()
	e.restoreLocked(snap)
	return true
}

// Redo re-applies the next snapshot. It reports whether anything changed.
// An open stroke is discarded first.
func (e *Engine) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.hist.Redo()
	if snap == nil {
		return false
	}
	e.discardStrokeLocked()
	e.restoreLocked(snap)
	return true
}

// CanUndo reports whether Undo would change the canvas.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanUndo()
}

// CanRedo reports whether Redo would change the canvas.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanRedo()
}

// HistoryLen returns the number of retained snapshots.
func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.Len()
}

// discardStrokeLocked drops any open stroke and its scratch content.
func (e *Engine) discardStrokeLocked() {
	if e.stroke == nil {
		return
	}
	e.stroke = nil
	e.scratch.Clear(Transparent)
}

// restoreLocked writes a snapshot onto the committed surface. Snapshots
// recorded at a different canvas size are stretched to the current size
// over a background fill.
func (e *Engine) restoreLocked(snap *Pixmap) {
	if snap.Width() == e.width && snap.Height() == e.height {
		copy(e.committed.Data(), snap.Data())
		return
	}
	e.committed.Clear(e.background)
	rescaleInto(e.committed, snap, e.scaler)
}

// Clear fills the committed surface with the background color, discards
// any open stroke, invalidates in-flight image loads and records an undo
// snapshot.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loadGen++
	e.discardStrokeLocked()
	e.committed.Clear(e.background)
	e.hist.Record(e.committed)
}

// Resize changes the canvas dimensions. Existing content is stretched to
// the new size; an open stroke survives with its points scaled by the
// same ratio. The undo history keeps snapshots at their original sizes.
// Resizing to the current size is a no-op.
func (e *Engine) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if width == e.width && height == e.height {
		return nil
	}

	sx := float64(width) / float64(e.width)
	sy := float64(height) / float64(e.height)

	committed := NewPixmap(width, height)
	committed.Clear(e.background)
	rescaleInto(committed, e.committed, e.scaler)
	e.committed = committed
	e.scratch = NewPixmap(width, height)

	e.width = width
	e.height = height
	if r, ok := e.renderer.(interface{ Resize(int, int) }); ok {
		r.Resize(width, height)
	}

	if e.stroke != nil {
		for i, p := range e.stroke.points {
			e.stroke.points[i] = Pt(p.X*sx, p.Y*sy)
		}
		if err := e.redrawScratchLocked(); err != nil {
			return err
		}
	}

	Logger().Debug("canvas resized",
		slog.Int("width", width),
		slog.Int("height", height))

	return nil
}

// Image returns the currently visible canvas as a freshly allocated
// image: the committed surface with any open stroke composited on top at
// its preview opacity.
func (e *Engine) Image() image.Image {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.imageLocked()
}

func (e *Engine) imageLocked() *image.RGBA {
	if e.stroke == nil {
		return e.committed.ToImage()
	}
	preview := e.committed.Clone()
	blend.SourceOver(preview.Data(), e.scratch.Data(), e.stroke.tool.compositeOpacity())
	return preview.ToImage()
}
