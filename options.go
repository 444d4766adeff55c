package easel

import "golang.org/x/image/draw"

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer sets a custom renderer for the engine.
//
// Example:
//
//	eng, err := easel.NewEngine(800, 600, easel.WithRenderer(myRenderer))
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithBackground sets the canvas background color. The committed surface
// is cleared to this color on creation and by Clear. The eraser paints it.
// The default background is White.
func WithBackground(c RGBA) Option {
	return func(e *Engine) {
		e.background = c
	}
}

// WithHistoryLimit caps the number of retained undo snapshots.
// Values below 1 are ignored. The default is DefaultHistoryLimit.
func WithHistoryLimit(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.historyLimit = n
		}
	}
}

// WithScaler sets the interpolation kernel used when rescaling pixel
// content on resize and when restoring snapshots recorded at a different
// size. The default is draw.BiLinear.
func WithScaler(s draw.Scaler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scaler = s
		}
	}
}
