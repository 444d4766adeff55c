package easel

import "math"

// ToolMode selects how a stroke is applied to the committed surface.
type ToolMode int

const (
	// ModeBrush paints the tool color at the tool opacity.
	ModeBrush ToolMode = iota
	// ModeEraser paints the background color at full opacity.
	//
	// Erasing is "paint background color", not alpha removal: erasing over
	// a loaded photo does not restore transparency, it paints background.
	ModeEraser
)

// String returns a string representation of the tool mode.
func (m ToolMode) String() string {
	switch m {
	case ModeBrush:
		return "Brush"
	case ModeEraser:
		return "Eraser"
	default:
		return "Unknown"
	}
}

// ToolShape selects the cross-section of the stroke.
type ToolShape int

const (
	// ShapeRound produces round caps and joins.
	ShapeRound ToolShape = iota
	// ShapeSquare produces square caps and sharp joins.
	ShapeSquare
)

// String returns a string representation of the tool shape.
func (s ToolShape) String() string {
	switch s {
	case ShapeRound:
		return "Round"
	case ShapeSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// Tool validation limits. Values outside these ranges are rejected at the
// engine boundary, never silently clamped.
const (
	// MaxToolWidth is the largest accepted stroke width in pixels.
	MaxToolWidth = 50.0

	// MinToolOpacity is the smallest accepted brush opacity.
	MinToolOpacity = 0.1
)

// Tool describes the drawing tool for one stroke. The engine captures the
// tool at stroke start; changing fields afterwards does not affect an
// already open stroke.
type Tool struct {
	// Color is the stroke color. Ignored by ModeEraser.
	Color RGBA

	// Width is the stroke width in pixels, in (0, MaxToolWidth].
	Width float64

	// Mode selects brush or eraser behavior.
	Mode ToolMode

	// Shape selects round or square caps and joins.
	Shape ToolShape

	// Opacity is the composite opacity in [MinToolOpacity, 1].
	// Erasers always composite fully opaque regardless of this value.
	Opacity float64
}

// DefaultTool returns a 4px round black brush at full opacity.
func DefaultTool() Tool {
	return Tool{
		Color:   Black,
		Width:   4,
		Mode:    ModeBrush,
		Shape:   ShapeRound,
		Opacity: 1,
	}
}

// Validate checks the tool configuration against the engine limits.
func (t Tool) Validate() error {
	if math.IsNaN(t.Width) || t.Width <= 0 || t.Width > MaxToolWidth {
		return ErrInvalidToolWidth
	}
	if math.IsNaN(t.Opacity) || t.Opacity < MinToolOpacity || t.Opacity > 1 {
		return ErrInvalidToolOpacity
	}
	return nil
}

// strokeParams derives the rasterization parameters for a stroke drawn with
// this tool over the given background color.
func (t Tool) strokeParams(background RGBA) StrokeParams {
	color := t.Color
	if t.Mode == ModeEraser {
		color = background
	}

	params := StrokeParams{
		Color:      color,
		Width:      t.Width,
		MiterLimit: 10,
	}
	switch t.Shape {
	case ShapeSquare:
		params.Cap = LineCapSquare
		params.Join = LineJoinMiter
	default:
		params.Cap = LineCapRound
		params.Join = LineJoinRound
	}
	return params
}

// compositeOpacity returns the opacity for merging the finished stroke onto
// the committed surface. Erasers always merge fully opaque.
func (t Tool) compositeOpacity() float64 {
	if t.Mode == ModeEraser {
		return 1
	}
	return t.Opacity
}
