package easel

import "errors"

// Engine boundary errors.
var (
	// ErrInvalidDimensions indicates a zero or negative surface dimension.
	ErrInvalidDimensions = errors.New("easel: invalid dimensions")

	// ErrInvalidToolWidth indicates a stroke width outside (0, MaxToolWidth].
	ErrInvalidToolWidth = errors.New("easel: invalid tool width")

	// ErrInvalidToolOpacity indicates an opacity outside [MinToolOpacity, 1].
	ErrInvalidToolOpacity = errors.New("easel: invalid tool opacity")

	// ErrLoadSuperseded indicates an image decode that completed after a
	// newer LoadImage or Clear call; the stale result was discarded.
	ErrLoadSuperseded = errors.New("easel: image load superseded")
)
