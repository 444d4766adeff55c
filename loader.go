package easel

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes an image from r and places it on the committed
// surface, scaled to the largest size that fits the canvas with its
// aspect ratio preserved and centered over a background fill. The result
// is recorded as an undo snapshot; any open stroke is discarded.
//
// Decoding happens without holding the engine lock, so drawing stays
// responsive during a slow load. If another LoadImage or Clear call
// arrives before decoding finishes, the stale result is discarded and
// ErrLoadSuperseded is returned.
//
// Supported formats are PNG, JPEG, GIF, BMP and WebP.
func (e *Engine) LoadImage(ctx context.Context, r io.Reader) error {
	e.mu.Lock()
	e.loadGen++
	gen := e.loadGen
	e.mu.Unlock()

	img, format, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("easel: decode image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("easel: load image: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.loadGen {
		return ErrLoadSuperseded
	}

	e.discardStrokeLocked()
	e.placeImageLocked(img)
	e.hist.Record(e.committed)

	Logger().Debug("image loaded",
		slog.String("format", format),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()))

	return nil
}

// LoadImageFile is a convenience wrapper around LoadImage reading from a
// file on disk.
func (e *Engine) LoadImageFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("easel: open image file: %w", err)
	}
	defer f.Close()
	return e.LoadImage(ctx, f)
}

// placeImageLocked fills the committed surface with the background color
// and draws img aspect-fit centered onto it.
func (e *Engine) placeImageLocked(img image.Image) {
	e.committed.Clear(e.background)

	b := img.Bounds()
	fit := aspectFitRect(b.Dx(), b.Dy(), e.width, e.height)
	if fit.Empty() {
		return
	}

	dst := e.committed.RGBA()
	e.scaler.Scale(dst, fit, img, b, draw.Over, nil)
}
