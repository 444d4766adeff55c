package easel

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// encodeSolidPNG returns a PNG of the given size filled with one color.
func encodeSolidPNG(t *testing.T, width, height int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

// TestLoadImageAspectFit loads a 2:1 image onto a square canvas and
// checks the letterboxed placement.
func TestLoadImageAspectFit(t *testing.T) {
	eng, err := NewEngine(100, 100)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	data := encodeSolidPNG(t, 200, 100, color.NRGBA{R: 255, A: 255})
	if err := eng.LoadImage(context.Background(), bytes.NewReader(data)); err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	// The image fits as 100x50 centered vertically: rows 25..74.
	if got := eng.committed.GetPixel(50, 50); !colorClose(got, Red, 0.02) {
		t.Errorf("pixel inside fit rect = %v, want red", got)
	}
	if got := eng.committed.GetPixel(50, 10); !colorClose(got, White, 0.02) {
		t.Errorf("letterbox pixel = %v, want white background", got)
	}
	if got := eng.committed.GetPixel(50, 90); !colorClose(got, White, 0.02) {
		t.Errorf("letterbox pixel = %v, want white background", got)
	}

	// The load is undoable.
	if !eng.Undo() {
		t.Fatal("Undo after LoadImage returned false")
	}
	if got := eng.committed.GetPixel(50, 50); !colorClose(got, White, 0.02) {
		t.Errorf("pixel after undo = %v, want white", got)
	}
}

func TestLoadImageDecodeFailure(t *testing.T) {
	eng, err := NewEngine(50, 50)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	lenBefore := eng.HistoryLen()

	err = eng.LoadImage(context.Background(), bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Fatal("LoadImage with garbage input returned nil error")
	}
	if errors.Is(err, ErrLoadSuperseded) {
		t.Errorf("decode failure reported as ErrLoadSuperseded: %v", err)
	}

	if got := eng.committed.GetPixel(25, 25); !colorClose(got, White, 0.01) {
		t.Errorf("canvas changed on failed load: pixel = %v", got)
	}
	if eng.HistoryLen() != lenBefore {
		t.Errorf("HistoryLen() = %d, want %d (failed load must not record)",
			eng.HistoryLen(), lenBefore)
	}
}

// clearDuringRead invalidates the load from inside the decode by calling
// Clear on the first Read, after the load generation was captured.
type clearDuringRead struct {
	eng     *Engine
	r       io.Reader
	cleared bool
}

func (c *clearDuringRead) Read(p []byte) (int, error) {
	if !c.cleared {
		c.cleared = true
		c.eng.Clear()
	}
	return c.r.Read(p)
}

// TestLoadImageSuperseded verifies that a decode finishing after a
// newer canvas operation is discarded.
func TestLoadImageSuperseded(t *testing.T) {
	eng, err := NewEngine(100, 100)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	data := encodeSolidPNG(t, 50, 50, color.NRGBA{B: 255, A: 255})
	r := &clearDuringRead{eng: eng, r: bytes.NewReader(data)}

	err = eng.LoadImage(context.Background(), r)
	if !errors.Is(err, ErrLoadSuperseded) {
		t.Fatalf("LoadImage error = %v, want ErrLoadSuperseded", err)
	}
	if got := eng.committed.GetPixel(50, 50); !colorClose(got, White, 0.01) {
		t.Errorf("stale load reached the canvas: pixel = %v", got)
	}
}

func TestLoadImageContextCanceled(t *testing.T) {
	eng, err := NewEngine(50, 50)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := encodeSolidPNG(t, 10, 10, color.NRGBA{G: 255, A: 255})
	err = eng.LoadImage(ctx, bytes.NewReader(data))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("LoadImage error = %v, want context.Canceled", err)
	}
	if got := eng.committed.GetPixel(25, 25); !colorClose(got, White, 0.01) {
		t.Errorf("canceled load reached the canvas: pixel = %v", got)
	}
}

func TestLoadImageFile(t *testing.T) {
	eng, err := NewEngine(60, 60)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.png")
	data := encodeSolidPNG(t, 60, 60, color.NRGBA{B: 255, A: 255})
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	if err := eng.LoadImageFile(context.Background(), path); err != nil {
		t.Fatalf("LoadImageFile failed: %v", err)
	}
	if got := eng.committed.GetPixel(30, 30); !colorClose(got, Blue, 0.02) {
		t.Errorf("pixel = %v, want blue", got)
	}

	if err := eng.LoadImageFile(context.Background(), filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadImageFile with a missing path returned nil error")
	}
}

func TestAspectFitRect(t *testing.T) {
	tests := []struct {
		name                     string
		srcW, srcH, dstW, dstH   int
		wantX, wantY, wantW, wantH int
	}{
		{"wide into square", 200, 100, 100, 100, 0, 25, 100, 50},
		{"tall into square", 100, 200, 100, 100, 25, 0, 50, 100},
		{"exact fit", 100, 100, 100, 100, 0, 0, 100, 100},
		{"small scales up", 50, 50, 100, 100, 0, 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aspectFitRect(tt.srcW, tt.srcH, tt.dstW, tt.dstH)
			if got.Min.X != tt.wantX || got.Min.Y != tt.wantY ||
				got.Dx() != tt.wantW || got.Dy() != tt.wantH {
				t.Errorf("aspectFitRect = %v, want (%d,%d)+%dx%d",
					got, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}
