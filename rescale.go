package easel

import (
	"image"

	"golang.org/x/image/draw"
)

// rescaleInto stretches src to fill dst, ignoring aspect ratio.
// Both pixmaps are accessed through shared-pixel RGBA views, so no
// intermediate allocation happens.
func rescaleInto(dst, src *Pixmap, scaler draw.Scaler) {
	if dst.Width() == src.Width() && dst.Height() == src.Height() {
		copy(dst.Data(), src.Data())
		return
	}
	dstImg := dst.RGBA()
	srcImg := src.RGBA()
	scaler.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
}

// aspectFitRect returns the centered rectangle inside (dstW, dstH) that
// preserves the source aspect ratio. A source that already fits is not
// scaled up beyond the destination; it is scaled to the largest size that
// fits entirely.
func aspectFitRect(srcW, srcH, dstW, dstH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return image.Rectangle{}
	}

	scaleX := float64(dstW) / float64(srcW)
	scaleY := float64(dstH) / float64(srcH)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	w := int(float64(srcW)*scale + 0.5)
	h := int(float64(srcH)*scale + 0.5)
	if w > dstW {
		w = dstW
	}
	if h > dstH {
		h = dstH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	x := (dstW - w) / 2
	y := (dstH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}
