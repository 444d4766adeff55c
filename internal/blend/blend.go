// Package blend implements the source-over compositing operator used to
// merge a finished stroke onto the durable drawing surface.
//
// Buffers are straight (non-premultiplied) RGBA, 4 bytes per pixel.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOver composites src over dst in place, scaling the source alpha by
// the global opacity factor. Both buffers must have the same length and be
// a multiple of 4 bytes. Opacity outside [0, 1] is clamped.
func SourceOver(dst, src []uint8, opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	if opacity == 0 {
		return
	}

	n := len(dst)
	if len(src) < n {
		n = len(src)
	}

	for i := 0; i+3 < n; i += 4 {
		sa := float64(src[i+3]) / 255 * opacity
		if sa == 0 {
			continue
		}
		if sa >= 1 {
			dst[i+0] = src[i+0]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+2]
			dst[i+3] = 255
			continue
		}

		da := float64(dst[i+3]) / 255
		outA := sa + da*(1-sa)
		if outA <= 0 {
			dst[i+0] = 0
			dst[i+1] = 0
			dst[i+2] = 0
			dst[i+3] = 0
			continue
		}

		for c := 0; c < 3; c++ {
			sc := float64(src[i+c]) / 255
			dc := float64(dst[i+c]) / 255
			out := (sc*sa + dc*da*(1-sa)) / outA
			dst[i+c] = uint8(out*255 + 0.5)
		}
		dst[i+3] = uint8(outA*255 + 0.5)
	}
}
