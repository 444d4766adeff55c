// Package stroke converts polylines into filled stroke outlines.
//
// The expansion follows the tiny-skia/kurbo approach: the outer offset path
// goes forward, the inner offset path is reversed, and caps and joins close
// the loop. The result is a closed polygon loop suitable for non-zero
// winding rasterization.
//
// Unlike general path strokers, the input here is always a flattened
// polyline (pointer samples arrive as straight segments), so arcs for round
// caps and joins are emitted directly as polyline vertices.
package stroke
