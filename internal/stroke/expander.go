package stroke

import (
	"math"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the point displaced by a vector.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length < 1e-10 {
		return Vec2{X: 0, Y: 0}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Style defines the stroke expansion style.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns a style with default settings.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Outline is a closed polygon loop of the expanded stroke boundary.
// The loop is implicitly closed: the last vertex connects to the first.
type Outline []Point

// tolerance is the maximum chord deviation when emitting arcs.
const tolerance = 0.25

// Expander converts polylines into filled stroke outlines.
type Expander struct {
	style Style

	forward  []Point
	backward []Point

	startPt   Point
	startNorm Vec2
	startTan  Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2

	// Join threshold for skipping insignificant direction changes.
	joinThresh float64
}

// NewExpander creates an expander with the given style.
func NewExpander(style Style) *Expander {
	if style.Width <= 0 {
		style.Width = 1
	}
	if style.MiterLimit <= 0 {
		style.MiterLimit = 4
	}
	return &Expander{
		style:      style,
		joinThresh: 2.0 * tolerance / style.Width,
	}
}

// Expand converts an open polyline into a closed outline loop.
// Consecutive duplicate points are skipped. Returns nil if the polyline
// has no extent (use Dot for single-point strokes).
func (e *Expander) Expand(points []Point) Outline {
	e.reset()
	if len(points) == 0 {
		return nil
	}

	e.startPt = points[0]
	e.lastPt = points[0]
	for i := 1; i < len(points); i++ {
		p := points[i]
		tangent := p.Sub(e.lastPt)
		if tangent.Length() < 1e-10 {
			continue
		}
		e.doJoin(tangent)
		e.lastTan = tangent
		e.doLine(tangent, p)
	}

	if len(e.forward) == 0 {
		return nil
	}
	return e.finish()
}

// reset clears the expander state for a new expansion.
func (e *Expander) reset() {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
	e.startPt = Point{}
	e.startNorm = Vec2{}
	e.startTan = Vec2{}
	e.lastPt = Point{}
	e.lastTan = Vec2{}
	e.lastNorm = Vec2{}
}

// doJoin connects the current segment to the previous one, or starts the
// offset paths for the first segment.
func (e *Expander) doJoin(tan0 Vec2) {
	radius := 0.5 * e.style.Width
	norm := tan0.Perp().Normalize().Scale(radius)

	if len(e.forward) == 0 {
		e.startFirstSegment(e.lastPt, norm, tan0)
		return
	}
	e.joinWithPrevious(e.lastPt, norm, tan0)
}

// startFirstSegment initializes the forward and backward paths.
func (e *Expander) startFirstSegment(p0 Point, norm, tan0 Vec2) {
	e.forward = append(e.forward, p0.Add(norm.Neg()))
	e.backward = append(e.backward, p0.Add(norm))
	e.startPt = p0
	e.startTan = tan0
	e.startNorm = norm
}

// joinWithPrevious applies the configured join at the segment boundary.
func (e *Expander) joinWithPrevious(p0 Point, norm, tan0 Vec2) {
	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Skip the join if the direction change is insignificant, but still
	// connect the paths to maintain continuity.
	if dot > 0.0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = append(e.backward, p0.Add(norm))
		return
	}

	switch e.style.Join {
	case LineJoinRound:
		e.applyRoundJoin(p0, norm, cross)
	case LineJoinMiter:
		e.applyMiterJoin(p0, norm, cross)
	default:
		e.applyBevelJoin(p0, norm)
	}
}

// applyBevelJoin connects both offset paths directly.
func (e *Expander) applyBevelJoin(p0 Point, norm Vec2) {
	e.forward = append(e.forward, p0.Add(norm.Neg()))
	e.backward = append(e.backward, p0.Add(norm))
}

// applyMiterJoin extends the outer corner to a sharp point when the miter
// ratio stays within the limit, falling back to a bevel otherwise.
func (e *Expander) applyMiterJoin(p0 Point, norm Vec2, cross float64) {
	n1 := e.lastNorm.Normalize()
	n2 := norm.Normalize()
	mid := n1.Add(n2)
	midLen := mid.Length()
	if midLen < 1e-10 {
		// 180 degree turn, no finite miter.
		e.applyBevelJoin(p0, norm)
		return
	}

	// cos(theta/2) from the half-angle identity.
	cosHalf := midLen / 2
	ratio := 1 / cosHalf
	if ratio > e.style.MiterLimit {
		e.applyBevelJoin(p0, norm)
		return
	}

	radius := 0.5 * e.style.Width
	miter := mid.Scale(1 / midLen).Scale(radius * ratio)
	if cross > 0 {
		// Outer corner on the forward side.
		e.forward = append(e.forward, p0.Add(miter.Neg()))
		e.backward = append(e.backward, p0.Add(norm))
	} else {
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = append(e.backward, p0.Add(miter))
	}
}

// applyRoundJoin emits an arc on the outer side of the turn.
func (e *Expander) applyRoundJoin(p0 Point, norm Vec2, cross float64) {
	if cross > 0 {
		// Arc on the forward side from -lastNorm to -norm.
		sweep := signedAngle(e.lastNorm.Neg(), norm.Neg())
		e.forward = appendArc(e.forward, p0, e.lastNorm.Neg(), sweep)
		e.backward = append(e.backward, p0.Add(norm))
	} else {
		sweep := signedAngle(e.lastNorm, norm)
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = appendArc(e.backward, p0, e.lastNorm, sweep)
	}
}

// doLine extends both offset paths along a segment.
func (e *Expander) doLine(tangent Vec2, p1 Point) {
	radius := 0.5 * e.style.Width
	norm := tangent.Perp().Normalize().Scale(radius)

	e.forward = append(e.forward, p1.Add(norm.Neg()))
	e.backward = append(e.backward, p1.Add(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finish assembles the closed outline loop: forward path, end cap, reversed
// backward path, start cap.
func (e *Expander) finish() Outline {
	out := make(Outline, 0, len(e.forward)+len(e.backward)+16)
	out = append(out, e.forward...)

	// End cap: from lastPt-lastNorm around to lastPt+lastNorm, bulging in
	// the direction of travel.
	out = e.applyCap(out, e.lastPt, e.lastNorm.Neg(), e.lastTan)

	for i := len(e.backward) - 1; i >= 0; i-- {
		out = append(out, e.backward[i])
	}

	// Start cap: from startPt+startNorm around to startPt-startNorm,
	// bulging against the direction of travel.
	out = e.applyCap(out, e.startPt, e.startNorm, e.startTan.Neg())

	return out
}

// applyCap emits cap vertices from center+from to center-from, bulging
// toward dir. Butt caps emit nothing; the loop edge closes flat.
func (e *Expander) applyCap(out Outline, center Point, from, dir Vec2) Outline {
	switch e.style.Cap {
	case LineCapRound:
		// Rotating the entry offset by +pi/2 yields the travel direction,
		// so a +pi sweep bulges the semicircle the right way.
		return appendArc(out, center, from, math.Pi)

	case LineCapSquare:
		radius := 0.5 * e.style.Width
		ext := dir.Normalize().Scale(radius)
		out = append(out, center.Add(from).Add(ext))
		out = append(out, center.Add(from.Neg()).Add(ext))
		return out

	default: // LineCapButt
		return out
	}
}

// Dot returns the outline for a single-point stroke: a circle or square of
// diameter equal to the stroke width, centered on the point.
func Dot(center Point, style Style) Outline {
	radius := 0.5 * style.Width
	if radius <= 0 {
		return nil
	}

	if style.Cap == LineCapSquare {
		return Outline{
			{X: center.X - radius, Y: center.Y - radius},
			{X: center.X + radius, Y: center.Y - radius},
			{X: center.X + radius, Y: center.Y + radius},
			{X: center.X - radius, Y: center.Y + radius},
		}
	}

	steps := arcSteps(2*math.Pi, radius)
	out := make(Outline, 0, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		out = append(out, Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return out
}

// appendArc appends arc vertices around center, starting from the offset
// vector from (exclusive) and sweeping by sweep radians (inclusive of the
// end point).
func appendArc(out Outline, center Point, from Vec2, sweep float64) Outline {
	radius := from.Length()
	steps := arcSteps(sweep, radius)
	for i := 1; i <= steps; i++ {
		v := from.Rotate(sweep * float64(i) / float64(steps))
		out = append(out, center.Add(v))
	}
	return out
}

// arcSteps returns the number of segments needed to keep the chord
// deviation of an arc within the flattening tolerance.
func arcSteps(sweep, radius float64) int {
	sweep = math.Abs(sweep)
	if radius <= tolerance {
		return 4
	}
	// Chord deviation d = r * (1 - cos(step/2)) <= tolerance.
	maxStep := 2 * math.Acos(1-tolerance/radius)
	steps := int(math.Ceil(sweep / maxStep))
	if steps < 4 {
		steps = 4
	}
	return steps
}

// signedAngle returns the angle rotating from vector a to vector b,
// in (-pi, pi].
func signedAngle(a, b Vec2) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b))
}
