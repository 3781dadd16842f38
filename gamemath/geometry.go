package gamemath

import "math"

// Segment is a limb capsule from (X1,Y1) to (X2,Y2) with thickness Radius.
// Both endpoints equal means a joint marker (head, hand, foot) drawn as a circle.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Radius float64
}

// NewPointSegment returns a circle segment centred on (x, y)
func NewPointSegment(x, y, radius float64) Segment {
	return Segment{X1: x, Y1: y, X2: x, Y2: y, Radius: radius}
}

// IsCircle reports whether the segment is degenerate
func (s Segment) IsCircle() bool {
	return s.X1 == s.X2 && s.Y1 == s.Y2
}

// Bounds returns the axis-aligned box enclosing the capsule
func (s Segment) Bounds() Rect {
	minX, maxX := math.Min(s.X1, s.X2), math.Max(s.X1, s.X2)
	minY, maxY := math.Min(s.Y1, s.Y2), math.Max(s.Y1, s.Y2)
	return Rect{
		X: minX - s.Radius,
		Y: minY - s.Radius,
		W: maxX - minX + 2*s.Radius,
		H: maxY - minY + 2*s.Radius,
	}
}

// Rect is an axis-aligned rectangle
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// SquaredDistance returns the squared euclidean distance between two points.
func SquaredDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// minLineLengthSq is the squared length under which a bone is tested as its first endpoint
const minLineLengthSq = 0.5

// ClosestOnSegment projects (px, py) onto the segment.
// u is the clamped parametric position of the closest point, 0 at (X1,Y1) and 1 at (X2,Y2).
func ClosestOnSegment(px, py float64, s Segment) (x, y, u float64) {
	dx := s.X2 - s.X1
	dy := s.Y2 - s.Y1
	lengthSq := dx*dx + dy*dy
	if lengthSq < minLineLengthSq {
		return s.X1, s.Y1, 0
	}

	u = ((px-s.X1)*dx + (py-s.Y1)*dy) / lengthSq
	u = Clamp01(u)
	return s.X1 + dx*u, s.Y1 + dy*u, u
}

// HitTest checks a shape of bounding radius size centred on (cx, cy) against a limb segment.
// On a hit it returns the contact point on the limb and its parametric position.
func HitTest(cx, cy, size float64, s Segment) (hit bool, hx, hy, u float64) {
	reach := size + s.Radius
	reachSq := reach * reach

	if s.IsCircle() {
		if SquaredDistance(cx, cy, s.X1, s.Y1) <= reachSq {
			return true, s.X1, s.Y1, 0
		}
		return false, 0, 0, 0
	}

	hx, hy, u = ClosestOnSegment(cx, cy, s)
	if SquaredDistance(cx, cy, hx, hy) < reachSq {
		return true, hx, hy, u
	}
	return false, 0, 0, 0
}

// Clamp limits f to [min, max].
func Clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}

// Clamp01 limits f to [0, 1].
func Clamp01(f float64) float64 {
	return Clamp(f, 0, 1)
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
