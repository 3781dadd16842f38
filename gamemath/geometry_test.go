package gamemath

import (
	"math"
	"testing"
)

func TestIsCircle(t *testing.T) {
	if !NewPointSegment(3, 4, 1).IsCircle() {
		t.Fatalf("point segment should be a circle")
	}
	if (Segment{X1: 0, Y1: 0, X2: 1, Y2: 0}).IsCircle() {
		t.Fatalf("bone segment should not be a circle")
	}
}

func TestClosestOnSegmentClampsToEndpoints(t *testing.T) {
	s := Segment{X1: 0, Y1: 0, X2: 10, Y2: 0}

	x, y, u := ClosestOnSegment(5, 3, s)
	if x != 5 || y != 0 || u != 0.5 {
		t.Fatalf("middle projection: got (%v,%v,u=%v)", x, y, u)
	}

	x, y, u = ClosestOnSegment(-4, 2, s)
	if x != 0 || y != 0 || u != 0 {
		t.Fatalf("before start: got (%v,%v,u=%v)", x, y, u)
	}

	x, y, u = ClosestOnSegment(14, -2, s)
	if x != 10 || y != 0 || u != 1 {
		t.Fatalf("past end: got (%v,%v,u=%v)", x, y, u)
	}
}

func TestClosestOnSegmentTinyBoneUsesFirstEndpoint(t *testing.T) {
	s := Segment{X1: 2, Y1: 2, X2: 2.1, Y2: 2.1}
	x, y, u := ClosestOnSegment(50, 50, s)
	if x != 2 || y != 2 || u != 0 {
		t.Fatalf("expected first endpoint, got (%v,%v,u=%v)", x, y, u)
	}
}

func TestHitTestCircle(t *testing.T) {
	seg := NewPointSegment(50, 50, 5)

	hit, hx, hy, _ := HitTest(50, 50, 10, seg)
	if !hit || hx != 50 || hy != 50 {
		t.Fatalf("coincident centres should hit at the joint, got hit=%v (%v,%v)", hit, hx, hy)
	}

	// exactly touching counts for circles
	if hit, _, _, _ := HitTest(65, 50, 10, seg); !hit {
		t.Fatalf("touching circle should hit")
	}
	if hit, _, _, _ := HitTest(65.1, 50, 10, seg); hit {
		t.Fatalf("separated circle should miss")
	}
}

func TestHitTestBone(t *testing.T) {
	seg := Segment{X1: 0, Y1: 100, X2: 100, Y2: 100, Radius: 2}

	hit, hx, hy, u := HitTest(25, 95, 4, seg)
	if !hit {
		t.Fatalf("expected hit near the bone")
	}
	if hx != 25 || hy != 100 || u != 0.25 {
		t.Fatalf("contact point off: (%v,%v,u=%v)", hx, hy, u)
	}

	if hit, _, _, _ := HitTest(25, 90, 4, seg); hit {
		t.Fatalf("expected miss 10px above a 2px bone with a 4px shape")
	}

	// beyond the end, distance is measured to the endpoint
	hit, hx, _, u = HitTest(103, 100, 4, seg)
	if !hit || hx != 100 || u != 1 {
		t.Fatalf("expected endpoint hit, got hit=%v x=%v u=%v", hit, hx, u)
	}
}

func TestSegmentBounds(t *testing.T) {
	b := Segment{X1: 10, Y1: 20, X2: 0, Y2: 40, Radius: 3}.Bounds()
	if b.X != -3 || b.Y != 17 || b.W != 16 || b.H != 26 {
		t.Fatalf("unexpected bounds %+v", b)
	}
	if b.Right() != 13 || b.Bottom() != 43 {
		t.Fatalf("unexpected right/bottom %v %v", b.Right(), b.Bottom())
	}
}

func TestPolygonVerticesClosed(t *testing.T) {
	pts := PolygonVertices(5, 2, 10, 0, 0, 0)
	if len(pts) != 6 {
		t.Fatalf("expected 6 points for a closed pentagram, got %d", len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs(first[0]-last[0]) > 1e-9 || math.Abs(first[1]-last[1]) > 1e-9 {
		t.Fatalf("outline not closed: %v vs %v", first, last)
	}
	for _, p := range pts {
		if r := math.Hypot(p[0], p[1]); math.Abs(r-10) > 1e-9 {
			t.Fatalf("vertex off the circle: r=%v", r)
		}
	}

	if PolygonVertices(1, 1, 10, 0, 0, 0) != nil {
		t.Fatalf("circles have no vertices")
	}
}
