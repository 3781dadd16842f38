package engine

import (
	"math"
	"testing"
	"time"

	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/gamemath"
	"github.com/automoto/shapegame/systems/factory"
	"github.com/automoto/shapegame/tracking"
	"github.com/automoto/shapegame/tuning"
	dmath "github.com/yohamta/donburi/features/math"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

// testSettings is a 100x100 scene at 60 ticks per second with the spawner off
func testSettings() tuning.Settings {
	s := tuning.Default()
	s.Width, s.Height = 100, 100
	s.FrameRate, s.IntraFrames = 60, 1
	s.DropRate = 0
	s.Mode = cfg.GameModeSolo
	return s
}

func tickTime(e *Engine, tick int) time.Time {
	return epoch.Add(time.Duration(float64(tick) / e.Coefficients().TicksPerSecond * float64(time.Second)))
}

func TestThingFallsOutOfTheScene(t *testing.T) {
	e := New(testSettings(), 1)
	e.DropThing(factory.ThingSpec{
		Shape:    cfg.PolySquare,
		Center:   dmath.Vec2{X: 50, Y: 0},
		Velocity: dmath.Vec2{X: 0, Y: 2},
		Size:     5,
	})

	for tick := 1; tick <= 200; tick++ {
		e.AdvanceTick(tickTime(e, tick))
		snap := e.Snapshot()
		if len(snap.Shapes) == 0 {
			if e.ThingCount() != 0 {
				t.Fatalf("thing count %d after removal", e.ThingCount())
			}
			return
		}
		s := snap.Shapes[0]
		if s.Center.Y-s.Size > 100 {
			t.Fatalf("tick %d: shape below the floor still in the snapshot: %+v", tick, s)
		}
	}
	t.Fatalf("shape never left the scene")
}

func TestPointSegmentHitScores(t *testing.T) {
	e := New(testSettings(), 1)
	e.DropThing(factory.ThingSpec{
		Shape:  cfg.PolyCircle,
		Center: dmath.Vec2{X: 50, Y: 50},
		Size:   10,
	})

	e.ReportSegment(1, tracking.JointKey(tracking.JointHandRight), gamemath.NewPointSegment(50, 50, 5), epoch)
	report := e.AdvanceTick(epoch)

	snap := e.Snapshot()
	if len(snap.Shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(snap.Shapes))
	}
	shape := snap.Shapes[0]
	if shape.State != cfg.Bouncing {
		t.Fatalf("expected Bouncing, got %v", shape.State)
	}
	if shape.TouchedBy != 1 {
		t.Fatalf("expected TouchedBy 1, got %d", shape.TouchedBy)
	}
	if len(snap.Scores) != 1 || snap.Scores[0].PlayerID != 1 || snap.Scores[0].Points != cfg.Hit.PointsPerHit {
		t.Fatalf("unexpected scores %+v", snap.Scores)
	}

	if len(report.Hits) != 1 || !report.Hits[0].Type.Has(cfg.HitHand) {
		t.Fatalf("expected one hand hit, got %+v", report.Hits)
	}
	if len(report.Scores) != 1 || report.Scores[0].Points != cfg.Hit.PointsPerHit {
		t.Fatalf("expected one score event, got %+v", report.Scores)
	}
	if len(snap.Texts) != 1 || snap.Texts[0].Text != "+5" {
		t.Fatalf("expected a flying +5, got %+v", snap.Texts)
	}
}

func TestZeroGravityFreezesThings(t *testing.T) {
	e := New(testSettings(), 1)
	e.DropThing(factory.ThingSpec{
		Shape:    cfg.PolyTriangle,
		Center:   dmath.Vec2{X: 50, Y: 40},
		Velocity: dmath.Vec2{X: 0.5, Y: 1},
		Size:     5,
	})
	e.AdvanceTick(tickTime(e, 1))

	e.SetGravity(0)
	e.AdvanceTick(tickTime(e, 2))
	before := e.Snapshot().Shapes[0]
	if before.Velocity.X != 0 || before.Velocity.Y != 0 {
		t.Fatalf("velocity not zeroed: %+v", before.Velocity)
	}

	for tick := 3; tick < 60; tick++ {
		e.AdvanceTick(tickTime(e, tick))
	}
	after := e.Snapshot().Shapes[0]
	if after.Velocity.X != 0 || after.Velocity.Y != 0 || after.Center != before.Center {
		t.Fatalf("frozen shape moved: %+v -> %+v", before, after)
	}
}

func fallDistance(t *testing.T, fps float64) float64 {
	t.Helper()
	s := testSettings()
	s.Width, s.Height = 1000, 1000
	s.FrameRate = fps
	e := New(s, 1)
	e.DropThing(factory.ThingSpec{
		Shape:  cfg.PolySquare,
		Center: dmath.Vec2{X: 500, Y: 100},
		Size:   10,
	})

	ticks := int(e.Coefficients().TicksPerSecond)
	for tick := 1; tick <= ticks; tick++ {
		e.AdvanceTick(tickTime(e, tick))
	}
	return e.Snapshot().Shapes[0].Center.Y - 100
}

func TestFallIsFrameRateIndependent(t *testing.T) {
	slow := fallDistance(t, 60)
	fast := fallDistance(t, 120)
	if slow <= 0 {
		t.Fatalf("shape did not fall: %v", slow)
	}
	if math.Abs(slow-fast)/slow > 0.02 {
		t.Fatalf("fall distance depends on frame rate: %v vs %v", slow, fast)
	}
}

func TestConfigureRoundTrip(t *testing.T) {
	e := New(testSettings(), 1)
	s := testSettings()
	s.Gravity = 1.7
	s.FrameRate = 50
	s.IntraFrames = 2

	e.Configure(s)
	first := e.Coefficients()
	e.Configure(s)
	if e.Coefficients() != first {
		t.Fatalf("coefficients changed on reconfigure: %+v vs %+v", first, e.Coefficients())
	}
	if first != tuning.Derive(s) {
		t.Fatalf("coefficients differ from Derive: %+v", first)
	}
	if e.Settings() != s.Clamp() {
		t.Fatalf("settings not stored: %+v", e.Settings())
	}
}

func TestConfigureClampsDegenerateValues(t *testing.T) {
	e := New(testSettings(), 1)
	s := testSettings()
	s.FrameRate = 0
	s.ShapeSize = -4
	s.Width = 0
	e.Configure(s)

	got := e.Settings()
	if got.FrameRate < tuning.MinFrameRate || got.ShapeSize < tuning.MinShapeSize || got.Width < tuning.MinBound {
		t.Fatalf("settings not clamped: %+v", got)
	}
	c := e.Coefficients()
	if math.IsInf(c.ExpandingRate, 0) || math.IsNaN(c.DissolveStep) {
		t.Fatalf("coefficients not finite: %+v", c)
	}
	e.AdvanceTick(epoch)
}

func TestTwoPlayerArmPopsOpponentsShape(t *testing.T) {
	s := testSettings()
	s.Gravity = 0
	s.Mode = cfg.GameModeTwoPlayer
	e := New(s, 1)
	e.DropThing(factory.ThingSpec{
		Shape:  cfg.PolyStar,
		Center: dmath.Vec2{X: 50, Y: 50},
		Size:   10,
	})

	hand := tracking.JointKey(tracking.JointHandRight)
	e.ReportSegment(1, hand, gamemath.NewPointSegment(50, 50, 5), at(0))
	e.AdvanceTick(at(0))

	// player 1 pulls the hand away
	e.ReportSegment(1, hand, gamemath.NewPointSegment(5, 95, 5), at(100))

	arm := tracking.BoneKey{Joint1: tracking.JointElbowLeft, Joint2: tracking.JointWristLeft}
	e.ReportSegment(2, arm, gamemath.Segment{X1: 20, Y1: 35, X2: 80, Y2: 35, Radius: 3}, at(200))
	report := e.AdvanceTick(at(200))

	snap := e.Snapshot()
	if len(snap.Shapes) != 1 || snap.Shapes[0].State != cfg.Dissolving {
		t.Fatalf("expected the shape to pop, got %+v", snap.Shapes)
	}
	if len(snap.Scores) != 1 || snap.Scores[0].PlayerID != 1 || snap.Scores[0].Points != 2*cfg.Hit.PointsPerHit {
		t.Fatalf("expected player 1 to cash in, got %+v", snap.Scores)
	}
	if len(report.Hits) != 1 || !report.Hits[0].Type.Has(cfg.HitPopped) || report.Hits[0].PlayerID != 2 {
		t.Fatalf("expected a popping hit by player 2, got %+v", report.Hits)
	}
}

func TestGameOffBouncesWithoutScoring(t *testing.T) {
	s := testSettings()
	s.Mode = cfg.GameModeOff
	e := New(s, 1)
	e.DropThing(factory.ThingSpec{Shape: cfg.PolyHex, Center: dmath.Vec2{X: 50, Y: 50}, Size: 10})

	e.ReportSegment(3, tracking.JointKey(tracking.JointHead), gamemath.NewPointSegment(52, 50, 5), epoch)
	e.AdvanceTick(epoch)

	snap := e.Snapshot()
	if snap.Shapes[0].State != cfg.Bouncing {
		t.Fatalf("expected Bouncing, got %v", snap.Shapes[0].State)
	}
	if len(snap.Scores) != 0 || len(snap.Texts) != 0 {
		t.Fatalf("game off should not score: %+v %+v", snap.Scores, snap.Texts)
	}
}

func TestPlayersArePrunedAfterTimeout(t *testing.T) {
	e := New(testSettings(), 1)
	e.ReportSegment(7, tracking.JointKey(tracking.JointHead), gamemath.NewPointSegment(10, 10, 4), at(0))

	e.AdvanceTick(at(400))
	if len(e.Snapshot().Limbs) != 1 {
		t.Fatalf("player pruned too early")
	}
	e.AdvanceTick(at(600))
	if len(e.Snapshot().Limbs) != 0 {
		t.Fatalf("player not pruned after the timeout")
	}
}

func TestResetDissolvesEverything(t *testing.T) {
	e := New(testSettings(), 1)
	for i := 0; i < 3; i++ {
		e.DropThing(factory.ThingSpec{
			Shape:  cfg.PolyPentagon,
			Center: dmath.Vec2{X: 20 + 30*float64(i), Y: 30},
			Size:   5,
		})
	}
	e.ReportSegment(1, tracking.JointKey(tracking.JointHandLeft), gamemath.NewPointSegment(20, 30, 5), at(0))
	e.AdvanceTick(at(0))
	if len(e.Scores()) == 0 {
		t.Fatalf("expected a score before reset")
	}

	e.Reset()
	for _, s := range e.Snapshot().Shapes {
		if s.State != cfg.Dissolving {
			t.Fatalf("shape %d not dissolving after reset: %v", s.ID, s.State)
		}
	}
	if len(e.Scores()) != 0 {
		t.Fatalf("scores not cleared: %+v", e.Scores())
	}

	ticks := int(e.Coefficients().TicksPerSecond*cfg.Sim.DissolveTime) + 2
	for tick := 1; tick <= ticks; tick++ {
		e.AdvanceTick(tickTime(e, tick))
	}
	if n := len(e.Snapshot().Shapes); n != 0 {
		t.Fatalf("%d shapes left after the dissolve", n)
	}
}

func TestSpawnerRespectsLimits(t *testing.T) {
	s := testSettings()
	s.DropRate = 1000
	s.MaxShapes = 4
	e := New(s, 42)
	for tick := 1; tick <= 30; tick++ {
		e.AdvanceTick(tickTime(e, tick))
		if n := e.ThingCount(); n > 4 {
			t.Fatalf("tick %d: %d shapes over the limit", tick, n)
		}
	}
	if e.ThingCount() != 4 {
		t.Fatalf("expected the scene to fill up, got %d", e.ThingCount())
	}

	e.SetPolies(cfg.PolyNone)
	e.SetMaxShapes(100)
	n := e.ThingCount()
	e.AdvanceTick(tickTime(e, 31))
	if e.ThingCount() > n {
		t.Fatalf("spawned with no shape kinds allowed")
	}
}

func TestBroadPhaseListsThingsAndLimbs(t *testing.T) {
	e := New(testSettings(), 1)
	e.DropThing(factory.ThingSpec{Shape: cfg.PolySquare, Center: dmath.Vec2{X: 20, Y: 20}, Size: 5})
	e.ReportSegment(1, tracking.JointKey(tracking.JointHead), gamemath.NewPointSegment(80, 80, 4), epoch)
	e.AdvanceTick(epoch)

	limbs := 0
	boxes := e.BroadPhase()
	for _, b := range boxes {
		if b.Limb {
			limbs++
			// the hashed box pads the marker by a pixel
			if b.X != 75 || b.W != 10 {
				t.Fatalf("limb box %+v does not match the head marker", b.Rect)
			}
		}
	}
	if len(boxes) != 2 || limbs != 1 {
		t.Fatalf("expected a shape box and a limb box, got %+v", boxes)
	}
}

func TestEnginesAreIndependent(t *testing.T) {
	a := New(testSettings(), 1)
	b := New(testSettings(), 1)
	a.DropThing(factory.ThingSpec{Shape: cfg.PolyCircle, Center: dmath.Vec2{X: 50, Y: 50}, Size: 10})
	a.ReportSegment(1, tracking.JointKey(tracking.JointHandLeft), gamemath.NewPointSegment(50, 50, 5), epoch)
	a.AdvanceTick(epoch)
	b.AdvanceTick(epoch)

	if len(a.Scores()) != 1 || len(b.Scores()) != 0 || b.ThingCount() != 0 {
		t.Fatalf("engines share state: %+v / %+v", a.Scores(), b.Scores())
	}
}

func TestInvariantsHoldEveryTick(t *testing.T) {
	s := testSettings()
	s.DropRate = 200
	s.MaxShapes = 40
	e := New(s, 7)

	arm := tracking.BoneKey{Joint1: tracking.JointElbowRight, Joint2: tracking.JointWristRight}
	hand := tracking.JointKey(tracking.JointHandRight)
	for tick := 0; tick < 3000; tick++ {
		now := tickTime(e, tick)
		angle := float64(tick) / 20
		hx, hy := 50+30*math.Cos(angle), 50+30*math.Sin(angle)
		e.ReportSegment(1, arm, gamemath.Segment{X1: 50, Y1: 50, X2: hx, Y2: hy, Radius: 3}, now)
		e.ReportSegment(1, hand, gamemath.NewPointSegment(hx, hy, 5), now)
		if tick == 1500 {
			e.Reset()
		}
		e.AdvanceTick(now)

		for _, shape := range e.Snapshot().Shapes {
			if shape.Size < 0 || math.IsNaN(shape.Size) {
				t.Fatalf("tick %d: shape %d has size %v", tick, shape.ID, shape.Size)
			}
			if shape.Dissolve < 0 || shape.Dissolve > 1 {
				t.Fatalf("tick %d: shape %d has dissolve %v", tick, shape.ID, shape.Dissolve)
			}
		}
	}
}
