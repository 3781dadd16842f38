package tuning

import (
	"math"
	"testing"

	cfg "github.com/automoto/shapegame/config"
)

func TestClampFloorsDegenerateValues(t *testing.T) {
	s := Settings{
		MaxShapes:   -3,
		FrameRate:   0,
		IntraFrames: 0,
		DropRate:    -1,
		ShapeSize:   -10,
		Gravity:     math.NaN(),
		Width:       0,
		Height:      -5,
	}.Clamp()

	if s.MaxShapes != 0 || s.FrameRate != MinFrameRate || s.IntraFrames != MinIntraFrames {
		t.Fatalf("counts/rates not floored: %+v", s)
	}
	if s.DropRate != 0 || s.ShapeSize != MinShapeSize || s.Gravity != 0 {
		t.Fatalf("rates/sizes not floored: %+v", s)
	}
	if s.Width != MinBound || s.Height != MinBound {
		t.Fatalf("bounds not floored: %+v", s)
	}
}

func TestDeriveIsFinite(t *testing.T) {
	c := Derive(Settings{})
	for name, v := range map[string]float64{
		"gravity":   c.Gravity,
		"friction":  c.AirFriction,
		"expanding": c.ExpandingRate,
		"dissolve":  c.DissolveStep,
		"size":      c.ShapeSize,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s is not finite: %v", name, v)
		}
	}
}

func TestDeriveIsPure(t *testing.T) {
	s := Default()
	s.Gravity = 0.7
	s.FrameRate = 45
	if Derive(s) != Derive(s) {
		t.Fatalf("derive returned different coefficients for the same settings")
	}
}

func TestExpandingRateReachesDissolveExpand(t *testing.T) {
	s := Default()
	c := Derive(s)
	ticks := c.TicksPerSecond * cfg.Sim.DissolveTime
	got := math.Pow(c.ExpandingRate, ticks)
	if math.Abs(got-cfg.Sim.DissolveExpand) > 1e-6 {
		t.Fatalf("expected ×%v over the dissolve, got ×%v", cfg.Sim.DissolveExpand, got)
	}
	if math.Abs(c.DissolveStep*ticks-1) > 1e-9 {
		t.Fatalf("dissolve steps do not add up to 1: %v", c.DissolveStep*ticks)
	}
}

func TestFrictionPerSecondIndependentOfFrameRate(t *testing.T) {
	s := Default()
	s.IntraFrames = 1
	s.FrameRate = 30
	slow := Derive(s)
	s.FrameRate = 120
	fast := Derive(s)

	perSecondSlow := math.Pow(slow.AirFriction, slow.TicksPerSecond)
	perSecondFast := math.Pow(fast.AirFriction, fast.TicksPerSecond)
	if math.Abs(perSecondSlow-perSecondFast) > 1e-9 {
		t.Fatalf("friction per second differs: %v vs %v", perSecondSlow, perSecondFast)
	}
}

func TestZeroGravityFriction(t *testing.T) {
	s := Default()
	s.Gravity = 0
	c := Derive(s)
	if c.Gravity != 0 {
		t.Fatalf("expected zero gravity, got %v", c.Gravity)
	}
	if c.AirFriction != cfg.Sim.ZeroGravityFriction {
		t.Fatalf("expected fixed friction %v, got %v", cfg.Sim.ZeroGravityFriction, c.AirFriction)
	}
}

func TestTinyGravityKeepsFrictionPositive(t *testing.T) {
	if f := AirFriction(0.0001, 1); f <= 0 || f >= 1 || math.IsNaN(f) {
		t.Fatalf("expected friction in (0,1), got %v", f)
	}
}
