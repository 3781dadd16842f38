package tuning

import (
	"image/color"
	"math"

	cfg "github.com/automoto/shapegame/config"
)

// Floors applied by Clamp so derived coefficients never divide by zero
const (
	MinFrameRate   = 1.0
	MinIntraFrames = 1
	MinShapeSize   = 1.0
	MinBound       = 1.0
)

// Settings are the user-facing knobs of a simulation. Every field can change at runtime.
type Settings struct {
	MaxShapes   int
	FrameRate   float64
	IntraFrames int
	DropRate    float64
	ShapeSize   float64
	Gravity     float64
	ColorMode   cfg.ColorMode
	BaseColor   color.RGBA
	Width       float64
	Height      float64
	Polies      cfg.PolyType
	Mode        cfg.GameMode
}

// Default returns the settings configured in config.Sim
func Default() Settings {
	return Settings{
		MaxShapes:   cfg.Sim.MaxShapes,
		FrameRate:   cfg.Sim.FrameRate,
		IntraFrames: cfg.Sim.IntraFrames,
		DropRate:    cfg.Sim.DropRate,
		ShapeSize:   cfg.Sim.ShapeSize,
		Gravity:     cfg.Sim.Gravity,
		ColorMode:   cfg.Sim.ColorMode,
		BaseColor:   cfg.Sim.BaseColor,
		Width:       cfg.Sim.Width,
		Height:      cfg.Sim.Height,
		Polies:      cfg.Sim.Polies,
		Mode:        cfg.Sim.Mode,
	}
}

// Clamp floors out-of-range values to safe minimums. NaN counts as out of range.
func (s Settings) Clamp() Settings {
	s.MaxShapes = max(s.MaxShapes, 0)
	s.IntraFrames = max(s.IntraFrames, MinIntraFrames)
	s.FrameRate = floor(s.FrameRate, MinFrameRate)
	s.DropRate = floor(s.DropRate, 0)
	s.ShapeSize = floor(s.ShapeSize, MinShapeSize)
	s.Gravity = floor(s.Gravity, 0)
	s.Width = floor(s.Width, MinBound)
	s.Height = floor(s.Height, MinBound)
	return s
}

func floor(v, min float64) float64 {
	if math.IsNaN(v) || v < min {
		return min
	}
	return v
}

// Coefficients are the per-tick constants derived from Settings
type Coefficients struct {
	TicksPerSecond float64
	Substeps       float64 // ticks per reference tick
	Gravity        float64 // fraction of scene height added to vy each tick
	AirFriction    float64 // velocity multiplier per tick
	ExpandingRate  float64 // size multiplier per dissolving tick
	DissolveStep   float64 // dissolve fraction added per tick
	ShapeSize      float64 // spawn radius in pixels
}

// Derive computes the coefficients for s. It is a pure function of the clamped settings.
func Derive(s Settings) Coefficients {
	s = s.Clamp()

	tps := s.FrameRate * float64(s.IntraFrames)
	substeps := tps / cfg.Sim.ReferenceTickRate
	dissolveTicks := tps * cfg.Sim.DissolveTime

	return Coefficients{
		TicksPerSecond: tps,
		Substeps:       substeps,
		Gravity:        s.Gravity * cfg.Sim.BaseGravity / (substeps * substeps),
		AirFriction:    AirFriction(s.Gravity, substeps),
		ExpandingRate:  math.Exp(math.Log(cfg.Sim.DissolveExpand) / dissolveTicks),
		DissolveStep:   1 / dissolveTicks,
		ShapeSize:      s.Height * s.ShapeSize / 1000,
	}
}

// AirFriction spreads the per-reference-tick velocity retention over substeps ticks, so the
// drag felt per second does not depend on how many ticks run in it.
func AirFriction(gravity, substeps float64) float64 {
	if gravity == 0 {
		return cfg.Sim.ZeroGravityFriction
	}
	retain := 1 - cfg.Sim.BaseAirLoss/gravity
	if retain < cfg.Sim.MinAirRetention {
		retain = cfg.Sim.MinAirRetention
	}
	return math.Exp(math.Log(retain) / substeps)
}
