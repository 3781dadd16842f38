package config

import (
	"image/color"
	"time"
)

// SimConfig contains the physics and spawning configuration of the shape simulation
type SimConfig struct {
	// Spawning
	MaxShapes int
	DropRate  float64 // shapes per second
	ShapeSize float64 // radius in thousandths of the scene height
	Polies    PolyType

	// Timing
	FrameRate   float64 // rendered frames per second
	IntraFrames int     // simulation ticks per rendered frame

	// Physics
	Gravity           float64 // user gravity factor, 1 = normal, 0 = zero gravity
	ReferenceTickRate float64 // tick rate BaseGravity and BaseAirLoss are tuned for
	BaseGravity       float64 // fraction of scene height per reference tick²
	BaseAirLoss       float64 // velocity fraction lost per reference tick at gravity 1

	ZeroGravityFriction float64 // air friction used while gravity is 0
	MinAirRetention     float64 // floor for 1 - BaseAirLoss/gravity

	// Dissolve
	DissolveTime   float64 // seconds
	DissolveExpand float64 // size multiplier reached at the end of a dissolve
	PopSpinBoost   float64 // spin multiplier when a shape pops
	PopSpinAdd     float64 // radians per tick added to the spin when a shape pops

	// Colours
	ColorMode ColorMode
	BaseColor color.RGBA

	// Scene
	Width  float64
	Height float64
	Mode   GameMode
}

// HitConfig contains the scoring policy applied when a limb touches a shape
type HitConfig struct {
	PointsPerHit     int
	SqueezePoints    int
	PopAfterHits     int           // scoring hits before a shape pops, 0 = never
	MaxHotness       int           // hotness cap
	HotnessWindow    float64       // ms, average inter-hit interval below which hotness grows
	AverageDecay     float64       // weight of the old average in the rolling inter-hit average
	FirstHitInterval float64       // ms, interval assumed for a shape never hit before
	InitialAverage   float64       // ms, rolling average a freshly spawned shape starts with
	MinScoreInterval time.Duration // hits closer than this only bounce
	SqueezeInterval  float64       // ms, average below which a shape is squeezed and pops
}

// FlyingTextConfig contains the score overlay animation configuration
type FlyingTextConfig struct {
	FadePerTick  float64 // alpha removed each tick
	GrowthFactor float64 // font size growth per tick, times sqrt(initial size)
	TextScale    float64 // initial size multiplier applied to sceneWidth/300
	MinFontSize  float64
	OpacityPower float64 // opacity = alpha^OpacityPower
	Color        color.RGBA
}

// TrackingConfig contains limb tracking configuration
type TrackingConfig struct {
	Smoothing  float64       // weight of the previous velocity in the moving average
	MinElapsed time.Duration // floor for the time between two segment updates
	Timeout    time.Duration // players not updated for this long are pruned

	// Limb thickness as a fraction of the player's on-screen height
	HeadSize float64
	HandSize float64
	BoneSize float64
	MinBone  float64 // pixels
}

// PresentationConfig contains the descriptor colours derived for drawing
type PresentationConfig struct {
	PulseColor      color.RGBA
	PulseRate       float64 // radians per tick per hotness level
	PulseWidth      float64 // stroke width as a fraction of the shape size
	StrokeWidth     float64
	BrightnessScale float64
}

// SpaceConfig contains broad-phase spatial hash configuration
type SpaceConfig struct {
	CellSize int
	Margin   int // cells the space reaches past each scene edge
}

// WindowConfig holds general host window configuration
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var Sim SimConfig
var Hit HitConfig
var FlyingText FlyingTextConfig
var Tracking TrackingConfig
var Presentation PresentationConfig
var Space SpaceConfig
var Window WindowConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red         = color.RGBA{R: 240, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 240, B: 0, A: 255}
	Blue        = color.RGBA{R: 0, G: 0, B: 240, A: 255}
	Yellow      = color.RGBA{R: 240, G: 240, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Purple      = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray        = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Background  = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	LimbColor   = color.RGBA{R: 100, G: 180, B: 255, A: 160}
	ScoreColors = []color.RGBA{
		{R: 255, G: 180, B: 50, A: 255},
		{R: 100, G: 255, B: 100, A: 255},
		{R: 255, G: 60, B: 60, A: 255},
		{R: 100, G: 180, B: 255, A: 255},
	}
)

func init() {
	Window = WindowConfig{
		Width:  1024,
		Height: 768,
		Title:  "Shape Game",
	}

	Sim = SimConfig{
		MaxShapes: 80,
		DropRate:  2.5,
		ShapeSize: 32,
		Polies:    PolyAll,

		FrameRate:   60,
		IntraFrames: 3,

		Gravity:           1.0,
		ReferenceTickRate: 60,
		BaseGravity:       0.0001,
		BaseAirLoss:       0.006,

		ZeroGravityFriction: 0.997,
		MinAirRetention:     0.5,

		DissolveTime:   0.4,
		DissolveExpand: 6.0,
		PopSpinBoost:   6.0,
		PopSpinAdd:     0.2,

		ColorMode: ColorRandom,
		BaseColor: Orange,

		Width:  float64(Window.Width),
		Height: float64(Window.Height),
		Mode:   GameModeSolo,
	}

	Hit = HitConfig{
		PointsPerHit:     5,
		SqueezePoints:    1,
		PopAfterHits:     0,
		MaxHotness:       4,
		HotnessWindow:    600,
		AverageDecay:     0.8,
		FirstHitInterval: 1000,
		InitialAverage:   100,
		MinScoreInterval: 100 * time.Millisecond,
		SqueezeInterval:  8,
	}

	FlyingText = FlyingTextConfig{
		FadePerTick:  0.01,
		GrowthFactor: 0.4,
		TextScale:    1.0,
		MinFontSize:  1,
		OpacityPower: 1.5,
		Color:        White,
	}

	Tracking = TrackingConfig{
		Smoothing:  0.8,
		MinElapsed: 10 * time.Millisecond,
		Timeout:    500 * time.Millisecond,

		HeadSize: 0.075,
		HandSize: 0.03,
		BoneSize: 0.01,
		MinBone:  3.0,
	}

	Presentation = PresentationConfig{
		PulseColor:      White,
		PulseRate:       0.075,
		PulseWidth:      0.1,
		StrokeWidth:     1,
		BrightnessScale: 1600,
	}

	Space = SpaceConfig{
		CellSize: 32,
		Margin:   4,
	}
}
