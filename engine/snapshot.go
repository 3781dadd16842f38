package engine

import (
	"image/color"
	stdmath "math"
	"sort"

	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/gamemath"
	"github.com/automoto/shapegame/tags"
	"github.com/automoto/shapegame/tracking"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ShapeDescriptor is everything needed to draw one shape
type ShapeDescriptor struct {
	ID       uint64 // spawn serial
	Kind     cfg.PolyType
	Sides    int
	Skip     int
	Center   math.Vec2
	Velocity math.Vec2 // pixels per tick
	Size     float64
	Theta    float64

	Fill          color.RGBA
	Stroke        color.RGBA
	StrokeWidth   float64
	Opacity       float64
	StrokeOpacity float64

	// closed outline for polygons, nil for round kinds
	Vertices [][2]float64

	State     cfg.ThingState
	Dissolve  float64
	TouchedBy int
	Hotness   int
}

// TextDescriptor is a fading score label
type TextDescriptor struct {
	Text     string
	Center   math.Vec2
	FontSize float64
	Opacity  float64
	Color    color.RGBA
}

// LimbDescriptor is a limb estimate at the last tick
type LimbDescriptor struct {
	PlayerID int
	Key      tracking.BoneKey
	Segment  gamemath.Segment
}

// Snapshot is the drawable state of the simulation after the last tick
type Snapshot struct {
	Tick   int
	Shapes []ShapeDescriptor
	Scores []components.PlayerScore
	Texts  []TextDescriptor
	Limbs  []LimbDescriptor
}

// Snapshot describes every live shape, ordered by spawn, plus scores, texts and limbs
func (e *Engine) Snapshot() Snapshot {
	scene := e.scene()
	snap := Snapshot{
		Tick:   scene.Tick,
		Scores: e.Scores(),
	}

	tags.Thing.Each(e.world, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		if state.CurrentState == cfg.Remove {
			return
		}
		snap.Shapes = append(snap.Shapes, describeThing(entry))
	})
	sort.Slice(snap.Shapes, func(i, j int) bool { return snap.Shapes[i].ID < snap.Shapes[j].ID })

	tags.FlyingText.Each(e.world, func(entry *donburi.Entry) {
		ft := components.FlyingText.Get(entry)
		if ft.Done {
			return
		}
		snap.Texts = append(snap.Texts, TextDescriptor{
			Text:     ft.Text,
			Center:   ft.Center,
			FontSize: ft.FontSize,
			Opacity:  stdmath.Pow(ft.Alpha, cfg.FlyingText.OpacityPower),
			Color:    cfg.FlyingText.Color,
		})
	})

	tags.Player.Each(e.world, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		for _, key := range player.Skeleton.Keys() {
			snap.Limbs = append(snap.Limbs, LimbDescriptor{
				PlayerID: player.ID,
				Key:      key,
				Segment:  player.Skeleton.Bones[key].Estimate(scene.Now),
			})
		}
	})
	sort.SliceStable(snap.Limbs, func(i, j int) bool { return snap.Limbs[i].PlayerID < snap.Limbs[j].PlayerID })

	return snap
}

func describeThing(entry *donburi.Entry) ShapeDescriptor {
	thing := components.Thing.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	def := cfg.PolyDefs[thing.Shape]

	d := ShapeDescriptor{
		ID:            thing.Serial,
		Kind:          thing.Shape,
		Sides:         def.Sides,
		Skip:          def.Skip,
		Center:        thing.Center,
		Velocity:      physics.Velocity,
		Size:          thing.Size,
		Theta:         physics.Theta,
		Fill:          thing.Color,
		Stroke:        lighten(thing.Color),
		StrokeWidth:   cfg.Presentation.StrokeWidth,
		Opacity:       1,
		StrokeOpacity: 1,
		State:         state.CurrentState,
		Dissolve:      thing.Dissolve,
		TouchedBy:     thing.TouchedBy,
		Hotness:       thing.Hotness,
	}

	switch state.CurrentState {
	case cfg.Bouncing:
		flash := float64(components.Pulse.Get(entry).FlashCount)
		d.Stroke = cfg.Presentation.PulseColor
		d.StrokeWidth = thing.Size * cfg.Presentation.PulseWidth
		d.StrokeOpacity = gamemath.Clamp01(stdmath.Cos(cfg.Presentation.PulseRate*flash*float64(thing.Hotness)) + 0.5)
	case cfg.Dissolving:
		d.Opacity = 1 - thing.Dissolve*thing.Dissolve
		d.StrokeOpacity = 0
		d.StrokeWidth = 0
	}

	if !thing.Shape.IsRound() {
		d.Vertices = gamemath.PolygonVertices(def.Sides, def.Skip, thing.Size, physics.Theta, thing.Center.X, thing.Center.Y)
	}
	return d
}

// lighten blends c toward white, brighter colours less so
func lighten(c color.RGBA) color.RGBA {
	factor := 0.4 + float64(int(c.R)+int(c.G)+int(c.B))/cfg.Presentation.BrightnessScale
	blend := func(v uint8) uint8 {
		return uint8(gamemath.Clamp(255-(255-float64(v))*factor, 0, 255))
	}
	return color.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: c.A}
}
