package systems

import (
	"image/color"
	stdmath "math"
	"math/rand"

	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/systems/factory"
	"github.com/automoto/shapegame/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// Drop velocities in thousandths of the scene height per reference tick
const (
	dropSpeedMin   = 0.25
	dropSpeedRange = 0.5
	dropDrift      = 0.5
	maxSpin        = 3 * stdmath.Pi // radians per second
)

var thingQuery = donburi.NewQuery(filter.Contains(tags.Thing, components.State))

// CountThings returns how many shapes are not yet marked for removal
func CountThings(w donburi.World) int {
	n := 0
	thingQuery.Each(w, func(e *donburi.Entry) {
		if components.State.Get(e).CurrentState != cfg.Remove {
			n++
		}
	})
	return n
}

// UpdateSpawner randomly drops a new shape from above the top edge
func UpdateSpawner(w donburi.World) {
	scene := GetScene(w)
	s := scene.Settings
	rng := scene.Rand

	if CountThings(w) >= s.MaxShapes {
		return
	}
	allowed := s.Polies.Allowed()
	if len(allowed) == 0 {
		return
	}
	if rng.Float64() >= s.DropRate/scene.Coeff.TicksPerSecond {
		return
	}

	size := scene.Coeff.ShapeSize
	band := stdmath.Min(s.Width, s.Height)
	unit := s.Height / 1000 / scene.Coeff.Substeps

	factory.CreateThing(w, factory.ThingSpec{
		Shape: allowed[rng.Intn(len(allowed))],
		Center: math.Vec2{
			X: (s.Width-band)/2 + rng.Float64()*band,
			Y: -size,
		},
		Velocity: math.Vec2{
			X: (rng.Float64() - 0.5) * dropDrift * unit,
			Y: (dropSpeedMin + rng.Float64()*dropSpeedRange) * unit,
		},
		Size:  size,
		Spin:  (rng.Float64()*2 - 1) * maxSpin / scene.Coeff.TicksPerSecond,
		Color: spawnColor(rng, s.ColorMode, s.BaseColor),
	})
}

func spawnColor(rng *rand.Rand, mode cfg.ColorMode, base color.RGBA) color.RGBA {
	if mode == cfg.ColorRandom {
		return color.RGBA{
			R: uint8(40 + rng.Intn(215)),
			G: uint8(40 + rng.Intn(215)),
			B: uint8(40 + rng.Intn(215)),
			A: 255,
		}
	}
	jitter := func(c uint8) uint8 {
		return uint8(stdmath.Min(255, float64(c)*(0.7+rng.Float64()*0.7)))
	}
	return color.RGBA{R: jitter(base.R), G: jitter(base.G), B: jitter(base.B), A: 255}
}
