package systems

import (
	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/gamemath"
	"github.com/automoto/shapegame/tags"
	"github.com/yohamta/donburi"
)

// UpdatePhysics advances every shape by one tick
func UpdatePhysics(w donburi.World) {
	scene := GetScene(w)
	coeff := scene.Coeff
	width, height := scene.Settings.Width, scene.Settings.Height

	tags.Thing.Each(w, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.CurrentState == cfg.Remove {
			return
		}
		thing := components.Thing.Get(e)
		physics := components.Physics.Get(e)

		// integrate
		thing.Center.X += physics.Velocity.X
		thing.Center.Y += physics.Velocity.Y
		physics.Velocity.Y += coeff.Gravity * height
		physics.Velocity.X *= coeff.AirFriction
		physics.Velocity.Y *= coeff.AirFriction
		physics.Theta += physics.Spin

		// side walls
		if thing.Center.X-thing.Size < 0 || thing.Center.X+thing.Size > width {
			thing.Center.X, physics.Velocity.X = gamemath.ReflectX(thing.Center.X, physics.Velocity.X)
		}

		// fell out of the bottom
		if thing.Center.Y-thing.Size > height {
			state.Transition(cfg.Remove)
			return
		}

		switch state.CurrentState {
		case cfg.Bouncing:
			components.Pulse.Get(e).FlashCount++
		case cfg.Dissolving:
			thing.Dissolve = gamemath.Clamp01(thing.Dissolve + coeff.DissolveStep)
			thing.Size *= coeff.ExpandingRate
			if thing.Dissolve >= 1 {
				state.Transition(cfg.Remove)
				return
			}
		}
		state.StateTimer++
	})
}

// FreezeThings stops every shape in place
func FreezeThings(w donburi.World) {
	tags.Thing.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.Velocity.X, physics.Velocity.Y = 0, 0
	})
}
