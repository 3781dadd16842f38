package systems

import (
	"fmt"

	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/systems/factory"
	"github.com/automoto/shapegame/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AddToScore credits points to a player and shows them flying out of at
func AddToScore(w donburi.World, playerID, points int, at math.Vec2) {
	if points <= 0 {
		return
	}
	match := GetMatch(w)
	if match == nil {
		return
	}
	match.Add(playerID, points)

	scene := GetScene(w)
	size := scene.Settings.Width / 300 * cfg.FlyingText.TextScale
	factory.CreateFlyingText(w, fmt.Sprintf("+%d", points), size, at)

	ScoreEventType.Publish(w, ScoreEvent{PlayerID: playerID, Points: points, Center: at})
}

// ResetThings dissolves every shape that is still falling or bouncing
func ResetThings(w donburi.World) {
	tags.Thing.Each(w, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.Live() {
			state.Transition(cfg.Dissolving)
			components.Thing.Get(e).Dissolve = 0
		}
	})
}
