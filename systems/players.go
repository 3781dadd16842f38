package systems

import (
	"log"

	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/systems/factory"
	"github.com/automoto/shapegame/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayers marks players that stopped reporting as dead and prunes them with their limbs
func UpdatePlayers(w donburi.World) {
	scene := GetScene(w)

	var expired []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Skeleton.Expired(scene.Now, cfg.Tracking.Timeout) {
			player.Skeleton.Alive = false
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		log.Printf("Player %d not seen for %v, removing", components.Player.Get(e).ID, cfg.Tracking.Timeout)
		factory.DestroyPlayer(e)
	}
}

// UpdateLimbs moves each limb's broad-phase box to the bounds of its estimate at the current tick
func UpdateLimbs(w donburi.World) {
	scene := GetScene(w)

	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		for key, bone := range player.Skeleton.Bones {
			obj := factory.LimbObject(w, player, key)
			factory.PlaceObject(obj, bone.Estimate(scene.Now).Bounds())
		}
	})
}
