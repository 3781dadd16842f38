package factory

import (
	"github.com/automoto/shapegame/archetypes"
	"github.com/automoto/shapegame/components"
	"github.com/automoto/shapegame/tags"
	"github.com/automoto/shapegame/tracking"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns a tracked player with an empty skeleton
func CreatePlayer(w donburi.World, id int) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	components.Player.SetValue(player, components.PlayerData{
		ID:       id,
		Skeleton: tracking.NewSkeleton(),
		Limbs:    make(map[tracking.BoneKey]*resolv.Object),
	})
	return player
}

// FindPlayer returns the player entity with the given id
func FindPlayer(w donburi.World, id int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Player.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}

// LimbObject returns the broad-phase object of a player's limb, creating it on first use
func LimbObject(w donburi.World, player *components.PlayerData, key tracking.BoneKey) *resolv.Object {
	if obj, ok := player.Limbs[key]; ok {
		return obj
	}
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvLimb)
	obj.Data = components.LimbRef{PlayerID: player.ID, Key: key}
	player.Limbs[key] = obj
	AddToSpace(w, obj)
	return obj
}

// DestroyPlayer removes a player and every limb object it owns
func DestroyPlayer(player *donburi.Entry) {
	data := components.Player.Get(player)
	for key, obj := range data.Limbs {
		RemoveFromSpace(obj)
		delete(data.Limbs, key)
	}
	player.Remove()
}
