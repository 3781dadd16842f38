package components

import (
	"github.com/automoto/shapegame/tracking"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ID       int
	Skeleton *tracking.Skeleton
	Limbs    map[tracking.BoneKey]*resolv.Object // broad-phase box of each limb estimate
}

var Player = donburi.NewComponentType[PlayerData]()

// LimbRef is stored in a limb object's Data so a broad-phase hit leads back to the bone
type LimbRef struct {
	PlayerID int
	Key      tracking.BoneKey
}
