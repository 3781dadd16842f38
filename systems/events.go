package systems

import (
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/tracking"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// HitEvent is published whenever a limb touches a live shape
type HitEvent struct {
	Thing    donburi.Entity
	PlayerID int
	Key      tracking.BoneKey
	Type     cfg.HitType
	Center   math.Vec2
}

// ScoreEvent is published whenever points are credited to a player
type ScoreEvent struct {
	PlayerID int
	Points   int
	Center   math.Vec2
}

var (
	HitEventType   = events.NewEventType[HitEvent]()
	ScoreEventType = events.NewEventType[ScoreEvent]()
)
