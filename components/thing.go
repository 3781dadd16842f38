package components

import (
	"image/color"
	"time"

	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ThingData is the simulation state of one falling shape
type ThingData struct {
	Serial uint64 // spawn order, used to order snapshots
	Shape  cfg.PolyType
	Center math.Vec2
	Size   float64 // bounding radius in pixels
	Color  color.RGBA

	Dissolve float64 // 0..1 while dissolving

	// Hit tracking
	TimeLastHit        time.Time // zero until first hit
	AvgTimeBetweenHits float64   // ms, rolling average
	TouchedBy          int       // player id of the last scorer
	Hotness            int       // hit streak
	Hits               int       // scoring hits taken
}

var Thing = donburi.NewComponentType[ThingData]()

// Bounds is the box around the shape's bounding circle
func (t *ThingData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: t.Center.X - t.Size, Y: t.Center.Y - t.Size, W: 2 * t.Size, H: 2 * t.Size}
}
