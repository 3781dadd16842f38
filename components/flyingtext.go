package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FlyingTextData is a short-lived score label that fades out while growing
type FlyingTextData struct {
	Text     string
	Center   math.Vec2
	FontSize float64
	Grow     float64 // font size added per tick
	Alpha    float64
	Fade     *gween.Tween // alpha over ticks
	Done     bool
}

var FlyingText = donburi.NewComponentType[FlyingTextData]()
