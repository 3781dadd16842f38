package tags

import "github.com/yohamta/donburi"

var (
	Thing      = donburi.NewTag().SetName("Thing")
	FlyingText = donburi.NewTag().SetName("FlyingText")
	Player     = donburi.NewTag().SetName("Player")
)

// Resolv tags for broad-phase collision
const (
	ResolvThing = "thing"
	ResolvLimb  = "limb"
)
