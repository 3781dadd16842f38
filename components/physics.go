package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PhysicsData holds per-tick motion in pixels and radians per tick
type PhysicsData struct {
	Velocity math.Vec2
	Theta    float64 // rotation
	Spin     float64 // rotation added each tick
}

var Physics = donburi.NewComponentType[PhysicsData]()
