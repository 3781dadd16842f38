package components

import "github.com/yohamta/donburi"

// PulseData tracks the stroke pulse of a bouncing shape. It is presentation only and
// never feeds back into the simulation.
type PulseData struct {
	FlashCount int // ticks spent pulsing
}

var Pulse = donburi.NewComponentType[PulseData]()
