package config

// ThingState is the lifecycle state of a falling shape
type ThingState int

const (
	Falling ThingState = iota
	Bouncing
	Dissolving
	Remove
)

var thingStateNames = map[ThingState]string{
	Falling:    "falling",
	Bouncing:   "bouncing",
	Dissolving: "dissolving",
	Remove:     "remove",
}

func (s ThingState) String() string {
	if name, ok := thingStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// GameMode selects the scoring rules
type GameMode int

const (
	GameModeOff GameMode = iota
	GameModeSolo
	GameModeTwoPlayer
)

// ColorMode selects how spawned shapes are coloured
type ColorMode int

const (
	ColorRandom ColorMode = iota // every channel random
	ColorBase                    // BaseColor with random brightness
)

// HitType flags describe what happened when a limb touched a shape
type HitType uint8

const (
	HitNone     HitType = 0
	HitHand     HitType = 1 << 0 // circle segment: head, hand or foot
	HitArm      HitType = 1 << 1 // bone segment
	HitSqueezed HitType = 1 << 2
	HitPopped   HitType = 1 << 3
)

// Has reports whether all flags in o are set
func (h HitType) Has(o HitType) bool {
	return h&o == o
}
