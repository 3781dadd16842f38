package components

import (
	cfg "github.com/automoto/shapegame/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.ThingState
	PreviousState cfg.ThingState
	StateTimer    int // ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

// Transition moves forward to next. States only advance along
// Falling, Bouncing, Dissolving, Remove; anything else is ignored and returns false.
func (s *StateData) Transition(next cfg.ThingState) bool {
	if next <= s.CurrentState {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
	return true
}

// Live reports whether the shape can still be hit
func (s *StateData) Live() bool {
	return s.CurrentState == cfg.Falling || s.CurrentState == cfg.Bouncing
}
