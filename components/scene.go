package components

import (
	"math/rand"
	"time"

	"github.com/automoto/shapegame/tuning"
	"github.com/yohamta/donburi"
)

// SceneData is the singleton holding the settings, derived coefficients and clock of a
// simulation world
type SceneData struct {
	Settings tuning.Settings
	Coeff    tuning.Coefficients

	Now  time.Time // time of the tick being run
	Tick int

	Rand       *rand.Rand
	NextSerial uint64
}

var Scene = donburi.NewComponentType[SceneData]()
