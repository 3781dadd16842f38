package factory

import (
	"math/rand"

	"github.com/automoto/shapegame/archetypes"
	"github.com/automoto/shapegame/components"
	"github.com/automoto/shapegame/tuning"
	"github.com/yohamta/donburi"
)

// CreateScene creates the scene, match and space singletons of a fresh world
func CreateScene(w donburi.World, s tuning.Settings, seed int64) *donburi.Entry {
	s = s.Clamp()

	scene := archetypes.Scene.Spawn(w)
	components.Scene.SetValue(scene, components.SceneData{
		Settings: s,
		Coeff:    tuning.Derive(s),
		Rand:     rand.New(rand.NewSource(seed)),
	})

	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.MatchData{
		Mode:   s.Mode,
		Scores: make(map[int]int),
	})

	CreateSpace(w, s.Width, s.Height)
	return scene
}
