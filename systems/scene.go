package systems

import (
	"github.com/automoto/shapegame/components"
	"github.com/yohamta/donburi"
)

// GetScene returns the scene singleton
func GetScene(w donburi.World) *components.SceneData {
	return components.Scene.Get(components.Scene.MustFirst(w))
}

// GetMatch returns the match singleton, or nil if the world has none
func GetMatch(w donburi.World) *components.MatchData {
	if entry, ok := components.Match.First(w); ok {
		return components.Match.Get(entry)
	}
	return nil
}
