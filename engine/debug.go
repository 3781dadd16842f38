package engine

import (
	"github.com/automoto/shapegame/components"
	"github.com/automoto/shapegame/gamemath"
	"github.com/automoto/shapegame/systems/factory"
	"github.com/automoto/shapegame/tags"
)

// BroadPhaseBox is one object of the spatial hash
type BroadPhaseBox struct {
	gamemath.Rect
	Limb bool
}

// BroadPhase lists every box in the spatial hash in scene coordinates, for debug overlays
func (e *Engine) BroadPhase() []BroadPhaseBox {
	entry, ok := components.Space.First(e.world)
	if !ok {
		return nil
	}
	var out []BroadPhaseBox
	for _, obj := range components.Space.Get(entry).Objects() {
		out = append(out, BroadPhaseBox{
			Rect: factory.SceneBox(obj),
			Limb: obj.HasTags(tags.ResolvLimb),
		})
	}
	return out
}
