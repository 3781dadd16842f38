package systems

import (
	"github.com/automoto/shapegame/components"
	"github.com/automoto/shapegame/systems/factory"
	"github.com/automoto/shapegame/tags"
	"github.com/yohamta/donburi"
)

// UpdateObjects syncs each shape's broad-phase box with its centre and size
func UpdateObjects(w donburi.World) {
	tags.Thing.Each(w, func(e *donburi.Entry) {
		thing := components.Thing.Get(e)
		factory.PlaceObject(components.Object.Get(e).Object, thing.Bounds())
	})
}
