package systems

import (
	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/systems/factory"
	"github.com/automoto/shapegame/tags"
	"github.com/yohamta/donburi"
)

// UpdateSweep removes shapes marked for removal and flying texts that finished fading
func UpdateSweep(w donburi.World) {
	var things, texts []*donburi.Entry

	tags.Thing.Each(w, func(e *donburi.Entry) {
		if components.State.Get(e).CurrentState == cfg.Remove {
			things = append(things, e)
		}
	})
	tags.FlyingText.Each(w, func(e *donburi.Entry) {
		if components.FlyingText.Get(e).Done {
			texts = append(texts, e)
		}
	})

	for _, e := range things {
		factory.DestroyThing(e)
	}
	for _, e := range texts {
		e.Remove()
	}
}
