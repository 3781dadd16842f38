package archetypes

import (
	"github.com/automoto/shapegame/components"
	"github.com/automoto/shapegame/tags"
	"github.com/yohamta/donburi"
)

var (
	Thing = newArchetype(
		tags.Thing,
		components.Thing,
		components.Physics,
		components.State,
		components.Pulse,
		components.Object,
	)
	FlyingText = newArchetype(
		tags.FlyingText,
		components.FlyingText,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Scene = newArchetype(
		components.Scene,
	)
	Match = newArchetype(
		components.Match,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
