package factory

import (
	"image/color"

	"github.com/automoto/shapegame/archetypes"
	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ThingSpec describes a shape to drop
type ThingSpec struct {
	Shape    cfg.PolyType
	Center   math.Vec2
	Velocity math.Vec2
	Size     float64
	Spin     float64
	Color    color.RGBA
}

// CreateThing spawns a falling shape and registers it with the broad-phase space
func CreateThing(w donburi.World, spec ThingSpec) *donburi.Entry {
	thing := archetypes.Thing.Spawn(w)
	scene := components.Scene.Get(components.Scene.MustFirst(w))
	scene.NextSerial++

	size := spec.Size
	if size < 0 {
		size = 0
	}

	components.Thing.SetValue(thing, components.ThingData{
		Serial:             scene.NextSerial,
		Shape:              spec.Shape,
		Center:             spec.Center,
		Size:               size,
		Color:              spec.Color,
		AvgTimeBetweenHits: cfg.Hit.InitialAverage,
	})
	components.Physics.SetValue(thing, components.PhysicsData{
		Velocity: spec.Velocity,
		Spin:     spec.Spin,
	})
	components.State.SetValue(thing, components.StateData{
		CurrentState:  cfg.Falling,
		PreviousState: cfg.Falling,
	})

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvThing)
	obj.Data = thing
	components.Object.SetValue(thing, components.ObjectData{Object: obj})
	AddToSpace(w, obj)
	PlaceObject(obj, components.Thing.Get(thing).Bounds())

	return thing
}

// DestroyThing removes a shape and its broad-phase object
func DestroyThing(thing *donburi.Entry) {
	if thing.HasComponent(components.Object) {
		RemoveFromSpace(components.Object.Get(thing).Object)
	}
	thing.Remove()
}
