package factory

import (
	"math"

	"github.com/automoto/shapegame/archetypes"
	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/gamemath"
	"github.com/automoto/shapegame/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the broad-phase space covering a width x height scene plus the
// configured margin on every side
func CreateSpace(w donburi.World, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, newSpace(width, height))
	return space
}

// ResizeSpace replaces the space with one covering the new bounds and moves every shape
// and limb object into it
func ResizeSpace(w donburi.World, width, height float64) {
	entry, ok := components.Space.First(w)
	if !ok {
		CreateSpace(w, width, height)
		return
	}

	var objects []*resolv.Object
	tags.Thing.Each(w, func(e *donburi.Entry) {
		objects = append(objects, components.Object.Get(e).Object)
	})
	tags.Player.Each(w, func(e *donburi.Entry) {
		for _, obj := range components.Player.Get(e).Limbs {
			objects = append(objects, obj)
		}
	})

	for _, obj := range objects {
		RemoveFromSpace(obj)
	}
	space := newSpace(width, height)
	space.Add(objects...)
	components.Space.Set(entry, space)

	// boxes were clipped to the old extent
	tags.Thing.Each(w, func(e *donburi.Entry) {
		thing := components.Thing.Get(e)
		PlaceObject(components.Object.Get(e).Object, thing.Bounds())
	})
}

func newSpace(width, height float64) *resolv.Space {
	cell := cfg.Space.CellSize
	cols := int(math.Ceil(width/float64(cell))) + 2*cfg.Space.Margin
	rows := int(math.Ceil(height/float64(cell))) + 2*cfg.Space.Margin
	return resolv.NewSpace(max(cols, 1)*cell, max(rows, 1)*cell, cell, cell)
}

// SpaceOffset is how far the space's origin sits above and left of the scene's
func SpaceOffset() float64 {
	return float64(cfg.Space.Margin * cfg.Space.CellSize)
}

// PlaceObject moves obj to the scene box r and rehashes it. The box is padded by a pixel so
// touching boxes share a cell, then clipped to the space: anything past the margin lands in
// the edge cells, and no box hashes into more cells than the space has.
func PlaceObject(obj *resolv.Object, r gamemath.Rect) {
	off := SpaceOffset()
	x0, x1 := r.X-1+off, r.Right()+1+off
	y0, y1 := r.Y-1+off, r.Bottom()+1+off

	if obj.Space != nil {
		sw := float64(obj.Space.Width() * obj.Space.CellWidth)
		sh := float64(obj.Space.Height() * obj.Space.CellHeight)
		x0, x1 = clipSpan(x0, x1, sw)
		y0, y1 = clipSpan(y0, y1, sh)
	}

	obj.X, obj.Y, obj.W, obj.H = x0, y0, x1-x0, y1-y0
	obj.Update()
}

// clipSpan clamps [lo, hi] into [0, limit] keeping it at least a pixel wide
func clipSpan(lo, hi, limit float64) (float64, float64) {
	if math.IsNaN(lo) {
		lo = 0
	}
	if math.IsNaN(hi) {
		hi = lo
	}
	lo = math.Min(math.Max(lo, 0), limit-1)
	hi = math.Min(math.Max(hi, lo+1), limit)
	return lo, hi
}

// SceneBox converts a hashed object's box back to scene coordinates
func SceneBox(obj *resolv.Object) gamemath.Rect {
	off := SpaceOffset()
	return gamemath.Rect{X: obj.X - off, Y: obj.Y - off, W: obj.W, H: obj.H}
}

// AddToSpace registers obj with the world's space if it has one
func AddToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// RemoveFromSpace unregisters obj from whatever space holds it
func RemoveFromSpace(obj *resolv.Object) {
	if obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
}
