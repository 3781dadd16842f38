package scenes

import (
	"image/color"

	"github.com/automoto/shapegame/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	debugThingColor = color.RGBA{0, 255, 255, 255}
	debugLimbColor  = color.RGBA{255, 0, 255, 255}
)

// drawDebug outlines every broad-phase box
func drawDebug(screen *ebiten.Image, boxes []engine.BroadPhaseBox) {
	for _, b := range boxes {
		c := debugThingColor
		if b.Limb {
			c = debugLimbColor
		}
		x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
