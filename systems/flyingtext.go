package systems

import (
	stdmath "math"

	"github.com/automoto/shapegame/components"
	"github.com/automoto/shapegame/tags"
	"github.com/yohamta/donburi"
)

// UpdateFlyingTexts fades and grows score labels, flagging finished ones for the sweep
func UpdateFlyingTexts(w donburi.World) {
	tags.FlyingText.Each(w, func(e *donburi.Entry) {
		ft := components.FlyingText.Get(e)
		if ft.Done {
			return
		}
		alpha, finished := ft.Fade.Update(1)
		ft.Alpha = stdmath.Max(0, float64(alpha))
		ft.FontSize += ft.Grow
		if finished || ft.Alpha <= 0 {
			ft.Alpha = 0
			ft.Done = true
		}
	})
}
