package factory

import (
	stdmath "math"

	"github.com/automoto/shapegame/archetypes"
	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateFlyingText spawns a label at center that fades out at a fixed rate per tick
// while its font grows by sqrt(size) times the configured growth factor
func CreateFlyingText(w donburi.World, text string, size float64, center math.Vec2) *donburi.Entry {
	entry := archetypes.FlyingText.Spawn(w)

	size = stdmath.Max(cfg.FlyingText.MinFontSize, size)
	fadeTicks := float32(1 / cfg.FlyingText.FadePerTick)

	components.FlyingText.SetValue(entry, components.FlyingTextData{
		Text:     text,
		Center:   center,
		FontSize: size,
		Grow:     stdmath.Sqrt(size) * cfg.FlyingText.GrowthFactor,
		Alpha:    1,
		Fade:     gween.New(1, 0, fadeTicks, ease.Linear),
	})

	return entry
}
