package scenes

import (
	"fmt"
	"log"
	"time"

	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/engine"
	"github.com/automoto/shapegame/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// PlayfieldScene drives the engine from the window: the cursor moves the puppet, every
// frame runs IntraFrames ticks, and the snapshot is painted on Draw.
type PlayfieldScene struct {
	engine   *engine.Engine
	puppet   *Puppet
	store    *Store
	showHelp bool
	Debug    bool
}

func NewPlayfieldScene(e *engine.Engine, store *Store) *PlayfieldScene {
	return &PlayfieldScene{
		engine:   e,
		puppet:   NewPuppet(1),
		store:    store,
		showHelp: true,
	}
}

func (ps *PlayfieldScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		ps.showHelp = !ps.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		ps.Debug = !ps.Debug
	}

	changed := false
	for _, cmd := range pressedCommands() {
		if ps.engine.ApplyCommand(cmd) {
			changed = true
		}
	}
	if changed {
		if err := ps.store.Save(ps.engine.Settings()); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	s := ps.engine.Settings()
	now := time.Now()

	mx, my := ebiten.CursorPosition()
	ps.puppet.Pose(s.Width, s.Height, float64(mx), float64(my))
	ps.puppet.Report(ps.engine, now)

	step := time.Duration(float64(time.Second) / ps.engine.Coefficients().TicksPerSecond)
	for i := 0; i < s.IntraFrames; i++ {
		ps.engine.AdvanceTick(now.Add(-time.Duration(s.IntraFrames-1-i) * step))
	}
}

func (ps *PlayfieldScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	drawSnapshot(screen, ps.engine.Snapshot())
	if ps.Debug {
		drawDebug(screen, ps.engine.BroadPhase())
	}

	if ps.showHelp {
		ps.drawHelp(screen)
	}
}

func (ps *PlayfieldScene) drawHelp(screen *ebiten.Image) {
	s := ps.engine.Settings()
	lines := []string{
		fmt.Sprintf("shapes %d/%d  drop %.1f/s  size %.0f  gravity %.2f", ps.engine.ThingCount(), s.MaxShapes, s.DropRate, s.ShapeSize, s.Gravity),
		"up/down drop rate  b/s size  f/n/h/z gravity  1-5 colours  F1-F6 shapes",
		"r reset  o solo  t two players  x game off  d boxes  / hide help",
	}
	face := fonts.Face(13)
	y := int(s.Height) - 16*len(lines)
	for i, line := range lines {
		text.Draw(screen, line, face, 16, y+16*i, cfg.Gray)
	}
}
