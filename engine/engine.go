// Package engine runs the falling shapes simulation one tick at a time and exposes it as
// plain descriptors for a host to draw.
package engine

import (
	"image/color"
	"log"
	stdmath "math"
	"time"

	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/gamemath"
	"github.com/automoto/shapegame/systems"
	"github.com/automoto/shapegame/systems/factory"
	"github.com/automoto/shapegame/tracking"
	"github.com/automoto/shapegame/tuning"
	"github.com/yohamta/donburi"
)

// System is one step of a tick
type System func(w donburi.World)

// Ticks run these in order
var tickSystems = []System{
	systems.UpdatePlayers,
	systems.UpdateLimbs,
	systems.UpdateHits,
	systems.UpdatePhysics,
	systems.UpdateObjects,
	systems.UpdateSweep,
	systems.UpdateSpawner,
	systems.UpdateFlyingTexts,
}

// TickReport lists what happened during one tick
type TickReport struct {
	Tick   int
	Hits   []systems.HitEvent
	Scores []systems.ScoreEvent
}

// Engine owns one simulation world. It is not safe for concurrent use; the host calls
// ReportSegment and AdvanceTick from a single goroutine.
type Engine struct {
	world  donburi.World
	report TickReport
}

// New creates an engine for s. The seed drives every random choice the spawner makes.
func New(s tuning.Settings, seed int64) *Engine {
	e := &Engine{world: donburi.NewWorld()}
	factory.CreateScene(e.world, s, seed)

	systems.HitEventType.Subscribe(e.world, e.onHit)
	systems.ScoreEventType.Subscribe(e.world, e.onScore)
	return e
}

func (e *Engine) onHit(_ donburi.World, evt systems.HitEvent) {
	e.report.Hits = append(e.report.Hits, evt)
}

func (e *Engine) onScore(_ donburi.World, evt systems.ScoreEvent) {
	e.report.Scores = append(e.report.Scores, evt)
}

func (e *Engine) scene() *components.SceneData {
	return systems.GetScene(e.world)
}

// AdvanceTick runs one simulation tick at now
func (e *Engine) AdvanceTick(now time.Time) TickReport {
	scene := e.scene()
	scene.Now = now
	scene.Tick++

	e.report = TickReport{Tick: scene.Tick}
	for _, system := range tickSystems {
		system(e.world)
	}
	systems.HitEventType.ProcessEvents(e.world)
	systems.ScoreEventType.ProcessEvents(e.world)

	report := e.report
	e.report = TickReport{}
	return report
}

// ReportSegment records where a player's limb was seen at now. Unknown players and limbs
// start being tracked on their first report.
func (e *Engine) ReportSegment(playerID int, key tracking.BoneKey, seg gamemath.Segment, now time.Time) {
	if !finite(seg.X1, seg.Y1, seg.X2, seg.Y2, seg.Radius) {
		return
	}
	seg.Radius = stdmath.Max(0, seg.Radius)

	player, ok := factory.FindPlayer(e.world, playerID)
	if !ok {
		player = factory.CreatePlayer(e.world, playerID)
	}
	components.Player.Get(player).Skeleton.Update(key, seg, now)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if stdmath.IsNaN(v) || stdmath.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Configure replaces every setting at once. Values out of range are clamped.
func (e *Engine) Configure(s tuning.Settings) {
	scene := e.scene()
	old := scene.Settings

	clamped := s.Clamp()
	if clamped != s {
		log.Printf("Warning: settings clamped to %+v", clamped)
	}

	scene.Settings = clamped
	scene.Coeff = tuning.Derive(clamped)

	if clamped.Gravity == 0 && old.Gravity != 0 {
		systems.FreezeThings(e.world)
	}
	if clamped.Width != old.Width || clamped.Height != old.Height {
		factory.ResizeSpace(e.world, clamped.Width, clamped.Height)
	}
	if clamped.Mode != old.Mode {
		if match := systems.GetMatch(e.world); match != nil {
			match.Mode = clamped.Mode
			match.Clear()
		}
	}
}

func (e *Engine) update(fn func(s *tuning.Settings)) {
	s := e.scene().Settings
	fn(&s)
	e.Configure(s)
}

// SetMaxShapes caps how many shapes the spawner keeps alive
func (e *Engine) SetMaxShapes(n int) { e.update(func(s *tuning.Settings) { s.MaxShapes = n }) }

// SetDropRate sets the expected spawns per second
func (e *Engine) SetDropRate(rate float64) { e.update(func(s *tuning.Settings) { s.DropRate = rate }) }

// SetShapeSize sets the spawn radius in thousandths of the scene height
func (e *Engine) SetShapeSize(size float64) {
	e.update(func(s *tuning.Settings) { s.ShapeSize = size })
}

// SetPolies sets which shape kinds the spawner may drop
func (e *Engine) SetPolies(p cfg.PolyType) { e.update(func(s *tuning.Settings) { s.Polies = p }) }

// SetFrameRate sets the rendered frame rate and how many ticks run per frame
func (e *Engine) SetFrameRate(fps float64, intraFrames int) {
	e.update(func(s *tuning.Settings) {
		s.FrameRate = fps
		s.IntraFrames = intraFrames
	})
}

// SetGravity sets the gravity factor. Zero freezes every shape where it is.
func (e *Engine) SetGravity(g float64) {
	e.update(func(s *tuning.Settings) { s.Gravity = g })
	if e.scene().Settings.Gravity == 0 {
		systems.FreezeThings(e.world)
	}
}

// SetShapesColor picks how new shapes are coloured
func (e *Engine) SetShapesColor(mode cfg.ColorMode, base color.RGBA) {
	e.update(func(s *tuning.Settings) {
		s.ColorMode = mode
		s.BaseColor = base
	})
}

// SetBoundaries resizes the scene
func (e *Engine) SetBoundaries(width, height float64) {
	e.update(func(s *tuning.Settings) {
		s.Width = width
		s.Height = height
	})
}

// SetGameMode switches scoring rules and clears the scores
func (e *Engine) SetGameMode(mode cfg.GameMode) {
	e.update(func(s *tuning.Settings) { s.Mode = mode })
	if match := systems.GetMatch(e.world); match != nil {
		match.Clear()
	}
}

// Reset dissolves every live shape and clears the scores
func (e *Engine) Reset() {
	systems.ResetThings(e.world)
	if match := systems.GetMatch(e.world); match != nil {
		match.Clear()
	}
}

// DropThing spawns a shape right away, bypassing the spawner
func (e *Engine) DropThing(spec factory.ThingSpec) uint64 {
	entry := factory.CreateThing(e.world, spec)
	return components.Thing.Get(entry).Serial
}

// Settings returns the clamped settings in effect
func (e *Engine) Settings() tuning.Settings { return e.scene().Settings }

// Coefficients returns the per-tick constants derived from Settings
func (e *Engine) Coefficients() tuning.Coefficients { return e.scene().Coeff }

// Scores returns the per-player totals ordered by player id
func (e *Engine) Scores() []components.PlayerScore {
	if match := systems.GetMatch(e.world); match != nil {
		return match.Sorted()
	}
	return nil
}

// ThingCount returns how many shapes are alive
func (e *Engine) ThingCount() int { return systems.CountThings(e.world) }
