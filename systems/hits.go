package systems

import (
	"time"

	"github.com/automoto/shapegame/components"
	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/gamemath"
	"github.com/automoto/shapegame/tags"
	"github.com/automoto/shapegame/tracking"
	"github.com/yohamta/donburi"
)

// UpdateHits tests every live shape against the limb estimates near it and applies bounces,
// streaks and scores
func UpdateHits(w donburi.World) {
	scene := GetScene(w)
	match := GetMatch(w)
	mode := cfg.GameModeOff
	if match != nil {
		mode = match.Mode
	}

	players := make(map[int]*components.PlayerData)
	tags.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		players[p.ID] = p
	})
	if len(players) == 0 {
		return
	}

	// scoring spawns flying texts, so collect before touching anything
	var live []*donburi.Entry
	tags.Thing.Each(w, func(e *donburi.Entry) {
		if components.State.Get(e).Live() {
			live = append(live, e)
		}
	})

	for _, e := range live {
		check := components.Object.Get(e).Check(0, 0, tags.ResolvLimb)
		if check == nil {
			continue
		}

		for _, obj := range check.ObjectsByTags(tags.ResolvLimb) {
			ref, ok := obj.Data.(components.LimbRef)
			if !ok {
				continue
			}
			player, ok := players[ref.PlayerID]
			if !ok {
				continue
			}
			bone, ok := player.Skeleton.Bones[ref.Key]
			if !ok {
				continue
			}

			hitThing(w, scene, mode, e, ref, bone)
			if !components.State.Get(e).Live() {
				break
			}
		}
	}
}

func hitThing(w donburi.World, scene *components.SceneData, mode cfg.GameMode, e *donburi.Entry, ref components.LimbRef, bone *tracking.Bone) {
	thing := components.Thing.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)

	seg := bone.Estimate(scene.Now)
	hit, hx, hy, u := gamemath.HitTest(thing.Center.X, thing.Center.Y, thing.Size, seg)
	if !hit {
		return
	}

	hitType := cfg.HitArm
	if seg.IsCircle() {
		hitType = cfg.HitHand
	}

	// interval bookkeeping
	ms := cfg.Hit.FirstHitInterval
	if !thing.TimeLastHit.IsZero() {
		ms = float64(scene.Now.Sub(thing.TimeLastHit)) / float64(time.Millisecond)
	}
	scoring := thing.TimeLastHit.IsZero() || scene.Now.Sub(thing.TimeLastHit) > cfg.Hit.MinScoreInterval
	thing.AvgTimeBetweenHits = thing.AvgTimeBetweenHits*cfg.Hit.AverageDecay + (1-cfg.Hit.AverageDecay)*ms
	thing.TimeLastHit = scene.Now

	// bounce off the limb, which pushes with its own velocity
	vx, vy := bone.VelocityAt(u)
	if seg.IsCircle() {
		vx, vy = bone.VX1, bone.VY1
	}
	tps := scene.Coeff.TicksPerSecond
	body := gamemath.BounceOff(
		gamemath.Body{X: thing.Center.X, Y: thing.Center.Y, VX: physics.Velocity.X, VY: physics.Velocity.Y, Size: thing.Size},
		gamemath.Contact{X: hx, Y: hy, Radius: seg.Radius, VX: vx / tps, VY: vy / tps},
	)
	thing.Center.X, thing.Center.Y = body.X, body.Y
	physics.Velocity.X, physics.Velocity.Y = body.VX, body.VY

	if mode == cfg.GameModeOff {
		state.Transition(cfg.Bouncing)
		publishHit(w, e, ref, hitType)
		return
	}

	switch {
	case state.CurrentState == cfg.Falling:
		state.Transition(cfg.Bouncing)
		components.Pulse.Get(e).FlashCount = 0
		thing.TouchedBy = ref.PlayerID
		thing.Hotness = 1
		thing.Hits++
		AddToScore(w, ref.PlayerID, cfg.Hit.PointsPerHit, thing.Center)

	case !scoring:
		// too soon after the previous hit, bounce only

	case mode == cfg.GameModeTwoPlayer && !seg.IsCircle() && thing.TouchedBy != ref.PlayerID:
		// struck by the opponent's arm: the owner cashes in
		AddToScore(w, thing.TouchedBy, cfg.Hit.PointsPerHit*thing.Hotness, thing.Center)
		popThing(scene, e)
		hitType |= cfg.HitPopped

	case thing.TouchedBy == ref.PlayerID:
		if thing.AvgTimeBetweenHits < cfg.Hit.HotnessWindow {
			thing.Hotness = min(thing.Hotness+1, cfg.Hit.MaxHotness)
		}
		thing.Hits++
		AddToScore(w, ref.PlayerID, cfg.Hit.PointsPerHit*thing.Hotness, thing.Center)

	default:
		thing.TouchedBy = ref.PlayerID
		thing.Hotness = 1
		thing.Hits++
		AddToScore(w, ref.PlayerID, cfg.Hit.PointsPerHit, thing.Center)
	}

	if state.Live() && cfg.Hit.PopAfterHits > 0 && thing.Hits >= cfg.Hit.PopAfterHits {
		popThing(scene, e)
		hitType |= cfg.HitPopped
	}

	if state.Live() && thing.AvgTimeBetweenHits < cfg.Hit.SqueezeInterval {
		AddToScore(w, ref.PlayerID, cfg.Hit.SqueezePoints, thing.Center)
		popThing(scene, e)
		hitType |= cfg.HitSqueezed | cfg.HitPopped
	}

	publishHit(w, e, ref, hitType)
}

// popThing stops a shape dead and starts its dissolve with a burst of spin
func popThing(scene *components.SceneData, e *donburi.Entry) {
	state := components.State.Get(e)
	if !state.Transition(cfg.Dissolving) {
		return
	}
	components.Thing.Get(e).Dissolve = 0

	physics := components.Physics.Get(e)
	physics.Velocity.X, physics.Velocity.Y = 0, 0
	physics.Spin = physics.Spin*cfg.Sim.PopSpinBoost + cfg.Sim.PopSpinAdd/scene.Coeff.Substeps
}

func publishHit(w donburi.World, e *donburi.Entry, ref components.LimbRef, hitType cfg.HitType) {
	HitEventType.Publish(w, HitEvent{
		Thing:    e.Entity(),
		PlayerID: ref.PlayerID,
		Key:      ref.Key,
		Type:     hitType,
		Center:   components.Thing.Get(e).Center,
	})
}
