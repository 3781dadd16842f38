package scenes

import (
	"math"
	"time"

	"github.com/automoto/shapegame/engine"
	"github.com/automoto/shapegame/gamemath"
	"github.com/automoto/shapegame/tracking"
)

// Puppet is a stand-in for a tracked body: it stands at the bottom of the scene and
// reaches for the cursor with its right hand while the left hand mirrors it.
type Puppet struct {
	PlayerID int
	Height   float64 // on-screen height in pixels
	joints   [tracking.JointCount][2]float64
}

func NewPuppet(playerID int) *Puppet {
	return &Puppet{PlayerID: playerID}
}

// Pose places every joint for a scene of the given size with the right hand at (tx, ty)
func (p *Puppet) Pose(width, height, tx, ty float64) {
	h := height * 0.6
	p.Height = h
	cx := width / 2
	feet := height - h*0.02

	set := func(j tracking.JointType, x, y float64) { p.joints[j] = [2]float64{x, y} }

	set(tracking.JointHead, cx, feet-h*0.93)
	set(tracking.JointShoulderCenter, cx, feet-h*0.82)
	set(tracking.JointSpine, cx, feet-h*0.65)
	set(tracking.JointHipCenter, cx, feet-h*0.5)

	shoulder := h * 0.12
	set(tracking.JointShoulderLeft, cx-shoulder, feet-h*0.8)
	set(tracking.JointShoulderRight, cx+shoulder, feet-h*0.8)

	hip := h * 0.08
	set(tracking.JointHipLeft, cx-hip, feet-h*0.48)
	set(tracking.JointHipRight, cx+hip, feet-h*0.48)
	set(tracking.JointKneeLeft, cx-hip, feet-h*0.26)
	set(tracking.JointKneeRight, cx+hip, feet-h*0.26)
	set(tracking.JointAnkleLeft, cx-hip, feet-h*0.04)
	set(tracking.JointAnkleRight, cx+hip, feet-h*0.04)
	set(tracking.JointFootLeft, cx-hip*1.6, feet)
	set(tracking.JointFootRight, cx+hip*1.6, feet)

	p.reach(tracking.JointShoulderRight, tracking.JointElbowRight, tracking.JointWristRight, tracking.JointHandRight, tx, ty, h)
	p.reach(tracking.JointShoulderLeft, tracking.JointElbowLeft, tracking.JointWristLeft, tracking.JointHandLeft, 2*cx-tx, ty, h)
}

// reach stretches an arm from its shoulder toward (tx, ty), no further than the arm is long
func (p *Puppet) reach(shoulder, elbow, wrist, hand tracking.JointType, tx, ty, h float64) {
	sx, sy := p.joints[shoulder][0], p.joints[shoulder][1]
	dx, dy := tx-sx, ty-sy
	d := math.Hypot(dx, dy)
	arm := h * 0.45
	if d > arm {
		dx, dy = dx/d*arm, dy/d*arm
	}

	p.joints[elbow] = [2]float64{sx + dx*0.45, sy + dy*0.45 + h*0.03}
	p.joints[wrist] = [2]float64{sx + dx*0.92, sy + dy*0.92}
	p.joints[hand] = [2]float64{sx + dx, sy + dy}
}

// Report feeds the current pose to the engine as one sensor frame
func (p *Puppet) Report(e *engine.Engine, now time.Time) {
	boneRadius := tracking.BoneRadius(p.Height)
	for _, key := range tracking.SkeletonBones {
		a, b := p.joints[key.Joint1], p.joints[key.Joint2]
		e.ReportSegment(p.PlayerID, key, gamemath.Segment{X1: a[0], Y1: a[1], X2: b[0], Y2: b[1], Radius: boneRadius}, now)
	}
	for _, j := range tracking.SkeletonJoints {
		at := p.joints[j]
		e.ReportSegment(p.PlayerID, tracking.JointKey(j), gamemath.NewPointSegment(at[0], at[1], tracking.JointRadius(j, p.Height)), now)
	}
}
