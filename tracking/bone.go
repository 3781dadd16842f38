package tracking

import (
	"time"

	cfg "github.com/automoto/shapegame/config"
	"github.com/automoto/shapegame/gamemath"
)

// Bone tracks one limb segment between sensor frames and extrapolates it to any instant.
// Velocities are in pixels per second and are only ever derived from successive updates.
type Bone struct {
	Segment     gamemath.Segment
	LastSegment gamemath.Segment
	Updated     time.Time
	Smoothing   float64
	MinElapsed  time.Duration

	// endpoint velocities, (VX1,VY1) for the first endpoint and (VX2,VY2) for the second
	VX1, VY1 float64
	VX2, VY2 float64

	observed bool
}

// NewBone returns a bone using the configured smoothing and minimum elapsed time
func NewBone() *Bone {
	return &Bone{
		Smoothing:  cfg.Tracking.Smoothing,
		MinElapsed: cfg.Tracking.MinElapsed,
	}
}

// Update records a new observation of the limb at now
func (b *Bone) Update(seg gamemath.Segment, now time.Time) {
	if !b.observed {
		b.Segment = seg
		b.LastSegment = seg
		b.Updated = now
		b.observed = true
		return
	}

	b.LastSegment = b.Segment
	b.Segment = seg

	elapsed := now.Sub(b.Updated)
	if elapsed < b.MinElapsed {
		elapsed = b.MinElapsed
	}
	perSecond := 1 / elapsed.Seconds()

	if now.After(b.Updated) {
		b.Updated = now
	}

	b.VX1 = b.smooth(b.VX1, (seg.X1-b.LastSegment.X1)*perSecond)
	b.VY1 = b.smooth(b.VY1, (seg.Y1-b.LastSegment.Y1)*perSecond)
	if seg.IsCircle() {
		b.VX2, b.VY2 = b.VX1, b.VY1
		return
	}
	b.VX2 = b.smooth(b.VX2, (seg.X2-b.LastSegment.X2)*perSecond)
	b.VY2 = b.smooth(b.VY2, (seg.Y2-b.LastSegment.Y2)*perSecond)
}

func (b *Bone) smooth(prev, sample float64) float64 {
	return prev*b.Smoothing + sample*(1-b.Smoothing)
}

// Estimate returns the segment extrapolated to now. Joint markers never stretch.
func (b *Bone) Estimate(now time.Time) gamemath.Segment {
	est := b.Segment

	elapsed := now.Sub(b.Updated).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	est.X1 += b.VX1 * elapsed
	est.Y1 += b.VY1 * elapsed
	if b.Segment.IsCircle() {
		est.X2 = est.X1
		est.Y2 = est.Y1
		return est
	}
	est.X2 += b.VX2 * elapsed
	est.Y2 += b.VY2 * elapsed
	return est
}

// VelocityAt returns the limb velocity at parametric position u along the bone
func (b *Bone) VelocityAt(u float64) (vx, vy float64) {
	u = gamemath.Clamp01(u)
	return gamemath.Lerp(b.VX1, b.VX2, u), gamemath.Lerp(b.VY1, b.VY2, u)
}
