package tracking

import (
	"sort"
	"time"

	"github.com/automoto/shapegame/gamemath"
)

// Skeleton is the set of limbs reported for one player
type Skeleton struct {
	Bones       map[BoneKey]*Bone
	LastUpdated time.Time
	Alive       bool
}

// NewSkeleton returns an empty, alive skeleton
func NewSkeleton() *Skeleton {
	return &Skeleton{
		Bones: make(map[BoneKey]*Bone),
		Alive: true,
	}
}

// Update records a limb observation, creating the bone on its first report
func (s *Skeleton) Update(key BoneKey, seg gamemath.Segment, now time.Time) *Bone {
	bone, ok := s.Bones[key]
	if !ok {
		bone = NewBone()
		s.Bones[key] = bone
	}
	bone.Update(seg, now)

	if now.After(s.LastUpdated) {
		s.LastUpdated = now
	}
	s.Alive = true
	return bone
}

// Expired reports whether the skeleton has gone unreported for longer than timeout
func (s *Skeleton) Expired(now time.Time, timeout time.Duration) bool {
	return now.Sub(s.LastUpdated) > timeout
}

// Keys returns the bone keys in a stable order
func (s *Skeleton) Keys() []BoneKey {
	keys := make([]BoneKey, 0, len(s.Bones))
	for k := range s.Bones {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Joint1 != keys[j].Joint1 {
			return keys[i].Joint1 < keys[j].Joint1
		}
		return keys[i].Joint2 < keys[j].Joint2
	})
	return keys
}
