package tracking

import (
	"testing"
	"time"

	"github.com/automoto/shapegame/gamemath"
)

func TestSkeletonCreatesBonesOnFirstReport(t *testing.T) {
	s := NewSkeleton()
	key := BoneKey{JointElbowLeft, JointWristLeft}
	s.Update(key, gamemath.Segment{X1: 1, Y1: 1, X2: 5, Y2: 5, Radius: 2}, at(0))
	s.Update(JointKey(JointHead), gamemath.NewPointSegment(3, 0, 10), at(0))

	if len(s.Bones) != 2 {
		t.Fatalf("expected 2 bones, got %d", len(s.Bones))
	}
	keys := s.Keys()
	if keys[0] != JointKey(JointHead) || keys[1] != key {
		t.Fatalf("unexpected key order %v", keys)
	}
}

func TestSkeletonExpiry(t *testing.T) {
	s := NewSkeleton()
	s.Update(JointKey(JointHandRight), gamemath.NewPointSegment(0, 0, 5), at(1000))

	if s.Expired(at(1500), 500*time.Millisecond) {
		t.Fatalf("skeleton expired at exactly the timeout")
	}
	if !s.Expired(at(1501), 500*time.Millisecond) {
		t.Fatalf("skeleton should expire after the timeout")
	}

	// a stale report does not move LastUpdated back
	s.Update(JointKey(JointHandRight), gamemath.NewPointSegment(0, 0, 5), at(200))
	if !s.LastUpdated.Equal(at(1000)) {
		t.Fatalf("LastUpdated regressed to %v", s.LastUpdated)
	}
}

func TestBoneKeyHelpers(t *testing.T) {
	if !JointKey(JointFootLeft).IsFoot() {
		t.Fatalf("left foot marker should be a foot")
	}
	if (BoneKey{JointAnkleLeft, JointFootLeft}).IsFoot() {
		t.Fatalf("ankle bone is not a foot marker")
	}
	if JointRadius(JointHead, 400) <= JointRadius(JointHandLeft, 400) {
		t.Fatalf("head marker should be larger than a hand")
	}
	if BoneRadius(10) != 1.5 {
		t.Fatalf("bone radius should be floored, got %v", BoneRadius(10))
	}
}
