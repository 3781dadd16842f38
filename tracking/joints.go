package tracking

import (
	"math"

	cfg "github.com/automoto/shapegame/config"
)

// JointType identifies a tracked skeletal joint
type JointType int

const (
	JointHipCenter JointType = iota
	JointSpine
	JointShoulderCenter
	JointHead
	JointShoulderLeft
	JointElbowLeft
	JointWristLeft
	JointHandLeft
	JointShoulderRight
	JointElbowRight
	JointWristRight
	JointHandRight
	JointHipLeft
	JointKneeLeft
	JointAnkleLeft
	JointFootLeft
	JointHipRight
	JointKneeRight
	JointAnkleRight
	JointFootRight
	JointCount
)

// BoneKey identifies a limb by the joints it connects. A key whose joints are equal
// addresses a single joint marker.
type BoneKey struct {
	Joint1 JointType
	Joint2 JointType
}

// JointKey returns the key of a single-joint marker
func JointKey(j JointType) BoneKey {
	return BoneKey{Joint1: j, Joint2: j}
}

// IsJoint reports whether the key addresses a single joint
func (k BoneKey) IsJoint() bool {
	return k.Joint1 == k.Joint2
}

// IsFoot reports whether the key is a foot marker
func (k BoneKey) IsFoot() bool {
	return k.IsJoint() && (k.Joint1 == JointFootLeft || k.Joint1 == JointFootRight)
}

// SkeletonBones lists the bones a full body reports every frame
var SkeletonBones = []BoneKey{
	// torso
	{JointHead, JointShoulderCenter},
	{JointShoulderCenter, JointShoulderLeft},
	{JointShoulderCenter, JointShoulderRight},
	{JointShoulderCenter, JointSpine},
	{JointSpine, JointHipCenter},
	{JointHipCenter, JointHipLeft},
	{JointHipCenter, JointHipRight},

	// left arm
	{JointShoulderLeft, JointElbowLeft},
	{JointElbowLeft, JointWristLeft},
	{JointWristLeft, JointHandLeft},

	// right arm
	{JointShoulderRight, JointElbowRight},
	{JointElbowRight, JointWristRight},
	{JointWristRight, JointHandRight},

	// left leg
	{JointHipLeft, JointKneeLeft},
	{JointKneeLeft, JointAnkleLeft},
	{JointAnkleLeft, JointFootLeft},

	// right leg
	{JointHipRight, JointKneeRight},
	{JointKneeRight, JointAnkleRight},
	{JointAnkleRight, JointFootRight},
}

// SkeletonJoints lists the joints reported as circle markers
var SkeletonJoints = []JointType{
	JointHead,
	JointHandLeft,
	JointHandRight,
	JointFootLeft,
	JointFootRight,
}

// JointRadius returns the marker radius of a joint for a player drawn playerHeight tall
func JointRadius(j JointType, playerHeight float64) float64 {
	if j == JointHead {
		return playerHeight * cfg.Tracking.HeadSize / 2
	}
	return playerHeight * cfg.Tracking.HandSize / 2
}

// BoneRadius returns the capsule radius of a bone for a player drawn playerHeight tall
func BoneRadius(playerHeight float64) float64 {
	return math.Max(cfg.Tracking.MinBone, playerHeight*cfg.Tracking.BoneSize) / 2
}
