// Package referenceframe places named, fixed frames in a tree rooted at the world frame and translates
// poses and points between any two of them. Useful for if you have a camera mounted on a gripper mounted on
// an arm, and need to know where something the camera sees is relative to the arm.
package referenceframe

import (
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/posemath/spatialmath"
)

// World is the string "world", but made into an exported constant.
const World = "world"

const frameTolerance = 1e-8

// Frame represents a reference frame, e.g. an arm, a joint, a gripper, a board, etc.
type Frame interface {
	// Name returns the name of the referenceframe.
	Name() string

	// Transform is the pose (rotation and translation) that goes FROM current frame TO parent's referenceframe.
	Transform() spatialmath.Pose

	// AlmostEquals returns if the otherFrame is close to the referenceframe.
	// differences should just be things like floating point inprecision
	AlmostEquals(otherFrame Frame) bool
}

// a static Frame is a simple coordinate system that encodes a fixed translation and rotation
// from the current Frame to the parent referenceframe.
type staticFrame struct {
	name      string
	transform spatialmath.Pose
}

// NewStaticFrame creates a frame given a pose relative to its parent. The pose is fixed for all time.
func NewStaticFrame(name string, pose spatialmath.Pose) Frame {
	return &staticFrame{name, pose}
}

// NewZeroStaticFrame creates a frame with no translation or orientation changes.
func NewZeroStaticFrame(name string) Frame {
	return &staticFrame{name, spatialmath.NewPose3D[float64]()}
}

// FrameFromPoint creates a new Frame offset from its parent by a 3D point with no rotation.
func FrameFromPoint(name string, point r3.Vector) Frame {
	pose := spatialmath.NewPose3DFromMatrix(spatialmath.Ident3[float64](), spatialmath.Vec3FromR3[float64](point))
	return &staticFrame{name, pose}
}

// Name is the name of the referenceframe.
func (sf *staticFrame) Name() string {
	return sf.name
}

// Transform returns the pose associated with this static referenceframe.
func (sf *staticFrame) Transform() spatialmath.Pose {
	return sf.transform
}

// AlmostEquals compares two frames by name and pose.
func (sf *staticFrame) AlmostEquals(otherFrame Frame) bool {
	other, ok := otherFrame.(*staticFrame)
	return ok && sf.name == other.name && spatialmath.PoseAlmostEqual(sf.transform, other.transform, frameTolerance)
}

func (sf *staticFrame) String() string {
	return fmt.Sprintf("%s\n%s", sf.name, sf.transform)
}
