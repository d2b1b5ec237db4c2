package referenceframe

import (
	commonpb "go.viam.com/api/common/v1"

	"go.viam.com/posemath/spatialmath"
)

// PoseInFrame is a data structure that packages a pose with the name of the
// frame in which it was observed.
type PoseInFrame struct {
	frame string
	pose  spatialmath.Pose
}

// NewPoseInFrame generates a new PoseInFrame.
func NewPoseInFrame(frame string, pose spatialmath.Pose) *PoseInFrame {
	return &PoseInFrame{
		frame: frame,
		pose:  pose,
	}
}

// NewZeroPoseInFrame returns the origin of the given frame.
func NewZeroPoseInFrame(frame string) *PoseInFrame {
	return NewPoseInFrame(frame, spatialmath.NewPose3D[float64]())
}

// FrameName returns the name of the frame in which the pose was observed.
func (pF *PoseInFrame) FrameName() string {
	return pF.frame
}

// Pose returns the pose that was observed.
func (pF *PoseInFrame) Pose() spatialmath.Pose {
	return pF.pose
}

// Transform re-expresses the pose through tf, which must be the pose of pF's frame in tf's frame.
func (pF *PoseInFrame) Transform(tf *PoseInFrame) *PoseInFrame {
	return NewPoseInFrame(tf.frame, tf.pose.Compose(pF.pose))
}

// AlmostEqual reports whether both are in the same frame at nearly the same pose.
func (pF *PoseInFrame) AlmostEqual(other *PoseInFrame) bool {
	return pF.frame == other.frame && spatialmath.PoseAlmostEqual(pF.pose, other.pose, frameTolerance)
}

// PoseInFrameToProtobuf converts a PoseInFrame struct to a
// PoseInFrame message as specified in common.proto.
func PoseInFrameToProtobuf(framedPose *PoseInFrame) *commonpb.PoseInFrame {
	return &commonpb.PoseInFrame{
		ReferenceFrame: framedPose.frame,
		Pose:           spatialmath.PoseToProtobuf(framedPose.pose),
	}
}

// ProtobufToPoseInFrame converts a PoseInFrame message as specified in
// common.proto to a PoseInFrame struct.
func ProtobufToPoseInFrame(proto *commonpb.PoseInFrame) *PoseInFrame {
	return NewPoseInFrame(proto.GetReferenceFrame(), spatialmath.NewPoseFromProtobuf(proto.GetPose()))
}
