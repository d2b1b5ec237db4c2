package spatialmath

import (
	"encoding/json"

	"github.com/pkg/errors"
	commonpb "go.viam.com/api/common/v1"

	"go.viam.com/posemath/utils"
)

// PoseToProtobuf converts a pose to its protobuf form: translation plus an orientation vector with
// theta in degrees.
func PoseToProtobuf[T Float](p Pose3D[T]) *commonpb.Pose {
	ox, oy, oz, theta := OrientationVector(p.rotation)
	return &commonpb.Pose{
		X:     float64(p.translation[0]),
		Y:     float64(p.translation[1]),
		Z:     float64(p.translation[2]),
		OX:    ox,
		OY:    oy,
		OZ:    oz,
		Theta: utils.RadToDeg(theta),
	}
}

// NewPoseFromProtobuf converts a protobuf pose. A nil message is the identity pose.
func NewPoseFromProtobuf(pb *commonpb.Pose) Pose {
	if pb == nil {
		return NewPose3D[float64]()
	}
	rot := RotationFromOrientationVector(pb.OX, pb.OY, pb.OZ, utils.DegToRad(pb.Theta))
	return NewPose3DFromMatrix(rot, Vec3[float64]{pb.X, pb.Y, pb.Z})
}

type pose3DJSON[T Float] struct {
	Rotation    [9]T `json:"rotation"`
	Translation [3]T `json:"translation"`
}

// MarshalJSON encodes the pose as {"rotation": [9 values, row-major], "translation": [3 values]}.
func (p Pose3D[T]) MarshalJSON() ([]byte, error) {
	rot, trans := p.ArrayValues(false)
	return json.Marshal(pose3DJSON[T]{Rotation: rot, Translation: trans})
}

// UnmarshalJSON decodes a pose written by MarshalJSON.
func (p *Pose3D[T]) UnmarshalJSON(data []byte) error {
	var raw pose3DJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "cannot unmarshal pose")
	}
	p.SetFromArrays(raw.Rotation, raw.Translation)
	return nil
}
