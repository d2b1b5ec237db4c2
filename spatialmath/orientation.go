package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/posemath/utils"
)

// If the z axis of an orientation vector is this close to a pole, its longitude is taken to be zero.
const poleEpsilon = 1e-12

// EulerAngles returns yaw, pitch and roll in radians such that NewPose3DFromEuler with the same position
// reproduces the rotation. Pitch is in [-π/2, π/2]. At gimbal lock (pitch = ±π/2) roll is reported
// as zero and the whole rotation about the vertical goes to yaw.
// Euler angles are terrible, prefer the rotation matrix where possible.
func (p Pose3D[T]) EulerAngles() (yaw, pitch, roll T) {
	r := p.rotation
	sinPitch := utils.Clamp(-float64(r.At(2, 0)), -1, 1)
	pitch64 := math.Asin(sinPitch)
	if 1-math.Abs(sinPitch) < 1e-9 {
		return T(math.Atan2(-float64(r.At(0, 1)), float64(r.At(1, 1)))), T(pitch64), 0
	}
	yaw64 := math.Atan2(float64(r.At(1, 0)), float64(r.At(0, 0)))
	roll64 := math.Atan2(float64(r.At(2, 1)), float64(r.At(2, 2)))
	return T(yaw64), T(pitch64), T(roll64)
}

// Quaternion returns the rotation as a unit quaternion.
func (p Pose3D[T]) Quaternion() quat.Number {
	q := mgl64.Mat4ToQuat(p.rotation.toMgl64().Mat4())
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// NewPose3DFromQuaternion builds a pose from a position and a rotation quaternion. The quaternion is
// normalized first; a zero quaternion is rejected.
func NewPose3DFromQuaternion[T Float](x, y, z T, q quat.Number) (Pose3D[T], error) {
	n := quat.Abs(q)
	if n < 1e-12 {
		return Pose3D[T]{}, errors.Wrap(ErrInvalidGeometry, "zero quaternion")
	}
	q = quat.Scale(1/n, q)
	rot := mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}.Mat4().Mat3()
	return Pose3D[T]{rotation: mat3FromMgl64[T](rot), translation: Vec3[T]{x, y, z}}, nil
}

// RotationFromOrientationVector returns the rotation whose local z axis points along (ox, oy, oz) and
// which then spins theta radians about that axis. This is the orientation vector convention used on
// the wire: R = Rz(lon)·Ry(lat)·Rz(theta). An all-zero axis means +Z.
func RotationFromOrientationVector(ox, oy, oz, theta float64) Mat3[float64] {
	axis := mgl64.Vec3{ox, oy, oz}
	if axis.Len() == 0 {
		axis = mgl64.Vec3{0, 0, 1}
	}
	axis = axis.Normalize()
	lat, lon := latLon(axis)
	return Mat3[float64](mgl64.Rotate3DZ(lon).Mul3(mgl64.Rotate3DY(lat)).Mul3(mgl64.Rotate3DZ(theta)))
}

// OrientationVector decomposes a rotation into its orientation vector: the direction its local z axis
// points and the spin theta, in radians, about that axis.
func OrientationVector[T Float](rotation Mat3[T]) (ox, oy, oz, theta float64) {
	m := rotation.toMgl64()
	axis := m.Col(2).Normalize()
	lat, lon := latLon(axis)
	spin := mgl64.Rotate3DZ(lon).Mul3(mgl64.Rotate3DY(lat)).Transpose().Mul3(m)
	return axis[0], axis[1], axis[2], math.Atan2(spin.At(1, 0), spin.At(0, 0))
}

func latLon(axis mgl64.Vec3) (lat, lon float64) {
	lat = math.Acos(utils.Clamp(axis[2], -1, 1))
	if math.Hypot(axis[0], axis[1]) > poleEpsilon {
		lon = math.Atan2(axis[1], axis[0])
	}
	return lat, lon
}
