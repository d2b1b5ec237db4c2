package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Inverse returns the pose mapping the reference frame back into the target frame: Rᵀ and -Rᵀ·t.
// p.Compose(p.Inverse()) is the identity up to rounding.
func (p Pose3D[T]) Inverse() Pose3D[T] {
	o := ops[T]()
	rt := o.transpose(p.rotation)
	return Pose3D[T]{
		rotation:    rt,
		translation: o.scaleVec(o.mul3x1(rt, p.translation), -1),
	}
}

// Compose treats p as the pose of frame a in w and other as the pose of frame b in a, and returns the
// pose of b in w. This is the product of the two homogeneous transforms, computed on the split
// rotation and translation. It is not commutative.
func (p Pose3D[T]) Compose(other Pose3D[T]) Pose3D[T] {
	o := ops[T]()
	return Pose3D[T]{
		rotation:    o.mul3(p.rotation, other.rotation),
		translation: o.add(o.mul3x1(p.rotation, other.translation), p.translation),
	}
}

// Mul is an alias for Compose.
func (p Pose3D[T]) Mul(other Pose3D[T]) Pose3D[T] {
	return p.Compose(other)
}

// ComposeInPlace sets p to p.Compose(other) and returns p.
func (p *Pose3D[T]) ComposeInPlace(other Pose3D[T]) *Pose3D[T] {
	*p = p.Compose(other)
	return p
}

// Sub returns Difference(p, other): where p sits when seen from other's frame.
func (p Pose3D[T]) Sub(other Pose3D[T]) Pose3D[T] {
	return Difference(p, other)
}

// Difference takes two poses expressed in a common frame and returns a relative to b, that is
// b.Inverse().Compose(a). Rotation is folded in; this is not a componentwise subtraction.
func Difference[T Float](a, b Pose3D[T]) Pose3D[T] {
	return b.Inverse().Compose(a)
}

// Convert maps a point given in the pose's target frame into its reference frame.
func (p Pose3D[T]) Convert(point Vec3[T]) Vec3[T] {
	o := ops[T]()
	return o.add(o.mul3x1(p.rotation, point), p.translation)
}

// ConvertR3 is Convert for r3.Vector points.
func (p Pose3D[T]) ConvertR3(point r3.Vector) r3.Vector {
	return R3FromVec3(p.Convert(Vec3FromR3[T](point)))
}

// Vec3FromR3 converts an r3.Vector into a Vec3.
func Vec3FromR3[T Float](v r3.Vector) Vec3[T] {
	return Vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}

// R3FromVec3 converts a Vec3 into an r3.Vector.
func R3FromVec3[T Float](v Vec3[T]) r3.Vector {
	return r3.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// PoseAlmostEqual reports whether every rotation and translation component of a and b are within eps.
func PoseAlmostEqual[T Float](a, b Pose3D[T], eps float64) bool {
	for i := range a.rotation {
		if !scalar.EqualWithinAbs(float64(a.rotation[i]), float64(b.rotation[i]), eps) {
			return false
		}
	}
	for i := range a.translation {
		if !scalar.EqualWithinAbs(float64(a.translation[i]), float64(b.translation[i]), eps) {
			return false
		}
	}
	return true
}
