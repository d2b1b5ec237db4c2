// Package spatialmath defines rigid-body poses in 2D and 3D and the algebra to compose, invert and
// difference them.
//
// Pose types are values with no internal locking. Copies are independent; concurrent mutation of a
// single instance must be serialized by the caller.
package spatialmath

// Pose3D is a rigid transform from a target (local) frame into a reference (parent) frame: a point p
// expressed in the target frame is R·p + t in the reference frame.
//
// The rotation is expected to stay orthonormal with det = +1. Only NewPose3DFromXAxisApproxZ enforces
// that; every other constructor trusts its input.
//
// A Pose3D is a plain value and copies cheaply. It is not safe to mutate one instance from multiple
// goroutines without external synchronization.
type Pose3D[T Float] struct {
	rotation    Mat3[T]
	translation Vec3[T]
}

// Pose is the double precision pose used throughout the rest of the module.
type Pose = Pose3D[float64]

// NewPose3D returns the identity pose.
func NewPose3D[T Float]() Pose3D[T] {
	return Pose3D[T]{rotation: Ident3[T]()}
}

// NewPose3DFromPose2D lifts a planar pose: its heading becomes yaw, pitch and roll are zero, and z is zero.
func NewPose3DFromPose2D[T Float](p Pose2D) Pose3D[T] {
	var pose Pose3D[T]
	pose.SetFromPose2D(p)
	return pose
}

// NewPose3DFromArrays builds a pose from a row-major rotation and a translation.
func NewPose3DFromArrays[T Float](rotation [9]T, translation [3]T) Pose3D[T] {
	var pose Pose3D[T]
	pose.SetFromArrays(rotation, translation)
	return pose
}

// NewPose3DFromMatrix builds a pose from an existing rotation matrix and translation vector.
func NewPose3DFromMatrix[T Float](rotation Mat3[T], translation Vec3[T]) Pose3D[T] {
	return Pose3D[T]{rotation: rotation, translation: translation}
}

// NewPose3DFromEuler builds a pose from a position and yaw, pitch and roll in radians.
// The rotation is Rz(yaw)·Ry(pitch)·Rx(roll).
func NewPose3DFromEuler[T Float](x, y, z, yaw, pitch, roll T) Pose3D[T] {
	var pose Pose3D[T]
	pose.SetFromEuler(x, y, z, yaw, pitch, roll)
	return pose
}

// NewPose3DFromAxes builds a pose whose rotation columns are ax, ay and az. The axes are not checked.
func NewPose3DFromAxes[T Float](x, y, z T, ax, ay, az Vec3[T]) Pose3D[T] {
	var pose Pose3D[T]
	pose.SetFromAxes(x, y, z, ax, ay, az)
	return pose
}

// NewPose3DFromXAxisApproxZ builds a pose from an x axis direction and an approximate z direction,
// orthonormalizing them with Gram–Schmidt. The x axis direction is kept exactly; z is bent to be
// perpendicular to it. ErrInvalidGeometry is returned if either axis has zero length or approxZ is
// within the precision's tolerance of (anti)parallel to xAxis. Only direction matters, so short axes
// are accepted.
func NewPose3DFromXAxisApproxZ[T Float](x, y, z T, xAxis, approxZ Vec3[T]) (Pose3D[T], error) {
	o := ops[T]()
	tol := o.parallelTolerance()
	xLen := o.length(xAxis)
	if !(xLen > 0) {
		return Pose3D[T]{}, newDegenerateAxisError("x axis has zero length (%g)", float64(xLen))
	}
	zLen := o.length(approxZ)
	if !(zLen > 0) {
		return Pose3D[T]{}, newDegenerateAxisError("approximate z has zero length (%g)", float64(zLen))
	}
	// sine of the angle between the two axes
	if sin := o.length(o.cross(approxZ, o.normalize(xAxis))) / zLen; !(sin >= tol) {
		return Pose3D[T]{}, newDegenerateAxisError("approximate z is parallel to x axis (sin %g)", float64(sin))
	}
	var pose Pose3D[T]
	pose.SetFromXAxisApproxZ(x, y, z, xAxis, approxZ)
	if !pose.IsOrthonormal(tol) {
		return Pose3D[T]{}, newDegenerateAxisError("axes do not give an orthonormal rotation (tolerance %g)", float64(tol))
	}
	return pose, nil
}

// SetIdentity resets the pose to identity.
func (p *Pose3D[T]) SetIdentity() {
	*p = Pose3D[T]{rotation: Ident3[T]()}
}

// SetFromPose2D overwrites the pose from a planar pose.
func (p *Pose3D[T]) SetFromPose2D(p2 Pose2D) {
	p.SetFromEuler(T(p2.X()), T(p2.Y()), 0, T(p2.Heading()), 0, 0)
}

// SetFromArrays overwrites the pose from a row-major rotation and a translation.
func (p *Pose3D[T]) SetFromArrays(rotation [9]T, translation [3]T) {
	*p = Pose3D[T]{rotation: NewMat3FromRows(rotation), translation: Vec3[T](translation)}
}

// SetFromMatrix overwrites the pose from a rotation matrix and a translation vector.
func (p *Pose3D[T]) SetFromMatrix(rotation Mat3[T], translation Vec3[T]) {
	*p = Pose3D[T]{rotation: rotation, translation: translation}
}

// SetFromEuler overwrites the pose from a position and yaw, pitch, roll in radians.
// The axis order is load bearing: yaw about Z, then pitch about Y, then roll about X, composed
// as Rz(yaw)·Ry(pitch)·Rx(roll).
func (p *Pose3D[T]) SetFromEuler(x, y, z, yaw, pitch, roll T) {
	o := ops[T]()
	rot := o.mul3(o.mul3(o.rotateZ(yaw), o.rotateY(pitch)), o.rotateX(roll))
	*p = Pose3D[T]{rotation: rot, translation: Vec3[T]{x, y, z}}
}

// SetFromAxes overwrites the pose with rotation columns ax, ay and az.
func (p *Pose3D[T]) SetFromAxes(x, y, z T, ax, ay, az Vec3[T]) {
	*p = Pose3D[T]{rotation: ops[T]().fromCols(ax, ay, az), translation: Vec3[T]{x, y, z}}
}

// SetFromXAxisApproxZ overwrites the pose using Gram–Schmidt on xAxis and approxZ without checking
// for degenerate input. If approxZ is parallel to xAxis the rotation is NaN; use
// NewPose3DFromXAxisApproxZ to get an error instead.
func (p *Pose3D[T]) SetFromXAxisApproxZ(x, y, z T, xAxis, approxZ Vec3[T]) {
	o := ops[T]()
	ax := o.normalize(xAxis)
	ay := o.normalize(o.cross(approxZ, ax))
	az := o.normalize(o.cross(ax, ay))
	ay = o.normalize(o.cross(az, ax))
	p.SetFromAxes(x, y, z, ax, ay, az)
}

// X returns the x translation.
func (p Pose3D[T]) X() T {
	return p.translation[0]
}

// Y returns the y translation.
func (p Pose3D[T]) Y() T {
	return p.translation[1]
}

// Z returns the z translation.
func (p Pose3D[T]) Z() T {
	return p.translation[2]
}

// Rotation returns a copy of the rotation matrix.
func (p Pose3D[T]) Rotation() Mat3[T] {
	return p.rotation
}

// Translation returns a copy of the translation vector.
func (p Pose3D[T]) Translation() Vec3[T] {
	return p.translation
}

// SetRotation replaces the rotation, leaving the translation alone.
func (p *Pose3D[T]) SetRotation(rotation Mat3[T]) {
	p.rotation = rotation
}

// SetTranslation replaces the translation, leaving the rotation alone.
func (p *Pose3D[T]) SetTranslation(translation Vec3[T]) {
	p.translation = translation
}

// ArrayValues flattens the pose into a row-major rotation and a translation. With inverse set, the
// values are those of p.Inverse(); otherwise they are those of p itself, so that
// NewPose3DFromArrays(p.ArrayValues(false)) reproduces p.
func (p Pose3D[T]) ArrayValues(inverse bool) (rotation [9]T, translation [3]T) {
	src := p
	if inverse {
		src = p.Inverse()
	}
	return src.rotation.RowMajor(), [3]T(src.translation)
}

// IsOrthonormal reports whether the rotation's columns are unit length and mutually perpendicular,
// with det = +1, to within eps.
func (p Pose3D[T]) IsOrthonormal(eps T) bool {
	o := ops[T]()
	c0, c1, c2 := p.rotation.Col(0), p.rotation.Col(1), p.rotation.Col(2)
	for _, c := range []Vec3[T]{c0, c1, c2} {
		if abs(o.length(c)-1) > eps {
			return false
		}
	}
	if abs(o.dot(c0, c1)) > eps || abs(o.dot(c0, c2)) > eps || abs(o.dot(c1, c2)) > eps {
		return false
	}
	return abs(o.det(p.rotation)-1) <= eps
}
