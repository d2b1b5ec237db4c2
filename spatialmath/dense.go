package spatialmath

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Homogeneous returns the pose as a 4x4 homogeneous transform.
func (p Pose3D[T]) Homogeneous() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, float64(p.rotation.At(r, c)))
		}
		m.Set(r, 3, float64(p.translation[r]))
	}
	m.Set(3, 3, 1)
	return m
}

// NewPose3DFromDense builds a pose from a 3x4 pose matrix or a 4x4 homogeneous transform. The bottom row
// of a 4x4 matrix is ignored; use IsRigidTransform to check it.
func NewPose3DFromDense[T Float](m mat.Matrix) (Pose3D[T], error) {
	rows, cols := m.Dims()
	if (rows != 3 && rows != 4) || cols != 4 {
		return Pose3D[T]{}, errors.Errorf("expected a 3x4 or 4x4 matrix but got %dx%d", rows, cols)
	}
	var rot [9]T
	var trans [3]T
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			rot[r*3+c] = T(m.At(r, c))
		}
		trans[r] = T(m.At(r, 3))
	}
	return NewPose3DFromArrays(rot, trans), nil
}

// IsRigidTransform reports whether m is a 4x4 homogeneous transform with an orthonormal rotation
// (RᵀR = I, det = +1) and a bottom row of 0 0 0 1, each to within tol.
func IsRigidTransform(m mat.Matrix, tol float64) bool {
	rows, cols := m.Dims()
	if rows != 4 || cols != 4 {
		return false
	}
	for c := 0; c < 3; c++ {
		if math.Abs(m.At(3, c)) > tol {
			return false
		}
	}
	if math.Abs(m.At(3, 3)-1) > tol {
		return false
	}
	rot := mat.DenseCopyOf(m).Slice(0, 3, 0, 3)
	if math.Abs(mat.Det(rot)-1) > tol {
		return false
	}
	var gram mat.Dense
	gram.Mul(rot.T(), rot)
	return mat.EqualApprox(&gram, eye3, tol)
}

var eye3 = mat.NewDiagDense(3, []float64{1, 1, 1})
