package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Float is the set of scalar types a pose can be instantiated over. Named float types are not
// accepted because the backing linear algebra is mgl32 for float32 and mgl64 for float64.
type Float interface {
	float32 | float64
}

// Vec3 is a 3x1 column vector.
type Vec3[T Float] [3]T

// Mat3 is a 3x3 matrix stored column-major, the same layout as mgl32.Mat3 and mgl64.Mat3.
//
// m[3*c + r] is the element in the r'th row and c'th column.
type Mat3[T Float] [9]T

// NewVec3 returns the vector (x, y, z).
func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return ops[T]().add(v, o) }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return ops[T]().add(v, ops[T]().scaleVec(o, -1)) }

// Mul returns v scaled by c.
func (v Vec3[T]) Mul(c T) Vec3[T] { return ops[T]().scaleVec(v, c) }

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return ops[T]().dot(v, o) }

// Cross returns v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] { return ops[T]().cross(v, o) }

// Len returns the euclidean norm of v.
func (v Vec3[T]) Len() T { return ops[T]().length(v) }

// Normalize returns v scaled to unit length. A zero vector yields NaN components.
func (v Vec3[T]) Normalize() Vec3[T] { return ops[T]().normalize(v) }

// Ident3 returns the 3x3 identity matrix.
func Ident3[T Float]() Mat3[T] {
	return ops[T]().ident()
}

// NewMat3FromRows builds a matrix from nine values given in row-major order.
func NewMat3FromRows[T Float](rowMajor [9]T) Mat3[T] {
	o := ops[T]()
	return o.fromRows(
		Vec3[T]{rowMajor[0], rowMajor[1], rowMajor[2]},
		Vec3[T]{rowMajor[3], rowMajor[4], rowMajor[5]},
		Vec3[T]{rowMajor[6], rowMajor[7], rowMajor[8]},
	)
}

// NewMat3FromCols builds a matrix whose columns are c0, c1 and c2.
func NewMat3FromCols[T Float](c0, c1, c2 Vec3[T]) Mat3[T] {
	return ops[T]().fromCols(c0, c1, c2)
}

// At returns the element at row, col.
func (m Mat3[T]) At(row, col int) T {
	return m[col*3+row]
}

// Col returns column i.
func (m Mat3[T]) Col(i int) Vec3[T] {
	return Vec3[T]{m[i*3], m[i*3+1], m[i*3+2]}
}

// Row returns row i.
func (m Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{m[i], m[i+3], m[i+6]}
}

// RowMajor flattens m into nine values in row-major order.
func (m Mat3[T]) RowMajor() [9]T {
	var out [9]T
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m.At(r, c)
		}
	}
	return out
}

// Mul3 returns m · o.
func (m Mat3[T]) Mul3(o Mat3[T]) Mat3[T] { return ops[T]().mul3(m, o) }

// Mul3x1 returns m · v.
func (m Mat3[T]) Mul3x1(v Vec3[T]) Vec3[T] { return ops[T]().mul3x1(m, v) }

// Transpose returns mᵀ.
func (m Mat3[T]) Transpose() Mat3[T] { return ops[T]().transpose(m) }

// Det returns the determinant of m.
func (m Mat3[T]) Det() T { return ops[T]().det(m) }

// toMgl64 widens m to a double precision mathgl matrix.
func (m Mat3[T]) toMgl64() mgl64.Mat3 {
	var out mgl64.Mat3
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}

// mat3FromMgl64 narrows a double precision mathgl matrix to T.
func mat3FromMgl64[T Float](m mgl64.Mat3) Mat3[T] {
	var out Mat3[T]
	for i, v := range m {
		out[i] = T(v)
	}
	return out
}

// linalg is the fixed-size matrix and vector arithmetic a pose needs. There is one implementation per
// precision, each a thin shim over the matching mathgl package, so arithmetic on a Pose3D[float32]
// never leaves float32.
type linalg[T Float] interface {
	ident() Mat3[T]
	fromCols(c0, c1, c2 Vec3[T]) Mat3[T]
	fromRows(r0, r1, r2 Vec3[T]) Mat3[T]
	mul3(a, b Mat3[T]) Mat3[T]
	mul3x1(m Mat3[T], v Vec3[T]) Vec3[T]
	transpose(m Mat3[T]) Mat3[T]
	det(m Mat3[T]) T
	rotateX(angle T) Mat3[T]
	rotateY(angle T) Mat3[T]
	rotateZ(angle T) Mat3[T]
	add(a, b Vec3[T]) Vec3[T]
	scaleVec(v Vec3[T], c T) Vec3[T]
	dot(a, b Vec3[T]) T
	cross(a, b Vec3[T]) Vec3[T]
	length(v Vec3[T]) T
	normalize(v Vec3[T]) Vec3[T]
	parallelTolerance() T
}

func ops[T Float]() linalg[T] {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return any(mgl32Ops{}).(linalg[T])
	}
	return any(mgl64Ops{}).(linalg[T])
}

type mgl32Ops struct{}

func (mgl32Ops) ident() Mat3[float32] { return Mat3[float32](mgl32.Ident3()) }

func (mgl32Ops) fromCols(c0, c1, c2 Vec3[float32]) Mat3[float32] {
	return Mat3[float32](mgl32.Mat3FromCols(mgl32.Vec3(c0), mgl32.Vec3(c1), mgl32.Vec3(c2)))
}

func (mgl32Ops) fromRows(r0, r1, r2 Vec3[float32]) Mat3[float32] {
	return Mat3[float32](mgl32.Mat3FromRows(mgl32.Vec3(r0), mgl32.Vec3(r1), mgl32.Vec3(r2)))
}

func (mgl32Ops) mul3(a, b Mat3[float32]) Mat3[float32] {
	return Mat3[float32](mgl32.Mat3(a).Mul3(mgl32.Mat3(b)))
}

func (mgl32Ops) mul3x1(m Mat3[float32], v Vec3[float32]) Vec3[float32] {
	return Vec3[float32](mgl32.Mat3(m).Mul3x1(mgl32.Vec3(v)))
}

func (mgl32Ops) transpose(m Mat3[float32]) Mat3[float32] {
	return Mat3[float32](mgl32.Mat3(m).Transpose())
}

func (mgl32Ops) det(m Mat3[float32]) float32 { return mgl32.Mat3(m).Det() }

func (mgl32Ops) rotateX(angle float32) Mat3[float32] { return Mat3[float32](mgl32.Rotate3DX(angle)) }

func (mgl32Ops) rotateY(angle float32) Mat3[float32] { return Mat3[float32](mgl32.Rotate3DY(angle)) }

func (mgl32Ops) rotateZ(angle float32) Mat3[float32] { return Mat3[float32](mgl32.Rotate3DZ(angle)) }

func (mgl32Ops) add(a, b Vec3[float32]) Vec3[float32] {
	return Vec3[float32](mgl32.Vec3(a).Add(mgl32.Vec3(b)))
}

func (mgl32Ops) scaleVec(v Vec3[float32], c float32) Vec3[float32] {
	return Vec3[float32](mgl32.Vec3(v).Mul(c))
}

func (mgl32Ops) dot(a, b Vec3[float32]) float32 { return mgl32.Vec3(a).Dot(mgl32.Vec3(b)) }

func (mgl32Ops) cross(a, b Vec3[float32]) Vec3[float32] {
	return Vec3[float32](mgl32.Vec3(a).Cross(mgl32.Vec3(b)))
}

func (mgl32Ops) length(v Vec3[float32]) float32 { return mgl32.Vec3(v).Len() }

func (mgl32Ops) normalize(v Vec3[float32]) Vec3[float32] {
	return Vec3[float32](mgl32.Vec3(v).Normalize())
}

// parallelTolerance is about the square root of machine epsilon.
func (mgl32Ops) parallelTolerance() float32 { return 1e-3 }

type mgl64Ops struct{}

func (mgl64Ops) ident() Mat3[float64] { return Mat3[float64](mgl64.Ident3()) }

func (mgl64Ops) fromCols(c0, c1, c2 Vec3[float64]) Mat3[float64] {
	return Mat3[float64](mgl64.Mat3FromCols(mgl64.Vec3(c0), mgl64.Vec3(c1), mgl64.Vec3(c2)))
}

func (mgl64Ops) fromRows(r0, r1, r2 Vec3[float64]) Mat3[float64] {
	return Mat3[float64](mgl64.Mat3FromRows(mgl64.Vec3(r0), mgl64.Vec3(r1), mgl64.Vec3(r2)))
}

func (mgl64Ops) mul3(a, b Mat3[float64]) Mat3[float64] {
	return Mat3[float64](mgl64.Mat3(a).Mul3(mgl64.Mat3(b)))
}

func (mgl64Ops) mul3x1(m Mat3[float64], v Vec3[float64]) Vec3[float64] {
	return Vec3[float64](mgl64.Mat3(m).Mul3x1(mgl64.Vec3(v)))
}

func (mgl64Ops) transpose(m Mat3[float64]) Mat3[float64] {
	return Mat3[float64](mgl64.Mat3(m).Transpose())
}

func (mgl64Ops) det(m Mat3[float64]) float64 { return mgl64.Mat3(m).Det() }

func (mgl64Ops) rotateX(angle float64) Mat3[float64] { return Mat3[float64](mgl64.Rotate3DX(angle)) }

func (mgl64Ops) rotateY(angle float64) Mat3[float64] { return Mat3[float64](mgl64.Rotate3DY(angle)) }

func (mgl64Ops) rotateZ(angle float64) Mat3[float64] { return Mat3[float64](mgl64.Rotate3DZ(angle)) }

func (mgl64Ops) add(a, b Vec3[float64]) Vec3[float64] {
	return Vec3[float64](mgl64.Vec3(a).Add(mgl64.Vec3(b)))
}

func (mgl64Ops) scaleVec(v Vec3[float64], c float64) Vec3[float64] {
	return Vec3[float64](mgl64.Vec3(v).Mul(c))
}

func (mgl64Ops) dot(a, b Vec3[float64]) float64 { return mgl64.Vec3(a).Dot(mgl64.Vec3(b)) }

func (mgl64Ops) cross(a, b Vec3[float64]) Vec3[float64] {
	return Vec3[float64](mgl64.Vec3(a).Cross(mgl64.Vec3(b)))
}

func (mgl64Ops) length(v Vec3[float64]) float64 { return mgl64.Vec3(v).Len() }

func (mgl64Ops) normalize(v Vec3[float64]) Vec3[float64] {
	return Vec3[float64](mgl64.Vec3(v).Normalize())
}

func (mgl64Ops) parallelTolerance() float64 { return 1e-7 }

// abs is math.Abs for either precision.
func abs[T Float](v T) T {
	return T(math.Abs(float64(v)))
}
