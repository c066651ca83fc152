package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// Euler is an XYZ-ordered rotation in radians.
type Euler struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Quat returns Rx * Ry * Rz.
func (e Euler) Quat() mgl64.Quat {
	qx := mgl64.QuatRotate(e.X, AxisX)
	qy := mgl64.QuatRotate(e.Y, AxisY)
	qz := mgl64.QuatRotate(e.Z, AxisZ)
	return qx.Mul(qy).Mul(qz)
}

func (e Euler) Mat4() mgl64.Mat4 { return e.Quat().Mat4() }

// EulerFromQuat decomposes q into XYZ angles. Near gimbal lock Z is pinned to 0.
func EulerFromQuat(q mgl64.Quat) Euler {
	return eulerFromMatrix(q.Normalize().Mat4())
}

func eulerFromMatrix(m mgl64.Mat4) Euler {
	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m22, m23 := m.At(1, 1), m.At(1, 2)
	m32, m33 := m.At(2, 1), m.At(2, 2)

	var e Euler
	e.Y = math.Asin(mgl64.Clamp(m13, -1, 1))
	if math.Abs(m13) < 0.9999999 {
		e.X = math.Atan2(-m23, m33)
		e.Z = math.Atan2(-m12, m11)
	} else {
		e.X = math.Atan2(m32, m22)
	}
	return e
}

// TransformPoint applies m to p with w = 1.
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformDir applies m to d with w = 0.
func TransformDir(m mgl64.Mat4, d mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

// ProjectToPlane casts p away from the light at from onto the plane through
// origin with normal n. ok is false when the ray runs parallel to the plane or
// the plane is not beyond p.
func ProjectToPlane(from, p, origin, n mgl64.Vec3) (mgl64.Vec3, bool) {
	dir := p.Sub(from)
	denom := dir.Dot(n)
	if math.Abs(denom) < 1e-12 {
		return mgl64.Vec3{}, false
	}
	t := origin.Sub(from).Dot(n) / denom
	if t < 1 {
		return mgl64.Vec3{}, false
	}
	return from.Add(dir.Mul(t)), true
}
