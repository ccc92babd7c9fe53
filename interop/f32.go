package interop

import (
	"golang.org/x/image/math/f32"

	"vectormath/vmath"
)

// F32Vec2 is an f32.Vec2 usable as a vmath 2D vector. Results are narrowed
// to float32.
type F32Vec2 f32.Vec2

func (v F32Vec2) Vec2() (x, y vmath.Scalar) {
	return vmath.Scalar(v[0]), vmath.Scalar(v[1])
}

func (F32Vec2) MakeVec2(x, y vmath.Scalar) F32Vec2 {
	return F32Vec2{float32(x), float32(y)}
}

type F32Vec3 f32.Vec3

func (v F32Vec3) Vec3() (x, y, z vmath.Scalar) {
	return vmath.Scalar(v[0]), vmath.Scalar(v[1]), vmath.Scalar(v[2])
}

func (F32Vec3) MakeVec3(x, y, z vmath.Scalar) F32Vec3 {
	return F32Vec3{float32(x), float32(y), float32(z)}
}

type F32Vec4 f32.Vec4

func (v F32Vec4) Vec4() (x, y, z, w vmath.Scalar) {
	return vmath.Scalar(v[0]), vmath.Scalar(v[1]), vmath.Scalar(v[2]), vmath.Scalar(v[3])
}

func (F32Vec4) MakeVec4(x, y, z, w vmath.Scalar) F32Vec4 {
	return F32Vec4{float32(x), float32(y), float32(z), float32(w)}
}

// F32Quat is a quaternion stored as x, y, z, w in an f32.Vec4.
type F32Quat f32.Vec4

func (q F32Quat) Vec4() (x, y, z, w vmath.Scalar) {
	return vmath.Scalar(q[0]), vmath.Scalar(q[1]), vmath.Scalar(q[2]), vmath.Scalar(q[3])
}

func (F32Quat) MakeVec4(x, y, z, w vmath.Scalar) F32Quat {
	return F32Quat{float32(x), float32(y), float32(z), float32(w)}
}

// F32Mat4 is a row-major f32.Mat4 usable as a vmath 4×4 matrix.
type F32Mat4 f32.Mat4

func (m F32Mat4) Mat4() [16]vmath.Scalar {
	var c [16]vmath.Scalar
	for i, v := range m {
		c[i] = vmath.Scalar(v)
	}
	return c
}

func (F32Mat4) MakeMat4(c [16]vmath.Scalar) F32Mat4 {
	var m F32Mat4
	for i, v := range c {
		m[i] = float32(v)
	}
	return m
}

func ToF32Vec3[V vmath.Vector3Type](v V) f32.Vec3 {
	x, y, z := v.Vec3()
	return f32.Vec3{float32(x), float32(y), float32(z)}
}

func ToF32Mat3[M vmath.Matrix3Type](m M) f32.Mat3 {
	var out f32.Mat3
	for i, v := range m.Mat3() {
		out[i] = float32(v)
	}
	return out
}

func ToF32Mat4[M vmath.Matrix4Type](m M) f32.Mat4 {
	return f32.Mat4(F32Mat4{}.MakeMat4(m.Mat4()))
}

func FromF32Vec3(v f32.Vec3) vmath.Vector3 {
	return vmath.Vector3Of(F32Vec3(v))
}

func FromF32Mat3(m f32.Mat3) vmath.Matrix3 {
	var c [9]vmath.Scalar
	for i, v := range m {
		c[i] = vmath.Scalar(v)
	}
	return vmath.Matrix3{}.MakeMat3(c)
}

func FromF32Mat4(m f32.Mat4) vmath.Matrix4 {
	return vmath.Matrix4Of(F32Mat4(m))
}
