package interop

import (
	"golang.org/x/image/math/f64"

	"vectormath/vmath"
)

func ToF64Vec2[V vmath.Vector2Type](v V) f64.Vec2 {
	x, y := v.Vec2()
	return f64.Vec2{x, y}
}

func ToF64Vec3[V vmath.Vector3Type](v V) f64.Vec3 {
	x, y, z := v.Vec3()
	return f64.Vec3{x, y, z}
}

func ToF64Vec4[V vmath.Vector4Type](v V) f64.Vec4 {
	x, y, z, w := v.Vec4()
	return f64.Vec4{x, y, z, w}
}

// ToF64Mat3 copies cells in row-major order.
func ToF64Mat3[M vmath.Matrix3Type](m M) f64.Mat3 {
	return f64.Mat3(m.Mat3())
}

func ToF64Mat4[M vmath.Matrix4Type](m M) f64.Mat4 {
	return f64.Mat4(m.Mat4())
}

func FromF64Vec2(v f64.Vec2) vmath.Vector2 { return vmath.Vector2{X: v[0], Y: v[1]} }
func FromF64Vec3(v f64.Vec3) vmath.Vector3 { return vmath.Vector3{X: v[0], Y: v[1], Z: v[2]} }
func FromF64Vec4(v f64.Vec4) vmath.Vector4 { return vmath.Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]} }
func FromF64Mat3(m f64.Mat3) vmath.Matrix3 { return vmath.Matrix3{}.MakeMat3(m) }
func FromF64Mat4(m f64.Mat4) vmath.Matrix4 { return vmath.Matrix4{}.MakeMat4(m) }

// ToAff3 converts a row-vector 2D transform into the column-vector affine
// form used by golang.org/x/image/draw:
//
//	x' = a[0]*x + a[1]*y + a[2]
//	y' = a[3]*x + a[4]*y + a[5]
//
// The projective column (m13, m23, m33) is dropped.
func ToAff3[M vmath.Matrix3Type](m M) f64.Aff3 {
	c := m.Mat3()
	return f64.Aff3{
		c[0], c[3], c[6],
		c[1], c[4], c[7],
	}
}

// FromAff3 is the inverse of ToAff3, restoring the projective column as
// (0, 0, 1).
func FromAff3(a f64.Aff3) vmath.Matrix3 {
	return vmath.Matrix3{
		M11: a[0], M12: a[3], M13: 0,
		M21: a[1], M22: a[4], M23: 0,
		M31: a[2], M32: a[5], M33: 1,
	}
}

// Aff3 is an f64.Aff3 usable as a vmath 3×3 matrix. Results built through
// MakeMat3 lose any projective column.
type Aff3 f64.Aff3

func (a Aff3) Mat3() [9]vmath.Scalar {
	return FromAff3(f64.Aff3(a)).Mat3()
}

func (Aff3) MakeMat3(c [9]vmath.Scalar) Aff3 {
	return Aff3(ToAff3(vmath.Matrix3{}.MakeMat3(c)))
}
