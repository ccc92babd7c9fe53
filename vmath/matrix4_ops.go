package vmath

import (
	"fmt"
	"math"
)

// MatDet4 returns the determinant of m, expanded along the first row
// against the adjugate.
func MatDet4[M Matrix4Type](m M) Scalar {
	c := m.Mat4()
	return detForAdjugate4(c, adjugate4(c))
}

func detForAdjugate4(c, adj [16]Scalar) Scalar {
	return c[0]*adj[0] + c[1]*adj[4] + c[2]*adj[8] + c[3]*adj[12]
}

func MatEqual4[A, B Matrix4Type](a A, b B) bool {
	return a.Mat4() == b.Mat4()
}

func MatApproxEqual4[A, B Matrix4Type](a A, b B) bool {
	ca, cb := a.Mat4(), b.Mat4()
	for i := range ca {
		if !ApproxEqual(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

// MatSlice4 returns the sixteen cells in row-major order.
func MatSlice4[M Matrix4Type](m M) []Scalar {
	c := m.Mat4()
	return c[:]
}

// MatAdjugate4 returns the transposed cofactor matrix of m.
func MatAdjugate4[T Matrix4Maker[T]](m T) T {
	return m.MakeMat4(adjugate4(m.Mat4()))
}

func adjugate4(c [16]Scalar) [16]Scalar {
	m11, m12, m13, m14 := c[0], c[1], c[2], c[3]
	m21, m22, m23, m24 := c[4], c[5], c[6], c[7]
	m31, m32, m33, m34 := c[8], c[9], c[10], c[11]
	m41, m42, m43, m44 := c[12], c[13], c[14], c[15]

	return [16]Scalar{
		(m22*m33*m44 - m22*m34*m43) +
			(-m32*m23*m44 + m32*m24*m43) +
			(m42*m23*m34 - m42*m24*m33),

		(-m12*m33*m44 + m12*m34*m43) +
			(m32*m13*m44 - m32*m14*m43) +
			(-m42*m13*m34 + m42*m14*m33),

		(m12*m23*m44 - m12*m24*m43) +
			(-m22*m13*m44 + m22*m14*m43) +
			(m42*m13*m24 - m42*m14*m23),

		(-m12*m23*m34 + m12*m24*m33) +
			(m22*m13*m34 - m22*m14*m33) +
			(-m32*m13*m24 + m32*m14*m23),

		(-m21*m33*m44 + m21*m34*m43) +
			(m31*m23*m44 - m31*m24*m43) +
			(-m41*m23*m34 + m41*m24*m33),

		(m11*m33*m44 - m11*m34*m43) +
			(-m31*m13*m44 + m31*m14*m43) +
			(m41*m13*m34 - m41*m14*m33),

		(-m11*m23*m44 + m11*m24*m43) +
			(m21*m13*m44 - m21*m14*m43) +
			(-m41*m13*m24 + m41*m14*m23),

		(m11*m23*m34 - m11*m24*m33) +
			(-m21*m13*m34 + m21*m14*m33) +
			(m31*m13*m24 - m31*m14*m23),

		(m21*m32*m44 - m21*m34*m42) +
			(-m31*m22*m44 + m31*m24*m42) +
			(m41*m22*m34 - m41*m24*m32),

		(-m11*m32*m44 + m11*m34*m42) +
			(m31*m12*m44 - m31*m14*m42) +
			(-m41*m12*m34 + m41*m14*m32),

		(m11*m22*m44 - m11*m24*m42) +
			(-m21*m12*m44 + m21*m14*m42) +
			(m41*m12*m24 - m41*m14*m22),

		(-m11*m22*m34 + m11*m24*m32) +
			(m21*m12*m34 - m21*m14*m32) +
			(-m31*m12*m24 + m31*m14*m22),

		(-m21*m32*m43 + m21*m33*m42) +
			(m31*m22*m43 - m31*m23*m42) +
			(-m41*m22*m33 + m41*m23*m32),

		(m11*m32*m43 - m11*m33*m42) +
			(-m31*m12*m43 + m31*m13*m42) +
			(m41*m12*m33 - m41*m13*m32),

		(-m11*m22*m43 + m11*m23*m42) +
			(m21*m12*m43 - m21*m13*m42) +
			(-m41*m12*m23 + m41*m13*m22),

		(m11*m22*m33 - m11*m23*m32) +
			(-m21*m12*m33 + m21*m13*m32) +
			(m31*m12*m23 - m31*m13*m22),
	}
}

func MatTranspose4[T Matrix4Maker[T]](m T) T {
	c := m.Mat4()
	return m.MakeMat4([16]Scalar{
		c[0], c[4], c[8], c[12],
		c[1], c[5], c[9], c[13],
		c[2], c[6], c[10], c[14],
		c[3], c[7], c[11], c[15],
	})
}

// MatInverse4 returns adjugate(m) / det(m), computing the adjugate once.
// A singular m is not detected; the result then holds infinities or NaNs.
func MatInverse4[T Matrix4Maker[T]](m T) T {
	c := m.Mat4()
	adj := adjugate4(c)
	inv := 1 / detForAdjugate4(c, adj)
	for i := range adj {
		adj[i] *= inv
	}
	return m.MakeMat4(adj)
}

// MatMul4 returns the transform that applies b and then a.
func MatMul4[T Matrix4Maker[T], M Matrix4Type](a T, b M) T {
	return a.MakeMat4(mul4(a.Mat4(), b.Mat4()))
}

// MatMul4R is MatMul4 with the result typed as the right operand.
func MatMul4R[M Matrix4Type, T Matrix4Maker[T]](a M, b T) T {
	return b.MakeMat4(mul4(a.Mat4(), b.Mat4()))
}

// mul4 computes cell (i, j) as Σk lhs[k][j]·rhs[i][k], summed in pairs.
func mul4(lhs, rhs [16]Scalar) [16]Scalar {
	var r [16]Scalar
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i*4+j] = (lhs[j]*rhs[i*4] + lhs[4+j]*rhs[i*4+1]) +
				(lhs[8+j]*rhs[i*4+2] + lhs[12+j]*rhs[i*4+3])
		}
	}
	return r
}

func MatMulScalar4[T Matrix4Maker[T]](m T, s Scalar) T {
	c := m.Mat4()
	for i := range c {
		c[i] *= s
	}
	return m.MakeMat4(c)
}

func ScaleMatrix4[T Matrix4Maker[T], V Vector3Type](s V) T {
	x, y, z := s.Vec3()
	return maker[T]().MakeMat4([16]Scalar{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}

func TranslationMatrix4[T Matrix4Maker[T], V Vector3Type](t V) T {
	x, y, z := t.Vec3()
	return maker[T]().MakeMat4([16]Scalar{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	})
}

// AxisAngleMatrix4 rotates by aa.w radians about the unit axis aa.xyz.
func AxisAngleMatrix4[T Matrix4Maker[T], V Vector4Type](aa V) T {
	return QuaternionMatrix4[T](QuatFromAxisAngle[Quaternion](aa))
}

// QuaternionMatrix4 returns the rotation matrix of the unit quaternion q.
func QuaternionMatrix4[T Matrix4Maker[T], Q QuaternionType](q Q) T {
	x, y, z, w := q.Vec4()
	return maker[T]().MakeMat4([16]Scalar{
		1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w), 0,
		2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w), 0,
		2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	})
}

// PerspectiveFovMatrix4 builds a perspective projection from horizontal
// and vertical fields of view, deriving aspect as fovx/fovy.
func PerspectiveFovMatrix4[T Matrix4Maker[T]](fovx, fovy, near, far Scalar) T {
	return PerspectiveMatrix4[T](fovy, fovx/fovy, near, far)
}

// PerspectiveFovxMatrix4 builds a perspective projection from a horizontal
// field of view and an aspect ratio, deriving fovy as fovx/aspect.
func PerspectiveFovxMatrix4[T Matrix4Maker[T]](fovx, aspect, near, far Scalar) T {
	return PerspectiveMatrix4[T](fovx/aspect, aspect, near, far)
}

// PerspectiveMatrix4 builds an OpenGL style perspective projection looking
// down -z. It panics unless far > near, fovy > 0 and aspect > 0.
func PerspectiveMatrix4[T Matrix4Maker[T]](fovy, aspect, near, far Scalar) T {
	dz := far - near
	if !(dz > 0) {
		panic(fmt.Sprintf("vmath: far value must be greater than near (near=%v, far=%v)", near, far))
	}
	if !(fovy > 0) {
		panic(fmt.Sprintf("vmath: field of view must be nonzero and positive (fovy=%v)", fovy))
	}
	if !(aspect > 0) {
		panic(fmt.Sprintf("vmath: aspect ratio must be nonzero and positive (aspect=%v)", aspect))
	}

	sn, cs := math.Sincos(fovy / 2)
	cotangent := cs / sn

	return maker[T]().MakeMat4([16]Scalar{
		cotangent / aspect, 0, 0, 0,
		0, cotangent, 0, 0,
		0, 0, -(far + near) / dz, -1,
		0, 0, -2 * near * far / dz, 0,
	})
}

// OrthographicMatrix4 builds an orthographic projection of the given box.
// Degenerate boxes are not checked and divide by zero.
func OrthographicMatrix4[T Matrix4Maker[T]](top, right, bottom, left, near, far Scalar) T {
	dx := right - left
	dy := top - bottom
	dz := far - near

	return maker[T]().MakeMat4([16]Scalar{
		2 / dx, 0, 0, 0,
		0, 2 / dy, 0, 0,
		0, 0, -2 / dz, 0,
		-(right + left) / dx, -(top + bottom) / dy, -(far + near) / dz, 1,
	})
}
