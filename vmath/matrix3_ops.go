package vmath

import "math"

// MatDet3 returns the determinant of m.
func MatDet3[M Matrix3Type](m M) Scalar {
	c := m.Mat3()
	m11, m12, m13 := c[0], c[1], c[2]
	m21, m22, m23 := c[3], c[4], c[5]
	m31, m32, m33 := c[6], c[7], c[8]
	return (m11*m22*m33 + m12*m23*m31 + m13*m21*m32) -
		(m13*m22*m31 + m11*m23*m32 + m12*m21*m33)
}

func MatEqual3[A, B Matrix3Type](a A, b B) bool {
	return a.Mat3() == b.Mat3()
}

func MatApproxEqual3[A, B Matrix3Type](a A, b B) bool {
	ca, cb := a.Mat3(), b.Mat3()
	for i := range ca {
		if !ApproxEqual(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

// MatSlice3 returns the nine cells in row-major order.
func MatSlice3[M Matrix3Type](m M) []Scalar {
	c := m.Mat3()
	return c[:]
}

// MatAdjugate3 returns the transposed cofactor matrix of m.
func MatAdjugate3[T Matrix3Maker[T]](m T) T {
	c := m.Mat3()
	m11, m12, m13 := c[0], c[1], c[2]
	m21, m22, m23 := c[3], c[4], c[5]
	m31, m32, m33 := c[6], c[7], c[8]
	return m.MakeMat3([9]Scalar{
		m22*m33 - m23*m32,
		m13*m32 - m12*m33,
		m12*m23 - m13*m22,
		m23*m31 - m21*m33,
		m11*m33 - m13*m31,
		m13*m21 - m11*m23,
		m21*m32 - m22*m31,
		m12*m31 - m11*m32,
		m11*m22 - m12*m21,
	})
}

func MatTranspose3[T Matrix3Maker[T]](m T) T {
	c := m.Mat3()
	return m.MakeMat3([9]Scalar{
		c[0], c[3], c[6],
		c[1], c[4], c[7],
		c[2], c[5], c[8],
	})
}

// MatInverse3 returns adjugate(m) / det(m). A singular m is not detected;
// the result then holds infinities or NaNs.
func MatInverse3[T Matrix3Maker[T]](m T) T {
	return MatMulScalar3(MatAdjugate3(m), 1/MatDet3(m))
}

// MatLerp3 interpolates every cell linearly. It does not decompose the
// matrices, so rotations shrink towards the midpoint.
func MatLerp3[T Matrix3Maker[T], M Matrix3Type](a T, b M, t Scalar) T {
	ca, cb := a.Mat3(), b.Mat3()
	var r [9]Scalar
	for i := range r {
		r[i] = ca[i] + (cb[i]-ca[i])*t
	}
	return a.MakeMat3(r)
}

// MatMul3 returns the transform that applies b and then a.
func MatMul3[T Matrix3Maker[T], M Matrix3Type](a T, b M) T {
	return a.MakeMat3(mul3(a.Mat3(), b.Mat3()))
}

// MatMul3R is MatMul3 with the result typed as the right operand.
func MatMul3R[M Matrix3Type, T Matrix3Maker[T]](a M, b T) T {
	return b.MakeMat3(mul3(a.Mat3(), b.Mat3()))
}

// mul3 computes cell (i, j) as Σk lhs[k][j]·rhs[i][k].
func mul3(lhs, rhs [9]Scalar) [9]Scalar {
	return [9]Scalar{
		lhs[0]*rhs[0] + lhs[3]*rhs[1] + lhs[6]*rhs[2],
		lhs[1]*rhs[0] + lhs[4]*rhs[1] + lhs[7]*rhs[2],
		lhs[2]*rhs[0] + lhs[5]*rhs[1] + lhs[8]*rhs[2],
		lhs[0]*rhs[3] + lhs[3]*rhs[4] + lhs[6]*rhs[5],
		lhs[1]*rhs[3] + lhs[4]*rhs[4] + lhs[7]*rhs[5],
		lhs[2]*rhs[3] + lhs[5]*rhs[4] + lhs[8]*rhs[5],
		lhs[0]*rhs[6] + lhs[3]*rhs[7] + lhs[6]*rhs[8],
		lhs[1]*rhs[6] + lhs[4]*rhs[7] + lhs[7]*rhs[8],
		lhs[2]*rhs[6] + lhs[5]*rhs[7] + lhs[8]*rhs[8],
	}
}

func MatMulScalar3[T Matrix3Maker[T]](m T, s Scalar) T {
	c := m.Mat3()
	for i := range c {
		c[i] *= s
	}
	return m.MakeMat3(c)
}

func ScaleMatrix3[T Matrix3Maker[T], V Vector2Type](s V) T {
	x, y := s.Vec2()
	return maker[T]().MakeMat3([9]Scalar{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	})
}

func TranslationMatrix3[T Matrix3Maker[T], V Vector2Type](t V) T {
	x, y := t.Vec2()
	return maker[T]().MakeMat3([9]Scalar{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	})
}

// RotationMatrix3 rotates points counter-clockwise by radians.
func RotationMatrix3[T Matrix3Maker[T]](radians Scalar) T {
	sn, cs := math.Sincos(radians)
	return maker[T]().MakeMat3([9]Scalar{
		cs, sn, 0,
		-sn, cs, 0,
		0, 0, 1,
	})
}
