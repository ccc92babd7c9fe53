package vmath

import "math"

// Pitch returns the rotation about the x axis, in radians.
func Pitch[Q QuaternionType](q Q) Scalar {
	x, y, z, w := q.Vec4()
	return math.Atan2(2*(y*z+w*x), w*w-x*x-y*y+z*z)
}

// Yaw returns the rotation about the y axis, in radians. The result is
// limited to [-π/2, π/2] by the asin.
func Yaw[Q QuaternionType](q Q) Scalar {
	x, y, z, w := q.Vec4()
	return math.Asin(Clamp(-2*(x*z-w*y), -1, 1))
}

// Roll returns the rotation about the z axis, in radians.
func Roll[Q QuaternionType](q Q) Scalar {
	x, y, z, w := q.Vec4()
	return math.Atan2(2*(x*y+w*z), w*w+x*x-y*y-z*z)
}

func PitchYawRoll[Q QuaternionType](q Q) (pitch, yaw, roll Scalar) {
	return Pitch(q), Yaw(q), Roll(q)
}

// AxisAngle returns the rotation as {axis.x, axis.y, axis.z, angle}.
// Rotations whose vector part has a length of about 0 or 2π yield
// {0, 0, 1, 0}.
func AxisAngle[T Vector4Maker[T], Q QuaternionType](q Q) T {
	x, y, z, w := q.Vec4()
	scale := Length3(Vector3{x, y, z})
	if ApproxEqual(scale, 0) || ApproxEqual(scale, TwoPi) {
		return maker[T]().MakeVec4(0, 0, 1, 0)
	}
	return maker[T]().MakeVec4(x/scale, y/scale, z/scale, math.Acos(Clamp(w, -1, 1))*2)
}

// QuatFromAxisAngle builds the rotation of aa.w radians about the axis
// aa.xyz. The axis is expected to be unit length.
func QuatFromAxisAngle[T QuaternionMaker[T], V Vector4Type](aa V) T {
	x, y, z, angle := aa.Vec4()
	sn, cs := math.Sincos(angle * 0.5)
	return maker[T]().MakeVec4(x*sn, y*sn, z*sn, cs)
}

// QuatFromPitchYawRoll builds the rotation that applies pitch (about x)
// first, then yaw (about y), then roll (about z). It is the inverse of
// PitchYawRoll for yaw within (-π/2, π/2).
func QuatFromPitchYawRoll[T QuaternionMaker[T]](pitch, yaw, roll Scalar) T {
	sx, cx := math.Sincos(pitch * 0.5)
	sy, cy := math.Sincos(yaw * 0.5)
	sz, cz := math.Sincos(roll * 0.5)
	return maker[T]().MakeVec4(
		cz*cy*sx-sz*sy*cx,
		cz*sy*cx+sz*cy*sx,
		sz*cy*cx-cz*sy*sx,
		cz*cy*cx+sz*sy*sx,
	)
}

// QuatFromMatrix extracts the rotation of m, which must be a pure rotation
// in its upper-left 3×3 block. The trace is used when it is safely away from
// zero; otherwise the branch for the largest diagonal element is taken so
// the divisor never approaches zero.
func QuatFromMatrix[T QuaternionMaker[T], M Matrix4Type](m M) T {
	c := m.Mat4()
	m11, m12, m13 := c[0], c[1], c[2]
	m21, m22, m23 := c[4], c[5], c[6]
	m31, m32, m33 := c[8], c[9], c[10]

	mk := maker[T]()
	diagonal := m11 + m22 + m33 + 1
	switch {
	case diagonal > 0 && !ApproxEqual(diagonal, 0):
		scale := math.Sqrt(diagonal) * 2
		return mk.MakeVec4(
			(m23-m32)/scale,
			(m31-m13)/scale,
			(m12-m21)/scale,
			0.25*scale,
		)
	case m11 > math.Max(m22, m33):
		scale := math.Sqrt(1+m11-m22-m33) * 2
		return mk.MakeVec4(
			0.25*scale,
			(m21+m12)/scale,
			(m13+m31)/scale,
			(m23-m32)/scale,
		)
	case m22 > m33:
		scale := math.Sqrt(1+m22-m11-m33) * 2
		return mk.MakeVec4(
			(m21+m12)/scale,
			0.25*scale,
			(m32+m23)/scale,
			(m31-m13)/scale,
		)
	default:
		scale := math.Sqrt(1+m33-m11-m22) * 2
		return mk.MakeVec4(
			(m13+m31)/scale,
			(m32+m23)/scale,
			0.25*scale,
			(m12-m21)/scale,
		)
	}
}

// QuatMul returns the Hamilton product a * b: the rotation b followed by a.
func QuatMul[T QuaternionMaker[T], Q QuaternionType](a T, b Q) T {
	return a.MakeVec4(hamilton(a, b))
}

// QuatMulR is QuatMul with the result typed as the right operand.
func QuatMulR[Q QuaternionType, T QuaternionMaker[T]](a Q, b T) T {
	return b.MakeVec4(hamilton(a, b))
}

func hamilton[A, B QuaternionType](a A, b B) (x, y, z, w Scalar) {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	x = aw*bx + ax*bw + ay*bz - az*by
	y = aw*by + ay*bw + az*bx - ax*bz
	z = aw*bz + az*bw + ax*by - ay*bx
	w = aw*bw - ax*bx - ay*by - az*bz
	return x, y, z, w
}

// QuatConjugate negates the vector part. For a unit quaternion this is the
// inverse rotation.
func QuatConjugate[T QuaternionMaker[T]](q T) T {
	x, y, z, w := q.Vec4()
	return q.MakeVec4(-x, -y, -z, w)
}

// Slerp interpolates spherically from a towards b. Nearly parallel inputs
// fall back to a normalized linear interpolation.
func Slerp[T QuaternionMaker[T], Q QuaternionType](a T, b Q, t Scalar) T {
	dot := Clamp(Dot4(a, b), -1, 1)
	if ApproxEqual(dot, 1) {
		return Normalize4(Lerp4(a, b, t))
	}
	theta := math.Acos(dot) * t
	sn, cs := math.Sincos(theta)
	t1 := Scale4(a, cs)
	t2 := Scale4(Normalize4(Sub4R(b, Scale4(a, dot))), sn)
	return Add4(t1, t2)
}
