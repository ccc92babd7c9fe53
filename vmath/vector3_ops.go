package vmath

import "math"

func LengthSquared3[V Vector3Type](v V) Scalar {
	x, y, z := v.Vec3()
	return x*x + y*y + z*z
}

func Length3[V Vector3Type](v V) Scalar {
	return math.Sqrt(LengthSquared3(v))
}

func Dot3[A, B Vector3Type](a A, b B) Scalar {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return ax*bx + ay*by + az*bz
}

func Equal3[A, B Vector3Type](a A, b B) bool {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return ax == bx && ay == by && az == bz
}

func ApproxEqual3[A, B Vector3Type](a A, b B) bool {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return ApproxEqual(ax, bx) && ApproxEqual(ay, by) && ApproxEqual(az, bz)
}

// Slice3 returns the components as [x, y, z].
func Slice3[V Vector3Type](v V) []Scalar {
	x, y, z := v.Vec3()
	return []Scalar{x, y, z}
}

// ProjectXY builds a T from the x and y components of v.
func ProjectXY[T Vector2Maker[T], V Vector3Type](v V) T {
	x, y, _ := v.Vec3()
	return maker[T]().MakeVec2(x, y)
}

func ProjectXZ[T Vector2Maker[T], V Vector3Type](v V) T {
	x, _, z := v.Vec3()
	return maker[T]().MakeVec2(x, z)
}

func ProjectYZ[T Vector2Maker[T], V Vector3Type](v V) T {
	_, y, z := v.Vec3()
	return maker[T]().MakeVec2(y, z)
}

func Neg3[T Vector3Maker[T]](v T) T {
	x, y, z := v.Vec3()
	return v.MakeVec3(-x, -y, -z)
}

// Cross3 returns the right-handed cross product a × b.
func Cross3[T Vector3Maker[T], V Vector3Type](a T, b V) T {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return a.MakeVec3(
		ay*bz-az*by,
		az*bx-ax*bz,
		ax*by-ay*bx,
	)
}

// Normalize3 scales v to unit length. Vectors whose squared length is
// approximately 0 or 1 are returned unchanged.
func Normalize3[T Vector3Maker[T]](v T) T {
	ls := LengthSquared3(v)
	if ApproxEqual(ls, 0) || ApproxEqual(ls, 1) {
		return v
	}
	return DivScalar3(v, math.Sqrt(ls))
}

// Lerp3 interpolates linearly from v towards o. t is not clamped.
func Lerp3[T Vector3Maker[T], V Vector3Type](v T, o V, t Scalar) T {
	return Add3(v, Scale3(Sub3R(o, v), t))
}

func Add3[T Vector3Maker[T], V Vector3Type](a T, b V) T {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return a.MakeVec3(ax+bx, ay+by, az+bz)
}

func Add3R[V Vector3Type, T Vector3Maker[T]](a V, b T) T {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return b.MakeVec3(ax+bx, ay+by, az+bz)
}

func Sub3[T Vector3Maker[T], V Vector3Type](a T, b V) T {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return a.MakeVec3(ax-bx, ay-by, az-bz)
}

func Sub3R[V Vector3Type, T Vector3Maker[T]](a V, b T) T {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return b.MakeVec3(ax-bx, ay-by, az-bz)
}

func Mul3[T Vector3Maker[T], V Vector3Type](a T, b V) T {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return a.MakeVec3(ax*bx, ay*by, az*bz)
}

func Mul3R[V Vector3Type, T Vector3Maker[T]](a V, b T) T {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return b.MakeVec3(ax*bx, ay*by, az*bz)
}

func Div3[T Vector3Maker[T], V Vector3Type](a T, b V) T {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return a.MakeVec3(ax/bx, ay/by, az/bz)
}

func Div3R[V Vector3Type, T Vector3Maker[T]](a V, b T) T {
	ax, ay, az := a.Vec3()
	bx, by, bz := b.Vec3()
	return b.MakeVec3(ax/bx, ay/by, az/bz)
}

func Scale3[T Vector3Maker[T]](v T, s Scalar) T {
	x, y, z := v.Vec3()
	return v.MakeVec3(x*s, y*s, z*s)
}

func DivScalar3[T Vector3Maker[T]](v T, s Scalar) T {
	x, y, z := v.Vec3()
	return v.MakeVec3(x/s, y/s, z/s)
}

// Transform3 returns the row-vector product v * m.
func Transform3[T Vector3Maker[T], M Matrix3Type](v T, m M) T {
	x, y, z := v.Vec3()
	c := m.Mat3()
	return v.MakeVec3(
		x*c[0]+y*c[3]+z*c[6],
		x*c[1]+y*c[4]+z*c[7],
		x*c[2]+y*c[5]+z*c[8],
	)
}

// TransformPoint3 returns v * m with an implicit w of 1, so the translation
// row is applied. The fourth output component is discarded; there is no
// projective divide.
func TransformPoint3[T Vector3Maker[T], M Matrix4Type](v T, m M) T {
	x, y, z := v.Vec3()
	c := m.Mat4()
	return v.MakeVec3(
		x*c[0]+y*c[4]+z*c[8]+c[12],
		x*c[1]+y*c[5]+z*c[9]+c[13],
		x*c[2]+y*c[6]+z*c[10]+c[14],
	)
}

// Rotate3 rotates v by the unit quaternion q.
func Rotate3[T Vector3Maker[T], Q QuaternionType](v T, q Q) T {
	qx, qy, qz, qw := q.Vec4()
	qv := Vector3{qx, qy, qz}
	uv := Cross3(qv, v)
	uuv := Cross3(qv, uv)
	return Add3(Add3(v, Scale3(uv, 2*qw)), Scale3(uuv, 2))
}
