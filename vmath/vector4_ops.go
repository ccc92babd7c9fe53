package vmath

import "math"

func LengthSquared4[V Vector4Type](v V) Scalar {
	x, y, z, w := v.Vec4()
	return x*x + y*y + z*z + w*w
}

func Length4[V Vector4Type](v V) Scalar {
	return math.Sqrt(LengthSquared4(v))
}

func Dot4[A, B Vector4Type](a A, b B) Scalar {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return ax*bx + ay*by + az*bz + aw*bw
}

func Equal4[A, B Vector4Type](a A, b B) bool {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return ax == bx && ay == by && az == bz && aw == bw
}

func ApproxEqual4[A, B Vector4Type](a A, b B) bool {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return ApproxEqual(ax, bx) && ApproxEqual(ay, by) &&
		ApproxEqual(az, bz) && ApproxEqual(aw, bw)
}

// Slice4 returns the components as [x, y, z, w].
func Slice4[V Vector4Type](v V) []Scalar {
	x, y, z, w := v.Vec4()
	return []Scalar{x, y, z, w}
}

// ProjectXYZ builds a T from the first three components of v.
func ProjectXYZ[T Vector3Maker[T], V Vector4Type](v V) T {
	x, y, z, _ := v.Vec4()
	return maker[T]().MakeVec3(x, y, z)
}

func Project4XY[T Vector2Maker[T], V Vector4Type](v V) T {
	x, y, _, _ := v.Vec4()
	return maker[T]().MakeVec2(x, y)
}

func Project4XZ[T Vector2Maker[T], V Vector4Type](v V) T {
	x, _, z, _ := v.Vec4()
	return maker[T]().MakeVec2(x, z)
}

func Project4YZ[T Vector2Maker[T], V Vector4Type](v V) T {
	_, y, z, _ := v.Vec4()
	return maker[T]().MakeVec2(y, z)
}

func Neg4[T Vector4Maker[T]](v T) T {
	x, y, z, w := v.Vec4()
	return v.MakeVec4(-x, -y, -z, -w)
}

// Normalize4 scales v to unit length. Vectors whose squared length is
// approximately 0 or 1 are returned unchanged.
func Normalize4[T Vector4Maker[T]](v T) T {
	ls := LengthSquared4(v)
	if ApproxEqual(ls, 0) || ApproxEqual(ls, 1) {
		return v
	}
	return DivScalar4(v, math.Sqrt(ls))
}

// Lerp4 interpolates linearly from v towards o. t is not clamped.
func Lerp4[T Vector4Maker[T], V Vector4Type](v T, o V, t Scalar) T {
	return Add4(v, Scale4(Sub4R(o, v), t))
}

func Add4[T Vector4Maker[T], V Vector4Type](a T, b V) T {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return a.MakeVec4(ax+bx, ay+by, az+bz, aw+bw)
}

func Add4R[V Vector4Type, T Vector4Maker[T]](a V, b T) T {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return b.MakeVec4(ax+bx, ay+by, az+bz, aw+bw)
}

func Sub4[T Vector4Maker[T], V Vector4Type](a T, b V) T {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return a.MakeVec4(ax-bx, ay-by, az-bz, aw-bw)
}

func Sub4R[V Vector4Type, T Vector4Maker[T]](a V, b T) T {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return b.MakeVec4(ax-bx, ay-by, az-bz, aw-bw)
}

func Mul4[T Vector4Maker[T], V Vector4Type](a T, b V) T {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return a.MakeVec4(ax*bx, ay*by, az*bz, aw*bw)
}

func Mul4R[V Vector4Type, T Vector4Maker[T]](a V, b T) T {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return b.MakeVec4(ax*bx, ay*by, az*bz, aw*bw)
}

func Div4[T Vector4Maker[T], V Vector4Type](a T, b V) T {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return a.MakeVec4(ax/bx, ay/by, az/bz, aw/bw)
}

func Div4R[V Vector4Type, T Vector4Maker[T]](a V, b T) T {
	ax, ay, az, aw := a.Vec4()
	bx, by, bz, bw := b.Vec4()
	return b.MakeVec4(ax/bx, ay/by, az/bz, aw/bw)
}

func Scale4[T Vector4Maker[T]](v T, s Scalar) T {
	x, y, z, w := v.Vec4()
	return v.MakeVec4(x*s, y*s, z*s, w*s)
}

func DivScalar4[T Vector4Maker[T]](v T, s Scalar) T {
	x, y, z, w := v.Vec4()
	return v.MakeVec4(x/s, y/s, z/s, w/s)
}

// Transform4 returns the full row-vector product v * m.
func Transform4[T Vector4Maker[T], M Matrix4Type](v T, m M) T {
	x, y, z, w := v.Vec4()
	c := m.Mat4()
	return v.MakeVec4(
		x*c[0]+y*c[4]+z*c[8]+w*c[12],
		x*c[1]+y*c[5]+z*c[9]+w*c[13],
		x*c[2]+y*c[6]+z*c[10]+w*c[14],
		x*c[3]+y*c[7]+z*c[11]+w*c[15],
	)
}
