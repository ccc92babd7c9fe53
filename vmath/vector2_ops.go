package vmath

import "math"

func LengthSquared2[V Vector2Type](v V) Scalar {
	x, y := v.Vec2()
	return x*x + y*y
}

func Length2[V Vector2Type](v V) Scalar {
	return math.Sqrt(LengthSquared2(v))
}

func Dot2[A, B Vector2Type](a A, b B) Scalar {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return ax*bx + ay*by
}

// Cross2 returns the z component of the 3D cross product of a and b.
func Cross2[A, B Vector2Type](a A, b B) Scalar {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return ax*by - ay*bx
}

// Angle2 returns the signed angle in radians that rotates a onto b.
func Angle2[A, B Vector2Type](a A, b B) Scalar {
	if Equal2(a, b) {
		return 0
	}
	t1 := Normalize2(Vector2Of(a))
	t2 := Normalize2(Vector2Of(b))
	cross := Cross2(t1, t2)
	dot := Clamp(Dot2(t1, t2), -1, 1)
	return math.Atan2(cross, dot)
}

func Equal2[A, B Vector2Type](a A, b B) bool {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return ax == bx && ay == by
}

func ApproxEqual2[A, B Vector2Type](a A, b B) bool {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return ApproxEqual(ax, bx) && ApproxEqual(ay, by)
}

// Slice2 returns the components as [x, y].
func Slice2[V Vector2Type](v V) []Scalar {
	x, y := v.Vec2()
	return []Scalar{x, y}
}

func Neg2[T Vector2Maker[T]](v T) T {
	x, y := v.Vec2()
	return v.MakeVec2(-x, -y)
}

// Normalize2 scales v to unit length. Vectors whose squared length is
// approximately 0 or 1 are returned unchanged.
func Normalize2[T Vector2Maker[T]](v T) T {
	ls := LengthSquared2(v)
	if ApproxEqual(ls, 0) || ApproxEqual(ls, 1) {
		return v
	}
	return DivScalar2(v, math.Sqrt(ls))
}

// Rotate2 rotates v counter-clockwise by radians around the origin.
func Rotate2[T Vector2Maker[T]](v T, radians Scalar) T {
	x, y := v.Vec2()
	sn, cs := math.Sincos(radians)
	return v.MakeVec2(x*cs-y*sn, x*sn+y*cs)
}

// RotateAround2 rotates v by radians around pivot.
func RotateAround2[T Vector2Maker[T], P Vector2Type](v T, radians Scalar, pivot P) T {
	return Add2(Rotate2(Sub2(v, pivot), radians), pivot)
}

// Lerp2 interpolates linearly from v towards o. t is not clamped.
func Lerp2[T Vector2Maker[T], V Vector2Type](v T, o V, t Scalar) T {
	return Add2(v, Scale2(Sub2R(o, v), t))
}

func Add2[T Vector2Maker[T], V Vector2Type](a T, b V) T {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return a.MakeVec2(ax+bx, ay+by)
}

// Add2R is Add2 with the result typed as the right operand.
func Add2R[V Vector2Type, T Vector2Maker[T]](a V, b T) T {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return b.MakeVec2(ax+bx, ay+by)
}

func Sub2[T Vector2Maker[T], V Vector2Type](a T, b V) T {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return a.MakeVec2(ax-bx, ay-by)
}

func Sub2R[V Vector2Type, T Vector2Maker[T]](a V, b T) T {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return b.MakeVec2(ax-bx, ay-by)
}

// Mul2 multiplies componentwise.
func Mul2[T Vector2Maker[T], V Vector2Type](a T, b V) T {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return a.MakeVec2(ax*bx, ay*by)
}

func Mul2R[V Vector2Type, T Vector2Maker[T]](a V, b T) T {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return b.MakeVec2(ax*bx, ay*by)
}

// Div2 divides componentwise.
func Div2[T Vector2Maker[T], V Vector2Type](a T, b V) T {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return a.MakeVec2(ax/bx, ay/by)
}

func Div2R[V Vector2Type, T Vector2Maker[T]](a V, b T) T {
	ax, ay := a.Vec2()
	bx, by := b.Vec2()
	return b.MakeVec2(ax/bx, ay/by)
}

// Scale2 multiplies every component by s.
func Scale2[T Vector2Maker[T]](v T, s Scalar) T {
	x, y := v.Vec2()
	return v.MakeVec2(x*s, y*s)
}

func DivScalar2[T Vector2Maker[T]](v T, s Scalar) T {
	x, y := v.Vec2()
	return v.MakeVec2(x/s, y/s)
}

// Transform2 returns v * m, treating v as the point (x, y, 1). The third
// output column is dropped.
func Transform2[T Vector2Maker[T], M Matrix3Type](v T, m M) T {
	x, y := v.Vec2()
	c := m.Mat3()
	return v.MakeVec2(
		x*c[0]+y*c[3]+c[6],
		x*c[1]+y*c[4]+c[7],
	)
}
