package vmath

// Vector2Type is anything that exposes two ordered components.
type Vector2Type interface {
	Vec2() (x, y Scalar)
}

// Vector3Type is anything that exposes three ordered components.
type Vector3Type interface {
	Vec3() (x, y, z Scalar)
}

// Vector4Type is anything that exposes four ordered components.
type Vector4Type interface {
	Vec4() (x, y, z, w Scalar)
}

// QuaternionType is a Vector4Type read as x, y, z (vector part) and w.
type QuaternionType interface {
	Vector4Type
}

// Matrix3Type exposes the nine cells of a 3×3 matrix in row-major order:
// m11 m12 m13 m21 m22 m23 m31 m32 m33.
type Matrix3Type interface {
	Mat3() [9]Scalar
}

// Matrix4Type exposes the sixteen cells of a 4×4 matrix in row-major order.
type Matrix4Type interface {
	Mat4() [16]Scalar
}

// Vector2Maker is a Vector2Type that can build new values of its own type T.
// The receiver's components are ignored by MakeVec2.
type Vector2Maker[T any] interface {
	Vector2Type
	MakeVec2(x, y Scalar) T
}

type Vector3Maker[T any] interface {
	Vector3Type
	MakeVec3(x, y, z Scalar) T
}

type Vector4Maker[T any] interface {
	Vector4Type
	MakeVec4(x, y, z, w Scalar) T
}

// QuaternionMaker is the constructible quaternion tier. It shares the
// Vector4 constructor, so quaternions take part in all Vector4 arithmetic.
type QuaternionMaker[T any] interface {
	Vector4Maker[T]
}

type Matrix3Maker[T any] interface {
	Matrix3Type
	MakeMat3(m [9]Scalar) T
}

type Matrix4Maker[T any] interface {
	Matrix4Type
	MakeMat4(m [16]Scalar) T
}

// maker returns the zero value of T, used as the receiver for Make* calls
// when no operand of type T is at hand.
func maker[T any]() T {
	var zero T
	return zero
}
