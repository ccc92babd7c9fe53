package vmath

import "encoding/json"

// Quaternion represents a rotation when it has unit length. Non-unit values
// are legal intermediates, e.g. before Normalized.
type Quaternion struct {
	X, Y, Z, W Scalar
}

var (
	QuaternionZero     = Quaternion{0, 0, 0, 0}
	QuaternionIdentity = Quaternion{0, 0, 0, 1}
)

func QuaternionOf[Q QuaternionType](q Q) Quaternion {
	x, y, z, w := q.Vec4()
	return Quaternion{x, y, z, w}
}

// QuaternionFromSlice builds a Quaternion from [x, y, z, w]. It panics if s
// does not hold exactly four elements.
func QuaternionFromSlice(s []Scalar) Quaternion {
	mustLen(s, 4)
	return Quaternion{s[0], s[1], s[2], s[3]}
}

// QuaternionFromAxisAngle rotates by aa.W radians about the unit axis aa.XYZ().
func QuaternionFromAxisAngle(aa Vector4) Quaternion {
	return QuatFromAxisAngle[Quaternion](aa)
}

func QuaternionFromPitchYawRoll(pitch, yaw, roll Scalar) Quaternion {
	return QuatFromPitchYawRoll[Quaternion](pitch, yaw, roll)
}

// QuaternionFromMatrix extracts the rotation held in m.
func QuaternionFromMatrix(m Matrix4) Quaternion {
	return QuatFromMatrix[Quaternion](m)
}

func (q Quaternion) Vec4() (x, y, z, w Scalar)           { return q.X, q.Y, q.Z, q.W }
func (Quaternion) MakeVec4(x, y, z, w Scalar) Quaternion { return Quaternion{x, y, z, w} }
func (q Quaternion) Slice() []Scalar                     { return Slice4(q) }
func (q Quaternion) XYZ() Vector3                        { return ProjectXYZ[Vector3](q) }
func (q Quaternion) Pitch() Scalar                       { return Pitch(q) }
func (q Quaternion) Yaw() Scalar                         { return Yaw(q) }
func (q Quaternion) Roll() Scalar                        { return Roll(q) }
func (q Quaternion) LengthSquared() Scalar               { return LengthSquared4(q) }
func (q Quaternion) Length() Scalar                      { return Length4(q) }
func (q Quaternion) Dot(o Quaternion) Scalar             { return Dot4(q, o) }
func (q Quaternion) Neg() Quaternion                     { return Neg4(q) }
func (q Quaternion) Normalized() Quaternion              { return Normalize4(q) }
func (q Quaternion) Conjugate() Quaternion               { return QuatConjugate(q) }
func (q Quaternion) Add(o Quaternion) Quaternion         { return Add4(q, o) }
func (q Quaternion) Sub(o Quaternion) Quaternion         { return Sub4(q, o) }
func (q Quaternion) Scale(s Scalar) Quaternion           { return Scale4(q, s) }
func (q Quaternion) DivScalar(s Scalar) Quaternion       { return DivScalar4(q, s) }
func (q Quaternion) ApproxEqual(o Quaternion) bool       { return ApproxEqual4(q, o) }

func (q Quaternion) PitchYawRoll() (pitch, yaw, roll Scalar) {
	return PitchYawRoll(q)
}

// AxisAngle returns {axis.X, axis.Y, axis.Z, angle}.
func (q Quaternion) AxisAngle() Vector4 {
	return AxisAngle[Vector4](q)
}

// Mul returns the Hamilton product q * o, the rotation o followed by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return QuatMul(q, o)
}

// Slerp interpolates spherically from q towards o.
func (q Quaternion) Slerp(o Quaternion, t Scalar) Quaternion {
	return Slerp(q, o, t)
}

// Matrix returns the rotation matrix of q.
func (q Quaternion) Matrix() Matrix4 {
	return QuaternionMatrix4[Matrix4](q)
}

func (q Quaternion) Hash() uint64 {
	return hashScalars(q.X, q.Y, q.Z, q.W)
}

func (q Quaternion) String() string {
	return formatScalars(q.X, q.Y, q.Z, q.W)
}

func (q Quaternion) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]Scalar{q.X, q.Y, q.Z, q.W})
}

func (q *Quaternion) UnmarshalJSON(data []byte) error {
	var c [4]Scalar
	if err := decodeScalars(data, c[:], "Quaternion"); err != nil {
		return err
	}
	*q = Quaternion{c[0], c[1], c[2], c[3]}
	return nil
}
