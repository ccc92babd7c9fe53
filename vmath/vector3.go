package vmath

import "encoding/json"

// Vector3 is a 3D vector or point.
type Vector3 struct {
	X, Y, Z Scalar
}

var (
	Vector3Zero = Vector3{0, 0, 0}
	Vector3X    = Vector3{1, 0, 0}
	Vector3Y    = Vector3{0, 1, 0}
	Vector3Z    = Vector3{0, 0, 1}
)

// Vector3Of copies any Vector3Type into a Vector3.
func Vector3Of[V Vector3Type](v V) Vector3 {
	x, y, z := v.Vec3()
	return Vector3{x, y, z}
}

// Vector3FromSlice builds a Vector3 from [x, y, z]. It panics if s does not
// hold exactly three elements.
func Vector3FromSlice(s []Scalar) Vector3 {
	mustLen(s, 3)
	return Vector3{s[0], s[1], s[2]}
}

func (v Vector3) Vec3() (x, y, z Scalar)        { return v.X, v.Y, v.Z }
func (Vector3) MakeVec3(x, y, z Scalar) Vector3 { return Vector3{x, y, z} }
func (v Vector3) Slice() []Scalar               { return Slice3(v) }
func (v Vector3) XY() Vector2                   { return ProjectXY[Vector2](v) }
func (v Vector3) XZ() Vector2                   { return ProjectXZ[Vector2](v) }
func (v Vector3) YZ() Vector2                   { return ProjectYZ[Vector2](v) }
func (v Vector3) LengthSquared() Scalar         { return LengthSquared3(v) }
func (v Vector3) Length() Scalar                { return Length3(v) }
func (v Vector3) Dot(o Vector3) Scalar          { return Dot3(v, o) }
func (v Vector3) Cross(o Vector3) Vector3       { return Cross3(v, o) }
func (v Vector3) Neg() Vector3                  { return Neg3(v) }
func (v Vector3) Normalized() Vector3           { return Normalize3(v) }
func (v Vector3) Add(o Vector3) Vector3         { return Add3(v, o) }
func (v Vector3) Sub(o Vector3) Vector3         { return Sub3(v, o) }
func (v Vector3) Mul(o Vector3) Vector3         { return Mul3(v, o) }
func (v Vector3) Div(o Vector3) Vector3         { return Div3(v, o) }
func (v Vector3) Scale(s Scalar) Vector3        { return Scale3(v, s) }
func (v Vector3) DivScalar(s Scalar) Vector3    { return DivScalar3(v, s) }
func (v Vector3) ApproxEqual(o Vector3) bool    { return ApproxEqual3(v, o) }

func (v Vector3) Lerp(o Vector3, t Scalar) Vector3 {
	return Lerp3(v, o, t)
}

// Transform returns v * m.
func (v Vector3) Transform(m Matrix3) Vector3 {
	return Transform3(v, m)
}

// TransformPoint returns v * m with an implicit w of 1.
func (v Vector3) TransformPoint(m Matrix4) Vector3 {
	return TransformPoint3(v, m)
}

// Rotated rotates v by the unit quaternion q.
func (v Vector3) Rotated(q Quaternion) Vector3 {
	return Rotate3(v, q)
}

// W extends v with a fourth component.
func (v Vector3) W(w Scalar) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

func (v Vector3) Hash() uint64 {
	return hashScalars(v.X, v.Y, v.Z)
}

func (v Vector3) String() string {
	return formatScalars(v.X, v.Y, v.Z)
}

func (v Vector3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]Scalar{v.X, v.Y, v.Z})
}

func (v *Vector3) UnmarshalJSON(data []byte) error {
	var c [3]Scalar
	if err := decodeScalars(data, c[:], "Vector3"); err != nil {
		return err
	}
	*v = Vector3{c[0], c[1], c[2]}
	return nil
}
