package vmath

import "encoding/json"

// Vector2 is a 2D vector or point.
type Vector2 struct {
	X, Y Scalar
}

var (
	Vector2Zero = Vector2{0, 0}
	Vector2X    = Vector2{1, 0}
	Vector2Y    = Vector2{0, 1}
)

// Vector2Of copies any Vector2Type into a Vector2.
func Vector2Of[V Vector2Type](v V) Vector2 {
	x, y := v.Vec2()
	return Vector2{x, y}
}

// Vector2FromSlice builds a Vector2 from [x, y]. It panics if s does not
// hold exactly two elements.
func Vector2FromSlice(s []Scalar) Vector2 {
	mustLen(s, 2)
	return Vector2{s[0], s[1]}
}

func (v Vector2) Vec2() (x, y Scalar)            { return v.X, v.Y }
func (Vector2) MakeVec2(x, y Scalar) Vector2     { return Vector2{x, y} }
func (v Vector2) Slice() []Scalar                { return Slice2(v) }
func (v Vector2) LengthSquared() Scalar          { return LengthSquared2(v) }
func (v Vector2) Length() Scalar                 { return Length2(v) }
func (v Vector2) Dot(o Vector2) Scalar           { return Dot2(v, o) }
func (v Vector2) Cross(o Vector2) Scalar         { return Cross2(v, o) }
func (v Vector2) Angle(o Vector2) Scalar         { return Angle2(v, o) }
func (v Vector2) Neg() Vector2                   { return Neg2(v) }
func (v Vector2) Normalized() Vector2            { return Normalize2(v) }
func (v Vector2) Rotated(radians Scalar) Vector2 { return Rotate2(v, radians) }
func (v Vector2) Add(o Vector2) Vector2          { return Add2(v, o) }
func (v Vector2) Sub(o Vector2) Vector2          { return Sub2(v, o) }
func (v Vector2) Mul(o Vector2) Vector2          { return Mul2(v, o) }
func (v Vector2) Div(o Vector2) Vector2          { return Div2(v, o) }
func (v Vector2) Scale(s Scalar) Vector2         { return Scale2(v, s) }
func (v Vector2) DivScalar(s Scalar) Vector2     { return DivScalar2(v, s) }
func (v Vector2) Transform(m Matrix3) Vector2    { return Transform2(v, m) }
func (v Vector2) ApproxEqual(o Vector2) bool     { return ApproxEqual2(v, o) }

func (v Vector2) RotatedAround(radians Scalar, pivot Vector2) Vector2 {
	return RotateAround2(v, radians, pivot)
}

func (v Vector2) Lerp(o Vector2, t Scalar) Vector2 {
	return Lerp2(v, o, t)
}

func (v Vector2) Hash() uint64 {
	return hashScalars(v.X, v.Y)
}

func (v Vector2) String() string {
	return formatScalars(v.X, v.Y)
}

func (v Vector2) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Scalar{v.X, v.Y})
}

func (v *Vector2) UnmarshalJSON(data []byte) error {
	var c [2]Scalar
	if err := decodeScalars(data, c[:], "Vector2"); err != nil {
		return err
	}
	*v = Vector2{c[0], c[1]}
	return nil
}
