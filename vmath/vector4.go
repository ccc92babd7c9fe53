package vmath

import "encoding/json"

// Vector4 is a 4D vector. W is a free component; it is not forced to 1 for
// points.
type Vector4 struct {
	X, Y, Z, W Scalar
}

var (
	Vector4Zero = Vector4{0, 0, 0, 0}
	Vector4X    = Vector4{1, 0, 0, 0}
	Vector4Y    = Vector4{0, 1, 0, 0}
	Vector4Z    = Vector4{0, 0, 1, 0}
	Vector4W    = Vector4{0, 0, 0, 1}
)

func Vector4Of[V Vector4Type](v V) Vector4 {
	x, y, z, w := v.Vec4()
	return Vector4{x, y, z, w}
}

// Vector4FromSlice builds a Vector4 from [x, y, z, w]. It panics if s does
// not hold exactly four elements.
func Vector4FromSlice(s []Scalar) Vector4 {
	mustLen(s, 4)
	return Vector4{s[0], s[1], s[2], s[3]}
}

func (v Vector4) Vec4() (x, y, z, w Scalar)        { return v.X, v.Y, v.Z, v.W }
func (Vector4) MakeVec4(x, y, z, w Scalar) Vector4 { return Vector4{x, y, z, w} }
func (v Vector4) Slice() []Scalar                  { return Slice4(v) }
func (v Vector4) XYZ() Vector3                     { return ProjectXYZ[Vector3](v) }
func (v Vector4) XY() Vector2                      { return Project4XY[Vector2](v) }
func (v Vector4) XZ() Vector2                      { return Project4XZ[Vector2](v) }
func (v Vector4) YZ() Vector2                      { return Project4YZ[Vector2](v) }
func (v Vector4) LengthSquared() Scalar            { return LengthSquared4(v) }
func (v Vector4) Length() Scalar                   { return Length4(v) }
func (v Vector4) Dot(o Vector4) Scalar             { return Dot4(v, o) }
func (v Vector4) Neg() Vector4                     { return Neg4(v) }
func (v Vector4) Normalized() Vector4              { return Normalize4(v) }
func (v Vector4) Add(o Vector4) Vector4            { return Add4(v, o) }
func (v Vector4) Sub(o Vector4) Vector4            { return Sub4(v, o) }
func (v Vector4) Mul(o Vector4) Vector4            { return Mul4(v, o) }
func (v Vector4) Div(o Vector4) Vector4            { return Div4(v, o) }
func (v Vector4) Scale(s Scalar) Vector4           { return Scale4(v, s) }
func (v Vector4) DivScalar(s Scalar) Vector4       { return DivScalar4(v, s) }
func (v Vector4) ApproxEqual(o Vector4) bool       { return ApproxEqual4(v, o) }

func (v Vector4) Lerp(o Vector4, t Scalar) Vector4 {
	return Lerp4(v, o, t)
}

// Transform returns the full row-vector product v * m.
func (v Vector4) Transform(m Matrix4) Vector4 {
	return Transform4(v, m)
}

func (v Vector4) Hash() uint64 {
	return hashScalars(v.X, v.Y, v.Z, v.W)
}

func (v Vector4) String() string {
	return formatScalars(v.X, v.Y, v.Z, v.W)
}

func (v Vector4) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]Scalar{v.X, v.Y, v.Z, v.W})
}

func (v *Vector4) UnmarshalJSON(data []byte) error {
	var c [4]Scalar
	if err := decodeScalars(data, c[:], "Vector4"); err != nil {
		return err
	}
	*v = Vector4{c[0], c[1], c[2], c[3]}
	return nil
}
