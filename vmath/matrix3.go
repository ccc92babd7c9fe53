package vmath

import "encoding/json"

// Matrix3 is a row-major 3×3 matrix. Points are row vectors, so a 2D
// translation lives in M31 and M32.
type Matrix3 struct {
	M11, M12, M13 Scalar
	M21, M22, M23 Scalar
	M31, M32, M33 Scalar
}

var Matrix3Identity = Matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

func Matrix3Of[M Matrix3Type](m M) Matrix3 {
	return Matrix3{}.MakeMat3(m.Mat3())
}

// Matrix3FromSlice builds a Matrix3 from nine row-major cells. It panics if
// s does not hold exactly nine elements.
func Matrix3FromSlice(s []Scalar) Matrix3 {
	mustLen(s, 9)
	return Matrix3{}.MakeMat3([9]Scalar(s))
}

// Matrix3Scale scales x and y independently.
func Matrix3Scale(s Vector2) Matrix3 {
	return ScaleMatrix3[Matrix3](s)
}

func Matrix3Translation(t Vector2) Matrix3 {
	return TranslationMatrix3[Matrix3](t)
}

// Matrix3Rotation rotates counter-clockwise by radians.
func Matrix3Rotation(radians Scalar) Matrix3 {
	return RotationMatrix3[Matrix3](radians)
}

func (m Matrix3) Mat3() [9]Scalar {
	return [9]Scalar{
		m.M11, m.M12, m.M13,
		m.M21, m.M22, m.M23,
		m.M31, m.M32, m.M33,
	}
}

func (Matrix3) MakeMat3(c [9]Scalar) Matrix3 {
	return Matrix3{
		c[0], c[1], c[2],
		c[3], c[4], c[5],
		c[6], c[7], c[8],
	}
}

func (m Matrix3) Slice() []Scalar            { return MatSlice3(m) }
func (m Matrix3) Det() Scalar                { return MatDet3(m) }
func (m Matrix3) Adjugate() Matrix3          { return MatAdjugate3(m) }
func (m Matrix3) Transpose() Matrix3         { return MatTranspose3(m) }
func (m Matrix3) Inverse() Matrix3           { return MatInverse3(m) }
func (m Matrix3) MulScalar(s Scalar) Matrix3 { return MatMulScalar3(m, s) }
func (m Matrix3) ApproxEqual(o Matrix3) bool { return MatApproxEqual3(m, o) }

// Mul returns the transform that applies o and then m.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	return MatMul3(m, o)
}

func (m Matrix3) Lerp(o Matrix3, t Scalar) Matrix3 {
	return MatLerp3(m, o, t)
}

func (m Matrix3) Hash() uint64 {
	c := m.Mat3()
	return hashScalars(c[:]...)
}

func (m Matrix3) String() string {
	c := m.Mat3()
	return formatRows(c[:], 3)
}

func (m Matrix3) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Mat3())
}

func (m *Matrix3) UnmarshalJSON(data []byte) error {
	var c [9]Scalar
	if err := decodeScalars(data, c[:], "Matrix3"); err != nil {
		return err
	}
	*m = m.MakeMat3(c)
	return nil
}
