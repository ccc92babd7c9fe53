package vmath

import "encoding/json"

// Matrix4 is a row-major 4×4 matrix. Points are row vectors, so the
// translation lives in M41, M42 and M43.
type Matrix4 struct {
	M11, M12, M13, M14 Scalar
	M21, M22, M23, M24 Scalar
	M31, M32, M33, M34 Scalar
	M41, M42, M43, M44 Scalar
}

var Matrix4Identity = Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

func Matrix4Of[M Matrix4Type](m M) Matrix4 {
	return Matrix4{}.MakeMat4(m.Mat4())
}

// Matrix4FromSlice builds a Matrix4 from sixteen row-major cells. It panics
// if s does not hold exactly sixteen elements.
func Matrix4FromSlice(s []Scalar) Matrix4 {
	mustLen(s, 16)
	return Matrix4{}.MakeMat4([16]Scalar(s))
}

func Matrix4Scale(s Vector3) Matrix4 {
	return ScaleMatrix4[Matrix4](s)
}

func Matrix4Translation(t Vector3) Matrix4 {
	return TranslationMatrix4[Matrix4](t)
}

// Matrix4AxisAngle rotates by aa.W radians about the unit axis aa.XYZ().
func Matrix4AxisAngle(aa Vector4) Matrix4 {
	return AxisAngleMatrix4[Matrix4](aa)
}

func Matrix4Quaternion(q Quaternion) Matrix4 {
	return QuaternionMatrix4[Matrix4](q)
}

// Matrix4Perspective panics unless far > near, fovy > 0 and aspect > 0.
func Matrix4Perspective(fovy, aspect, near, far Scalar) Matrix4 {
	return PerspectiveMatrix4[Matrix4](fovy, aspect, near, far)
}

func Matrix4PerspectiveFov(fovx, fovy, near, far Scalar) Matrix4 {
	return PerspectiveFovMatrix4[Matrix4](fovx, fovy, near, far)
}

func Matrix4PerspectiveFovx(fovx, aspect, near, far Scalar) Matrix4 {
	return PerspectiveFovxMatrix4[Matrix4](fovx, aspect, near, far)
}

func Matrix4Orthographic(top, right, bottom, left, near, far Scalar) Matrix4 {
	return OrthographicMatrix4[Matrix4](top, right, bottom, left, near, far)
}

func (m Matrix4) Mat4() [16]Scalar {
	return [16]Scalar{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

func (Matrix4) MakeMat4(c [16]Scalar) Matrix4 {
	return Matrix4{
		c[0], c[1], c[2], c[3],
		c[4], c[5], c[6], c[7],
		c[8], c[9], c[10], c[11],
		c[12], c[13], c[14], c[15],
	}
}

func (m Matrix4) Slice() []Scalar            { return MatSlice4(m) }
func (m Matrix4) Det() Scalar                { return MatDet4(m) }
func (m Matrix4) Adjugate() Matrix4          { return MatAdjugate4(m) }
func (m Matrix4) Transpose() Matrix4         { return MatTranspose4(m) }
func (m Matrix4) Inverse() Matrix4           { return MatInverse4(m) }
func (m Matrix4) MulScalar(s Scalar) Matrix4 { return MatMulScalar4(m, s) }
func (m Matrix4) ApproxEqual(o Matrix4) bool { return MatApproxEqual4(m, o) }

// Mul returns the transform that applies o and then m.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	return MatMul4(m, o)
}

// Quaternion extracts the rotation held in the upper-left 3×3 block.
func (m Matrix4) Quaternion() Quaternion {
	return QuatFromMatrix[Quaternion](m)
}

// Translation returns the fourth row's x, y and z.
func (m Matrix4) Translation() Vector3 {
	return Vector3{m.M41, m.M42, m.M43}
}

func (m Matrix4) Hash() uint64 {
	c := m.Mat4()
	return hashScalars(c[:]...)
}

func (m Matrix4) String() string {
	c := m.Mat4()
	return formatRows(c[:], 4)
}

func (m Matrix4) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Mat4())
}

func (m *Matrix4) UnmarshalJSON(data []byte) error {
	var c [16]Scalar
	if err := decodeScalars(data, c[:], "Matrix4"); err != nil {
		return err
	}
	*m = m.MakeMat4(c)
	return nil
}
