package interop_test

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"vectormath/interop"
	"vectormath/vmath"
)

func TestF64RoundTrip(t *testing.T) {
	v := vmath.Vector3{X: 1, Y: -2, Z: 3.5}
	assert.Equal(t, f64.Vec3{1, -2, 3.5}, interop.ToF64Vec3(v))
	assert.Equal(t, v, interop.FromF64Vec3(interop.ToF64Vec3(v)))
	assert.Equal(t, vmath.Vector2{X: 1, Y: 2}, interop.FromF64Vec2(interop.ToF64Vec2(vmath.Vector2{X: 1, Y: 2})))
	assert.Equal(t, vmath.Vector4W, interop.FromF64Vec4(interop.ToF64Vec4(vmath.Vector4W)))

	m := vmath.Matrix4Translation(vmath.Vector3{X: 7, Y: 8, Z: 9})
	assert.Equal(t, 7.0, interop.ToF64Mat4(m)[12])
	assert.Equal(t, m, interop.FromF64Mat4(interop.ToF64Mat4(m)))
	r := vmath.Matrix3Rotation(0.3)
	assert.Equal(t, r, interop.FromF64Mat3(interop.ToF64Mat3(r)))
}

func TestAff3Layout(t *testing.T) {
	m := vmath.Matrix3{
		M11: 1, M12: 2, M13: 0,
		M21: 3, M22: 4, M23: 0,
		M31: 5, M32: 6, M33: 1,
	}
	a := interop.ToAff3(m)
	assert.Equal(t, f64.Aff3{1, 3, 5, 2, 4, 6}, a)
	assert.Equal(t, m, interop.FromAff3(a))

	// Column-vector evaluation of the Aff3 matches the row-vector product.
	p := vmath.Vector2{X: 7, Y: -1}
	want := p.Transform(m)
	assert.Equal(t, want.X, a[0]*p.X+a[1]*p.Y+a[2])
	assert.Equal(t, want.Y, a[3]*p.X+a[4]*p.Y+a[5])
}

func TestAff3AgreesWithDraw(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	m := vmath.Matrix3Translation(vmath.Vector2{X: 3, Y: 4})
	xdraw.NearestNeighbor.Transform(dst, interop.ToAff3(m), src, src.Bounds(), xdraw.Src, nil)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(3, 4))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(4, 3))
}

func TestAff3Wrapper(t *testing.T) {
	move := vmath.TranslationMatrix3[interop.Aff3](vmath.Vector2{X: 2, Y: 3})
	require.IsType(t, interop.Aff3{}, move)
	assert.Equal(t, interop.Aff3{1, 0, 2, 0, 1, 3}, move)

	rot := vmath.RotationMatrix3[interop.Aff3](vmath.HalfPi)
	both := vmath.MatMul3(move, rot)
	got := vmath.Vector2X.Transform(vmath.Matrix3Of(both))
	assert.True(t, got.ApproxEqual(vmath.Vector2{X: 2, Y: 4}), "got %v", got)

	inv := vmath.MatInverse3(both)
	back := got.Transform(vmath.Matrix3Of(inv))
	assert.True(t, back.ApproxEqual(vmath.Vector2X), "got %v", back)
}

func TestF32Wrappers(t *testing.T) {
	a := interop.F32Vec3{1, 2, 3}
	sum := vmath.Add3(a, vmath.Vector3{X: 0.5})
	require.IsType(t, interop.F32Vec3{}, sum)
	assert.Equal(t, interop.F32Vec3{1.5, 2, 3}, sum)
	assert.Equal(t, interop.F32Vec3{0, 0, 1}, vmath.Cross3(interop.F32Vec3{1, 0, 0}, vmath.Vector3Y))

	c := vmath.Lerp4(interop.F32Vec4{0, 0, 0, 1}, interop.F32Vec4{1, 1, 1, 1}, 0.5)
	assert.Equal(t, interop.F32Vec4{0.5, 0.5, 0.5, 1}, c)

	uv := vmath.Scale2(interop.F32Vec2{0.25, 0.5}, 2)
	assert.Equal(t, interop.F32Vec2{0.5, 1}, uv)

	q := vmath.QuatFromAxisAngle[interop.F32Quat](vmath.Vector4{Z: 1, W: vmath.HalfPi})
	half := vmath.Slerp(interop.F32Quat{0, 0, 0, 1}, q, 0.5)
	require.IsType(t, interop.F32Quat{}, half)
	assert.InDelta(t, vmath.QuarterPi, vmath.AxisAngle[vmath.Vector4](half).W, 1e-6)

	m := vmath.QuaternionMatrix4[interop.F32Mat4](q)
	v := vmath.TransformPoint3(vmath.Vector3X, m)
	assert.True(t, v.ApproxEqual(vmath.Vector3Y), "got %v", v)
}

func TestF32NarrowingRoundTrip(t *testing.T) {
	m := vmath.Matrix4Perspective(1, 1.5, 0.1, 100)
	back := interop.FromF32Mat4(interop.ToF32Mat4(m))
	diff := cmp.Diff(m, back, cmpopts.EquateApprox(1e-6, 1e-7))
	assert.Empty(t, diff)

	v := vmath.Vector3{X: 0.1, Y: 0.2, Z: 0.3}
	assert.Equal(t, f32.Vec3{0.1, 0.2, 0.3}, interop.ToF32Vec3(v))
	assert.True(t, interop.FromF32Vec3(interop.ToF32Vec3(v)).ApproxEqual(v))

	r := vmath.Matrix3Rotation(1)
	assert.True(t, interop.FromF32Mat3(interop.ToF32Mat3(r)).ApproxEqual(r))
}

func TestPoint26_6(t *testing.T) {
	p := interop.ToFixed(vmath.Vector2{X: 1.5, Y: -0.25})
	assert.Equal(t, fixed.Point26_6{X: 96, Y: -16}, p)
	assert.Equal(t, vmath.Vector2{X: 1.5, Y: -0.25}, interop.FromFixed(p))

	// Results snap to 1/64 of a pixel.
	snapped := vmath.Scale2(interop.Point26_6{X: 64, Y: 64}, 1.0/3)
	assert.Equal(t, interop.Point26_6{X: 21, Y: 21}, snapped)

	viewport := vmath.Matrix3Translation(vmath.Vector2{X: 10, Y: 20})
	moved := vmath.Transform2(interop.Point26_6(p), viewport)
	assert.Equal(t, fixed.I(11)+32, moved.X)
	assert.Equal(t, fixed.I(20)-16, moved.Y)
}

func TestPoint26_6Saturates(t *testing.T) {
	p := interop.ToFixed(vmath.Vector2{X: 4e7, Y: -4e7})
	assert.Equal(t, fixed.Point26_6{X: math.MaxInt32, Y: math.MinInt32}, p)

	// A span far past both edges still covers the screen.
	span := fixed.Rectangle26_6{
		Min: interop.ToFixed(vmath.Vector2{X: -4e7, Y: -4e7}),
		Max: interop.ToFixed(vmath.Vector2{X: 4e7, Y: 4e7}),
	}
	screen := fixed.R(0, 0, 64, 64)
	assert.Equal(t, screen, span.Intersect(screen))
}

func TestImagePoint(t *testing.T) {
	assert.Equal(t, image.Pt(2, -1), interop.ToPoint(vmath.Vector2{X: 1.6, Y: -1.4}))
	assert.Equal(t, vmath.Vector2{X: 3, Y: 4}, interop.FromPoint(image.Pt(3, 4)))
}
