package vmath_test

import (
	"fmt"

	"vectormath/vmath"
)

func ExampleMatrix4_Mul() {
	move := vmath.Matrix4Translation(vmath.Vector3{X: 1})
	grow := vmath.Matrix4Scale(vmath.Vector3{X: 2, Y: 2, Z: 2})

	// grow.Mul(move) moves first, then grows.
	fmt.Println(vmath.Vector3Zero.TransformPoint(grow.Mul(move)))
	fmt.Println(vmath.Vector3Zero.TransformPoint(move.Mul(grow)))
	// Output:
	// (2, 0, 0)
	// (1, 0, 0)
}

func ExampleQuaternion_Slerp() {
	quarter := vmath.QuaternionFromAxisAngle(vmath.Vector4{Z: 1, W: vmath.HalfPi})
	half := vmath.QuaternionIdentity.Slerp(quarter, 0.5)
	fmt.Printf("%.4f\n", vmath.Degrees(half.AxisAngle().W))
	// Output:
	// 45.0000
}

func ExampleAdd2() {
	p := vmath.Add2(vmath.Vector2{X: 1, Y: 2}, vmath.Vector2{X: 3, Y: 4})
	fmt.Println(p, p.LengthSquared())
	// Output:
	// (4, 6) 52
}
