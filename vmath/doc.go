// Package vmath is a fixed-size linear algebra library for 2D and 3D
// graphics: vectors, quaternions and 3×3/4×4 matrices over float64.
//
// Every operation is written once as a generic free function against a
// capability contract (Vector2Type, Matrix4Type, ...). The contracts come in
// two tiers: a read-only tier exposing components, and a constructible tier
// (Vector2Maker[T], ...) that can build a new T from raw components. Results
// are built with the maker of the constructible operand, so a host type that
// implements Vector2Maker stays in its own type through the algebra:
//
//	p := vmath.Add2(hostPoint, vmath.Vector2{X: 1})  // p has the host type
//
// The concrete types (Vector2, Vector3, Vector4, Quaternion, Matrix3,
// Matrix4) are comparable value structs whose methods delegate to the
// generic functions.
//
// Matrices use the row-vector convention: a vector is transformed as
// v' = v * M, translation lives in the last row, and MatMul(a, b) yields the
// transform that applies b first and then a.
package vmath
