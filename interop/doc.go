// Package interop connects vmath to the geometry types of golang.org/x/image
// and the image package.
//
// There are two kinds of bridge. The To*/From* functions copy fields between
// vmath values and the host types. The wrapper types (F32Vec3, Aff3,
// Point26_6, ...) implement the vmath maker contracts directly, so the
// generic vmath functions return results in the host representation:
//
//	p := vmath.Transform2(interop.Point26_6{}, viewport) // still a Point26_6
package interop
