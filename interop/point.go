package interop

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"

	"vectormath/vmath"
)

// Point26_6 is a fixed.Point26_6 usable as a vmath 2D vector. MakeVec2
// rounds to the nearest 1/64 and saturates outside the 26.6 range.
type Point26_6 fixed.Point26_6

func (p Point26_6) Vec2() (x, y vmath.Scalar) {
	return fromFixed(p.X), fromFixed(p.Y)
}

func (Point26_6) MakeVec2(x, y vmath.Scalar) Point26_6 {
	return Point26_6{X: toFixed(x), Y: toFixed(y)}
}

func toFixed(v vmath.Scalar) fixed.Int26_6 {
	return fixed.Int26_6(vmath.Clamp(math.Round(v*64), math.MinInt32, math.MaxInt32))
}

func fromFixed(v fixed.Int26_6) vmath.Scalar {
	return vmath.Scalar(v) / 64
}

func ToFixed[V vmath.Vector2Type](v V) fixed.Point26_6 {
	return fixed.Point26_6(Point26_6{}.MakeVec2(v.Vec2()))
}

func FromFixed(p fixed.Point26_6) vmath.Vector2 {
	return vmath.Vector2Of(Point26_6(p))
}

// ToPoint rounds v to the nearest integer pixel.
func ToPoint[V vmath.Vector2Type](v V) image.Point {
	x, y := v.Vec2()
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}

func FromPoint(p image.Point) vmath.Vector2 {
	return vmath.Vector2{X: vmath.Scalar(p.X), Y: vmath.Scalar(p.Y)}
}
