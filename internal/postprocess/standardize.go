package postprocess

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"

	"vectormath/interop"
	"vectormath/vmath"
)

// CropAndCenter scales the opaque part of img to fillRatio of a size×size
// canvas and centers it.
func CropAndCenter(img *image.NRGBA, size int, fillRatio float64) *image.NRGBA {
	pts := opaquePixels(img)
	if len(pts) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}
	return fit(img, pts, size, fillRatio, vmath.Matrix3Identity)
}

// Standardize rotates img so the principal axis of its opaque pixels lies
// at targetAngleDeg (counter-clockwise from +x, y up), then crops and
// centers like CropAndCenter. Images with fewer than 10 opaque pixels are
// only centered.
func Standardize(img *image.NRGBA, size int, targetAngleDeg, fillRatio float64) *image.NRGBA {
	pts := opaquePixels(img)
	if len(pts) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}
	if len(pts) < 10 {
		return fit(img, pts, size, fillRatio, vmath.Matrix3Identity)
	}

	current := PrincipalAngle(pts)

	// Pixel rows grow downwards, so the target angle flips sign
	rotate := -vmath.Radians(targetAngleDeg) - current

	// The axis has no direction; take the smaller turn
	for rotate > vmath.HalfPi {
		rotate -= vmath.Pi
	}
	for rotate < -vmath.HalfPi {
		rotate += vmath.Pi
	}

	return fit(img, pts, size, fillRatio, vmath.Matrix3Rotation(rotate))
}

// PrincipalAngle returns the direction of largest spread of pts, in radians
// from +x. The result is in (-π, π] and is only defined up to a half turn.
func PrincipalAngle(pts []vmath.Vector2) float64 {
	var mean vmath.Vector2
	for _, p := range pts {
		mean = mean.Add(p)
	}
	mean = mean.DivScalar(float64(len(pts)))

	var covXX, covXY, covYY float64
	for _, p := range pts {
		d := p.Sub(mean)
		covXX += d.X * d.X
		covXY += d.X * d.Y
		covYY += d.Y * d.Y
	}
	n := float64(len(pts))
	cov := mat.NewSymDense(2, []float64{covXX / n, covXY / n, covXY / n, covYY / n})

	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return 0
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues are ascending; the last column is the major axis
	return math.Atan2(vecs.At(1, 1), vecs.At(0, 1))
}

// opaquePixels returns the centers of every pixel with nonzero alpha.
func opaquePixels(img *image.NRGBA) []vmath.Vector2 {
	b := img.Bounds()
	var pts []vmath.Vector2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] > 0 {
				pts = append(pts, vmath.Vector2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			}
		}
	}
	return pts
}

// fit draws img through rot, scaled so the rotated bounds of pts fill
// fillRatio of the canvas, centered.
func fit(img *image.NRGBA, pts []vmath.Vector2, size int, fillRatio float64, rot vmath.Matrix3) *image.NRGBA {
	lo := vmath.Vector2{X: math.Inf(1), Y: math.Inf(1)}
	hi := vmath.Vector2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range pts {
		q := p.Transform(rot)
		lo = vmath.Vector2{X: math.Min(lo.X, q.X), Y: math.Min(lo.Y, q.Y)}
		hi = vmath.Vector2{X: math.Max(hi.X, q.X), Y: math.Max(hi.Y, q.Y)}
	}

	// Centers span one pixel less than the footprint
	extent := hi.Sub(lo).Add(vmath.Vector2{X: 1, Y: 1})
	k := float64(size) * fillRatio / math.Max(extent.X, extent.Y)
	centre := lo.Add(hi).Scale(0.5)
	half := float64(size) / 2

	m := vmath.Matrix3Translation(vmath.Vector2{X: half, Y: half}).
		Mul(vmath.Matrix3Scale(vmath.Vector2{X: k, Y: k})).
		Mul(vmath.Matrix3Translation(centre.Neg())).
		Mul(rot)

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Transform(dst, interop.ToAff3(m), img, img.Bounds(), draw.Over, nil)
	return dst
}
