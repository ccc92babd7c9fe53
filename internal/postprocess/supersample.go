package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a premultiplied render to targetSize with CatmullRom
// filtering and returns it unpremultiplied. Filtering premultiplied pixels
// keeps transparent edges free of dark halos.
func Downsample(img *image.RGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return Unpremultiply(img)
	}

	// Downsample with CatmullRom (approximates Lanczos)
	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return Unpremultiply(dst)
}

// Unpremultiply converts a premultiplied image to NRGBA. Pixels with alpha
// of 1 or less keep zero color.
func Unpremultiply(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	result := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			si := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := result.PixOffset(x, y)
			a := float64(img.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(img.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(img.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(img.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = img.Pix[si+3]
		}
	}
	return result
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
