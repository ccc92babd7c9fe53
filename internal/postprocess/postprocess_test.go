package postprocess_test

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vectormath/internal/postprocess"
	"vectormath/vmath"
)

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// alphaBounds returns the bounding box of pixels with alpha above 127.
func alphaBounds(img *image.NRGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A > 127 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestDownsampleUnpremultiplies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill(src, src.Bounds(), color.RGBA{R: 128, A: 128})

	got := postprocess.Downsample(src, 2)
	require.Equal(t, image.Rect(0, 0, 2, 2), got.Bounds())
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := got.NRGBAAt(x, y)
			assert.InDelta(t, 255, c.R, 2)
			assert.InDelta(t, 128, c.A, 1)
			assert.Zero(t, c.G)
		}
	}
}

func TestDownsampleSameSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(1, 1, color.RGBA{R: 64, G: 32, A: 128})

	got := postprocess.Downsample(src, 2)
	assert.Equal(t, color.NRGBA{R: 128, G: 64, A: 128}, got.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{}, got.NRGBAAt(0, 0))
}

func TestUnpremultiplyRebasesBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(2, 3, color.RGBA{B: 255, A: 255})

	got := postprocess.Unpremultiply(src.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA))
	require.Equal(t, image.Rect(0, 0, 2, 2), got.Bounds())
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, got.NRGBAAt(0, 1))
}

func TestPrincipalAngle(t *testing.T) {
	var pts []vmath.Vector2
	for i := 0; i < 50; i++ {
		d := float64(i)
		pts = append(pts, vmath.Vector2{X: d, Y: d}, vmath.Vector2{X: d + 1, Y: d})
	}
	angle := postprocess.PrincipalAngle(pts)

	// Defined up to a half turn
	if angle < 0 {
		angle += math.Pi
	}
	assert.InDelta(t, math.Pi/4, angle, 0.02)
}

func TestCropAndCenter(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	fill(src, image.Rect(0, 0, 10, 10), color.NRGBA{G: 255, A: 255})

	got := postprocess.CropAndCenter(src, 64, 0.5)
	require.Equal(t, image.Rect(0, 0, 64, 64), got.Bounds())
	assert.GreaterOrEqual(t, got.NRGBAAt(32, 32).A, uint8(250))
	assert.Equal(t, uint8(0), got.NRGBAAt(2, 2).A)

	box := alphaBounds(got)
	assert.InDelta(t, 32, box.Dx(), 2)
	assert.InDelta(t, 32, box.Dy(), 2)
	assert.InDelta(t, 32, (box.Min.X+box.Max.X)/2, 1)
}

func TestStandardizeTurnsBarUpright(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	fill(src, image.Rect(12, 29, 52, 35), color.NRGBA{R: 200, A: 255})

	got := postprocess.Standardize(src, 64, 90, 0.8)
	box := alphaBounds(got)
	assert.Greater(t, box.Dy(), 3*box.Dx(), "box %v", box)
	assert.InDelta(t, 51, box.Dy(), 3)
}

func TestStandardizeEmpty(t *testing.T) {
	got := postprocess.Standardize(image.NewNRGBA(image.Rect(0, 0, 8, 8)), 16, 45, 0.9)
	assert.Equal(t, image.Rect(0, 0, 16, 16), got.Bounds())
	assert.Equal(t, image.Rectangle{}, alphaBounds(got))
}
