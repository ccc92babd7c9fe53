package raster

import (
	"image/color"
	"math"

	"vectormath/vmath"
)

// LightConfig holds precomputed lighting parameters. Directions are in view
// space.
type LightConfig struct {
	LightDir  vmath.Vector3
	RimDir    vmath.Vector3
	ViewDir   vmath.Vector3
	HalfMain  vmath.Vector3 // precomputed half-vector for Blinn-Phong
	Ambient   float64
	Hemi      float64
	Direct    float64
	Rim       float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
}

// DefaultLightConfig returns a key light from the upper right, a cool rim
// light from behind and a hemisphere fill.
func DefaultLightConfig() LightConfig {
	lightDir := vmath.Vector3{X: 180, Y: 260, Z: 140}.Normalized()
	rimDir := vmath.Vector3{X: -160, Y: 130, Z: -210}.Normalized()
	viewDir := vmath.Vector3{X: 0, Y: -110, Z: -400}.Normalized()

	halfMain := lightDir.Sub(viewDir).Normalized()

	return LightConfig{
		LightDir:  lightDir,
		RimDir:    rimDir,
		ViewDir:   viewDir,
		HalfMain:  halfMain,
		Ambient:   0.55,
		Hemi:      0.50,
		Direct:    1.50,
		Rim:       0.60,
		SpecInt:   0.45,
		SpecPow:   12.0,
		Exposure:  1.05,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal vmath.Vector3) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-math.Abs(normal.Y))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := math.Max(normal.Dot(lc.HalfMain), 0)
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// ShadeColor lights an sRGB base color (components in [0, 1]) and returns
// the premultiplied result.
func (lc *LightConfig) ShadeColor(base vmath.Vector4Type, shade float64) color.RGBA {
	r, g, b, a := base.Vec4()
	k := shade * lc.Exposure
	encode := func(c float64) float64 {
		linear := math.Pow(vmath.Clamp(c, 0, 1), lc.SRGBGamma)
		return vmath.Clamp(math.Pow(ACESTonemap(linear*k), lc.InvGamma), 0, 1)
	}
	a = vmath.Clamp(a, 0, 1)
	return color.RGBA{
		R: clamp255(encode(r) * a * 255),
		G: clamp255(encode(g) * a * 255),
		B: clamp255(encode(b) * a * 255),
		A: clamp255(a * 255),
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
