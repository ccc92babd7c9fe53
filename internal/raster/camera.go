package raster

import (
	"vectormath/internal/config"
	"vectormath/vmath"
)

// Camera orbits the origin at Distance, looking at it down its local -z.
type Camera struct {
	FovY         float64 // radians
	Near, Far    float64
	Distance     float64
	Orbit        vmath.Quaternion
	Spin         float64 // radians about world y over t in [0, 1]
	Orthographic bool
	OrthoHeight  float64
}

func CameraFromConfig(c config.Camera) Camera {
	return Camera{
		FovY:         vmath.Radians(c.FovY),
		Near:         c.Near,
		Far:          c.Far,
		Distance:     c.Distance,
		Orbit:        vmath.QuaternionFromPitchYawRoll(vmath.Radians(c.Pitch), vmath.Radians(c.Yaw), 0),
		Spin:         vmath.Radians(c.Spin),
		Orthographic: c.Orthographic,
		OrthoHeight:  c.OrthoHeight,
	}
}

// At returns the camera advanced by Spin*t around the world y axis.
func (c Camera) At(t float64) Camera {
	spin := vmath.QuaternionFromAxisAngle(vmath.Vector4{Y: 1, W: c.Spin * t})
	c.Orbit = spin.Mul(c.Orbit)
	return c
}

// World places the camera: push back along z, then orbit.
func (c Camera) World() vmath.Matrix4 {
	return c.Orbit.Matrix().Mul(vmath.Matrix4Translation(vmath.Vector3{Z: c.Distance}))
}

func (c Camera) Position() vmath.Vector3 {
	return vmath.Vector3{Z: c.Distance}.Rotated(c.Orbit)
}

// View maps world space into camera space.
func (c Camera) View() vmath.Matrix4 {
	return c.World().Inverse()
}

func (c Camera) Projection(aspect float64) vmath.Matrix4 {
	if c.Orthographic {
		h := c.OrthoHeight / 2
		w := h * aspect
		return vmath.Matrix4Orthographic(h, w, -h, -w, c.Near, c.Far)
	}
	return vmath.Matrix4Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection applies View and then Projection.
func (c Camera) ViewProjection(aspect float64) vmath.Matrix4 {
	return c.Projection(aspect).Mul(c.View())
}
