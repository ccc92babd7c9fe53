package raster

import (
	"image"
	"image/color"
	"sort"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"vectormath/interop"
	"vectormath/internal/scene"
	"vectormath/vmath"
)

// Options control a single Render call.
type Options struct {
	Size        int
	Supersample int
	Light       LightConfig

	// Background is drawn under the meshes. BackgroundTransform maps texture
	// pixels to output pixels at Size.
	Background          image.Image
	BackgroundTransform vmath.Matrix3
}

// Projector maps view-space points to pixel coordinates.
type Projector struct {
	View       vmath.Matrix4
	Projection vmath.Matrix4
	Viewport   vmath.Matrix3
}

// NewProjector builds the projector for a square image of size pixels.
func NewProjector(cam Camera, size int) Projector {
	half := float64(size) / 2
	viewport := vmath.Matrix3Translation(vmath.Vector2{X: half, Y: half}).
		Mul(vmath.Matrix3Scale(vmath.Vector2{X: half, Y: -half}))
	return Projector{
		View:       cam.View(),
		Projection: cam.Projection(1),
		Viewport:   viewport,
	}
}

// ProjectPoint maps a world-space point to pixels. ok is false when the
// point falls outside the near and far planes.
func (p Projector) ProjectPoint(world vmath.Vector3) (interop.F32Vec2, bool) {
	return p.project(world.TransformPoint(p.View))
}

func (p Projector) project(viewPos vmath.Vector3) (interop.F32Vec2, bool) {
	clip := viewPos.W(1).Transform(p.Projection)
	if clip.W <= 1e-9 {
		return interop.F32Vec2{}, false
	}
	ndc := clip.XYZ().DivScalar(clip.W)
	if ndc.Z < -1 || ndc.Z > 1 {
		return interop.F32Vec2{}, false
	}
	return vmath.Transform2(vmath.ProjectXY[interop.F32Vec2](ndc), p.Viewport), true
}

type face struct {
	pts   []interop.F32Vec2
	depth float64
	color color.RGBA
}

// Render draws nodes with their world matrices into a premultiplied image of
// Size*Supersample pixels. Faces are painted back to front; faces crossing
// the near or far plane are dropped.
func Render(nodes []scene.Node, worlds []vmath.Matrix4, cam Camera, opts Options) *image.RGBA {
	ss := max(opts.Supersample, 1)
	renderSize := opts.Size * ss
	img := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))

	if opts.Background != nil {
		drawBackground(img, opts.Background, opts.BackgroundTransform, float64(ss))
	}

	proj := NewProjector(cam, renderSize)
	screen := fixed.R(0, 0, renderSize, renderSize)

	var faces []face
	for i, n := range nodes {
		modelView := proj.View.Mul(worlds[i])

		// Transform vertices once per node
		viewVerts := make([]vmath.Vector3, len(n.Mesh.Verts))
		for vi, v := range n.Mesh.Verts {
			viewVerts[vi] = vmath.Vector3Of(v).TransformPoint(modelView)
		}

		for _, f := range n.Mesh.Faces {
			if len(f) < 3 {
				continue
			}
			pts := make([]interop.F32Vec2, 0, len(f))
			var depth float64
			visible := true
			for _, vi := range f {
				pt, ok := proj.project(viewVerts[vi])
				if !ok {
					visible = false
					break
				}
				pts = append(pts, pt)
				depth += viewVerts[vi].Z
			}
			if !visible || !overlaps(pts, screen) {
				continue
			}

			e1 := viewVerts[f[1]].Sub(viewVerts[f[0]])
			e2 := viewVerts[f[2]].Sub(viewVerts[f[0]])
			normal := e1.Cross(e2)
			if normal.LengthSquared() == 0 {
				continue
			}
			shade := opts.Light.ComputeShade(normal.Normalized())

			faces = append(faces, face{
				pts:   pts,
				depth: depth / float64(len(f)),
				color: opts.Light.ShadeColor(n.Color, shade),
			})
		}
	}

	// Painter's order: view z grows towards the camera
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].depth < faces[j].depth })

	r := vector.NewRasterizer(renderSize, renderSize)
	for _, f := range faces {
		r.Reset(renderSize, renderSize)
		r.MoveTo(f.pts[0][0], f.pts[0][1])
		for _, p := range f.pts[1:] {
			r.LineTo(p[0], p[1])
		}
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(f.color), image.Point{})
	}
	return img
}

// overlaps reports whether the bounding box of pts, snapped to 26.6 fixed
// point, intersects the screen. Degenerate boxes never overlap.
func overlaps(pts []interop.F32Vec2, screen fixed.Rectangle26_6) bool {
	first := interop.ToFixed(pts[0])
	box := fixed.Rectangle26_6{Min: first, Max: first}
	for _, p := range pts[1:] {
		fp := interop.ToFixed(p)
		box.Min.X = min(box.Min.X, fp.X)
		box.Min.Y = min(box.Min.Y, fp.Y)
		box.Max.X = max(box.Max.X, fp.X)
		box.Max.Y = max(box.Max.Y, fp.Y)
	}
	return !box.Intersect(screen).Empty()
}

func drawBackground(dst *image.RGBA, src image.Image, placement vmath.Matrix3, ss float64) {
	s2d := vmath.MatMul3(vmath.ScaleMatrix3[interop.Aff3](vmath.Vector2{X: ss, Y: ss}), placement)
	xdraw.BiLinear.Transform(dst, f64.Aff3(s2d), src, src.Bounds(), xdraw.Over, nil)
}
