package scene

import (
	"fmt"

	"vectormath/interop"
)

// Mesh is an indexed polygon mesh. Faces list vertex indices counter-clockwise
// when seen from outside; faces may have any number of corners >= 3.
type Mesh struct {
	Verts []interop.F32Vec3
	Faces [][]int
}

// Primitive returns one of the built-in meshes, all centred on the origin
// with unit half-extent.
func Primitive(name string) (Mesh, error) {
	switch name {
	case "cube":
		return cube(), nil
	case "tetrahedron":
		return tetrahedron(), nil
	case "octahedron":
		return octahedron(), nil
	case "plane":
		return plane(), nil
	default:
		return Mesh{}, fmt.Errorf("scene: unknown mesh %q", name)
	}
}

func cube() Mesh {
	return Mesh{
		Verts: []interop.F32Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		Faces: [][]int{
			{4, 5, 6, 7}, // +z
			{1, 0, 3, 2}, // -z
			{5, 1, 2, 6}, // +x
			{0, 4, 7, 3}, // -x
			{7, 6, 2, 3}, // +y
			{0, 1, 5, 4}, // -y
		},
	}
}

func tetrahedron() Mesh {
	return Mesh{
		Verts: []interop.F32Vec3{
			{1, 1, 1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1},
		},
		Faces: [][]int{
			{0, 1, 3},
			{0, 2, 1},
			{0, 3, 2},
			{1, 2, 3},
		},
	}
}

func octahedron() Mesh {
	return Mesh{
		Verts: []interop.F32Vec3{
			{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
		},
		Faces: [][]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	}
}

func plane() Mesh {
	return Mesh{
		Verts: []interop.F32Vec3{
			{-1, 0, -1}, {-1, 0, 1}, {1, 0, 1}, {1, 0, -1},
		},
		Faces: [][]int{{0, 1, 2, 3}},
	}
}
