package scene

import (
	"fmt"

	"vectormath/interop"
	"vectormath/internal/config"
	"vectormath/vmath"
)

// Node places a mesh in the hierarchy. Parent is the index of an earlier
// node, or -1 for a root.
type Node struct {
	Name   string
	Parent int
	Mesh   Mesh
	Color  interop.F32Vec4

	Translation vmath.Vector3
	Rotation    vmath.Quaternion
	Scale       vmath.Vector3
	Track       Track
}

// Local returns the node transform: scale, then rotate, then translate.
func (n Node) Local() vmath.Matrix4 {
	s := vmath.Matrix4Scale(n.Scale)
	r := vmath.Matrix4Quaternion(n.Rotation)
	t := vmath.Matrix4Translation(n.Translation)
	return t.Mul(r.Mul(s))
}

// Posed returns a copy of n with its track sampled at t. Nodes without keys
// are returned unchanged.
func (n Node) Posed(t float64) Node {
	if len(n.Track) == 0 {
		return n
	}
	n.Translation, n.Rotation, n.Scale = n.Track.Sample(t)
	return n
}

// BuildWorldMatrices computes the world transform for each node.
// Returns a slice of 4×4 matrices indexed by node index.
func BuildWorldMatrices(nodes []Node) []vmath.Matrix4 {
	worlds := make([]vmath.Matrix4, len(nodes))
	for i, n := range nodes {
		local := n.Local()

		// Chain with parent
		if n.Parent >= 0 && n.Parent < i {
			worlds[i] = worlds[n.Parent].Mul(local)
		} else {
			worlds[i] = local
		}
	}
	return worlds
}

// Pose samples every node's track at t.
func Pose(nodes []Node, t float64) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Posed(t)
	}
	return out
}

// EulerDegrees converts pitch, yaw and roll in degrees to a quaternion.
func EulerDegrees(r vmath.Vector3) vmath.Quaternion {
	return vmath.QuaternionFromPitchYawRoll(vmath.Radians(r.X), vmath.Radians(r.Y), vmath.Radians(r.Z))
}

// FromConfig builds the node list. cfg must have passed Validate.
func FromConfig(nodes []config.Node) ([]Node, error) {
	index := make(map[string]int, len(nodes))
	out := make([]Node, 0, len(nodes))
	for i, cn := range nodes {
		mesh, err := Primitive(cn.Mesh)
		if err != nil {
			return nil, fmt.Errorf("scene: node %q: %w", cn.Name, err)
		}

		parent := -1
		if cn.Parent != "" {
			p, ok := index[cn.Parent]
			if !ok {
				return nil, fmt.Errorf("scene: node %q: unknown parent %q", cn.Name, cn.Parent)
			}
			parent = p
		}

		track := make(Track, len(cn.Keys))
		for k, key := range cn.Keys {
			track[k] = Key{
				Time:        key.Time,
				Translation: key.Translation,
				Rotation:    interop.F32Quat{}.MakeVec4(EulerDegrees(key.Rotation).Vec4()),
				Scale:       key.Scale,
			}
		}
		track.Sort()

		out = append(out, Node{
			Name:        cn.Name,
			Parent:      parent,
			Mesh:        mesh,
			Color:       interop.F32Vec4{}.MakeVec4(cn.Color.Vec4()),
			Translation: cn.Translation,
			Rotation:    EulerDegrees(cn.Rotation),
			Scale:       cn.Scale,
			Track:       track,
		})
		index[cn.Name] = i
	}
	return out, nil
}
