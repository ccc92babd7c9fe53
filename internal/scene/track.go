package scene

import (
	"sort"

	"vectormath/interop"
	"vectormath/vmath"
)

// Key is a keyframe. Rotations are stored in single precision like most
// exported animation data.
type Key struct {
	Time        float64
	Translation vmath.Vector3
	Rotation    interop.F32Quat
	Scale       vmath.Vector3
}

// Track is a list of keys ordered by Time.
type Track []Key

func (tr Track) Sort() {
	sort.SliceStable(tr, func(i, j int) bool { return tr[i].Time < tr[j].Time })
}

// Sample interpolates the track at t. Times outside the keys clamp to the
// first or last key. Rotation takes the shorter arc.
func (tr Track) Sample(t float64) (translation vmath.Vector3, rotation vmath.Quaternion, scale vmath.Vector3) {
	if len(tr) == 0 {
		return vmath.Vector3Zero, vmath.QuaternionIdentity, vmath.Vector3{X: 1, Y: 1, Z: 1}
	}
	first, last := tr[0], tr[len(tr)-1]
	if t <= first.Time {
		return first.Translation, vmath.QuaternionOf(first.Rotation), first.Scale
	}
	if t >= last.Time {
		return last.Translation, vmath.QuaternionOf(last.Rotation), last.Scale
	}

	i := sort.Search(len(tr), func(i int) bool { return tr[i].Time > t })
	a, b := tr[i-1], tr[i]
	f := (t - a.Time) / (b.Time - a.Time)

	to := b.Rotation
	if vmath.Dot4(a.Rotation, to) < 0 {
		to = vmath.Neg4(to)
	}
	rot := vmath.Slerp(a.Rotation, to, f)

	return a.Translation.Lerp(b.Translation, f), vmath.QuaternionOf(rot).Normalized(), a.Scale.Lerp(b.Scale, f)
}
