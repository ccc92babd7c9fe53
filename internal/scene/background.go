package scene

import (
	"sort"

	"vectormath/internal/config"
	"vectormath/vmath"
)

// BackgroundKey holds the texture-to-image transform at Time.
type BackgroundKey struct {
	Time      float64
	Transform vmath.Matrix3
}

// BackgroundTrack animates the 2D placement of the background texture.
type BackgroundTrack []BackgroundKey

// Sample blends the two surrounding keys cell by cell. An empty track is the
// identity.
func (bt BackgroundTrack) Sample(t float64) vmath.Matrix3 {
	if len(bt) == 0 {
		return vmath.Matrix3Identity
	}
	if t <= bt[0].Time {
		return bt[0].Transform
	}
	if t >= bt[len(bt)-1].Time {
		return bt[len(bt)-1].Transform
	}
	i := sort.Search(len(bt), func(i int) bool { return bt[i].Time > t })
	a, b := bt[i-1], bt[i]
	return a.Transform.Lerp(b.Transform, (t-a.Time)/(b.Time-a.Time))
}

// Placement scales, then rotates by degrees, then offsets.
func Placement(offset vmath.Vector2, degrees float64, scale vmath.Vector2) vmath.Matrix3 {
	s := vmath.Matrix3Scale(scale)
	r := vmath.Matrix3Rotation(vmath.Radians(degrees))
	t := vmath.Matrix3Translation(offset)
	return t.Mul(r.Mul(s))
}

func BackgroundFromConfig(keys []config.BackgroundKey) BackgroundTrack {
	bt := make(BackgroundTrack, len(keys))
	for i, k := range keys {
		bt[i] = BackgroundKey{Time: k.Time, Transform: Placement(k.Offset, k.Rotation, k.Scale)}
	}
	sort.SliceStable(bt, func(i, j int) bool { return bt[i].Time < bt[j].Time })
	return bt
}
