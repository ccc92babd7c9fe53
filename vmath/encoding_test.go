package vmath_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vectormath/vmath"
)

func TestHashFollowsEquality(t *testing.T) {
	negZero := math.Copysign(0, -1)
	a := vmath.Vector2{X: 0, Y: 1}
	b := vmath.Vector2{X: negZero, Y: 1}
	require.True(t, a == b)
	assert.Equal(t, a.Hash(), b.Hash())

	assert.NotEqual(t, vmath.Vector3{X: 1, Y: 2, Z: 3}.Hash(), vmath.Vector3{X: 3, Y: 2, Z: 1}.Hash())
	assert.NotEqual(t, vmath.Vector4X.Hash(), vmath.QuaternionIdentity.Hash())
	assert.Equal(t, vmath.Matrix4Identity.Hash(), vmath.Matrix4Identity.Transpose().Hash())
	assert.Equal(t, vmath.Matrix3Identity.Hash(), vmath.Matrix3Rotation(0).Hash())
}

func TestValuesAreMapKeys(t *testing.T) {
	seen := map[vmath.Vector3]int{}
	seen[vmath.Vector3X]++
	seen[vmath.Vector3{X: 1}]++
	seen[vmath.Vector3Y]++
	assert.Equal(t, 2, seen[vmath.Vector3X])
	assert.Len(t, seen, 2)
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2.5)", vmath.Vector2{X: 1, Y: 2.5}.String())
	assert.Equal(t, "(0, 0, 0, 1)", fmt.Sprint(vmath.QuaternionIdentity))
	assert.Equal(t, "[(1, 0, 0) (0, 1, 0) (0, 0, 1)]", vmath.Matrix3Identity.String())
	assert.Equal(t, "(-1, 0.25, 3)", fmt.Sprintf("%v", vmath.Vector3{X: -1, Y: 0.25, Z: 3}))
}

func TestSlice(t *testing.T) {
	assert.Equal(t, []float64{1, 2}, vmath.Vector2{X: 1, Y: 2}.Slice())
	assert.Equal(t, []float64{1, 2, 3, 4}, vmath.Quaternion{X: 1, Y: 2, Z: 3, W: 4}.Slice())
	m := vmath.Matrix3{M11: 1, M12: 2, M13: 3, M21: 4, M22: 5, M23: 6, M31: 7, M32: 8, M33: 9}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Slice())
	assert.Equal(t, m, vmath.Matrix3FromSlice(m.Slice()))
	assert.Equal(t, vmath.Matrix4Identity, vmath.Matrix4FromSlice(vmath.Matrix4Identity.Slice()))
}

func TestFromSlicePanicsOnWrongLength(t *testing.T) {
	require.PanicsWithValue(t, "vmath: slice must contain 3 elements, contained 2", func() {
		vmath.Vector3FromSlice([]float64{1, 2})
	})
	require.Panics(t, func() { vmath.Vector2FromSlice(nil) })
	require.Panics(t, func() { vmath.Vector4FromSlice(make([]float64, 5)) })
	require.Panics(t, func() { vmath.QuaternionFromSlice([]float64{1}) })
	require.Panics(t, func() { vmath.Matrix3FromSlice(make([]float64, 16)) })
	require.Panics(t, func() { vmath.Matrix4FromSlice(make([]float64, 9)) })
	assert.Equal(t, vmath.Vector4{X: 1, Y: 2, Z: 3, W: 4}, vmath.Vector4FromSlice([]float64{1, 2, 3, 4}))
}

func TestJSON(t *testing.T) {
	type frame struct {
		Position vmath.Vector3    `json:"position"`
		Rotation vmath.Quaternion `json:"rotation"`
		Model    vmath.Matrix4    `json:"model"`
		UV       vmath.Vector2    `json:"uv"`
		Color    vmath.Vector4    `json:"color"`
		Local    vmath.Matrix3    `json:"local"`
	}
	in := frame{
		Position: vmath.Vector3{X: 1, Y: 2, Z: 3},
		Rotation: vmath.QuaternionIdentity,
		Model:    vmath.Matrix4Translation(vmath.Vector3{X: 4, Y: 5, Z: 6}),
		UV:       vmath.Vector2{X: 0.5, Y: 0.25},
		Color:    vmath.Vector4{X: 1, W: 1},
		Local:    vmath.Matrix3Identity,
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"position":[1,2,3]`)
	assert.Contains(t, string(data), `"model":[1,0,0,0,0,1,0,0,0,0,1,0,4,5,6,1]`)

	var out frame
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSONRejectsWrongLength(t *testing.T) {
	var v vmath.Vector3
	err := json.Unmarshal([]byte(`[1, 2]`), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 3 components, got 2")

	var m vmath.Matrix3
	require.Error(t, json.Unmarshal([]byte(`{"m11": 1}`), &m))

	var q vmath.Quaternion
	require.NoError(t, json.Unmarshal([]byte(`[0, 0, 0, 1]`), &q))
	assert.Equal(t, vmath.QuaternionIdentity, q)
}
