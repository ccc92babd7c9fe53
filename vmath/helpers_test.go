package vmath_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	fuzz "github.com/google/gofuzz"

	"vectormath/vmath"
)

const fuzzRounds = 200

// approx compares float fields with a tolerance well below vmath.Epsilon.
var approx = cmpopts.EquateApprox(0, 1e-9)

// newFuzzer fills every float64 with a value in [-10, 10).
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(s *float64, c fuzz.Continue) {
			*s = c.Float64()*20 - 10
		},
	)
}

func randomUnitQuaternion(f *fuzz.Fuzzer) vmath.Quaternion {
	for {
		var q vmath.Quaternion
		f.Fuzz(&q)
		if q.Length() > 0.5 {
			return q.DivScalar(q.Length())
		}
	}
}

func requireApprox(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// hostPoint is a foreign 2D type that plugs into the generic algebra.
type hostPoint struct{ U, V float64 }

func (p hostPoint) Vec2() (x, y vmath.Scalar)          { return p.U, p.V }
func (hostPoint) MakeVec2(x, y vmath.Scalar) hostPoint { return hostPoint{x, y} }

// hostMat3 stores its cells column-major to prove only the contract matters.
type hostMat3 struct{ Cols [9]float64 }

func (m hostMat3) Mat3() [9]vmath.Scalar {
	c := m.Cols
	return [9]vmath.Scalar{c[0], c[3], c[6], c[1], c[4], c[7], c[2], c[5], c[8]}
}

func (hostMat3) MakeMat3(r [9]vmath.Scalar) hostMat3 {
	return hostMat3{[9]float64{r[0], r[3], r[6], r[1], r[4], r[7], r[2], r[5], r[8]}}
}
