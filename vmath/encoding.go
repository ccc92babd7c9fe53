package vmath

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// mustLen panics when a component slice has the wrong length.
func mustLen(s []Scalar, n int) {
	if len(s) != n {
		panic(fmt.Sprintf("vmath: slice must contain %d elements, contained %d", n, len(s)))
	}
}

// hashScalars hashes the IEEE bits of vals. -0 folds into +0 so values that
// compare equal hash equally.
func hashScalars(vals ...Scalar) uint64 {
	var buf [16 * 8]byte
	for i, v := range vals {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return xxhash.Sum64(buf[:len(vals)*8])
}

func decodeScalars(data []byte, dst []Scalar, kind string) error {
	var vals []Scalar
	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("vmath: decode %s: %w", kind, err)
	}
	if len(vals) != len(dst) {
		return fmt.Errorf("vmath: decode %s: want %d components, got %d", kind, len(dst), len(vals))
	}
	copy(dst, vals)
	return nil
}

func formatScalars(vals ...Scalar) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

func formatRows(cells []Scalar, n int) string {
	var b strings.Builder
	b.WriteByte('[')
	for r := 0; r < n; r++ {
		if r > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatScalars(cells[r*n : r*n+n]...))
	}
	b.WriteByte(']')
	return b.String()
}
