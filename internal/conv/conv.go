// Package conv provides conversion helpers shared by the matchers.
//
// The integer helpers bounds-check narrowing conversions and panic on
// overflow, since an out-of-range value indicates a programming error (for
// example more needles than the uint32 identifiers of a needle group can
// address).
package conv

import (
	"math"
	"unsafe"
)

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// StringBytes returns a read-only byte view of s without copying.
// The result must not be modified.
func StringBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// StringsBytes returns read-only byte views of each element of ss.
func StringsBytes(ss []string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = StringBytes(s)
	}
	return out
}
