package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack. It is equivalent to
// bytes.IndexByte.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect a zero byte with (v - lo8) & ^v & hi8
//  4. The trailing zero count locates the first match in the chunk
//
// Inputs shorter than a word, and the tail after the last full word, are
// scanned byte by byte.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	idx := 0
	if n >= 8 {
		mask := uint64(needle) * lo8
		for ; idx+8 <= n; idx += 8 {
			xor := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask
			if z := (xor - lo8) & ^xor & hi8; z != 0 {
				return idx + bits.TrailingZeros64(z)/8
			}
		}
	}
	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}
