package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack. An empty needle matches at 0,
// as with bytes.Index.
//
// The last byte of the needle is used as an anchor: Memchr finds each
// occurrence of it, and the needle is compared in place only at those
// candidates. On a run of one repeated byte every position is a candidate
// and the cost degrades to O(n*m), like brute force.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	m, n := len(needle), len(haystack)
	switch {
	case m == 0:
		return 0
	case m > n:
		return -1
	case m == 1:
		return Memchr(haystack, needle[0])
	}

	last := needle[m-1]
	// Candidates for the anchor start at offset m-1, so every candidate
	// leaves room for the whole needle before it.
	for from := m - 1; from < n; {
		pos := Memchr(haystack[from:], last)
		if pos < 0 {
			return -1
		}
		end := from + pos + 1
		if bytes.Equal(haystack[end-m:end], needle) {
			return end - m
		}
		from = end
	}
	return -1
}
