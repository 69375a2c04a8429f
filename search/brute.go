package search

// BruteForce returns the first offset at which needle occurs in haystack,
// or -1. It compares the needle byte by byte at every offset and stops at
// the first mismatch, O(n*m) in the worst case.
func BruteForce(needle, haystack []byte) int {
	m, n := len(needle), len(haystack)
	if pos, ok := trivial(m, n); ok {
		return pos
	}
	for i := 0; i <= n-m; i++ {
		j := 0
		for j < m && haystack[i+j] == needle[j] {
			j++
		}
		if j == m {
			return i
		}
	}
	return -1
}

// Brute is the Searcher form of BruteForce.
type Brute struct{}

// Index implements Searcher.
func (Brute) Index(needle, haystack []byte) int { return BruteForce(needle, haystack) }

// String implements Searcher.
func (Brute) String() string { return "brute-force" }
