// Package search implements exact and probabilistic substring search.
//
// Four matchers share one contract: given a needle and a haystack they
// return the first offset at which the needle occurs, or -1.
//
//   - BruteForce: direct comparison at every offset. The correctness oracle.
//   - Exact: Rabin-Karp that verifies every hash hit (Las Vegas). Always
//     agrees with BruteForce.
//   - Probabilistic: Rabin-Karp that trusts the hash (Monte Carlo). Never
//     misses a true occurrence; may report a collision with probability
//     bounded by Config.Epsilon.
//   - Multi: verified Rabin-Karp for many needles, one haystack sweep per
//     distinct needle length.
//
// Conventions shared by every matcher:
//   - An empty needle matches at offset 0, including in an empty haystack.
//   - A needle longer than the haystack returns -1 without hashing.
//
// Matchers perform no I/O, no timing and no logging.
//
// Example:
//
//	m, err := search.NewExact(search.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pos := m.Index([]byte("ab"), []byte("aaaab"))
//	// pos == 3
package search

import (
	"github.com/coregx/narq/rolling"
)

// Searcher is a single-needle matcher.
type Searcher interface {
	// Index returns the offset of the first occurrence of needle in
	// haystack, or -1.
	Index(needle, haystack []byte) int

	// String names the algorithm.
	String() string
}

var (
	_ Searcher = Brute{}
	_ Searcher = (*Exact)(nil)
	_ Searcher = (*Probabilistic)(nil)
)

// trivial resolves the cases that need no scan. ok reports whether pos is
// final.
func trivial(m, n int) (pos int, ok bool) {
	switch {
	case m == 0:
		return 0, true
	case m > n:
		return -1, true
	}
	return 0, false
}

// newHasher builds a hasher from parameters that were validated when the
// matcher was constructed.
func newHasher(p rolling.Params, width int) *rolling.Hasher {
	h, err := rolling.New(p, width)
	if err != nil {
		panic("search: " + err.Error())
	}
	return h
}
