package search

import (
	"bytes"

	"github.com/coregx/narq/rolling"
)

// Exact is a Las Vegas Rabin-Karp matcher: it rolls a window hash across
// the haystack and confirms every hash hit byte by byte before reporting
// it. It always agrees with BruteForce. The expected cost is O(n+m); only
// repeated spurious hash hits push it towards O(n*m).
//
// An Exact is immutable and safe for concurrent use.
type Exact struct {
	params rolling.Params
}

// NewExact returns an Exact matcher using cfg.Hash.
// Returns a *ConfigError if cfg is invalid.
func NewExact(cfg Config) (*Exact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Exact{params: cfg.Hash}, nil
}

// Index implements Searcher.
func (e *Exact) Index(needle, haystack []byte) int {
	m, n := len(needle), len(haystack)
	if pos, ok := trivial(m, n); ok {
		return pos
	}

	h := newHasher(e.params, m)
	target := h.Init(needle)
	v := h.Init(haystack)
	for i := 0; ; i++ {
		if v == target && bytes.Equal(haystack[i:i+m], needle) {
			return i
		}
		if i+m >= n {
			return -1
		}
		v = h.Roll(v, haystack[i], haystack[i+m])
	}
}

// String implements Searcher.
func (e *Exact) String() string { return "rabin-karp-lv" }
