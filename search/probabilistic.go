package search

import (
	"math/rand/v2"

	"github.com/coregx/narq/rolling"
)

// Probabilistic is a Monte Carlo Rabin-Karp matcher: it reports the first
// offset whose window hash equals the needle hash, without comparing bytes.
//
// It never misses a true occurrence, since equal windows always hash
// equally. It may report a position where the needle does not occur when
// two different windows collide under the modulus.
//
// With a random source, every call draws a fresh prime modulus from a range
// sized to the call (rolling.MonteCarloModulus), which bounds the chance of
// any false report during that call by Config.Epsilon regardless of input.
// Without one, the fixed Config.Hash.Modulus is used for every call.
//
// A Probabilistic without a random source is safe for concurrent use. One
// with a random source is not, because *rand.Rand is not.
type Probabilistic struct {
	params  rolling.Params
	epsilon float64
	rng     *rand.Rand
}

// NewProbabilistic returns a Monte Carlo matcher. rng may be nil to use
// the fixed modulus in cfg.Hash.
// Returns a *ConfigError if cfg is invalid, or if rng is set and
// cfg.Hash.Base is below the alphabet size (256). A smaller base maps
// distinct windows to the same integer before any reduction, so no modulus
// could keep collisions within Epsilon.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(seed, 0))
//	m, err := search.NewProbabilistic(search.DefaultConfig(), rng)
func NewProbabilistic(cfg Config, rng *rand.Rand) (*Probabilistic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng != nil && cfg.Hash.Base < rolling.DefaultBase {
		return nil, &ConfigError{
			Field:   "Hash.Base",
			Message: "must be at least 256 with a random modulus",
		}
	}
	return &Probabilistic{params: cfg.Hash, epsilon: cfg.Epsilon, rng: rng}, nil
}

// Index implements Searcher.
func (p *Probabilistic) Index(needle, haystack []byte) int {
	m, n := len(needle), len(haystack)
	if pos, ok := trivial(m, n); ok {
		return pos
	}

	h := newHasher(p.paramsFor(n, m), m)
	target := h.Init(needle)
	v := h.Init(haystack)
	for i := 0; ; i++ {
		if v == target {
			return i
		}
		if i+m >= n {
			return -1
		}
		v = h.Roll(v, haystack[i], haystack[i+m])
	}
}

// paramsFor returns the hash parameters for one call.
func (p *Probabilistic) paramsFor(n, m int) rolling.Params {
	if p.rng == nil {
		return p.params
	}
	params := p.params
	for {
		params.Modulus = rolling.MonteCarloModulus(p.rng, n, m, p.epsilon, params.Base)
		// A prime dividing the base would collapse the hash; redraw.
		if params.Base%params.Modulus != 0 {
			return params
		}
	}
}

// String implements Searcher.
func (p *Probabilistic) String() string { return "rabin-karp-mc" }
