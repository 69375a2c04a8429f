package rolling

import (
	"math"
	"math/big"
	"math/rand/v2"
)

const (
	// minRandomModulus keeps randomized moduli well above the byte alphabet.
	minRandomModulus = 1 << 10

	// maxRandomModulus caps randomized moduli so that [span, 2*span) stays
	// below 2^63.
	maxRandomModulus = 1 << 62
)

// IsPrime reports whether n is prime.
//
// It relies on the Baillie-PSW test, which has no known counterexample
// and is exact for every n below 2^64.
func IsPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}

// maxPrimeDraws bounds rejection sampling in RandomPrime. Primes near 2^63
// have density about 1/44, so a range that holds any is almost never missed
// this many times in a row.
const maxPrimeDraws = 4096

// RandomPrime returns a prime drawn uniformly from the primes in [lo, hi).
// It returns false if the range holds no prime.
//
// Candidates are drawn uniformly and rejected until one is prime. Only a
// range too sparse to hit within maxPrimeDraws falls back to a scan, which
// also settles whether the range holds a prime at all.
func RandomPrime(rng *rand.Rand, lo, hi uint64) (uint64, bool) {
	if lo < 2 {
		lo = 2
	}
	if hi <= lo {
		return 0, false
	}
	for range maxPrimeDraws {
		if n := lo + rng.Uint64N(hi-lo); IsPrime(n) {
			return n, true
		}
	}
	start := lo + rng.Uint64N(hi-lo)
	for n := start; n < hi; n++ {
		if IsPrime(n) {
			return n, true
		}
	}
	for n := lo; n < start; n++ {
		if IsPrime(n) {
			return n, true
		}
	}
	return 0, false
}

// MonteCarloModulus draws a prime modulus for an unverified scan of a
// haystack of length n with a needle of length m.
//
// The prime is taken from [s, 2s) with s = ceil(n*m/epsilon), the Karp-Rabin
// range that bounds the probability of any false match over the scan by
// epsilon. s is raised to exceed base and clamped to 2^62; a clamped range
// gives a weaker bound only for inputs beyond 2^62*epsilon bytes squared.
//
// Panics if epsilon is not in (0, 1); callers validate it up front.
func MonteCarloModulus(rng *rand.Rand, n, m int, epsilon float64, base uint64) uint64 {
	if !(epsilon > 0 && epsilon < 1) {
		panic("rolling: epsilon must be in (0, 1)")
	}
	span := math.Ceil(float64(max(n, 1)) * float64(max(m, 1)) / epsilon)
	lo := uint64(maxRandomModulus)
	if span < maxRandomModulus {
		lo = uint64(span)
	}
	if base < maxRandomModulus {
		lo = max(lo, base+1)
	}
	lo = max(lo, minRandomModulus)
	p, ok := RandomPrime(rng, lo, 2*lo)
	if !ok {
		// Bertrand's postulate guarantees a prime in [lo, 2*lo).
		panic("rolling: no prime in modulus range")
	}
	return p
}
