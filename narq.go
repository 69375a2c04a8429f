// Package narq provides exact and probabilistic substring search built on
// Rabin-Karp rolling hashes.
//
// The package offers four search functions sharing one result convention:
// the zero-based offset of the first occurrence of the needle, or -1.
//   - BruteForce: direct comparison at every offset (the oracle)
//   - RabinKarpLV: Las Vegas Rabin-Karp, every hash hit verified
//   - RabinKarpMC: Monte Carlo Rabin-Karp, hash hits trusted
//   - RabinKarpMulti: many needles, one haystack sweep per needle length
//
// An empty needle matches at offset 0. A needle longer than the haystack
// never matches. No search function returns an error. RabinKarpMulti and
// RabinKarpMultiString panic when the needle count k is negative or exceeds
// the number of needles given, as slicing past the end would.
//
// Basic usage:
//
//	pos := narq.RabinKarpLV([]byte("ab"), []byte("aaaab"))
//	// pos == 3
//
//	found := narq.RabinKarpMulti(needles, haystack, len(needles))
//	// found[j] is the offset of needles[j], or -1
//
// The functions use DefaultConfig. For other hash parameters, a randomized
// Monte Carlo modulus, or parallel multi-pattern sweeps, build matchers
// from package search directly:
//
//	config := narq.DefaultConfig()
//	config.Parallelism = 4
//	m, err := search.NewMulti(config)
//
// Matchers are pure: they neither log, time nor retain their inputs.
package narq

import (
	"math/rand/v2"

	"github.com/coregx/narq/internal/conv"
	"github.com/coregx/narq/search"
)

var (
	exact         = mustBuild(search.NewExact(search.DefaultConfig()))
	probabilistic = mustBuild(search.NewProbabilistic(search.DefaultConfig(), nil))
	multi         = mustBuild(search.NewMulti(search.DefaultConfig()))
)

func mustBuild[T any](m T, err error) T {
	if err != nil {
		panic("narq: default config rejected: " + err.Error())
	}
	return m
}

// DefaultConfig returns the configuration used by the package functions.
//
// Users can customize it and pass it to the search package constructors.
func DefaultConfig() search.Config {
	return search.DefaultConfig()
}

// BruteForce returns the offset of the first occurrence of needle in
// haystack, or -1, by comparing bytes at every offset.
func BruteForce(needle, haystack []byte) int {
	return search.BruteForce(needle, haystack)
}

// RabinKarpLV returns the offset of the first occurrence of needle in
// haystack, or -1. Hash hits are verified, so the result always equals
// BruteForce.
func RabinKarpLV(needle, haystack []byte) int {
	return exact.Index(needle, haystack)
}

// RabinKarpMC returns the offset of the first window of haystack whose hash
// equals the hash of needle, or -1. It never returns -1 when needle occurs.
//
// The modulus is the fixed prime 2^61-1. For a modulus drawn afresh on each
// call, with a false positive bound independent of the input, use
// RabinKarpMCRand.
func RabinKarpMC(needle, haystack []byte) int {
	return probabilistic.Index(needle, haystack)
}

// RabinKarpMCRand is RabinKarpMC with a prime modulus drawn from rng, sized
// so that the chance of a false report is at most the default epsilon
// (1e-9). rng must not be used concurrently elsewhere during the call.
func RabinKarpMCRand(needle, haystack []byte, rng *rand.Rand) int {
	m := mustBuild(search.NewProbabilistic(search.DefaultConfig(), rng))
	return m.Index(needle, haystack)
}

// RabinKarpMulti searches haystack for needles[:k] and returns k offsets in
// needle order, each -1 when that needle does not occur. Results are
// verified, so entry j equals RabinKarpLV(needles[j], haystack).
//
// Panics if k is negative or exceeds len(needles).
func RabinKarpMulti(needles [][]byte, haystack []byte, k int) []int {
	if k < 0 || k > len(needles) {
		panic("narq: needle count out of range")
	}
	return multi.Index(needles[:k], haystack)
}

// BruteForceString is like BruteForce but takes strings.
func BruteForceString(needle, haystack string) int {
	return BruteForce(conv.StringBytes(needle), conv.StringBytes(haystack))
}

// RabinKarpLVString is like RabinKarpLV but takes strings.
func RabinKarpLVString(needle, haystack string) int {
	return RabinKarpLV(conv.StringBytes(needle), conv.StringBytes(haystack))
}

// RabinKarpMCString is like RabinKarpMC but takes strings.
func RabinKarpMCString(needle, haystack string) int {
	return RabinKarpMC(conv.StringBytes(needle), conv.StringBytes(haystack))
}

// RabinKarpMultiString is like RabinKarpMulti but takes strings.
func RabinKarpMultiString(needles []string, haystack string, k int) []int {
	if k < 0 || k > len(needles) {
		panic("narq: needle count out of range")
	}
	return RabinKarpMulti(conv.StringsBytes(needles[:k]), conv.StringBytes(haystack), k)
}
