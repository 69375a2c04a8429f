package search_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/coregx/narq/search"
)

// Example demonstrates the brute force oracle
func ExampleBruteForce() {
	fmt.Println(search.BruteForce([]byte("ab"), []byte("aaaab")))
	fmt.Println(search.BruteForce([]byte(""), []byte("abc")))
	fmt.Println(search.BruteForce([]byte("abcd"), []byte("ab")))
	// Output:
	// 3
	// 0
	// -1
}

// Example demonstrates verified Rabin-Karp search
func ExampleExact() {
	m, err := search.NewExact(search.DefaultConfig())
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Index([]byte("aab"), []byte("aaaab")))
	fmt.Println(m.Index([]byte("aab"), []byte("aaaa")))
	// Output:
	// 2
	// -1
}

// Example demonstrates Monte Carlo search with a seeded random modulus
func ExampleProbabilistic() {
	rng := rand.New(rand.NewPCG(1, 2))
	m, err := search.NewProbabilistic(search.DefaultConfig(), rng)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Index([]byte("world"), []byte("hello world")))
	// Output: 6
}

// Example demonstrates searching several needles in one pass per length
func ExampleMulti() {
	m, err := search.NewMulti(search.DefaultConfig())
	if err != nil {
		panic(err)
	}
	needles := [][]byte{[]byte("ab"), []byte("aab"), []byte("aaab"), []byte("b")}
	fmt.Println(m.Index(needles, []byte("aaaab")))
	// Output: [3 2 1 4]
}

// Example demonstrates the error returned for an unusable modulus
func ExampleConfig_Validate() {
	cfg := search.DefaultConfig()
	cfg.Hash.Modulus = 0
	_, err := search.NewExact(cfg)
	fmt.Println(err)
	// Output: search: invalid config: Hash.Modulus: must be at least 2
}
