package rolling

import (
	"math/rand/v2"
	"testing"
)

func TestIsPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 101, 65521, 1<<31 - 1, 1<<61 - 1, 1<<64 - 59}
	for _, p := range primes {
		if !IsPrime(p) {
			t.Errorf("IsPrime(%d) = false, want true", p)
		}
	}
	composites := []uint64{0, 1, 4, 561, 65535, 1 << 61, 1<<64 - 1}
	for _, c := range composites {
		if IsPrime(c) {
			t.Errorf("IsPrime(%d) = true, want false", c)
		}
	}
}

func TestRandomPrime(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		p, ok := RandomPrime(rng, 1000, 2000)
		if !ok {
			t.Fatal("RandomPrime found no prime in [1000, 2000)")
		}
		if p < 1000 || p >= 2000 || !IsPrime(p) {
			t.Fatalf("RandomPrime returned %d, not a prime in [1000, 2000)", p)
		}
	}

	// [24, 29) holds no prime.
	if p, ok := RandomPrime(rng, 24, 29); ok {
		t.Errorf("RandomPrime(24, 29) = %d, want none", p)
	}
	if _, ok := RandomPrime(rng, 10, 10); ok {
		t.Error("RandomPrime on empty range succeeded")
	}
}

// TestRandomPrimeUniform checks that every prime in a small range is drawn
// about equally often, whatever the gap that precedes it.
func TestRandomPrimeUniform(t *testing.T) {
	const (
		lo, hi = 1000, 2000
		draws  = 100_000
	)
	counts := make(map[uint64]int)
	for n := uint64(lo); n < hi; n++ {
		if IsPrime(n) {
			counts[n] = 0
		}
	}

	rng := rand.New(rand.NewPCG(21, 34))
	for i := 0; i < draws; i++ {
		p, _ := RandomPrime(rng, lo, hi)
		if _, ok := counts[p]; !ok {
			t.Fatalf("RandomPrime returned %d, not a prime in [%d, %d)", p, lo, hi)
		}
		counts[p]++
	}

	// 135 primes, so about 740 draws each with a standard deviation near 27.
	want := float64(draws) / float64(len(counts))
	for p, got := range counts {
		if float64(got) < 0.8*want || float64(got) > 1.2*want {
			t.Errorf("prime %d drawn %d times, want about %.0f", p, got, want)
		}
	}
}

func TestRandomPrimeVaries(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	seen := make(map[uint64]bool)
	for i := 0; i < 50; i++ {
		p, _ := RandomPrime(rng, 1<<20, 1<<21)
		seen[p] = true
	}
	if len(seen) < 10 {
		t.Errorf("RandomPrime produced only %d distinct primes in 50 draws", len(seen))
	}
}

func TestRandomPrimeReproducible(t *testing.T) {
	a := rand.New(rand.NewPCG(42, 42))
	b := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 20; i++ {
		pa, _ := RandomPrime(a, 1<<30, 1<<31)
		pb, _ := RandomPrime(b, 1<<30, 1<<31)
		if pa != pb {
			t.Fatalf("draw %d: same seed gave %d and %d", i, pa, pb)
		}
	}
}

func TestMonteCarloModulus(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	tests := []struct {
		name    string
		n, m    int
		epsilon float64
		lo      uint64
	}{
		{"tiny_inputs_use_floor", 5, 2, 0.5, minRandomModulus},
		{"bound_from_epsilon", 1000, 100, 0.125, 800_000},
		{"clamped", 1 << 30, 1 << 30, 1e-9, maxRandomModulus},
		{"empty_inputs", 0, 0, 0.1, minRandomModulus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MonteCarloModulus(rng, tt.n, tt.m, tt.epsilon, DefaultBase)
			if p < tt.lo || p >= 2*tt.lo {
				t.Errorf("modulus %d outside [%d, %d)", p, tt.lo, 2*tt.lo)
			}
			if !IsPrime(p) {
				t.Errorf("modulus %d is not prime", p)
			}
		})
	}
}

func TestMonteCarloModulusAboveBase(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	p := MonteCarloModulus(rng, 1, 1, 0.5, 1<<20)
	if p <= 1<<20 {
		t.Errorf("modulus %d does not exceed base", p)
	}
}

func TestMonteCarloModulusPanicsOnBadEpsilon(t *testing.T) {
	for _, eps := range []float64{0, 1, -0.5, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("epsilon %v did not panic", eps)
				}
			}()
			MonteCarloModulus(rand.New(rand.NewPCG(0, 0)), 10, 2, eps, DefaultBase)
		}()
	}
}
