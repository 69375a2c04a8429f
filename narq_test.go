package narq

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestEdgeCases(t *testing.T) {
	tests := []struct {
		needle, haystack string
		want             int
	}{
		{"", "abc", 0},
		{"abcd", "ab", -1},
		{"", "", 0},
		{"a", "", -1},
		{"aab", "aaaa", -1},
	}

	for _, tt := range tests {
		funcs := map[string]func(string, string) int{
			"BruteForce":  BruteForceString,
			"RabinKarpLV": RabinKarpLVString,
			"RabinKarpMC": RabinKarpMCString,
		}
		for name, f := range funcs {
			if got := f(tt.needle, tt.haystack); got != tt.want {
				t.Errorf("%s(%q, %q) = %d, want %d", name, tt.needle, tt.haystack, got, tt.want)
			}
		}
	}
}

// TestRunOfA is the "aaaab" scenario: each needle is found by the single
// needle matcher and by the multi-pattern matcher at the same offset.
func TestRunOfA(t *testing.T) {
	haystack := "aaaab"
	needles := []string{"ab", "aab", "aaab"}
	want := []int{3, 2, 1}

	for j, needle := range needles {
		if got := RabinKarpLVString(needle, haystack); got != want[j] {
			t.Errorf("RabinKarpLV(%q) = %d, want %d", needle, got, want[j])
		}
	}
	if got := RabinKarpMultiString(needles, haystack, len(needles)); !slices.Equal(got, want) {
		t.Errorf("RabinKarpMulti = %v, want %v", got, want)
	}
}

func TestRandomEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 10))
	gen := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = "ab"[rng.IntN(2)]
		}
		return b
	}

	for trial := 0; trial < 1000; trial++ {
		haystack := gen(rng.IntN(50))
		needles := make([][]byte, 1+rng.IntN(6))
		for j := range needles {
			needles[j] = gen(rng.IntN(6))
		}

		multi := RabinKarpMulti(needles, haystack, len(needles))
		if len(multi) != len(needles) {
			t.Fatalf("RabinKarpMulti returned %d results for %d needles", len(multi), len(needles))
		}
		for j, needle := range needles {
			want := BruteForce(needle, haystack)
			if got := RabinKarpLV(needle, haystack); got != want {
				t.Fatalf("RabinKarpLV(%q, %q) = %d, BruteForce = %d", needle, haystack, got, want)
			}
			if multi[j] != want {
				t.Fatalf("RabinKarpMulti[%d] (%q in %q) = %d, want %d", j, needle, haystack, multi[j], want)
			}
			if want >= 0 {
				if got := RabinKarpMC(needle, haystack); got < 0 || got > want {
					t.Fatalf("RabinKarpMC(%q, %q) = %d, true occurrence at %d", needle, haystack, got, want)
				}
				if got := RabinKarpMCRand(needle, haystack, rng); got < 0 || got > want {
					t.Fatalf("RabinKarpMCRand(%q, %q) = %d, true occurrence at %d", needle, haystack, got, want)
				}
			}
		}
	}
}

func TestRabinKarpMultiPrefix(t *testing.T) {
	needles := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	got := RabinKarpMulti(needles, []byte("cab"), 2)
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("RabinKarpMulti(k=2) = %v, want [1 2]", got)
	}
	if got := RabinKarpMulti(needles, []byte("cab"), 0); len(got) != 0 {
		t.Errorf("RabinKarpMulti(k=0) = %v, want empty", got)
	}
}

func TestRabinKarpMultiBadCount(t *testing.T) {
	for _, k := range []int{-1, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("RabinKarpMulti(k=%d) did not panic", k)
				}
			}()
			RabinKarpMulti(make([][]byte, 3), nil, k)
		}()
	}
}

func TestStringVariants(t *testing.T) {
	// The string forms must agree with the byte forms on shared data.
	haystack := string(bytes.Repeat([]byte("ab"), 100)) + "c"
	if got, want := RabinKarpLVString("bc", haystack), RabinKarpLV([]byte("bc"), []byte(haystack)); got != want {
		t.Errorf("RabinKarpLVString = %d, RabinKarpLV = %d", got, want)
	}
	if got := BruteForceString("bc", haystack); got != 199 {
		t.Errorf("BruteForceString = %d, want 199", got)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}
