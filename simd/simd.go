// Package simd provides word-at-a-time byte search primitives.
//
// Memchr scans eight bytes per step with SWAR (SIMD Within A Register)
// arithmetic on uint64 words, and Memmem builds substring search on top of
// it. Neither uses hashing, which makes Memmem a useful independent check on
// the Rabin-Karp matchers and a reference point in benchmarks.
package simd

import "golang.org/x/sys/cpu"

// Features lists the vector extensions reported by the running CPU, for
// stamping benchmark output with the machine it ran on.
func Features() []string {
	var fs []string
	add := func(ok bool, name string) {
		if ok {
			fs = append(fs, name)
		}
	}
	add(cpu.X86.HasSSE42, "sse4.2")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.X86.HasBMI2, "bmi2")
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasSVE, "sve")
	return fs
}
