// Package rolling implements the polynomial rolling hash shared by the
// Rabin-Karp matchers.
//
// A window w[0..m-1] of bytes hashes to
//
//	H(w) = (w[0]*b^(m-1) + w[1]*b^(m-2) + ... + w[m-1]) mod p
//
// and sliding the window one byte to the right is O(1):
//
//	H' = (b*(H - out*b^(m-1)) + in) mod p
//
// All products are formed in 128 bits (math/bits) and reduced before the
// next multiplication, so any modulus below 2^64 is safe from overflow.
//
// Example:
//
//	h, err := rolling.New(rolling.DefaultParams(), 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text := []byte("abcd")
//	v := h.Init(text)                // H("abc")
//	v = h.Roll(v, text[0], text[3])  // H("bcd")
package rolling

// DefaultBase is the default polynomial base. It is the size of the byte
// alphabet, so distinct windows map to distinct integers before reduction.
const DefaultBase = 256

// DefaultModulus is the Mersenne prime 2^61-1.
const DefaultModulus = 1<<61 - 1

// Params are the parameters (b, p) of a polynomial hash.
type Params struct {
	// Base is the polynomial base b.
	// Default: 256
	Base uint64

	// Modulus is the modulus p. It should be prime; Validate does not check
	// primality, since an exact matcher stays correct with any modulus.
	// Default: 2^61-1
	Modulus uint64
}

// DefaultParams returns the default hash parameters.
func DefaultParams() Params {
	return Params{Base: DefaultBase, Modulus: DefaultModulus}
}

// Validate reports whether p can drive a rolling hash.
//
// Valid ranges:
//   - Base: >= 2
//   - Modulus: >= 2
//   - Base mod Modulus != 0 (otherwise every hash collapses to the last byte)
func (p Params) Validate() error {
	if p.Base < 2 {
		return &ParamError{Field: "Base", Message: "must be at least 2"}
	}
	if p.Modulus < 2 {
		return &ParamError{Field: "Modulus", Message: "must be at least 2"}
	}
	if p.Base%p.Modulus == 0 {
		return &ParamError{Field: "Base", Message: "must not be a multiple of Modulus"}
	}
	return nil
}

// ParamError represents invalid hash parameters.
type ParamError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	return "rolling: invalid params: " + e.Field + ": " + e.Message
}

// Hasher computes and rolls the hash of a fixed-width window.
//
// A Hasher is immutable after New and safe for concurrent use.
type Hasher struct {
	base  uint64 // base reduced mod modulus
	mod   uint64
	width int
	pow   uint64 // base^(width-1) mod modulus
}

// New returns a Hasher for windows of the given width.
func New(p Params, width int) (*Hasher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if width < 1 {
		return nil, &ParamError{Field: "width", Message: "must be at least 1"}
	}
	return &Hasher{
		base:  p.Base % p.Modulus,
		mod:   p.Modulus,
		width: width,
		pow:   Pow(p.Base, uint64(width-1), p.Modulus),
	}, nil
}

// Width returns the window width in bytes.
func (h *Hasher) Width() int { return h.width }

// Init returns the hash of window[:Width()].
// Panics if window is shorter than the hasher width.
func (h *Hasher) Init(window []byte) uint64 {
	if len(window) < h.width {
		panic("rolling: window shorter than hasher width")
	}
	var v uint64
	for _, c := range window[:h.width] {
		v = AddMod(MulMod(v, h.base, h.mod), uint64(c)%h.mod, h.mod)
	}
	return v
}

// Roll slides the window one byte: out leaves on the left, in enters on
// the right. old must be a hash produced by this hasher.
func (h *Hasher) Roll(old uint64, out, in byte) uint64 {
	v := SubMod(old, MulMod(uint64(out)%h.mod, h.pow, h.mod), h.mod)
	v = MulMod(v, h.base, h.mod)
	return AddMod(v, uint64(in)%h.mod, h.mod)
}
