package search

import (
	"errors"

	"github.com/coregx/narq/rolling"
)

// Config controls the hash-based matchers.
//
// Configuration options affect:
//   - Hash parameters (base and modulus) for Exact, Multi and fixed-modulus
//     Probabilistic matchers
//   - The false positive bound of randomized Probabilistic matchers
//   - Multi-pattern batching (prefilter, parallel sweeps)
//
// Example:
//
//	config := search.DefaultConfig()
//	config.Parallelism = 4 // sweep up to 4 needle lengths at once
//	m, err := search.NewMulti(config)
type Config struct {
	// Hash holds the polynomial base and modulus.
	// Default: base 256, modulus 2^61-1
	Hash rolling.Params

	// Epsilon bounds the probability that a randomized Probabilistic
	// matcher reports an occurrence that does not exist. Each call draws a
	// fresh prime modulus sized for the call's input lengths.
	// Default: 1e-9
	Epsilon float64

	// Prefilter makes Multi test the haystack with an Aho-Corasick
	// automaton first and skip every sweep when no needle occurs at all.
	// Default: false
	Prefilter bool

	// Parallelism is the number of needle length groups Multi may sweep
	// concurrently. 1 sweeps them one after another.
	// Default: 1
	Parallelism int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Hash:        rolling.DefaultParams(),
		Epsilon:     1e-9,
		Prefilter:   false,
		Parallelism: 1,
	}
}

// Validate checks if the configuration is valid.
// Returns a *ConfigError if any parameter is out of range.
//
// Valid ranges:
//   - Hash: see rolling.Params.Validate
//   - Epsilon: 0 < Epsilon < 1
//   - Parallelism: 1 to 1,024
func (c Config) Validate() error {
	if err := c.Hash.Validate(); err != nil {
		var pe *rolling.ParamError
		if errors.As(err, &pe) {
			return &ConfigError{Field: "Hash." + pe.Field, Message: pe.Message, Err: err}
		}
		return &ConfigError{Field: "Hash", Message: err.Error(), Err: err}
	}
	if !(c.Epsilon > 0 && c.Epsilon < 1) {
		return &ConfigError{
			Field:   "Epsilon",
			Message: "must be between 0 and 1 (exclusive)",
		}
	}
	if c.Parallelism < 1 || c.Parallelism > 1_024 {
		return &ConfigError{
			Field:   "Parallelism",
			Message: "must be between 1 and 1,024",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
//
// It is a precondition violation and never stands in for "not found":
// matchers that accept a Config refuse to be built from an invalid one.
type ConfigError struct {
	Field   string
	Message string
	Err     error // underlying cause, if any
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "search: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error { return e.Err }
