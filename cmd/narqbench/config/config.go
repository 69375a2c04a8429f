// Package config defines the settings of the narqbench benchmark driver.
package config

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Settings are the ranges and matcher options for one benchmark run.
// Sizes are in bytes. Each range is walked from Min to Max inclusive.
type Settings struct {
	// Directory receiving the CSV result files.
	OutDir string `yaml:"out-dir"`

	// Number of needles for the multi-pattern experiments.
	MinNeedles int `yaml:"min-needles"`
	MaxNeedles int `yaml:"max-needles"`
	NeedleStep int `yaml:"needle-step"`

	// Needle and haystack lengths, both stepped by Increment.
	MinNeedle   int `yaml:"min-needle"`
	MaxNeedle   int `yaml:"max-needle"`
	MinHaystack int `yaml:"min-haystack"`
	MaxHaystack int `yaml:"max-haystack"`
	Increment   int `yaml:"increment"`

	// Seed of the random source drawing Monte Carlo moduli.
	Seed uint64 `yaml:"seed"`

	// Matcher options, see search.Config.
	Epsilon     float64 `yaml:"epsilon"`
	Parallelism int     `yaml:"parallelism"`
	Prefilter   bool    `yaml:"prefilter"`
}

// Default returns the ranges of the standard timing study: 10 to 100
// needles in steps of 10, needles of 10 to 1000 bytes and haystacks of 100
// to 10000 bytes in steps of 100.
func Default() *Settings {
	return &Settings{
		OutDir:      ".",
		MinNeedles:  10,
		MaxNeedles:  100,
		NeedleStep:  10,
		MinNeedle:   10,
		MaxNeedle:   1000,
		MinHaystack: 100,
		MaxHaystack: 10000,
		Increment:   100,
		Seed:        1,
		Epsilon:     1e-9,
		Parallelism: 1,
	}
}

// Load reads settings from the YAML file at path, on top of Default.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the ranges can be walked.
func (s *Settings) Validate() error {
	if s.OutDir == "" {
		return errors.New("empty output directory")
	}
	if err := checkRange("needles", s.MinNeedles, s.MaxNeedles, s.NeedleStep); err != nil {
		return err
	}
	if err := checkRange("needle", s.MinNeedle, s.MaxNeedle, s.Increment); err != nil {
		return err
	}
	if err := checkRange("haystack", s.MinHaystack, s.MaxHaystack, s.Increment); err != nil {
		return err
	}
	return nil
}

func checkRange(name string, lo, hi, step int) error {
	switch {
	case lo < 1:
		return fmt.Errorf("min-%s must be positive, got %d", name, lo)
	case hi < lo:
		return fmt.Errorf("max-%s (%d) is below min-%s (%d)", name, hi, name, lo)
	case step < 1:
		return fmt.Errorf("step for %s must be positive, got %d", name, step)
	}
	return nil
}

// Steps returns lo, lo+step, ... up to and including hi.
func Steps(lo, hi, step int) []int {
	var out []int
	for v := lo; v <= hi; v += step {
		out = append(out, v)
	}
	return out
}
