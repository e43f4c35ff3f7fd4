// Package config loads the demo entry point's run parameters from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Demo is the set of parameters a single coinflipdemo run needs.
type Demo struct {
	// N is the party count. Must be >= 2.
	N int `yaml:"n"`
	// K is the field size in bits. Must be > 0.
	K uint `yaml:"k"`
	// Hardcode selects the precomputed (mod, generator) table over a
	// fresh irreducible/generator search when one exists for K.
	Hardcode bool `yaml:"hardcode"`
	// Seed seeds the deterministic RNG. Empty means "use crypto/rand".
	Seed string `yaml:"seed"`
}

// defaults mirror the reference implementation's demo invocation.
var defaults = Demo{N: 5, K: 8, Hardcode: true, Seed: ""}

// Load reads and validates a Demo configuration from the YAML file at path.
func Load(path string) (Demo, error) {
	cfg := defaults

	b, err := os.ReadFile(path)
	if err != nil {
		return Demo{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Demo{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Demo{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports whether the configuration describes a runnable protocol
// instance.
func (d Demo) Validate() error {
	if d.N < 2 {
		return fmt.Errorf("n must be >= 2, got %d", d.N)
	}
	if d.K == 0 {
		return fmt.Errorf("k must be > 0, got %d", d.K)
	}
	if d.K > 63 {
		return fmt.Errorf("k must fit a uint64 field element, got %d", d.K)
	}
	return nil
}
