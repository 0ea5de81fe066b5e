// Package config holds runtime settings shared by the atomic binaries.
//
// Values start from DefaultConfig, are overridden by ATOMIC_* environment
// variables, and finally by command-line flags in each cmd/ main.
package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
)

// Config is the full set of runtime settings.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `env:"ATOMIC_DB"`

	// Lang selects the display language ("en" or "nb").
	Lang string `env:"ATOMIC_LANG"`

	// Seed fixes the nucleus shuffle. Zero seeds from the clock.
	Seed uint64 `env:"ATOMIC_SEED"`

	// DebugLog, when set, receives log output from the TUI.
	DebugLog string `env:"ATOMIC_DEBUG_LOG"`

	// Nucleus diagram sizing, in diagram pixels.
	NucleusMin   float64 `env:"ATOMIC_NUCLEUS_MIN"`
	NucleusMax   float64 `env:"ATOMIC_NUCLEUS_MAX"`
	ParticleSize float64 `env:"ATOMIC_PARTICLE_SIZE"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	layout := atom.DefaultLayoutConfig()

	return Config{
		DBPath:       filepath.Join(homeDir, ".atomic", "atomic.db"),
		Lang:         "en",
		NucleusMin:   layout.MinSize,
		NucleusMax:   layout.MaxSize,
		ParticleSize: layout.ParticleSize,
	}
}

// Load returns DefaultConfig overridden by the environment.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
// Fields without a matching variable keep their current value.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the diagram sizing values.
func (c Config) Validate() error {
	if c.ParticleSize <= 0 {
		return fmt.Errorf("particle size must be positive, got %v", c.ParticleSize)
	}
	if c.NucleusMin <= 2*c.ParticleSize {
		return fmt.Errorf("nucleus min size %v must exceed twice the particle size %v", c.NucleusMin, c.ParticleSize)
	}
	if c.NucleusMax < c.NucleusMin {
		return fmt.Errorf("nucleus max size %v is below min size %v", c.NucleusMax, c.NucleusMin)
	}
	return nil
}

// Layout returns the diagram layout configuration.
func (c Config) Layout() atom.LayoutConfig {
	layout := atom.DefaultLayoutConfig()
	layout.MinSize = c.NucleusMin
	layout.MaxSize = c.NucleusMax
	layout.ParticleSize = c.ParticleSize
	return layout
}

// Rand returns the shuffle source for nucleus layouts.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
