// SPDX-License-Identifier: MIT

// Package config resolves lvmat's settings from an optional TOML file and
// LVMAT_* environment variables, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Element types accepted by Type.
const (
	TypeInt        = "int"
	TypeFloat64    = "float64"
	TypeComplex128 = "complex128"
)

// Output formats accepted by Output.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Defaults applied before the file and the environment are read.
const (
	DefaultType    = TypeFloat64
	DefaultOutput  = OutputText
	DefaultEpsilon = 1e-9
)

// ErrInvalid marks a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the resolved CLI settings.
type Config struct {
	Type    string  `toml:"type" env:"LVMAT_TYPE"`
	Header  bool    `toml:"header" env:"LVMAT_HEADER"`
	Output  string  `toml:"output" env:"LVMAT_OUTPUT"`
	Epsilon float64 `toml:"epsilon" env:"LVMAT_EPSILON"`
	Strict  bool    `toml:"strict" env:"LVMAT_STRICT"`
	Verbose bool    `toml:"verbose" env:"LVMAT_VERBOSE"`
}

// Default returns a Config populated with the documented defaults.
func Default() Config {
	return Config{
		Type:    DefaultType,
		Output:  DefaultOutput,
		Epsilon: DefaultEpsilon,
	}
}

// Load builds a Config from defaults, then path (skipped when empty), then
// the environment, and validates the result.
// Unknown keys in the file are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			return Config{}, fmt.Errorf("decode %s: unknown keys %s: %w", path, strings.Join(names, ", "), ErrInvalid)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseEnv overlays LVMAT_* variables onto target. Unset variables leave
// the corresponding field untouched.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports the first field outside its allowed set.
func (c Config) Validate() error {
	switch c.Type {
	case TypeInt, TypeFloat64, TypeComplex128:
	default:
		return fmt.Errorf("type %q: %w", c.Type, ErrInvalid)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("output %q: %w", c.Output, ErrInvalid)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("epsilon %v: %w", c.Epsilon, ErrInvalid)
	}

	return nil
}
