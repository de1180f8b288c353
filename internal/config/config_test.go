// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvmat.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
type = "int"
header = true
output = "yaml"
epsilon = 0.001
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, TypeInt, cfg.Type)
	require.True(t, cfg.Header)
	require.Equal(t, OutputYAML, cfg.Output)
	require.Equal(t, 0.001, cfg.Epsilon)
	require.False(t, cfg.Strict)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `type = "int"`)
	t.Setenv("LVMAT_TYPE", "complex128")
	t.Setenv("LVMAT_VERBOSE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, TypeComplex128, cfg.Type)
	require.True(t, cfg.Verbose)
	require.Equal(t, DefaultOutput, cfg.Output) // untouched by env
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, `typ = "int"`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "typ")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `type = `))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `type = "uint8"`))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParseEnvError(t *testing.T) {
	cfg := Default()
	t.Setenv("LVMAT_EPSILON", "not-a-float")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"bad type", func(c *Config) { c.Type = "uint" }, false},
		{"bad output", func(c *Config) { c.Output = "json" }, false},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1 }, false},
		{"zero epsilon", func(c *Config) { c.Epsilon = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mut(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
