// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/matrix"
)

// session binds the resolved settings to one element type and the
// command's standard streams.
type session[T matrix.Number] struct {
	*settings
	in  io.Reader
	out io.Writer
}

// handler is the body of a subcommand for one element type.
type handler[T matrix.Number] func(s *session[T], args []string) error

// typed returns a RunE that picks the handler matching the configured type.
func (s *settings) typed(hi handler[int], hf handler[float64], hc handler[complex128]) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, args []string) error {
		switch s.cfg.Type {
		case config.TypeInt:
			return hi(newSession[int](s, c), args)
		case config.TypeFloat64:
			return hf(newSession[float64](s, c), args)
		case config.TypeComplex128:
			return hc(newSession[complex128](s, c), args)
		}
		return fmt.Errorf("type %q: %w", s.cfg.Type, config.ErrInvalid)
	}
}

func newSession[T matrix.Number](s *settings, c *cobra.Command) *session[T] {
	return &session[T]{settings: s, in: c.InOrStdin(), out: c.OutOrStdout()}
}

// options maps the config onto matrix options.
func (s *session[T]) options() []matrix.Option {
	opts := []matrix.Option{matrix.WithEpsilon(s.cfg.Epsilon)}
	if s.cfg.Strict {
		opts = append(opts, matrix.WithValidateNaNInf())
	}
	return opts
}

// load reads one matrix from path, or from stdin when path is "-".
func (s *session[T]) load(path string) (*matrix.Dense[T], error) {
	r := s.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	m, err := matrix.Deserialize[T](r, s.options()...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s.log.Printf("read %s: %dx%d", path, m.Rows(), m.Cols())

	return m, nil
}

// yamlMatrix is the --output yaml document for a matrix result.
type yamlMatrix struct {
	Rows int     `yaml:"rows"`
	Cols int     `yaml:"cols"`
	Data [][]any `yaml:"data"`
}

// yamlCell keeps ints and floats native; complex values have no YAML
// scalar form and are written as their fmt string, e.g. "(1+2i)".
func yamlCell[T matrix.Number](v T) any {
	switch x := any(v).(type) {
	case complex128, complex64:
		return fmt.Sprint(x)
	}
	return v
}

func (s *session[T]) emitMatrix(m *matrix.Dense[T]) error {
	if s.cfg.Output == config.OutputYAML {
		doc := yamlMatrix{Rows: m.Rows(), Cols: m.Cols(), Data: make([][]any, m.Rows())}
		for i := range doc.Data {
			doc.Data[i] = make([]any, m.Cols())
		}
		m.Do(func(i, j int, v T) bool {
			doc.Data[i][j] = yamlCell(v)
			return true
		})
		return s.emitYAML(doc)
	}
	if s.cfg.Header {
		return matrix.Encode(s.out, m)
	}
	return matrix.Serialize(s.out, m)
}

func (s *session[T]) emitScalar(key string, v T) error {
	if s.cfg.Output == config.OutputYAML {
		return s.emitYAML(map[string]any{key: yamlCell(v)})
	}
	_, err := fmt.Fprintln(s.out, v)
	return err
}

func (s *session[T]) emitBool(key string, v bool) error {
	if s.cfg.Output == config.OutputYAML {
		return s.emitYAML(map[string]bool{key: v})
	}
	_, err := fmt.Fprintln(s.out, v)
	return err
}

func (s *session[T]) emitYAML(doc any) error {
	enc := yaml.NewEncoder(s.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
