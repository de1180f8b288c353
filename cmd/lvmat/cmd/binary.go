// SPDX-License-Identifier: MIT
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

// binOp names a two-operand kernel independently of the element type.
type binOp int

const (
	binAdd binOp = iota
	binSub
	binMul
)

func apply[T matrix.Number](op binOp, a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	switch op {
	case binSub:
		return matrix.Sub(a, b)
	case binMul:
		return matrix.Mul(a, b)
	}
	return matrix.Add(a, b)
}

var errStdinTwice = errors.New("only one operand may be read from stdin")

// loadPair reads both operands; either may be "-" but not both.
func loadPair[T matrix.Number](s *session[T], args []string) (*matrix.Dense[T], *matrix.Dense[T], error) {
	if args[0] == "-" && args[1] == "-" {
		return nil, nil, errStdinTwice
	}
	a, err := s.load(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := s.load(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func runBinary[T matrix.Number](op binOp) handler[T] {
	return func(s *session[T], args []string) error {
		a, b, err := loadPair(s, args)
		if err != nil {
			return err
		}
		res, err := apply(op, a, b)
		if err != nil {
			return err
		}
		return s.emitMatrix(res)
	}
}

func newBinaryCmd(s *settings, name, short string, op binOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE:  s.typed(runBinary[int](op), runBinary[float64](op), runBinary[complex128](op)),
	}
}

func newEqCmd(s *settings) *cobra.Command {
	var exact bool
	c := &cobra.Command{
		Use:   "eq A B",
		Short: "Compare two matrices (within epsilon unless --exact)",
		Args:  cobra.ExactArgs(2),
	}
	c.Flags().BoolVar(&exact, "exact", false, "require bitwise-equal elements")
	c.RunE = s.typed(runEq[int](&exact), runEq[float64](&exact), runEq[complex128](&exact))

	return c
}

func runEq[T matrix.Number](exact *bool) handler[T] {
	return func(s *session[T], args []string) error {
		a, b, err := loadPair(s, args)
		if err != nil {
			return err
		}
		if *exact {
			return s.emitBool("equal", matrix.Equal(a, b))
		}
		ok, err := matrix.ApproxEqual(a, b, s.options()...)
		if err != nil {
			return err
		}
		return s.emitBool("equal", ok)
	}
}
