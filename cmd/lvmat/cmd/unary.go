// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

func newDetCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "Determinant by first-row cofactor expansion",
		Args:  cobra.ExactArgs(1),
		RunE:  s.typed(runDet[int], runDet[float64], runDet[complex128]),
	}
}

func runDet[T matrix.Number](s *session[T], args []string) error {
	m, err := s.load(args[0])
	if err != nil {
		return err
	}
	d, err := m.Determinant()
	if err != nil {
		return err
	}
	return s.emitScalar("determinant", d)
}

func newInvCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "inv FILE",
		Short: "Inverse by the adjugate method",
		Long: `Inverse by the adjugate method.

With --type int every element of the adjugate is divided by the
determinant using integer division, so the result is exact only for
unimodular inputs (det = ±1).`,
		Args: cobra.ExactArgs(1),
		RunE: s.typed(runInv[int], runInv[float64], runInv[complex128]),
	}
}

func runInv[T matrix.Number](s *session[T], args []string) error {
	m, err := s.load(args[0])
	if err != nil {
		return err
	}
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	return s.emitMatrix(inv)
}

func newTransposeCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "transpose FILE",
		Short: "Swap rows and columns",
		Args:  cobra.ExactArgs(1),
		RunE:  s.typed(runTranspose[int], runTranspose[float64], runTranspose[complex128]),
	}
}

func runTranspose[T matrix.Number](s *session[T], args []string) error {
	m, err := s.load(args[0])
	if err != nil {
		return err
	}
	tr, err := m.Transpose()
	if err != nil {
		return err
	}
	return s.emitMatrix(tr)
}

func newMinorCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "minor FILE ROW COL",
		Short: "Drop one row and one column (0-based)",
		Args:  cobra.ExactArgs(3),
		RunE:  s.typed(runMinor[int], runMinor[float64], runMinor[complex128]),
	}
}

func runMinor[T matrix.Number](s *session[T], args []string) error {
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("row %q: %w", args[1], err)
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("col %q: %w", args[2], err)
	}
	m, err := s.load(args[0])
	if err != nil {
		return err
	}
	mn, err := m.Minor(row, col)
	if err != nil {
		return err
	}
	return s.emitMatrix(mn)
}

func newScaleCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "scale FILE K",
		Short: "Multiply every element by K",
		Args:  cobra.ExactArgs(2),
		RunE:  s.typed(runScale[int], runScale[float64], runScale[complex128]),
	}
}

func runScale[T matrix.Number](s *session[T], args []string) error {
	k, err := matrix.ParseValue[T](args[1])
	if err != nil {
		return err
	}
	m, err := s.load(args[0])
	if err != nil {
		return err
	}
	res, err := matrix.Scale(m, k)
	if err != nil {
		return err
	}
	return s.emitMatrix(res)
}
