// SPDX-License-Identifier: MIT

// Package cmd implements the lvmat command tree.
package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/internal/config"
)

// settings is shared by every subcommand of one root instance.
type settings struct {
	cfgFile string
	typ     string
	header  bool
	output  string
	epsilon float64
	strict  bool
	verbose bool

	cfg config.Config
	log *log.Logger
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:   "lvmat",
		Short: "lvmat - dense matrix algebra on text files",
		Long: `lvmat reads matrices in the "<rows> <cols> v00 v01 ..." text format
and applies one operation of the matrix package to them.

FILE may be "-" to read standard input.

Commands:
  det        determinant by cofactor expansion
  inv        inverse by the adjugate method
  transpose  rows and columns swapped
  minor      matrix without one row and one column
  add, sub   element-wise sum and difference
  mul        matrix product
  scale      multiply by a scalar
  eq         equality (exact or within --epsilon)`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return s.resolve(c)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.cfgFile, "config", "", "config file (TOML)")
	pf.StringVar(&s.typ, "type", config.DefaultType, "element type: int|float64|complex128")
	pf.BoolVar(&s.header, "header", false, `prefix matrix output with the "<rows> <cols>" line`)
	pf.StringVarP(&s.output, "output", "o", config.DefaultOutput, "output format: text|yaml")
	pf.Float64Var(&s.epsilon, "epsilon", config.DefaultEpsilon, "absolute tolerance used by eq")
	pf.BoolVar(&s.strict, "strict", false, "reject NaN and Inf values")
	pf.BoolVarP(&s.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newDetCmd(s),
		newInvCmd(s),
		newTransposeCmd(s),
		newMinorCmd(s),
		newBinaryCmd(s, "add", "Element-wise sum A + B", binAdd),
		newBinaryCmd(s, "sub", "Element-wise difference A - B", binSub),
		newBinaryCmd(s, "mul", "Matrix product A · B", binMul),
		newScaleCmd(s),
		newEqCmd(s),
	)

	return root
}

// Execute runs the lvmat command tree with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// resolve loads the config and lets explicitly set flags override it.
func (s *settings) resolve(c *cobra.Command) error {
	cfg, err := config.Load(s.cfgFile)
	if err != nil {
		return err
	}

	flags := c.Flags()
	if flags.Changed("type") {
		cfg.Type = s.typ
	}
	if flags.Changed("header") {
		cfg.Header = s.header
	}
	if flags.Changed("output") {
		cfg.Output = s.output
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon = s.epsilon
	}
	if flags.Changed("strict") {
		cfg.Strict = s.strict
	}
	if flags.Changed("verbose") {
		cfg.Verbose = s.verbose
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg

	var w io.Writer = io.Discard
	if cfg.Verbose {
		w = c.ErrOrStderr()
	}
	s.log = log.New(w, "lvmat: ", 0)
	s.log.Printf("type=%s output=%s header=%t strict=%t", cfg.Type, cfg.Output, cfg.Header, cfg.Strict)

	return nil
}
