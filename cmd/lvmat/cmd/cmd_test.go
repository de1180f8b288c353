// SPDX-License-Identifier: MIT
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/matrix"
)

// run executes a fresh command tree and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const det49 = "3 3\n2 -3 1\n2 0 -1\n1 4 5\n"

func TestDet(t *testing.T) {
	f := writeFile(t, "a.txt", det49)

	out, err := run(t, "", "det", "--type", "int", f)
	require.NoError(t, err)
	require.Equal(t, "49\n", out)

	out, err = run(t, det49, "det", "-")
	require.NoError(t, err)
	require.Equal(t, "49\n", out) // float64 default
}

func TestInvTextAndHeader(t *testing.T) {
	f := writeFile(t, "a.txt", "2 2\n2 0\n0 2\n")

	out, err := run(t, "", "inv", f)
	require.NoError(t, err)
	require.Equal(t, "0.5\t0\n0\t0.5\n", out)

	out, err = run(t, "", "inv", "--header", f)
	require.NoError(t, err)
	require.Equal(t, "2 2\n0.5\t0\n0\t0.5\n", out)

	// --header output reads back.
	back, err := matrix.Deserialize[float64](strings.NewReader(out))
	require.NoError(t, err)
	v, _ := back.At(1, 1)
	require.Equal(t, 0.5, v)
}

func TestInvSingular(t *testing.T) {
	f := writeFile(t, "s.txt", "2 2 1 2 2 4")
	_, err := run(t, "", "inv", f)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestTransposeYAML(t *testing.T) {
	f := writeFile(t, "a.txt", "2 3 1 2 3 4 5 6")
	out, err := run(t, "", "transpose", "--type", "int", "-o", "yaml", f)
	require.NoError(t, err)

	var doc struct {
		Rows int     `yaml:"rows"`
		Cols int     `yaml:"cols"`
		Data [][]int `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Equal(t, 3, doc.Rows)
	require.Equal(t, 2, doc.Cols)
	require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, doc.Data)
}

func TestDetYAML(t *testing.T) {
	out, err := run(t, det49, "det", "--type", "int", "--output", "yaml", "-")
	require.NoError(t, err)

	var doc map[string]int
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Equal(t, 49, doc["determinant"])
}

func TestMinor(t *testing.T) {
	out, err := run(t, "3 3 1 2 3 4 5 6 7 8 9", "minor", "--type", "int", "-", "1", "1")
	require.NoError(t, err)
	require.Equal(t, "1\t3\n7\t9\n", out)

	_, err = run(t, "3 3 1 2 3 4 5 6 7 8 9", "minor", "--type", "int", "-", "3", "0")
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = run(t, "", "minor", "-", "x", "0")
	require.Error(t, err)
}

func TestBinary(t *testing.T) {
	a := writeFile(t, "a.txt", "2 3 1 2 3 4 5 6")
	b := writeFile(t, "b.txt", "3 2 7 8 9 10 11 12")
	c := writeFile(t, "c.txt", "2 3 1 1 1 1 1 1")

	out, err := run(t, "", "mul", "--type", "int", a, b)
	require.NoError(t, err)
	require.Equal(t, "58\t64\n139\t154\n", out)

	out, err = run(t, "", "add", "--type", "int", a, c)
	require.NoError(t, err)
	require.Equal(t, "2\t3\t4\n5\t6\t7\n", out)

	out, err = run(t, "", "sub", "--type", "int", a, c)
	require.NoError(t, err)
	require.Equal(t, "0\t1\t2\n3\t4\t5\n", out)

	_, err = run(t, "", "add", a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = run(t, "", "add", "-", "-")
	require.ErrorIs(t, err, errStdinTwice)
}

func TestScaleComplex(t *testing.T) {
	out, err := run(t, "1 2 1 (0+2i)", "scale", "--type", "complex128", "-", "(0+1i)")
	require.NoError(t, err)
	require.Equal(t, "(0+1i)\t(-2+0i)\n", out)

	_, err = run(t, "1 1 1", "scale", "--type", "int", "-", "0.5")
	require.ErrorIs(t, err, matrix.ErrFormat)
}

func TestEq(t *testing.T) {
	a := writeFile(t, "a.txt", "1 2 1 2")
	b := writeFile(t, "b.txt", "1 2 1 2.0000000000001")

	out, err := run(t, "", "eq", a, b)
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	out, err = run(t, "", "eq", "--exact", a, b)
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	cfg := writeFile(t, "lvmat.toml", "type = \"int\"\nheader = true\n")
	f := writeFile(t, "a.txt", "1 2 3 4")

	out, err := run(t, "", "scale", "--config", cfg, f, "2")
	require.NoError(t, err)
	require.Equal(t, "1 2\n6\t8\n", out)

	out, err = run(t, "", "scale", "--config", cfg, "--header=false", f, "2")
	require.NoError(t, err)
	require.Equal(t, "6\t8\n", out)

	_, err = run(t, "", "det", "--type", "uint8", f)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestStrictRejectsNaN(t *testing.T) {
	_, err := run(t, "1 1 NaN", "transpose", "--strict", "-")
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	out, err := run(t, "1 1 NaN", "transpose", "-")
	require.NoError(t, err)
	require.Equal(t, "NaN\n", out)
}

func TestVerboseLogsToStderr(t *testing.T) {
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader("1 1 5"))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"det", "-v", "--type", "int", "-"})
	require.NoError(t, root.Execute())

	require.Equal(t, "5\n", out.String())
	require.Contains(t, errOut.String(), "lvmat: read -: 1x1")
}

func TestScaleStrictRejectsInf(t *testing.T) {
	_, err := run(t, "1 2 1 2", "scale", "--strict", "-", "Inf")
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	out, err := run(t, "1 2 1 2", "scale", "-", "Inf")
	require.NoError(t, err)
	require.Equal(t, "+Inf\t+Inf\n", out)
}

func TestEqEpsilonFlag(t *testing.T) {
	a := writeFile(t, "a.txt", "1 2 1 2")
	b := writeFile(t, "b.txt", "1 2 1.1 2")

	out, err := run(t, "", "eq", a, b)
	require.NoError(t, err)
	require.Equal(t, "false\n", out)

	out, err = run(t, "", "eq", "--epsilon", "0.2", a, b)
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	_, err = run(t, "", "eq", "--epsilon", "-1", a, b)
	require.ErrorIs(t, err, config.ErrInvalid)
}
