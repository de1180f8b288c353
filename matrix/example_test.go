// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvmat/matrix"
)

// ExampleDense_Determinant expands a 3×3 along its first row.
func ExampleDense_Determinant() {
	a, _ := matrix.NewFromRows([][]int{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}})
	d, _ := a.Determinant()
	fmt.Println("det =", d)
	// Output: det = 49
}

// ExampleDense_Inverse inverts a diagonal matrix with the adjugate method.
func ExampleDense_Inverse() {
	a, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 2}})
	inv, _ := a.Inverse()
	fmt.Print(inv)
	// Output:
	// [0.5, 0]
	// [0, 0.5]
}

// ExampleMul multiplies a 2×3 by a 3×2.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewFromRows([][]int{{7, 8}, {9, 10}, {11, 12}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleEncode writes the header line and the tab-separated body.
func ExampleEncode() {
	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
	_ = matrix.Encode(os.Stdout, a)
	// Output:
	// 2 2
	// 1	2
	// 3	4
}

// ExampleDeserialize reads a matrix from whitespace-separated text.
func ExampleDeserialize() {
	m, err := matrix.Deserialize[float64](strings.NewReader("2 3\n1 2 3\n4 5 6.5"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Rows(), m.Cols())
	fmt.Print(m)
	// Output:
	// 2 3
	// [1, 2, 3]
	// [4, 5, 6.5]
}

// ExampleDense_Inverse_singular shows sentinel matching on failure.
func ExampleDense_Inverse_singular() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := a.Inverse()
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output: true
}

// ExampleDense_AddRowMultiple eliminates below the first pivot.
func ExampleDense_AddRowMultiple() {
	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
	_ = a.AddRowMultiple(0, 1, -3)
	fmt.Print(a)
	// Output:
	// [1, 2]
	// [0, -2]
}
