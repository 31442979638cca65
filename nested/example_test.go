// SPDX-License-Identifier: MIT

package nested_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nestkit/nested"
)

// ExampleAdd sums two 2×2 matrices.
func ExampleAdd() {
	a := nested.Seq(nested.Ints(1, 2), nested.Ints(3, 4))
	b := nested.Seq(nested.Ints(5, 6), nested.Ints(7, 8))

	sum, err := nested.Add(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)
	// Output: [[6,8],[10,12]]
}

// ExampleAdd_mismatch shows the error for operands of different lengths.
func ExampleAdd_mismatch() {
	_, err := nested.Add(nested.Ints(1, 2), nested.Ints(3))
	fmt.Println(err)
	// Output: nested: shape mismatch (length) at [] between operand 0 and operand 1
}

// ExampleDecodeJSON decodes operands from JSON text before summing.
func ExampleDecodeJSON() {
	a, _ := nested.DecodeJSON(strings.NewReader(`[1, [2, 3]]`))
	b, _ := nested.DecodeJSON(strings.NewReader(`[4, [5, 6.5]]`))

	sum, _ := nested.Add(a, b)
	fmt.Println(sum)
	// Output: [5,[7,9.5]]
}
