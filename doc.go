// SPDX-License-Identifier: MIT

// Package nestkit is a small set of pure, stateless transforms over integer
// sets and nested sequences.
//
// 🚀 What is inside?
//
//	Three independent packages, none of which imports another:
//		• ranges:  Format []int → "1-3,5,7-9" and lazily Expand it back
//		• nested:  Add arbitrarily nested numeric structures element-wise,
//		            with shape checks and JSON/YAML codecs
//		• flatten: Deep, a lazy depth-first leaf iterator that keeps strings whole
//
// ✨ Guarantees
//
//   - No shared state, no locks, no I/O: every call is independent.
//   - Errors are package sentinels (ranges.ErrMalformedToken,
//     nested.ErrShapeMismatch, ...) matched with errors.Is; structured
//     details via errors.As (*ranges.FormatError, *nested.ShapeMismatchError).
//   - Lazy results are iter.Seq / iter.Seq2 values that re-run on every range.
//
// Quick example:
//
//	ranges.Format([]int{1, 2, 3, 5, 7, 8, 9})        // "1-3,5,7-9"
//	ranges.ExpandAll("1-3,5")                        // [1 2 3 5]
//	nested.Add(nested.Ints(1, 2), nested.Ints(3, 4)) // [4,6]
//	flatten.Collect([]any{1, []any{"ab", []int{2}}}) // [1 ab 2]
//
// The nestkit command (cmd/nestkit) exposes the same operations on the shell.
//
//	go install github.com/katalvlaran/nestkit/cmd/nestkit@latest
package nestkit
