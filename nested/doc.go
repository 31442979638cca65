// SPDX-License-Identifier: MIT

// Package nested adds arbitrarily nested numeric structures element-wise.
//
// What:
//
//   - Value is a tagged union: a number (int64 or float64) or an ordered
//     sequence of Values, to any depth.
//   - Add sums two or more Values of identical shape: numbers are added,
//     sequences are zipped index by index and summed recursively.
//   - Shape / SameShape inspect and validate congruence without summing.
//   - FromAny / ToAny bridge to plain Go values; Value speaks JSON
//     (goccy/go-json) and YAML (gopkg.in/yaml.v3).
//
// Shape rules:
//
//	Add(1, 2)                       → 3
//	Add([1,2], [3,4])               → [4,6]
//	Add([1,[2,3]], [4,[5,6]])       → [5,[7,9]]
//	Add([1,2], [3])                 → ShapeMismatchError (length)
//	Add([1,2], 3)                   → ShapeMismatchError (kind)
//	Add([], [])                     → []
//
// Integers stay integers; a float anywhere at a numeric position promotes
// that position's sum to float64.
//
// Errors:
//
//   - ErrShapeMismatch: operands disagree in kind or length at some level.
//     Returned as *ShapeMismatchError with the index path of that level.
//   - ErrNoOperands: Add called with no arguments.
//   - ErrOverflow: an integer sum does not fit in int64.
//   - ErrUnsupportedType: a Go or JSON/YAML value has no numeric meaning.
//   - ErrTrailingData: DecodeJSON/DecodeYAML found more than one document.
//
// Complexity: Add is O(k·n) for k operands of n numbers each; recursion depth
// equals nesting depth.
package nested
