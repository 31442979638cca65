// SPDX-License-Identifier: MIT

// Package ranges converts between sets of integers and their compact
// comma-separated run notation ("1-3,5,7-9").
//
// What:
//
//   - Format collapses any collection of integers into sorted, non-overlapping
//     runs. Duplicates are ignored and input order does not matter.
//   - Expand walks a range string lazily and yields every integer it names,
//     token by token, in input order.
//   - Parse and Runs expose the intermediate []Run form of both directions.
//
// Grammar:
//
//	range_string := token (',' token)*
//	token        := INTEGER | INTEGER '-' INTEGER
//	INTEGER      := [0-9]+
//
// No whitespace, signs or empty tokens are accepted. Format is the canonical
// producer of the grammar and Expand the canonical consumer; for any set S of
// non-negative integers, Expand(Format(S)) yields exactly the members of S.
//
// Complexity:
//
//   - Format: O(n log n) time (sort), O(n) memory.
//   - Expand: O(len(text) + k) time for k yielded values, O(1) extra memory.
//
// Errors:
//
//   - ErrMalformedToken: a token violates the grammar. Returned wrapped in a
//     *FormatError carrying the token and its index.
//
// Example:
//
//	s := ranges.Format([]int{9, 1, 2, 3, 5, 7, 8}) // "1-3,5,7-9"
//	for v, err := range ranges.Expand(s) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(v)
//	}
package ranges
