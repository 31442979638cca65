// SPDX-License-Identifier: MIT

// Package flatten walks arbitrarily nested sequences and yields their leaves
// depth-first, lazily.
//
// What counts as a container:
//
//   - slices and arrays of any element type ([]any, []int, [][]string, ...);
//   - iter.Seq[any] and plain func(func(any) bool) iterators;
//   - values implementing Iterable.
//
// Everything else is a leaf: numbers, structs, pointers, maps, nil, and in
// particular strings and []byte, which are never split into characters or
// bytes.
//
// Deep keeps an explicit stack of pull frames instead of recursing, so it
// streams from infinite iterators, stops as soon as the consumer does, and
// releases every pulled iterator on the way out.
//
// Example:
//
//	for leaf := range flatten.Deep([]any{1, []any{2, []int{3, 4}, 5}, "ab", []int{6}}) {
//		fmt.Print(leaf, " ") // 1 2 3 4 5 ab 6
//	}
package flatten
