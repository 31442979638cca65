// SPDX-License-Identifier: MIT

package nested

import (
	"fmt"
	"math/big"
	"slices"
)

// Add returns the element-wise sum of values.
//
// Implementation:
//   - Stage 1: if every operand is a number, return their arithmetic sum
//     (int64 unless any operand is a float).
//   - Stage 2: otherwise every operand must be a sequence of the same length;
//     position i of the result is Add over position i of each operand.
//
// A single operand yields a Value equal to it. Operands are never mutated and
// no partial result is returned on error.
//
// Errors: ErrNoOperands, ErrOverflow when an integer sum leaves the int64
// range, or *ShapeMismatchError (errors.Is ErrShapeMismatch) when numbers
// and sequences are mixed or lengths differ at some level.
// Complexity: O(k·n) time for k operands of n numbers, O(n) memory.
func Add(values ...Value) (Value, error) {
	if len(values) == 0 {
		return Value{}, ErrNoOperands
	}

	return zip(values, nil, sum)
}

// SameShape reports whether all values are congruent, returning the same
// *ShapeMismatchError that Add would.
func SameShape(values ...Value) error {
	if len(values) == 0 {
		return ErrNoOperands
	}
	_, err := zip(values, nil, func([]Value, []int) (Value, error) { return Value{}, nil })

	return err
}

// AddAny is Add over plain Go values: it converts each operand with FromAny
// and the result with ToAny.
func AddAny(values ...any) (any, error) {
	vs := make([]Value, len(values))
	for i, x := range values {
		v, err := FromAny(x)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	out, err := Add(vs...)
	if err != nil {
		return nil, err
	}

	return out.ToAny(), nil
}

// zip walks congruent operands in lockstep, applying leaf to every column of
// numbers. path is the index path of the current level.
func zip(values []Value, path []int, leaf func(column []Value, path []int) (Value, error)) (Value, error) {
	numbers := 0
	for _, v := range values {
		if v.IsNumber() {
			numbers++
		}
	}
	if numbers == len(values) {
		return leaf(values, path)
	}
	if numbers > 0 {
		first := values[0].IsNumber()
		for j, v := range values[1:] {
			if v.IsNumber() != first {
				return Value{}, &ShapeMismatchError{Path: append([]int{}, path...), Reason: ReasonKind, Operand: j + 1}
			}
		}
	}

	n := values[0].Len()
	for j, v := range values[1:] {
		if v.Len() != n {
			return Value{}, &ShapeMismatchError{Path: append([]int{}, path...), Reason: ReasonLength, Operand: j + 1}
		}
	}

	out := make([]Value, n)
	column := make([]Value, len(values))
	for i := 0; i < n; i++ {
		for j, v := range values {
			column[j] = v.items[i]
		}
		r, err := zip(column, append(path, i), leaf)
		if err != nil {
			return Value{}, err
		}
		out[i] = r
	}

	return Value{kind: KindSeq, items: out}, nil
}

// sum adds a column of numbers, promoting to float64 if any is a float.
// Integer columns whose exact sum leaves the int64 range yield ErrOverflow;
// intermediate overflow that cancels out is not an error.
func sum(column []Value, path []int) (Value, error) {
	if slices.ContainsFunc(column, func(v Value) bool { return v.kind == KindFloat }) {
		var f float64
		for _, v := range column {
			f += v.Float64()
		}

		return Float(f), nil
	}

	var total int64
	for _, v := range column {
		next := total + v.i
		if (v.i > 0 && next < total) || (v.i < 0 && next > total) {
			return bigSum(column, path)
		}
		total = next
	}

	return Int(total), nil
}

// bigSum is the exact slow path of sum once int64 arithmetic has wrapped.
func bigSum(column []Value, path []int) (Value, error) {
	var acc, x big.Int
	for _, v := range column {
		acc.Add(&acc, x.SetInt64(v.i))
	}
	if !acc.IsInt64() {
		return Value{}, fmt.Errorf("%w: sum %s at %v", ErrOverflow, acc.String(), append([]int{}, path...))
	}

	return Int(acc.Int64()), nil
}

// Shape returns the per-level lengths of a rectangular value: [] for a number,
// [2,3] for [[1,2,3],[4,5,6]]. ok is false when siblings disagree in shape.
func Shape(v Value) (dims []int, ok bool) {
	if v.IsNumber() {
		return []int{}, true
	}
	dims = []int{v.Len()}
	if v.Len() == 0 {
		return dims, true
	}
	inner, ok := Shape(v.items[0])
	if !ok {
		return nil, false
	}
	for _, it := range v.items[1:] {
		d, ok := Shape(it)
		if !ok || !slices.Equal(d, inner) {
			return nil, false
		}
	}

	return append(dims, inner...), true
}
