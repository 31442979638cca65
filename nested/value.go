// SPDX-License-Identifier: MIT

package nested

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Kind discriminates the variants of Value.
type Kind uint8

const (
	// KindInt holds an int64. The zero Value is Int(0).
	KindInt Kind = iota
	// KindFloat holds a float64.
	KindFloat
	// KindSeq holds an ordered sequence of Values.
	KindSeq
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindSeq:
		return "seq"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is either a number or a sequence of Values.
// Values are immutable once built; constructors copy their inputs.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	items []Value
}

// Int returns a numeric Value holding n.
func Int(n int64) Value { return Value{kind: KindInt, i: n} }

// Float returns a numeric Value holding f.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Seq returns a sequence Value holding a copy of items.
// Seq() is the empty sequence, distinct from the number 0.
func Seq(items ...Value) Value {
	return Value{kind: KindSeq, items: slices.Clone(items)}
}

// Ints is shorthand for Seq(Int(ns[0]), Int(ns[1]), ...).
func Ints(ns ...int64) Value {
	items := make([]Value, len(ns))
	for i, n := range ns {
		items[i] = Int(n)
	}

	return Value{kind: KindSeq, items: items}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v is an int or a float.
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// IsSeq reports whether v is a sequence.
func (v Value) IsSeq() bool { return v.kind == KindSeq }

// Len returns the number of items of a sequence, or 0 for a number.
func (v Value) Len() int { return len(v.items) }

// At returns the i-th item of a sequence. It panics if v is not a sequence
// or i is out of range, like slice indexing.
func (v Value) At(i int) Value {
	if v.kind != KindSeq {
		panic("nested: At on " + v.kind.String())
	}

	return v.items[i]
}

// Items returns a copy of the items of a sequence (nil for a number).
func (v Value) Items() []Value { return slices.Clone(v.items) }

// Int64 returns the value of a number, truncating floats.
func (v Value) Int64() int64 {
	if v.kind == KindFloat {
		return int64(v.f)
	}

	return v.i
}

// Float64 returns the value of a number as float64.
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}

	return v.f
}

// Equal reports whether v and w have the same shape, kinds and values.
// Int(1) and Float(1) are not equal.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == w.i
	case KindFloat:
		return v.f == w.f
	default:
		return slices.EqualFunc(v.items, w.items, Value.Equal)
	}
}

// String renders v in JSON-like notation, e.g. "[1,[2.5,3]]".
func (v Value) String() string {
	var sb strings.Builder
	v.writeTo(&sb)

	return sb.String()
}

func (v Value) writeTo(sb *strings.Builder) {
	switch v.kind {
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	default:
		sb.WriteByte('[')
		for i, it := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			it.writeTo(sb)
		}
		sb.WriteByte(']')
	}
}

// ToAny converts v to plain Go values: int64, float64 or []any.
func (v Value) ToAny() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		out := make([]any, len(v.items))
		for i, it := range v.items {
			out[i] = it.ToAny()
		}

		return out
	}
}

// number is satisfied by json.Number (stdlib and goccy/go-json alike).
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// FromAny converts a Go value into a Value.
//
// Accepted: Value, every integer and float kind, json.Number, and slices or
// arrays of accepted values (including []any trees). Strings, maps, structs,
// booleans and nil yield ErrUnsupportedType; unsigned values above
// math.MaxInt64 do too.
func FromAny(x any) (Value, error) {
	v, err := fromAny(x, nil)
	if err != nil {
		return Value{}, nestedErrorf("FromAny", err)
	}

	return v, nil
}

func fromAny(x any, path []int) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case number:
		if n, err := t.Int64(); err == nil {
			return Int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: number %q at %v", ErrUnsupportedType, t.String(), path)
		}

		return Float(f), nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d overflows int64 at %v", ErrUnsupportedType, u, path)
		}

		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			it, err := fromAny(rv.Index(i).Interface(), append(path, i))
			if err != nil {
				return Value{}, err
			}
			items[i] = it
		}

		return Value{kind: KindSeq, items: items}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T at %v", ErrUnsupportedType, x, path)
	}
}
