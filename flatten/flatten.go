// SPDX-License-Identifier: MIT

package flatten

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// ErrLeafType indicates a leaf of an unexpected type in a typed collector.
var ErrLeafType = errors.New("flatten: unexpected leaf type")

// Iterable is implemented by user containers that Deep should descend into.
type Iterable interface {
	All() iter.Seq[any]
}

// frame is one level of the traversal stack.
type frame struct {
	next func() (any, bool)
	stop func()
}

func noop() {}

// open returns a frame over the children of x, or ok=false when x is a leaf.
func open(x any) (f frame, ok bool) {
	switch t := x.(type) {
	case nil, string, []byte:
		return frame{}, false
	case Iterable:
		next, stop := iter.Pull(t.All())
		return frame{next: next, stop: stop}, true
	case iter.Seq[any]:
		next, stop := iter.Pull(t)
		return frame{next: next, stop: stop}, true
	case func(func(any) bool):
		next, stop := iter.Pull(iter.Seq[any](t))
		return frame{next: next, stop: stop}, true
	}

	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return frame{}, false
	}
	i := 0
	next := func() (any, bool) {
		if i >= rv.Len() {
			return nil, false
		}
		it := rv.Index(i).Interface()
		i++
		return it, true
	}

	return frame{next: next, stop: noop}, true
}

// Deep yields every leaf of v in depth-first order. A leaf v yields itself.
// Empty containers contribute nothing. Each range over the result traverses
// v again from the start.
// Complexity: O(n) for n nodes; memory O(depth).
func Deep(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		root, ok := open(v)
		if !ok {
			yield(v)
			return
		}

		stack := []frame{root}
		defer func() {
			for _, f := range stack {
				f.stop()
			}
		}()

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			x, more := top.next()
			if !more {
				top.stop()
				stack = stack[:len(stack)-1]
				continue
			}
			if child, ok := open(x); ok {
				stack = append(stack, child)
				continue
			}
			if !yield(x) {
				return
			}
		}
	}
}

// Collect returns all leaves of v.
func Collect(v any) []any {
	return slices.Collect(Deep(v))
}

// Strings returns all leaves of v, which must all be strings.
func Strings(v any) ([]string, error) {
	var out []string
	for leaf := range Deep(v) {
		s, ok := leaf.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T (want string)", ErrLeafType, leaf)
		}
		out = append(out, s)
	}

	return out, nil
}
