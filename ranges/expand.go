// SPDX-License-Identifier: MIT

package ranges

import (
	"iter"
	"strconv"
	"strings"
)

// tokens yields each comma-separated token of text with its index.
// Empty text has no tokens; any other text has at least one (possibly empty).
func tokens(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if text == "" {
			return
		}
		for i := 0; ; i++ {
			cut := strings.IndexByte(text, ',')
			if cut < 0 {
				yield(i, text)
				return
			}
			if !yield(i, text[:cut]) {
				return
			}
			text = text[cut+1:]
		}
	}
}

// parseToken converts a single INTEGER or INTEGER-INTEGER token into a Run.
func parseToken(tok string, index int) (Run, error) {
	first, second, isRange := strings.Cut(tok, "-")
	if isRange && strings.Contains(second, "-") {
		return Run{}, &FormatError{Token: tok, Index: index}
	}

	a, err := parseUint(first)
	if err != nil {
		return Run{}, &FormatError{Token: tok, Index: index, Cause: err}
	}
	if !isRange {
		return Run{Start: a, End: a}, nil
	}

	b, err := parseUint(second)
	if err != nil {
		return Run{}, &FormatError{Token: tok, Index: index, Cause: err}
	}

	return Run{Start: a, End: b}, nil
}

// parseUint accepts only a non-empty run of ASCII digits that fits in int.
// strconv.Atoi alone would also let through signs ("+5").
func parseUint(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// unwrap *strconv.NumError to keep the message short; the token is
		// already reported by FormatError.
		if ne, ok := err.(*strconv.NumError); ok {
			return 0, ne.Err
		}

		return 0, err
	}

	return n, nil
}

// Parse tokenizes text into runs, in input order, without expanding them.
// Tokens "a-b" with a > b are kept as-is and have Len() == 0.
// Empty text yields (nil, nil).
func Parse(text string) ([]Run, error) {
	var out []Run
	for i, tok := range tokens(text) {
		r, err := parseToken(tok, i)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// Validate reports the first grammar violation in text, or nil.
func Validate(text string) error {
	_, err := Parse(text)

	return err
}

// Expand lazily yields every integer named by text.
//
// Tokens are processed in input order and never sorted or merged; "a-b"
// yields a, a+1, ..., b and yields nothing when a > b. When a malformed token
// is reached, the sequence yields (0, *FormatError) once and stops; values
// already yielded stay valid. Each range over the returned sequence parses
// text again from the start.
//
// Example:
//
//	for v, err := range ranges.Expand("1-3,5") {
//		if err != nil {
//			return err
//		}
//		use(v) // 1, 2, 3, 5
//	}
func Expand(text string) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for i, tok := range tokens(text) {
			r, err := parseToken(tok, i)
			if err != nil {
				yield(0, err)
				return
			}
			if r.End < r.Start {
				continue
			}
			for v := r.Start; ; v++ {
				if !yield(v, nil) {
					return
				}
				// compare before incrementing so End == MaxInt terminates
				if v == r.End {
					break
				}
			}
		}
	}
}

// ExpandAll materialises Expand(text). On error no partial slice is returned.
func ExpandAll(text string) ([]int, error) {
	var out []int
	for v, err := range Expand(text) {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
