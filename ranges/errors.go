// SPDX-License-Identifier: MIT

package ranges

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken indicates a token that is neither INTEGER nor
	// INTEGER-INTEGER (extra hyphens, empty parts, non-digits, overflow).
	ErrMalformedToken = errors.New("ranges: malformed token")
)

// FormatError describes the first token of a range string that failed to parse.
// It unwraps to ErrMalformedToken, so errors.Is(err, ErrMalformedToken) holds.
type FormatError struct {
	Token string // offending token, verbatim
	Index int    // zero-based position of the token in the comma-separated list
	Cause error  // underlying strconv error, if any
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ranges: malformed token %q at index %d: %v", e.Token, e.Index, e.Cause)
	}

	return fmt.Sprintf("ranges: malformed token %q at index %d", e.Token, e.Index)
}

// Unwrap returns ErrMalformedToken.
func (e *FormatError) Unwrap() error { return ErrMalformedToken }
