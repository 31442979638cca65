// SPDX-License-Identifier: MIT

package ranges

import "strconv"

// Run is an inclusive interval [Start, End] of consecutive integers.
// A Run with Start == End is a single value.
type Run struct {
	Start int
	End   int
}

// Len returns the number of integers covered by r, or 0 when End < Start.
func (r Run) Len() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start + 1
}

// String renders r as "n" for a single value or "start-end" otherwise.
func (r Run) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}

	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}
