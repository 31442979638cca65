// SPDX-License-Identifier: MIT

package ranges

import (
	"iter"
	"slices"
	"strings"
)

// Runs groups values into maximal runs of consecutive integers.
//
// Implementation:
//   - Stage 1: copy and sort ascending, drop duplicates (input is not mutated).
//   - Stage 2: single scan; v == end+1 extends the open run, any gap closes it.
//
// The result is sorted by Start and runs never overlap or touch.
// Complexity: O(n log n) time, O(n) memory.
func Runs(values []int) []Run {
	if len(values) == 0 {
		return nil
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	out := make([]Run, 0, len(sorted))
	cur := Run{Start: sorted[0], End: sorted[0]}
	for _, v := range sorted[1:] {
		if v == cur.End+1 {
			cur.End = v
			continue
		}
		out = append(out, cur)
		cur = Run{Start: v, End: v}
	}

	return append(out, cur)
}

// Format renders values as a comma-separated list of runs, e.g.
// [1,2,3,5,7,8,9] → "1-3,5,7-9". Empty input yields "".
// Complexity: O(n log n).
func Format(values []int) string {
	runs := Runs(values)
	if len(runs) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range runs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(r.String())
	}

	return sb.String()
}

// FormatSeq is Format for an arbitrary integer sequence. The sequence must be
// finite; it is drained before any output is produced.
func FormatSeq(seq iter.Seq[int]) string {
	return Format(slices.Collect(seq))
}
