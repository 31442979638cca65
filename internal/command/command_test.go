// SPDX-License-Identifier: MIT

package command_test

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nestkit/internal/command"
	"github.com/katalvlaran/nestkit/nested"
	"github.com/katalvlaran/nestkit/ranges"
)

// TestParseFormat accepts known encodings case-insensitively.
func TestParseFormat(t *testing.T) {
	f, err := command.ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, command.FormatYAML, f)

	_, err = command.ParseFormat("toml")
	assert.EqualError(t, err, `unsupported format "toml", expected one of [json yaml]`)
}

// TestRangesFormat covers argument and stdin input.
func TestRangesFormat(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, command.RangesFormat(&out, &command.RangesFormatOptions{
		Values: []string{"9", "1,2", "3", "5", "7,8"},
	}))
	assert.Equal(t, "1-3,5,7-9\n", out.String())

	out.Reset()
	require.NoError(t, command.RangesFormat(&out, &command.RangesFormatOptions{
		Stdin: strings.NewReader("4 5\n6,10\n"),
	}))
	assert.Equal(t, "4-6,10\n", out.String())

	out.Reset()
	require.NoError(t, command.RangesFormat(&out, &command.RangesFormatOptions{}))
	assert.Equal(t, "\n", out.String())

	err := command.RangesFormat(&out, &command.RangesFormatOptions{Values: []string{"1", "x"}})
	assert.ErrorContains(t, err, `parsing value "x"`)
}

// TestRangesExpand covers listing, count/sum and errors.
func TestRangesExpand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, command.RangesExpand(&out, &command.RangesExpandOptions{Text: "1-3,5"}))
	assert.Equal(t, "1\n2\n3\n5\n", out.String())

	out.Reset()
	require.NoError(t, command.RangesExpand(&out, &command.RangesExpandOptions{Text: "1-3,5", Count: true}))
	assert.Equal(t, "4\n", out.String())

	out.Reset()
	require.NoError(t, command.RangesExpand(&out, &command.RangesExpandOptions{Text: "1-3,5", Sum: true}))
	assert.Equal(t, "11\n", out.String())

	out.Reset()
	require.NoError(t, command.RangesExpand(&out, &command.RangesExpandOptions{Text: "1-3,5", Count: true, Sum: true}))
	assert.Equal(t, "count=4 sum=11\n", out.String())

	out.Reset()
	err := command.RangesExpand(&out, &command.RangesExpandOptions{Text: "1-2,1-2-3"})
	assert.ErrorIs(t, err, ranges.ErrMalformedToken)
	assert.Equal(t, "1\n2\n", out.String(), "values before the bad token are flushed")
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

// TestRangesExpand_WriteErrors surfaces write failures on every output path.
func TestRangesExpand_WriteErrors(t *testing.T) {
	err := command.RangesExpand(failingWriter{}, &command.RangesExpandOptions{Text: "1-3", Count: true})
	assert.ErrorIs(t, err, io.ErrClosedPipe)

	err = command.RangesExpand(failingWriter{}, &command.RangesExpandOptions{Text: "1,x"})
	assert.ErrorIs(t, err, io.ErrClosedPipe, "flush failure wins over the parse error")
}

// TestRangesExpand_SumOverflow reports sums that leave the int range.
func TestRangesExpand_SumOverflow(t *testing.T) {
	var out bytes.Buffer
	err := command.RangesExpand(&out, &command.RangesExpandOptions{
		Text: fmt.Sprintf("%d,1", math.MaxInt),
		Sum:  true,
	})
	assert.ErrorIs(t, err, command.ErrSumOverflow)
	assert.Empty(t, out.String())

	require.NoError(t, command.RangesExpand(&out, &command.RangesExpandOptions{
		Text:  fmt.Sprintf("%d,1", math.MaxInt),
		Count: true,
	}))
	assert.Equal(t, "2\n", out.String(), "count alone never sums")
}

// TestRangesFormat_Negative accepts negative values passed after "--".
func TestRangesFormat_Negative(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, command.RangesFormat(&out, &command.RangesFormatOptions{
		Values: []string{"-1", "2", "0"},
	}))
	assert.Equal(t, "-1-0,2\n", out.String())
}

// TestAdd_TrailingInput rejects input beyond the first document.
func TestAdd_TrailingInput(t *testing.T) {
	var out bytes.Buffer
	err := command.Add(&out, &command.AddOptions{
		Stdin: strings.NewReader(`[1,2] [3,4]`),
		Input: command.FormatJSON,
	})
	assert.ErrorIs(t, err, nested.ErrTrailingData)

	err = command.Add(&out, &command.AddOptions{
		Operands: []string{`[1,2]garbage`, `[3,4]`},
		Input:    command.FormatJSON,
	})
	assert.ErrorContains(t, err, "decoding operand 0")

	err = command.Add(&out, &command.AddOptions{
		Stdin: strings.NewReader("[[1],[2]]\n---\n[[3],[4]]\n"),
		Input: command.FormatYAML,
	})
	assert.ErrorIs(t, err, nested.ErrTrailingData)
	assert.Empty(t, out.String())
}

// TestAdd covers JSON and YAML operands, stdin input and shape errors.
func TestAdd(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, command.Add(&out, &command.AddOptions{
		Operands: []string{`[[1,2],[3,4]]`, `[[5,6],[7,8]]`},
		Input:    command.FormatJSON,
		Output:   command.FormatJSON,
	}))
	assert.Equal(t, "[[6,8],[10,12]]\n", out.String())

	out.Reset()
	require.NoError(t, command.Add(&out, &command.AddOptions{
		Operands: []string{"[1, 2]", "[0.5, 1]"},
		Input:    command.FormatYAML,
		Output:   command.FormatYAML,
	}))
	assert.Equal(t, "- 1.5\n- 3\n", out.String())

	out.Reset()
	require.NoError(t, command.Add(&out, &command.AddOptions{
		Stdin:  strings.NewReader(`[[1,[2]],[3,[4]],[5,[6]]]`),
		Input:  command.FormatJSON,
		Output: command.FormatJSON,
	}))
	assert.Equal(t, "[9,[12]]\n", out.String())

	err := command.Add(&out, &command.AddOptions{
		Operands: []string{`[1,2]`, `[3]`},
		Input:    command.FormatJSON,
	})
	assert.ErrorIs(t, err, nested.ErrShapeMismatch)

	err = command.Add(&out, &command.AddOptions{
		Operands: []string{`{"a":1}`},
		Input:    command.FormatJSON,
	})
	assert.ErrorIs(t, err, nested.ErrUnsupportedType)

	err = command.Add(&out, &command.AddOptions{
		Stdin: strings.NewReader(`5`),
		Input: command.FormatJSON,
	})
	assert.EqualError(t, err, "stdin must hold a sequence of operands")

	err = command.Add(&out, &command.AddOptions{})
	assert.EqualError(t, err, "no operands given")
}

// TestFlatten_TrailingInput rejects a second JSON value or YAML document.
func TestFlatten_TrailingInput(t *testing.T) {
	var out bytes.Buffer
	err := command.Flatten(&out, &command.FlattenOptions{Document: `[1] [2]`, Input: command.FormatJSON})
	assert.ErrorIs(t, err, nested.ErrTrailingData)

	err = command.Flatten(&out, &command.FlattenOptions{Document: `[1] }}}`, Input: command.FormatJSON})
	assert.ErrorContains(t, err, "decoding json")

	err = command.Flatten(&out, &command.FlattenOptions{Document: "[a]\n---\n[b]\n", Input: command.FormatYAML})
	assert.ErrorIs(t, err, nested.ErrTrailingData)
	assert.Empty(t, out.String())
}

// TestFlatten prints leaves from JSON and YAML documents.
func TestFlatten(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, command.Flatten(&out, &command.FlattenOptions{
		Document: `[1,[2,[3,4],5],"ab",[6]]`,
		Input:    command.FormatJSON,
	}))
	assert.Equal(t, "1\n2\n3\n4\n5\nab\n6\n", out.String())

	out.Reset()
	require.NoError(t, command.Flatten(&out, &command.FlattenOptions{
		Stdin: strings.NewReader("- a\n- [b, c]\n- [[d]]\n"),
		Input: command.FormatYAML,
	}))
	assert.Equal(t, "a\nb\nc\nd\n", out.String())

	err := command.Flatten(&out, &command.FlattenOptions{Document: `[1,`, Input: command.FormatJSON})
	assert.ErrorContains(t, err, "decoding json")

	err = command.Flatten(&out, &command.FlattenOptions{})
	assert.EqualError(t, err, "no document given")
}
