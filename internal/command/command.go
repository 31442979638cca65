// SPDX-License-Identifier: MIT

// Package command implements the nestkit CLI actions on top of the ranges,
// nested and flatten packages. Each action reads its operands from an
// options struct, writes results to an io.Writer and logs at debug level.
package command

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nestkit/flatten"
	"github.com/katalvlaran/nestkit/nested"
	"github.com/katalvlaran/nestkit/ranges"
)

// Format names a structured text encoding accepted by add and flatten.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported encodings, in the order shown in usage text.
var Formats = []Format{FormatJSON, FormatYAML}

// ParseFormat validates a --input/--output flag value.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Formats, f) {
		return "", errors.Errorf("unsupported format %q, expected one of %v", s, Formats)
	}

	return f, nil
}

// RangesFormatOptions configures RangesFormat.
type RangesFormatOptions struct {
	// Values are decimal integers; when empty, integers are read from Stdin
	// separated by whitespace and/or commas.
	Values []string
	Stdin  io.Reader
}

// RangesFormat prints the run notation of the given integers.
func RangesFormat(w io.Writer, opts *RangesFormatOptions) error {
	words := opts.Values
	if len(words) == 0 && opts.Stdin != nil {
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return errors.Wrapf(err, "reading stdin")
		}
		words = []string{string(data)}
	}

	fields := lo.FlatMap(words, func(word string, _ int) []string {
		return strings.FieldsFunc(word, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
	})

	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return errors.Wrapf(err, "parsing value %q", field)
		}
		values = append(values, v)
	}

	out := ranges.Format(values)
	slog.Debug("Formatted ranges", "values", len(values), "result", out)

	_, err := fmt.Fprintln(w, out)

	return errors.Wrapf(err, "writing result")
}

// RangesExpandOptions configures RangesExpand.
type RangesExpandOptions struct {
	Text  string
	Count bool // print only the number of values
	Sum   bool // print only the sum of values
}

// ErrSumOverflow is returned by RangesExpand when --sum leaves the int range.
var ErrSumOverflow = errors.New("sum overflows int")

// RangesExpand prints every integer named by a range string, one per line,
// or only their count/sum. Values are streamed as they are expanded.
func RangesExpand(w io.Writer, opts *RangesExpandOptions) error {
	bw := bufio.NewWriter(w)
	count, total := 0, 0
	for v, err := range ranges.Expand(opts.Text) {
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return errors.Wrapf(ferr, "writing result")
			}
			return errors.Wrapf(err, "expanding %q", opts.Text)
		}
		count++
		if opts.Sum {
			// Expand only yields non-negative values.
			if total > math.MaxInt-v {
				return errors.Wrapf(ErrSumOverflow, "expanding %q", opts.Text)
			}
			total += v
		}
		if !opts.Count && !opts.Sum {
			if _, err := fmt.Fprintln(bw, v); err != nil {
				return errors.Wrapf(err, "writing result")
			}
		}
	}
	slog.Debug("Expanded ranges", "text", opts.Text, "count", count)

	var err error
	switch {
	case opts.Count && opts.Sum:
		_, err = fmt.Fprintf(bw, "count=%d sum=%d\n", count, total)
	case opts.Count:
		_, err = fmt.Fprintln(bw, count)
	case opts.Sum:
		_, err = fmt.Fprintln(bw, total)
	}
	if err != nil {
		return errors.Wrapf(err, "writing result")
	}

	return errors.Wrapf(bw.Flush(), "writing result")
}

// AddOptions configures Add.
type AddOptions struct {
	// Operands are encoded documents; when empty, Stdin must hold a single
	// document that is a sequence of operands.
	Operands []string
	Stdin    io.Reader
	Input    Format
	Output   Format
}

// Add prints the element-wise sum of the operands.
func Add(w io.Writer, opts *AddOptions) error {
	var operands []nested.Value
	if len(opts.Operands) > 0 {
		for i, doc := range opts.Operands {
			v, err := decodeValue(strings.NewReader(doc), opts.Input)
			if err != nil {
				return errors.Wrapf(err, "decoding operand %d", i)
			}
			operands = append(operands, v)
		}
	} else {
		if opts.Stdin == nil {
			return errors.New("no operands given")
		}
		all, err := decodeValue(opts.Stdin, opts.Input)
		if err != nil {
			return errors.Wrapf(err, "decoding stdin")
		}
		if !all.IsSeq() {
			return errors.New("stdin must hold a sequence of operands")
		}
		operands = all.Items()
	}
	slog.Debug("Adding", "operands", len(operands))

	sum, err := nested.Add(operands...)
	if err != nil {
		return errors.Wrapf(err, "adding %d operands", len(operands))
	}

	return encodeValue(w, sum, opts.Output)
}

func decodeValue(r io.Reader, f Format) (nested.Value, error) {
	if f == FormatYAML {
		return nested.DecodeYAML(r)
	}

	return nested.DecodeJSON(r)
}

func encodeValue(w io.Writer, v nested.Value, f Format) error {
	var (
		data []byte
		err  error
	)
	if f == FormatYAML {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.Marshal(v)
		data = append(data, '\n')
	}
	if err != nil {
		return errors.Wrapf(err, "encoding result")
	}
	_, err = w.Write(data)

	return errors.Wrapf(err, "writing result")
}

// trailing maps the result of decoding past the first document to an error:
// a successful decode means a second document was present.
func trailing(err error) error {
	if err == nil {
		return nested.ErrTrailingData
	}

	return err
}

// FlattenOptions configures Flatten.
type FlattenOptions struct {
	// Document is the encoded structure; when empty it is read from Stdin.
	Document string
	Stdin    io.Reader
	Input    Format
}

// Flatten prints every leaf of the decoded document, one per line. Strings
// are printed verbatim, objects/maps are printed as single leaves.
func Flatten(w io.Writer, opts *FlattenOptions) error {
	var r io.Reader = strings.NewReader(opts.Document)
	if opts.Document == "" {
		if opts.Stdin == nil {
			return errors.New("no document given")
		}
		r = opts.Stdin
	}

	var doc any
	if opts.Input == FormatYAML {
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&doc); err != nil {
			return errors.Wrapf(err, "decoding yaml")
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); err != io.EOF {
			return errors.Wrapf(trailing(err), "decoding yaml")
		}
	} else {
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return errors.Wrapf(err, "decoding json")
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); err != io.EOF {
			return errors.Wrapf(trailing(err), "decoding json")
		}
	}

	bw := bufio.NewWriter(w)
	leaves := 0
	for leaf := range flatten.Deep(doc) {
		leaves++
		if _, err := fmt.Fprintln(bw, leaf); err != nil {
			return errors.Wrapf(err, "writing result")
		}
	}
	slog.Debug("Flattened", "leaves", leaves)

	return errors.Wrapf(bw.Flush(), "writing result")
}
