// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/nestkit/internal/command"
)

var version = "(devel)"

func setupLogger(verbose bool) error {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logW := os.Stderr

	slog.SetDefault(slog.New(tint.NewHandler(logW, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(logW.Fd()),
	})))

	return nil
}

// newApp builds the nestkit command tree reading operands from stdin and
// writing results to stdout.
func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	var verbose bool
	verboseFlag := &cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "verbose output (includes debug)",
		EnvVars:     []string{"NESTKIT_VERBOSE"},
		Destination: &verbose,
	}

	formats := strings.Join(lo.Map(command.Formats, func(f command.Format, _ int) string { return string(f) }), ", ")

	var input string
	inputFlag := &cli.StringFlag{
		Name:        "input",
		Aliases:     []string{"i"},
		Usage:       "input format, one of " + formats,
		EnvVars:     []string{"NESTKIT_INPUT"},
		Value:       string(command.FormatJSON),
		Destination: &input,
	}

	var output string
	outputFlag := &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "output format, one of " + formats,
		EnvVars:     []string{"NESTKIT_OUTPUT"},
		Value:       string(command.FormatJSON),
		Destination: &output,
	}

	before := func(_ *cli.Context) error {
		return setupLogger(verbose)
	}

	return &cli.App{
		Name:                   "nestkit",
		Writer:                 stdout,
		Usage:                  "range notation and nested structure utilities",
		Version:                version,
		Suggest:                true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			verboseFlag,
		},
		Commands: []*cli.Command{
			{
				Name:  "ranges",
				Usage: "Range notation commands",
				Flags: []cli.Flag{
					verboseFlag,
				},
				Subcommands: []*cli.Command{
					{
						Name:      "format",
						Usage:     "Collapse integers into run notation, e.g. 1-3,5",
						ArgsUsage: "[--] [int...] (reads stdin when empty; put -- before negative values)",
						Flags: []cli.Flag{
							verboseFlag,
						},
						Before: before,
						Action: func(cCtx *cli.Context) error {
							return command.RangesFormat(cCtx.App.Writer, &command.RangesFormatOptions{
								Values: cCtx.Args().Slice(),
								Stdin:  stdin,
							})
						},
					},
					{
						Name:      "expand",
						Usage:     "Print every integer named by a range string",
						ArgsUsage: "<ranges>",
						Flags: []cli.Flag{
							verboseFlag,
							&cli.BoolFlag{
								Name:  "count",
								Usage: "print only the number of values",
							},
							&cli.BoolFlag{
								Name:  "sum",
								Usage: "print only the sum of values",
							},
						},
						Before: before,
						Action: func(cCtx *cli.Context) error {
							if cCtx.NArg() != 1 {
								return cli.Exit("expected exactly one range string", 1)
							}

							return command.RangesExpand(cCtx.App.Writer, &command.RangesExpandOptions{
								Text:  cCtx.Args().First(),
								Count: cCtx.Bool("count"),
								Sum:   cCtx.Bool("sum"),
							})
						},
					},
				},
			},
			{
				Name:      "add",
				Usage:     "Add nested numeric structures element-wise",
				ArgsUsage: "<operand> [operand...] (reads a sequence of operands from stdin when empty)",
				Flags: []cli.Flag{
					verboseFlag,
					inputFlag,
					outputFlag,
				},
				Before: before,
				Action: func(cCtx *cli.Context) error {
					in, err := command.ParseFormat(input)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					out, err := command.ParseFormat(output)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}

					return command.Add(cCtx.App.Writer, &command.AddOptions{
						Operands: cCtx.Args().Slice(),
						Stdin:    stdin,
						Input:    in,
						Output:   out,
					})
				},
			},
			{
				Name:      "flatten",
				Usage:     "Print every leaf of a nested document",
				ArgsUsage: "[document] (reads stdin when empty)",
				Flags: []cli.Flag{
					verboseFlag,
					inputFlag,
				},
				Before: before,
				Action: func(cCtx *cli.Context) error {
					in, err := command.ParseFormat(input)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}

					return command.Flatten(cCtx.App.Writer, &command.FlattenOptions{
						Document: cCtx.Args().First(),
						Stdin:    stdin,
						Input:    in,
					})
				},
			},
		},
	}
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		slog.Error("Failed", "err", err)
		os.Exit(1) //nolint:gocritic
	}
}
