// Command progressclock prints a SVG progress clock, as used in TTRPGs such as
// Blades in the Dark.
//
//	progressclock [options] SECTIONS FILLED
//
// The image is written to stdout unless --output is given.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	progressclock "github.com/Mictilt/progress-clock"
	"github.com/Mictilt/progress-clock/internal/logging"
	"github.com/Mictilt/progress-clock/writer/standard"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).Run(permuteArgs(args))
	return exitCode(err, stderr)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "progressclock",
		Usage:     "create a SVG progress clock, used in TTRPGs such as Blades in the Dark",
		UsageText: "progressclock [options] SECTIONS FILLED",
		Description: "The output is printed to stdout, redirect it to a file or use --output to save it.\n" +
			"SECTIONS is the number of sections of the clock, FILLED the number of filled ones.",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Value:   progressclock.DefaultColor,
				Usage:   "color of the filled sections, #rgb or #rrggbb",
				EnvVars: []string{"PROGRESS_CLOCK_COLOR"},
			},
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Value:   progressclock.DefaultSize,
				Usage:   "width and height of the SVG canvas",
				EnvVars: []string{"PROGRESS_CLOCK_SIZE"},
			},
			&cli.BoolFlag{
				Name:    "ring",
				Aliases: []string{"r"},
				Usage:   "draw the clock as a ring with a hole in the middle",
				EnvVars: []string{"PROGRESS_CLOCK_RING"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the image to `FILE` instead of stdout",
			},
			&cli.IntFlag{
				Name:  "precision",
				Value: 3,
				Usage: "decimals kept in coordinates",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "diagnostics level: none, debug, info, warn, error",
				EnvVars: []string{"PROGRESS_CLOCK_LOG_LEVEL"},
			},
		},
		Action: func(c *cli.Context) error {
			return render(c, stdout, stderr)
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return cli.Exit("incorrect usage: "+err.Error(), exitUsage)
		},
		// exit codes are handled by run
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func render(c *cli.Context, stdout, stderr io.Writer) error {
	logger := logging.New(stderr, c.String("log-level"))

	if c.NArg() != 2 {
		return cli.Exit(fmt.Sprintf("expected SECTIONS and FILLED, got %d argument(s)", c.NArg()), exitUsage)
	}
	sections, err := parseCount("SECTIONS", c.Args().Get(0))
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	filled, err := parseCount("FILLED", c.Args().Get(1))
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	spec, err := progressclock.Validate(sections, filled, c.String("color"), c.Int("size"), c.Bool("ring"))
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	for _, warning := range spec.Warnings() {
		logger.Warn().Err(warning).Msg("malformed --color, writing it anyway")
	}

	w, dest, err := openWriter(c.String("output"), stdout, standard.WithPrecision(c.Int("precision")))
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	n, err := w.Write(spec)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}

	logger.Debug().
		Int("sections", spec.Sections).
		Int("filled", spec.Filled).
		Bool("ring", spec.Ring).
		Int("lines", n).
		Str("output", dest).
		Msg("clock rendered")
	return nil
}

func parseCount(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%s must be an integer, got %q", name, s)
	}
	return v, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func openWriter(output string, stdout io.Writer, opts ...standard.ImageOption) (*standard.Writer, string, error) {
	if output == "" || output == "-" {
		return standard.NewWithWriter(nopCloser{stdout}, opts...), "stdout", nil
	}

	w, err := standard.New(output, opts...)
	if err != nil {
		return nil, output, err
	}
	return w, output, nil
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	code := exitFailure
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		code = coder.ExitCode()
	}
	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(stderr, msg)
	}
	return code
}

// valueFlags take their value from the next argument unless written as
// --flag=value.
var valueFlags = map[string]bool{
	"color":     true,
	"c":         true,
	"size":      true,
	"s":         true,
	"output":    true,
	"o":         true,
	"precision": true,
	"log-level": true,
}

// permuteArgs moves flags in front of the positional arguments, the flag
// package stops at the first positional one. Negative numbers are positional.
func permuteArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	out := []string{args[0]}
	var positional []string

	rest := args[1:]
loop:
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--":
			positional = append(positional, rest[i+1:]...)
			break loop
		case isFlag(arg):
			out = append(out, arg)
			if !takesValue(arg) {
				continue
			}
			if i+1 == len(rest) {
				// leave the flag last so the parser reports its missing value
				return out
			}
			i++
			out = append(out, rest[i])
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}

func isFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(arg)
	return err != nil
}

func takesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	return valueFlags[strings.TrimLeft(arg, "-")]
}
