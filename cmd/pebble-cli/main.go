// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"pebble/internal/ast"
	"pebble/internal/errors"
	"pebble/internal/parser"
	"pebble/repl"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("pebble-cli", flag.ContinueOnError)
	flags.SetOutput(stderr)
	maxDepth := flags.Int("max-depth", parser.DefaultMaxDepth, "nesting limit; 0 disables it")
	noColor := flags.Bool("no-color", false, "disable colored output")
	allowTrailing := flags.Bool("allow-trailing", false, "accept input left over after the expression")
	startREPL := flags.Bool("repl", false, "start an interactive session instead of reading a file")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: pebble-cli [flags] <file.peb>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *noColor {
		color.NoColor = true
	}

	opts := []parser.Option{parser.MaxDepth(*maxDepth)}
	if *allowTrailing {
		opts = append(opts, parser.AllowTrailing())
	}

	if *startREPL {
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			repl.StartInteractive(stdout, opts...)
		} else {
			repl.Start(stdin, stdout, opts...)
		}
		return 0
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}

	startTime := time.Now()
	path := flags.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		reporter := errors.NewErrorReporter(path, "")
		fmt.Fprint(stderr, reporter.FormatError(errors.CompilerError{
			Level:    errors.Error,
			Code:     errors.ErrorReadFile,
			Message:  fmt.Sprintf("failed to read file: %v", err),
			Position: ast.Position{Filename: path},
		}))
		return 1
	}

	result, err := parser.ParseSource(path, string(source), opts...)
	duration := formatDuration(time.Since(startTime))

	if err != nil {
		reporter := errors.NewErrorReporter(path, string(source))
		if diag, ok := errors.FromParseError(err, string(source)); ok {
			fmt.Fprint(stderr, reporter.FormatError(diag))
		} else {
			fmt.Fprintln(stderr, err)
		}
		fmt.Fprintln(stderr, color.RedString("Parsing failed after %s", duration))
		return 1
	}

	fmt.Fprintln(stdout, ast.Format(result.Expr, result.Source))
	if !result.Rest.AtEnd() {
		fmt.Fprintln(stdout, color.YellowString("ignored trailing input at %s", result.Lines.Position(result.Rest.Offset())))
	}
	fmt.Fprintln(stdout, color.GreenString("Successfully parsed %s in %s", path, duration))
	return 0
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
