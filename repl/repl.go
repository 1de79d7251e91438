// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"pebble/internal/ast"
	"pebble/internal/errors"
	"pebble/internal/parser"
)

const (
	PROMPT          = ">> "
	CONTINUE_PROMPT = ".. "

	historyFile = ".pebble_history"
)

// lineReader shows a prompt and returns the next line without its newline.
// io.EOF ends the session; liner.ErrPromptAborted drops pending input.
type lineReader interface {
	Prompt(prompt string) (string, error)
}

// scannerReader reads lines from a plain stream and echoes prompts to out.
type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (r *scannerReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// Start reads expressions from in and prints their trees to out. Input that
// stops in the middle of an expression is continued on the next line; an
// empty line abandons it.
func Start(in io.Reader, out io.Writer, opts ...parser.Option) {
	loop(&scannerReader{scanner: bufio.NewScanner(in), out: out}, out, nil, opts)
}

// StartInteractive runs the REPL on the terminal with line editing. Ctrl+C
// cancels the current input, Ctrl+D exits. Successfully parsed entries are
// kept in ~/.pebble_history.
func StartInteractive(out io.Writer, opts ...parser.Option) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	loop(ln, out, func(entry string) {
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
	}, opts)

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
}

// loop is the read-parse-print cycle shared by both front ends. remember,
// when set, receives every entry that parsed.
func loop(lines lineReader, out io.Writer, remember func(string), opts []parser.Option) {
	var pending []string

	for {
		prompt := PROMPT
		if len(pending) > 0 {
			prompt = CONTINUE_PROMPT
		}

		line, err := lines.Prompt(prompt)
		if stderrors.Is(err, liner.ErrPromptAborted) {
			pending = nil
			continue
		}
		if err != nil {
			fmt.Fprintln(out)
			return
		}

		if strings.TrimSpace(line) == "" {
			pending = nil
			continue
		}

		pending = append(pending, line)
		source := strings.Join(pending, "\n")

		result, err := parser.ParseSource("<repl>", source, opts...)
		if err != nil {
			if incomplete(err, source) {
				continue
			}
			pending = nil
			printError(out, err, source)
			continue
		}

		pending = nil
		if remember != nil {
			remember(source)
		}
		fmt.Fprintln(out, ast.Format(result.Expr, source))
	}
}

// incomplete reports whether err is a soft failure at the very end of
// source, so that more input could still complete the expression.
func incomplete(err error, source string) bool {
	var perr *parser.Error
	if !stderrors.As(err, &perr) {
		return false
	}
	return perr.Kind == parser.SyntaxError && perr.Offset == len(source)
}

func printError(out io.Writer, err error, source string) {
	diag, ok := errors.FromParseError(err, source)
	if !ok {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprint(out, errors.NewErrorReporter("<repl>", source).FormatError(diag))
}
