package repl

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"

	"pebble/internal/parser"
)

func TestStart(t *testing.T) {
	color.NoColor = true

	in := strings.NewReader("f(x, :ok)\n(1 _)\n")
	var out bytes.Buffer
	Start(in, &out)

	output := out.String()
	assert.Contains(t, output, "(app (id f) [(id x) (tag ok)])")
	assert.Contains(t, output, "error[E0101]")
	assert.Equal(t, 3, strings.Count(output, PROMPT))
}

func TestStartContinuesIncompleteInput(t *testing.T) {
	in := strings.NewReader("case x\nof y = y\nend\n")
	var out bytes.Buffer
	Start(in, &out)

	output := out.String()
	assert.Equal(t, 2, strings.Count(output, CONTINUE_PROMPT))
	assert.Contains(t, output, "(case (id x) (arm (id y) (id y)))")
}

func TestStartBlankLineAbandonsInput(t *testing.T) {
	in := strings.NewReader("f(\n\nx\n")
	var out bytes.Buffer
	Start(in, &out)

	output := out.String()
	assert.NotContains(t, output, "(app")
	assert.Contains(t, output, "(id x)")
}

func TestStartPassesOptions(t *testing.T) {
	color.NoColor = true

	in := strings.NewReader("((x))\n")
	var out bytes.Buffer
	Start(in, &out, parser.MaxDepth(2))

	assert.Contains(t, out.String(), "error[E0103]")
}

// scriptedReader replays canned answers and records the prompts it was shown.
type scriptedReader struct {
	answers []any // string or error
	prompts []string
}

func (r *scriptedReader) Prompt(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.answers) == 0 {
		return "", io.EOF
	}
	next := r.answers[0]
	r.answers = r.answers[1:]
	if err, ok := next.(error); ok {
		return "", err
	}
	return next.(string), nil
}

func TestLoopAbortDropsPendingInput(t *testing.T) {
	lines := &scriptedReader{answers: []any{"f(", liner.ErrPromptAborted, "y"}}
	var out bytes.Buffer
	var history []string

	loop(lines, &out, func(entry string) { history = append(history, entry) }, nil)

	assert.Equal(t, []string{PROMPT, CONTINUE_PROMPT, PROMPT, PROMPT}, lines.prompts)
	assert.Contains(t, out.String(), "(id y)")
	assert.NotContains(t, out.String(), "(app")
	assert.Equal(t, []string{"y"}, history)
}

func TestLoopRemembersOnlyParsedEntries(t *testing.T) {
	color.NoColor = true

	lines := &scriptedReader{answers: []any{"case x", "of y = y", "end", "(1 _)"}}
	var out bytes.Buffer
	var history []string

	loop(lines, &out, func(entry string) { history = append(history, entry) }, nil)

	assert.Equal(t, []string{"case x\nof y = y\nend"}, history)
	assert.Contains(t, out.String(), "error[E0101]")
}
