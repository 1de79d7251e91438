package parser

import (
	"strings"

	"pebble/internal/ast"
)

// Input is the unconsumed suffix of the source, represented as an offset
// into the shared buffer. Rules take an Input and return the Input left
// after whatever they consumed; the buffer itself is never copied.
type Input struct {
	src string
	off int
}

// NewInput returns a cursor at the start of src.
func NewInput(src string) Input {
	return Input{src: src}
}

func (in Input) Offset() int { return in.off }

// Rest returns the text that has not been consumed yet.
func (in Input) Rest() string { return in.src[in.off:] }

func (in Input) AtEnd() bool { return in.off >= len(in.src) }

// SpanTo returns the span consumed going from in to end.
func (in Input) SpanTo(end Input) ast.Span {
	return ast.Between(in.off, end.off)
}

func (in Input) peek() byte {
	if in.AtEnd() {
		return 0
	}
	return in.src[in.off]
}

func (in Input) peekAt(n int) byte {
	if in.off+n >= len(in.src) {
		return 0
	}
	return in.src[in.off+n]
}

func (in Input) advance(n int) Input {
	return Input{src: in.src, off: in.off + n}
}

func (in Input) hasPrefix(s string) bool {
	return strings.HasPrefix(in.src[in.off:], s)
}

// skipWhile advances past every leading byte accepted by fn.
func (in Input) skipWhile(fn func(byte) bool) Input {
	off := in.off
	for off < len(in.src) && fn(in.src[off]) {
		off++
	}
	return Input{src: in.src, off: off}
}
