package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	s := Between(2, 7)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "2..7", s.String())
	assert.Equal(t, Span{Start: 2, End: 10}, s.To(Between(8, 10)))
	assert.Equal(t, "llo, ", s.Text("hello, world"))
	assert.Equal(t, "", Between(5, 50).Text("short"))
}

func TestSpanContains(t *testing.T) {
	outer := Between(0, 10)

	assert.True(t, outer.Contains(Between(0, 10)))
	assert.True(t, outer.Contains(Between(3, 3)))
	assert.False(t, outer.Contains(Between(5, 11)))
	assert.False(t, Between(3, 3).Contains(outer))
}

func TestSpanCovers(t *testing.T) {
	s := Between(2, 4)
	assert.False(t, s.Covers(1))
	assert.True(t, s.Covers(2))
	assert.True(t, s.Covers(3))
	assert.False(t, s.Covers(4))

	empty := Between(6, 6)
	assert.True(t, empty.Covers(6))
	assert.False(t, empty.Covers(7))
}

func TestLineIndex(t *testing.T) {
	src := "case x\n  of y = y\nend"
	li := NewLineIndex("main.peb", src)

	pos := li.Position(0)
	assert.Equal(t, Position{Filename: "main.peb", Offset: 0, Line: 1, Column: 1}, pos)

	pos = li.Position(9)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 3, pos.Column)

	pos = li.Position(len(src))
	assert.Equal(t, 3, pos.Line)
	assert.Equal(t, 4, pos.Column)

	assert.Equal(t, len(src), li.Position(len(src)+10).Offset)
}

func TestLineIndexOffset(t *testing.T) {
	src := "ab\ncd\n"
	li := NewLineIndex("", src)

	assert.Equal(t, 0, li.Offset(1, 1))
	assert.Equal(t, 4, li.Offset(2, 2))
	assert.Equal(t, 5, li.Offset(2, 40))
	assert.Equal(t, 6, li.Offset(3, 1))
	assert.Equal(t, len(src), li.Offset(9, 1))

	for off := 0; off <= len(src); off++ {
		pos := li.Position(off)
		assert.Equal(t, off, li.Offset(pos.Line, pos.Column))
	}
}

func TestLineIndexRange(t *testing.T) {
	li := NewLineIndex("", "x\ny")
	start, end := li.Range(Between(0, 3))
	assert.Equal(t, 1, start.Line)
	assert.Equal(t, 2, end.Line)
	assert.Equal(t, 2, end.Column)
}
