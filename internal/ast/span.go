package ast

import (
	"fmt"
	"sort"

	"github.com/alecthomas/participle/v2/lexer"
)

// Span is a half-open byte range [Start, End) into one source buffer.
// It never owns the text; slice it out of the source with Text.
type Span struct {
	Start int
	End   int
}

// Position is a human-facing location: filename, byte offset, 1-based line
// and 1-based byte column.
type Position = lexer.Position

// Between returns the span consumed going from the start cursor offset to
// the end cursor offset.
func Between(start, end int) Span {
	return Span{Start: start, End: end}
}

// To returns a span from the start of s to the end of end.
func (s Span) To(end Span) Span {
	return Span{Start: s.Start, End: end.End}
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies entirely inside s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Covers reports whether offset falls inside s. An empty span covers the
// offset it sits on.
func (s Span) Covers(offset int) bool {
	if s.Start == s.End {
		return offset == s.Start
	}
	return s.Start <= offset && offset < s.End
}

// Text slices the spanned text out of src. Out of range spans yield "".
func (s Span) Text(src string) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// LineIndex converts byte offsets into line/column positions.
type LineIndex struct {
	filename string
	size     int
	starts   []int // byte offset of the first character of every line
}

func NewLineIndex(filename, src string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{filename: filename, size: len(src), starts: starts}
}

// Position maps offset to a Position. Offsets past the end clamp to the end.
func (li *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > li.size {
		offset = li.size
	}
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	return Position{
		Filename: li.filename,
		Offset:   offset,
		Line:     line + 1,
		Column:   offset - li.starts[line] + 1,
	}
}

// Offset is the inverse of Position for 1-based line and column. Columns
// past the end of a line clamp to the line end.
func (li *LineIndex) Offset(line, column int) int {
	if line < 1 {
		return 0
	}
	if line > len(li.starts) {
		return li.size
	}
	start := li.starts[line-1]
	end := li.size
	if line < len(li.starts) {
		end = li.starts[line] - 1
	}
	offset := start + column - 1
	if offset < start {
		return start
	}
	if offset > end {
		return end
	}
	return offset
}

// Range returns the start and end positions of s.
func (li *LineIndex) Range(s Span) (Position, Position) {
	return li.Position(s.Start), li.Position(s.End)
}
