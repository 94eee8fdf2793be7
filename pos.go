package vlparse

import (
	"fmt"
	"sort"
)

// Location is a byte offset resolved to a 1-indexed line/column pair,
// used only when rendering a *ParseError for a human -- the parser's
// own cursor arithmetic stays in plain byte offsets throughout.
type Location struct {
	Line   int32
	Column int32
	Offset int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LineIndex converts byte offsets to line/column pairs in O(log
// lines) after an O(n) one-time scan of the input. ParseDesign builds
// one per parse before reading the first module, so it can print any
// ParseError; the parser itself never constructs one.
type LineIndex struct {
	lineStart []int
}

func NewLineIndex(input []byte) *LineIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, b := range input {
		if b == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &LineIndex{lineStart: lineStart}
}

func (li *LineIndex) LocationAt(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	lineIdx := sort.Search(len(li.lineStart), func(i int) bool {
		return li.lineStart[i] > offset
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	col := offset - li.lineStart[lineIdx] + 1
	return Location{
		Line:   int32(lineIdx + 1),
		Column: int32(col),
		Offset: offset,
	}
}

// Annotate renders a ParseError's byte offset as line:column text,
// e.g. "Cannot read module name @ 14:3".
func (li *LineIndex) Annotate(e *ParseError) string {
	loc := li.LocationAt(e.Offset)
	if e.Module == "" {
		return fmt.Sprintf("%s @ %s", e.Kind, loc)
	}
	return fmt.Sprintf("%s @ %s (module %s)", e.Kind, loc, e.Module)
}
