package codebase

import (
	"sort"
	"strconv"
)

// Position is a zero-based line/column pair. Columns count bytes; the
// LSP layer converts to UTF-16 where it matters.
type Position struct {
	Line   uint32
	Column uint32
}

// LineIndex maps byte offsets to line/column positions for one text.
type LineIndex struct {
	// lineStarts[i] is the byte offset where line i begins.
	lineStarts []uint32
	length     uint32
}

func NewLineIndex(text string) *LineIndex {
	starts := []uint32{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return &LineIndex{lineStarts: starts, length: uint32(len(text))}
}

func (ix *LineIndex) PositionFor(offset uint32) Position {
	if offset > ix.length {
		offset = ix.length
	}
	line := sort.Search(len(ix.lineStarts), func(i int) bool {
		return ix.lineStarts[i] > offset
	}) - 1
	return Position{
		Line:   uint32(line),
		Column: offset - ix.lineStarts[line],
	}
}

// OffsetFor converts a line/column position back to a byte offset.
// Out-of-range positions clamp to the text.
func (ix *LineIndex) OffsetFor(pos Position) uint32 {
	if int(pos.Line) >= len(ix.lineStarts) {
		return ix.length
	}
	offset := ix.lineStarts[pos.Line] + pos.Column
	if int(pos.Line)+1 < len(ix.lineStarts) {
		if end := ix.lineStarts[pos.Line+1] - 1; offset > end {
			return end
		}
	}
	if offset > ix.length {
		return ix.length
	}
	return offset
}

// String renders the position one-based, the way editors display it.
func (p Position) String() string {
	return strconv.FormatUint(uint64(p.Line)+1, 10) + ":" +
		strconv.FormatUint(uint64(p.Column)+1, 10)
}
