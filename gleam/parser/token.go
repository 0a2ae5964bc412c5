package parser

import "fmt"

// TextRange is a half-open byte range into the source text. Source texts
// are capped below 4 GiB so offsets always fit in 32 bits.
type TextRange struct {
	Start uint32
	End   uint32
}

func NewTextRange(start, end uint32) TextRange {
	return TextRange{Start: start, End: end}
}

func EmptyTextRange(offset uint32) TextRange {
	return TextRange{Start: offset, End: offset}
}

func (r TextRange) Len() uint32 {
	return r.End - r.Start
}

func (r TextRange) Contains(offset uint32) bool {
	return r.Start <= offset && offset < r.End
}

// ContainsRange reports whether other lies fully inside r.
func (r TextRange) ContainsRange(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Token is one lexed unit of source text. Tokens are produced once by the
// lexer and never mutated; Text is a slice of the original source.
type Token struct {
	Kind  SyntaxKind
	Range TextRange
	Text  string
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s %q", t.Kind, t.Range, t.Text)
}
