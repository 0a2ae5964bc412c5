package parser

// TokenSet is a fixed-size bitset over the SyntaxKind token vocabulary.
// Grammar rules use token sets to express their FIRST tokens and the
// tokens that should stop error recovery.
type TokenSet [2]uint64

func NewTokenSet(kinds ...SyntaxKind) TokenSet {
	var s TokenSet
	for _, k := range kinds {
		s[k/64] |= 1 << (uint(k) % 64)
	}
	return s
}

func (s TokenSet) Union(other TokenSet) TokenSet {
	return TokenSet{s[0] | other[0], s[1] | other[1]}
}

func (s TokenSet) Contains(k SyntaxKind) bool {
	if int(k) >= 128 {
		return false
	}
	return s[k/64]&(1<<(uint(k)%64)) != 0
}
