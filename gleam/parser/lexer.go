package parser

import "math"

// Lexer converts source text into a gapless sequence of tokens. Every byte
// of the input ends up in exactly one token, so concatenating the token
// texts in order reproduces the input.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	if len(input) >= math.MaxUint32 {
		panic("parser: source text too large for 32-bit offsets")
	}
	return &Lexer{input: input}
}

// Lex tokenizes the whole input, excluding the trailing EOF token.
func Lex(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.Next()
		if tok.Kind == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) {
		l.pos++
	}
}

func (l *Lexer) advanceN(n int) {
	l.pos += n
	if l.pos > len(l.input) {
		l.pos = len(l.input)
	}
}

func (l *Lexer) Next() Token {
	start := l.pos

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Range: EmptyTextRange(uint32(start))}
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanComment(start)
	}
	if isWhitespace(ch) {
		return l.scanWhitespace(start)
	}
	if isLower(ch) {
		return l.scanName(start)
	}
	if ch == '_' {
		return l.scanDiscardName(start)
	}
	if isUpper(ch) {
		return l.scanUpName(start)
	}
	if isDigit(ch) {
		return l.scanNumber(start)
	}
	if ch == '"' {
		return l.scanString(start)
	}

	return l.scanOperator(start)
}

func (l *Lexer) token(kind SyntaxKind, start int) Token {
	return Token{
		Kind:  kind,
		Range: NewTextRange(uint32(start), uint32(l.pos)),
		Text:  l.input[start:l.pos],
	}
}

func (l *Lexer) scanWhitespace(start int) Token {
	for isWhitespace(l.peek()) {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanComment(start int) Token {
	kind := TokenComment
	if l.peekN(2) == '/' {
		kind = TokenDocComment
		if l.peekN(3) == '/' {
			kind = TokenModuleComment
		}
	}
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
	return l.token(kind, start)
}

func (l *Lexer) scanName(start int) Token {
	for isNameChar(l.peek()) {
		l.advance()
	}
	return l.token(LookupKeyword(l.input[start:l.pos]), start)
}

func (l *Lexer) scanDiscardName(start int) Token {
	l.advance()
	for isNameChar(l.peek()) {
		l.advance()
	}
	return l.token(TokenDiscardName, start)
}

func (l *Lexer) scanUpName(start int) Token {
	for isUpNameChar(l.peek()) {
		l.advance()
	}
	switch l.input[start:l.pos] {
	case "True":
		return l.token(TokenTrue, start)
	case "False":
		return l.token(TokenFalse, start)
	}
	return l.token(TokenUpIdent, start)
}

func (l *Lexer) scanNumber(start int) Token {
	if l.peek() == '0' {
		switch l.peekN(1) {
		case 'x', 'X':
			return l.scanRadixNumber(start, isHexDigit)
		case 'o', 'O':
			return l.scanRadixNumber(start, isOctalDigit)
		case 'b', 'B':
			return l.scanRadixNumber(start, isBinaryDigit)
		}
	}

	isFloat := false
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}

	if isFloat && (l.peek() == 'e' || l.peek() == 'E') {
		next := l.peekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekN(2))) {
			l.advance()
			if l.peek() == '+' || l.peek() == '-' {
				l.advance()
			}
			for isDigit(l.peek()) {
				l.advance()
			}
		}
	}

	kind := TokenInt
	if isFloat {
		kind = TokenFloat
	}
	return l.token(kind, start)
}

func (l *Lexer) scanRadixNumber(start int, valid func(byte) bool) Token {
	l.advanceN(2)
	for valid(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	return l.token(TokenInt, start)
}

func (l *Lexer) scanString(start int) Token {
	l.advance()
	for l.pos < len(l.input) && l.peek() != '"' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '"' {
		l.advance()
	}
	return l.token(TokenString, start)
}

func (l *Lexer) scanOperator(start int) Token {
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case '{':
		l.advance()
		return l.token(TokenLBrace, start)
	case '}':
		l.advance()
		return l.token(TokenRBrace, start)
	case '[':
		l.advance()
		return l.token(TokenLBracket, start)
	case ']':
		l.advance()
		return l.token(TokenRBracket, start)
	case ',':
		l.advance()
		return l.token(TokenComma, start)
	case ':':
		l.advance()
		return l.token(TokenColon, start)
	case '#':
		l.advance()
		return l.token(TokenHash, start)
	case '@':
		l.advance()
		return l.token(TokenAt, start)
	case '%':
		l.advance()
		return l.token(TokenPercent, start)

	case '.':
		if l.peekN(1) == '.' {
			l.advanceN(2)
			return l.token(TokenDotDot, start)
		}
		l.advance()
		return l.token(TokenDot, start)

	case '=':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenEqualEqual, start)
		}
		l.advance()
		return l.token(TokenEqual, start)

	case '!':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenNotEqual, start)
		}
		l.advance()
		return l.token(TokenBang, start)

	case '<':
		switch l.peekN(1) {
		case '=':
			if l.peekN(2) == '.' {
				l.advanceN(3)
				return l.token(TokenLessEqualDot, start)
			}
			l.advanceN(2)
			return l.token(TokenLessEqual, start)
		case '.':
			l.advanceN(2)
			return l.token(TokenLessDot, start)
		case '<':
			l.advanceN(2)
			return l.token(TokenLtLt, start)
		case '>':
			l.advanceN(2)
			return l.token(TokenLtGt, start)
		case '-':
			l.advanceN(2)
			return l.token(TokenLArrow, start)
		}
		l.advance()
		return l.token(TokenLess, start)

	case '>':
		switch l.peekN(1) {
		case '=':
			if l.peekN(2) == '.' {
				l.advanceN(3)
				return l.token(TokenGreaterEqualDot, start)
			}
			l.advanceN(2)
			return l.token(TokenGreaterEqual, start)
		case '.':
			l.advanceN(2)
			return l.token(TokenGreaterDot, start)
		case '>':
			l.advanceN(2)
			return l.token(TokenGtGt, start)
		}
		l.advance()
		return l.token(TokenGreater, start)

	case '+':
		if l.peekN(1) == '.' {
			l.advanceN(2)
			return l.token(TokenPlusDot, start)
		}
		l.advance()
		return l.token(TokenPlus, start)

	case '-':
		switch l.peekN(1) {
		case '.':
			l.advanceN(2)
			return l.token(TokenMinusDot, start)
		case '>':
			l.advanceN(2)
			return l.token(TokenRArrow, start)
		}
		l.advance()
		return l.token(TokenMinus, start)

	case '*':
		if l.peekN(1) == '.' {
			l.advanceN(2)
			return l.token(TokenStarDot, start)
		}
		l.advance()
		return l.token(TokenStar, start)

	case '/':
		if l.peekN(1) == '.' {
			l.advanceN(2)
			return l.token(TokenSlashDot, start)
		}
		l.advance()
		return l.token(TokenSlash, start)

	case '|':
		switch l.peekN(1) {
		case '>':
			l.advanceN(2)
			return l.token(TokenPipe, start)
		case '|':
			l.advanceN(2)
			return l.token(TokenVBarVBar, start)
		}
		l.advance()
		return l.token(TokenVBar, start)

	case '&':
		if l.peekN(1) == '&' {
			l.advanceN(2)
			return l.token(TokenAmperAmper, start)
		}
	}

	l.advance()
	return l.token(TokenError, start)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch byte) bool {
	return ch >= '0' && ch <= '7'
}

func isBinaryDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func isLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

func isUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isNameChar(ch byte) bool {
	return isLower(ch) || isDigit(ch) || ch == '_'
}

func isUpNameChar(ch byte) bool {
	return isLower(ch) || isUpper(ch) || isDigit(ch)
}
