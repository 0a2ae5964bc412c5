package parser

import "math"

// Parse is the result of parsing one source text: a lossless syntax tree
// plus the syntax errors discovered along the way. A parse always
// produces both, no matter how malformed the input is.
type Parse struct {
	green  *GreenNode
	errors []Error
}

func (p *Parse) GreenNode() *GreenNode { return p.green }

func (p *Parse) Root() *SyntaxNode { return NewRootNode(p.green) }

func (p *Parse) Errors() []Error { return p.errors }

// ParseModule parses a whole Gleam module. Inputs at or above 4 GiB are
// rejected outright; byte offsets must fit in 32 bits.
func ParseModule(src string) *Parse {
	if len(src) >= math.MaxUint32 {
		panic("parser: source text too large for 32-bit offsets")
	}

	raw := Lex(src)
	filtered := make([]Token, 0, len(raw))
	for _, tok := range raw {
		if !tok.Kind.IsTrivia() {
			filtered = append(filtered, tok)
		}
	}

	p := &parser{
		tokens: filtered,
		srcLen: uint32(len(src)),
		fuel:   fuelBudget,
	}
	p.sourceFile()

	return &Parse{
		green:  buildTree(p.events, raw),
		errors: p.errors,
	}
}

// fuelBudget bounds the number of token peeks a grammar rule may make
// without consuming input. Running out means a rule is stuck, which is a
// parser bug, never a consequence of bad user input.
const fuelBudget = 256

type eventKind uint8

const (
	eventOpen eventKind = iota
	eventClose
	eventAdvance
)

// event is one entry of the flat log the tree builder replays. Open
// events start out as NodeError and have their kind patched in when the
// grammar rule finishes the node.
type event struct {
	kind eventKind
	node SyntaxKind
}

// opened marks an Open event whose node is still in progress.
type opened struct {
	index int
}

// closed marks a finished node; startNodeBefore can wrap it into a new
// parent discovered after the fact.
type closed struct {
	index int
}

type parser struct {
	tokens []Token
	srcLen uint32
	pos    int
	fuel   int
	events []event
	errors []Error
}

func (p *parser) eof() bool {
	return p.pos == len(p.tokens)
}

// nth peeks the kind of the token lookahead positions past the cursor.
func (p *parser) nth(lookahead int) SyntaxKind {
	if p.fuel == 0 {
		panic("parser is stuck")
	}
	p.fuel--
	if p.pos+lookahead >= len(p.tokens) {
		return TokenEOF
	}
	return p.tokens[p.pos+lookahead].Kind
}

func (p *parser) at(kind SyntaxKind) bool {
	return p.nth(0) == kind
}

func (p *parser) atAny(set TokenSet) bool {
	return set.Contains(p.nth(0))
}

func (p *parser) bump() {
	if p.eof() {
		panic("parser: bump at end of file")
	}
	p.fuel = fuelBudget
	p.events = append(p.events, event{kind: eventAdvance})
	p.pos++
}

func (p *parser) eat(kind SyntaxKind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	return false
}

func (p *parser) expect(kind SyntaxKind) {
	if p.eat(kind) {
		return
	}
	p.errors = append(p.errors, Error{
		Range:    p.currentRange(),
		Kind:     ErrExpectToken,
		Expected: kind,
	})
}

func (p *parser) errorHere(kind ErrorKind) {
	p.errors = append(p.errors, Error{Range: p.currentRange(), Kind: kind})
}

func (p *parser) currentRange() TextRange {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].Range
	}
	return EmptyTextRange(p.srcLen)
}

// bumpWithError swallows one unexpected token inside its own error node
// and keeps going.
func (p *parser) bumpWithError(kind ErrorKind) {
	m := p.startNode()
	p.errorHere(kind)
	p.bump()
	p.finishNode(m, NodeError)
}

func (p *parser) startNode() opened {
	m := opened{index: len(p.events)}
	p.events = append(p.events, event{kind: eventOpen, node: NodeError})
	return m
}

// startNodeBefore opens a node in front of an already-finished one, so a
// parsed subtree can become the first child of a parent discovered later.
func (p *parser) startNodeBefore(c closed) opened {
	m := opened{index: c.index}
	p.events = append(p.events, event{})
	copy(p.events[c.index+1:], p.events[c.index:])
	p.events[c.index] = event{kind: eventOpen, node: NodeError}
	return m
}

func (p *parser) finishNode(m opened, kind SyntaxKind) closed {
	p.events[m.index].node = kind
	p.events = append(p.events, event{kind: eventClose})
	return closed{index: m.index}
}

// Grammar FIRST sets and recovery sets. A rule stops consuming when it
// hits a token in its recovery set, handing control back to a caller that
// knows what to do with it.
var (
	stmtRecovery = NewTokenSet(
		TokenFn, TokenType, TokenImport, TokenConst, TokenPub, TokenOpaque, TokenAt,
	)
	paramListRecovery = NewTokenSet(TokenRArrow, TokenLBrace, TokenRParen).Union(stmtRecovery)
	importRecovery    = NewTokenSet(TokenAs).Union(stmtRecovery)
	constRecovery     = NewTokenSet(TokenEqual).Union(stmtRecovery)
	clauseRecovery    = NewTokenSet(TokenRBrace).Union(stmtRecovery)

	typeFirst = NewTokenSet(TokenFn, TokenHash, TokenIdent, TokenUpIdent)

	constFirst = NewTokenSet(
		TokenIdent, TokenUpIdent, TokenHash, TokenLBracket,
		TokenInt, TokenFloat, TokenString, TokenTrue, TokenFalse, TokenMinus,
	)

	exprFirst = NewTokenSet(
		TokenIdent, TokenUpIdent, TokenDiscardName,
		TokenInt, TokenFloat, TokenString, TokenTrue, TokenFalse,
		TokenMinus, TokenBang, TokenPanic, TokenTodo,
		TokenHash, TokenLtLt, TokenLBracket, TokenLBrace,
		TokenCase, TokenFn,
	)

	patternFirst = NewTokenSet(
		TokenIdent, TokenUpIdent, TokenDiscardName,
		TokenInt, TokenFloat, TokenString, TokenTrue, TokenFalse,
		TokenMinus, TokenHash, TokenLBracket, TokenDotDot,
	)

	attributeArgFirst = NewTokenSet(
		TokenIdent, TokenUpIdent, TokenInt, TokenFloat, TokenString,
	)
)

func (p *parser) sourceFile() {
	m := p.startNode()
	for !p.eof() {
		p.moduleStatement()
	}
	p.finishNode(m, NodeSourceFile)
}

func (p *parser) moduleStatement() {
	m := p.startNode()

	for p.at(TokenAt) {
		p.attribute()
	}

	isPub := p.eat(TokenPub)

	switch p.nth(0) {
	case TokenConst:
		p.moduleConstant(m)
	case TokenFn:
		p.function(m, false)
	case TokenImport:
		if isPub {
			p.errorHere(ErrUnexpectedImport)
		}
		p.importStatement(m)
	case TokenType, TokenOpaque:
		p.customType(m)
	default:
		if !p.eof() {
			p.bumpWithError(ErrExpectedStatement)
		} else {
			p.errorHere(ErrExpectedStatement)
		}
		p.finishNode(m, NodeError)
	}
}

func (p *parser) attribute() {
	m := p.startNode()
	p.expect(TokenAt)

	n := p.startNode()
	p.expect(TokenIdent)
	p.finishNode(n, NodeName)

	if p.eat(TokenLParen) {
		for !p.at(TokenRParen) && !p.eof() {
			if p.atAny(attributeArgFirst) {
				p.attributeArg()
			} else if p.atAny(stmtRecovery) {
				break
			} else {
				p.bumpWithError(ErrExpectedConstant)
			}
		}
		p.expect(TokenRParen)
	}

	p.finishNode(m, NodeAttribute)
}

func (p *parser) attributeArg() {
	m := p.startNode()
	switch p.nth(0) {
	case TokenIdent, TokenUpIdent:
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeNameRef)
	default:
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeLiteral)
	}
	if !p.at(TokenRParen) {
		p.expect(TokenComma)
	}
	p.finishNode(m, NodeAttributeArg)
}

// function parses both named functions and anonymous ones; a lambda is
// the same rule without the name.
func (p *parser) function(m opened, anonymous bool) closed {
	p.expect(TokenFn)

	if !anonymous {
		n := p.startNode()
		p.expect(TokenIdent)
		p.finishNode(n, NodeName)
	}

	if p.at(TokenLParen) {
		p.paramList()
	}

	if p.eat(TokenRArrow) {
		if p.atAny(typeFirst) {
			p.typeExpr()
		} else {
			p.errorHere(ErrExpectedType)
		}
	}

	if p.at(TokenLBrace) {
		p.block()
	}

	kind := NodeFunction
	if anonymous {
		kind = NodeLambda
	}
	return p.finishNode(m, kind)
}

func (p *parser) paramList() {
	m := p.startNode()
	p.expect(TokenLParen)

	for !p.at(TokenRParen) && !p.eof() {
		switch p.nth(0) {
		case TokenIdent, TokenDiscardName:
			p.param()
		default:
			if p.atAny(paramListRecovery) {
				p.expect(TokenRParen)
				p.finishNode(m, NodeParamList)
				return
			}
			p.bumpWithError(ErrExpectedParameter)
		}
	}
	p.expect(TokenRParen)
	p.finishNode(m, NodeParamList)
}

func (p *parser) param() {
	m := p.startNode()

	// An identifier directly followed by another binding is a label.
	if p.at(TokenIdent) && (p.nth(1) == TokenIdent || p.nth(1) == TokenDiscardName) {
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeLabel)
	}

	// The binding is a pattern so name resolution can treat parameters
	// and let bindings uniformly.
	a := p.startNode()
	v := p.startNode()
	if !p.eat(TokenIdent) && !p.eat(TokenDiscardName) {
		p.errorHere(ErrExpectedName)
	}
	p.finishNode(v, NodePatternVariable)
	p.finishNode(a, NodeAsPattern)

	if p.eat(TokenColon) {
		if p.atAny(typeFirst) {
			p.typeExpr()
		} else {
			p.errorHere(ErrExpectedType)
		}
	}
	if !p.at(TokenRParen) {
		p.expect(TokenComma)
	}
	p.finishNode(m, NodeParam)
}

func (p *parser) block() closed {
	m := p.startNode()
	p.expect(TokenLBrace)
	for !p.at(TokenRBrace) && !p.eof() {
		switch p.nth(0) {
		case TokenLet:
			p.stmtLet()
		case TokenUse:
			p.stmtUse()
		default:
			if p.atAny(exprFirst) {
				p.stmtExpr()
			} else if p.atAny(stmtRecovery) {
				p.expect(TokenRBrace)
				return p.finishNode(m, NodeBlock)
			} else {
				p.bumpWithError(ErrExpectedStatement)
			}
		}
	}
	p.expect(TokenRBrace)
	return p.finishNode(m, NodeBlock)
}

func (p *parser) stmtExpr() {
	m := p.startNode()
	p.expr()
	p.finishNode(m, NodeStmtExpr)
}

func (p *parser) stmtLet() {
	m := p.startNode()
	p.expect(TokenLet)
	p.eat(TokenAssert)
	p.asPattern()
	if p.eat(TokenColon) {
		if p.atAny(typeFirst) {
			p.typeExpr()
		} else {
			p.errorHere(ErrExpectedType)
		}
	}
	p.expect(TokenEqual)
	if p.atAny(exprFirst) {
		p.expr()
	} else {
		p.errorHere(ErrExpectedExpression)
	}
	p.finishNode(m, NodeStmtLet)
}

func (p *parser) stmtUse() {
	m := p.startNode()
	p.expect(TokenUse)
	for p.atAny(patternFirst) && !p.eof() {
		p.useAssignment()
	}
	p.expect(TokenLArrow)
	if p.atAny(exprFirst) {
		p.expr()
	} else {
		p.errorHere(ErrExpectedExpression)
	}
	p.finishNode(m, NodeStmtUse)
}

func (p *parser) useAssignment() {
	m := p.startNode()
	p.asPattern()
	if p.eat(TokenColon) {
		if p.atAny(typeFirst) {
			p.typeExpr()
		} else {
			p.errorHere(ErrExpectedType)
		}
	}
	if !p.at(TokenLArrow) {
		p.expect(TokenComma)
	}
	p.finishNode(m, NodeUseAssignment)
}

// Expressions: a Pratt parser over binding-power pairs. Equal powers on
// both sides make an operator non-associative; chaining two of those with
// the same precedence is reported rather than silently associated.

// InfixBindingPower returns the binding-power pair of an infix operator
// token, or ok=false for non-operators.
func InfixBindingPower(kind SyntaxKind) (lbp, rbp uint8, ok bool) {
	switch kind {
	case TokenPipe:
		return 1, 2, true
	case TokenVBarVBar:
		return 3, 4, true
	case TokenAmperAmper:
		return 5, 6, true
	case TokenEqualEqual, TokenNotEqual:
		return 7, 7, true
	case TokenLess, TokenLessEqual, TokenGreater, TokenGreaterEqual,
		TokenLessDot, TokenLessEqualDot, TokenGreaterDot, TokenGreaterEqualDot:
		return 9, 9, true
	case TokenLtGt:
		return 11, 12, true
	case TokenPlus, TokenMinus, TokenPlusDot, TokenMinusDot:
		return 13, 14, true
	case TokenStar, TokenSlash, TokenPercent, TokenStarDot, TokenSlashDot:
		return 15, 16, true
	}
	return 0, 0, false
}

// PrefixBindingPower returns the binding power of a prefix operator
// token, or ok=false for non-operators.
func PrefixBindingPower(kind SyntaxKind) (uint8, bool) {
	switch kind {
	case TokenBang:
		return 17, true
	case TokenMinus:
		return 19, true
	}
	return 0, false
}

func (p *parser) expr() {
	p.exprBP(0)
}

func (p *parser) exprBP(minBP uint8) {
	lhs, ok := p.exprUnit()
	if !ok {
		return
	}

	// Postfix forms bind tighter than any infix operator: calls, field
	// access and tuple indexing wrap the accumulated left-hand side.
postfix:
	for {
		switch p.nth(0) {
		case TokenLParen:
			m := p.startNodeBefore(lhs)
			p.argList()
			lhs = p.finishNode(m, NodeExprCall)
		case TokenDot:
			switch p.nth(1) {
			case TokenIdent, TokenUpIdent:
				m := p.startNodeBefore(lhs)
				p.bump()
				n := p.startNode()
				p.bump()
				p.finishNode(n, NodeNameRef)
				lhs = p.finishNode(m, NodeFieldAccess)
			case TokenInt:
				m := p.startNodeBefore(lhs)
				p.bump()
				n := p.startNode()
				p.bump()
				p.finishNode(n, NodeLiteral)
				lhs = p.finishNode(m, NodeTupleIndex)
			default:
				break postfix
			}
		default:
			break postfix
		}
	}

	for {
		op := p.nth(0)
		lbp, rbp, ok := InfixBindingPower(op)
		if !ok {
			break
		}
		if lbp == minBP {
			p.errorHere(ErrMultipleNoAssoc)
			break
		}
		if lbp < minBP {
			break
		}

		m := p.startNodeBefore(lhs)
		p.bump()
		if p.atAny(exprFirst) {
			p.exprBP(rbp)
		} else {
			p.errorHere(ErrExpectedExpression)
		}
		kind := NodeBinaryOp
		if op == TokenPipe {
			kind = NodePipe
		}
		lhs = p.finishNode(m, kind)
	}
}

func (p *parser) exprUnit() (closed, bool) {
	switch p.nth(0) {
	case TokenInt, TokenFloat, TokenString, TokenTrue, TokenFalse:
		m := p.startNode()
		p.bump()
		return p.finishNode(m, NodeLiteral), true

	case TokenIdent:
		m := p.startNode()
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeNameRef)
		return p.finishNode(m, NodeVariable), true

	case TokenUpIdent:
		m := p.startNode()
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeNameRef)
		if p.at(TokenLParen) {
			p.argList()
		}
		return p.finishNode(m, NodeVariantConstructor), true

	case TokenDiscardName:
		m := p.startNode()
		p.bump()
		return p.finishNode(m, NodeHole), true

	case TokenMinus, TokenBang:
		bp, _ := PrefixBindingPower(p.nth(0))
		m := p.startNode()
		p.bump()
		if p.atAny(exprFirst) {
			p.exprBP(bp)
		} else {
			p.errorHere(ErrExpectedExpression)
		}
		return p.finishNode(m, NodeUnaryOp), true

	case TokenHash:
		return p.tuple(), true

	case TokenLBracket:
		return p.list(), true

	case TokenLtLt:
		return p.bitString(), true

	case TokenLBrace:
		return p.block(), true

	case TokenCase:
		return p.caseExpr(), true

	case TokenFn:
		m := p.startNode()
		return p.function(m, true), true

	case TokenPanic:
		m := p.startNode()
		p.bump()
		p.todoMessage()
		return p.finishNode(m, NodePanic), true

	case TokenTodo:
		m := p.startNode()
		p.bump()
		p.todoMessage()
		return p.finishNode(m, NodeTodo), true
	}
	return closed{}, false
}

// todoMessage parses the optional `as "reason"` tail of todo and panic.
func (p *parser) todoMessage() {
	if p.eat(TokenAs) {
		n := p.startNode()
		p.expect(TokenString)
		p.finishNode(n, NodeLiteral)
	}
}

func (p *parser) argList() {
	m := p.startNode()
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.atAny(exprFirst) {
			p.arg()
		} else {
			break
		}
	}
	p.expect(TokenRParen)
	p.finishNode(m, NodeArgList)
}

func (p *parser) arg() {
	m := p.startNode()
	if p.at(TokenIdent) && p.nth(1) == TokenColon {
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeLabel)
		p.bump()
	}
	p.expr()
	if !p.at(TokenRParen) {
		p.expect(TokenComma)
	}
	p.finishNode(m, NodeArg)
}

func (p *parser) tuple() closed {
	m := p.startNode()
	p.expect(TokenHash)
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.atAny(exprFirst) {
			p.expr()
			if !p.at(TokenRParen) {
				p.expect(TokenComma)
			}
		} else {
			break
		}
	}
	p.expect(TokenRParen)
	return p.finishNode(m, NodeTuple)
}

func (p *parser) list() closed {
	m := p.startNode()
	p.expect(TokenLBracket)
	for !p.at(TokenRBracket) && !p.eof() {
		if p.at(TokenDotDot) {
			n := p.startNode()
			p.bump()
			if p.atAny(exprFirst) {
				p.expr()
			}
			p.finishNode(n, NodeExprSpread)
		} else if p.atAny(exprFirst) {
			p.expr()
			if !p.at(TokenRBracket) {
				p.expect(TokenComma)
			}
		} else {
			break
		}
	}
	p.expect(TokenRBracket)
	return p.finishNode(m, NodeList)
}

func (p *parser) bitString() closed {
	m := p.startNode()
	p.expect(TokenLtLt)
	for !p.at(TokenGtGt) && !p.eof() {
		if p.atAny(exprFirst) {
			p.bitStringSegment()
		} else if p.atAny(stmtRecovery) {
			break
		} else {
			p.bumpWithError(ErrExpectedExpression)
		}
	}
	p.expect(TokenGtGt)
	return p.finishNode(m, NodeBitString)
}

func (p *parser) bitStringSegment() {
	m := p.startNode()
	p.expr()
	if p.eat(TokenColon) {
		// Options like `8`, `size(4)` or `bit_string`, joined by `-`.
		for {
			if p.atAny(exprFirst) {
				p.exprBP(14)
			} else {
				p.errorHere(ErrExpectedExpression)
			}
			if !p.eat(TokenMinus) {
				break
			}
		}
	}
	if !p.at(TokenGtGt) {
		p.expect(TokenComma)
	}
	p.finishNode(m, NodeBitStringSegment)
}

func (p *parser) caseExpr() closed {
	m := p.startNode()
	p.expect(TokenCase)

	for p.atAny(exprFirst) && !p.eof() {
		p.expr()
		if !p.eat(TokenComma) {
			break
		}
	}

	p.expect(TokenLBrace)
	for !p.at(TokenRBrace) && !p.eof() {
		if p.atAny(patternFirst) {
			p.clause()
		} else if p.atAny(clauseRecovery) {
			break
		} else {
			p.bumpWithError(ErrExpectedPattern)
		}
	}
	p.expect(TokenRBrace)
	return p.finishNode(m, NodeCase)
}

func (p *parser) clause() {
	m := p.startNode()
	for {
		p.alternativePattern()
		if !p.eat(TokenComma) {
			break
		}
	}
	if p.at(TokenIf) {
		n := p.startNode()
		p.bump()
		if p.atAny(exprFirst) {
			p.expr()
		} else {
			p.errorHere(ErrExpectedExpression)
		}
		p.finishNode(n, NodePatternGuard)
	}
	p.expect(TokenRArrow)
	if p.atAny(exprFirst) {
		p.expr()
	} else {
		p.errorHere(ErrExpectedExpression)
	}
	p.finishNode(m, NodeClause)
}

func (p *parser) alternativePattern() {
	m := p.startNode()
	for {
		p.asPattern()
		if !p.eat(TokenVBar) {
			break
		}
	}
	p.finishNode(m, NodeAlternativePattern)
}

func (p *parser) asPattern() {
	m := p.startNode()
	p.pattern()
	if p.eat(TokenAs) {
		n := p.startNode()
		p.expect(TokenIdent)
		p.finishNode(n, NodePatternVariable)
	}
	p.finishNode(m, NodeAsPattern)
}

func (p *parser) pattern() {
	switch p.nth(0) {
	case TokenIdent:
		if p.nth(1) == TokenDot {
			p.variantRefPattern()
			return
		}
		m := p.startNode()
		p.bump()
		p.finishNode(m, NodePatternVariable)

	case TokenUpIdent:
		p.variantRefPattern()

	case TokenDiscardName:
		m := p.startNode()
		p.bump()
		p.finishNode(m, NodeHole)

	case TokenInt, TokenFloat, TokenTrue, TokenFalse:
		m := p.startNode()
		p.bump()
		p.finishNode(m, NodeLiteral)

	case TokenString:
		m := p.startNode()
		p.bump()
		lit := p.finishNode(m, NodeLiteral)
		// String-prefix pattern: "prefix" <> rest
		if p.at(TokenLtGt) {
			w := p.startNodeBefore(lit)
			p.bump()
			n := p.startNode()
			if !p.eat(TokenIdent) && !p.eat(TokenDiscardName) {
				p.errorHere(ErrExpectedName)
			}
			p.finishNode(n, NodePatternVariable)
			p.finishNode(w, NodePatternConcat)
		}

	case TokenMinus:
		m := p.startNode()
		p.bump()
		if p.at(TokenInt) || p.at(TokenFloat) {
			n := p.startNode()
			p.bump()
			p.finishNode(n, NodeLiteral)
		} else {
			p.errorHere(ErrExpectedPattern)
		}
		p.finishNode(m, NodeUnaryPattern)

	case TokenHash:
		p.patternTuple()

	case TokenLBracket:
		p.patternList()

	case TokenDotDot:
		m := p.startNode()
		p.bump()
		if p.at(TokenIdent) {
			n := p.startNode()
			p.bump()
			p.finishNode(n, NodeName)
		}
		p.finishNode(m, NodePatternSpread)

	default:
		if !p.atAny(clauseRecovery) && !p.eof() {
			p.bumpWithError(ErrExpectedPattern)
		} else {
			p.errorHere(ErrExpectedPattern)
		}
	}
}

// variantRefPattern parses `Some(a)`, `int.Bla(..)` and friends.
func (p *parser) variantRefPattern() {
	m := p.startNode()

	if p.at(TokenIdent) {
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeModuleName)
		p.expect(TokenDot)
	}

	n := p.startNode()
	p.expect(TokenUpIdent)
	p.finishNode(n, NodeNameRef)

	if p.at(TokenLParen) {
		p.variantRefFieldList()
	}
	p.finishNode(m, NodeVariantRef)
}

func (p *parser) variantRefFieldList() {
	m := p.startNode()
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.atAny(patternFirst) {
			p.variantRefField()
		} else if p.atAny(clauseRecovery) {
			break
		} else {
			p.bumpWithError(ErrExpectedPattern)
		}
	}
	p.expect(TokenRParen)
	p.finishNode(m, NodeVariantRefFieldList)
}

func (p *parser) variantRefField() {
	m := p.startNode()
	if p.at(TokenIdent) && p.nth(1) == TokenColon {
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeLabel)
		p.bump()
	}
	p.asPattern()
	if !p.at(TokenRParen) {
		p.expect(TokenComma)
	}
	p.finishNode(m, NodeVariantRefField)
}

func (p *parser) patternTuple() {
	m := p.startNode()
	p.expect(TokenHash)
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.atAny(patternFirst) {
			p.asPattern()
			if !p.at(TokenRParen) {
				p.expect(TokenComma)
			}
		} else {
			break
		}
	}
	p.expect(TokenRParen)
	p.finishNode(m, NodePatternTuple)
}

func (p *parser) patternList() {
	m := p.startNode()
	p.expect(TokenLBracket)
	for !p.at(TokenRBracket) && !p.eof() {
		if p.atAny(patternFirst) {
			p.asPattern()
			if !p.at(TokenRBracket) {
				p.expect(TokenComma)
			}
		} else {
			break
		}
	}
	p.expect(TokenRBracket)
	p.finishNode(m, NodePatternList)
}

// Module-level declarations.

func (p *parser) moduleConstant(m opened) {
	p.bump()
	n := p.startNode()
	p.expect(TokenIdent)
	p.finishNode(n, NodeName)
	if p.eat(TokenColon) {
		if p.atAny(typeFirst) {
			p.typeExpr()
		} else {
			p.errorHere(ErrExpectedType)
		}
	}
	p.expect(TokenEqual)
	if p.atAny(constFirst) {
		p.constExpr()
	} else {
		p.errorHere(ErrExpectedConstant)
	}
	p.finishNode(m, NodeModuleConstant)
}

func (p *parser) constExpr() {
	switch p.nth(0) {
	case TokenInt, TokenFloat, TokenString, TokenTrue, TokenFalse:
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeLiteral)
	case TokenMinus:
		n := p.startNode()
		p.bump()
		if p.at(TokenInt) || p.at(TokenFloat) {
			p.bump()
		} else {
			p.errorHere(ErrExpectedConstant)
		}
		p.finishNode(n, NodeLiteral)
	case TokenIdent, TokenUpIdent:
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeNameRef)
	case TokenHash:
		p.constTuple()
	case TokenLBracket:
		p.constList()
	}
}

func (p *parser) constTuple() {
	m := p.startNode()
	p.expect(TokenHash)
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.atAny(constFirst) {
			p.constExpr()
			if !p.at(TokenRParen) {
				p.expect(TokenComma)
			}
		} else {
			break
		}
	}
	p.expect(TokenRParen)
	p.finishNode(m, NodeConstantTuple)
}

func (p *parser) constList() {
	m := p.startNode()
	p.expect(TokenLBracket)
	for !p.at(TokenRBracket) && !p.eof() {
		if p.atAny(constFirst) {
			p.constExpr()
			if !p.at(TokenRBracket) {
				p.expect(TokenComma)
			}
		} else {
			break
		}
	}
	p.expect(TokenRBracket)
	p.finishNode(m, NodeConstantList)
}

// customType parses sum types and type aliases; which one it is only
// becomes clear after the name and generic parameters.
func (p *parser) customType(m opened) {
	isOpaque := p.eat(TokenOpaque)
	p.expect(TokenType)

	n := p.startNode()
	p.expect(TokenUpIdent)
	p.finishNode(n, NodeTypeName)

	if p.at(TokenLParen) {
		p.genericParamList()
	}

	switch {
	case p.at(TokenEqual):
		if isOpaque {
			p.errorHere(ErrOpaqueAlias)
		}
		p.bump()
		if p.atAny(typeFirst) {
			p.typeExpr()
		} else {
			p.errorHere(ErrExpectedType)
		}
		p.finishNode(m, NodeCustomTypeAlias)

	case p.at(TokenLBrace):
		p.bump()
		for !p.at(TokenRBrace) && !p.eof() {
			if p.at(TokenUpIdent) {
				p.variant()
			} else if p.atAny(stmtRecovery) {
				break
			} else {
				p.bumpWithError(ErrExpectedName)
			}
		}
		p.expect(TokenRBrace)
		p.finishNode(m, NodeAdt)

	default:
		p.finishNode(m, NodeAdt)
	}
}

func (p *parser) genericParamList() {
	m := p.startNode()
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.at(TokenIdent) {
			n := p.startNode()
			p.bump()
			p.finishNode(n, NodeName)
			if !p.at(TokenRParen) {
				p.expect(TokenComma)
			}
		} else if p.atAny(stmtRecovery) {
			break
		} else {
			p.bumpWithError(ErrExpectedName)
		}
	}
	p.expect(TokenRParen)
	p.finishNode(m, NodeGenericParamList)
}

func (p *parser) variant() {
	m := p.startNode()
	n := p.startNode()
	p.expect(TokenUpIdent)
	p.finishNode(n, NodeName)
	if p.at(TokenLParen) {
		p.constructorFieldList()
	}
	p.finishNode(m, NodeVariant)
}

func (p *parser) constructorFieldList() {
	m := p.startNode()
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.atAny(typeFirst) {
			p.constructorField()
		} else if p.atAny(stmtRecovery) {
			break
		} else {
			p.bumpWithError(ErrExpectedType)
		}
	}
	p.expect(TokenRParen)
	p.finishNode(m, NodeConstructorFieldList)
}

func (p *parser) constructorField() {
	m := p.startNode()
	if p.at(TokenIdent) && p.nth(1) == TokenColon {
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeLabel)
		p.bump()
	}
	if p.atAny(typeFirst) {
		p.typeExpr()
	} else {
		p.errorHere(ErrExpectedType)
	}
	if !p.at(TokenRParen) {
		p.expect(TokenComma)
	}
	p.finishNode(m, NodeConstructorField)
}

func (p *parser) importStatement(m opened) {
	p.expect(TokenImport)

	mp := p.startNode()
	for (p.at(TokenIdent) || p.at(TokenUpIdent)) && !p.eof() {
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodePath)
		if p.at(TokenSlash) {
			p.bump()
		} else {
			break
		}
	}
	p.finishNode(mp, NodeModulePath)

	if p.at(TokenDot) {
		p.unqualifiedImports()
	}

	if p.eat(TokenAs) {
		n := p.startNode()
		p.expect(TokenIdent)
		p.finishNode(n, NodeName)
	}

	p.finishNode(m, NodeImport)
}

func (p *parser) unqualifiedImports() {
	p.expect(TokenDot)
	p.expect(TokenLBrace)
	for !p.eof() && !p.at(TokenRBrace) {
		switch p.nth(0) {
		case TokenIdent:
			p.unqualifiedImport(TokenIdent, NodeName)
		case TokenUpIdent:
			p.unqualifiedImport(TokenUpIdent, NodeTypeName)
		default:
			if p.atAny(importRecovery) {
				p.expect(TokenRBrace)
				return
			}
			p.bumpWithError(ErrExpectedName)
		}
	}
	p.expect(TokenRBrace)
}

func (p *parser) unqualifiedImport(token, nameKind SyntaxKind) {
	m := p.startNode()
	n := p.startNode()
	p.expect(token)
	p.finishNode(n, nameKind)
	if p.eat(TokenAs) {
		n := p.startNode()
		p.expect(token)
		p.finishNode(n, nameKind)
	}
	if !p.at(TokenRBrace) {
		p.expect(TokenComma)
	}
	p.finishNode(m, NodeUnqualifiedImport)
}

// Type expressions.

func (p *parser) typeExpr() {
	switch p.nth(0) {
	case TokenFn:
		p.fnType()

	case TokenHash:
		p.tupleType()

	case TokenIdent:
		if p.nth(1) == TokenDot {
			m := p.startNode()
			n := p.startNode()
			p.expect(TokenIdent)
			p.finishNode(n, NodeModuleName)
			p.expect(TokenDot)
			if p.at(TokenUpIdent) {
				tn := p.startNode()
				p.bump()
				p.finishNode(tn, NodeTypeName)
			} else if !p.atAny(constRecovery) && !p.eof() {
				p.bumpWithError(ErrExpectedType)
			} else {
				p.errorHere(ErrExpectedType)
			}
			p.maybeTypeApplication(p.finishNode(m, NodeTypeNameRef))
			return
		}
		m := p.startNode()
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeName)
		p.finishNode(m, NodeTypeNameRef)

	case TokenUpIdent:
		m := p.startNode()
		n := p.startNode()
		p.bump()
		p.finishNode(n, NodeTypeName)
		p.maybeTypeApplication(p.finishNode(m, NodeTypeNameRef))

	default:
		if !p.atAny(stmtRecovery) && !p.eof() {
			p.bumpWithError(ErrExpectedType)
		} else {
			p.errorHere(ErrExpectedType)
		}
	}
}

func (p *parser) maybeTypeApplication(ref closed) {
	if !p.at(TokenLParen) {
		return
	}
	m := p.startNodeBefore(ref)
	p.typeArgList()
	p.finishNode(m, NodeTypeApplication)
}

func (p *parser) typeArgList() {
	m := p.startNode()
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.atAny(typeFirst) {
			n := p.startNode()
			p.typeExpr()
			if !p.at(TokenRParen) {
				p.expect(TokenComma)
			}
			p.finishNode(n, NodeTypeArg)
		} else {
			break
		}
	}
	p.expect(TokenRParen)
	p.finishNode(m, NodeTypeArgList)
}

func (p *parser) fnType() {
	m := p.startNode()
	p.expect(TokenFn)
	n := p.startNode()
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.atAny(typeFirst) {
			p.typeExpr()
			if !p.at(TokenRParen) {
				p.expect(TokenComma)
			}
		} else {
			break
		}
	}
	p.finishNode(n, NodeParamTypeList)

	p.expect(TokenRParen)
	p.expect(TokenRArrow)
	if p.atAny(typeFirst) {
		p.typeExpr()
	} else {
		p.errorHere(ErrExpectedType)
	}
	p.finishNode(m, NodeFnType)
}

func (p *parser) tupleType() {
	m := p.startNode()
	p.expect(TokenHash)
	p.expect(TokenLParen)
	for !p.at(TokenRParen) && !p.eof() {
		if p.atAny(typeFirst) {
			p.typeExpr()
			if !p.at(TokenRParen) {
				p.expect(TokenComma)
			}
		} else {
			break
		}
	}
	p.expect(TokenRParen)
	p.finishNode(m, NodeTupleType)
}
