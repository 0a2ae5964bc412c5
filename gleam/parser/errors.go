package parser

import "fmt"

// ErrorKind is the closed set of user-visible syntax error categories.
type ErrorKind int

const (
	ErrExpectToken ErrorKind = iota
	ErrExpectedExpression
	ErrExpectedStatement
	ErrExpectedType
	ErrExpectedParameter
	ErrExpectedPattern
	ErrExpectedName
	ErrExpectedConstant
	ErrMultipleNoAssoc
	ErrUnexpectedImport
	ErrOpaqueAlias
)

// Error is one recorded syntax diagnostic. Errors are ordered by discovery,
// left to right over the input, and never removed once recorded.
type Error struct {
	Range TextRange
	Kind  ErrorKind

	// Expected is set for ErrExpectToken.
	Expected SyntaxKind
}

func (e Error) Message() string {
	switch e.Kind {
	case ErrExpectToken:
		return fmt.Sprintf("expected %q", e.Expected.String())
	case ErrExpectedExpression:
		return "expected an expression"
	case ErrExpectedStatement:
		return "expected a statement"
	case ErrExpectedType:
		return "expected a type"
	case ErrExpectedParameter:
		return "expected a parameter"
	case ErrExpectedPattern:
		return "expected a pattern"
	case ErrExpectedName:
		return "expected a name"
	case ErrExpectedConstant:
		return "expected a constant expression"
	case ErrMultipleNoAssoc:
		return "multiple non-associative operators of the same precedence; use parentheses"
	case ErrUnexpectedImport:
		return "imports cannot be public"
	case ErrOpaqueAlias:
		return "type aliases cannot be opaque"
	}
	return "syntax error"
}

func (e Error) String() string {
	return fmt.Sprintf("%s: %s", e.Range, e.Message())
}
