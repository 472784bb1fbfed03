/*
File   : langfront/parser/precedence.go
Package: parser

Precedence ladder for the Pratt expression parser, grounded on the
teacher's getPrecedence/priority-constant design in
parser/parser_precedence.go, generalized to spec.md §4.2's exact ladder:

	Lowest < Assign < LogicalOr < LogicalAnd < BitOr < BitXor < BitAnd
	< Equals < LessGreater < Shift < Sum < Product < Power < Prefix < Call
*/
package parser

import "github.com/akashmaji946/langfront/token"

type precedence int

const (
	Lowest precedence = iota
	Assign
	LogicalOr
	LogicalAnd
	BitOr
	BitXor
	BitAnd
	Equals
	LessGreater
	Shift
	Sum
	Product
	Power
	Prefix
	Call
)

// precedenceOf returns the infix binding power of kind, or Lowest if kind
// is not an infix operator. This is the single place the ladder is
// consulted, keeping it auditable per spec.md §9's design note.
func precedenceOf(kind token.Kind) precedence {
	switch kind {
	case token.ASSIGN:
		return Assign
	case token.LOGOR, token.KW_OR:
		return LogicalOr
	case token.LOGAND, token.KW_AND:
		return LogicalAnd
	case token.BIT_OR:
		return BitOr
	case token.BIT_XOR:
		return BitXor
	case token.BIT_AND:
		return BitAnd
	case token.EQ, token.NEQ, token.STRICT_EQ, token.STRICT_NEQ:
		return Equals
	case token.LT, token.LE, token.GT, token.GE:
		return LessGreater
	case token.SHL, token.USHL, token.SHR, token.USHR:
		return Shift
	case token.PLUS, token.MINUS:
		return Sum
	case token.STAR, token.SLASH, token.PERCENT:
		return Product
	case token.POW:
		return Power
	case token.LPAREN, token.LBRACKET, token.DOT:
		return Call
	default:
		return Lowest
	}
}
