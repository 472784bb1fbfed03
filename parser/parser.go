/*
File   : langfront/parser/parser.go
Package: parser

Package parser implements a Pratt (top-down operator precedence) parser
that consumes a lexer.Lexer and produces an *ast.Program, grounded on the
teacher's Parser design in parser/parser.go (two-token buffer, registered
unary/binary parse functions, accumulated error list) generalized to the
source language's grammar and to a pure AST with no embedded evaluated
value.
*/
package parser

import (
	"github.com/akashmaji946/langfront/ast"
	"github.com/akashmaji946/langfront/diagnostic"
	"github.com/akashmaji946/langfront/lexer"
	"github.com/akashmaji946/langfront/token"
)

type prefixParseFn func() ast.Expression
type infixParseFn func(left ast.Expression) ast.Expression

// Parser holds the two-token lookahead buffer (cur, peek) described in
// spec.md §4.2, the registered Pratt parse-function tables, and the
// accumulated diagnostic list — the only mutable state a parse session
// carries, per spec.md §9's "error accumulation" design note.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	diagnostics []*diagnostic.Diagnostic

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New creates a Parser over src and primes the two-token buffer.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}

	p.prefixFns = map[token.Kind]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntLiteral,
		token.FLOAT:    p.parseFloatLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TRUE:     p.parseBooleanLiteral,
		token.FALSE:    p.parseBooleanLiteral,
		token.NULL:     p.parseNullLiteral,
		token.BANG:     p.parsePrefixExpression,
		token.MINUS:    p.parsePrefixExpression,
		token.PLUS:     p.parsePrefixExpression,
		token.BIT_NOT:  p.parsePrefixExpression,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACKET: p.parseArrayLiteral,
		token.LBRACE:   p.parseObjectLiteral,
		token.NEW:      p.parseNewExpression,
	}

	p.infixFns = map[token.Kind]infixParseFn{
		token.PLUS: p.parseInfixExpression, token.MINUS: p.parseInfixExpression,
		token.STAR: p.parseInfixExpression, token.SLASH: p.parseInfixExpression,
		token.PERCENT: p.parseInfixExpression, token.POW: p.parseInfixExpression,
		token.EQ: p.parseInfixExpression, token.NEQ: p.parseInfixExpression,
		token.STRICT_EQ: p.parseInfixExpression, token.STRICT_NEQ: p.parseInfixExpression,
		token.LT: p.parseInfixExpression, token.LE: p.parseInfixExpression,
		token.GT: p.parseInfixExpression, token.GE: p.parseInfixExpression,
		token.LOGAND: p.parseInfixExpression, token.LOGOR: p.parseInfixExpression,
		token.KW_AND: p.parseInfixExpression, token.KW_OR: p.parseInfixExpression,
		token.BIT_AND: p.parseInfixExpression, token.BIT_OR: p.parseInfixExpression,
		token.BIT_XOR: p.parseInfixExpression,
		token.SHL:     p.parseInfixExpression, token.USHL: p.parseInfixExpression,
		token.SHR: p.parseInfixExpression, token.USHR: p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
		token.LBRACKET: p.parseIndexExpression,
		token.DOT:      p.parseMemberExpression,
		token.ASSIGN:   p.parseAssignmentExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	for {
		tok, diag := p.lex.NextToken()
		if diag != nil {
			p.diagnostics = append(p.diagnostics, diag)
			continue
		}
		p.peek = tok
		break
	}
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// expectPeek advances past peek if it matches k, otherwise records
// SF0010 ("unexpected token") and leaves the buffer unmoved.
func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekIs(k) {
		p.nextToken()
		return true
	}
	p.errorf(diagnostic.UnexpectedToken, "expected %s, got %s", k, p.peek.Kind)
	return false
}

func (p *Parser) errorf(code diagnostic.Code, format string, args ...any) {
	p.diagnostics = append(p.diagnostics,
		diagnostic.Newf(code, p.cur.Span.Line, p.cur.Span.Column, format, args...))
}

// Parse runs the parser to completion, returning the Program on success.
// Per spec.md §4.2, a non-empty diagnostic list means the AST is absent.
func (p *Parser) Parse() (*ast.Program, []*diagnostic.Diagnostic) {
	program := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	if len(p.diagnostics) > 0 {
		return nil, p.diagnostics
	}
	return program, nil
}

// Parse is the package-level entry point named in spec.md §6.
func Parse(src string) (*ast.Program, []*diagnostic.Diagnostic) {
	return New(src).Parse()
}
