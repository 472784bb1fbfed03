/*
File   : langfront/parser/foreach.go
Package: parser

The for/for-each disambiguation probe from spec.md §4.2 and §9: after
consuming the opening `(` of a `for`, scan a cloned view of the lexer
state — never the real token buffer — tracking parenthesis depth from 1,
to decide whether this is a C-style for or a for-each. Grounded on the
teacher's cheap-value-copy Lexer design (lexer/lexer.go's struct has no
owning pointers), generalized here into the actual probe loop the teacher
does not need (go-mix has no for-each ambiguity to resolve).
*/
package parser

import (
	"github.com/akashmaji946/langfront/ast"
	"github.com/akashmaji946/langfront/token"
)

// isForEach runs the bounded speculative scan described in spec.md §4.2.
// p.cur is the `(` already consumed; p.peek is the first token inside it.
// No tokens are consumed from p.lex or p.peek/p.cur during the probe.
func (p *Parser) isForEach() bool {
	depth := 1
	tok := p.peek
	clone := p.lex.Clone()

	for {
		switch tok.Kind {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return false
			}
		case token.SEMI:
			return false
		case token.KW_IN, token.KW_OF:
			if depth == 1 {
				return true
			}
		case token.EOF:
			return false
		}
		next, _ := clone.NextToken()
		tok = next
	}
}

// parseForOrForEach dispatches on the probe's result, per spec.md §4.2.
func (p *Parser) parseForOrForEach() ast.Statement {
	start := p.cur.Span
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	if p.isForEach() {
		return p.parseForEachBody(start)
	}
	return p.parseForBody(start)
}
