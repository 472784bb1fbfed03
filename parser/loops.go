/*
File   : langfront/parser/loops.go
Package: parser

C-style for and for-each bodies, split from the probe in foreach.go and
grounded on the teacher's parser_loops.go for-loop production shape.
*/
package parser

import (
	"github.com/akashmaji946/langfront/ast"
	"github.com/akashmaji946/langfront/diagnostic"
	"github.com/akashmaji946/langfront/token"
)

// parseForBody parses `( init? ; cond? ; update? ) body` with p.cur on
// the already-consumed `(`.
func (p *Parser) parseForBody(start token.Span) ast.Statement {
	p.nextToken() // cur = init start, or ';'

	var init ast.Statement
	switch {
	case p.curIs(token.SEMI):
		// no init; cur already on the first separator
	case p.curIs(token.IDENT) && p.peekIs(token.IDENT):
		init = p.parseVariableDeclaration() // ends with cur on ';'
		if init == nil {
			return nil
		}
	default:
		expr := p.parseExpression(Lowest)
		if !p.expectPeek(token.SEMI) {
			return nil
		}
		init = &ast.ExpressionStatement{Expr: expr, SourceSpan: token.Merge(expr.Span(), p.cur.Span)}
	}

	if !p.curIs(token.SEMI) {
		p.errorf(diagnostic.UnexpectedToken, "expected ';' in for-loop header, got %s", p.cur.Kind)
		return nil
	}

	p.nextToken() // cur = cond start, or second ';'
	var cond ast.Expression
	if !p.curIs(token.SEMI) {
		cond = p.parseExpression(Lowest)
		if !p.expectPeek(token.SEMI) {
			return nil
		}
	}

	p.nextToken() // cur = update start, or ')'
	var update ast.Expression
	if !p.curIs(token.RPAREN) {
		update = p.parseExpression(Lowest)
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}

	p.nextToken() // cur = body start
	body := p.parseStatement()
	if body == nil {
		return nil
	}

	return &ast.ForStatement{
		Init: init, Condition: cond, Update: update, Body: body,
		SourceSpan: token.Merge(start, body.Span()),
	}
}

// parseForEachBody parses `( Name (in|of) expr ) body` with p.cur on the
// already-consumed `(`.
func (p *Parser) parseForEachBody(start token.Span) ast.Statement {
	p.nextToken() // cur = binding name
	if !p.curIs(token.IDENT) {
		p.errorf(diagnostic.ExpectedForEachIdentifier, "expected identifier in for-each, got %s", p.cur.Kind)
		return nil
	}
	bindingName := p.cur.Literal

	if !p.peekIs(token.KW_IN) && !p.peekIs(token.KW_OF) {
		p.errorf(diagnostic.ExpectedInOrOf, "expected 'in' or 'of' in for-each, got %s", p.peek.Kind)
		return nil
	}
	p.nextToken() // cur = in/of
	kind := ast.In
	if p.curIs(token.KW_OF) {
		kind = ast.Of
	}

	p.nextToken() // cur = iterable start
	iterable := p.parseExpression(Lowest)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	p.nextToken() // cur = body start
	body := p.parseStatement()
	if body == nil {
		return nil
	}

	return &ast.ForEachStatement{
		Binding: ast.Binding{Name: bindingName}, Iterable: iterable, Kind: kind, Body: body,
		SourceSpan: token.Merge(start, body.Span()),
	}
}
