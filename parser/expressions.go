/*
File   : langfront/parser/expressions.go
Package: parser

The Pratt expression driver and every prefix/infix production, grounded on
the teacher's parser_expressions.go (UnaryFuncs/BinaryFuncs dispatch
tables, grouped-expression and array/object literal productions)
generalized to spec.md §4.2's exact production list and precedence ladder.

Cast{target_type, expression} is modeled in package ast (spec.md §3) but
spec.md defines no surface syntax producing it — no `cast` keyword, and a
`(Identifier) expr` heuristic collides with calling a parenthesized
expression (`(f)(x)`). This parser does not produce CastExpression nodes;
see the design ledger for this decision.
*/
package parser

import (
	"github.com/akashmaji946/langfront/ast"
	"github.com/akashmaji946/langfront/diagnostic"
	"github.com/akashmaji946/langfront/token"
)

// parseExpression is the Pratt driver: it parses a prefix production from
// cur, then repeatedly applies the matching infix production while the
// peek token's precedence strictly exceeds minPrec, per spec.md §4.2.
func (p *Parser) parseExpression(minPrec precedence) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		p.errorf(diagnostic.UnexpectedExpressionStart, "unexpected token %s at start of expression", p.cur.Kind)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekIs(token.SEMI) && minPrec < precedenceOf(p.peek.Kind) {
		infix, ok := p.infixFns[p.peek.Kind]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Name: p.cur.Literal, SourceSpan: p.cur.Span}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	return &ast.IntLiteral{Value: p.cur.IntValue, SourceSpan: p.cur.Span}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	return &ast.FloatLiteral{Value: p.cur.FloatValue, SourceSpan: p.cur.Span}
}

// parseStringLiteral carries the lexer's already-captured raw text; the
// Span already covers both quotes per spec.md §9's pinned decision.
func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Value: p.cur.Literal, SourceSpan: p.cur.Span}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Value: p.cur.BoolValue, SourceSpan: p.cur.Span}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{SourceSpan: p.cur.Span}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	start := p.cur.Span
	op := p.cur.Literal
	p.nextToken()
	right := p.parseExpression(Prefix)
	if right == nil {
		return nil
	}
	return &ast.PrefixExpression{Op: op, Right: right, SourceSpan: token.Merge(start, right.Span())}
}

// parseInfixExpression handles every left-associative binary operator,
// including `**` — spec.md §9 notes the source's Pratt loop makes `**`
// left-associative, and pins that as this implementation's choice over
// the mathematical right-associative convention.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	op := p.cur.Literal
	prec := precedenceOf(p.cur.Kind)
	p.nextToken()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &ast.InfixExpression{Left: left, Op: op, Right: right, SourceSpan: token.Merge(left.Span(), right.Span())}
}

// parseAssignmentExpression is the one right-associative infix production
// (spec.md §4.2): recursing at Assign-1 lets a nested `a = b = c` bind as
// `a = (b = c)`.
func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	p.nextToken()
	right := p.parseExpression(Assign - 1)
	if right == nil {
		return nil
	}
	return &ast.AssignmentExpression{Left: left, Right: right, SourceSpan: token.Merge(left.Span(), right.Span())}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(Lowest)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallExpression{Function: function, Arguments: args, SourceSpan: token.Merge(function.Span(), p.cur.Span)}
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	p.nextToken()
	index := p.parseExpression(Lowest)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpression{Left: left, Index: index, SourceSpan: token.Merge(left.Span(), p.cur.Span)}
}

func (p *Parser) parseMemberExpression(left ast.Expression) ast.Expression {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.MemberExpression{Left: left, Property: p.cur.Literal, SourceSpan: token.Merge(left.Span(), p.cur.Span)}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	start := p.cur.Span
	elements := p.parseExpressionList(token.RBRACKET)
	return &ast.ArrayLiteral{Elements: elements, SourceSpan: token.Merge(start, p.cur.Span)}
}

// parseExpressionList assumes cur is the opening delimiter (already
// positioned there by the prefix/infix dispatch) and consumes through the
// matching end delimiter, leaving cur on it.
func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	var list []ast.Expression
	if p.peekIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(Lowest))
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(Lowest))
	}
	p.expectPeek(end)
	return list
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	start := p.cur.Span
	var pairs []ast.ObjectPair

	if p.peekIs(token.RBRACE) {
		p.nextToken()
		return &ast.ObjectLiteral{Pairs: pairs, SourceSpan: token.Merge(start, p.cur.Span)}
	}

	p.nextToken()
	for {
		key := p.parseExpression(Lowest)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(Lowest)
		pairs = append(pairs, ast.ObjectPair{Key: key, Value: value})

		if p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.ObjectLiteral{Pairs: pairs, SourceSpan: token.Merge(start, p.cur.Span)}
}

func (p *Parser) parseNewExpression() ast.Expression {
	start := p.cur.Span
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	class := p.cur.Literal
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	args := p.parseExpressionList(token.RPAREN)
	return &ast.NewExpression{Class: class, Arguments: args, SourceSpan: token.Merge(start, p.cur.Span)}
}
