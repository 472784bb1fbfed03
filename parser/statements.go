/*
File   : langfront/parser/statements.go
Package: parser

Statement productions, dispatched by cur token kind per spec.md §4.2's
statement dispatch table. Grounded on the teacher's per-construct parser
files (parser_conditionals.go, parser_loops.go, parser_functions.go,
parser_structs.go, parser_statements.go), folded into the source
language's grammar: no `var`/`let`/`const` distinction, a single
TypeName-led variable declaration, `function`/`sub` in place of a single
`func`, and a class body restricted to function/sub members.
*/
package parser

import (
	"github.com/akashmaji946/langfront/ast"
	"github.com/akashmaji946/langfront/diagnostic"
	"github.com/akashmaji946/langfront/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.FUNCTION, token.SUB:
		return p.parseFunctionDeclaration()
	case token.CLASS:
		return p.parseClassDeclaration()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForOrForEach()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		stmt := &ast.BreakStatement{SourceSpan: p.cur.Span}
		if p.peekIs(token.SEMI) {
			p.nextToken()
		}
		return stmt
	case token.CONTINUE:
		stmt := &ast.ContinueStatement{SourceSpan: p.cur.Span}
		if p.peekIs(token.SEMI) {
			p.nextToken()
		}
		return stmt
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.IDENT:
		if p.peekIs(token.IDENT) {
			return p.parseVariableDeclaration()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseVariableDeclaration parses `TypeName var (= expr)? (, var (= expr)?)* ;`
// per spec.md §4.2. cur is the leading type-name identifier.
func (p *Parser) parseVariableDeclaration() ast.Statement {
	start := p.cur.Span
	typeName := p.cur.Literal

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	var decls []ast.Declarator
	for {
		name := p.cur.Literal
		var value ast.Expression
		if p.peekIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			value = p.parseExpression(Lowest)
		}
		decls = append(decls, ast.Declarator{Name: name, Value: value})

		if p.peekIs(token.COMMA) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			continue
		}
		break
	}

	end := p.cur.Span
	if !p.expectPeek(token.SEMI) {
		return nil
	}
	end = p.cur.Span

	return &ast.VariableDeclaration{
		TypeName:    typeName,
		Declarators: decls,
		SourceSpan:  token.Merge(start, end),
	}
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	start := p.cur.Span
	kind := ast.Function
	if p.curIs(token.SUB) {
		kind = ast.Sub
	}

	returnType := ""
	if kind == ast.Function {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		returnType = p.cur.Literal
	}

	if !p.expectPeek(token.IDENT) {
		p.errorf(diagnostic.ExpectedReturnType, "expected function name")
		return nil
	}
	name := p.cur.Literal

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParameterList()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatementBody()

	return &ast.FunctionDeclaration{
		Kind: kind, Name: name, ReturnType: returnType,
		Params: params, Body: body,
		SourceSpan: token.Merge(start, body.SourceSpan),
	}
}

func (p *Parser) parseParameterList() []ast.Parameter {
	var params []ast.Parameter
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	for {
		if !p.curIs(token.IDENT) {
			p.errorf(diagnostic.ExpectedParameterType, "expected parameter type")
			return params
		}
		typeName := p.cur.Literal
		if !p.expectPeek(token.IDENT) {
			return params
		}
		paramName := p.cur.Literal
		var def ast.Expression
		if p.peekIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			def = p.parseExpression(Lowest)
		}
		params = append(params, ast.Parameter{Name: paramName, Type: typeName, Default: def})

		if p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.RPAREN)
	return params
}

func (p *Parser) parseClassDeclaration() ast.Statement {
	start := p.cur.Span
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.cur.Literal

	superclass := ""
	if p.peekIs(token.EXTENDS) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		superclass = p.cur.Literal
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	var members []ast.Statement
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if !p.curIs(token.FUNCTION) && !p.curIs(token.SUB) {
			p.errorf(diagnostic.ExpectedMemberForClass, "expected function or sub member, got %s", p.cur.Kind)
			p.nextToken()
			continue
		}
		member := p.parseFunctionDeclaration()
		if member != nil {
			members = append(members, member)
		}
		p.nextToken()
	}

	return &ast.ClassDeclaration{
		Name: name, Superclass: superclass, Members: members,
		SourceSpan: token.Merge(start, p.cur.Span),
	}
}

func (p *Parser) parseIfStatement() ast.Statement {
	start := p.cur.Span
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(Lowest)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	consequence := p.parseStatement()
	if consequence == nil {
		return nil
	}

	var alternative ast.Statement
	end := consequence.Span()
	if p.peekIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		alternative = p.parseStatement()
		if alternative == nil {
			return nil
		}
		end = alternative.Span()
	}

	return &ast.IfStatement{
		Condition: cond, Consequence: consequence, Alternative: alternative,
		SourceSpan: token.Merge(start, end),
	}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	start := p.cur.Span
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(Lowest)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}

	return &ast.WhileStatement{
		Condition: cond, Body: body,
		SourceSpan: token.Merge(start, body.Span()),
	}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.cur.Span
	var value ast.Expression
	if !p.peekIs(token.SEMI) {
		p.nextToken()
		value = p.parseExpression(Lowest)
	}
	end := p.cur.Span
	if !p.expectPeek(token.SEMI) {
		return nil
	}
	end = p.cur.Span
	return &ast.ReturnStatement{Value: value, SourceSpan: token.Merge(start, end)}
}

func (p *Parser) parseBlockStatement() ast.Statement {
	return p.parseBlockStatementBody()
}

// parseBlockStatementBody assumes cur is `{` and consumes through the
// matching `}`, leaving cur positioned on `}`.
func (p *Parser) parseBlockStatementBody() *ast.BlockStatement {
	start := p.cur.Span
	p.nextToken()

	var stmts []ast.Statement
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}

	return &ast.BlockStatement{Statements: stmts, SourceSpan: token.Merge(start, p.cur.Span)}
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	start := p.cur.Span
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	subject := p.parseExpression(Lowest)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	var cases []ast.SwitchCase
	var defaultBody []ast.Statement
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		switch p.cur.Kind {
		case token.CASE:
			p.nextToken()
			val := p.parseExpression(Lowest)
			if !p.expectPeek(token.COLON) {
				return nil
			}
			p.nextToken()
			var body []ast.Statement
			for !p.curIs(token.CASE) && !p.curIs(token.DEFAULT) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
				stmt := p.parseStatement()
				if stmt != nil {
					body = append(body, stmt)
				}
				p.nextToken()
			}
			cases = append(cases, ast.SwitchCase{Value: val, Body: body})
			continue
		case token.DEFAULT:
			p.nextToken()
			if !p.expectPeek(token.COLON) {
				return nil
			}
			p.nextToken()
			for !p.curIs(token.CASE) && !p.curIs(token.DEFAULT) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
				stmt := p.parseStatement()
				if stmt != nil {
					defaultBody = append(defaultBody, stmt)
				}
				p.nextToken()
			}
			continue
		default:
			p.errorf(diagnostic.UnexpectedToken, "expected case or default, got %s", p.cur.Kind)
			p.nextToken()
		}
	}

	return &ast.SwitchStatement{
		Expression: subject, Cases: cases, Default: defaultBody,
		SourceSpan: token.Merge(start, p.cur.Span),
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.cur.Span
	expr := p.parseExpression(Lowest)
	if expr == nil {
		return nil
	}
	end := expr.Span()
	if p.peekIs(token.SEMI) {
		p.nextToken()
		end = p.cur.Span
	}
	return &ast.ExpressionStatement{Expr: expr, SourceSpan: token.Merge(start, end)}
}
