/*
File: langfront/serialize/ast.go

encoder is an ast.Visitor that builds the JSON-ready tagged-union form of
a node, following the same one-sub-encoder-per-child shape as
ast.Printer's sub-Printer calls — the same visitor-composition idiom,
repurposed from source text to map[string]any.
*/
package serialize

import "github.com/akashmaji946/langfront/ast"

// EncodeNode converts any AST node to its tagged-union wire form: a
// map[string]any with a "type" discriminator, the node's fields (nested
// nodes encoded recursively), and a "span" field, per spec.md §6.
func EncodeNode(n ast.Node) any {
	e := &encoder{}
	n.Accept(e)
	return e.result
}

// EncodeProgram converts a whole program to its wire form: a "Program"
// envelope around the encoded top-level statements.
func EncodeProgram(p *ast.Program) any {
	stmts := make([]any, len(p.Statements))
	for i, s := range p.Statements {
		stmts[i] = EncodeNode(s)
	}
	return map[string]any{"type": "Program", "statements": stmts}
}

type encoder struct {
	result any
}

func encodeOpt(n ast.Node) any {
	if n == nil {
		return nil
	}
	return EncodeNode(n)
}

func encodeList[T ast.Node](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = EncodeNode(item)
	}
	return out
}

func (e *encoder) VisitProgram(n *ast.Program) {
	e.result = EncodeProgram(n)
}

func (e *encoder) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	decls := make([]any, len(n.Declarators))
	for i, d := range n.Declarators {
		decls[i] = map[string]any{"name": d.Name, "value": encodeOpt(d.Value)}
	}
	e.result = map[string]any{
		"type": "VariableDeclaration", "typeName": n.TypeName,
		"declarators": decls, "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	params := make([]any, len(n.Params))
	for i, p := range n.Params {
		params[i] = map[string]any{"name": p.Name, "type": p.Type, "default": encodeOpt(p.Default)}
	}
	e.result = map[string]any{
		"type": "FunctionDeclaration", "kind": n.Kind.String(), "name": n.Name,
		"returnType": n.ReturnType, "params": params, "body": EncodeNode(n.Body),
		"span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitClassDeclaration(n *ast.ClassDeclaration) {
	e.result = map[string]any{
		"type": "ClassDeclaration", "name": n.Name, "superclass": n.Superclass,
		"members": encodeList(n.Members), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitIfStatement(n *ast.IfStatement) {
	e.result = map[string]any{
		"type": "IfStatement", "condition": EncodeNode(n.Condition),
		"consequence": EncodeNode(n.Consequence), "alternative": encodeOpt(n.Alternative),
		"span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitForStatement(n *ast.ForStatement) {
	e.result = map[string]any{
		"type": "ForStatement", "init": encodeOpt(n.Init), "condition": encodeOpt(n.Condition),
		"update": encodeOpt(n.Update), "body": EncodeNode(n.Body), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitForEachStatement(n *ast.ForEachStatement) {
	e.result = map[string]any{
		"type": "ForEachStatement", "binding": n.Binding.Name, "kind": n.Kind.String(),
		"iterable": EncodeNode(n.Iterable), "body": EncodeNode(n.Body), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitWhileStatement(n *ast.WhileStatement) {
	e.result = map[string]any{
		"type": "WhileStatement", "condition": EncodeNode(n.Condition),
		"body": EncodeNode(n.Body), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitSwitchStatement(n *ast.SwitchStatement) {
	cases := make([]any, len(n.Cases))
	for i, c := range n.Cases {
		cases[i] = map[string]any{"value": EncodeNode(c.Value), "body": encodeList(c.Body)}
	}
	var def any
	if n.Default != nil {
		def = encodeList(n.Default)
	}
	e.result = map[string]any{
		"type": "SwitchStatement", "expression": EncodeNode(n.Expression),
		"cases": cases, "default": def, "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitReturnStatement(n *ast.ReturnStatement) {
	e.result = map[string]any{
		"type": "ReturnStatement", "value": encodeOpt(n.Value), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitBreakStatement(n *ast.BreakStatement) {
	e.result = map[string]any{"type": "BreakStatement", "span": encodeSpan(n.SourceSpan)}
}

func (e *encoder) VisitContinueStatement(n *ast.ContinueStatement) {
	e.result = map[string]any{"type": "ContinueStatement", "span": encodeSpan(n.SourceSpan)}
}

func (e *encoder) VisitBlockStatement(n *ast.BlockStatement) {
	e.result = map[string]any{
		"type": "BlockStatement", "statements": encodeList(n.Statements), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitExpressionStatement(n *ast.ExpressionStatement) {
	e.result = map[string]any{
		"type": "ExpressionStatement", "expression": EncodeNode(n.Expr), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitIntLiteral(n *ast.IntLiteral) {
	e.result = map[string]any{"type": "IntLiteral", "value": n.Value, "span": encodeSpan(n.SourceSpan)}
}

func (e *encoder) VisitFloatLiteral(n *ast.FloatLiteral) {
	e.result = map[string]any{"type": "FloatLiteral", "value": n.Value, "span": encodeSpan(n.SourceSpan)}
}

func (e *encoder) VisitStringLiteral(n *ast.StringLiteral) {
	e.result = map[string]any{"type": "StringLiteral", "value": n.Value, "span": encodeSpan(n.SourceSpan)}
}

func (e *encoder) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	e.result = map[string]any{"type": "BooleanLiteral", "value": n.Value, "span": encodeSpan(n.SourceSpan)}
}

func (e *encoder) VisitNullLiteral(n *ast.NullLiteral) {
	e.result = map[string]any{"type": "NullLiteral", "span": encodeSpan(n.SourceSpan)}
}

func (e *encoder) VisitIdentifier(n *ast.Identifier) {
	e.result = map[string]any{"type": "Identifier", "name": n.Name, "span": encodeSpan(n.SourceSpan)}
}

func (e *encoder) VisitPrefixExpression(n *ast.PrefixExpression) {
	e.result = map[string]any{
		"type": "PrefixExpression", "op": n.Op, "right": EncodeNode(n.Right), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitInfixExpression(n *ast.InfixExpression) {
	e.result = map[string]any{
		"type": "InfixExpression", "op": n.Op, "left": EncodeNode(n.Left),
		"right": EncodeNode(n.Right), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitCallExpression(n *ast.CallExpression) {
	e.result = map[string]any{
		"type": "CallExpression", "function": EncodeNode(n.Function),
		"arguments": encodeList(n.Arguments), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitCastExpression(n *ast.CastExpression) {
	e.result = map[string]any{
		"type": "CastExpression", "targetType": n.TargetType,
		"expression": EncodeNode(n.Expr), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitIndexExpression(n *ast.IndexExpression) {
	e.result = map[string]any{
		"type": "IndexExpression", "left": EncodeNode(n.Left),
		"index": EncodeNode(n.Index), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitMemberExpression(n *ast.MemberExpression) {
	e.result = map[string]any{
		"type": "MemberExpression", "left": EncodeNode(n.Left),
		"property": n.Property, "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitAssignmentExpression(n *ast.AssignmentExpression) {
	e.result = map[string]any{
		"type": "AssignmentExpression", "left": EncodeNode(n.Left),
		"right": EncodeNode(n.Right), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitArrayLiteral(n *ast.ArrayLiteral) {
	e.result = map[string]any{
		"type": "ArrayLiteral", "elements": encodeList(n.Elements), "span": encodeSpan(n.SourceSpan),
	}
}

func (e *encoder) VisitObjectLiteral(n *ast.ObjectLiteral) {
	pairs := make([]any, len(n.Pairs))
	for i, pr := range n.Pairs {
		pairs[i] = map[string]any{"key": EncodeNode(pr.Key), "value": EncodeNode(pr.Value)}
	}
	e.result = map[string]any{"type": "ObjectLiteral", "pairs": pairs, "span": encodeSpan(n.SourceSpan)}
}

func (e *encoder) VisitNewExpression(n *ast.NewExpression) {
	e.result = map[string]any{
		"type": "NewExpression", "class": n.Class, "arguments": encodeList(n.Arguments),
		"span": encodeSpan(n.SourceSpan),
	}
}
