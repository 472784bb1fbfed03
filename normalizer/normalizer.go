/*
File   : langfront/normalizer/normalizer.go
Package: normalizer

Package normalizer implements the pure AST→AST rewriter of spec.md §4.3:
constant folding on unary/binary arithmetic, dead-branch elimination on
constant `if` conditions, and a canonicalization pass that flattens and
sorts operands of commutative `+`/`*` chains. It is grounded on the
teacher's eval package (eval/eval_expressions.go's binary-operator
arithmetic, eval/eval_conditionals.go's if-branch selection) — the same
case analysis, repurposed from "compute a runtime value" to "rewrite one
AST into an equivalent, simpler AST" — since the teacher has no standalone
normalization pass to adapt more directly.
*/
package normalizer

import (
	"github.com/akashmaji946/langfront/ast"
)

// Normalize returns a new, canonicalized Program. It never mutates the
// input in place; every rewritten node is freshly allocated, matching
// spec.md §3's "Normalizer returns a new AST" lifecycle rule.
func Normalize(program *ast.Program) *ast.Program {
	return &ast.Program{Statements: normalizeStatements(program.Statements)}
}

// normalizeStatements normalizes each statement, dropping any whose
// normalization signals removal (the `nil, false` dead-branch case). When a
// constant-condition `if` collapses to a block, the block's statements are
// spliced into the containing list in its place.
func normalizeStatements(stmts []ast.Statement) []ast.Statement {
	var out []ast.Statement
	for _, s := range stmts {
		n, keep := normalizeStatement(s)
		if !keep {
			continue
		}
		if _, wasIf := s.(*ast.IfStatement); wasIf {
			if block, isBlock := n.(*ast.BlockStatement); isBlock {
				out = append(out, block.Statements...)
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// normalizeStatement normalizes one statement. The boolean result is false
// only for a dropped constant-false `if` with no alternative (spec.md
// §4.3's "the statement is dropped from its containing block").
func normalizeStatement(s ast.Statement) (ast.Statement, bool) {
	switch n := s.(type) {
	case *ast.VariableDeclaration:
		decls := make([]ast.Declarator, len(n.Declarators))
		for i, d := range n.Declarators {
			decls[i] = ast.Declarator{Name: d.Name, Value: normalizeOptionalExpr(d.Value)}
		}
		return &ast.VariableDeclaration{TypeName: n.TypeName, Declarators: decls, SourceSpan: n.SourceSpan}, true

	case *ast.FunctionDeclaration:
		body, _ := normalizeStatement(n.Body)
		return &ast.FunctionDeclaration{
			Kind: n.Kind, Name: n.Name, ReturnType: n.ReturnType, Params: n.Params,
			Body: body.(*ast.BlockStatement), SourceSpan: n.SourceSpan,
		}, true

	case *ast.ClassDeclaration:
		return &ast.ClassDeclaration{
			Name: n.Name, Superclass: n.Superclass, Members: normalizeStatements(n.Members),
			SourceSpan: n.SourceSpan,
		}, true

	case *ast.IfStatement:
		return normalizeIf(n)

	case *ast.ForStatement:
		init, _ := normalizeOptionalStatement(n.Init)
		body, _ := normalizeStatement(n.Body)
		return &ast.ForStatement{
			Init: init, Condition: normalizeOptionalExpr(n.Condition),
			Update: normalizeOptionalExpr(n.Update), Body: body, SourceSpan: n.SourceSpan,
		}, true

	case *ast.ForEachStatement:
		body, _ := normalizeStatement(n.Body)
		return &ast.ForEachStatement{
			Binding: n.Binding, Iterable: normalizeExpr(n.Iterable), Kind: n.Kind,
			Body: body, SourceSpan: n.SourceSpan,
		}, true

	case *ast.WhileStatement:
		body, _ := normalizeStatement(n.Body)
		return &ast.WhileStatement{Condition: normalizeExpr(n.Condition), Body: body, SourceSpan: n.SourceSpan}, true

	case *ast.SwitchStatement:
		cases := make([]ast.SwitchCase, len(n.Cases))
		for i, c := range n.Cases {
			cases[i] = ast.SwitchCase{Value: normalizeExpr(c.Value), Body: normalizeStatements(c.Body)}
		}
		var def []ast.Statement
		if n.Default != nil {
			def = normalizeStatements(n.Default)
		}
		return &ast.SwitchStatement{Expression: normalizeExpr(n.Expression), Cases: cases, Default: def, SourceSpan: n.SourceSpan}, true

	case *ast.ReturnStatement:
		return &ast.ReturnStatement{Value: normalizeOptionalExpr(n.Value), SourceSpan: n.SourceSpan}, true

	case *ast.BlockStatement:
		return &ast.BlockStatement{Statements: normalizeStatements(n.Statements), SourceSpan: n.SourceSpan}, true

	case *ast.ExpressionStatement:
		return &ast.ExpressionStatement{Expr: normalizeExpr(n.Expr), SourceSpan: n.SourceSpan}, true

	case *ast.BreakStatement, *ast.ContinueStatement:
		return s, true

	default:
		return s, true
	}
}

func normalizeOptionalStatement(s ast.Statement) (ast.Statement, bool) {
	if s == nil {
		return nil, true
	}
	return normalizeStatement(s)
}

// normalizeIf implements spec.md §4.3's dead-branch elimination: a
// statically-true condition collapses to the (normalized) consequence; a
// statically-false condition collapses to the (normalized) alternative,
// or is dropped entirely if there is none. A chosen branch that is a block
// is returned as a block; normalizeStatements splices its statements into
// the containing list.
func normalizeIf(n *ast.IfStatement) (ast.Statement, bool) {
	cond := normalizeExpr(n.Condition)
	if b, ok := cond.(*ast.BooleanLiteral); ok {
		if b.Value {
			return normalizeStatement(n.Consequence)
		}
		if n.Alternative != nil {
			return normalizeStatement(n.Alternative)
		}
		return nil, false
	}

	consequence, _ := normalizeStatement(n.Consequence)
	var alternative ast.Statement
	if n.Alternative != nil {
		alternative, _ = normalizeStatement(n.Alternative)
	}
	return &ast.IfStatement{Condition: cond, Consequence: consequence, Alternative: alternative, SourceSpan: n.SourceSpan}, true
}

func normalizeOptionalExpr(e ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	return normalizeExpr(e)
}

// normalizeExpr normalizes an expression's children before attempting to
// fold or canonicalize the node itself, per spec.md §4.3's "Recursion
// structure": children are normalized before the parent is rewritten.
func normalizeExpr(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.PrefixExpression:
		right := normalizeExpr(n.Right)
		return foldPrefix(n.Op, right, n.SourceSpan)

	case *ast.InfixExpression:
		left := normalizeExpr(n.Left)
		right := normalizeExpr(n.Right)
		folded := &ast.InfixExpression{Left: left, Op: n.Op, Right: right, SourceSpan: n.SourceSpan}
		if n.Op == "+" || n.Op == "*" {
			return canonicalizeCommutative(folded)
		}
		return foldInfix(folded)

	case *ast.CallExpression:
		return &ast.CallExpression{Function: normalizeExpr(n.Function), Arguments: normalizeExprList(n.Arguments), SourceSpan: n.SourceSpan}

	case *ast.CastExpression:
		return &ast.CastExpression{TargetType: n.TargetType, Expr: normalizeExpr(n.Expr), SourceSpan: n.SourceSpan}

	case *ast.IndexExpression:
		return &ast.IndexExpression{Left: normalizeExpr(n.Left), Index: normalizeExpr(n.Index), SourceSpan: n.SourceSpan}

	case *ast.MemberExpression:
		return &ast.MemberExpression{Left: normalizeExpr(n.Left), Property: n.Property, SourceSpan: n.SourceSpan}

	case *ast.AssignmentExpression:
		return &ast.AssignmentExpression{Left: normalizeExpr(n.Left), Right: normalizeExpr(n.Right), SourceSpan: n.SourceSpan}

	case *ast.ArrayLiteral:
		return &ast.ArrayLiteral{Elements: normalizeExprList(n.Elements), SourceSpan: n.SourceSpan}

	case *ast.ObjectLiteral:
		pairs := make([]ast.ObjectPair, len(n.Pairs))
		for i, pr := range n.Pairs {
			pairs[i] = ast.ObjectPair{Key: normalizeExpr(pr.Key), Value: normalizeExpr(pr.Value)}
		}
		return &ast.ObjectLiteral{Pairs: pairs, SourceSpan: n.SourceSpan}

	case *ast.NewExpression:
		return &ast.NewExpression{Class: n.Class, Arguments: normalizeExprList(n.Arguments), SourceSpan: n.SourceSpan}

	default:
		// Literals and identifiers have no children to normalize.
		return e
	}
}

func normalizeExprList(exprs []ast.Expression) []ast.Expression {
	if exprs == nil {
		return nil
	}
	out := make([]ast.Expression, len(exprs))
	for i, e := range exprs {
		out[i] = normalizeExpr(e)
	}
	return out
}

