/*
File   : langfront/normalizer/fold.go
Package: normalizer

Constant folding and commutative canonicalization, split from
normalizer.go's recursion structure the way the teacher splits its
eval_expressions.go (binary operator arithmetic) from eval_conditionals.go
(branch selection) into separate files for separate concerns.

Open questions pinned here per spec.md §9:
  - Rebuilt commutative chains take the merged span of their contributing
    leaves (option (b) in the design note), computed incrementally as each
    pairwise node is built, rather than reusing the outer node's original
    span.
  - Integer division truncates toward zero: Go's native `/` on int64
    already has this behavior, so no special-casing is needed for negative
    operands.
*/
package normalizer

import (
	"sort"
	"strconv"

	"github.com/akashmaji946/langfront/ast"
	"github.com/akashmaji946/langfront/token"
)

// foldPrefix implements spec.md §4.3's unary folding rules. Only `-` and
// `+` on numeric literals are folded; `!` and `~` are never folded, whatever
// their operand.
func foldPrefix(op string, right ast.Expression, span token.Span) ast.Expression {
	switch op {
	case "-":
		switch lit := right.(type) {
		case *ast.IntLiteral:
			return &ast.IntLiteral{Value: -lit.Value, SourceSpan: span}
		case *ast.FloatLiteral:
			return &ast.FloatLiteral{Value: -lit.Value, SourceSpan: span}
		}
	case "+":
		switch right.(type) {
		case *ast.IntLiteral, *ast.FloatLiteral:
			return right
		}
	}
	return &ast.PrefixExpression{Op: op, Right: right, SourceSpan: span}
}

// foldInfix implements spec.md §4.3's binary arithmetic folding: `+ - *
// /` over two numeric literals, integer-preserving when both sides are
// Int, promoting to Float otherwise. Division by zero is left unfolded.
func foldInfix(n *ast.InfixExpression) ast.Expression {
	switch n.Op {
	case "+", "-", "*", "/":
	default:
		return n
	}

	li, lIsInt := n.Left.(*ast.IntLiteral)
	lf, lIsFloat := n.Left.(*ast.FloatLiteral)
	ri, rIsInt := n.Right.(*ast.IntLiteral)
	rf, rIsFloat := n.Right.(*ast.FloatLiteral)

	if !lIsInt && !lIsFloat || !rIsInt && !rIsFloat {
		return n
	}

	if lIsInt && rIsInt {
		if n.Op == "/" && ri.Value == 0 {
			return n
		}
		var result int64
		switch n.Op {
		case "+":
			result = li.Value + ri.Value
		case "-":
			result = li.Value - ri.Value
		case "*":
			result = li.Value * ri.Value
		case "/":
			result = li.Value / ri.Value // Go's int64 division truncates toward zero
		}
		return &ast.IntLiteral{Value: result, SourceSpan: n.SourceSpan}
	}

	var lv, rv float64
	if lIsInt {
		lv = float64(li.Value)
	} else {
		lv = lf.Value
	}
	if rIsInt {
		rv = float64(ri.Value)
	} else {
		rv = rf.Value
	}
	if n.Op == "/" && rv == 0 {
		return n
	}
	var result float64
	switch n.Op {
	case "+":
		result = lv + rv
	case "-":
		result = lv - rv
	case "*":
		result = lv * rv
	case "/":
		result = lv / rv
	}
	return &ast.FloatLiteral{Value: result, SourceSpan: n.SourceSpan}
}

// sortClass orders the three tiers spec.md §4.3 defines for commutative
// canonicalization: identifiers, then numeric/boolean literals, then
// everything else (all considered equal, so relative order among them is
// whatever a stable sort leaves it at).
func sortClass(e ast.Expression) (class int, key string) {
	switch n := e.(type) {
	case *ast.Identifier:
		return 0, n.Name
	case *ast.IntLiteral:
		return 1, strconv.FormatInt(n.Value, 10)
	case *ast.FloatLiteral:
		return 1, strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.BooleanLiteral:
		return 1, strconv.FormatBool(n.Value)
	default:
		return 2, ""
	}
}

// flattenCommutative collects the leaves of a maximal chain of the same
// commutative operator, left-to-right.
func flattenCommutative(n *ast.InfixExpression, op string) []ast.Expression {
	var leaves []ast.Expression
	var walk func(e ast.Expression)
	walk = func(e ast.Expression) {
		if inf, ok := e.(*ast.InfixExpression); ok && inf.Op == op {
			walk(inf.Left)
			walk(inf.Right)
			return
		}
		leaves = append(leaves, e)
	}
	walk(n)
	return leaves
}

// canonicalizeCommutative implements spec.md §4.3's canonicalization for
// `+` and `*` chains: flatten, sort by the tiered key above, then rebuild
// as a left-leaning chain, folding each pairwise step. Folding applies only
// while the chain built so far is itself a literal, so literal leaves
// collapse into one only when no identifier sorts ahead of them.
func canonicalizeCommutative(n *ast.InfixExpression) ast.Expression {
	leaves := flattenCommutative(n, n.Op)
	if len(leaves) < 2 {
		return n
	}

	sorted := make([]ast.Expression, len(leaves))
	copy(sorted, leaves)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, ki := sortClass(sorted[i])
		cj, kj := sortClass(sorted[j])
		if ci != cj {
			return ci < cj
		}
		return ki < kj
	})

	result := sorted[0]
	for _, leaf := range sorted[1:] {
		merged := token.Merge(result.Span(), leaf.Span())
		candidate := &ast.InfixExpression{Left: result, Op: n.Op, Right: leaf, SourceSpan: merged}
		result = foldInfix(candidate)
	}
	return result
}
