package ast_test

import (
	"testing"

	"github.com/akashmaji946/langfront/ast"
	"github.com/akashmaji946/langfront/parser"
	"github.com/akashmaji946/langfront/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramSpan_CoversFirstAndLastStatement(t *testing.T) {
	program, diags := parser.Parse("number x = 1; return x;")
	require.Empty(t, diags)
	require.Len(t, program.Statements, 2)

	span := program.Span()
	assert.Equal(t, program.Statements[0].Span().Start, span.Start)
	assert.Equal(t, program.Statements[len(program.Statements)-1].Span().End, span.End)
}

func TestSpan_ParentContainsEveryChild(t *testing.T) {
	src := `function number add(number a, number b) {
		return a + b;
	}`
	program, diags := parser.Parse(src)
	require.Empty(t, diags)
	require.Len(t, program.Statements, 1)

	fn := program.Statements[0].(*ast.FunctionDeclaration)
	assert.True(t, fn.Span().Contains(fn.Body.Span()))
	ret := fn.Body.Statements[0].(*ast.ReturnStatement)
	assert.True(t, fn.Body.Span().Contains(ret.Span()))
	assert.True(t, ret.Span().Contains(ret.Value.Span()))
}

func TestSpanMerge_TakesMinStartMaxEnd(t *testing.T) {
	a := token.Span{Start: 5, End: 10}
	b := token.Span{Start: 2, End: 8}
	merged := token.Merge(a, b)
	assert.Equal(t, 2, merged.Start)
	assert.Equal(t, 10, merged.End)
}

func TestPrinter_RoundTripsToStructurallyEqualAST(t *testing.T) {
	srcs := []string{
		"number x = 1 + 2 * 3;",
		"if (x > 0) { return x; } else { return 0; }",
		"function number add(number a, number b) { return a + b; }",
		"for (i = 0; i < 10; i = i + 1) { x = x + i; }",
		"for (item in items) { print(item); }",
	}

	for _, src := range srcs {
		program, diags := parser.Parse(src)
		require.Empty(t, diags, "src %q", src)

		printed := ast.Print(program)
		reparsed, diags2 := parser.Parse(printed)
		require.Empty(t, diags2, "reprinted src %q (from %q)", printed, src)

		assert.Equal(t, ast.Print(reparsed), printed, "printing is a fixed point after one round trip")
	}
}
