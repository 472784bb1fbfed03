package lexer

import (
	"testing"

	"github.com/akashmaji946/langfront/diagnostic"
	"github.com/akashmaji946/langfront/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) ([]token.Token, []*diagnostic.Diagnostic) {
	t.Helper()
	l := New(src)
	var toks []token.Token
	var diags []*diagnostic.Diagnostic
	for {
		tok, diag := l.NextToken()
		if diag != nil {
			diags = append(diags, diag)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, diags
}

func TestNextToken_Operators(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"=", token.ASSIGN}, {"==", token.EQ}, {"===", token.STRICT_EQ},
		{"!", token.BANG}, {"!=", token.NEQ}, {"!==", token.STRICT_NEQ},
		{"<", token.LT}, {"<=", token.LE}, {"<<", token.SHL}, {"<<<", token.USHL},
		{">", token.GT}, {">=", token.GE}, {">>", token.SHR}, {">>>", token.USHR},
		{"*", token.STAR}, {"**", token.POW},
		{"&", token.BIT_AND}, {"&&", token.LOGAND},
		{"|", token.BIT_OR}, {"||", token.LOGOR},
	}
	for _, c := range cases {
		toks, diags := lexAll(t, c.src)
		require.Empty(t, diags, "src %q", c.src)
		require.Len(t, toks, 2, "src %q", c.src)
		assert.Equal(t, c.kind, toks[0].Kind, "src %q", c.src)
		assert.Equal(t, c.src, toks[0].Literal)
		assert.Equal(t, 0, toks[0].Span.Start)
		assert.Equal(t, len(c.src), toks[0].Span.End)
	}
}

func TestNextToken_IntegerLiteralWithSeparators(t *testing.T) {
	toks, diags := lexAll(t, "1_000_000")
	require.Empty(t, diags)
	require.Len(t, toks, 2)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, int64(1000000), toks[0].IntValue)
}

func TestNextToken_InvalidSeparatorPlacement(t *testing.T) {
	bad := []string{"1__0", "1_", "1._0"}
	for _, src := range bad {
		_, diags := lexAll(t, src)
		require.NotEmpty(t, diags, "src %q should be a lexical error", src)
		assert.Equal(t, diagnostic.InvalidNumberFormat, diags[0].Code, "src %q", src)
	}
}

func TestNextToken_StandaloneUnderscoreIdentifier(t *testing.T) {
	toks, diags := lexAll(t, "_1")
	require.Empty(t, diags)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENT, toks[0].Kind)
	assert.Equal(t, "_1", toks[0].Literal)
}

func TestNextToken_HexFloat(t *testing.T) {
	toks, diags := lexAll(t, "0xF.8")
	require.Empty(t, diags)
	require.Len(t, toks, 2)
	assert.Equal(t, token.FLOAT, toks[0].Kind)
	assert.InDelta(t, 15.5, toks[0].FloatValue, 1e-9)
}

func TestNextToken_BinaryFloat(t *testing.T) {
	toks, diags := lexAll(t, "0b1.1")
	require.Empty(t, diags)
	require.Len(t, toks, 2)
	assert.Equal(t, token.FLOAT, toks[0].Kind)
	assert.InDelta(t, 1.5, toks[0].FloatValue, 1e-9)
}

func TestNextToken_HexInteger(t *testing.T) {
	toks, diags := lexAll(t, "0xFF")
	require.Empty(t, diags)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, int64(255), toks[0].IntValue)
}

func TestNextToken_BinaryInteger(t *testing.T) {
	toks, diags := lexAll(t, "0b1010")
	require.Empty(t, diags)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, int64(10), toks[0].IntValue)
}

func TestNextToken_DecimalFloat(t *testing.T) {
	toks, diags := lexAll(t, "3.14")
	require.Empty(t, diags)
	assert.Equal(t, token.FLOAT, toks[0].Kind)
	assert.InDelta(t, 3.14, toks[0].FloatValue, 1e-9)
}

func TestNextToken_NumberFollowedByIdentIsError(t *testing.T) {
	_, diags := lexAll(t, "123abc")
	require.NotEmpty(t, diags)
	assert.Equal(t, diagnostic.InvalidNumberFormat, diags[0].Code)
}

func TestNextToken_StringLiteral_SpanIncludesQuotes(t *testing.T) {
	src := `"hello"`
	toks, diags := lexAll(t, src)
	require.Empty(t, diags)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Literal)
	assert.Equal(t, 0, toks[0].Span.Start)
	assert.Equal(t, len(src), toks[0].Span.End)
}

func TestNextToken_StringLiteral_SingleQuoteAndEscape(t *testing.T) {
	src := `'it\'s'`
	toks, diags := lexAll(t, src)
	require.Empty(t, diags)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, `it\'s`, toks[0].Literal)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	_, diags := lexAll(t, `"abc`)
	require.NotEmpty(t, diags)
	assert.Equal(t, diagnostic.UnterminatedString, diags[0].Code)
}

func TestNextToken_Keywords(t *testing.T) {
	cases := map[string]token.Kind{
		"function": token.FUNCTION, "sub": token.SUB, "class": token.CLASS,
		"extends": token.EXTENDS, "constructor": token.CONSTRUCTOR, "new": token.NEW,
		"if": token.IF, "else": token.ELSE, "for": token.FOR, "while": token.WHILE,
		"in": token.KW_IN, "of": token.KW_OF, "switch": token.SWITCH, "case": token.CASE,
		"default": token.DEFAULT, "break": token.BREAK, "continue": token.CONTINUE,
		"return": token.RETURN, "true": token.TRUE, "false": token.FALSE,
		"null": token.NULL, "and": token.KW_AND, "or": token.KW_OR,
	}
	for src, kind := range cases {
		toks, diags := lexAll(t, src)
		require.Empty(t, diags, "src %q", src)
		assert.Equal(t, kind, toks[0].Kind, "src %q", src)
	}
}

func TestNextToken_BooleanLiteralValues(t *testing.T) {
	toks, _ := lexAll(t, "true false")
	require.Len(t, toks, 3)
	assert.True(t, toks[0].BoolValue)
	assert.False(t, toks[1].BoolValue)
}

func TestNextToken_CommentsAreSkipped(t *testing.T) {
	toks, diags := lexAll(t, "1 // comment\n+ /* block\ncomment */ 2")
	require.Empty(t, diags)
	require.Len(t, toks, 4) // 1, +, 2, EOF
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, token.PLUS, toks[1].Kind)
	assert.Equal(t, token.INT, toks[2].Kind)
}

func TestNextToken_UnterminatedBlockCommentIsNotAnError(t *testing.T) {
	toks, diags := lexAll(t, "1 /* never closed")
	require.Empty(t, diags)
	require.Len(t, toks, 2) // 1, EOF
	assert.Equal(t, token.EOF, toks[1].Kind)
}

func TestNextToken_UnexpectedCharacter(t *testing.T) {
	_, diags := lexAll(t, "@")
	require.NotEmpty(t, diags)
	assert.Equal(t, diagnostic.UnexpectedCharacter, diags[0].Code)
}

func TestClone_IsIndependentOfOriginal(t *testing.T) {
	l := New("abc")
	clone := l.Clone()
	l.readChar()
	l.readChar()
	assert.NotEqual(t, l.pos, clone.pos)
}

func TestNextToken_LineAndColumnTracking(t *testing.T) {
	toks, diags := lexAll(t, "1\n22")
	require.Empty(t, diags)
	assert.Equal(t, 1, toks[0].Span.Line)
	assert.Equal(t, 2, toks[1].Span.Line)
}
