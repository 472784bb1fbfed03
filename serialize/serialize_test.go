package serialize_test

import (
	"encoding/json"
	"testing"

	"github.com/akashmaji946/langfront/lexer"
	"github.com/akashmaji946/langfront/parser"
	"github.com/akashmaji946/langfront/serialize"
	"github.com/akashmaji946/langfront/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeToken_IntLiteral(t *testing.T) {
	lex := lexer.New("42")
	tok, diag := lex.NextToken()
	require.Nil(t, diag)

	wire := serialize.EncodeToken(tok)
	assert.Equal(t, token.INT.String(), wire.Type)
	assert.EqualValues(t, 42, wire.Value)
	assert.Equal(t, 0, wire.Span.Start)
	assert.Equal(t, 2, wire.Span.End)
}

func TestEncodeToken_MarshalsToTaggedUnion(t *testing.T) {
	lex := lexer.New("true")
	tok, diag := lex.NextToken()
	require.Nil(t, diag)

	wire := serialize.EncodeToken(tok)
	raw, err := json.Marshal(wire)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Boolean", decoded["type"])
	assert.Equal(t, true, decoded["value"])
}

func TestEncodeProgram_RoundTripsThroughJSON(t *testing.T) {
	program, diags := parser.Parse("number x = 1 + 2;")
	require.Empty(t, diags)

	wire := serialize.EncodeProgram(program)
	raw, err := json.Marshal(wire)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Program", decoded["type"])

	statements, ok := decoded["statements"].([]any)
	require.True(t, ok)
	require.Len(t, statements, 1)

	decl, ok := statements[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VariableDeclaration", decl["type"])
	assert.Equal(t, "number", decl["typeName"])
}

func TestEncodeDiagnostics_CarriesCodeAndPosition(t *testing.T) {
	_, diags := parser.Parse("number x 5;")
	require.NotEmpty(t, diags)

	wire := serialize.EncodeDiagnostics(diags)
	require.NotEmpty(t, wire)
	assert.Equal(t, "SF0010", wire[0].Code)
	assert.Equal(t, "CompilationError", wire[0].Type)
}
