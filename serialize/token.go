package serialize

import "github.com/akashmaji946/langfront/token"

// Token is the wire form of token.Token: a "type" discriminator (the
// Kind's canonical spelling, except that the `true`/`false` keywords are
// reported as "Boolean"), the raw literal text, the decoded value where one
// exists, and the byte Span.
type Token struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Value   any    `json:"value,omitempty"`
	Span    Span   `json:"span"`
}

// EncodeToken converts a lexed token.Token to its wire form, decoding the
// value field per spec.md §3's `Literal ∈ { Int, Float, String, Boolean }`
// sum type.
func EncodeToken(t token.Token) Token {
	out := Token{Type: t.Kind.String(), Literal: t.Literal, Span: encodeSpan(t.Span)}
	switch t.Kind {
	case token.INT:
		out.Value = t.IntValue
	case token.FLOAT:
		out.Value = t.FloatValue
	case token.STRING:
		out.Value = t.Literal
	case token.BOOLEAN, token.TRUE, token.FALSE:
		out.Type = token.BOOLEAN.String()
		out.Value = t.BoolValue
	}
	return out
}

// EncodeTokens converts a slice of lexed tokens to their wire form.
func EncodeTokens(tokens []token.Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = EncodeToken(t)
	}
	return out
}
