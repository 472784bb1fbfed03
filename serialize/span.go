/*
File   : langfront/serialize/span.go
Package: serialize

Package serialize implements spec.md §6's wire boundary: tokens, AST nodes,
and diagnostics marshal to tagged discriminated unions (a "type"
discriminator plus a payload) via encoding/json: tokens and diagnostics
through struct tags, AST nodes as map[string]any values. It is grounded
on the teacher's std/json.go, itself a thin encoding/json wrapper
(jsonParse/jsonStringify) — no third-party JSON library appears anywhere in
the example pack that fits struct-tag-driven discriminated-union
marshaling better than the standard library does, so this package is
deliberately stdlib-only (documented in DESIGN.md).
*/
package serialize

import "github.com/akashmaji946/langfront/token"

// Span is the wire form of token.Span: byte offsets only. Line/Column are
// diagnostic-only (spec.md §6) and are dropped here.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func encodeSpan(s token.Span) Span {
	return Span{Start: s.Start, End: s.End}
}
