package serialize

import "github.com/akashmaji946/langfront/diagnostic"

// Diagnostic is the wire form of diagnostic.Diagnostic, matching spec.md
// §6's payload shape exactly: `{ type, message, code, line, column,
// trace?, context? }`.
type Diagnostic struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Line    int               `json:"line"`
	Column  int               `json:"column"`
	Trace   []string          `json:"trace,omitempty"`
	Context map[string]string `json:"context,omitempty"`
}

// EncodeDiagnostic converts a single diagnostic.Diagnostic to its wire form.
func EncodeDiagnostic(d *diagnostic.Diagnostic) Diagnostic {
	return Diagnostic{
		Type:    string(d.Type),
		Message: d.Message,
		Code:    string(d.Code),
		Line:    d.Line,
		Column:  d.Column,
		Trace:   d.Trace,
		Context: d.Context,
	}
}

// EncodeDiagnostics converts a slice of diagnostics to their wire form.
func EncodeDiagnostics(diags []*diagnostic.Diagnostic) []Diagnostic {
	out := make([]Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = EncodeDiagnostic(d)
	}
	return out
}
